package realtime

import "sort"

// post is a closure queued for the next tick, with sequencing metadata for
// deterministic ordering.
type post[T any] struct {
	fn          func(T)
	sequenceNum uint64
	priority    int
}

// sortPosts orders posts deterministically.
func sortPosts[T any](posts []post[T]) {
	// Stable sort preserves insertion order for equal priorities
	sort.SliceStable(posts, func(i, j int) bool {
		// Primary: Higher priority first
		if posts[i].priority != posts[j].priority {
			return posts[i].priority > posts[j].priority
		}

		// Secondary: Earlier sequence number first (FIFO)
		return posts[i].sequenceNum < posts[j].sequenceNum
	})
}
