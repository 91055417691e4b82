package realtime

import "github.com/comalice/smf"

// processTick runs one complete tick and reports the terminate code and
// whether the machine has terminated.
func (rt *Runtime[T]) processTick() (int32, bool) {
	// Phase 1: Collect posts atomically
	posts := rt.collectPosts()

	// Phase 2: Sort for deterministic order
	sortPosts(posts)

	// Phase 3: Apply posts; they may update extended state or call SetState
	for _, p := range posts {
		p.fn(rt.obj)
	}

	// Phase 4: One engine tick
	code := smf.RunState(rt.obj)
	rt.tickNum.Add(1)

	return code, smf.CtxOf(rt.obj).Terminated()
}

// collectPosts atomically retrieves and clears the post batch
func (rt *Runtime[T]) collectPosts() []post[T] {
	rt.batchMu.Lock()
	defer rt.batchMu.Unlock()

	posts := rt.batch
	rt.batch = make([]post[T], 0, cap(rt.batch))

	return posts
}
