// Command smfdemo drives the pedestrian crossing chart on a tick runtime.
package main

func main() {
	Execute()
}
