package game

import (
	"github.com/gammazero/deque"
	"github.com/they4kman/bombsquare/util/collections"
)

type NeighborGetter func(*Square) []*Square

// Visitor is called once per square reached by the flood. Returning false
// stops the flood from spreading past that square.
type Visitor func(*Square) bool

func flood(square *Square, visit Visitor, getNeighbors NeighborGetter) {
	visited := make(collections.Set[uint])
	var visitQueue deque.Deque

	enqueue := func(square *Square) {
		// Don't visit, if already visited
		if visited.Contains(square.idx) {
			return
		}

		visited.Add(square.idx)
		visitQueue.PushBack(square)
	}

	enqueue(square)

	for visitQueue.Len() > 0 {
		square := visitQueue.PopFront().(*Square)

		if visit(square) {
			for _, neighbor := range getNeighbors(square) {
				enqueue(neighbor)
			}
		}
	}
}
