package poly

import "github.com/google/btree"

// eventQueue is a priority queue of Events ordered per Event.less, backed by
// a google/btree.BTreeG.
type eventQueue struct {
	tree *btree.BTreeG[Event]
	next uint64
}

func newEventQueue() *eventQueue {
	return &eventQueue{
		tree: btree.NewG[Event](8, Event.less),
	}
}

// put enqueues an event, stamping it with a fresh tie-breaking sequence
// number.
func (q *eventQueue) put(e Event) {
	q.next++
	e.sequence = q.next
	q.tree.ReplaceOrInsert(e)
}

// peek returns the minimum event without removing it.
func (q *eventQueue) peek() (Event, bool) {
	return q.tree.Min()
}

// chopMin removes and returns the minimum event.
func (q *eventQueue) chopMin() (Event, bool) {
	return q.tree.DeleteMin()
}

func (q *eventQueue) empty() bool {
	return q.tree.Len() == 0
}
