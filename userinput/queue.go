// This file is part of Gostone.
//
// Gostone is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gostone is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gostone.  If not, see <https://www.gnu.org/licenses/>.

package userinput

// Queue is a fixed capacity first-in-first-out list of events. Platforms
// that receive events through callbacks use a Queue to satisfy the PollEvent()
// part of the EventSource interface.
//
// Queue is not safe for concurrent use.
type Queue struct {
	events []Event
	head   int
	count  int
}

// NewQueue is the preferred method of initialisation for the Queue type.
func NewQueue(capacity int) *Queue {
	if capacity < 1 {
		capacity = 1
	}
	return &Queue{events: make([]Event, capacity)}
}

// Push adds an event to the end of the queue. Returns false if the queue is
// full, in which case the event is dropped.
func (q *Queue) Push(ev Event) bool {
	if q.count == len(q.events) {
		return false
	}
	q.events[(q.head+q.count)%len(q.events)] = ev
	q.count++
	return true
}

// Pop removes and returns the event at the front of the queue. Returns nil if
// the queue is empty.
func (q *Queue) Pop() Event {
	if q.count == 0 {
		return nil
	}
	ev := q.events[q.head]
	q.events[q.head] = nil
	q.head = (q.head + 1) % len(q.events)
	q.count--
	return ev
}

// Len returns the number of events in the queue.
func (q *Queue) Len() int {
	return q.count
}

// Clear removes all events from the queue.
func (q *Queue) Clear() {
	for i := range q.events {
		q.events[i] = nil
	}
	q.head = 0
	q.count = 0
}
