// Package frameloop provides a requestAnimationFrame-style callback queue.
//
// Hosts call Tick once per repaint; callbacks requested while a tick is
// running are deferred to the following tick, as in a browser.
package frameloop

import "github.com/gogpu/pixelhover"

type entry struct {
	id pixelhover.FrameID
	fn func()
}

// Queue holds pending frame callbacks. The zero value is ready to use.
//
// Queue is NOT safe for concurrent use; it belongs to one host loop.
type Queue struct {
	next    pixelhover.FrameID
	pending []entry

	// inflight holds the IDs of the batch being run by Tick that have
	// not run or been cancelled yet.
	inflight map[pixelhover.FrameID]struct{}
}

var _ pixelhover.Scheduler = (*Queue)(nil)

// RequestFrame implements pixelhover.Scheduler.
func (q *Queue) RequestFrame(fn func()) pixelhover.FrameID {
	q.next++
	q.pending = append(q.pending, entry{id: q.next, fn: fn})
	return q.next
}

// CancelFrame implements pixelhover.Scheduler.
func (q *Queue) CancelFrame(id pixelhover.FrameID) {
	if _, ok := q.inflight[id]; ok {
		delete(q.inflight, id)
		return
	}
	for i, e := range q.pending {
		if e.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}

// Pending returns the number of callbacks waiting for the next tick.
func (q *Queue) Pending() int {
	return len(q.pending)
}

// Tick runs every callback that was pending when it was called and
// returns how many ran. A callback cancelled by an earlier one in the
// same tick does not run.
func (q *Queue) Tick() int {
	batch := q.pending
	q.pending = nil
	if len(batch) == 0 {
		return 0
	}
	q.inflight = make(map[pixelhover.FrameID]struct{}, len(batch))
	for _, e := range batch {
		q.inflight[e.id] = struct{}{}
	}
	ran := 0
	for _, e := range batch {
		if _, ok := q.inflight[e.id]; !ok {
			continue
		}
		delete(q.inflight, e.id)
		e.fn()
		ran++
	}
	q.inflight = nil
	return ran
}

// RunUntilIdle ticks until nothing is pending or max ticks have run, and
// returns the number of ticks. Headless hosts and tests use it to drain
// an animation.
func (q *Queue) RunUntilIdle(max int) int {
	n := 0
	for n < max && q.Pending() > 0 {
		q.Tick()
		n++
	}
	return n
}
