package components

import (
	"github.com/automoto/tilecanvas/canvas"
	"github.com/yohamta/donburi"
)

// FrameHandle identifies a requested frame callback. The zero handle is never
// issued.
type FrameHandle uint64

type FrameCallback func(surface canvas.Surface)

type scheduledFrame struct {
	handle FrameHandle
	fn     FrameCallback
}

// FrameSchedulerData queues callbacks for the next displayed frame.
type FrameSchedulerData struct {
	last    FrameHandle
	pending []scheduledFrame
}

func (s *FrameSchedulerData) Request(fn FrameCallback) FrameHandle {
	s.last++
	s.pending = append(s.pending, scheduledFrame{handle: s.last, fn: fn})
	return s.last
}

// Cancel drops a pending callback. Unknown or already-run handles are ignored.
func (s *FrameSchedulerData) Cancel(h FrameHandle) {
	for i, f := range s.pending {
		if f.handle == h {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}

// Take removes and returns the callbacks queued so far, in request order.
func (s *FrameSchedulerData) Take() []FrameCallback {
	if len(s.pending) == 0 {
		return nil
	}
	fns := make([]FrameCallback, len(s.pending))
	for i, f := range s.pending {
		fns[i] = f.fn
	}
	s.pending = s.pending[:0]
	return fns
}

func (s *FrameSchedulerData) Pending() int {
	return len(s.pending)
}

var FrameScheduler = donburi.NewComponentType[FrameSchedulerData]()
