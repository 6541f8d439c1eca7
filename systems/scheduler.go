package systems

import (
	"github.com/automoto/tilecanvas/canvas"
	"github.com/automoto/tilecanvas/components"
	"github.com/yohamta/donburi/ecs"
)

// RequestFrame queues fn for the next RunFrame.
func RequestFrame(e *ecs.ECS, fn components.FrameCallback) components.FrameHandle {
	return frameSchedulerOf(e).Request(fn)
}

// CancelFrame drops a queued callback. Stale handles are ignored.
func CancelFrame(e *ecs.ECS, h components.FrameHandle) {
	frameSchedulerOf(e).Cancel(h)
}

// RunFrame runs the callbacks queued before this call, in request order.
// Callbacks they queue run on the following frame. The host calls this
// once per displayed frame.
func RunFrame(e *ecs.ECS, surface canvas.Surface) {
	for _, fn := range frameSchedulerOf(e).Take() {
		fn(surface)
	}
}
