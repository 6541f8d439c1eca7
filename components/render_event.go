package components

import "github.com/yohamta/donburi/features/events"

// RenderEventKind classifies a soft rendering failure.
type RenderEventKind int

const (
	ImageLoadFailure RenderEventKind = iota
	FrameLoadFailure
)

func (k RenderEventKind) String() string {
	switch k {
	case ImageLoadFailure:
		return "image load failure"
	case FrameLoadFailure:
		return "frame load failure"
	}
	return "unknown"
}

// RenderEventData describes something that was skipped instead of drawn.
// CharacterID is -1 for tiles.
type RenderEventData struct {
	Kind        RenderEventKind
	Path        string
	CharacterID int
	Err         error
}

var RenderEvent = events.NewEventType[RenderEventData]()
