package systems

import (
	"log"

	"github.com/automoto/tilecanvas/canvas"
	"github.com/automoto/tilecanvas/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// OnRenderEvent registers fn for every soft rendering failure in the scene.
// Events are delivered by ProcessRenderEvents.
func OnRenderEvent(e *ecs.ECS, fn func(ev components.RenderEventData)) {
	components.RenderEvent.Subscribe(e.World, func(w donburi.World, ev components.RenderEventData) {
		fn(ev)
	})
}

// ProcessRenderEvents delivers queued render events to their subscribers.
func ProcessRenderEvents(e *ecs.ECS) {
	components.RenderEvent.ProcessEvents(e.World)
}

// reportRenderFailure logs a skipped draw and publishes it. Each failure is
// reported once per character (or once for all tiles) until ForgetImage.
func reportRenderFailure(e *ecs.ECS, kind components.RenderEventKind, characterID int, path string, err error) {
	if a := assetsOf(e); a != nil {
		key := components.RenderFailureKey{Kind: kind, CharacterID: characterID, Path: path}
		if a.Reported == nil {
			a.Reported = make(map[components.RenderFailureKey]struct{})
		}
		if _, seen := a.Reported[key]; seen {
			return
		}
		a.Reported[key] = struct{}{}
	}

	log.Printf("Warning: %s for %q: %v", kind, path, err)
	components.RenderEvent.Publish(e.World, components.RenderEventData{
		Kind:        kind,
		Path:        path,
		CharacterID: characterID,
		Err:         err,
	})
}

// ForgetImage makes the next request for path read it again and report it
// again if it still fails. The image source is told to forget it too when it
// caches by path.
func ForgetImage(e *ecs.ECS, path string) {
	a := assetsOf(e)
	if a == nil {
		return
	}
	if f, ok := a.Source.(interface{ Forget(path string) }); ok {
		f.Forget(path)
	}
	for key := range a.Reported {
		if key.Path == path {
			delete(a.Reported, key)
		}
	}
}

// ForgetFailures calls ForgetImage for every path that has failed so far.
func ForgetFailures(e *ecs.ECS) {
	a := assetsOf(e)
	if a == nil {
		return
	}
	paths := make(map[string]struct{})
	for key := range a.Reported {
		paths[key.Path] = struct{}{}
	}
	for p := range paths {
		ForgetImage(e, p)
	}
}

// loadImage resolves path through the scene's image source. Failures are
// reported and come back as ok=false.
func loadImage(e *ecs.ECS, path string, characterID int) (canvas.Image, bool) {
	a := assetsOf(e)
	if a == nil || a.Source == nil {
		return nil, false
	}
	img, err := a.Source.Image(path)
	if err != nil {
		reportRenderFailure(e, components.ImageLoadFailure, characterID, path, err)
		return nil, false
	}
	return img, true
}
