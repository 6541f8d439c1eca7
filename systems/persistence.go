package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/tilecanvas/components"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSession is the demo state stored on disk between runs.
type SavedSession struct {
	Seed    uint64  `json:"seed"`
	Cols    int     `json:"cols"`
	Rows    int     `json:"rows"`
	CameraX float64 `json:"cameraX"`
	CameraY float64 `json:"cameraY"`
	Zoom    float64 `json:"zoom"`
}

const sessionKey = "session"

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence opens the per-user data directory.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "tilecanvas",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSession returns the last saved session, or nil if there is none.
func LoadSession() (*SavedSession, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(sessionKey)
	if err != nil {
		log.Printf("Warning: Could not load session: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var s SavedSession
	if err := json.Unmarshal(data, &s); err != nil {
		log.Printf("Warning: Could not parse saved session: %v", err)
		return nil, err
	}
	return &s, nil
}

func SaveSession(s *SavedSession) error {
	if !gdataInitialized || gdataManager == nil || s == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize session: %v", err)
		return err
	}
	if err := gdataManager.SaveItem(sessionKey, data); err != nil {
		log.Printf("Warning: Could not save session: %v", err)
		return err
	}
	return nil
}

// CaptureSession snapshots the scene's map size and camera.
func CaptureSession(e *ecs.ECS, seed uint64) *SavedSession {
	camera := cameraOf(e)
	s := &SavedSession{
		Seed:    seed,
		CameraX: camera.Position.X,
		CameraY: camera.Position.Y,
		Zoom:    camera.Zoom,
	}
	if level := tileMapOf(e); level != nil {
		s.Cols, s.Rows = level.Tiles.Height(), level.Tiles.Width()
	}
	return s
}

// ApplySession restores the camera from a saved session. The zoom goes
// through the same clamp as ZoomCamera.
func ApplySession(e *ecs.ECS, s *SavedSession) {
	if s == nil {
		return
	}
	camera := cameraOf(e)
	*camera = components.CameraData{Zoom: clampZoom(s.Zoom)}
	camera.Position.X = s.CameraX
	camera.Position.Y = s.CameraY
}
