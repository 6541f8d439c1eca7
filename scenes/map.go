package scenes

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"log"
	"math/rand/v2"
	"os"
	"sync"
	"time"

	"github.com/automoto/tilecanvas/assets"
	"github.com/automoto/tilecanvas/canvas"
	"github.com/automoto/tilecanvas/components"
	cfg "github.com/automoto/tilecanvas/config"
	"github.com/automoto/tilecanvas/systems"
	"github.com/automoto/tilecanvas/systems/factory"
	"github.com/automoto/tilecanvas/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	playerID   = 1
	villagerID = 2

	preloadTimeout = 5 * time.Second
)

// MapOptions selects where the scene's map and images come from.
type MapOptions struct {
	AssetsDir string // root of every image path
	MapPath   string // Tiled map inside AssetsDir; empty generates one
	Layer     string // tile layer of MapPath; empty takes the first
	Seed      uint64 // 0 picks one (or reuses the saved session's)
	Restore   bool   // reapply the saved camera
}

// MapScene generates a map, puts a walking player and a villager on it and
// lets the user pan, zoom and spray particles.
type MapScene struct {
	ecs     *ecs.ECS
	opts    MapOptions
	fsys    fs.FS
	loader  *assets.Loader
	seed    uint64
	rng     *rand.Rand
	surface *canvas.EbitenSurface // the retained map layer
	status  string
	once    sync.Once
}

func NewMapScene(opts MapOptions) *MapScene {
	return &MapScene{opts: opts}
}

func (ms *MapScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MapScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

// Close stores the session for the next run.
func (ms *MapScene) Close() {
	if ms.ecs == nil {
		return
	}
	_ = systems.SaveSession(systems.CaptureSession(ms.ecs, ms.seed))
}

func (ms *MapScene) configure() {
	ms.fsys = os.DirFS(ms.opts.AssetsDir)
	ms.loader = assets.NewLoader(ms.fsys)

	saved, _ := systems.LoadSession()
	ms.seed = ms.opts.Seed
	if ms.seed == 0 && saved != nil {
		ms.seed = saved.Seed
	}
	if ms.seed == 0 {
		ms.seed = rand.Uint64()
	}
	ms.rng = rand.New(rand.NewPCG(ms.seed, ms.seed))

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(ms.handleInput)
	ecs.AddSystem(systems.UpdateFrameLoads)
	ecs.AddSystem(systems.WhenRunning(systems.UpdateMovement))
	ecs.AddSystem(systems.ProcessRenderEvents)

	ecs.AddRenderer(cfg.Default, ms.drawMap)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, ms.drawStatus)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	ms.ecs = ecs

	factory.CreateAssets(ecs, ms.loader)
	factory.CreateCamera(ecs)
	factory.CreateParticlePool(ecs, ms.rng)
	factory.CreateFrameScheduler(ecs)
	factory.CreateRoster(ecs)

	systems.OnRenderEvent(ecs, func(ev components.RenderEventData) {
		ms.status = fmt.Sprintf("%s: %s", ev.Kind, ev.Path)
	})

	ms.preload()

	if err := ms.loadMap(); err != nil {
		log.Printf("Warning: Could not load map %q, generating one: %v", ms.opts.MapPath, err)
		ms.generateMap()
	}
	systems.BlockTiles(ecs, solidCodes(ms.level().Atlas))
	ms.resetSurface()

	ms.spawnCharacters()

	if ms.opts.Restore {
		systems.ApplySession(ecs, saved)
	}
}

// preload decodes every known image up front so the first paint does not
// stall on disk reads.
func (ms *MapScene) preload() {
	var paths []string
	for _, p := range cfg.TileImages {
		paths = append(paths, p)
	}
	for _, c := range cfg.Characters {
		paths = append(paths, c.Image, c.Sheet.Path)
	}

	ctx, cancel := context.WithTimeout(context.Background(), preloadTimeout)
	defer cancel()
	if err := ms.loader.Preload(ctx, paths); err != nil {
		log.Printf("Warning: Could not preload images: %v", err)
	}
}

func (ms *MapScene) loadMap() error {
	if ms.opts.MapPath == "" {
		ms.generateMap()
		return nil
	}
	tiles, atlas, err := tilemap.LoadTMX(ms.fsys, ms.opts.MapPath, ms.opts.Layer)
	if err != nil {
		return err
	}
	systems.SetTileMap(ms.ecs, tiles, atlas, cfg.C.TileSize)
	return nil
}

func (ms *MapScene) generateMap() {
	tiles, err := tilemap.Generate(cfg.C.Cols, cfg.C.Rows, cfg.C.TileFrom, cfg.C.TileTo, ms.rng)
	if err != nil {
		log.Printf("Warning: Could not generate map: %v", err)
		tiles = tilemap.TileMap{}
	}
	systems.SetTileMap(ms.ecs, tiles, tilemap.Atlas(cfg.TileImages), cfg.C.TileSize)
}

// resetSurface sizes the map layer to the current map and paints it.
func (ms *MapScene) resetSurface() {
	level := ms.level()
	w, h := level.PixelSize()
	if ms.surface == nil || ms.surface.Bounds().Dx() != max(w, 1) || ms.surface.Bounds().Dy() != max(h, 1) {
		ms.surface = canvas.NewEbitenSurface(ebiten.NewImage(max(w, 1), max(h, 1)))
	}

	systems.InitializeEngine(ms.surface)
	systems.PlaceGrid(ms.ecs, ms.surface)
	systems.DrawCharacters(ms.ecs, ms.surface)
}

func (ms *MapScene) spawnCharacters() {
	player := cfg.Characters["player"]
	villager := cfg.Characters["villager"]

	x, y := openCell(ms.ecs, false)
	if err := systems.AddAnimatedCharacter(ms.ecs, playerID, x, y, player.Sheet.Path, player.Sheet.Frames); err != nil {
		log.Printf("Warning: Could not add player: %v", err)
	}
	x, y = openCell(ms.ecs, true)
	if err := systems.AddCharacter(ms.ecs, ms.surface, villagerID, x, y, villager.Image); err != nil {
		log.Printf("Warning: Could not add villager: %v", err)
	}
}

// openCell returns the first unblocked cell in row-major order, or the last
// one when fromEnd is set. (0, 0) if every cell is blocked.
func openCell(e *ecs.ECS, fromEnd bool) (int, int) {
	level := levelOf(e)
	w, h := level.Tiles.Width(), level.Tiles.Height()
	for n := range w * h {
		i := n
		if fromEnd {
			i = w*h - 1 - n
		}
		x, y := i%w, i/w
		if !systems.IsBlocked(e, x, y) {
			return x, y
		}
	}
	return 0, 0
}

// relocateCharacters stops the player's walk and puts any character left on
// a blocked or off-map cell back on an open one: the player from the start
// of the map, the villager from the end.
func relocateCharacters(e *ecs.ECS, surface canvas.Surface) {
	systems.StopMovement(e, playerID)

	level := levelOf(e)
	for _, id := range []int{playerID, villagerID} {
		entry, ok := systems.FindCharacter(e, id)
		if !ok {
			continue
		}
		c := components.Character.Get(entry)
		if _, inside := level.Tiles.At(c.X, c.Y); inside && !systems.IsBlocked(e, c.X, c.Y) {
			continue
		}
		x, y := openCell(e, id == villagerID)
		if err := systems.MoveCharacter(e, surface, id, x, y); err != nil {
			log.Printf("Warning: Could not relocate character %d: %v", id, err)
		}
	}
}

func (ms *MapScene) handleInput(e *ecs.ECS) {
	input := systems.Input(e)
	pressed := func(id cfg.ActionID) bool {
		return systems.GetAction(input, id).JustPressed
	}

	if pressed(cfg.ActionToggleHUD) {
		cfg.Debug.ShowHUD = !cfg.Debug.ShowHUD
	}
	if pressed(cfg.ActionToggleDebug) {
		cfg.Debug.ShowCollisions = !cfg.Debug.ShowCollisions
	}
	if systems.IsPaused(e) {
		return
	}

	switch {
	case pressed(cfg.ActionZoomIn):
		systems.ZoomCamera(e, cfg.Camera.ZoomStep)
	case pressed(cfg.ActionZoomOut):
		systems.ZoomCamera(e, 1/cfg.Camera.ZoomStep)
	case pressed(cfg.ActionResetCamera):
		systems.ResetCamera(e)
	case pressed(cfg.ActionCenterCamera):
		ms.centerOnPlayer()
	}

	if pressed(cfg.ActionRegenerate) {
		ms.regenerate()
	}

	dx, dy := 0, 0
	switch {
	case input.Current[cfg.ActionMoveLeft]:
		dx = -1
	case input.Current[cfg.ActionMoveRight]:
		dx = 1
	case input.Current[cfg.ActionMoveUp]:
		dy = -1
	case input.Current[cfg.ActionMoveDown]:
		dy = 1
	}
	if dx != 0 || dy != 0 {
		ms.stepPlayer(dx, dy)
	}

	if pressed(cfg.ActionBurst) {
		if entry, ok := systems.FindCharacter(e, playerID); ok {
			c := components.Character.Get(entry)
			ts := float64(cfg.C.TileSize)
			ms.burst(float64(c.X)*ts+ts/2, float64(c.Y)*ts+ts/2)
		}
	}
	if input.Clicked {
		m := systems.CameraTransform(systems.Camera(e))
		if m.IsInvertible() {
			m.Invert()
			ms.burst(m.Apply(float64(input.CursorX), float64(input.CursorY)))
		}
	}
}

// stepPlayer starts a one-cell move unless the player is already walking or
// the cell is off the map.
func (ms *MapScene) stepPlayer(dx, dy int) {
	if systems.IsMoving(ms.ecs, playerID) {
		return
	}
	entry, ok := systems.FindCharacter(ms.ecs, playerID)
	if !ok {
		return
	}
	c := components.Character.Get(entry)
	x, y := c.X+dx, c.Y+dy

	level := ms.level()
	if _, inside := level.Tiles.At(x, y); !inside {
		return
	}

	err := systems.MoveAnimatedCharacter(ms.ecs, playerID, x, y)
	if errors.Is(err, systems.ErrBlocked) {
		ms.status = fmt.Sprintf("cell %d,%d is blocked", x, y)
	}
}

func (ms *MapScene) centerOnPlayer() {
	entry, ok := systems.FindCharacter(ms.ecs, playerID)
	if !ok {
		return
	}
	systems.SetCameraPosition(ms.ecs, components.Character.Get(entry), cfg.C.TileSize,
		float64(cfg.C.Width), float64(cfg.C.Height))
}

func (ms *MapScene) burst(x, y float64) {
	c, err := canvas.ParseColor(cfg.Particles.BurstColor)
	if err != nil {
		log.Printf("Warning: Could not parse particle colour %q: %v", cfg.Particles.BurstColor, err)
		c = cfg.White
	}
	systems.SummonParticles(ms.ecs, x, y, cfg.Particles.BurstCount, cfg.Particles.BurstSize, c)
	systems.StartParticleAnimation(ms.ecs)
}

// regenerate replaces the map with a fresh one from a new seed. Images that
// failed before are read again.
func (ms *MapScene) regenerate() {
	ms.seed = ms.rng.Uint64()
	ms.rng = rand.New(rand.NewPCG(ms.seed, ms.seed))
	ms.generateMap()

	systems.RemoveCollisions(ms.ecs)
	systems.BlockTiles(ms.ecs, solidCodes(ms.level().Atlas))
	relocateCharacters(ms.ecs, ms.surface)
	systems.ForgetFailures(ms.ecs)
	ms.resetSurface()
}

// drawMap repaints the map layer where characters moved, shows it through
// the camera and runs this frame's scheduled callbacks on top.
func (ms *MapScene) drawMap(e *ecs.ECS, screen *ebiten.Image) {
	systems.DrawMovement(e, ms.surface)

	view := canvas.NewEbitenSurface(screen)
	b := ms.surface.Bounds()
	systems.WithCamera(e, view, func() {
		view.DrawImage(ms.surface.Target(), 0, 0, float64(b.Dx()), float64(b.Dy()))
	})

	if systems.IsPaused(e) {
		systems.RenderScene(e, view)
		systems.DrawDebug(e, view)
		return
	}
	systems.WithCamera(e, view, func() {
		systems.RunFrame(e, view)
	})
	systems.DrawDebug(e, view)
}

func (ms *MapScene) drawStatus(e *ecs.ECS, screen *ebiten.Image) {
	if ms.status == "" {
		return
	}
	ebitenutil.DebugPrintAt(screen, ms.status, 8, screen.Bounds().Dy()-20)
}

// solidCodes maps config.SolidTiles onto atlas codes by image path, so a
// Tiled map blocks the same terrain as a generated one.
func solidCodes(atlas tilemap.Atlas) map[int]bool {
	solidPaths := make(map[string]bool)
	for code := range cfg.SolidTiles {
		solidPaths[cfg.TileImages[code]] = true
	}
	solid := make(map[int]bool)
	for code, p := range atlas {
		if solidPaths[p] {
			solid[code] = true
		}
	}
	return solid
}

func (ms *MapScene) level() *components.TileMapData {
	return levelOf(ms.ecs)
}

// levelOf returns the scene's map. configure always installs one.
func levelOf(e *ecs.ECS) *components.TileMapData {
	entry, ok := components.TileMap.First(e.World)
	if !ok {
		panic("map scene has no tile map")
	}
	return components.TileMap.Get(entry)
}
