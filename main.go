package main

import (
	"errors"
	"flag"
	"image"
	"log"

	"github.com/automoto/tilecanvas/config"
	"github.com/automoto/tilecanvas/fonts"
	"github.com/automoto/tilecanvas/scenes"
	"github.com/automoto/tilecanvas/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// closer is implemented by scenes that keep state across runs.
type closer interface {
	Close()
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(opts scenes.MapOptions) *Game {
	fonts.LoadDefaults()

	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewMapScene(opts),
	}
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		if c, ok := g.scene.(closer); ok {
			c.Close()
		}
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	cols := flag.Int("cols", config.C.Cols, "Generated map rows (outer dimension)")
	rows := flag.Int("rows", config.C.Rows, "Generated map columns (inner dimension)")
	tile := flag.Int("tile", config.C.TileSize, "Tile size in pixels")
	from := flag.Int("from", config.C.TileFrom, "Lowest generated tile code")
	to := flag.Int("to", config.C.TileTo, "Highest generated tile code")
	assetsDir := flag.String("assets", "data", "Directory holding tile and character images")
	mapPath := flag.String("map", "", "Tiled .tmx map inside the assets directory (empty = generate)")
	layer := flag.String("layer", "", "Tile layer to read from the .tmx map (empty = first)")
	seed := flag.Uint64("seed", 0, "Map seed (0 = saved or random)")
	restore := flag.Bool("restore", true, "Restore the camera from the last session")
	hud := flag.Bool("hud", config.Debug.ShowHUD, "Show the status overlay")
	keepHue := flag.Bool("keep-hue", config.Particles.KeepHue, "Fade particles in their spawn colour instead of white")
	particleColor := flag.String("particle-color", config.Particles.BurstColor, "Particle burst colour (name or #rrggbb)")
	flag.Parse()

	config.C.Cols, config.C.Rows, config.C.TileSize = *cols, *rows, *tile
	config.C.TileFrom, config.C.TileTo = *from, *to
	config.Debug.ShowHUD = *hud
	config.Particles.KeepHue = *keepHue
	config.Particles.BurstColor = *particleColor

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("tilecanvas")
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(config.C.TPS)

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	game := NewGame(scenes.MapOptions{
		AssetsDir: *assetsDir,
		MapPath:   *mapPath,
		Layer:     *layer,
		Seed:      *seed,
		Restore:   *restore,
	})
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
