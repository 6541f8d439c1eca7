package assets

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"runtime"
	"sync"

	"github.com/automoto/tilecanvas/canvas"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/sync/errgroup"
)

// ErrEmptyPath is returned when an image is requested with an empty path,
// which is what a tile code without an atlas entry resolves to.
var ErrEmptyPath = errors.New("assets: empty image path")

// DecodeFunc turns encoded image bytes into a drawable image.
type DecodeFunc func(r io.Reader) (canvas.Image, error)

// SliceFunc cuts a horizontal sprite sheet into count frames of size×size.
type SliceFunc func(sheet canvas.Image, count, size int) ([]canvas.Image, error)

type Option func(*Loader)

func WithDecoder(d DecodeFunc) Option {
	return func(l *Loader) { l.decode = d }
}

func WithSlicer(s SliceFunc) Option {
	return func(l *Loader) { l.slice = s }
}

// Loader reads images from a filesystem and caches them by path. Sliced
// sprite frames are cached per sheet, frame count and size. A path that
// failed to load keeps failing from the cache until Forget is called.
// Loader is safe for concurrent use.
type Loader struct {
	fsys   fs.FS
	decode DecodeFunc
	slice  SliceFunc

	mu         sync.Mutex
	cache      map[string]canvas.Image
	failed     map[string]error
	frameCache map[string][]canvas.Image
}

func NewLoader(fsys fs.FS, opts ...Option) *Loader {
	l := &Loader{
		fsys:       fsys,
		decode:     DecodeEbiten,
		slice:      SliceEbiten,
		cache:      make(map[string]canvas.Image),
		failed:     make(map[string]error),
		frameCache: make(map[string][]canvas.Image),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Image returns the decoded image at path.
func (l *Loader) Image(path string) (canvas.Image, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	l.mu.Lock()
	if img, ok := l.cache[path]; ok {
		l.mu.Unlock()
		return img, nil
	}
	if err, ok := l.failed[path]; ok {
		l.mu.Unlock()
		return nil, err
	}
	l.mu.Unlock()

	img, err := l.load(path)

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.failed[path] = err
		return nil, err
	}
	if cached, ok := l.cache[path]; ok {
		// Lost a race with another loader of the same path.
		return cached, nil
	}
	l.cache[path] = img
	return img, nil
}

func (l *Loader) load(path string) (canvas.Image, error) {
	f, err := l.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", path, err)
	}
	defer f.Close()

	img, err := l.decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}

// Frames returns the sprite sheet at path cut into count frames, each
// re-rendered to size×size.
func (l *Loader) Frames(path string, count, size int) ([]canvas.Image, error) {
	key := fmt.Sprintf("%s#%d@%d", path, count, size)

	l.mu.Lock()
	if frames, ok := l.frameCache[key]; ok {
		l.mu.Unlock()
		return frames, nil
	}
	l.mu.Unlock()

	sheet, err := l.Image(path)
	if err != nil {
		return nil, err
	}
	frames, err := l.slice(sheet, count, size)
	if err != nil {
		return nil, fmt.Errorf("slice sheet %s: %w", path, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if cached, ok := l.frameCache[key]; ok {
		return cached, nil
	}
	l.frameCache[key] = frames
	return frames, nil
}

// Forget drops path from both the image cache and the failure cache so the
// next request reads it again.
func (l *Loader) Forget(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.cache, path)
	delete(l.failed, path)
}

// Preload decodes paths in parallel. It returns the first load error; images
// that did load stay cached.
func (l *Loader) Preload(ctx context.Context, paths []string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for _, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, err := l.Image(p)
			return err
		})
	}
	return g.Wait()
}

// DecodeEbiten decodes any registered image format into an *ebiten.Image.
func DecodeEbiten(r io.Reader) (canvas.Image, error) {
	img, _, err := ebitenutil.NewImageFromReader(r)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// SliceEbiten cuts an *ebiten.Image sheet into count equal-width frames and
// draws each onto its own size×size offscreen image.
func SliceEbiten(sheet canvas.Image, count, size int) ([]canvas.Image, error) {
	src, ok := sheet.(*ebiten.Image)
	if !ok {
		return nil, fmt.Errorf("sheet is %T, not *ebiten.Image", sheet)
	}
	if count <= 0 || size <= 0 {
		return nil, fmt.Errorf("invalid slice %d frames of %dpx", count, size)
	}

	b := src.Bounds()
	frameWidth := b.Dx() / count
	if frameWidth == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("sheet %dx%d too small for %d frames", b.Dx(), b.Dy(), count)
	}

	frames := make([]canvas.Image, 0, count)
	op := &ebiten.DrawImageOptions{}
	for i := 0; i < count; i++ {
		sx := b.Min.X + i*frameWidth
		sub := src.SubImage(image.Rect(sx, b.Min.Y, sx+frameWidth, b.Max.Y)).(*ebiten.Image)

		frame := ebiten.NewImage(size, size)
		op.GeoM.Reset()
		op.GeoM.Scale(float64(size)/float64(frameWidth), float64(size)/float64(b.Dy()))
		frame.DrawImage(sub, op)
		frames = append(frames, frame)
	}
	return frames, nil
}
