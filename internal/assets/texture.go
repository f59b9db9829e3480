package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sync"

	"scrollscene/internal/softgl"

	xdraw "golang.org/x/image/draw"
)

// ErrUnsupportedFormat is returned for images no registered decoder accepts.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// DefaultTextureSize is the edge length textures are resampled to.
const DefaultTextureSize = 256

// Texture is a square RGBA image filled in once loading completes.
//
// It is safe to sample before the load finishes; samples report !ok until
// then.
type Texture struct {
	Name string

	mu  sync.RWMutex
	img *image.RGBA
}

// Loaded reports whether the image is available.
func (t *Texture) Loaded() bool {
	if t == nil {
		return false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.img != nil
}

// Size returns the edge length, or 0 if not loaded.
func (t *Texture) Size() int {
	if t == nil {
		return 0
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.img == nil {
		return 0
	}
	return t.img.Bounds().Dx()
}

func (t *Texture) set(img *image.RGBA) {
	t.mu.Lock()
	t.img = img
	t.mu.Unlock()
}

// SampleNormal decodes the texel at (u, v) as a tangent-space normal.
//
// Coordinates wrap. Channels map 0..255 to -1..1.
func (t *Texture) SampleNormal(u, v float32) (softgl.Vec3, bool) {
	if t == nil {
		return softgl.Vec3{}, false
	}
	t.mu.RLock()
	img := t.img
	t.mu.RUnlock()
	if img == nil {
		return softgl.Vec3{}, false
	}

	b := img.Bounds()
	x := wrap(u, b.Dx())
	y := wrap(1-v, b.Dy())
	c := img.RGBAAt(b.Min.X+x, b.Min.Y+y)
	n := softgl.V3(
		float32(c.R)/127.5-1,
		float32(c.G)/127.5-1,
		float32(c.B)/127.5-1,
	)
	n = softgl.Normalize(n)
	if n == (softgl.Vec3{}) {
		return softgl.V3(0, 0, 1), true
	}
	return n, true
}

func wrap(f float32, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(f*float32(n)) % n
	if i < 0 {
		i += n
	}
	return i
}

// TextureLoader loads textures from a root directory.
type TextureLoader struct {
	Root    string
	Size    int
	Manager *LoadingManager
}

// NewTextureLoader returns a loader resolving paths under root.
func NewTextureLoader(root string, m *LoadingManager) *TextureLoader {
	return &TextureLoader{Root: root, Size: DefaultTextureSize, Manager: m}
}

// Load starts loading path and returns the texture immediately.
//
// Decoding runs synchronously; the returned texture is already populated on
// success. onLoad, onProgress and onError may be nil. A failed load leaves
// the texture empty and is not fatal to the caller.
func (l *TextureLoader) Load(path string, onLoad func(*Texture), onProgress func(url string), onError func(error)) *Texture {
	tex := &Texture{Name: path}
	url := l.resolve(path)

	l.Manager.ItemStart(url)
	img, err := l.decode(url)
	if onProgress != nil {
		onProgress(url)
	}
	if err != nil {
		err = fmt.Errorf("load texture %s: %w", path, err)
		l.Manager.ItemError(url, err)
		if onError != nil {
			onError(err)
		}
		l.Manager.ItemEnd(url)
		return tex
	}
	tex.set(img)
	if onLoad != nil {
		onLoad(tex)
	}
	l.Manager.ItemEnd(url)
	return tex
}

func (l *TextureLoader) resolve(path string) string {
	if l.Root == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(l.Root, filepath.FromSlash(path))
}

func (l *TextureLoader) decode(url string) (*image.RGBA, error) {
	f, err := os.Open(url)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, ErrUnsupportedFormat
		}
		return nil, err
	}

	size := l.Size
	if size <= 0 {
		size = DefaultTextureSize
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst, nil
}
