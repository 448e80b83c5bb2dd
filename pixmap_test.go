package zenith

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/kosmit147/zenith2d/internal/parallel"
)

// Verify at compile time that Pixmap is a draw.Image.
var _ draw.Image = (*Pixmap)(nil)

func TestPixmapSetPixel_OutOfBounds(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.Clear(Black)

	original := append([]uint8(nil), pm.Data()...)

	oob := []struct{ x, y int }{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10},
		{-100, -100}, {100, 100},
	}
	for _, c := range oob {
		pm.SetPixel(c.x, c.y, Red)
		if got := pm.Pixel(c.x, c.y); got != Transparent {
			t.Errorf("Pixel(%d, %d) = %v, want Transparent", c.x, c.y, got)
		}
	}
	if !bytes.Equal(pm.Data(), original) {
		t.Fatal("out-of-bounds write modified data")
	}
}

func TestPixmapSetPixelExact(t *testing.T) {
	pm := NewPixmap(4, 3)
	c := RGBA8(10, 20, 30, 40)
	pm.SetPixel(3, 2, c)

	i := (2*4 + 3) * 4
	if d := pm.Data()[i : i+4]; d[0] != 10 || d[1] != 20 || d[2] != 30 || d[3] != 40 {
		t.Errorf("raw data = %v, want [10 20 30 40]", d)
	}
	if got := pm.Pixel(3, 2); got != c {
		t.Errorf("Pixel() = %v, want %v", got, c)
	}
	if pm.Stride() != 16 {
		t.Errorf("Stride() = %d, want 16", pm.Stride())
	}
}

func TestNewPixmapNegative(t *testing.T) {
	pm := NewPixmap(-3, 5)
	if w, h := pm.Size(); w != 0 || h != 5 || len(pm.Data()) != 0 {
		t.Errorf("NewPixmap(-3, 5) = %dx%d with %d bytes, want 0x5 with 0", w, h, len(pm.Data()))
	}
	pm.Clear(Red) // must not panic
}

func TestPixmapClear(t *testing.T) {
	pm := NewPixmap(7, 5)
	pm.Clear(Cyan)
	if got := pm.CountColor(Cyan); got != 35 {
		t.Errorf("CountColor(Cyan) = %d, want 35", got)
	}
}

func TestPixmapClearParallel(t *testing.T) {
	pool := parallel.NewWorkerPool(4)
	defer pool.Close()

	for _, size := range [][2]int{{1, 1}, {3, 2}, {64, 17}, {200, 150}} {
		seq := NewPixmap(size[0], size[1])
		par := NewPixmap(size[0], size[1])
		seq.Clear(Magenta)
		par.ClearParallel(Magenta, pool)
		if !bytes.Equal(seq.Data(), par.Data()) {
			t.Errorf("%dx%d: ClearParallel differs from Clear", size[0], size[1])
		}
	}

	// Nil and closed pools clear sequentially.
	pm := NewPixmap(10, 10)
	pm.ClearParallel(Red, nil)
	closed := parallel.NewWorkerPool(2)
	closed.Close()
	pm.ClearParallel(Blue, closed)
	if pm.CountColor(Blue) != 100 {
		t.Error("ClearParallel with a closed pool did not clear")
	}
}

func TestPixmapResize(t *testing.T) {
	pm := NewPixmap(20, 20)
	pm.Clear(Red)
	backing := &pm.Data()[0]

	if !pm.Resize(10, 5) {
		t.Fatal("Resize(10, 5) = false, want true")
	}
	if w, h := pm.Size(); w != 10 || h != 5 {
		t.Errorf("Size() = %dx%d, want 10x5", w, h)
	}
	if &pm.Data()[0] != backing {
		t.Error("shrinking Resize reallocated the backing array")
	}
	if pm.CountColor(Transparent) != 50 {
		t.Error("Resize did not clear to transparent")
	}
	if pm.Resize(10, 5) {
		t.Error("Resize to the same size = true, want false")
	}
	pm.Resize(30, 30)
	if len(pm.Data()) != 30*30*4 {
		t.Errorf("len(Data()) = %d, want %d", len(pm.Data()), 30*30*4)
	}
}

func TestPixmapImageInterop(t *testing.T) {
	pm := NewPixmap(3, 2)
	pm.Set(1, 1, color.NRGBA{R: 200, G: 100, B: 50, A: 128})
	if got := pm.Pixel(1, 1); got != RGBA8(200, 100, 50, 128) {
		t.Errorf("Set/Pixel = %v, want non-premultiplied round trip", got)
	}

	img := pm.ToImage()
	if img.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Errorf("ToImage().Bounds() = %v", img.Bounds())
	}
	img.Pix[0] = 99
	if pm.Data()[0] == 99 {
		t.Error("ToImage shares memory with the pixmap")
	}

	back := FromImage(img)
	if got := back.Pixel(1, 1); got != RGBA8(200, 100, 50, 128) {
		t.Errorf("FromImage() pixel = %v", got)
	}

	// Sub-image bounds that do not start at the origin.
	src := image.NewNRGBA(image.Rect(5, 5, 8, 8))
	src.SetNRGBA(6, 7, color.NRGBA{G: 255, A: 255})
	if got := FromImage(src).Pixel(1, 2); got != Green {
		t.Errorf("FromImage(offset) pixel = %v, want %v", got, Green)
	}
}

func TestPixmapSavePNG(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.SetPixel(2, 1, Red)
	path := filepath.Join(t.TempDir(), "out.png")
	if err := pm.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() = %v", err)
	}
	if got := FromColor(img.At(2, 1)); got != Red {
		t.Errorf("decoded pixel = %v, want %v", got, Red)
	}

	if err := pm.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("SavePNG() into a missing directory should fail")
	}
}

func BenchmarkPixmapClear(b *testing.B) {
	pm := NewPixmap(1920, 1080)
	b.Run("sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			pm.Clear(Red)
		}
	})
	b.Run("parallel", func(b *testing.B) {
		pool := parallel.NewWorkerPool(0)
		defer pool.Close()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			pm.ClearParallel(Red, pool)
		}
	})
}
