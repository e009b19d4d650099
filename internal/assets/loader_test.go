package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"testing"
	"testing/fstest"
)

func TestImagesFallBackToPlaceholders(t *testing.T) {
	l := NewLoader(fstest.MapFS{}, 0, nil)
	imgs := l.Images(rand.New(rand.NewSource(1)))

	sizes := []struct {
		name string
		w, h int
		gotW int
		gotH int
	}{
		{"background", BackgroundW, BackgroundH, imgs.Background.W(), imgs.Background.H()},
		{"base", BaseW, BaseH, imgs.Base.W(), imgs.Base.H()},
		{"bird", BirdW, BirdH, imgs.Player[1].W(), imgs.Player[1].H()},
		{"upper pipe", PipeW, PipeH, imgs.Pipe[0].W(), imgs.Pipe[0].H()},
		{"lower pipe", PipeW, PipeH, imgs.Pipe[1].W(), imgs.Pipe[1].H()},
		{"game over", GameOverW, GameOverH, imgs.GameOver.W(), imgs.GameOver.H()},
		{"welcome", WelcomeW, WelcomeH, imgs.Welcome.W(), imgs.Welcome.H()},
		{"digit", DigitW, DigitH, imgs.Numbers[7].W(), imgs.Numbers[7].H()},
	}
	for _, s := range sizes {
		if s.gotW != s.w || s.gotH != s.h {
			t.Errorf("%s placeholder = %dx%d, want %dx%d", s.name, s.gotW, s.gotH, s.w, s.h)
		}
	}

	for i, d := range imgs.Numbers {
		if d == nil || d.Mask.Count() == 0 {
			t.Errorf("digit %d placeholder is blank", i)
		}
	}
	if imgs.Player[0].Mask.Count() == 0 {
		t.Error("bird placeholder has no solid pixels")
	}
}

func TestNilFSUsesPlaceholders(t *testing.T) {
	l := NewLoader(nil, 0, nil)
	imgs := l.Images(rand.New(rand.NewSource(1)))
	if imgs.Background == nil || imgs.Base == nil {
		t.Fatal("expected placeholders with a nil FS")
	}
}

func encodePNG(t *testing.T, w, h int, c color.RGBA) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestLoaderReadsFilesAndReportsManifest(t *testing.T) {
	fsys := fstest.MapFS{
		BasePath:        {Data: encodePNG(t, 10, 4, color.RGBA{R: 1, A: 255})},
		GameOverPath:    {Data: []byte("not a png")},
		"sprites/0.png": {Data: encodePNG(t, 5, 7, color.RGBA{G: 1, A: 255})},
	}
	l := NewLoader(fsys, 0, nil)
	imgs := l.Images(rand.New(rand.NewSource(3)))

	if imgs.Base.W() != 10 || imgs.Base.H() != 4 {
		t.Errorf("base = %dx%d, want file size 10x4", imgs.Base.W(), imgs.Base.H())
	}
	if imgs.Numbers[0].W() != 5 {
		t.Errorf("digit 0 width = %d, want 5", imgs.Numbers[0].W())
	}

	entries := map[string]Entry{}
	for _, e := range l.Manifest() {
		entries[e.Path] = e
	}
	if got := entries[BasePath].Source; got != SourceFile {
		t.Errorf("base source = %s, want file", got)
	}
	bad := entries[GameOverPath]
	if bad.Source != SourcePlaceholder || bad.Err == nil {
		t.Errorf("corrupt game over: source=%s err=%v, want placeholder with error", bad.Source, bad.Err)
	}
	for _, p := range append(append([]string{}, Backgrounds...), Pipes...) {
		if _, ok := entries[p]; !ok {
			t.Errorf("manifest is missing variant %s", p)
		}
	}
}

func TestUpperPipeIsFlippedLower(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 3))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	fsys := fstest.MapFS{}
	for _, p := range Pipes {
		fsys[p] = &fstest.MapFile{Data: buf.Bytes()}
	}

	imgs := NewLoader(fsys, 0, nil).Images(rand.New(rand.NewSource(9)))
	if !imgs.Pipe[1].Mask.At(0, 0) || imgs.Pipe[1].Mask.At(0, 2) {
		t.Error("lower pipe should keep the file orientation")
	}
	if !imgs.Pipe[0].Mask.At(0, 2) || imgs.Pipe[0].Mask.At(0, 0) {
		t.Error("upper pipe should be flipped vertically")
	}
}

func TestInvalidBirdFallsBack(t *testing.T) {
	for _, bird := range []int{-1, len(Birds), 99} {
		if got := NewLoader(nil, bird, nil).Bird(); got != 0 {
			t.Errorf("bird %d: Bird() = %d, want 0", bird, got)
		}
	}
	if got := NewLoader(nil, 2, nil).Bird(); got != 2 {
		t.Errorf("valid bird changed: got %d, want 2", got)
	}
}

func TestVariantsDependOnSeed(t *testing.T) {
	l := NewLoader(nil, 0, nil)
	backgrounds := map[color.RGBA]bool{}
	for seed := int64(0); seed < 20; seed++ {
		imgs := l.Images(rand.New(rand.NewSource(seed)))
		backgrounds[imgs.Background.Img.RGBAAt(0, 0)] = true
	}
	if len(backgrounds) < 2 {
		t.Error("expected both background variants across 20 seeds")
	}
}
