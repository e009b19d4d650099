package assets

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png" // PNG decoder for sprite files
	"io"
	"io/fs"
	"math/rand"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy/internal/sprite"
)

// Source tells where a manifest entry came from.
type Source string

const (
	SourceFile        Source = "file"
	SourcePlaceholder Source = "placeholder"
)

// Entry describes one image in the manifest.
type Entry struct {
	Path   string
	Source Source
	W, H   int
	Err    error // Load failure that caused the placeholder, if any
}

// Loader reads sprites from an fs.FS and caches them. It is safe for
// concurrent use, so SSH sessions can share one loader.
type Loader struct {
	fsys   fs.FS
	bird   int
	logger *log.Logger

	mu      sync.Mutex
	cache   map[string]*sprite.Sprite
	entries map[string]Entry
}

// NewLoader creates a loader over fsys. A nil fsys means "no files", in
// which case every sprite is a placeholder. An out-of-range bird index
// falls back to the first bird.
func NewLoader(fsys fs.FS, bird int, logger *log.Logger) *Loader {
	if bird < 0 || bird >= len(Birds) {
		if logger != nil {
			logger.Warn("unknown bird, using default", "bird", bird)
		}
		bird = 0
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{
		fsys:    fsys,
		bird:    bird,
		logger:  logger,
		cache:   make(map[string]*sprite.Sprite),
		entries: make(map[string]Entry),
	}
}

// Bird returns the bird index in use after fallback.
func (l *Loader) Bird() int { return l.bird }

// Images implements Provider. Background and pipe variants are re-rolled on
// every call; decoded files are reused.
func (l *Loader) Images(rng *rand.Rand) *Images {
	bg := rng.Intn(len(Backgrounds))
	pipe := rng.Intn(len(Pipes))
	lower := l.pipe(pipe)

	imgs := &Images{
		Background: l.background(bg),
		Base:       l.load(BasePath, placeholderBase),
		Pipe:       [2]*sprite.Sprite{l.flipped(Pipes[pipe], lower), lower},
		GameOver:   l.load(GameOverPath, placeholderGameOver),
		Welcome:    l.load(WelcomePath, placeholderWelcome),
	}
	for i, p := range Birds[l.bird] {
		frame := i
		imgs.Player[i] = l.load(p, func() *sprite.Sprite { return placeholderBird(l.bird, frame) })
	}
	for n := range imgs.Numbers {
		digit := n
		imgs.Numbers[n] = l.load(DigitPath(n), func() *sprite.Sprite { return placeholderDigit(digit) })
	}
	return imgs
}

// Manifest loads every known image (all variants) and reports where each
// came from, sorted by path.
func (l *Loader) Manifest() []Entry {
	l.Images(rand.New(rand.NewSource(0)))
	for i := range Backgrounds {
		l.background(i)
	}
	for i := range Pipes {
		l.pipe(i)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, 0, len(l.entries))
	for _, e := range l.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

func (l *Loader) background(i int) *sprite.Sprite {
	return l.load(Backgrounds[i], func() *sprite.Sprite {
		return placeholderBackground([]color.RGBA{skyDay, skyNight}[i])
	})
}

func (l *Loader) pipe(i int) *sprite.Sprite {
	return l.load(Pipes[i], func() *sprite.Sprite {
		return placeholderPipe([]color.RGBA{pipeGreen, pipeRed}[i])
	})
}

// load returns the cached sprite for path, decoding it on first use and
// substituting a placeholder on failure.
func (l *Loader) load(path string, placeholder func() *sprite.Sprite) *sprite.Sprite {
	l.mu.Lock()
	defer l.mu.Unlock()

	if s, ok := l.cache[path]; ok {
		return s
	}

	s, err := l.decode(path)
	entry := Entry{Path: path, Source: SourceFile}
	if err != nil {
		l.logger.Warn("using placeholder sprite", "path", path, "err", err)
		s = placeholder()
		entry.Source = SourcePlaceholder
		entry.Err = err
	}
	entry.W, entry.H = s.W(), s.H()

	l.cache[path] = s
	l.entries[path] = entry
	return s
}

// flipped returns the vertically mirrored version of an already loaded sprite.
func (l *Loader) flipped(path string, s *sprite.Sprite) *sprite.Sprite {
	key := path + "#flip"
	l.mu.Lock()
	defer l.mu.Unlock()
	if f, ok := l.cache[key]; ok {
		return f
	}
	f := s.FlipV()
	l.cache[key] = f
	return f
}

func (l *Loader) decode(path string) (*sprite.Sprite, error) {
	if l.fsys == nil {
		return nil, fmt.Errorf("open %s: %w", path, fs.ErrNotExist)
	}
	f, err := l.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return sprite.New(img), nil
}
