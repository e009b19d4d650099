// Package beepsound plays the game's effects through the system speaker.
// It is split from package sound because the speaker links the platform
// audio library; only the terminal command imports it.
package beepsound

import (
	"fmt"
	"io"
	"io/fs"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/flappy/internal/sound"
)

// Beep plays effects through the system speaker. Every effect is decoded
// (or synthesized) into memory up front, so Play only queues a buffer
// streamer on the mixer.
type Beep struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	buffers     map[sound.Name]*beep.Buffer
	initialized bool
	logger      *log.Logger
}

// New loads every effect from fsys at the given sample rate. Files that
// are missing or fail to decode are replaced by synthesized tones.
// The speaker is not touched until Init.
func New(fsys fs.FS, sampleRate int, logger *log.Logger) *Beep {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	b := &Beep{
		rate:    beep.SampleRate(sampleRate),
		mixer:   &beep.Mixer{},
		buffers: make(map[sound.Name]*beep.Buffer, len(sound.Names)),
		logger:  logger,
	}
	for _, name := range sound.Names {
		b.buffers[name] = sound.Load(fsys, name, sampleRate, logger)
	}
	return b
}

// Init opens the speaker with a 100ms buffer and starts the mixer.
func (b *Beep) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}
	if err := speaker.Init(b.rate, b.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(b.mixer)
	b.initialized = true
	return nil
}

// Play queues a fresh streamer for name. Unknown names and calls before
// Init are ignored.
func (b *Beep) Play(name sound.Name) {
	b.mu.Lock()
	defer b.mu.Unlock()

	buf, ok := b.buffers[name]
	if !ok || !b.initialized {
		return
	}
	speaker.Lock()
	b.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()
}

// StopAll drops every queued or playing effect.
func (b *Beep) StopAll() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	speaker.Lock()
	b.mixer.Clear()
	speaker.Unlock()
}

// Close silences the speaker and stops accepting effects until the next Init.
func (b *Beep) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	speaker.Clear()
	b.initialized = false
}

var _ sound.Set = (*Beep)(nil)
