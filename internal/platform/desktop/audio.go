package desktop

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/vovakirdan/flappy/internal/sound"
)

// Audio plays effects through Ebitengine's mixer. Each effect owns one
// player, so replaying an effect restarts it.
type Audio struct {
	ctx     *audio.Context
	players map[sound.Name]*audio.Player
	logger  *log.Logger
}

// NewAudio decodes every effect from fsys, synthesizing the ones that are
// missing. Only one audio context may exist per process; an existing one
// is reused.
func NewAudio(fsys fs.FS, sampleRate int, logger *log.Logger) *Audio {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}

	a := &Audio{
		ctx:     ctx,
		players: make(map[sound.Name]*audio.Player, len(sound.Names)),
		logger:  logger,
	}
	for _, name := range sound.Names {
		pcm, err := decodeWAV(fsys, name, ctx.SampleRate())
		if err != nil {
			logger.Warn("using synthesized sound", "name", name, "err", err)
			pcm = sound.PCM16(name, ctx.SampleRate())
		}
		a.players[name] = ctx.NewPlayerFromBytes(pcm)
	}
	return a
}

// decodeWAV reads name's file as 16-bit stereo PCM at sampleRate.
func decodeWAV(fsys fs.FS, name sound.Name, sampleRate int) ([]byte, error) {
	if fsys == nil {
		return nil, fmt.Errorf("open %s: %w", name.Path(), fs.ErrNotExist)
	}
	data, err := fs.ReadFile(fsys, name.Path())
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name.Path(), err)
	}
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name.Path(), err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name.Path(), err)
	}
	return pcm, nil
}

// Play restarts name from the beginning.
func (a *Audio) Play(name sound.Name) {
	p, ok := a.players[name]
	if !ok {
		return
	}
	if err := p.Rewind(); err != nil {
		a.logger.Debug("rewind failed", "name", name, "err", err)
	}
	p.Play()
}

// StopAll pauses every effect and rewinds it.
func (a *Audio) StopAll() {
	for name, p := range a.players {
		p.Pause()
		if err := p.Rewind(); err != nil {
			a.logger.Debug("rewind failed", "name", name, "err", err)
		}
	}
}

var _ sound.Set = (*Audio)(nil)
