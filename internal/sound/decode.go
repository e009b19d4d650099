package sound

import (
	"fmt"
	"io"
	"io/fs"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// Format is the in-memory layout every backend buffers effects in.
func Format(sampleRate int) beep.Format {
	return beep.Format{SampleRate: beep.SampleRate(sampleRate), NumChannels: 2, Precision: 2}
}

// Decode reads name's wav file from fsys, resampled to sampleRate.
func Decode(fsys fs.FS, name Name, sampleRate int) (beep.Streamer, error) {
	if fsys == nil {
		return nil, fmt.Errorf("open %s: %w", name.Path(), fs.ErrNotExist)
	}
	f, err := fsys.Open(name.Path())
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name.Path(), err)
	}
	s, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", name.Path(), err)
	}
	// Buffer the whole file now so the handle can be closed.
	tmp := beep.NewBuffer(format)
	tmp.Append(s)
	s.Close()

	var out beep.Streamer = tmp.Streamer(0, tmp.Len())
	if rate := beep.SampleRate(sampleRate); format.SampleRate != rate {
		out = beep.Resample(4, format.SampleRate, rate, out)
	}
	return out, nil
}

// Load buffers name at sampleRate, falling back to the synthesized tone
// when the file is missing or broken. A nil logger discards the warning.
func Load(fsys fs.FS, name Name, sampleRate int, logger *log.Logger) *beep.Buffer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s, err := Decode(fsys, name, sampleRate)
	if err != nil {
		logger.Warn("using synthesized sound", "name", name, "err", err)
		s = synthesize(name, beep.SampleRate(sampleRate))
	}
	buf := beep.NewBuffer(Format(sampleRate))
	buf.Append(s)
	return buf
}
