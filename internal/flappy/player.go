package flappy

import (
	"math"

	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/sound"
)

// PlayerMode selects how the bird moves.
type PlayerMode int

const (
	ModeSHM    PlayerMode = iota // Idle bob on the splash screen
	ModeNormal                   // Gravity and flaps
	ModeCrash                    // Ballistic fall after a collision
)

// String returns the mode name.
func (m PlayerMode) String() string {
	switch m {
	case ModeSHM:
		return "SHM"
	case ModeNormal:
		return "NORMAL"
	case ModeCrash:
		return "CRASH"
	default:
		return "UNKNOWN"
	}
}

// CrashCause records what the bird hit.
type CrashCause int

const (
	CauseNone CrashCause = iota
	CausePipe
	CauseFloor
)

// String returns the cause name.
func (c CrashCause) String() string {
	switch c {
	case CausePipe:
		return "pipe"
	case CauseFloor:
		return "floor"
	default:
		return "none"
	}
}

// wingCycle is the order animation frames are shown in.
var wingCycle = [...]int{0, 1, 2, 1}

// Player is the bird.
type Player struct {
	Entity

	mode     PlayerMode
	cause    CrashCause
	vel      float64
	rot      float64
	flapped  bool // Gravity is skipped on the frame of a flap
	minY     float64
	maxY     float64
	midY     float64 // Rest height for the idle bob
	shmFrame int

	frame      int
	wingPos    int
	wingFrozen bool
	imgIdx     int
}

// NewPlayer places the bird at 20% of the width, vertically centered.
// It starts in SHM mode.
func NewPlayer(ctx *Context) *Player {
	img := ctx.Images.Player[0]
	x := float64(int(float64(ctx.Window.Width) * ctx.Cfg.Player.XRatio))
	y := float64((ctx.Window.Height - img.H()) / 2)

	p := &Player{Entity: newEntity(ctx, img, x, y)}
	p.minY = -2 * float64(p.H)
	p.maxY = float64(ctx.FloorY()) - float64(p.H)*0.75
	p.SetMode(ModeSHM)
	return p
}

// Mode returns the current mode.
func (p *Player) Mode() PlayerMode { return p.mode }

// Cause returns what ended the run, if anything.
func (p *Player) Cause() CrashCause { return p.cause }

// Velocity returns the vertical velocity in pixels per frame.
func (p *Player) Velocity() float64 { return p.vel }

// Rotation returns the tilt in degrees, positive nose-up.
func (p *Player) Rotation() float64 { return p.rot }

// MaxFallSpeed returns the velocity cap of the current mode.
func (p *Player) MaxFallSpeed() float64 {
	if p.mode == ModeCrash {
		return p.ctx.Cfg.Player.CrashMaxFallSpeed
	}
	return p.ctx.Cfg.Player.MaxFallSpeed
}

// SetMode switches behavior. Modes only move forward within a round
// (SHM, NORMAL, CRASH); a backwards request is ignored. SHM and NORMAL
// reset velocity; CRASH starts the fall and plays the hit and die sounds
// once, so crashing again is a no-op.
func (p *Player) SetMode(mode PlayerMode) {
	if mode < p.mode || (mode == ModeCrash && p.mode == ModeCrash) {
		return
	}
	cfg := p.ctx.Cfg.Player
	p.mode = mode

	switch mode {
	case ModeSHM:
		p.vel = 0
		p.rot = 0
		p.midY = p.Y
		p.shmFrame = 0
	case ModeNormal:
		p.vel = 0
		p.rot = 0
		p.flapped = false
	case ModeCrash:
		p.vel = cfg.CrashVelocity
		p.wingFrozen = true
		p.ctx.Sounds.Play(sound.Hit)
		p.ctx.Sounds.Play(sound.Die)
	}
}

// Flap gives an upward impulse. Only works in NORMAL mode and while the
// bird is below the ceiling limit.
func (p *Player) Flap() {
	if p.mode != ModeNormal || p.Y <= p.minY {
		return
	}
	cfg := p.ctx.Cfg.Player
	p.vel = cfg.FlapVelocity
	p.rot = cfg.FlapRotation
	p.flapped = true
	p.ctx.Sounds.Play(sound.Wing)
}

// Tick advances animation and motion, then draws the bird.
func (p *Player) Tick() {
	p.updateImage()

	switch p.mode {
	case ModeSHM:
		p.tickSHM()
	case ModeNormal:
		p.tickNormal()
	case ModeCrash:
		p.tickCrash()
	}

	p.drawRotated()
}

func (p *Player) updateImage() {
	p.frame++
	if p.wingFrozen || p.frame%p.ctx.Cfg.Player.AnimationEvery != 0 {
		return
	}
	p.imgIdx = wingCycle[p.wingPos]
	p.wingPos = (p.wingPos + 1) % len(wingCycle)
	p.setImage(p.ctx.Images.Player[p.imgIdx])
}

func (p *Player) tickSHM() {
	cfg := p.ctx.Cfg.Player
	period := float64(core.Max(cfg.IdlePeriod, 1))
	p.shmFrame++
	phase := 2 * math.Pi * float64(p.shmFrame) / period
	p.Y = p.midY + cfg.IdleAmplitude*math.Sin(phase)
	p.vel = cfg.IdleAmplitude * 2 * math.Pi / period * math.Cos(phase)
}

func (p *Player) tickNormal() {
	cfg := p.ctx.Cfg.Player
	if !p.flapped {
		p.vel += cfg.Gravity
	}
	p.flapped = false
	p.vel = math.Min(p.vel, cfg.MaxFallSpeed)
	p.Y = core.ClampF(p.Y+p.vel, p.minY, p.maxY)
	p.rotate(cfg.RotationVelocity)
}

func (p *Player) tickCrash() {
	cfg := p.ctx.Cfg.Player
	if p.Y >= p.minY && p.Y <= p.maxY {
		p.Y = core.ClampF(p.Y+p.vel, p.minY, p.maxY)
		if p.cause != CauseFloor {
			p.rotate(cfg.CrashRotationVelocity)
		}
	}
	p.vel = math.Min(p.vel+cfg.CrashGravity, cfg.CrashMaxFallSpeed)
}

func (p *Player) rotate(step float64) {
	cfg := p.ctx.Cfg.Player
	p.rot = core.ClampF(p.rot+step, cfg.RotationMin, cfg.RotationMax)
}

func (p *Player) drawRotated() {
	cfg := p.ctx.Cfg.Player
	rot := core.ClampF(p.rot, cfg.RotationMin, cfg.RotationMax)
	cx := math.Floor(p.X) + float64(p.W)/2
	cy := math.Floor(p.Y) + float64(p.H)/2
	p.ctx.Canvas.DrawRotated(p.Img, cx, cy, rot)
}

// Collided reports whether the bird hit the floor or a pipe and records
// the cause. The floor is checked first.
func (p *Player) Collided(pipes *Pipes, floor *Floor) bool {
	if p.Bottom() >= floor.Top() {
		p.cause = CauseFloor
		return true
	}
	for _, group := range [][]*Pipe{pipes.Upper, pipes.Lower} {
		for _, pipe := range group {
			if p.collide(&pipe.Entity) {
				p.cause = CausePipe
				return true
			}
		}
	}
	return false
}

// Crossed reports true exactly once per pipe: on the first call where the
// bird's center is at or past the pipe's center.
func (p *Player) Crossed(pipe *Pipe) bool {
	if pipe.Crossed || p.CenterX() < pipe.CenterX() {
		return false
	}
	pipe.Crossed = true
	return true
}
