package flappy

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/sound"
)

func TestPlayerVelocityNeverExceedsMax(t *testing.T) {
	ctx, _ := newTestContext(t, config.Default())
	p := NewPlayer(ctx)
	p.SetMode(ModeNormal)

	for i := 0; i < 300; i++ {
		if i%17 == 0 {
			p.Flap()
		}
		p.Tick()
		if p.Velocity() > p.MaxFallSpeed() {
			t.Fatalf("frame %d: velocity %.2f exceeds max %.2f", i, p.Velocity(), p.MaxFallSpeed())
		}
		cfg := ctx.Cfg.Player
		if p.Rotation() < cfg.RotationMin || p.Rotation() > cfg.RotationMax {
			t.Fatalf("frame %d: rotation %.2f outside [%v, %v]", i, p.Rotation(), cfg.RotationMin, cfg.RotationMax)
		}
	}

	p.SetMode(ModeCrash)
	for i := 0; i < 100; i++ {
		p.Tick()
		if p.Velocity() > p.MaxFallSpeed() {
			t.Fatalf("crash frame %d: velocity %.2f exceeds max %.2f", i, p.Velocity(), p.MaxFallSpeed())
		}
	}
}

func TestPlayerFallsWithoutFlap(t *testing.T) {
	ctx, _ := newTestContext(t, config.Default())
	p := NewPlayer(ctx)
	p.SetMode(ModeNormal)
	p.Y = 240

	prevY, prevVel := p.Y, p.Velocity()
	for i := 0; i < 10; i++ {
		p.Tick()
		if p.Y <= prevY {
			t.Errorf("frame %d: y=%.1f did not increase from %.1f", i, p.Y, prevY)
		}
		if p.Velocity() < prevVel {
			t.Errorf("frame %d: velocity decreased from %.1f to %.1f", i, prevVel, p.Velocity())
		}
		prevY, prevVel = p.Y, p.Velocity()
	}
	if p.Velocity() != ctx.Cfg.Player.MaxFallSpeed {
		t.Errorf("velocity after 10 frames = %.1f, want max %.1f", p.Velocity(), ctx.Cfg.Player.MaxFallSpeed)
	}
}

func TestPlayerCrashReachesFloor(t *testing.T) {
	cfg := config.Default()
	cfg.Window.ViewportRatio = 450.0 / 512.0
	ctx, _ := newTestContext(t, cfg)
	if ctx.FloorY() != 450 {
		t.Fatalf("floor at %d, want 450", ctx.FloorY())
	}

	p := NewPlayer(ctx)
	p.SetMode(ModeNormal)
	p.Y = 100
	p.SetMode(ModeCrash)

	for frame := 0; frame < 200; frame++ {
		if p.Bottom() >= float64(ctx.FloorY())-1 {
			return
		}
		p.Tick()
	}
	t.Fatal("crashed player never reached the floor")
}

func TestPlayerSetMode(t *testing.T) {
	ctx, rec := newTestContext(t, config.Default())
	p := NewPlayer(ctx)

	if p.Mode() != ModeSHM {
		t.Fatalf("new player mode = %s, want SHM", p.Mode())
	}

	p.SetMode(ModeNormal)
	if p.Velocity() != 0 {
		t.Errorf("entering NORMAL should reset velocity, got %.1f", p.Velocity())
	}

	rec.Reset()
	p.SetMode(ModeCrash)
	if got, want := rec.Played(), []sound.Name{sound.Hit, sound.Die}; !reflect.DeepEqual(got, want) {
		t.Errorf("crash sounds = %v, want %v", got, want)
	}
	if p.Velocity() != ctx.Cfg.Player.CrashVelocity {
		t.Errorf("crash velocity = %.1f, want %.1f", p.Velocity(), ctx.Cfg.Player.CrashVelocity)
	}

	// Backwards transitions are ignored.
	p.SetMode(ModeNormal)
	p.SetMode(ModeSHM)
	if p.Mode() != ModeCrash {
		t.Errorf("mode went backwards to %s", p.Mode())
	}
}

func TestPlayerCrashTwice(t *testing.T) {
	ctx, rec := newTestContext(t, config.Default())
	p := NewPlayer(ctx)
	p.SetMode(ModeNormal)
	p.Y = 100
	p.SetMode(ModeCrash)
	for i := 0; i < 5; i++ {
		p.Tick()
	}
	vel := p.Velocity()
	if vel == ctx.Cfg.Player.CrashVelocity {
		t.Fatalf("velocity did not change while falling: %.1f", vel)
	}

	p.SetMode(ModeCrash)
	if rec.Count(sound.Hit) != 1 || rec.Count(sound.Die) != 1 {
		t.Errorf("crash sounds played %v, want hit and die once", rec.Played())
	}
	if p.Velocity() != vel {
		t.Errorf("second crash reset velocity to %.1f, want %.1f", p.Velocity(), vel)
	}
}

func TestPlayerFlap(t *testing.T) {
	ctx, rec := newTestContext(t, config.Default())
	p := NewPlayer(ctx)

	p.Flap()
	if rec.Count(sound.Wing) != 0 || p.Velocity() != 0 {
		t.Error("flap in SHM mode should be a no-op")
	}

	p.SetMode(ModeNormal)
	p.Flap()
	if p.Velocity() != ctx.Cfg.Player.FlapVelocity {
		t.Errorf("velocity after flap = %.1f, want %.1f", p.Velocity(), ctx.Cfg.Player.FlapVelocity)
	}
	if rec.Count(sound.Wing) != 1 {
		t.Errorf("wing played %d times, want 1", rec.Count(sound.Wing))
	}

	// The flap frame skips gravity.
	y := p.Y
	p.Tick()
	if want := y + ctx.Cfg.Player.FlapVelocity; p.Y != want {
		t.Errorf("y after flap tick = %.1f, want %.1f", p.Y, want)
	}

	// No flapping above the ceiling limit.
	p.Y = p.minY
	p.Flap()
	if rec.Count(sound.Wing) != 1 {
		t.Error("flap at the ceiling should be ignored")
	}
}

func TestPlayerSHMBobsAroundRest(t *testing.T) {
	ctx, _ := newTestContext(t, config.Default())
	p := NewPlayer(ctx)
	rest := p.Y
	amp := ctx.Cfg.Player.IdleAmplitude

	lo, hi := rest, rest
	for i := 0; i < ctx.Cfg.Player.IdlePeriod*2; i++ {
		p.Tick()
		if p.Y < lo {
			lo = p.Y
		}
		if p.Y > hi {
			hi = p.Y
		}
	}
	if lo < rest-amp-1e-9 || hi > rest+amp+1e-9 {
		t.Errorf("bob range [%.2f, %.2f] exceeds rest %.2f ± %.2f", lo, hi, rest, amp)
	}
	if hi-lo < amp {
		t.Errorf("bob range %.2f too small", hi-lo)
	}
}

func TestPlayerAnimationCycle(t *testing.T) {
	ctx, _ := newTestContext(t, config.Default())
	p := NewPlayer(ctx)
	every := ctx.Cfg.Player.AnimationEvery

	var got []int
	for i := 0; i < every*8; i++ {
		p.Tick()
		if (i+1)%every == 0 {
			got = append(got, p.imgIdx)
		}
	}
	want := []int{0, 1, 2, 1, 0, 1, 2, 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("frames = %v, want %v", got, want)
	}

	p.SetMode(ModeNormal)
	p.SetMode(ModeCrash)
	frozen := p.imgIdx
	for i := 0; i < every*4; i++ {
		p.Tick()
		if p.imgIdx != frozen {
			t.Fatal("wing animation should freeze in CRASH mode")
		}
	}
}

func TestPlayerCrossedOncePerPipe(t *testing.T) {
	ctx, _ := newTestContext(t, config.Default())
	p := NewPlayer(ctx)
	pipes := NewPipes(ctx)
	pipe := pipes.Upper[0]
	pipe.X = p.CenterX() + 12 - float64(pipe.W)/2 // Center 12px ahead of the bird

	crossings := 0
	for i := 0; i < 20; i++ {
		if p.Crossed(pipe) {
			crossings++
			if pipe.CenterX() > p.CenterX() {
				t.Errorf("crossed while pipe center %.1f is ahead of bird center %.1f", pipe.CenterX(), p.CenterX())
			}
		}
		pipe.X -= 2
	}
	if crossings != 1 {
		t.Errorf("crossed %d times, want 1", crossings)
	}
}

func TestCollisionTranslationSymmetry(t *testing.T) {
	ctx, _ := newTestContext(t, config.Default())
	p := NewPlayer(ctx)
	floor := NewFloor(ctx)
	pipes := NewPipes(ctx)
	upper, lower := pipes.Upper[0], pipes.Lower[0]

	for _, dx := range []float64{-60, -35, -20, -5, 0, 10, 30, 33.5, 34, 60} {
		for _, gap := range []float64{60, 150, 240, 300} {
			p.Y = 200
			upper.X, lower.X = p.X+dx, p.X+dx
			upper.Y = gap - float64(upper.H)
			lower.Y = gap + float64(pipes.Gap())
			want := p.Collided(pipes, floor)

			for _, shift := range []float64{-300, -57, 1, 13, 400} {
				px, ux, lx := p.X, upper.X, lower.X
				p.X, upper.X, lower.X = px+shift, ux+shift, lx+shift
				got := p.Collided(pipes, floor)
				p.X, upper.X, lower.X = px, ux, lx
				if got != want {
					t.Errorf("dx=%.1f gap=%.0f shift=%.0f: collided=%v, want %v", dx, gap, shift, got, want)
				}
			}
		}
	}
}

func TestCollisionUsesMasks(t *testing.T) {
	ctx, _ := newTestContext(t, config.Default())
	p := NewPlayer(ctx)
	floor := NewFloor(ctx)
	pipes := NewPipes(ctx)
	pipes.Upper = pipes.Upper[:0]
	pipes.Lower = pipes.Lower[:1]
	lower := pipes.Lower[0]

	// Lower pipe overlapping only the bird's transparent bottom-right corner.
	p.X, p.Y = 50, 100
	lower.X = p.X + float64(p.W) - 2
	lower.Y = p.Y + float64(p.H) - 2

	if !p.Rect().Intersects(lower.Rect()) {
		t.Fatal("setup: rectangles should intersect")
	}
	if p.Collided(pipes, floor) {
		t.Error("corner overlap of transparent pixels should not collide")
	}

	// Move the pipe onto the bird's body.
	lower.X = p.X + float64(p.W)/2
	lower.Y = p.Y + float64(p.H)/2
	if !p.Collided(pipes, floor) {
		t.Error("overlap with the body should collide")
	}
	if p.Cause() != CausePipe {
		t.Errorf("cause = %s, want pipe", p.Cause())
	}
}

func TestCollisionWithFloor(t *testing.T) {
	ctx, _ := newTestContext(t, config.Default())
	p := NewPlayer(ctx)
	floor := NewFloor(ctx)
	pipes := NewPipes(ctx)

	p.Y = floor.Top() - float64(p.H) - 1
	if p.Collided(pipes, floor) {
		t.Fatal("one pixel above the floor should not collide")
	}
	p.Y++
	if !p.Collided(pipes, floor) {
		t.Fatal("touching the floor should collide")
	}
	if p.Cause() != CauseFloor {
		t.Errorf("cause = %s, want floor", p.Cause())
	}
}
