package flappy

// Pipe is one half of an obstacle pair.
type Pipe struct {
	Entity
	Upper   bool
	Crossed bool // Set once the player's center has passed this pipe's center
	vel     float64
}

// Tick moves the pipe left and draws it.
func (p *Pipe) Tick() {
	p.X -= p.vel
	p.draw()
}

// Pipes is the obstacle stream. Upper[i] and Lower[i] always form a pair
// and pairs are ordered left to right.
type Pipes struct {
	ctx   *Context
	Upper []*Pipe
	Lower []*Pipe
	vel   float64
}

// NewPipes creates the stream with two pairs waiting beyond the right edge.
func NewPipes(ctx *Context) *Pipes {
	p := &Pipes{
		ctx: ctx,
		vel: ctx.Cfg.PipeStep(),
	}
	p.spawnInitial()
	return p
}

// Gap returns the vertical clearance between a pair.
func (p *Pipes) Gap() int {
	return p.ctx.Cfg.Pipes.Gap
}

// GapRange returns the inclusive range the top of a gap is drawn from.
// The range collapses to the margin when the window is too short.
func (p *Pipes) GapRange() (lo, hi int) {
	m := p.ctx.Cfg.Pipes.Margin
	hi = p.ctx.FloorY() - p.Gap() - m
	if hi < m {
		hi = m
	}
	return m, hi
}

// Tick spawns a pair when the last one has scrolled far enough in, drops
// pairs that left the screen, then moves and draws the rest.
func (p *Pipes) Tick() {
	if p.canSpawn() {
		p.spawn()
	}
	p.removeOld()

	for i := range p.Upper {
		p.Upper[i].Tick()
		p.Lower[i].Tick()
	}
}

// Stop freezes every pipe, including any spawned afterwards.
func (p *Pipes) Stop() {
	p.vel = 0
	for i := range p.Upper {
		p.Upper[i].vel = 0
		p.Lower[i].vel = 0
	}
}

func (p *Pipes) canSpawn() bool {
	if len(p.Upper) == 0 {
		return true
	}
	last := p.Upper[len(p.Upper)-1]
	free := float64(p.ctx.Window.Width) - (last.X + float64(last.W))
	return free > float64(last.W)*p.ctx.Cfg.Pipes.SpawnDistance
}

func (p *Pipes) spawn() {
	upper, lower := p.makePair()
	p.Upper = append(p.Upper, upper)
	p.Lower = append(p.Lower, lower)
}

func (p *Pipes) spawnInitial() {
	u1, l1 := p.makePair()
	u1.X = float64(p.ctx.Window.Width) + float64(u1.W)*3
	l1.X = u1.X

	u2, l2 := p.makePair()
	u2.X = u1.X + float64(u1.W)*3.5
	l2.X = u2.X

	p.Upper = append(p.Upper, u1, u2)
	p.Lower = append(p.Lower, l1, l2)
}

// removeOld drops pairs whose upper pipe is fully past the left edge.
// Both halves of a pair share x, so they leave together.
func (p *Pipes) removeOld() {
	keep := 0
	for i := range p.Upper {
		if p.Upper[i].X < -float64(p.Upper[i].W) {
			continue
		}
		p.Upper[keep] = p.Upper[i]
		p.Lower[keep] = p.Lower[i]
		keep++
	}
	for i := keep; i < len(p.Upper); i++ {
		p.Upper[i], p.Lower[i] = nil, nil
	}
	p.Upper = p.Upper[:keep]
	p.Lower = p.Lower[:keep]
}

// makePair builds a pair just beyond the right edge with a random gap.
func (p *Pipes) makePair() (*Pipe, *Pipe) {
	lo, hi := p.GapRange()
	gapY := lo + p.ctx.Rng.Intn(hi-lo+1)

	x := float64(p.ctx.Window.Width + p.ctx.Cfg.Pipes.SpawnOffset)
	upperImg, lowerImg := p.ctx.Images.Pipe[0], p.ctx.Images.Pipe[1]

	upper := &Pipe{
		Entity: newEntity(p.ctx, upperImg, x, float64(gapY-upperImg.H())),
		Upper:  true,
		vel:    p.vel,
	}
	lower := &Pipe{
		Entity: newEntity(p.ctx, lowerImg, x, float64(gapY+p.Gap())),
		vel:    p.vel,
	}
	return upper, lower
}
