package flappy

import (
	"image"
	"image/color"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy/internal/assets"
	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/sound"
)

// Phase is the game's position in the round cycle.
type Phase int

const (
	PhaseSplash   Phase = iota // Idle bird, waiting for the first tap
	PhasePlay                  // Flapping through pipes
	PhaseGameOver              // Bird falling to the floor
	PhaseCutscene              // Post-round clip
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseSplash:
		return "splash"
	case PhasePlay:
		return "play"
	case PhaseGameOver:
		return "game-over"
	case PhaseCutscene:
		return "cutscene"
	default:
		return "unknown"
	}
}

// StepResult reports the game's state after a frame.
type StepResult struct {
	Phase Phase
	Score int
	Quit  bool // The player asked to leave; hosts should stop immediately
}

// Option customizes a Game.
type Option func(*Game)

// WithCutscene replaces the default post-round card.
func WithCutscene(fn CutsceneFunc) Option {
	return func(g *Game) { g.newCutscene = fn }
}

// Game drives the splash, play, game-over and cutscene phases. It owns
// every entity and advances them one frame per Step. It is not safe for
// concurrent use; each host session owns its own Game.
type Game struct {
	ctx    *Context
	images assets.Provider
	phase  Phase
	round  int
	quit   bool

	background *Background
	floor      *Floor
	pipes      *Pipes
	score      *Score
	player     *Player
	welcome    *WelcomeMessage
	gameOver   *GameOver

	newCutscene   CutsceneFunc
	cutscene      Cutscene
	cutsceneFrame int
}

// New creates a game and starts its first round on the splash screen.
// A nil sounds or logger is replaced by a silent one.
func New(cfg config.Config, images assets.Provider, sounds sound.Set, seed int64, logger *log.Logger, opts ...Option) *Game {
	g := &Game{
		ctx:         NewContext(cfg, nil, sounds, seed, logger),
		images:      images,
		newCutscene: NewCard,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.startRound()
	return g
}

// Context returns the shared context.
func (g *Game) Context() *Context { return g.ctx }

// Phase returns the current phase.
func (g *Game) Phase() Phase { return g.phase }

// Round returns how many rounds have started, the current one included.
func (g *Game) Round() int { return g.round }

// Player returns the bird of the current round.
func (g *Game) Player() *Player { return g.player }

// Pipes returns the obstacle stream of the current round.
func (g *Game) Pipes() *Pipes { return g.pipes }

// Floor returns the floor of the current round.
func (g *Game) Floor() *Floor { return g.floor }

// Score returns the score of the current round.
func (g *Game) Score() *Score { return g.score }

// Frame returns the canvas holding the last drawn frame. The image is
// reused; hosts must copy it if they keep it past the next Step.
func (g *Game) Frame() *image.RGBA { return g.ctx.Canvas.Image() }

// Step runs exactly one frame of the current phase with the events
// received since the previous call, then returns.
func (g *Game) Step(events []core.Event) StepResult {
	if g.quit {
		return g.result()
	}

	tap := false
	for _, ev := range events {
		if core.IsQuit(ev) {
			g.quit = true
			g.ctx.Log.Info("quit requested", "phase", g.phase, "score", g.score.Value())
			return g.result()
		}
		if core.IsTap(ev) {
			tap = true
		}
	}

	switch g.phase {
	case PhaseSplash:
		g.stepSplash(tap)
	case PhasePlay:
		g.stepPlay(tap)
	case PhaseGameOver:
		g.stepGameOver()
	case PhaseCutscene:
		g.stepCutscene(tap)
	}

	g.ctx.Clock.Tick()
	return g.result()
}

func (g *Game) result() StepResult {
	return StepResult{Phase: g.phase, Score: g.score.Value(), Quit: g.quit}
}

// startRound stops leftover sounds, re-rolls the image set and rebuilds
// every entity for a fresh splash screen.
func (g *Game) startRound() {
	g.ctx.Sounds.StopAll()
	g.ctx.Images = g.images.Images(g.ctx.Rng)

	g.background = NewBackground(g.ctx)
	g.floor = NewFloor(g.ctx)
	g.player = NewPlayer(g.ctx)
	g.welcome = NewWelcomeMessage(g.ctx)
	g.gameOver = NewGameOver(g.ctx)
	g.pipes = NewPipes(g.ctx)
	g.score = NewScore(g.ctx)
	g.cutscene = nil

	g.player.SetMode(ModeSHM)
	g.phase = PhaseSplash
	g.round++
	g.ctx.Log.Debug("round started", "round", g.round)
}

func (g *Game) stepSplash(tap bool) {
	if tap {
		g.enterPlay()
		g.stepPlay(false)
		return
	}
	tickAll(g.background, g.floor, g.player, g.welcome)
}

// enterPlay resets the score and turns the splash tap into the first flap.
func (g *Game) enterPlay() {
	g.phase = PhasePlay
	g.score.Reset()
	g.player.SetMode(ModeNormal)
	g.player.Flap()
}

func (g *Game) stepPlay(tap bool) {
	if g.player.Collided(g.pipes, g.floor) {
		g.enterGameOver()
		g.stepGameOver()
		return
	}

	for _, pipe := range g.pipes.Upper {
		if g.player.Crossed(pipe) {
			g.score.Add()
		}
	}

	if tap {
		g.player.Flap()
	}

	tickAll(g.background, g.floor, g.pipes, g.score, g.player)
}

func (g *Game) enterGameOver() {
	g.phase = PhaseGameOver
	g.player.SetMode(ModeCrash)
	g.pipes.Stop()
	g.floor.Stop()
	g.ctx.Log.Info("game over", "round", g.round, "score", g.score.Value(), "cause", g.player.Cause(),
		"elapsed", g.ctx.Clock.Seconds())
}

// stepGameOver lets the bird fall. Taps are ignored until it lands.
func (g *Game) stepGameOver() {
	tickAll(g.background, g.floor, g.pipes, g.score, g.player, g.gameOver)

	if g.player.Bottom() < g.floor.Top()-1 {
		return
	}

	g.ctx.Sounds.StopAll()
	if g.ctx.Cfg.Cutscene.Enabled {
		g.phase = PhaseCutscene
		g.cutscene = g.newCutscene(g.ctx, g.score.Value())
		g.cutsceneFrame = 0
		return
	}
	g.startRound()
}

// stepCutscene shows the clip until a tap, the clip's end, or the timeout.
func (g *Game) stepCutscene(tap bool) {
	if tap || g.cutscene.Finished() || g.cutsceneFrame >= g.ctx.Cfg.CutsceneFrames() {
		g.ctx.Log.Debug("cutscene ended", "frames", g.cutsceneFrame, "skipped", tap)
		g.startRound()
		g.ctx.Sounds.Play(sound.Swoosh)
		g.stepSplash(false)
		return
	}

	canvas := g.ctx.Canvas
	canvas.Clear(color.Black)
	if img := g.cutscene.Tick(g.cutsceneFrame); img != nil {
		canvas.Draw(img, (canvas.W()-img.W())/2, (canvas.H()-img.H())/2)
	}
	g.cutsceneFrame++
}

// tickAll updates and draws ts in order; later entities paint over earlier ones.
func tickAll(ts ...Ticker) {
	for _, t := range ts {
		t.Tick()
	}
}
