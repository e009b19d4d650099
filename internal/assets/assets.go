// Package assets loads the sprite set the game draws with. Every image is
// read from an fs.FS; anything missing or undecodable is replaced by a
// procedural placeholder of the same size so a round never fails to start.
package assets

import (
	"image/color"
	"math/rand"

	"github.com/vovakirdan/flappy/internal/sprite"
)

// Images is the per-round image set.
type Images struct {
	Background *sprite.Sprite
	Base       *sprite.Sprite
	Player     [3]*sprite.Sprite // Up, mid and down flap
	Pipe       [2]*sprite.Sprite // Upper (flipped) and lower
	GameOver   *sprite.Sprite
	Welcome    *sprite.Sprite
	Numbers    [10]*sprite.Sprite
}

// Provider builds a fresh image set for a round. Variants are picked with rng.
type Provider interface {
	Images(rng *rand.Rand) *Images
}

// Sprite file locations, relative to the asset root.
var (
	Backgrounds = []string{
		"sprites/background-day.png",
		"sprites/background-night.png",
	}
	Pipes = []string{
		"sprites/pipe-green.png",
		"sprites/pipe-red.png",
	}
	Birds = [][3]string{
		{"sprites/bluebird-upflap.png", "sprites/bluebird-midflap.png", "sprites/bluebird-downflap.png"},
		{"sprites/redbird-upflap.png", "sprites/redbird-midflap.png", "sprites/redbird-downflap.png"},
		{"sprites/yellowbird-upflap.png", "sprites/yellowbird-midflap.png", "sprites/yellowbird-downflap.png"},
	}
	BasePath     = "sprites/base.png"
	GameOverPath = "sprites/gameover.png"
	WelcomePath  = "sprites/message.png"
)

// DigitPath returns the file holding digit n.
func DigitPath(n int) string {
	return "sprites/" + string(rune('0'+n)) + ".png"
}

// Artwork sizes of the stock sprites, used for placeholders.
const (
	BackgroundW, BackgroundH = 288, 512
	BaseW, BaseH             = 336, 112
	BirdW, BirdH             = 34, 24
	PipeW, PipeH             = 52, 320
	GameOverW, GameOverH     = 192, 42
	WelcomeW, WelcomeH       = 184, 267
	DigitW, DigitH           = 24, 36
)

var (
	skyDay     = color.RGBA{R: 78, G: 192, B: 202, A: 255}
	skyNight   = color.RGBA{R: 0, G: 135, B: 147, A: 255}
	sand       = color.RGBA{R: 222, G: 216, B: 149, A: 255}
	grass      = color.RGBA{R: 115, G: 191, B: 46, A: 255}
	pipeGreen  = color.RGBA{R: 116, G: 191, B: 46, A: 255}
	pipeRed    = color.RGBA{R: 204, G: 72, B: 46, A: 255}
	pipeEdge   = color.RGBA{R: 84, G: 56, B: 71, A: 255}
	orange     = color.RGBA{R: 252, G: 160, B: 72, A: 255}
	outline    = color.RGBA{R: 84, G: 56, B: 71, A: 255}
	white      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	birdColors = []color.RGBA{
		{R: 77, G: 166, B: 233, A: 255},
		{R: 232, G: 79, B: 57, A: 255},
		{R: 248, G: 192, B: 55, A: 255},
	}
)
