package assets

import (
	"image"
	"image/color"
	"strconv"

	"golang.org/x/image/draw"

	"github.com/vovakirdan/flappy/internal/sprite"
)

// fit centers s on a transparent w×h sprite.
func fit(s *sprite.Sprite, w, h int) *sprite.Sprite {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	x, y := (w-s.W())/2, (h-s.H())/2
	draw.Draw(img, image.Rect(x, y, x+s.W(), y+s.H()), s.Img, image.Point{}, draw.Over)
	return sprite.New(img)
}

func placeholderBackground(sky color.RGBA) *sprite.Sprite {
	return sprite.Box(BackgroundW, BackgroundH, sky, sky)
}

func placeholderBase() *sprite.Sprite {
	s := sprite.Box(BaseW, BaseH, sand, sand)
	// Grass strip with a dashed edge so scrolling is visible.
	draw.Draw(s.Img, image.Rect(0, 0, BaseW, 12), image.NewUniform(grass), image.Point{}, draw.Src)
	for x := 0; x < BaseW; x += 12 {
		draw.Draw(s.Img, image.Rect(x, 8, x+6, 12), image.NewUniform(pipeEdge), image.Point{}, draw.Src)
	}
	return sprite.New(s.Img)
}

func placeholderBird(variant, frame int) *sprite.Sprite {
	body := sprite.Ellipse(BirdW, BirdH, birdColors[variant%len(birdColors)])
	// Eye plus a wing whose height follows the flap frame.
	draw.Draw(body.Img, image.Rect(23, 5, 27, 9), image.NewUniform(white), image.Point{}, draw.Src)
	wy := 8 + frame*4
	draw.Draw(body.Img, image.Rect(5, wy, 14, wy+4), image.NewUniform(white), image.Point{}, draw.Src)
	return sprite.New(body.Img)
}

func placeholderPipe(fill color.RGBA) *sprite.Sprite {
	return sprite.Box(PipeW, PipeH, fill, pipeEdge)
}

func placeholderGameOver() *sprite.Sprite {
	return fit(sprite.Outlined("GAME OVER", orange, outline, 2), GameOverW, GameOverH)
}

func placeholderWelcome() *sprite.Sprite {
	img := image.NewRGBA(image.Rect(0, 0, WelcomeW, WelcomeH))
	title := sprite.Outlined("Get Ready!", orange, outline, 2)
	hint := sprite.Outlined("space / tap", white, outline, 1)
	bird := placeholderBird(0, 1)

	tx := (WelcomeW - title.W()) / 2
	draw.Draw(img, image.Rect(tx, 40, tx+title.W(), 40+title.H()), title.Img, image.Point{}, draw.Over)
	bx := (WelcomeW - bird.W()) / 2
	draw.Draw(img, image.Rect(bx, 130, bx+bird.W(), 130+bird.H()), bird.Img, image.Point{}, draw.Over)
	hx := (WelcomeW - hint.W()) / 2
	draw.Draw(img, image.Rect(hx, 200, hx+hint.W(), 200+hint.H()), hint.Img, image.Point{}, draw.Over)
	return sprite.New(img)
}

func placeholderDigit(n int) *sprite.Sprite {
	return fit(sprite.Outlined(strconv.Itoa(n), white, outline, 2), DigitW, DigitH)
}
