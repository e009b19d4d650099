package sprite

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var face = basicfont.Face7x13

// Text renders s in the built-in 7x13 bitmap font on a transparent
// background, magnified by scale.
func Text(s string, fg color.Color, scale int) *Sprite {
	if scale < 1 {
		scale = 1
	}
	w := font.MeasureString(face, s).Ceil()
	h := face.Metrics().Height.Ceil()
	if w == 0 {
		w = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  fixed.P(0, face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)

	spr := &Sprite{Img: img}
	if scale > 1 {
		return spr.Scale(w*scale, h*scale)
	}
	spr.Mask = MaskFromImage(img)
	return spr
}

// Outlined renders s like Text with a one-pixel dark outline, which keeps
// digits and labels readable on any background.
func Outlined(s string, fg, outline color.Color, scale int) *Sprite {
	inner := Text(s, fg, 1)
	edge := Text(s, outline, 1)
	w, h := inner.W()+2, inner.H()+2
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for _, off := range []image.Point{{0, 1}, {2, 1}, {1, 0}, {1, 2}} {
		draw.Draw(img, edge.Img.Bounds().Add(off), edge.Img, image.Point{}, draw.Over)
	}
	draw.Draw(img, inner.Img.Bounds().Add(image.Pt(1, 1)), inner.Img, image.Point{}, draw.Over)

	spr := &Sprite{Img: img, Mask: MaskFromImage(img)}
	if scale > 1 {
		return spr.Scale(w*scale, h*scale)
	}
	return spr
}

// Box returns a solid w×h sprite with a one-pixel border.
func Box(w, h int, fill, border color.RGBA) *Sprite {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(border), image.Point{}, draw.Src)
	if w > 2 && h > 2 {
		draw.Draw(img, image.Rect(1, 1, w-1, h-1), image.NewUniform(fill), image.Point{}, draw.Src)
	}
	return &Sprite{Img: img, Mask: MaskFromImage(img)}
}

// Ellipse returns a w×h sprite holding a filled ellipse on a transparent
// background.
func Ellipse(w, h int, fill color.RGBA) *Sprite {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	rx, ry := float64(w)/2, float64(h)/2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := (float64(x) + 0.5 - rx) / rx
			dy := (float64(y) + 0.5 - ry) / ry
			if dx*dx+dy*dy <= 1 {
				img.SetRGBA(x, y, fill)
			}
		}
	}
	return &Sprite{Img: img, Mask: MaskFromImage(img)}
}

// Label returns a Box with text centered on it. Text that does not fit is
// left out.
func Label(w, h int, fill, border color.RGBA, text string, fg color.Color) *Sprite {
	box := Box(w, h, fill, border)
	if text == "" {
		return box
	}
	t := Text(text, fg, 1)
	if t.W() > w-2 || t.H() > h-2 {
		return box
	}
	x, y := (w-t.W())/2, (h-t.H())/2
	draw.Draw(box.Img, image.Rect(x, y, x+t.W(), y+t.H()), t.Img, image.Point{}, draw.Over)
	return box
}
