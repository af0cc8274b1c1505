// Package postfx provides preview-only raster helpers: integer
// upscaling for pixel-art swatches, a paper-grain overlay, and soft
// blur. These operate on rendered images, never on the pattern grids
// themselves, so the core generators stay byte-deterministic.
package postfx

import (
	"image"
	"image/color"
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/disintegration/gift"
	"golang.org/x/image/draw"
)

// Upscale enlarges an image by an integer factor with nearest-neighbor
// sampling, keeping pixel edges crisp. factor < 1 is treated as 1.
func Upscale(src image.Image, factor int) *image.RGBA {
	if factor < 1 {
		factor = 1
	}
	bounds := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx()*factor, bounds.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)
	return dst
}

// GrainOverlay modulates an image with Perlin noise, simulating paper
// grain on preview sheets. strength 0 returns a plain copy; the noise is
// deterministic for a given seed.
func GrainOverlay(src image.Image, scale float64, strength float64, seed int64) *image.RGBA {
	bounds := src.Bounds()
	dst := image.NewRGBA(bounds)

	if strength < 0 {
		strength = 0
	}
	if strength > 1 {
		strength = 1
	}
	if scale <= 0 {
		scale = 16
	}

	p := perlin.NewPerlin(2.0, 2.0, 3, seed)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.RGBAModel.Convert(src.At(x, y)).(color.RGBA)

			n := p.Noise2D(float64(x)/scale, float64(y)/scale) // ~[-1,1]
			delta := n * strength * 24

			dst.SetRGBA(x, y, color.RGBA{
				R: clampU8(float64(c.R) + delta),
				G: clampU8(float64(c.G) + delta),
				B: clampU8(float64(c.B) + delta),
				A: c.A,
			})
		}
	}

	return dst
}

// Soften applies a light Gaussian blur, used to antialias upscaled
// previews. sigma <= 0 returns a plain copy.
func Soften(src image.Image, sigma float32) *image.RGBA {
	if sigma <= 0 {
		dst := image.NewRGBA(src.Bounds())
		draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
		return dst
	}
	g := gift.New(gift.GaussianBlur(sigma))
	dst := image.NewRGBA(g.Bounds(src.Bounds()))
	g.Draw(dst, src)
	return dst
}

func clampU8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(math.Round(v))
}
