package scene

import (
	"image"

	"github.com/aquilax/go-perlin"
)

// Procedural stand-ins for the scene's texture assets. RGB is the diffuse
// colour, alpha the specular material strength read by the lit shaders.

// groundImage is a grassy noise texture with low specularity.
func groundImage(size int, seed int64) *image.RGBA {
	p := perlin.NewPerlin(2, 2, 3, seed)
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scale := 12.0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			n := p.Noise2D(float64(x)/float64(size)*scale, float64(y)/float64(size)*scale)
			t := n*0.5 + 0.5
			i := img.PixOffset(x, y)
			img.Pix[i+0] = uint8(40 + 50*t)
			img.Pix[i+1] = uint8(90 + 80*t)
			img.Pix[i+2] = uint8(35 + 40*t)
			img.Pix[i+3] = 25
		}
	}
	return img
}

// crateImage is a plank pattern with moderate specularity.
func crateImage(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	planks := 4
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			plank := x * planks / size
			shade := uint8(150 + 20*(plank%2))
			// Dark seams between planks and at the crate edge.
			if x%(size/planks) < 2 || y < 2 || y > size-3 {
				shade = 70
			}
			i := img.PixOffset(x, y)
			img.Pix[i+0] = shade
			img.Pix[i+1] = shade / 2
			img.Pix[i+2] = shade / 4
			img.Pix[i+3] = 80
		}
	}
	return img
}

// skyImage is a vertical sky gradient, matte.
func skyImage(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		t := float64(y) / float64(size-1)
		r := uint8(120 + 120*t)
		g := uint8(160 + 80*t)
		b := uint8(220 + 35*t)
		for x := 0; x < size; x++ {
			i := img.PixOffset(x, y)
			img.Pix[i+0] = r
			img.Pix[i+1] = g
			img.Pix[i+2] = b
			img.Pix[i+3] = 0
		}
	}
	return img
}

// flareImage is a radial falloff used for the additive light billboards.
func flareImage(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	half := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := (float64(x) + 0.5 - half) / half
			dy := (float64(y) + 0.5 - half) / half
			d := dx*dx + dy*dy
			v := 1.0 - d
			if v < 0 {
				v = 0
			}
			v *= v
			i := img.PixOffset(x, y)
			img.Pix[i+0] = uint8(255 * v)
			img.Pix[i+1] = uint8(255 * v)
			img.Pix[i+2] = uint8(255 * v)
			img.Pix[i+3] = 255
		}
	}
	return img
}
