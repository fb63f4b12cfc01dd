package water

import (
	"image"

	"github.com/aquilax/go-perlin"
	"github.com/chewxy/math32"

	"github.com/nnouhi/Water/pkg/math"
)

// Map is a host-side copy of the tileable water normal/height map.
// RGB encodes a tangent-space normal packed into [0,1]; A encodes height.
// Sampling wraps in both directions so the map tiles seamlessly.
type Map struct {
	Width  int
	Height int
	Pix    []float32 // RGBA, row-major, Width*Height*4 values in [0,1]
}

// FromImage builds a map from a decoded RGBA image (a loaded
// WaterNormalHeight texture).
func FromImage(img *image.RGBA) *Map {
	b := img.Bounds()
	m := &Map{
		Width:  b.Dx(),
		Height: b.Dy(),
		Pix:    make([]float32, b.Dx()*b.Dy()*4),
	}
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			o := img.PixOffset(x, y)
			m.Pix[i+0] = float32(img.Pix[o+0]) / 255
			m.Pix[i+1] = float32(img.Pix[o+1]) / 255
			m.Pix[i+2] = float32(img.Pix[o+2]) / 255
			m.Pix[i+3] = float32(img.Pix[o+3]) / 255
			i += 4
		}
	}
	return m
}

// Sample returns the bilinearly filtered RGBA value at (u, v), wrapping
// both coordinates cyclically.
func (m *Map) Sample(u, v float32) (r, g, b, a float32) {
	u = wrap(u)
	v = wrap(v)

	fx := u * float32(m.Width)
	fy := v * float32(m.Height)
	x0 := int(math32.Floor(fx))
	y0 := int(math32.Floor(fy))
	tx := fx - float32(x0)
	ty := fy - float32(y0)
	x0 = x0 % m.Width
	y0 = y0 % m.Height
	x1 := (x0 + 1) % m.Width
	y1 := (y0 + 1) % m.Height

	for c := 0; c < 4; c++ {
		v00 := m.Pix[(y0*m.Width+x0)*4+c]
		v10 := m.Pix[(y0*m.Width+x1)*4+c]
		v01 := m.Pix[(y1*m.Width+x0)*4+c]
		v11 := m.Pix[(y1*m.Width+x1)*4+c]
		top := v00 + (v10-v00)*tx
		bot := v01 + (v11-v01)*tx
		val := top + (bot-top)*ty
		switch c {
		case 0:
			r = val
		case 1:
			g = val
		case 2:
			b = val
		case 3:
			a = val
		}
	}
	return r, g, b, a
}

// Generate builds a tileable normal/height map procedurally with Perlin
// noise, used when no WaterNormalHeight asset is available. The height
// field is made cyclic by bilinearly blending four shifted copies of the
// noise across the tile seams; normals are derived from the cyclic height
// gradient.
func Generate(size int, seed int64) *Map {
	if size <= 0 {
		size = 256
	}
	p := perlin.NewPerlin(2, 2, 3, seed)

	heights := make([]float32, size*size)
	scale := 8.0 // Noise features per tile
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			u := float64(x) / float64(size)
			v := float64(y) / float64(size)

			// Blend four shifted noise reads so the field wraps.
			n00 := p.Noise2D(u*scale, v*scale)
			n10 := p.Noise2D((u-1)*scale, v*scale)
			n01 := p.Noise2D(u*scale, (v-1)*scale)
			n11 := p.Noise2D((u-1)*scale, (v-1)*scale)
			h := n00*(1-u)*(1-v) + n10*u*(1-v) + n01*(1-u)*v + n11*u*v

			// Perlin output is ~[-1,1]; pack into [0,1].
			heights[y*size+x] = float32(h)*0.5 + 0.5
		}
	}

	m := &Map{Width: size, Height: size, Pix: make([]float32, size*size*4)}
	texel := 1.0 / float32(size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			xm := (x - 1 + size) % size
			xp := (x + 1) % size
			ym := (y - 1 + size) % size
			yp := (y + 1) % size

			dx := (heights[y*size+xp] - heights[y*size+xm]) / (2 * texel)
			dy := (heights[yp*size+x] - heights[ym*size+x]) / (2 * texel)

			// Height gradient to tangent-space normal (Y up).
			n := math.Vec3{X: -dx * HeightToWidthRatio, Y: 1, Z: -dy * HeightToWidthRatio}.Normalize()

			i := (y*size + x) * 4
			m.Pix[i+0] = n.X*0.5 + 0.5
			m.Pix[i+1] = n.Y*0.5 + 0.5
			m.Pix[i+2] = n.Z*0.5 + 0.5
			m.Pix[i+3] = heights[y*size+x]
		}
	}
	return m
}

// ToRGBA converts the map to an 8-bit RGBA image for GPU upload.
func (m *Map) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.Width, m.Height))
	for i, v := range m.Pix {
		img.Pix[i] = uint8(math.Saturate(v)*255 + 0.5)
	}
	return img
}
