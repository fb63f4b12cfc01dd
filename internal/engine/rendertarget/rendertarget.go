// Package rendertarget manages the offscreen buffers of the water pipeline:
// the water-height map, the refraction colour buffer and the reflection
// colour buffer, all sharing a single depth renderbuffer.
package rendertarget

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Kind identifies one of the offscreen targets.
type Kind int

const (
	// Height holds the world-space Y of the water surface per screen pixel
	// as a single 32-bit float channel. Zero where no water was rasterised.
	Height Kind = iota
	// Refraction holds the scene below the water line; alpha carries the
	// normalised water depth.
	Refraction
	// Reflection holds the mirrored scene above the water line.
	Reflection

	numKinds
)

// String returns the target name for diagnostics.
func (k Kind) String() string {
	switch k {
	case Height:
		return "height"
	case Refraction:
		return "refraction"
	case Reflection:
		return "reflection"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

type target struct {
	fbo uint32
	tex uint32
}

// Set owns the three offscreen targets and the shared depth renderbuffer.
// All buffers are viewport sized, created once at startup and fully
// overwritten every frame.
type Set struct {
	width      int32
	height     int32
	depthRBO   uint32
	targets    [numKinds]target
	background [4]float32
}

// NewSet creates the three targets with a shared depth attachment.
// Any incomplete framebuffer is fatal: the error is reported upward and the
// partially created set is destroyed.
func NewSet(width, height int32, background [4]float32) (*Set, error) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	s := &Set{
		width:      width,
		height:     height,
		background: background,
	}

	// One depth renderbuffer serves every pass; it is cleared at each pass
	// entry so passes never see each other's depth results.
	gl.GenRenderbuffers(1, &s.depthRBO)
	gl.BindRenderbuffer(gl.RENDERBUFFER, s.depthRBO)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, width, height)

	for k := Kind(0); k < numKinds; k++ {
		if err := s.createTarget(k); err != nil {
			s.Destroy()
			return nil, fmt.Errorf("creating %s target: %w", k, err)
		}
	}

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	return s, nil
}

func (s *Set) createTarget(k Kind) error {
	t := &s.targets[k]

	gl.GenFramebuffers(1, &t.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)

	gl.GenTextures(1, &t.tex)
	gl.BindTexture(gl.TEXTURE_2D, t.tex)
	if k == Height {
		// Single-channel float: world Y per pixel.
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R32F, s.width, s.height, 0, gl.RED, gl.FLOAT, nil)
	} else {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, s.width, s.height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	if k == Height {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	} else {
		// Distorted UVs can land outside the buffer; mirroring keeps the
		// fetched colour locally plausible.
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.MIRRORED_REPEAT)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.MIRRORED_REPEAT)
	}
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, t.tex, 0)

	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, s.depthRBO)

	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		return fmt.Errorf("framebuffer incomplete: 0x%x", status)
	}
	return nil
}

// Bind redirects draw output to the given target, sets the viewport and
// clears both the colour buffer and the shared depth buffer. The height
// target clears to zero (the "no water here" sentinel); colour targets
// clear to the background colour.
func (s *Set) Bind(k Kind) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, s.targets[k].fbo)
	gl.Viewport(0, 0, s.width, s.height)

	if k == Height {
		gl.ClearColor(0, 0, 0, 0)
	} else {
		gl.ClearColor(s.background[0], s.background[1], s.background[2], s.background[3])
	}
	gl.ClearDepth(1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// BindBackbuffer restores the default framebuffer for the composite pass
// and clears the shared depth buffer (the backbuffer colour is fully
// covered by the skybox, so only depth needs clearing).
func (s *Set) BindBackbuffer() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, s.width, s.height)
	gl.ClearDepth(1)
	gl.Clear(gl.DEPTH_BUFFER_BIT)
}

// BindTexture exposes a completed target for sampling on the given texture
// unit. The caller must UnbindTexture the unit before the target is bound
// for drawing again; a buffer simultaneously bound as input and output is
// undefined behaviour on the GPU.
func (s *Set) BindTexture(k Kind, unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, s.targets[k].tex)
}

// UnbindTexture detaches whatever target texture is bound on the unit.
func (s *Set) UnbindTexture(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Size returns the target dimensions.
func (s *Set) Size() (width, height int32) {
	return s.width, s.height
}

// Resize reallocates every buffer for a new viewport size.
func (s *Set) Resize(width, height int32) {
	if width == s.width && height == s.height {
		return
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	s.width = width
	s.height = height

	gl.BindRenderbuffer(gl.RENDERBUFFER, s.depthRBO)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, width, height)

	for k := Kind(0); k < numKinds; k++ {
		gl.BindTexture(gl.TEXTURE_2D, s.targets[k].tex)
		if k == Height {
			gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R32F, width, height, 0, gl.RED, gl.FLOAT, nil)
		} else {
			gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
		}
	}
}

// ReadBackbuffer reads the default framebuffer into RGBA bytes
// (bottom-up, as OpenGL stores it). Used for screenshots.
func (s *Set) ReadBackbuffer() []byte {
	pixels := make([]byte, s.width*s.height*4)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.ReadPixels(0, 0, s.width, s.height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}

// Destroy releases every GPU resource owned by the set.
func (s *Set) Destroy() {
	for k := Kind(0); k < numKinds; k++ {
		t := &s.targets[k]
		if t.fbo != 0 {
			gl.DeleteFramebuffers(1, &t.fbo)
			t.fbo = 0
		}
		if t.tex != 0 {
			gl.DeleteTextures(1, &t.tex)
			t.tex = 0
		}
	}
	if s.depthRBO != 0 {
		gl.DeleteRenderbuffers(1, &s.depthRBO)
		s.depthRBO = 0
	}
}
