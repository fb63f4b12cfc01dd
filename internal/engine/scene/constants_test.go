package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nnouhi/Water/pkg/math"
)

func sequentialMat4(start float32) math.Mat4 {
	var m math.Mat4
	for i := range m {
		m[i] = start + float32(i)
	}
	return m
}

func TestPerFrameBlockRoundTrip(t *testing.T) {
	in := PerFrameBlock{
		CameraMatrix:         sequentialMat4(1),
		ViewMatrix:           sequentialMat4(100),
		ProjectionMatrix:     sequentialMat4(200),
		ViewProjectionMatrix: sequentialMat4(300),

		Light1Position: math.Vec3{X: 1.5, Y: 2.5, Z: 3.5},
		ViewportWidth:  1280,
		Light1Colour:   math.Vec3{X: 0.8, Y: 0.8, Z: 1.0},
		ViewportHeight: 720,

		Light2Position: math.Vec3{X: -4, Y: 5, Z: -6},
		Light2Colour:   math.Vec3{X: 1.0, Y: 0.9, Z: 0.8},

		AmbientColour:  math.Vec3{X: 0.5, Y: 0.5, Z: 0.5},
		SpecularPower:  256,
		CameraPosition: math.Vec3{X: -80, Y: 50, Z: 200},

		WaterPlaneY:   10,
		WaveScale:     0.6,
		WaterMovement: math.Vec2{X: 0.125, Y: 0.25},
	}

	buf := in.Marshal()
	require.Len(t, buf, PerFrameBlockSize)

	out := UnmarshalPerFrameBlock(buf)
	assert.Equal(t, in, out)
}

func TestPerFrameBlockFieldsDoNotCollide(t *testing.T) {
	// Writing one field must not disturb the bytes of any other: every
	// field owns a distinct byte range.
	var zero PerFrameBlock
	base := zero.Marshal()

	modified := zero
	modified.WaveScale = 0.75
	buf := modified.Marshal()

	diff := 0
	for i := range buf {
		if buf[i] != base[i] {
			diff++
		}
	}
	assert.Equal(t, 4, diff, "exactly one float should change")

	out := UnmarshalPerFrameBlock(buf)
	assert.Equal(t, float32(0.75), out.WaveScale)
	assert.Equal(t, zero.WaterMovement, out.WaterMovement)
	assert.Equal(t, zero.WaterPlaneY, out.WaterPlaneY)
}

func TestPerModelBlockRoundTrip(t *testing.T) {
	in := PerModelBlock{
		WorldMatrix:  sequentialMat4(7),
		ObjectColour: math.Vec3{X: 0.8, Y: 0.8, Z: 1.0},
	}
	for i := range in.BoneMatrices {
		in.BoneMatrices[i] = sequentialMat4(float32(i) * 16)
	}

	buf := in.Marshal()
	require.Len(t, buf, PerModelBlockSize)

	out := UnmarshalPerModelBlock(buf)
	assert.Equal(t, in, out)
}

func TestBlockSizesAreStd140Aligned(t *testing.T) {
	assert.Zero(t, PerFrameBlockSize%16)
	assert.Zero(t, PerModelBlockSize%16)
}
