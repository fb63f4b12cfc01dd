package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRampWaveScaleClampsAtZero(t *testing.T) {
	scale := float32(0.6)
	for i := 0; i < 600; i++ {
		scale = rampWaveScale(scale, 1.0/60, true, false)
	}
	assert.Equal(t, float32(0), scale, "holding the lower key must bottom out at zero")

	scale = rampWaveScale(scale, 1.0/60, true, false)
	assert.Equal(t, float32(0), scale)
}

func TestRampWaveScaleRaisesFromZero(t *testing.T) {
	scale := rampWaveScale(0, 0.5, false, true)
	assert.InDelta(t, waveScaleRate*0.5, scale, 1e-6)
}

func TestRampWaveScaleBothKeysNeverNegative(t *testing.T) {
	scale := rampWaveScale(0.001, 1.0, true, true)
	assert.GreaterOrEqual(t, scale, float32(0))
}

func TestClampWaveScale(t *testing.T) {
	assert.Equal(t, float32(0), clampWaveScale(-5))
	assert.Equal(t, float32(0), clampWaveScale(0))
	assert.Equal(t, float32(0.6), clampWaveScale(0.6))
}
