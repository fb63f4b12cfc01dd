package scene

import (
	"encoding/binary"
	stdmath "math"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/nnouhi/Water/pkg/math"
)

// MaxBones is the bone matrix capacity carried in the per-model block.
const MaxBones = 64

// Uniform block binding points shared by every shader program.
const (
	perFrameBinding = 0
	perModelBinding = 1
)

// Sizes of the marshalled blocks in bytes (std140).
const (
	PerFrameBlockSize = 368
	PerModelBlockSize = 80 + MaxBones*64
)

// PerFrameBlock is the CPU side of the PerFrame uniform block: everything
// that stays constant across one camera's rendering. Matches the std140
// layout declared in the shaders exactly; the viewport dimensions and the
// Padding fields occupy the alignment slots after each vec3.
type PerFrameBlock struct {
	CameraMatrix         math.Mat4 // offset 0
	ViewMatrix           math.Mat4 // offset 64
	ProjectionMatrix     math.Mat4 // offset 128
	ViewProjectionMatrix math.Mat4 // offset 192

	Light1Position math.Vec3 // offset 256
	ViewportWidth  float32   // offset 268
	Light1Colour   math.Vec3 // offset 272
	ViewportHeight float32   // offset 284

	Light2Position math.Vec3 // offset 288
	Padding1       float32   // offset 300
	Light2Colour   math.Vec3 // offset 304
	Padding2       float32   // offset 316

	AmbientColour  math.Vec3 // offset 320
	SpecularPower  float32   // offset 332
	CameraPosition math.Vec3 // offset 336
	Padding3       float32   // offset 348

	WaterPlaneY   float32   // offset 352
	WaveScale     float32   // offset 356
	WaterMovement math.Vec2 // offset 360
}

// Marshal serialises the block into a std140 byte buffer for UBO upload.
func (b *PerFrameBlock) Marshal() []byte {
	buf := make([]byte, PerFrameBlockSize)
	putMat4(buf, 0, b.CameraMatrix)
	putMat4(buf, 64, b.ViewMatrix)
	putMat4(buf, 128, b.ProjectionMatrix)
	putMat4(buf, 192, b.ViewProjectionMatrix)

	putVec3(buf, 256, b.Light1Position)
	putF32(buf, 268, b.ViewportWidth)
	putVec3(buf, 272, b.Light1Colour)
	putF32(buf, 284, b.ViewportHeight)

	putVec3(buf, 288, b.Light2Position)
	putF32(buf, 300, b.Padding1)
	putVec3(buf, 304, b.Light2Colour)
	putF32(buf, 316, b.Padding2)

	putVec3(buf, 320, b.AmbientColour)
	putF32(buf, 332, b.SpecularPower)
	putVec3(buf, 336, b.CameraPosition)
	putF32(buf, 348, b.Padding3)

	putF32(buf, 352, b.WaterPlaneY)
	putF32(buf, 356, b.WaveScale)
	putF32(buf, 360, b.WaterMovement.X)
	putF32(buf, 364, b.WaterMovement.Y)
	return buf
}

// UnmarshalPerFrameBlock reads a marshalled per-frame block back. Used in
// tests to verify the layout round-trips without padding collisions.
func UnmarshalPerFrameBlock(buf []byte) PerFrameBlock {
	var b PerFrameBlock
	b.CameraMatrix = getMat4(buf, 0)
	b.ViewMatrix = getMat4(buf, 64)
	b.ProjectionMatrix = getMat4(buf, 128)
	b.ViewProjectionMatrix = getMat4(buf, 192)

	b.Light1Position = getVec3(buf, 256)
	b.ViewportWidth = getF32(buf, 268)
	b.Light1Colour = getVec3(buf, 272)
	b.ViewportHeight = getF32(buf, 284)

	b.Light2Position = getVec3(buf, 288)
	b.Padding1 = getF32(buf, 300)
	b.Light2Colour = getVec3(buf, 304)
	b.Padding2 = getF32(buf, 316)

	b.AmbientColour = getVec3(buf, 320)
	b.SpecularPower = getF32(buf, 332)
	b.CameraPosition = getVec3(buf, 336)
	b.Padding3 = getF32(buf, 348)

	b.WaterPlaneY = getF32(buf, 352)
	b.WaveScale = getF32(buf, 356)
	b.WaterMovement.X = getF32(buf, 360)
	b.WaterMovement.Y = getF32(buf, 364)
	return b
}

// PerModelBlock is the CPU side of the PerModel uniform block, uploaded
// once per draw. The bone matrices are carried for layout compatibility
// with skinned geometry; static models leave them at identity.
type PerModelBlock struct {
	WorldMatrix math.Mat4 // offset 0

	ObjectColour math.Vec3 // offset 64
	Padding4     float32   // offset 76

	BoneMatrices [MaxBones]math.Mat4 // offset 80
}

// Marshal serialises the block into a std140 byte buffer for UBO upload.
func (b *PerModelBlock) Marshal() []byte {
	buf := make([]byte, PerModelBlockSize)
	putMat4(buf, 0, b.WorldMatrix)
	putVec3(buf, 64, b.ObjectColour)
	putF32(buf, 76, b.Padding4)
	for i := range b.BoneMatrices {
		putMat4(buf, 80+i*64, b.BoneMatrices[i])
	}
	return buf
}

// UnmarshalPerModelBlock reads a marshalled per-model block back.
func UnmarshalPerModelBlock(buf []byte) PerModelBlock {
	var b PerModelBlock
	b.WorldMatrix = getMat4(buf, 0)
	b.ObjectColour = getVec3(buf, 64)
	b.Padding4 = getF32(buf, 76)
	for i := range b.BoneMatrices {
		b.BoneMatrices[i] = getMat4(buf, 80+i*64)
	}
	return b
}

func putF32(buf []byte, off int, v float32) {
	binary.LittleEndian.PutUint32(buf[off:off+4], stdmath.Float32bits(v))
}

func getF32(buf []byte, off int) float32 {
	return stdmath.Float32frombits(binary.LittleEndian.Uint32(buf[off : off+4]))
}

func putVec3(buf []byte, off int, v math.Vec3) {
	putF32(buf, off, v.X)
	putF32(buf, off+4, v.Y)
	putF32(buf, off+8, v.Z)
}

func getVec3(buf []byte, off int) math.Vec3 {
	return math.Vec3{X: getF32(buf, off), Y: getF32(buf, off+4), Z: getF32(buf, off+8)}
}

func putMat4(buf []byte, off int, m math.Mat4) {
	for i := 0; i < 16; i++ {
		putF32(buf, off+i*4, m[i])
	}
}

func getMat4(buf []byte, off int) math.Mat4 {
	var m math.Mat4
	for i := 0; i < 16; i++ {
		m[i] = getF32(buf, off+i*4)
	}
	return m
}

// uniformBuffer wraps a GL uniform buffer object bound to a fixed binding
// point.
type uniformBuffer struct {
	id   uint32
	size int
}

func newUniformBuffer(size int, binding uint32) *uniformBuffer {
	u := &uniformBuffer{size: size}
	gl.GenBuffers(1, &u.id)
	gl.BindBuffer(gl.UNIFORM_BUFFER, u.id)
	gl.BufferData(gl.UNIFORM_BUFFER, size, nil, gl.DYNAMIC_DRAW)
	gl.BindBufferBase(gl.UNIFORM_BUFFER, binding, u.id)
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
	return u
}

func (u *uniformBuffer) upload(data []byte) {
	gl.BindBuffer(gl.UNIFORM_BUFFER, u.id)
	gl.BufferSubData(gl.UNIFORM_BUFFER, 0, len(data), gl.Ptr(data))
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
}

func (u *uniformBuffer) destroy() {
	if u.id != 0 {
		gl.DeleteBuffers(1, &u.id)
		u.id = 0
	}
}
