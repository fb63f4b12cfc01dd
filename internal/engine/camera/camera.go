// Package camera provides the free-look camera used for scene rendering.
package camera

import (
	gomath "math"

	"github.com/nnouhi/Water/pkg/math"
)

// Pose is a camera position plus its three orthonormal basis axes.
// It is a plain value: copying it snapshots the camera exactly, and
// restoring the copy restores the camera bit-for-bit.
type Pose struct {
	Position math.Vec3
	XAxis    math.Vec3
	YAxis    math.Vec3
	ZAxis    math.Vec3
}

// Reflect mirrors the pose through the horizontal plane at planeY.
// The Y component of each basis axis is negated and the position is moved
// to the same distance below the plane as it was above it. Reflect is a
// pure function and an involution: reflecting twice returns the original.
func (p Pose) Reflect(planeY float32) Pose {
	p.XAxis.Y = -p.XAxis.Y
	p.YAxis.Y = -p.YAxis.Y
	p.ZAxis.Y = -p.ZAxis.Y
	p.Position.Y = 2*planeY - p.Position.Y
	return p
}

// WorldMatrix returns the pose as a column-major world matrix.
func (p Pose) WorldMatrix() math.Mat4 {
	return math.FromAxes(p.XAxis, p.YAxis, p.ZAxis, p.Position)
}

// Camera is a free-look perspective camera.
type Camera struct {
	pose  Pose
	pitch float32
	yaw   float32

	FOV    float32 // Vertical field of view (radians)
	Aspect float32 // Width / height
	Near   float32
	Far    float32

	MoveSpeed     float32 // World units per second
	RotationSpeed float32 // Radians per second
}

// New creates a camera at the given position with the given aspect ratio.
func New(position math.Vec3, aspect float32) *Camera {
	c := &Camera{
		FOV:           math.ToRadians(60),
		Aspect:        aspect,
		Near:          5,
		Far:           100000,
		MoveSpeed:     50,
		RotationSpeed: 1.5,
	}
	c.pose.Position = position
	c.SetRotation(0, 0)
	return c
}

// SetRotation sets the camera orientation from pitch and yaw (radians)
// and rebuilds the basis axes.
func (c *Camera) SetRotation(pitch, yaw float32) {
	c.pitch = pitch
	c.yaw = yaw
	c.rebuildAxes()
}

// rebuildAxes derives the basis from the current pitch and yaw.
func (c *Camera) rebuildAxes() {
	r := math.RotateY(c.yaw).Mul(math.RotateX(c.pitch))
	c.pose.XAxis = r.TransformDirection(math.Vec3{X: 1})
	c.pose.YAxis = r.TransformDirection(math.Vec3{Y: 1})
	c.pose.ZAxis = r.TransformDirection(math.Vec3{Z: 1})
}

// Pose returns a snapshot of the camera pose.
func (c *Camera) Pose() Pose {
	return c.pose
}

// SetPose replaces the camera pose verbatim. Used to apply the reflection
// transform for the mirrored pass and to restore the original afterwards.
func (c *Camera) SetPose(p Pose) {
	c.pose = p
}

// Position returns the camera world position.
func (c *Camera) Position() math.Vec3 {
	return c.pose.Position
}

// SetPosition moves the camera to the given world position.
func (c *Camera) SetPosition(p math.Vec3) {
	c.pose.Position = p
}

// WorldMatrix returns the camera-to-world matrix.
func (c *Camera) WorldMatrix() math.Mat4 {
	return c.pose.WorldMatrix()
}

// ViewMatrix returns the world-to-camera matrix.
func (c *Camera) ViewMatrix() math.Mat4 {
	return c.pose.WorldMatrix().InverseRigid()
}

// ProjectionMatrix returns the perspective projection matrix.
func (c *Camera) ProjectionMatrix() math.Mat4 {
	return math.Perspective(c.FOV, c.Aspect, c.Near, c.Far)
}

// ViewProjectionMatrix returns projection * view.
func (c *Camera) ViewProjectionMatrix() math.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}

// Move translates the camera along its own axes. The camera looks down
// -ZAxis (OpenGL convention), so positive forward moves into the scene.
func (c *Camera) Move(right, up, forward, dt float32) {
	d := c.MoveSpeed * dt
	c.pose.Position = c.pose.Position.
		Add(c.pose.XAxis.Scale(right * d)).
		Add(c.pose.YAxis.Scale(up * d)).
		Add(c.pose.ZAxis.Scale(-forward * d))
}

// Rotate applies pitch and yaw deltas scaled by RotationSpeed and dt,
// clamping pitch short of the poles.
func (c *Camera) Rotate(dPitch, dYaw, dt float32) {
	c.pitch += dPitch * c.RotationSpeed * dt
	c.yaw += dYaw * c.RotationSpeed * dt

	limit := float32(gomath.Pi/2) - 0.01
	c.pitch = math.Clamp(c.pitch, -limit, limit)
	c.rebuildAxes()
}
