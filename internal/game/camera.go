package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is the first-person view: eye position plus yaw/pitch taken from
// the player, with a short recoil kick on top.
type Camera struct {
	Eye    Vec3
	Yaw    float64
	Pitch  float64
	Aspect float64

	kick float64
}

func NewCamera() *Camera {
	return &Camera{Aspect: float64(WindowWidth) / float64(WindowHeight)}
}

// Follow snaps the camera to the player's eye.
func (c *Camera) Follow(p *Player) {
	c.Eye = p.EyePos()
	c.Yaw = p.Yaw
	c.Pitch = p.Pitch
}

// Kick adds recoil that decays over the next few frames.
func (c *Camera) Kick(amount float64) {
	c.kick += amount
}

func (c *Camera) Update(dt float64) {
	c.kick *= 1 - 9*dt
	if c.kick < 0.0005 {
		c.kick = 0
	}
}

func (c *Camera) forward() Vec3 {
	pitch := c.Pitch + c.kick
	cp := math.Cos(pitch)
	return Vec3{
		X: math.Cos(c.Yaw) * cp,
		Y: math.Sin(c.Yaw) * cp,
		Z: math.Sin(pitch),
	}
}

// ViewProjection builds the combined matrix handed to every 3D shader.
func (c *Camera) ViewProjection() mgl32.Mat4 {
	eye := mgl32.Vec3{float32(c.Eye.X), float32(c.Eye.Y), float32(c.Eye.Z)}
	f := c.forward()
	center := mgl32.Vec3{
		eye.X() + float32(f.X),
		eye.Y() + float32(f.Y),
		eye.Z() + float32(f.Z),
	}
	view := mgl32.LookAtV(eye, center, mgl32.Vec3{0, 0, 1})
	proj := mgl32.Perspective(mgl32.DegToRad(FovDegrees), float32(c.Aspect), NearPlane, FarPlane)
	return proj.Mul4(view)
}
