package obj

import (
	"math/rand"
	"time"

	"github.com/milk9111/redball/geom"
)

const (
	// positionLerpRate and zoomLerpRate are the per-frame smoothing blends.
	// Higher is snappier, lower is smoother.
	positionLerpRate = 0.08
	zoomLerpRate     = 0.05

	// MinZoom and MaxZoom bound every zoom target.
	MinZoom = 0.5
	MaxZoom = 2.0

	// verticalFollowBand limits how far the follow target may travel
	// vertically. The tight band keeps jumps from yanking the view around.
	verticalFollowBand = 100.0
)

// Camera smooths a follow target, applies zoom and screen shake, and exposes
// the world<->screen mapping as composed affine transforms. It keeps the
// previous frame's view matrix so renderers can blend between frames.
type Camera struct {
	Pos    geom.Vec2
	target geom.Vec2

	zoom       float64
	targetZoom float64

	shakeIntensity float64
	shakeTimer     int

	view geom.Mat3
	prev geom.Mat3

	screenW, screenH float64
	minX, maxX       float64

	rng *rand.Rand
}

// NewCamera creates a camera for the given logical screen size. Horizontal
// pan bounds default to [0, 2000]; adjust with SetPanBounds per level.
func NewCamera(screenW, screenH float64) *Camera {
	c := &Camera{
		zoom:       1.0,
		targetZoom: 1.0,
		screenW:    screenW,
		screenH:    screenH,
		minX:       0,
		maxX:       2000,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	c.view = viewMatrix(0, 0, 1)
	c.prev = c.view
	return c
}

// SetRand replaces the shake offset source. Tests inject a seeded generator
// to make shake deterministic.
func (c *Camera) SetRand(r *rand.Rand) {
	if r != nil {
		c.rng = r
	}
}

// SetPanBounds sets the world-space range the camera's horizontal follow
// target is clamped to.
func (c *Camera) SetPanBounds(minX, maxX float64) {
	c.minX = minX
	c.maxX = maxX
}

// SetTarget recenters the follow target on a world point. The target is
// offset by half the viewport so the point lands at screen center, then
// clamped to the pan bounds horizontally and the follow band vertically.
func (c *Camera) SetTarget(x, y float64) {
	c.target.X = geom.Clamp(x-c.screenW/2, c.minX, c.maxX)
	c.target.Y = geom.Clamp(y-c.screenH/2, -verticalFollowBand, verticalFollowBand)
}

// SetZoomTarget sets the zoom goal, clamped to [MinZoom, MaxZoom].
func (c *Camera) SetZoomTarget(z float64) {
	c.targetZoom = geom.Clamp(z, MinZoom, MaxZoom)
}

// AddScreenShake starts a shake effect. The new shake replaces any running
// one; intensities do not stack.
func (c *Camera) AddScreenShake(intensity float64, frames int) {
	c.shakeIntensity = intensity
	c.shakeTimer = frames
}

// Shaking reports whether a shake effect is still running.
func (c *Camera) Shaking() bool { return c.shakeTimer > 0 }

// Zoom returns the current smoothed zoom.
func (c *Camera) Zoom() float64 { return c.zoom }

// Update advances smoothing one frame and rebuilds the view matrix. Call
// once per logical frame, after the simulation has placed the follow target.
func (c *Camera) Update() {
	c.prev = c.view

	c.Pos.X = geom.Lerp(c.Pos.X, c.target.X, positionLerpRate)
	c.Pos.Y = geom.Lerp(c.Pos.Y, c.target.Y, positionLerpRate)
	c.zoom = geom.Lerp(c.zoom, c.targetZoom, zoomLerpRate)

	var shakeX, shakeY float64
	if c.shakeTimer > 0 {
		shakeX = (c.rng.Float64()*2 - 1) * c.shakeIntensity
		shakeY = (c.rng.Float64()*2 - 1) * c.shakeIntensity
		c.shakeTimer--
		if c.shakeTimer <= 0 {
			c.shakeIntensity = 0
		}
	}

	c.view = viewMatrix(c.Pos.X+shakeX, c.Pos.Y+shakeY, c.zoom)
}

// WorldToScreen maps a world point through the current view transform,
// including any shake offset.
func (c *Camera) WorldToScreen(p geom.Vec2) geom.Vec2 {
	return c.view.Apply(p)
}

// ScreenToWorld maps a screen point back to world space. The inverse is
// rebuilt from the smoothed position and zoom and deliberately ignores
// shake, so during a shake the two directions do not round-trip exactly.
// Zoom is clamped away from zero before it is ever used as a divisor.
func (c *Camera) ScreenToWorld(p geom.Vec2) geom.Vec2 {
	inv := geom.Compose(
		geom.Translation(c.Pos.X, c.Pos.Y),
		geom.Scaling(1/c.zoom, 1/c.zoom),
	)
	return inv.Apply(p)
}

// InterpolatedMatrix blends the previous and current view matrices for
// sub-frame rendering. alpha=0 yields last frame's view, alpha=1 this
// frame's.
func (c *Camera) InterpolatedMatrix(alpha float64) geom.Mat3 {
	return geom.LerpMat(c.prev, c.view, alpha)
}

// viewMatrix builds the camera transform: translate the world so the camera
// sits at the origin, then scale by zoom. Composition order matters.
func viewMatrix(x, y, zoom float64) geom.Mat3 {
	return geom.Compose(
		geom.Scaling(zoom, zoom),
		geom.Translation(-x, -y),
	)
}
