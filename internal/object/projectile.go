package object

import (
	"github.com/tomz197/arena/internal/config"
	"github.com/tomz197/arena/internal/physics"
)

// Projectile is a shot fired by the player. Its direction is fixed at creation.
type Projectile struct {
	ID         uint64
	X, Y       float64 // Position (center)
	DirX, DirY float64 // Unit direction
	Speed      float64 // px/s
	Size       float64
	destroyed  bool
}

// NewProjectile creates a projectile at (x, y) traveling along the unit vector (dirX, dirY).
func NewProjectile(id uint64, x, y, dirX, dirY float64, t config.ProjectileTuning) *Projectile {
	return &Projectile{
		ID:    id,
		X:     x,
		Y:     y,
		DirX:  dirX,
		DirY:  dirY,
		Speed: t.Speed,
		Size:  t.Size,
	}
}

// Advance moves the projectile along its direction.
func (p *Projectile) Advance(dt float64) {
	p.X += p.DirX * p.Speed * dt
	p.Y += p.DirY * p.Speed * dt
}

// Rect returns the projectile's bounding box.
func (p *Projectile) Rect() physics.Rect {
	return physics.RectAround(p.X, p.Y, p.Size, p.Size)
}

// MarkDestroyed marks the projectile for removal.
func (p *Projectile) MarkDestroyed() {
	p.destroyed = true
}

// IsDestroyed returns true if the projectile is marked for removal.
func (p *Projectile) IsDestroyed() bool {
	return p.destroyed
}
