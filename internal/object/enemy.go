package object

import (
	"github.com/tomz197/arena/internal/config"
	"github.com/tomz197/arena/internal/physics"
)

// Enemy homes in on the player.
type Enemy struct {
	ID        uint64
	X, Y      float64 // Position (center)
	Speed     float64 // px/s
	HP        int
	HitTimer  float64 // Seconds of hit flash remaining
	Size      float64
	destroyed bool
}

// NewEnemy creates an enemy at (x, y).
func NewEnemy(id uint64, x, y float64, t config.EnemyTuning) *Enemy {
	return &Enemy{
		ID:    id,
		X:     x,
		Y:     y,
		Speed: t.Speed,
		HP:    t.HP,
		Size:  t.Size,
	}
}

// Update decays the hit flash and moves the enemy straight toward the target.
func (e *Enemy) Update(targetX, targetY, dt float64) {
	if e.HitTimer > 0 {
		e.HitTimer -= dt
		if e.HitTimer < 0 {
			e.HitTimer = 0
		}
	}

	dirX, dirY, _, ok := physics.Direction(e.X, e.Y, targetX, targetY)
	if !ok {
		return // Already on the target
	}
	e.X += dirX * e.Speed * dt
	e.Y += dirY * e.Speed * dt
}

// TakeDamage reduces hit points and starts the hit flash.
// Returns true if the enemy has no hit points left.
func (e *Enemy) TakeDamage(damage int, flashFor float64) bool {
	e.HP -= damage
	e.HitTimer = flashFor
	return e.HP <= 0
}

// Flashing reports whether the hit flash is active.
func (e *Enemy) Flashing() bool {
	return e.HitTimer > 0
}

// Rect returns the enemy's bounding box.
func (e *Enemy) Rect() physics.Rect {
	return physics.RectAround(e.X, e.Y, e.Size, e.Size)
}

// MarkDestroyed marks the enemy for removal (implements Destructible).
func (e *Enemy) MarkDestroyed() {
	e.destroyed = true
}

// IsDestroyed returns true if the enemy is marked for removal (implements Destructible).
func (e *Enemy) IsDestroyed() bool {
	return e.destroyed
}
