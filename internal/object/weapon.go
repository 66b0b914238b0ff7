package object

import (
	"iter"

	"github.com/tomz197/arena/internal/config"
	"github.com/tomz197/arena/internal/physics"
)

// Weapon is the player's auto-firing gun. It fires at most once per interval.
type Weapon struct {
	next     float64 // Earliest simulated time of the next shot
	interval float64
}

// NewWeapon creates a weapon whose first shot is allowed at now + FireDelay.
func NewWeapon(now float64, t config.ProjectileTuning) *Weapon {
	return &Weapon{
		next:     now + t.FireDelay,
		interval: t.FireInterval,
	}
}

// Trigger consumes the cooldown if it has elapsed. The cooldown is consumed
// even if the caller then finds nothing to shoot at.
func (w *Weapon) Trigger(now float64) bool {
	if now < w.next {
		return false
	}
	w.next = now + w.interval
	return true
}

// NextFire returns the earliest simulated time of the next shot.
func (w *Weapon) NextFire() float64 {
	return w.next
}

// Nearest returns the enemy closest to (x, y). Ties go to the enemy seen first.
func Nearest(x, y float64, enemies iter.Seq[*Enemy]) (*Enemy, bool) {
	var closest *Enemy
	minDistSq := 0.0
	for e := range enemies {
		distSq := physics.DistanceSquared(x, y, e.X, e.Y)
		if closest == nil || distSq < minDistSq {
			closest = e
			minDistSq = distSq
		}
	}
	return closest, closest != nil
}

// Aim returns the unit direction from (x, y) to the target. ok is false when
// the target sits exactly on (x, y).
func Aim(x, y float64, target *Enemy) (dirX, dirY float64, ok bool) {
	dirX, dirY, _, ok = physics.Direction(x, y, target.X, target.Y)
	return dirX, dirY, ok
}
