package object

import (
	"github.com/tomz197/arena/internal/config"
	"github.com/tomz197/arena/internal/physics"
)

// Player is the player-controlled entity.
type Player struct {
	X, Y   float64 // Position (center)
	VX, VY float64 // Velocity (px/s)

	HP                int
	Damage            int     // Damage dealt by each projectile
	InvulnerableUntil float64 // Simulated time until which hits are ignored

	Size            float64
	MaxSpeed        float64 // px/s
	Acceleration    float64 // px/s² while input is held
	Friction        float64 // px/s² of deceleration without input
	InvulnerableFor float64 // Seconds of invulnerability after a hit
}

// NewPlayer creates a player at rest at (x, y).
func NewPlayer(x, y float64, t config.PlayerTuning) *Player {
	return &Player{
		X:               x,
		Y:               y,
		HP:              t.HP,
		Damage:          t.Damage,
		Size:            t.Size,
		MaxSpeed:        t.MaxSpeed,
		Acceleration:    t.Acceleration,
		Friction:        t.Friction,
		InvulnerableFor: t.InvulnerableFor,
	}
}

// Integrate applies one frame of input, acceleration, friction and movement.
func (p *Player) Integrate(in Intent, dt float64) {
	moveX, moveY := in.Vector()

	if moveX != 0 || moveY != 0 {
		p.VX += moveX * p.Acceleration * dt
		p.VY += moveY * p.Acceleration * dt

		// Clamp the magnitude, never the individual axes
		speed := physics.Length(p.VX, p.VY)
		if speed > p.MaxSpeed {
			scale := p.MaxSpeed / speed
			p.VX *= scale
			p.VY *= scale
		}
	} else {
		// Friction shrinks the magnitude and keeps the direction
		speed := physics.Length(p.VX, p.VY)
		if speed > 0 {
			newSpeed := max(0, speed-p.Friction*dt)
			if newSpeed == 0 {
				p.VX = 0
				p.VY = 0
			} else {
				scale := newSpeed / speed
				p.VX *= scale
				p.VY *= scale
			}
		}
	}

	p.X += p.VX * dt
	p.Y += p.VY * dt
}

// Speed returns the current velocity magnitude.
func (p *Player) Speed() float64 {
	return physics.Length(p.VX, p.VY)
}

// Rect returns the player's bounding box.
func (p *Player) Rect() physics.Rect {
	return physics.RectAround(p.X, p.Y, p.Size, p.Size)
}

// Invulnerable reports whether hits are ignored at time now.
func (p *Player) Invulnerable(now float64) bool {
	return now < p.InvulnerableUntil
}

// Hit applies one point of contact damage unless the player is invulnerable.
// Returns true if damage was taken.
func (p *Player) Hit(now float64) bool {
	if p.Invulnerable(now) {
		return false
	}
	p.HP--
	p.InvulnerableUntil = now + p.InvulnerableFor
	return true
}

// Dead reports whether the player has run out of hit points.
func (p *Player) Dead() bool {
	return p.HP <= 0
}
