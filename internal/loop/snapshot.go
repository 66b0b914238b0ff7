package loop

import (
	"github.com/google/uuid"
	"github.com/tomz197/arena/internal/object"
)

// Snapshot is an immutable copy of the simulation for rendering and readouts.
// It shares no memory with the State it was taken from.
type Snapshot struct {
	RunID  uuid.UUID
	Frame  uint64
	Time   float64
	Bounds object.Bounds

	Player      PlayerView
	Enemies     []EnemyView
	Projectiles []ProjectileView
	Stats       Stats
	GameOver    bool
}

// PlayerView is the read-only view of the player.
type PlayerView struct {
	X, Y         float64
	VX, VY       float64
	Size         float64
	HP           int
	Invulnerable bool
	Highlighted  bool // Shown in the hit color while invulnerable
}

// EnemyView is the read-only view of an enemy.
type EnemyView struct {
	ID       uint64
	X, Y     float64
	Size     float64
	HP       int
	Flashing bool
}

// ProjectileView is the read-only view of a projectile.
type ProjectileView struct {
	ID   uint64
	X, Y float64
	Size float64
}

// Stats is the numeric readout shown by the status display.
type Stats struct {
	Health        int
	Damage        int
	MovementSpeed float64 // Configured max speed
	CurrentSpeed  float64
	Enemies       int
	Projectiles   int
}

// Snapshot copies the current state.
func (s *State) Snapshot() *Snapshot {
	p := s.Player
	invulnerable := p.Invulnerable(s.Now)

	snap := &Snapshot{
		RunID:  s.RunID,
		Frame:  s.Frame,
		Time:   s.Now,
		Bounds: s.Bounds,
		Player: PlayerView{
			X:            p.X,
			Y:            p.Y,
			VX:           p.VX,
			VY:           p.VY,
			Size:         p.Size,
			HP:           p.HP,
			Invulnerable: invulnerable,
			Highlighted:  invulnerable,
		},
		Enemies:     make([]EnemyView, 0, s.Enemies.Len()),
		Projectiles: make([]ProjectileView, 0, s.Projectiles.Len()),
		Stats: Stats{
			Health:        p.HP,
			Damage:        p.Damage,
			MovementSpeed: p.MaxSpeed,
			CurrentSpeed:  p.Speed(),
			Enemies:       s.Enemies.Len(),
			Projectiles:   s.Projectiles.Len(),
		},
		GameOver: s.GameOver(),
	}

	for e := range s.Enemies.All() {
		snap.Enemies = append(snap.Enemies, EnemyView{
			ID:       e.ID,
			X:        e.X,
			Y:        e.Y,
			Size:     e.Size,
			HP:       e.HP,
			Flashing: e.Flashing(),
		})
	}
	for pr := range s.Projectiles.All() {
		snap.Projectiles = append(snap.Projectiles, ProjectileView{
			ID:   pr.ID,
			X:    pr.X,
			Y:    pr.Y,
			Size: pr.Size,
		})
	}

	return snap
}
