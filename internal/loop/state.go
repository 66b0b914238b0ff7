// Package loop provides the per-frame simulation core: the simulation state,
// the fixed stage order run by Step, collision resolution, events and snapshots.
package loop

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/tomz197/arena/internal/config"
	"github.com/tomz197/arena/internal/object"
)

// State holds the whole simulation: the clock, the player and the entity lists.
// It is mutated only by Step and the Spawn helpers; callers on other goroutines
// must hold the host's lock for the duration of a frame.
type State struct {
	RunID  uuid.UUID
	Tuning config.Tuning
	Bounds object.Bounds

	Now   float64 // Simulated seconds since the run started
	Frame uint64  // Number of executed frames

	Player      *object.Player
	Enemies     object.List[*object.Enemy]
	Projectiles object.List[*object.Projectile]

	spawner *object.EnemySpawner
	weapon  *object.Weapon

	nextID           uint64
	events           []Event
	gameOverReported bool
}

// NewState creates a run with the player at rest in the middle of the play area.
// The spawner draws border positions from rng.
func NewState(t config.Tuning, rng *rand.Rand) *State {
	bounds := object.Bounds{Width: float64(t.Width), Height: float64(t.Height)}
	cx, cy := bounds.Center()

	return &State{
		RunID:   uuid.New(),
		Tuning:  t,
		Bounds:  bounds,
		Player:  object.NewPlayer(cx, cy, t.Player),
		spawner: object.NewEnemySpawner(0, t.Enemy, rng),
		weapon:  object.NewWeapon(0, t.Projectile),
	}
}

// NewRNG returns a PCG generator for the given seed. Seed 0 picks a time-based seed.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// GameOver reports whether the player has run out of hit points.
func (s *State) GameOver() bool {
	return s.Player.Dead()
}

// SpawnEnemy adds an enemy at (x, y) and records the spawn.
func (s *State) SpawnEnemy(x, y float64) *object.Enemy {
	e := object.NewEnemy(s.newID(), x, y, s.Tuning.Enemy)
	s.Enemies.Add(e)
	s.emit(Event{Kind: EventEnemySpawned, ID: e.ID, X: x, Y: y, HP: e.HP})
	return e
}

// SpawnProjectile adds a projectile at (x, y) traveling along (dirX, dirY)
// and records the shot.
func (s *State) SpawnProjectile(x, y, dirX, dirY float64) *object.Projectile {
	p := object.NewProjectile(s.newID(), x, y, dirX, dirY, s.Tuning.Projectile)
	s.Projectiles.Add(p)
	s.emit(Event{Kind: EventProjectileFired, ID: p.ID, X: x, Y: y})
	return p
}

// NextSpawn returns the earliest simulated time of the next enemy spawn.
func (s *State) NextSpawn() float64 {
	return s.spawner.NextSpawn()
}

// NextFire returns the earliest simulated time of the next shot.
func (s *State) NextFire() float64 {
	return s.weapon.NextFire()
}

// DrainEvents returns the events recorded since the last call and clears them.
func (s *State) DrainEvents() []Event {
	if len(s.events) == 0 {
		return nil
	}
	events := s.events
	s.events = nil
	return events
}

func (s *State) newID() uint64 {
	s.nextID++
	return s.nextID
}

// emit stamps an event with the current frame and time and queues it.
func (s *State) emit(e Event) {
	e.Frame = s.Frame
	e.Time = s.Now
	s.events = append(s.events, e)
}
