package loop

import "fmt"

// EventKind identifies what happened during a frame.
type EventKind int

const (
	EventEnemySpawned EventKind = iota
	EventProjectileFired
	EventPlayerHit
	EventEnemyHit
	EventEnemyKilled
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventEnemySpawned:
		return "enemy spawned"
	case EventProjectileFired:
		return "projectile fired"
	case EventPlayerHit:
		return "player hit"
	case EventEnemyHit:
		return "enemy hit"
	case EventEnemyKilled:
		return "enemy killed"
	case EventGameOver:
		return "game over"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is a notable state change recorded by Step.
type Event struct {
	Kind  EventKind
	Frame uint64  // Frame in which the event happened
	Time  float64 // Simulated time of the frame
	ID    uint64  // Enemy or projectile involved; the colliding enemy for player hits, 0 for game over
	X, Y  float64 // Position of the entity involved
	HP    int     // Hit points after the event (enemy or player)
}
