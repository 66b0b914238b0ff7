package object

import (
	"math/rand/v2"

	"github.com/tomz197/arena/internal/config"
)

// Edge identifies one side of the play area.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	default:
		return "unknown"
	}
}

// EnemySpawner creates enemies on the play area border at a fixed interval
// while the population is below the cap.
type EnemySpawner struct {
	next     float64 // Earliest simulated time of the next spawn
	interval float64
	cap      int
	rng      *rand.Rand
}

// NewEnemySpawner creates a spawner whose first spawn is allowed after now + SpawnDelay.
func NewEnemySpawner(now float64, t config.EnemyTuning, rng *rand.Rand) *EnemySpawner {
	return &EnemySpawner{
		next:     now + t.SpawnDelay,
		interval: t.SpawnInterval,
		cap:      t.Cap,
		rng:      rng,
	}
}

// Update decides whether an enemy spawns this frame and where.
func (s *EnemySpawner) Update(now float64, population int, area Bounds) (x, y float64, edge Edge, ok bool) {
	if population >= s.cap {
		return 0, 0, 0, false
	}
	if now <= s.next {
		return 0, 0, 0, false
	}
	s.next = now + s.interval

	x, y, edge = RandomEdgePoint(s.rng, area)
	return x, y, edge, true
}

// NextSpawn returns the earliest simulated time of the next spawn.
func (s *EnemySpawner) NextSpawn() float64 {
	return s.next
}

// RandomEdgePoint picks a border uniformly, then a whole-pixel coordinate
// uniformly along it (both ends included).
func RandomEdgePoint(rng *rand.Rand, area Bounds) (x, y float64, edge Edge) {
	w := int(area.Width)
	h := int(area.Height)

	edge = Edge(rng.IntN(4))
	switch edge {
	case EdgeTop:
		x = float64(rng.IntN(w + 1))
		y = 0
	case EdgeBottom:
		x = float64(rng.IntN(w + 1))
		y = float64(h)
	case EdgeLeft:
		x = 0
		y = float64(rng.IntN(h + 1))
	case EdgeRight:
		x = float64(w)
		y = float64(rng.IntN(h + 1))
	}
	return x, y, edge
}
