package object

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/tomz197/arena/internal/config"
	"pgregory.net/rapid"
)

var testArea = Bounds{Width: 1024, Height: 768}

func newTestSpawner() *EnemySpawner {
	return NewEnemySpawner(0, config.Default().Enemy, rand.New(rand.NewPCG(1, 2)))
}

func TestSpawner_Timing(t *testing.T) {
	s := newTestSpawner()

	if _, _, _, ok := s.Update(0, 0, testArea); ok {
		t.Fatal("spawned at time 0")
	}
	if _, _, _, ok := s.Update(0.001, 0, testArea); ok {
		t.Fatal("spawned at exactly the first allowed time; spawn requires time to pass it")
	}
	if _, _, _, ok := s.Update(0.002, 0, testArea); !ok {
		t.Fatal("expected first spawn")
	}
	if got := s.NextSpawn(); math.Abs(got-1.002) > 1e-9 {
		t.Errorf("NextSpawn = %v, want 1.002", got)
	}
	if _, _, _, ok := s.Update(0.5, 1, testArea); ok {
		t.Error("spawned before the interval elapsed")
	}
	if _, _, _, ok := s.Update(1.01, 1, testArea); !ok {
		t.Error("expected second spawn after the interval")
	}
}

func TestSpawner_CapDoesNotConsumeTimer(t *testing.T) {
	s := newTestSpawner()

	if _, _, _, ok := s.Update(5, 5, testArea); ok {
		t.Fatal("spawned at the population cap")
	}
	if got := s.NextSpawn(); got != 0.001 {
		t.Errorf("NextSpawn = %v, want untouched 0.001", got)
	}
	if _, _, _, ok := s.Update(5, 4, testArea); !ok {
		t.Error("expected spawn once below the cap")
	}
}

func TestRandomEdgePoint_OnBorder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint64().Draw(t, "seed")
		area := Bounds{
			Width:  float64(rapid.IntRange(1, 4000).Draw(t, "w")),
			Height: float64(rapid.IntRange(1, 4000).Draw(t, "h")),
		}
		rng := rand.New(rand.NewPCG(seed, seed))

		x, y, edge := RandomEdgePoint(rng, area)

		if !area.Contains(x, y) {
			t.Fatalf("(%v, %v) outside %+v", x, y, area)
		}
		var onEdge bool
		switch edge {
		case EdgeTop:
			onEdge = y == 0
		case EdgeBottom:
			onEdge = y == area.Height
		case EdgeLeft:
			onEdge = x == 0
		case EdgeRight:
			onEdge = x == area.Width
		}
		if !onEdge {
			t.Fatalf("(%v, %v) not on the %s edge of %+v", x, y, edge, area)
		}
	})
}

func TestRandomEdgePoint_EdgesUniform(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	counts := make(map[Edge]int)
	const draws = 4000
	for range draws {
		_, _, edge := RandomEdgePoint(rng, testArea)
		counts[edge]++
	}
	for _, e := range []Edge{EdgeTop, EdgeBottom, EdgeLeft, EdgeRight} {
		if n := counts[e]; n < 800 || n > 1200 {
			t.Errorf("%s edge chosen %d times out of %d, want about %d", e, n, draws, draws/4)
		}
	}
}
