package loop

import (
	"math"
	"testing"

	"github.com/tomz197/arena/internal/config"
	"github.com/tomz197/arena/internal/object"
	"pgregory.net/rapid"
)

func newTestState(opts ...func(*config.Tuning)) *State {
	tu := config.Default()
	tu.Seed = 42
	for _, opt := range opts {
		opt(&tu)
	}
	return NewState(tu, NewRNG(tu.Seed))
}

func noSpawns(t *config.Tuning) { t.Enemy.SpawnDelay = math.Inf(1) }
func noFiring(t *config.Tuning) { t.Projectile.FireDelay = math.Inf(1) }

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestStep_InvalidDeltaIsNoop(t *testing.T) {
	for _, delta := range []float64{0, -0.1, math.NaN(), math.Inf(1)} {
		s := newTestState()
		s.Player.VX = 100
		Step(s, delta, object.Intent{X: 1})

		if s.Now != 0 || s.Frame != 0 {
			t.Errorf("delta %v: Now/Frame = %v/%d, want 0/0", delta, s.Now, s.Frame)
		}
		if s.Player.X != 512 || s.Player.VX != 100 {
			t.Errorf("delta %v: player changed to %+v", delta, s.Player)
		}
	}
}

func TestStep_NoSpawnAtTimeZero(t *testing.T) {
	s := newTestState()
	if s.Enemies.Len() != 0 {
		t.Fatalf("new state has %d enemies", s.Enemies.Len())
	}

	Step(s, 0.0005, object.Intent{})
	if s.Enemies.Len() != 0 {
		t.Errorf("enemy spawned before the initial delay")
	}

	Step(s, 0.0005, object.Intent{})
	Step(s, 0.0005, object.Intent{})
	if s.Enemies.Len() != 1 {
		t.Errorf("enemies = %d, want 1 once the delay has passed", s.Enemies.Len())
	}
}

func TestStep_SpawnedEnemyTargetedSameFrame(t *testing.T) {
	s := newTestState()
	Step(s, 0.1, object.Intent{})

	events := s.DrainEvents()
	if len(events) < 2 || events[0].Kind != EventEnemySpawned || events[1].Kind != EventProjectileFired {
		t.Fatalf("events = %v, want spawn then fire", events)
	}
	if s.Projectiles.Len() != 1 {
		t.Errorf("projectiles = %d, want 1", s.Projectiles.Len())
	}
}

func TestStep_EnemyApproachesPlayer(t *testing.T) {
	s := newTestState(noSpawns, noFiring)
	s.Player.X, s.Player.Y = 100, 100
	e := s.SpawnEnemy(100, 0)

	prev := 100.0
	for i := range 4 {
		Step(s, 0.1, object.Intent{})
		dist := math.Hypot(s.Player.X-e.X, s.Player.Y-e.Y)
		if dist >= prev {
			t.Fatalf("frame %d: distance %v did not decrease from %v", i, dist, prev)
		}
		if step := prev - dist; math.Abs(step-20) > 1e-9 {
			t.Errorf("frame %d: moved %v px, want 20", i, step)
		}
		prev = dist
	}

	// Arrives and then stays put without jitter
	for range 6 {
		Step(s, 0.1, object.Intent{})
	}
	if e.X != 100 || e.Y != 100 {
		t.Errorf("enemy at (%v, %v), want (100, 100)", e.X, e.Y)
	}
}

func TestStep_ProjectileDamagesEnemy(t *testing.T) {
	s := newTestState(noSpawns, noFiring)
	e := s.SpawnEnemy(300, 100)
	s.SpawnProjectile(290, 100, 1, 0)

	Step(s, 0.001, object.Intent{})

	if e.HP != 3 {
		t.Errorf("enemy HP = %d, want 3", e.HP)
	}
	if e.HitTimer != 0.1 {
		t.Errorf("HitTimer = %v, want 0.1", e.HitTimer)
	}
	if s.Enemies.Len() != 1 {
		t.Errorf("enemies = %d, want 1", s.Enemies.Len())
	}
	if s.Projectiles.Len() != 0 {
		t.Errorf("projectiles = %d, want 0", s.Projectiles.Len())
	}
	if n := countEvents(s.DrainEvents(), EventEnemyHit); n != 1 {
		t.Errorf("enemy hit events = %d, want 1", n)
	}
}

func TestStep_ProjectileKillsEnemy(t *testing.T) {
	s := newTestState(noSpawns, noFiring)
	e := s.SpawnEnemy(300, 100)
	e.HP = 2
	s.SpawnProjectile(290, 100, 1, 0)

	Step(s, 0.001, object.Intent{})

	if s.Enemies.Len() != 0 {
		t.Errorf("enemies = %d, want 0", s.Enemies.Len())
	}
	if !e.IsDestroyed() {
		t.Error("enemy not destroyed")
	}
	if n := countEvents(s.DrainEvents(), EventEnemyKilled); n != 1 {
		t.Errorf("enemy killed events = %d, want 1", n)
	}
}

func TestStep_ProjectileDamagesOneEnemy(t *testing.T) {
	s := newTestState(noSpawns, noFiring)
	first := s.SpawnEnemy(300, 100)
	second := s.SpawnEnemy(300, 100)
	s.SpawnProjectile(290, 100, 1, 0)

	Step(s, 0.001, object.Intent{})

	if first.HP != 3 || second.HP != 5 {
		t.Errorf("HP = %d/%d, want 3/5", first.HP, second.HP)
	}
}

func TestStep_ProjectileLeavesPlayArea(t *testing.T) {
	s := newTestState(noSpawns, noFiring)
	e := s.SpawnEnemy(1020, 100)
	e.Speed = 0
	s.SpawnProjectile(1023, 100, 1, 0)

	Step(s, 0.01, object.Intent{})

	if s.Projectiles.Len() != 0 {
		t.Errorf("projectiles = %d, want 0", s.Projectiles.Len())
	}
	if e.HP != 5 {
		t.Errorf("enemy HP = %d, want 5 (projectile left before hitting)", e.HP)
	}
}

func TestStep_FireWithoutEnemiesSpendsCooldown(t *testing.T) {
	s := newTestState(noSpawns)

	Step(s, 0.5, object.Intent{})

	if s.Projectiles.Len() != 0 {
		t.Errorf("projectiles = %d, want 0", s.Projectiles.Len())
	}
	if got := s.NextFire(); got != 1.5 {
		t.Errorf("NextFire = %v, want 1.5", got)
	}
}

func TestStep_FireAtEnemyOnPlayerSpendsCooldown(t *testing.T) {
	s := newTestState(noSpawns)
	s.SpawnEnemy(s.Player.X, s.Player.Y)

	Step(s, 0.5, object.Intent{})

	if s.Projectiles.Len() != 0 {
		t.Errorf("projectiles = %d, want 0", s.Projectiles.Len())
	}
	if got := s.NextFire(); got != 1.5 {
		t.Errorf("NextFire = %v, want 1.5", got)
	}
}

func TestStep_FiresOncePerCooldown(t *testing.T) {
	s := newTestState(noSpawns)
	e := s.SpawnEnemy(100, 100)
	e.Speed = 0

	var fired int
	for range 9 {
		Step(s, 0.1, object.Intent{})
		fired += countEvents(s.DrainEvents(), EventProjectileFired)
	}
	if fired != 1 {
		t.Errorf("fired %d projectiles in 0.9s, want 1", fired)
	}
}

func TestStep_AimsAtNearestEnemy(t *testing.T) {
	s := newTestState(noSpawns)
	s.SpawnEnemy(0, 0)
	s.SpawnEnemy(s.Player.X+200, s.Player.Y)

	Step(s, 0.01, object.Intent{})

	var shot *object.Projectile
	for p := range s.Projectiles.All() {
		shot = p
	}
	if shot == nil {
		t.Fatal("no projectile fired")
	}
	if shot.DirX != 1 || shot.DirY != 0 {
		t.Errorf("direction = (%v, %v), want (1, 0)", shot.DirX, shot.DirY)
	}
}

func TestStep_PlayerHitOncePerFrame(t *testing.T) {
	s := newTestState(noSpawns, noFiring)
	s.SpawnEnemy(s.Player.X, s.Player.Y)
	s.SpawnEnemy(s.Player.X, s.Player.Y)

	Step(s, 0.01, object.Intent{})

	if s.Player.HP != 4 {
		t.Errorf("HP = %d, want 4", s.Player.HP)
	}
}

func TestStep_HighlightWithNonOverlappingEnemyFirst(t *testing.T) {
	s := newTestState(noSpawns, noFiring)
	far := s.SpawnEnemy(0, 0)
	far.Speed = 0
	s.SpawnEnemy(s.Player.X, s.Player.Y)

	Step(s, 0.01, object.Intent{})

	snap := s.Snapshot()
	if snap.Player.HP != 4 {
		t.Errorf("HP = %d, want 4", snap.Player.HP)
	}
	if !snap.Player.Highlighted {
		t.Error("player should be highlighted after a hit")
	}
}

func TestStep_GameOverReportedOnce(t *testing.T) {
	s := newTestState(noSpawns, noFiring)
	s.Player.HP = 1
	s.SpawnEnemy(s.Player.X, s.Player.Y)

	Step(s, 0.1, object.Intent{})
	if !s.GameOver() {
		t.Fatal("GameOver = false, want true")
	}
	for range 20 {
		Step(s, 0.1, object.Intent{})
	}
	if n := countEvents(s.DrainEvents(), EventGameOver); n != 1 {
		t.Errorf("game over events = %d, want 1", n)
	}
	if s.Frame != 21 {
		t.Errorf("Frame = %d, want 21 (simulation keeps running)", s.Frame)
	}
}

func TestStep_PopulationNeverExceedsCap(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := newTestState(func(tu *config.Tuning) {
			tu.Seed = rapid.Int64Range(1, math.MaxInt64).Draw(t, "seed")
		})
		frames := rapid.IntRange(1, 400).Draw(t, "frames")

		for i := range frames {
			delta := rapid.Float64Range(0.001, 0.5).Draw(t, "delta")
			intent := object.Intent{
				X: float64(rapid.IntRange(-1, 1).Draw(t, "x")),
				Y: float64(rapid.IntRange(-1, 1).Draw(t, "y")),
			}
			Step(s, delta, intent)

			if n := s.Enemies.Len(); n > s.Tuning.Enemy.Cap {
				t.Fatalf("frame %d: %d enemies, cap %d", i, n, s.Tuning.Enemy.Cap)
			}
			for _, ev := range s.DrainEvents() {
				if ev.Kind != EventEnemySpawned {
					continue
				}
				onBorder := ev.X == 0 || ev.X == s.Bounds.Width || ev.Y == 0 || ev.Y == s.Bounds.Height
				if !onBorder || !s.Bounds.Contains(ev.X, ev.Y) {
					t.Fatalf("enemy %d spawned at (%v, %v), not on the border", ev.ID, ev.X, ev.Y)
				}
			}
		}
	})
}

func TestStep_InvulnerabilityWindow(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := newTestState(noSpawns, noFiring)
		s.Player.HP = 1000
		s.SpawnEnemy(s.Player.X, s.Player.Y)
		window := s.Tuning.Player.InvulnerableFor

		frames := rapid.IntRange(1, 300).Draw(t, "frames")
		var hits []float64
		for range frames {
			delta := rapid.Float64Range(0.001, 0.3).Draw(t, "delta")
			Step(s, delta, object.Intent{})
			for _, ev := range s.DrainEvents() {
				if ev.Kind == EventPlayerHit {
					hits = append(hits, ev.Time)
				}
			}
		}

		for i := 1; i < len(hits); i++ {
			if gap := hits[i] - hits[i-1]; gap < window-1e-9 {
				t.Fatalf("hits at %v and %v are %v apart, want at least %v", hits[i-1], hits[i], gap, window)
			}
		}
		if got, want := s.Player.HP, 1000-len(hits); got != want {
			t.Fatalf("HP = %d, want %d", got, want)
		}
	})
}
