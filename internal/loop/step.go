package loop

import (
	"github.com/tomz197/arena/internal/object"
	"github.com/tomz197/arena/internal/physics"
)

// Step advances the simulation by one frame of delta seconds with the given
// movement intent. The stages always run in the same order:
//
//  1. advance the clock
//  2. integrate player motion
//  3. spawn enemies
//  4. move enemies and decay their hit flash
//  5. resolve player/enemy contact
//  6. fire the weapon
//  7. move projectiles and resolve projectile/enemy hits
//
// A delta that is not a positive finite number leaves the state untouched.
// Step keeps simulating after the player dies; callers check GameOver.
func Step(s *State, delta float64, intent object.Intent) {
	if !(delta > 0) || !physics.Finite(delta) {
		return
	}

	s.Now += delta
	s.Frame++

	s.Player.Integrate(intent, delta)
	spawnEnemies(s)
	moveEnemies(s, delta)
	resolvePlayerHits(s)
	fireWeapon(s)
	moveProjectiles(s, delta)

	s.Enemies.Compact()
	s.Projectiles.Compact()

	if s.GameOver() && !s.gameOverReported {
		s.gameOverReported = true
		s.emit(Event{Kind: EventGameOver, X: s.Player.X, Y: s.Player.Y, HP: s.Player.HP})
	}
}

// spawnEnemies creates at most one enemy on the play area border.
func spawnEnemies(s *State) {
	x, y, _, ok := s.spawner.Update(s.Now, s.Enemies.Len(), s.Bounds)
	if !ok {
		return
	}
	s.SpawnEnemy(x, y)
}

// moveEnemies steers every enemy toward the player's current position.
func moveEnemies(s *State, delta float64) {
	for e := range s.Enemies.All() {
		e.Update(s.Player.X, s.Player.Y, delta)
	}
}

// fireWeapon shoots one projectile at the nearest enemy once the cooldown has
// elapsed. The cooldown is spent even when there is nothing to shoot at.
func fireWeapon(s *State) {
	if !s.weapon.Trigger(s.Now) {
		return
	}
	if s.Enemies.Len() == 0 {
		return
	}

	p := s.Player
	target, ok := object.Nearest(p.X, p.Y, s.Enemies.All())
	if !ok {
		return
	}
	dirX, dirY, ok := object.Aim(p.X, p.Y, target)
	if !ok {
		return // Target sits on the player
	}
	s.SpawnProjectile(p.X, p.Y, dirX, dirY)
}

// moveProjectiles advances every projectile and resolves its hits.
func moveProjectiles(s *State, delta float64) {
	for p := range s.Projectiles.All() {
		p.Advance(delta)
		if !s.Bounds.Contains(p.X, p.Y) {
			s.Projectiles.Remove(p)
			continue
		}
		resolveProjectileHit(s, p)
	}
}
