package loop

import "github.com/tomz197/arena/internal/object"

// resolvePlayerHits applies contact damage from the first enemy overlapping
// the player. At most one contact is resolved per frame, and none while the
// player is invulnerable.
func resolvePlayerHits(s *State) {
	p := s.Player
	pr := p.Rect()

	for e := range s.Enemies.All() {
		if !pr.Intersects(e.Rect()) {
			continue
		}
		if p.Hit(s.Now) {
			s.emit(Event{Kind: EventPlayerHit, ID: e.ID, X: p.X, Y: p.Y, HP: p.HP})
		}
		return
	}
}

// resolveProjectileHit damages the first enemy the projectile overlaps. The
// projectile is spent on the hit, so it damages at most one enemy.
func resolveProjectileHit(s *State, p *object.Projectile) {
	pr := p.Rect()

	for e := range s.Enemies.All() {
		if !pr.Intersects(e.Rect()) {
			continue
		}

		killed := e.TakeDamage(s.Player.Damage, s.Tuning.Enemy.FlashFor)
		s.Projectiles.Remove(p)
		s.emit(Event{Kind: EventEnemyHit, ID: e.ID, X: e.X, Y: e.Y, HP: e.HP})

		if killed {
			s.Enemies.Remove(e)
			s.emit(Event{Kind: EventEnemyKilled, ID: e.ID, X: e.X, Y: e.Y, HP: e.HP})
		}
		return
	}
}
