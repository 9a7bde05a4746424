package game

import "fmt"

// EventKind classifies something notable that happened during a tick.
type EventKind int

const (
	EventEnemyHit EventKind = iota
	EventEnemyKilled
	EventPlayerHit
	EventPlayerHealed
	EventPickupConsumed
	EventGameOver
	EventEnemySpawned
	EventPickupSpawned
)

func (k EventKind) String() string {
	switch k {
	case EventEnemyHit:
		return "enemy_hit"
	case EventEnemyKilled:
		return "enemy_killed"
	case EventPlayerHit:
		return "player_hit"
	case EventPlayerHealed:
		return "player_healed"
	case EventPickupConsumed:
		return "pickup_consumed"
	case EventGameOver:
		return "game_over"
	case EventEnemySpawned:
		return "enemy_spawned"
	case EventPickupSpawned:
		return "pickup_spawned"
	default:
		return "unknown"
	}
}

// Event is one notable outcome, handed to the renderer and the SimLog.
// ID names the enemy or pickup involved (0 for the player).
type Event struct {
	Tick   int
	Kind   EventKind
	ID     int
	Pos    Vec2
	Amount float64 // damage dealt, health left, or hearts restored
}

func (e Event) String() string {
	return fmt.Sprintf("[T=%04d] %-16s id=%d (%.0f,%.0f) %.0f",
		e.Tick, e.Kind, e.ID, e.Pos.X, e.Pos.Y, e.Amount)
}

// CombatRules are the proximity radii used by ResolveCombat.
type CombatRules struct {
	EnemyHitRadius  float64 // player bullet → enemy centre
	PlayerHitRadius float64 // enemy bullet → player centre
}

// CombatResult is what ResolveCombat changed beyond in-place mutation.
type CombatResult struct {
	Events   []Event
	Pickups  []Pickup // pickups still on the floor
	GameOver bool     // the player died during this resolution
}

// ResolveCombat settles bullet hits and pickup collection for one tick.
// bullets, enemies and player are mutated in place; dead entities keep their
// slots and are purged by the caller afterwards. pickups is filtered in place;
// only the returned CombatResult.Pickups is valid afterwards.
//
// Player bullets test every alive enemy in slice order and stop at the first
// hit. Enemy bullets only test the player and always cost exactly one heart,
// whatever their damage value. A pickup under the player is consumed even if
// the player is already at full health.
func ResolveCombat(bullets []Bullet, enemies []Enemy, player *Player, pickups []Pickup, rules CombatRules) CombatResult {
	var res CombatResult

	for i := range bullets {
		b := &bullets[i]
		if !b.Alive {
			continue
		}
		switch b.Owner {
		case OwnerPlayer:
			for j := range enemies {
				e := &enemies[j]
				if !e.Alive || !Within(b.Pos, e.Pos, rules.EnemyHitRadius) {
					continue
				}
				b.Alive = false
				if e.TakeDamage(b.Damage) {
					res.Events = append(res.Events, Event{Kind: EventEnemyKilled, ID: e.ID, Pos: e.Pos, Amount: b.Damage})
				} else {
					res.Events = append(res.Events, Event{Kind: EventEnemyHit, ID: e.ID, Pos: e.Pos, Amount: b.Damage})
				}
				break
			}
		case OwnerEnemy:
			if !Within(b.Pos, player.Pos, rules.PlayerHitRadius) {
				continue
			}
			b.Alive = false
			wasAlive := !player.Dead()
			dead := player.TakeHit(b.Damage)
			res.Events = append(res.Events, Event{Kind: EventPlayerHit, Pos: player.Pos, Amount: float64(player.Health)})
			if dead && wasAlive {
				res.GameOver = true
				res.Events = append(res.Events, Event{Kind: EventGameOver, Pos: player.Pos})
			}
		}
	}

	// A player who died this tick cannot be revived by a heart underfoot.
	if player.Dead() {
		res.Pickups = pickups
		return res
	}

	box := player.Bounds()
	kept := pickups[:0]
	for _, p := range pickups {
		if !box.Intersects(p.Bounds()) {
			kept = append(kept, p)
			continue
		}
		healed := player.Heal()
		res.Events = append(res.Events, Event{Kind: EventPickupConsumed, ID: p.ID, Pos: p.Pos})
		if healed {
			res.Events = append(res.Events, Event{Kind: EventPlayerHealed, Pos: player.Pos, Amount: 1})
		}
	}
	res.Pickups = kept
	return res
}
