package game

import "math"

// Autopilot is a scripted stand-in for the human player, used by the headless
// report to produce comparable runs. It shoots at the nearest enemy on a
// fixed rhythm, backs away from enemies that get close and otherwise walks
// to the nearest heart when hurt.
type Autopilot struct {
	FireInterval float64 // seconds between shots
	KeepAway     float64 // retreat when an enemy is nearer than this
	Deadzone     float64 // ignore axis offsets smaller than this

	lastShot float64
	fired    bool
}

// NewAutopilot returns an autopilot with reasonable defaults.
func NewAutopilot() *Autopilot {
	return &Autopilot{
		FireInterval: 0.35,
		KeepAway:     220,
		Deadzone:     4,
	}
}

// Decide picks the input for the next tick from the latest snapshot.
func (a *Autopilot) Decide(snap Snapshot) Input {
	var in Input
	if snap.GameOver {
		return in
	}
	p := snap.Player.Pos

	enemy, haveEnemy := nearestEnemy(snap.Enemies, p)
	if haveEnemy {
		in.Target = enemy.Pos
		if !a.fired || snap.Elapsed-a.lastShot >= a.FireInterval {
			in.Fire = true
			a.fired = true
			a.lastShot = snap.Elapsed
		}
		if DistSq(enemy.Pos, p) < a.KeepAway*a.KeepAway {
			a.steer(&in, p.Sub(enemy.Pos))
			return in
		}
	}

	if snap.Player.Health < snap.Player.MaxHealth {
		if heart, ok := nearestPickup(snap.Pickups, p); ok {
			a.steer(&in, heart.Bounds().Center().Sub(p))
		}
	}
	return in
}

func (a *Autopilot) steer(in *Input, d Vec2) {
	in.Left = d.X < -a.Deadzone
	in.Right = d.X > a.Deadzone
	in.Up = d.Y < -a.Deadzone
	in.Down = d.Y > a.Deadzone
}

func nearestEnemy(enemies []Enemy, from Vec2) (Enemy, bool) {
	best := math.Inf(1)
	var out Enemy
	for _, e := range enemies {
		if !e.Alive {
			continue
		}
		if d := DistSq(e.Pos, from); d < best {
			best = d
			out = e
		}
	}
	return out, !math.IsInf(best, 1)
}

func nearestPickup(pickups []Pickup, from Vec2) (Pickup, bool) {
	best := math.Inf(1)
	var out Pickup
	for _, p := range pickups {
		if d := DistSq(p.Bounds().Center(), from); d < best {
			best = d
			out = p
		}
	}
	return out, !math.IsInf(best, 1)
}
