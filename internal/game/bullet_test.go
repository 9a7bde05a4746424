package game

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func TestNewBullet_VelocityHasConfiguredSpeed(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		origin := V(rapid.Float64Range(-2000, 2000).Draw(t, "ox"), rapid.Float64Range(-2000, 2000).Draw(t, "oy"))
		target := V(rapid.Float64Range(-2000, 2000).Draw(t, "tx"), rapid.Float64Range(-2000, 2000).Draw(t, "ty"))
		speed := rapid.Float64Range(1, 1000).Draw(t, "speed")

		b := NewBullet(origin, target, OwnerPlayer, speed, 20)
		if _, ok := target.Sub(origin).Normalize(); !ok {
			if b.Alive || !b.Vel.IsZero() {
				t.Fatalf("degenerate aim must produce a dead bullet, got %+v", b)
			}
			return
		}
		if !b.Alive {
			t.Fatal("aimed bullet should be alive")
		}
		if got := b.Vel.Len(); math.Abs(got-speed) > 1e-9*speed {
			t.Fatalf("|vel| = %v, want %v", got, speed)
		}
		if b.Pos != origin {
			t.Fatalf("bullet must start at the origin, got %+v", b.Pos)
		}
	})
}

func TestNewBullet_ZeroLengthAimIsDead(t *testing.T) {
	b := NewBullet(V(100, 100), V(100, 100), OwnerPlayer, 400, 20)
	if b.Alive {
		t.Fatal("bullet aimed at its own origin must not be alive")
	}
	if !b.Vel.IsZero() {
		t.Fatalf("expected zero velocity, got %+v", b.Vel)
	}
}

func TestNewBullet_NonFiniteAimIsDead(t *testing.T) {
	targets := []Vec2{
		V(math.NaN(), 10),
		V(10, math.NaN()),
		V(math.Inf(1), 0),
		V(0, math.Inf(-1)),
	}
	for _, target := range targets {
		b := NewBullet(V(100, 100), target, OwnerPlayer, 400, 20)
		if b.Alive {
			t.Fatalf("bullet aimed at %+v must not be alive", target)
		}
		if !b.Vel.IsZero() {
			t.Fatalf("aim %+v: expected zero velocity, got %+v", target, b.Vel)
		}
	}
}

func TestBullet_AdvanceIsLinear(t *testing.T) {
	b := NewBullet(V(0, 0), V(10, 0), OwnerEnemy, 400, 20)
	for i := 0; i < 4; i++ {
		b.Advance(0.25)
	}
	if math.Abs(b.Pos.X-400) > 1e-9 || b.Pos.Y != 0 {
		t.Fatalf("after 1s at 400u/s expected (400,0), got %+v", b.Pos)
	}
}

func TestBullet_OutOf(t *testing.T) {
	area := Rect{W: 100, H: 100}
	cases := []struct {
		pos  Vec2
		want bool
	}{
		{V(50, 50), false},
		{V(-20, 50), false}, // inside the margin
		{V(129, 129), false}, // inside the margin on the far side
		{V(150, 150), true},
		{V(-31, 50), true},
		{V(50, 131), true},
	}
	for _, tc := range cases {
		b := Bullet{Pos: tc.pos, Alive: true}
		if got := b.OutOf(area, 30); got != tc.want {
			t.Errorf("OutOf at %+v = %v, want %v", tc.pos, got, tc.want)
		}
	}
}
