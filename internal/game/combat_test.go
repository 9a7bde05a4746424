package game

import "testing"

func classicRules() CombatRules {
	cfg := DefaultConfig()
	return CombatRules{EnemyHitRadius: cfg.Enemy.HitRadius, PlayerHitRadius: cfg.Player.HitRadius}
}

func countKind(events []Event, kind EventKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func TestCombat_FiveHitsKillEnemy(t *testing.T) {
	cfg := DefaultConfig()
	enemies := []Enemy{NewEnemy(1, V(100, 100), cfg.Enemy)}
	player := NewPlayer(V(900, 900), cfg.Player)

	for shot := 1; shot <= 5; shot++ {
		bullets := []Bullet{NewBullet(V(100, 100), V(200, 100), OwnerPlayer, 400, 20)}
		res := ResolveCombat(bullets, enemies, &player, nil, classicRules())
		if bullets[0].Alive {
			t.Fatalf("shot %d: bullet should be consumed by the hit", shot)
		}
		if shot == 2 && enemies[0].Health != 60 {
			t.Fatalf("after two hits expected 60 health, got %v", enemies[0].Health)
		}
		if shot < 5 {
			if !enemies[0].Alive || countKind(res.Events, EventEnemyHit) != 1 {
				t.Fatalf("shot %d: enemy should survive with one hit event, got %+v", shot, res.Events)
			}
			continue
		}
		if enemies[0].Alive || enemies[0].Health != 0 {
			t.Fatalf("fifth hit should kill: alive=%v health=%v", enemies[0].Alive, enemies[0].Health)
		}
		if countKind(res.Events, EventEnemyKilled) != 1 {
			t.Fatalf("expected one kill event, got %+v", res.Events)
		}
	}
}

func TestCombat_EnemyBulletsEndTheGame(t *testing.T) {
	cfg := DefaultConfig()
	player := NewPlayer(V(500, 500), cfg.Player)

	for hit := 1; hit <= 5; hit++ {
		// Damage is irrelevant for the player: every hit is one heart.
		bullets := []Bullet{NewBullet(V(500, 500), V(600, 500), OwnerEnemy, 400, 1000)}
		res := ResolveCombat(bullets, nil, &player, nil, classicRules())
		if player.Health != 5-hit {
			t.Fatalf("hit %d: expected %d hearts, got %d", hit, 5-hit, player.Health)
		}
		if res.GameOver != (hit == 5) {
			t.Fatalf("hit %d: GameOver = %v", hit, res.GameOver)
		}
	}

	// Further hits on a dead player do not end the game a second time.
	bullets := []Bullet{NewBullet(V(500, 500), V(600, 500), OwnerEnemy, 400, 20)}
	res := ResolveCombat(bullets, nil, &player, nil, classicRules())
	if res.GameOver || player.Health != 0 {
		t.Fatalf("dead player: GameOver=%v health=%d", res.GameOver, player.Health)
	}
}

func TestCombat_NoFriendlyFire(t *testing.T) {
	cfg := DefaultConfig()
	enemies := []Enemy{NewEnemy(1, V(100, 100), cfg.Enemy)}
	player := NewPlayer(V(300, 300), cfg.Player)
	bullets := []Bullet{
		NewBullet(V(100, 100), V(0, 0), OwnerEnemy, 400, 20),  // on the enemy
		NewBullet(V(300, 300), V(0, 0), OwnerPlayer, 400, 20), // on the player
	}

	res := ResolveCombat(bullets, enemies, &player, nil, classicRules())
	if len(res.Events) != 0 {
		t.Fatalf("expected no events, got %+v", res.Events)
	}
	if enemies[0].Health != 100 || player.Health != 5 {
		t.Fatalf("nobody should be hurt: enemy=%v player=%d", enemies[0].Health, player.Health)
	}
	if !bullets[0].Alive || !bullets[1].Alive {
		t.Fatal("bullets should fly on")
	}
}

func TestCombat_FirstHitWins(t *testing.T) {
	cfg := DefaultConfig()
	enemies := []Enemy{
		NewEnemy(1, V(100, 100), cfg.Enemy),
		NewEnemy(2, V(105, 100), cfg.Enemy),
	}
	player := NewPlayer(V(900, 900), cfg.Player)
	bullets := []Bullet{NewBullet(V(102, 100), V(200, 100), OwnerPlayer, 400, 20)}

	res := ResolveCombat(bullets, enemies, &player, nil, classicRules())
	if enemies[0].Health != 80 || enemies[1].Health != 100 {
		t.Fatalf("only the first enemy in order should be hit: %v / %v", enemies[0].Health, enemies[1].Health)
	}
	if len(res.Events) != 1 || res.Events[0].ID != 1 {
		t.Fatalf("expected one hit on enemy 1, got %+v", res.Events)
	}
}

func TestCombat_DeadEnemyIgnored(t *testing.T) {
	cfg := DefaultConfig()
	enemies := []Enemy{NewEnemy(1, V(100, 100), cfg.Enemy), NewEnemy(2, V(100, 100), cfg.Enemy)}
	enemies[0].Alive = false
	player := NewPlayer(V(900, 900), cfg.Player)
	bullets := []Bullet{NewBullet(V(100, 100), V(200, 100), OwnerPlayer, 400, 20)}

	ResolveCombat(bullets, enemies, &player, nil, classicRules())
	if enemies[1].Health != 80 {
		t.Fatalf("bullet should pass the corpse and hit enemy 2, got %v", enemies[1].Health)
	}
}

func TestCombat_PickupHealsAndIsConsumed(t *testing.T) {
	cfg := DefaultConfig()
	player := NewPlayer(V(500, 500), cfg.Player)
	player.Health = 3
	pickups := []Pickup{
		{ID: 7, Pos: V(490, 490), Size: 32},
		{ID: 8, Pos: V(900, 900), Size: 32},
	}

	res := ResolveCombat(nil, nil, &player, pickups, classicRules())
	if player.Health != 4 {
		t.Fatalf("expected 4 hearts, got %d", player.Health)
	}
	if len(res.Pickups) != 1 || res.Pickups[0].ID != 8 {
		t.Fatalf("expected only the far heart to remain, got %+v", res.Pickups)
	}
	if countKind(res.Events, EventPickupConsumed) != 1 || countKind(res.Events, EventPlayerHealed) != 1 {
		t.Fatalf("unexpected events %+v", res.Events)
	}
}

func TestCombat_PickupConsumedAtFullHealth(t *testing.T) {
	cfg := DefaultConfig()
	player := NewPlayer(V(500, 500), cfg.Player)
	pickups := []Pickup{{ID: 7, Pos: V(490, 490), Size: 32}}

	res := ResolveCombat(nil, nil, &player, pickups, classicRules())
	if player.Health != player.MaxHealth {
		t.Fatalf("health must stay capped, got %d", player.Health)
	}
	if len(res.Pickups) != 0 {
		t.Fatal("heart should be consumed even at full health")
	}
	if countKind(res.Events, EventPlayerHealed) != 0 {
		t.Fatal("no heal event expected at full health")
	}
}

func TestCombat_NoHealOnDeathTick(t *testing.T) {
	cfg := DefaultConfig()
	player := NewPlayer(V(500, 500), cfg.Player)
	player.Health = 1
	bullets := []Bullet{NewBullet(V(500, 500), V(600, 500), OwnerEnemy, 400, 20)}
	pickups := []Pickup{{ID: 7, Pos: V(490, 490), Size: 32}}

	res := ResolveCombat(bullets, nil, &player, pickups, classicRules())
	if !res.GameOver || player.Health != 0 {
		t.Fatalf("player should die: GameOver=%v health=%d", res.GameOver, player.Health)
	}
	if len(res.Pickups) != 1 {
		t.Fatal("heart under a dead player must stay on the floor")
	}
}

func TestPlayer_HealthBounds(t *testing.T) {
	p := NewPlayer(V(0, 0), DefaultConfig().Player)
	for i := 0; i < 10; i++ {
		p.Heal()
	}
	if p.Health != 5 {
		t.Fatalf("heal past max: %d", p.Health)
	}
	for i := 0; i < 10; i++ {
		p.TakeHit(20)
	}
	if p.Health != 0 || !p.Dead() {
		t.Fatalf("hit past zero: %d", p.Health)
	}
	if p.TakeHit(0); p.Health != 0 {
		t.Fatalf("zero damage changed health: %d", p.Health)
	}
}
