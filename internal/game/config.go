package game

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure from Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds every tunable of an arena session. The zero value is not
// usable; start from DefaultConfig and override.
type Config struct {
	World  WorldConfig  `yaml:"world"`
	Player PlayerConfig `yaml:"player"`
	Enemy  EnemyConfig  `yaml:"enemy"`
	Bullet BulletConfig `yaml:"bullet"`
	Pickup PickupConfig `yaml:"pickup"`
	Spawn  SpawnConfig  `yaml:"spawn"`

	// Static map. Obstacles never change during a session.
	Obstacles []Rect `yaml:"obstacles"`

	Hardening HardeningConfig `yaml:"hardening"`
}

// WorldConfig sizes the playable area and the renderer's viewport.
type WorldConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	ViewWidth  int     `yaml:"view_width"`
	ViewHeight int     `yaml:"view_height"`
}

type PlayerConfig struct {
	Speed     float64 `yaml:"speed"` // world units per second
	MaxHealth int     `yaml:"max_health"`
	Size      float64 `yaml:"size"` // bounding box edge, centred on position
	HitRadius float64 `yaml:"hit_radius"`
}

type EnemyConfig struct {
	Speed         float64 `yaml:"speed"`
	Health        float64 `yaml:"health"`
	ShootCooldown float64 `yaml:"shoot_cooldown"` // seconds between shots
	Size          float64 `yaml:"size"`
	HitRadius     float64 `yaml:"hit_radius"`
	Initial       []Vec2  `yaml:"initial"` // positions seeded at session start
}

type BulletConfig struct {
	Speed  float64 `yaml:"speed"`
	Damage float64 `yaml:"damage"`
}

type PickupConfig struct {
	Size    float64 `yaml:"size"`
	Initial int     `yaml:"initial"` // hearts scattered at session start
}

// SpawnConfig sets the two scheduler intervals, in seconds.
type SpawnConfig struct {
	EnemyInterval  float64 `yaml:"enemy_interval"`
	PickupInterval float64 `yaml:"pickup_interval"`
}

// HardeningConfig holds protections that the classic rules lacked.
type HardeningConfig struct {
	// MaxTickSeconds caps a single tick's elapsed time so a long stall
	// cannot tunnel actors through obstacles.
	MaxTickSeconds float64 `yaml:"max_tick_seconds"`
	// CullBullets drops bullets that leave the world by more than
	// BulletCullMargin units.
	CullBullets      bool    `yaml:"cull_bullets"`
	BulletCullMargin float64 `yaml:"bullet_cull_margin"`
}

// DefaultConfig returns the classic office-arena rules.
func DefaultConfig() Config {
	return Config{
		World: WorldConfig{
			Width:      2000,
			Height:     2000,
			ViewWidth:  960,
			ViewHeight: 640,
		},
		Player: PlayerConfig{
			Speed:     200,
			MaxHealth: 5,
			Size:      30,
			HitRadius: 15,
		},
		Enemy: EnemyConfig{
			Speed:         80,
			Health:        100,
			ShootCooldown: 1.0,
			Size:          30,
			HitRadius:     20,
			Initial: []Vec2{
				{X: 400, Y: 400},
				{X: 1600, Y: 1600},
				{X: 1600, Y: 400},
			},
		},
		Bullet: BulletConfig{
			Speed:  400,
			Damage: 20,
		},
		Pickup: PickupConfig{
			Size:    32,
			Initial: 3,
		},
		Spawn: SpawnConfig{
			EnemyInterval:  5.0,
			PickupInterval: 10.0,
		},
		// Office desks.
		Obstacles: []Rect{
			{X: 400, Y: 400, W: 150, H: 80},
			{X: 800, Y: 600, W: 150, H: 80},
			{X: 1200, Y: 400, W: 150, H: 80},
			{X: 400, Y: 1000, W: 150, H: 80},
			{X: 800, Y: 1200, W: 150, H: 80},
			{X: 1200, Y: 1000, W: 150, H: 80},
		},
		Hardening: HardeningConfig{
			MaxTickSeconds:   0.1,
			CullBullets:      true,
			BulletCullMargin: 200,
		},
	}
}

// LoadConfig reads a YAML config from path on top of DefaultConfig.
// A missing file is not an error: the defaults are returned.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read arena config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse arena config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every field that would make a session misbehave.
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if !(v > 0) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, name, v))
		}
	}

	positive("world.width", c.World.Width)
	positive("world.height", c.World.Height)
	positive("player.speed", c.Player.Speed)
	positive("player.size", c.Player.Size)
	positive("player.hit_radius", c.Player.HitRadius)
	positive("enemy.speed", c.Enemy.Speed)
	positive("enemy.health", c.Enemy.Health)
	positive("enemy.shoot_cooldown", c.Enemy.ShootCooldown)
	positive("enemy.size", c.Enemy.Size)
	positive("enemy.hit_radius", c.Enemy.HitRadius)
	positive("bullet.speed", c.Bullet.Speed)
	positive("pickup.size", c.Pickup.Size)
	positive("spawn.enemy_interval", c.Spawn.EnemyInterval)
	positive("spawn.pickup_interval", c.Spawn.PickupInterval)
	positive("hardening.max_tick_seconds", c.Hardening.MaxTickSeconds)

	if c.Player.MaxHealth <= 0 {
		errs = append(errs, fmt.Errorf("%w: player.max_health must be positive, got %d", ErrInvalidConfig, c.Player.MaxHealth))
	}
	if c.Bullet.Damage < 0 {
		errs = append(errs, fmt.Errorf("%w: bullet.damage must not be negative, got %v", ErrInvalidConfig, c.Bullet.Damage))
	}
	if c.Pickup.Initial < 0 {
		errs = append(errs, fmt.Errorf("%w: pickup.initial must not be negative, got %d", ErrInvalidConfig, c.Pickup.Initial))
	}
	if c.Hardening.BulletCullMargin < 0 {
		errs = append(errs, fmt.Errorf("%w: hardening.bullet_cull_margin must not be negative, got %v", ErrInvalidConfig, c.Hardening.BulletCullMargin))
	}
	for i, o := range c.Obstacles {
		if o.W <= 0 || o.H <= 0 {
			errs = append(errs, fmt.Errorf("%w: obstacles[%d] has non-positive size %vx%v", ErrInvalidConfig, i, o.W, o.H))
		}
	}
	return errors.Join(errs...)
}
