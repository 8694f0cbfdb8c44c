package game

import (
	"errors"
	"fmt"
	"math"
)

// NominalTickRate is the simulation rate every per-tick constant is tuned for.
const NominalTickRate = 65

// ErrInvalidConfig is wrapped by every Config.Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the session tunables. Durations are whole ticks; speeds are
// units per second; TrackingFactor and CameraSpeed are fractions per tick.
// A session never mutates its Config.
type Config struct {
	TickRate int

	PlayerRadius         float64
	PlayerSpeed          float64
	PlayerHealth         int
	InvulnerabilityTicks int

	BulletRadius    float64
	BulletSpeed     float64
	BulletLifeTicks int

	EnemyRadius    float64
	EnemySpeed     float64
	EnemyHealth    int
	TrackingFactor float64

	MaxAmmo       int
	CooldownTicks int
	ReloadTicks   int
	WeaponDamage  int

	SpawnIntervalTicks   int
	DespawnIntervalTicks int
	// SpawnDistance of 0 derives the ring radius from the viewport diagonal.
	SpawnDistance float64
	// DespawnDistance of 0 derives it from the spawn distance.
	DespawnDistance float64

	StartingEnemies       int
	StartingDistanceScale float64 // fraction of SpawnDistance for the first enemy
	StartingDistanceStep  float64 // added per additional starting enemy

	CameraSpeed float64

	ViewportWidth  float64
	ViewportHeight float64
}

// DefaultConfig returns the tuning used by the shipped game.
func DefaultConfig() Config {
	return DefaultConfigAt(NominalTickRate)
}

// DefaultConfigAt returns the default tuning for a tick rate other than the
// nominal one. Tick counts are recomputed from their real-time durations and
// per-tick fractions are rescaled so that behaviour stays time-invariant.
func DefaultConfigAt(rate int) Config {
	if rate <= 0 {
		rate = NominalTickRate
	}
	return Config{
		TickRate: rate,

		PlayerRadius:         16,
		PlayerSpeed:          300,
		PlayerHealth:         3,
		InvulnerabilityTicks: SecondsToTicks(3, rate),

		BulletRadius:    5,
		BulletSpeed:     900,
		BulletLifeTicks: SecondsToTicks(1, rate),

		EnemyRadius:    20,
		EnemySpeed:     160,
		EnemyHealth:    1,
		TrackingFactor: RescalePerTick(0.08, NominalTickRate, rate),

		MaxAmmo:       10,
		CooldownTicks: SecondsToTicks(0.2, rate),
		ReloadTicks:   SecondsToTicks(1, rate),
		WeaponDamage:  1,

		SpawnIntervalTicks:   SecondsToTicks(1, rate),
		DespawnIntervalTicks: SecondsToTicks(5, rate),

		StartingEnemies:       4,
		StartingDistanceScale: 0.4,
		StartingDistanceStep:  0.1,

		CameraSpeed: RescalePerTick(0.1, NominalTickRate, rate),

		ViewportWidth:  1024,
		ViewportHeight: 768,
	}
}

// SecondsToTicks converts a real-time duration to whole ticks at rate.
func SecondsToTicks(seconds float64, rate int) int {
	return int(math.Round(seconds * float64(rate)))
}

// RescalePerTick converts a per-tick interpolation fraction tuned at rate from
// to the equivalent fraction at rate to, so the gap closed per second is the
// same at both rates.
func RescalePerTick(f float64, from, to int) float64 {
	if from == to || to <= 0 || from <= 0 {
		return f
	}
	return 1 - math.Pow(1-f, float64(from)/float64(to))
}

// Dt is the fixed tick duration in seconds.
func (c Config) Dt() float64 {
	return 1 / float64(c.TickRate)
}

// ViewportCenter returns the screen-space centre of the viewport.
func (c Config) ViewportCenter() (float64, float64) {
	return c.ViewportWidth / 2, c.ViewportHeight / 2
}

// EffectiveSpawnDistance resolves a zero SpawnDistance against the viewport.
func (c Config) EffectiveSpawnDistance() float64 {
	if c.SpawnDistance > 0 {
		return c.SpawnDistance
	}
	return math.Hypot(c.ViewportWidth, c.ViewportHeight) * 0.55
}

// EffectiveDespawnDistance resolves a zero DespawnDistance.
func (c Config) EffectiveDespawnDistance() float64 {
	if c.DespawnDistance > 0 {
		return c.DespawnDistance
	}
	return c.EffectiveSpawnDistance() * 1.1
}

// Validate rejects tunables that would break an entity or weapon invariant.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}
	check(c.TickRate > 0, "tick rate %d must be positive", c.TickRate)
	check(c.PlayerRadius > 0, "player radius %.2f must be positive", c.PlayerRadius)
	check(c.BulletRadius > 0, "bullet radius %.2f must be positive", c.BulletRadius)
	check(c.EnemyRadius > 0, "enemy radius %.2f must be positive", c.EnemyRadius)
	check(c.PlayerSpeed >= 0, "player speed %.2f must not be negative", c.PlayerSpeed)
	check(c.BulletSpeed >= 0, "bullet speed %.2f must not be negative", c.BulletSpeed)
	check(c.EnemySpeed >= 0, "enemy speed %.2f must not be negative", c.EnemySpeed)
	check(c.PlayerHealth > 0, "player health %d must be positive", c.PlayerHealth)
	check(c.EnemyHealth > 0, "enemy health %d must be positive", c.EnemyHealth)
	check(c.BulletLifeTicks > 0, "bullet life %d must be positive", c.BulletLifeTicks)
	check(c.InvulnerabilityTicks >= 0, "invulnerability %d must not be negative", c.InvulnerabilityTicks)
	check(c.TrackingFactor > 0 && c.TrackingFactor <= 1, "tracking factor %.3f must be in (0,1]", c.TrackingFactor)
	check(c.CameraSpeed > 0 && c.CameraSpeed <= 1, "camera speed %.3f must be in (0,1]", c.CameraSpeed)
	check(c.MaxAmmo > 0, "max ammo %d must be positive", c.MaxAmmo)
	check(c.CooldownTicks >= 0, "cooldown %d must not be negative", c.CooldownTicks)
	check(c.ReloadTicks > 0, "reload %d must be positive", c.ReloadTicks)
	check(c.WeaponDamage > 0, "weapon damage %d must be positive", c.WeaponDamage)
	check(c.SpawnIntervalTicks > 0, "spawn interval %d must be positive", c.SpawnIntervalTicks)
	check(c.DespawnIntervalTicks > 0, "despawn interval %d must be positive", c.DespawnIntervalTicks)
	check(c.SpawnDistance >= 0, "spawn distance %.2f must not be negative", c.SpawnDistance)
	check(c.StartingEnemies >= 0, "starting enemies %d must not be negative", c.StartingEnemies)
	check(c.StartingDistanceScale > 0, "starting distance scale %.2f must be positive", c.StartingDistanceScale)
	check(c.StartingDistanceStep >= 0, "starting distance step %.2f must not be negative", c.StartingDistanceStep)
	check(c.ViewportWidth > 0 && c.ViewportHeight > 0, "viewport %.0fx%.0f must be positive", c.ViewportWidth, c.ViewportHeight)
	if c.DespawnDistance != 0 {
		check(c.DespawnDistance >= c.EffectiveSpawnDistance(),
			"despawn distance %.2f must not be below spawn distance %.2f", c.DespawnDistance, c.EffectiveSpawnDistance())
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
