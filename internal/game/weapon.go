package game

import "fmt"

// WeaponState is the phase of the single weapon model.
type WeaponState int

const (
	WeaponIdle WeaponState = iota
	WeaponCooldown
	WeaponReloading
)

func (s WeaponState) String() string {
	switch s {
	case WeaponIdle:
		return "idle"
	case WeaponCooldown:
		return "cooldown"
	case WeaponReloading:
		return "reloading"
	default:
		return "unknown"
	}
}

// Weapon tracks ammo and the cooldown/reload countdowns. At most one of the
// two countdowns is running at any time.
type Weapon struct {
	Ammo    int
	MaxAmmo int

	cooldownTotal int
	reloadTotal   int
	cooldown      int
	reload        int
}

// NewWeapon returns a full weapon with no timers running.
func NewWeapon(maxAmmo, cooldownTicks, reloadTicks int) (*Weapon, error) {
	if maxAmmo <= 0 {
		return nil, fmt.Errorf("max ammo %d: %w", maxAmmo, ErrInvalidConfig)
	}
	if cooldownTicks < 0 || reloadTicks <= 0 {
		return nil, fmt.Errorf("cooldown %d / reload %d ticks: %w", cooldownTicks, reloadTicks, ErrInvalidConfig)
	}
	return &Weapon{
		Ammo:          maxAmmo,
		MaxAmmo:       maxAmmo,
		cooldownTotal: cooldownTicks,
		reloadTotal:   reloadTicks,
	}, nil
}

// State derives the phase from the running countdown.
func (w *Weapon) State() WeaponState {
	switch {
	case w.reload > 0:
		return WeaponReloading
	case w.cooldown > 0:
		return WeaponCooldown
	default:
		return WeaponIdle
	}
}

// CanFire reports whether a shot would be accepted now.
func (w *Weapon) CanFire() bool {
	return w.cooldown == 0 && w.reload == 0 && w.Ammo > 0
}

// Fire spends one round. The last round starts the reload, any other starts
// the cooldown. It returns false and changes nothing when the weapon is not
// ready.
func (w *Weapon) Fire() bool {
	if !w.CanFire() {
		return false
	}
	w.Ammo--
	if w.Ammo == 0 {
		w.reload = w.reloadTotal
	} else {
		w.cooldown = w.cooldownTotal
	}
	return true
}

// Tick advances whichever countdown is running. It returns true on the tick a
// reload completes and the magazine is refilled.
func (w *Weapon) Tick() bool {
	if w.cooldown > 0 {
		w.cooldown--
		return false
	}
	if w.reload > 0 {
		w.reload--
		if w.reload == 0 {
			w.Ammo = w.MaxAmmo
			return true
		}
	}
	return false
}

// Reset refills the magazine and clears both countdowns.
func (w *Weapon) Reset() {
	w.Ammo = w.MaxAmmo
	w.cooldown = 0
	w.reload = 0
}

// Progress returns the running countdown's remaining fraction of its total,
// for the weapon bar. It is 0 while idle.
func (w *Weapon) Progress() float64 {
	switch w.State() {
	case WeaponCooldown:
		return float64(w.cooldown) / float64(w.cooldownTotal)
	case WeaponReloading:
		return float64(w.reload) / float64(w.reloadTotal)
	default:
		return 0
	}
}

// Timers returns the raw cooldown and reload countdowns.
func (w *Weapon) Timers() (cooldown, reload int) {
	return w.cooldown, w.reload
}
