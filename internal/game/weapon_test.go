package game

import (
	"errors"
	"testing"
)

func mustWeapon(t *testing.T, ammo, cooldown, reload int) *Weapon {
	t.Helper()
	w, err := NewWeapon(ammo, cooldown, reload)
	if err != nil {
		t.Fatalf("NewWeapon: %v", err)
	}
	return w
}

func TestWeapon_AmmoConservation(t *testing.T) {
	const n = 7
	w := mustWeapon(t, n, 3, 10)
	for k := 1; k < n; k++ {
		if !w.Fire() {
			t.Fatalf("fire %d rejected", k)
		}
		if w.Ammo != n-k {
			t.Fatalf("after %d fires ammo=%d, want %d", k, w.Ammo, n-k)
		}
		if w.State() != WeaponCooldown {
			t.Fatalf("after fire %d state=%s, want cooldown", k, w.State())
		}
		for i := 0; i < 3; i++ {
			w.Tick()
		}
		if w.State() != WeaponIdle {
			t.Fatalf("cooldown did not finish, state=%s", w.State())
		}
	}
}

func TestWeapon_FireToEmptyAndReload(t *testing.T) {
	w := mustWeapon(t, 10, 1, 5)
	for i := 0; i < 10; i++ {
		w.Tick()
		if !w.Fire() {
			t.Fatalf("fire %d rejected in state %s", i+1, w.State())
		}
	}
	if w.State() != WeaponReloading || w.Ammo != 0 {
		t.Fatalf("after 10 fires: state=%s ammo=%d", w.State(), w.Ammo)
	}
	for i := 0; i < 4; i++ {
		if w.Tick() {
			t.Fatalf("reload finished early at tick %d", i+1)
		}
	}
	if !w.Tick() {
		t.Fatal("reload should finish on the 5th tick")
	}
	if w.State() != WeaponIdle || w.Ammo != 10 {
		t.Fatalf("after reload: state=%s ammo=%d", w.State(), w.Ammo)
	}
}

func TestWeapon_FireIgnoredWhileBusy(t *testing.T) {
	w := mustWeapon(t, 2, 4, 6)
	w.Fire()
	if w.Fire() {
		t.Fatal("fire accepted during cooldown")
	}
	if w.Ammo != 1 {
		t.Fatalf("rejected fire changed ammo to %d", w.Ammo)
	}
	for w.State() != WeaponIdle {
		w.Tick()
	}
	w.Fire()
	if w.State() != WeaponReloading {
		t.Fatalf("last round should start reload, state=%s", w.State())
	}
	if w.Fire() {
		t.Fatal("fire accepted while reloading")
	}
}

func TestWeapon_TimersMutuallyExclusive(t *testing.T) {
	w := mustWeapon(t, 3, 2, 4)
	for i := 0; i < 40; i++ {
		w.Fire()
		w.Tick()
		cd, rl := w.Timers()
		if cd > 0 && rl > 0 {
			t.Fatalf("tick %d: cooldown=%d reload=%d both running", i, cd, rl)
		}
		if w.Ammo < 0 || w.Ammo > w.MaxAmmo {
			t.Fatalf("tick %d: ammo %d out of range", i, w.Ammo)
		}
	}
}

func TestWeapon_ProgressAndReset(t *testing.T) {
	w := mustWeapon(t, 1, 2, 4)
	if w.Progress() != 0 {
		t.Fatalf("idle progress %.2f", w.Progress())
	}
	w.Fire()
	if w.Progress() != 1 {
		t.Fatalf("fresh reload progress %.2f, want 1", w.Progress())
	}
	w.Tick()
	if w.Progress() != 0.75 {
		t.Fatalf("reload progress %.2f, want 0.75", w.Progress())
	}
	w.Reset()
	if w.State() != WeaponIdle || w.Ammo != 1 {
		t.Fatalf("reset left state=%s ammo=%d", w.State(), w.Ammo)
	}
}

func TestNewWeapon_RejectsBadTuning(t *testing.T) {
	for _, tc := range []struct{ ammo, cd, rl int }{{0, 1, 1}, {5, -1, 1}, {5, 1, 0}} {
		if _, err := NewWeapon(tc.ammo, tc.cd, tc.rl); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("NewWeapon(%d,%d,%d) err=%v, want ErrInvalidConfig", tc.ammo, tc.cd, tc.rl, err)
		}
	}
}
