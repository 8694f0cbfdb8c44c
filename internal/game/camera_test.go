package game

import (
	"math"
	"testing"

	"github.com/Garsondee/Circle-Arena/internal/geom"
)

func TestCamera_CenterAndRoundTrip(t *testing.T) {
	c := NewCamera(0.1)
	vc := geom.V(512, 384)
	c.Center(geom.V(40, -10), vc)
	if got := c.ToScreen(geom.V(40, -10)); got != vc {
		t.Fatalf("centred target drawn at %+v, want %+v", got, vc)
	}
	p := geom.V(123.5, -77)
	if got := c.ToWorld(c.ToScreen(p)); got != p {
		t.Fatalf("round trip %+v != %+v", got, p)
	}
}

func TestCamera_FollowClosesFractionPerTick(t *testing.T) {
	c := NewCamera(0.1)
	vc := geom.V(512, 384)
	c.Center(geom.Zero, vc)
	c.Follow(geom.V(100, 0), vc)
	if want := -512.0 + 10; math.Abs(c.Offset.X-want) > eps {
		t.Fatalf("offset x %.6f, want %.6f", c.Offset.X, want)
	}
	for i := 0; i < 300; i++ {
		c.Follow(geom.V(100, 0), vc)
	}
	if d := c.Offset.Dist(geom.V(100-512, -384)); d > 1e-6 {
		t.Fatalf("camera did not settle, %.9f off", d)
	}
}

func TestCamera_TimeInvariantAcrossTickRates(t *testing.T) {
	gapAfterOneSecond := func(rate int) float64 {
		cfg := DefaultConfigAt(rate)
		c := NewCamera(cfg.CameraSpeed)
		vc := geom.Zero
		for i := 0; i < rate; i++ {
			c.Follow(geom.V(1000, 0), vc)
		}
		return 1000 - c.Offset.X
	}
	a, b := gapAfterOneSecond(65), gapAfterOneSecond(130)
	if math.Abs(a-b) > 1e-6 {
		t.Fatalf("gap after 1s: %.9f at 65Hz vs %.9f at 130Hz", a, b)
	}
}
