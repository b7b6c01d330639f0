package camera

import "testing"

func TestCamera_RoundTrip(t *testing.T) {
	c := New(800, 600, 1600, 1200)
	c.SetZoom(2)

	wx, wy := c.ScreenToWorld(c.WorldToScreen(900, 450))
	if absf(wx-900) > 0.01 || absf(wy-450) > 0.01 {
		t.Errorf("round trip drifted: (%f,%f)", wx, wy)
	}
}

func TestCamera_FollowClampsAtEdges(t *testing.T) {
	c := New(800, 600, 1600, 1200)

	c.Follow(0, 0)
	if c.X != 400 || c.Y != 300 {
		t.Errorf("expected clamp to (400,300), got (%f,%f)", c.X, c.Y)
	}

	c.Follow(1600, 1200)
	if c.X != 1200 || c.Y != 900 {
		t.Errorf("expected clamp to (1200,900), got (%f,%f)", c.X, c.Y)
	}
}

func TestCamera_ZoomClamped(t *testing.T) {
	c := New(800, 600, 1600, 1200)

	c.SetZoom(100)
	if c.Zoom != c.MaxZoom {
		t.Errorf("zoom exceeded max: %f", c.Zoom)
	}
	c.SetZoom(0.01)
	if c.Zoom != c.MinZoom {
		t.Errorf("zoom below min: %f", c.Zoom)
	}
}
