package render

import "testing"

func TestElementColorEndpoints(t *testing.T) {
	if got := ElementColor(0, 4); got != elementOff {
		t.Fatalf("zero activation = %v, want off color %v", got, elementOff)
	}
	if got := ElementColor(4, 4); got != elementOn {
		t.Fatalf("full activation = %v, want on color %v", got, elementOn)
	}
}

func TestElementColorClamps(t *testing.T) {
	if got := ElementColor(10, 4); got != elementOn {
		t.Fatalf("over-cap activation = %v, want on color", got)
	}
	if got := ElementColor(-1, 4); got != elementOff {
		t.Fatalf("negative activation = %v, want off color", got)
	}
	if got := ElementColor(2, 0); got != elementOff {
		t.Fatalf("zero cap = %v, want off color", got)
	}
}

func TestElementColorMonotonic(t *testing.T) {
	prev := ElementColor(0, 4)
	for i := 1; i <= 8; i++ {
		cur := ElementColor(float64(i)*0.5, 4)
		if cur.G < prev.G {
			t.Fatalf("green channel fell from %d to %d as activation rose", prev.G, cur.G)
		}
		prev = cur
	}
}

func TestEchoColorFades(t *testing.T) {
	full := EchoColor(1)
	half := EchoColor(0.5)
	gone := EchoColor(0)
	if full.A != 255 {
		t.Fatalf("full opacity alpha = %d, want 255", full.A)
	}
	if half.A >= full.A || half.R >= full.R {
		t.Fatal("half opacity must be dimmer than full")
	}
	if gone.A != 0 {
		t.Fatalf("zero opacity alpha = %d, want 0", gone.A)
	}
	if EchoColor(-1).A != 0 || EchoColor(2).A != 255 {
		t.Fatal("opacity outside [0,1] must clamp")
	}
}

func TestParticleColor(t *testing.T) {
	if ParticleColor(false) != particleColor || ParticleColor(true) != hitColor {
		t.Fatal("particle colors must distinguish hit state")
	}
}
