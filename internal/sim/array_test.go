package sim

import (
	"math"
	"testing"
)

func TestReceiveArrayGeometry(t *testing.T) {
	a := NewReceiveArray(4, 0, 0, 100, 1, 4, 1)
	if a.Count() != 4 {
		t.Fatalf("count = %d, want 4", a.Count())
	}
	wantY := []float64{12.5, 37.5, 62.5, 87.5}
	for i, want := range wantY {
		if got := a.ElementY(i); math.Abs(got-want) > 1e-9 {
			t.Fatalf("element %d y = %f, want %f", i, got, want)
		}
	}
	if a.Top() != 12.5 || a.Bottom() != 87.5 {
		t.Fatalf("top/bottom = %f/%f, want 12.5/87.5", a.Top(), a.Bottom())
	}
}

func TestReceiveArrayDecayFloorsAtZero(t *testing.T) {
	a := NewReceiveArray(2, 0, 0, 100, 1, 4, 2)
	a.elements[0] = 0.5
	a.elements[1] = 3

	a.Decay(0.1) // step 0.2
	if got := a.Activations()[0]; math.Abs(got-0.3) > 1e-9 {
		t.Fatalf("element 0 = %f, want 0.3", got)
	}

	a.Decay(1) // step 2, floors element 0
	if got := a.Activations()[0]; got != 0 {
		t.Fatalf("element 0 = %f, want floor at 0", got)
	}
	if got := a.Activations()[1]; math.Abs(got-0.8) > 1e-9 {
		t.Fatalf("element 1 = %f, want 0.8", got)
	}
}

func TestRegisterArrivalsJustCrossedWindow(t *testing.T) {
	// One element directly in line with the echo origin (dy = 0).
	a := NewReceiveArray(1, 0, 0, 100, 1, 4, 1)
	eY := a.ElementY(0)
	echo := Echo{CX: 30, CY: eY, Opacity: 1}
	d := 30.0

	const growth = 5.0
	var fired []float64
	for r := 6.0; r < 60; r += growth {
		echo.Radius = r
		before := a.Activations()[0]
		a.RegisterArrivals([]Echo{echo}, growth, 0.02)
		if a.Activations()[0] > before {
			fired = append(fired, r)
		}
	}

	if len(fired) != 1 {
		t.Fatalf("element fired %d times, want exactly once", len(fired))
	}
	// Activation happens at or after the first radius >= distance, and
	// within one growth step of it.
	if fired[0] < d || fired[0]-d >= growth {
		t.Fatalf("fired at radius %f, want within [%f, %f)", fired[0], d, d+growth)
	}
}

func TestRegisterArrivalsNearElementBeforeFar(t *testing.T) {
	a := NewReceiveArray(2, 0, 0, 100, 1, 4, 1)
	// Origin level with element 0: element 0 is nearer than element 1.
	echo := Echo{CX: 30, CY: a.ElementY(0), Opacity: 1}

	const growth = 5.0
	nearStep, farStep := -1, -1
	step := 0
	for r := 6.0; r < 80; r += growth {
		echo.Radius = r
		before := append([]float64(nil), a.Activations()...)
		a.RegisterArrivals([]Echo{echo}, growth, 0.02)
		if nearStep < 0 && a.Activations()[0] > before[0] {
			nearStep = step
		}
		if farStep < 0 && a.Activations()[1] > before[1] {
			farStep = step
		}
		step++
	}

	if nearStep < 0 || farStep < 0 {
		t.Fatalf("arrivals missed: near=%d far=%d", nearStep, farStep)
	}
	if nearStep > farStep {
		t.Fatalf("near element fired at step %d, after far element at %d", nearStep, farStep)
	}
}

func TestRegisterArrivalsIgnoresFadedEchoes(t *testing.T) {
	a := NewReceiveArray(1, 0, 0, 100, 1, 4, 1)
	echo := Echo{CX: 30, CY: a.ElementY(0), Radius: 31, Opacity: 0.01}
	a.RegisterArrivals([]Echo{echo}, 5, 0.02)
	if a.Activations()[0] != 0 {
		t.Fatal("echo below the visibility threshold must not register")
	}
}

func TestRegisterArrivalsIgnoresOriginsBehindFace(t *testing.T) {
	a := NewReceiveArray(1, 10, 0, 100, 1, 4, 1)
	echo := Echo{CX: 5, CY: a.ElementY(0), Radius: 100, Opacity: 1}
	a.RegisterArrivals([]Echo{echo}, 200, 0.02)
	if a.Activations()[0] != 0 {
		t.Fatal("echo originating behind the probe face must not register")
	}
}

func TestRegisterArrivalsCapsActivation(t *testing.T) {
	a := NewReceiveArray(1, 0, 0, 100, 1, 4, 1)
	echo := Echo{CX: 30, CY: a.ElementY(0), Radius: 31, Opacity: 1}
	// A huge window keeps the echo inside the crossing test every call.
	for i := 0; i < 10; i++ {
		a.RegisterArrivals([]Echo{echo}, 1000, 0.02)
	}
	if got := a.Activations()[0]; got != 4 {
		t.Fatalf("activation = %f, want cap 4", got)
	}
}

func TestReceiveArrayReset(t *testing.T) {
	a := NewReceiveArray(3, 0, 0, 100, 1, 4, 1)
	a.elements[0] = 1
	a.elements[2] = 3
	a.Reset()
	for i, v := range a.Activations() {
		if v != 0 {
			t.Fatalf("element %d = %f after Reset, want 0", i, v)
		}
	}
}
