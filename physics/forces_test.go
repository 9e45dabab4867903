package physics

import (
	"math"
	"testing"
)

const epsilon = 1e-9

// TestResolveHorizontalScenario verifies the worked example from the second-law slide:
// m=10 kg, F=30 N at 0°, μ=0.25 gives N=98.1, f=24.525, a=0.5475
func TestResolveHorizontalScenario(t *testing.T) {
	r := ResolveHorizontal(10, 30, 0, 0.25)

	if math.Abs(r.Normal-98.1) > epsilon {
		t.Errorf("Expected Normal 98.1, got %v", r.Normal)
	}
	if math.Abs(r.Friction-24.525) > epsilon {
		t.Errorf("Expected Friction 24.525, got %v", r.Friction)
	}
	if math.Abs(r.Net-5.475) > epsilon {
		t.Errorf("Expected Net 5.475, got %v", r.Net)
	}
	if math.Abs(r.Accel-0.5475) > epsilon {
		t.Errorf("Expected Accel 0.5475, got %v", r.Accel)
	}
	if r.ContactLost {
		t.Error("Expected contact maintained")
	}
}

// TestResolveHorizontalAngledForce verifies the angled push reduces the normal force
func TestResolveHorizontalAngledForce(t *testing.T) {
	mass, force, angle, mu := 10.0, 40.0, 30.0, 0.2
	r := ResolveHorizontal(mass, force, angle, mu)

	theta := angle * math.Pi / 180
	wantFx := force * math.Cos(theta)
	wantFy := force * math.Sin(theta)
	wantNormal := mass*Gravity - wantFy
	wantFriction := mu * wantNormal
	wantAccel := (wantFx - wantFriction) / mass

	if math.Abs(r.Fx-wantFx) > epsilon {
		t.Errorf("Expected Fx %v, got %v", wantFx, r.Fx)
	}
	if math.Abs(r.Fy-wantFy) > epsilon {
		t.Errorf("Expected Fy %v, got %v", wantFy, r.Fy)
	}
	if math.Abs(r.Normal-wantNormal) > epsilon {
		t.Errorf("Expected Normal %v, got %v", wantNormal, r.Normal)
	}
	if math.Abs(r.Friction-wantFriction) > epsilon {
		t.Errorf("Expected Friction %v, got %v", wantFriction, r.Friction)
	}
	if math.Abs(r.Accel-wantAccel) > epsilon {
		t.Errorf("Expected Accel %v, got %v", wantAccel, r.Accel)
	}
}

// TestResolveHorizontalContactLoss verifies a strong upward pull clamps the
// normal force at zero and flags the contact-loss state
func TestResolveHorizontalContactLoss(t *testing.T) {
	// 2 kg block (19.62 N weight), 100 N applied at 60° has a 86.6 N upward component
	r := ResolveHorizontal(2, 100, 60, 0.5)

	if !r.ContactLost {
		t.Error("Expected ContactLost for upward component exceeding weight")
	}
	if r.Normal != 0 {
		t.Errorf("Expected Normal clamped to 0, got %v", r.Normal)
	}
	if r.Friction != 0 {
		t.Errorf("Expected Friction 0 without contact, got %v", r.Friction)
	}
	// With no friction the net force is the full horizontal component
	wantNet := 100 * math.Cos(60*math.Pi/180)
	if math.Abs(r.Net-wantNet) > epsilon {
		t.Errorf("Expected Net %v, got %v", wantNet, r.Net)
	}
}

// TestResolveInclineIdentities sweeps the slide's slider ranges and checks the
// closed-form identities N = m·g·cos(α) and a = (m·g·sin(α) − μ·m·g·cos(α))/m
func TestResolveInclineIdentities(t *testing.T) {
	for _, mass := range []float64{1, 6, 17.5, 50} {
		for _, angleDeg := range []float64{0, 5, 12.5, 25, 37, 45} {
			for _, mu := range []float64{0, 0.05, 0.33, 1} {
				r := ResolveIncline(mass, angleDeg, mu)

				alpha := angleDeg * math.Pi / 180
				wantNormal := mass * Gravity * math.Cos(alpha)
				wantAccel := (mass*Gravity*math.Sin(alpha) - mu*mass*Gravity*math.Cos(alpha)) / mass

				if math.Abs(r.Normal-wantNormal) > epsilon {
					t.Errorf("m=%v α=%v μ=%v: expected Normal %v, got %v",
						mass, angleDeg, mu, wantNormal, r.Normal)
				}
				if math.Abs(r.Accel-wantAccel) > epsilon {
					t.Errorf("m=%v α=%v μ=%v: expected Accel %v, got %v",
						mass, angleDeg, mu, wantAccel, r.Accel)
				}
			}
		}
	}
}

// TestResolveInclineScenario verifies the worked example from the incline lab:
// m=6 kg, α=25°, μ=0 gives N = 6·g·cos(25°) ≈ 53.345 N and a≈4.146 m/s²
func TestResolveInclineScenario(t *testing.T) {
	r := ResolveIncline(6, 25, 0)

	wantNormal := 6 * Gravity * math.Cos(25*math.Pi/180)
	if math.Abs(r.Normal-wantNormal) > epsilon {
		t.Errorf("Expected Normal %v, got %v", wantNormal, r.Normal)
	}
	if math.Abs(r.Accel-4.146) > 0.001 {
		t.Errorf("Expected Accel ≈4.146, got %v", r.Accel)
	}
	if r.Friction != 0 {
		t.Errorf("Expected zero friction on frictionless incline, got %v", r.Friction)
	}
}

// TestResolveInclineFlat verifies the degenerate flat incline has no driving force
func TestResolveInclineFlat(t *testing.T) {
	r := ResolveIncline(10, 0, 0.5)

	if math.Abs(r.Normal-10*Gravity) > epsilon {
		t.Errorf("Expected Normal %v, got %v", 10*Gravity, r.Normal)
	}
	if math.Abs(r.Driving) > epsilon {
		t.Errorf("Expected zero driving force, got %v", r.Driving)
	}
}
