package spaces

import (
	"encoding/json"
	"math/rand/v2"
	"testing"

	"github.com/tessera-ai/spaces/errors"
)

func TestBinaryDim(t *testing.T) {
	if got := (Binary{}).Dim(); got != One {
		t.Errorf("Binary.Dim() = %d, want %d", got, One)
	}
}

func TestBinaryCard(t *testing.T) {
	if got := (Binary{}).Card(); got != Finite(2) {
		t.Errorf("Binary.Card() = %v, want Finite(2)", got)
	}
}

func TestBinaryBounds(t *testing.T) {
	b := Binary{}

	inf, ok := b.Inf()
	if !ok || inf != false {
		t.Errorf("Binary.Inf() = %v, %v, want false, true", inf, ok)
	}

	sup, ok := b.Sup()
	if !ok || sup != true {
		t.Errorf("Binary.Sup() = %v, %v, want true, true", sup, ok)
	}

	if !b.Contains(false) || !b.Contains(true) {
		t.Error("Binary must contain both booleans")
	}
}

func TestBinaryValues(t *testing.T) {
	b := Binary{}

	var got []bool
	for v := range b.Values() {
		got = append(got, v)
	}

	if len(got) != 2 || got[0] != false || got[1] != true {
		t.Errorf("Binary.Values() = %v, want [false true]", got)
	}

	// Enumeration is restartable and consistent with the bounds.
	var again []bool
	for v := range b.Values() {
		again = append(again, v)
	}
	if len(again) != 2 || again[0] != got[0] || again[1] != got[1] {
		t.Errorf("second traversal = %v, want %v", again, got)
	}
	if inf, _ := b.Inf(); again[0] != inf {
		t.Error("first enumerated value must equal Inf")
	}
	if sup, _ := b.Sup(); again[1] != sup {
		t.Error("last enumerated value must equal Sup")
	}
}

func TestBinarySample(t *testing.T) {
	b := Binary{}
	rng := rand.New(rand.NewPCG(7, 11))

	seenTrue, seenFalse := false, false
	for i := 0; i < 1000; i++ {
		v := b.Sample(rng)
		if !b.Contains(v) {
			t.Fatalf("sampled value %v outside space", v)
		}
		if v {
			seenTrue = true
		} else {
			seenFalse = true
		}
	}
	if !seenTrue || !seenFalse {
		t.Errorf("1000 draws must reach both values, got true=%v false=%v", seenTrue, seenFalse)
	}
}

func TestBinarySurjectionIdentity(t *testing.T) {
	var s Surjection[bool, bool] = Binary{}

	if s.MapOnto(true) != true {
		t.Error("MapOnto(true) = false")
	}
	if s.MapOnto(false) != false {
		t.Error("MapOnto(false) = true")
	}
}

func TestBinarySurjectionSignTest(t *testing.T) {
	var s Surjection[float64, bool] = SurjectionFunc[float64, bool](Binary{}.MapFloat64)

	tests := []struct {
		in   float64
		want bool
	}{
		{1.0, true},
		{0.5, true},
		{0.0, false},
		{-1.0, false},
	}

	for _, tt := range tests {
		if got := s.MapOnto(tt.in); got != tt.want {
			t.Errorf("MapOnto(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBinaryUnitRecord(t *testing.T) {
	data, err := json.Marshal(Binary{})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("Marshal = %s, want {}", data)
	}

	var b Binary
	if err := json.Unmarshal([]byte("{}"), &b); err != nil {
		t.Errorf("Unmarshal {}: %v", err)
	}
	if err := json.Unmarshal([]byte("[]"), &b); err != nil {
		t.Errorf("Unmarshal []: %v", err)
	}

	err = json.Unmarshal([]byte(`{"size":2}`), &b)
	if !errors.Is(err, errors.ErrUnknownField) {
		t.Errorf("unit record with field: err = %v, want ErrUnknownField", err)
	}
}
