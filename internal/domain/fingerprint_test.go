package domain

import "testing"

func TestFingerprintKnownValues(t *testing.T) {
	// Reference values from the 31-multiplier rolling hash (Java hashCode
	// semantics with int32 wraparound).
	tests := []struct {
		input string
		want  int32
	}{
		{"", 0},
		{"a", 97},
		{"ab", 3105},
		{"abc", 96354},
		{"abcd", 2987074},
		{"hello", 99162322},
		{"validuser", -1109189177},
		{"pixel-lab", -140954170},
		{"startup", -1897184643},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Fingerprint(tt.input); got != tt.want {
				t.Errorf("Fingerprint(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFingerprintDeterministic(t *testing.T) {
	inputs := []string{"handl", "some-longer-handle", "UPPER", "with space", "ünïcode"}
	for _, in := range inputs {
		first := Fingerprint(in)
		second := Fingerprint(in)
		if first != second {
			t.Errorf("Fingerprint(%q) not stable: %d vs %d", in, first, second)
		}
	}
}

func TestFingerprintAbsNonNegative(t *testing.T) {
	inputs := []string{"validuser", "pixel-lab", "startup", "qwerty"}
	for _, in := range inputs {
		if got := fingerprintAbs(in); got < 0 {
			t.Errorf("fingerprintAbs(%q) = %d, want >= 0", in, got)
		}
	}
}
