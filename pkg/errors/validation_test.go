package errors

import (
	"math"
	"testing"
)

func TestValidateAtLeast(t *testing.T) {
	tests := []struct {
		name    string
		v, lo   int
		wantErr bool
	}{
		{"equal", 2, 2, false},
		{"above", 9, 2, false},
		{"below", 1, 2, true},
		{"negative", -1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAtLeast("value", tt.v, tt.lo)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateAtLeast(%d, %d) error = %v, wantErr %v", tt.v, tt.lo, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidParameter) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidParameter)
			}
		})
	}
}

func TestValidateRange(t *testing.T) {
	if err := ValidateRange("min", 3, "max", 3); err != nil {
		t.Errorf("ValidateRange(3, 3) = %v, want nil", err)
	}
	if err := ValidateRange("min", 10, "max", 5); !Is(err, ErrCodeInvalidParameter) {
		t.Errorf("ValidateRange(10, 5) = %v, want INVALID_PARAMETER", err)
	}
}

func TestValidateRatio(t *testing.T) {
	tests := []struct {
		name    string
		r       float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"default", 0.1, false},
		{"just below", 0.499, false},
		{"upper bound excluded", 0.5, true},
		{"negative", -0.1, true},
		{"nan", math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRatio("margin ratio", tt.r, 0.5)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRatio(%v) error = %v, wantErr %v", tt.r, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"simple file", "ladder.pdf", false},
		{"nested", "out/2024/ladder.svg", false},
		{"empty", "", true},
		{"null byte", "lad\x00der.pdf", true},
		{"directory", "out/", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}
