package errors

import (
	"math"
	"strings"
	"testing"
)

func TestValidateNodeID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"root", "root", false},
		{"generated", "node-1718000000000-a1b2c3d4e", false},
		{"unicode", "idée", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 300), true},
		{"leading space", " root", true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNodeID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNodeID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty", "", false},
		{"plain", "Central Idea", false},
		{"emoji", "🚀 launch", false},

		{"newline", "a\nb", true},
		{"invalid utf8", "\xff\xfe", true},
		{"too long", strings.Repeat("x", MaxTextLength+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateText(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateText(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateColor(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"#4A90E2", false},
		{"#fff", false},
		{"#abcdef", false},

		{"", true},
		{"4A90E2", true},
		{"#4A90E", true},
		{"#GGGGGG", true},
		{"red", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidColor) {
				t.Errorf("ValidateColor(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidColor)
			}
		})
	}
}

func TestValidateCoordinate(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"negative", -250.5, false},
		{"max", MaxCoordinate, false},

		{"nan", math.NaN(), true},
		{"inf", math.Inf(1), true},
		{"negative inf", math.Inf(-1), true},
		{"too far", MaxCoordinate * 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCoordinate("x", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCoordinate(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateCoordinate(%v) code = %v", tt.input, GetCode(err))
			}
		})
	}
}

func TestValidateSize(t *testing.T) {
	for _, v := range []float64{0, -10, math.NaN(), math.Inf(1)} {
		if ValidateSize("width", v) == nil {
			t.Errorf("ValidateSize(%v) should fail", v)
		}
	}
	if err := ValidateSize("width", 120); err != nil {
		t.Errorf("ValidateSize(120) = %v", err)
	}
}
