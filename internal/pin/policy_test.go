package pin

import (
	"errors"
	"testing"
)

func TestValidateLengthAndDigits(t *testing.T) {
	for _, candidate := range []string{"", "123", "12345", "12a4", "abcd", "12 4"} {
		if err := Validate(candidate); !errors.Is(err, ErrNotFourDigits) {
			t.Fatalf("Validate(%q) = %v, want ErrNotFourDigits", candidate, err)
		}
	}
}

func TestValidateRepeatedDigit(t *testing.T) {
	for _, candidate := range []string{"0000", "1111", "9999"} {
		if err := Validate(candidate); !errors.Is(err, ErrRepeatedDigit) {
			t.Fatalf("Validate(%q) = %v, want ErrRepeatedDigit", candidate, err)
		}
	}
}

func TestValidateConsecutiveRuns(t *testing.T) {
	runs := []string{
		"0123", "1234", "2345", "3456", "4567", "5678", "6789",
		"9876", "8765", "7654", "6543", "5432", "4321", "3210",
	}
	for _, candidate := range runs {
		if err := Validate(candidate); !errors.Is(err, ErrConsecutive) {
			t.Fatalf("Validate(%q) = %v, want ErrConsecutive", candidate, err)
		}
	}
}

func TestValidateAccepts(t *testing.T) {
	for _, candidate := range []string{"1357", "2048", "9081", "1212"} {
		if err := Validate(candidate); err != nil {
			t.Fatalf("Validate(%q) = %v, want nil", candidate, err)
		}
	}
}
