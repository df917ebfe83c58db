package pin

import "errors"

// Policy failures carry the exact wording shown to the user.
var (
	ErrNotFourDigits = errors.New("Your PIN must be exactly 4 digits. Please try again:")
	ErrRepeatedDigit = errors.New("Your PIN cannot be all the same digit (e.g., 0000, 1111). Please choose a stronger PIN:")
	ErrConsecutive   = errors.New("Your PIN cannot be consecutive numbers (e.g., 1234, 4321). Please choose a stronger PIN:")
)

// consecutiveRuns are every 4-length window of "0123456789" and its reverse.
var consecutiveRuns = map[string]struct{}{
	"0123": {}, "1234": {}, "2345": {}, "3456": {}, "4567": {}, "5678": {}, "6789": {},
	"9876": {}, "8765": {}, "7654": {}, "6543": {}, "5432": {}, "4321": {}, "3210": {},
}

// Validate applies the PIN strength rules in order, stopping at the first
// failure: exactly 4 decimal digits, not a single repeated digit, not a
// consecutive run. A nil return means the candidate passes policy.
func Validate(candidate string) error {
	if len(candidate) != 4 || !allDigits(candidate) {
		return ErrNotFourDigits
	}
	if candidate[0] == candidate[1] && candidate[1] == candidate[2] && candidate[2] == candidate[3] {
		return ErrRepeatedDigit
	}
	if _, forbidden := consecutiveRuns[candidate]; forbidden {
		return ErrConsecutive
	}
	return nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
