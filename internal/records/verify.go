package records

import "strings"

// NormalizeName lowercases and trims a display name for comparison.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NormalizeAccount trims an account number; the stored form is canonical.
func NormalizeAccount(account string) string {
	return strings.TrimSpace(account)
}

// NormalizeDOB folds slash/dash and leading-zero variance so that
// "01/02/1990", "01-02-1990" and "1-2-1990" compare equal.
func NormalizeDOB(dob string) string {
	s := strings.ReplaceAll(strings.TrimSpace(dob), "/", "-")
	s = strings.TrimLeft(s, "0")
	return strings.ReplaceAll(s, "-0", "-")
}

// NormalizePhone trims a phone number.
func NormalizePhone(phone string) string {
	return strings.TrimSpace(phone)
}

// Match scans the snapshot for a record equal to the input on all four
// normalized fields at once. It reports only the matched record and a
// boolean; callers must not reveal which field failed.
func Match(snapshot []Record, in Input) (Record, bool) {
	name := NormalizeName(in.Name)
	account := NormalizeAccount(in.Account)
	dob := NormalizeDOB(in.DOB)
	phone := NormalizePhone(in.Phone)

	for _, rec := range snapshot {
		if NormalizeName(rec.Name) == name &&
			NormalizeAccount(rec.Account) == account &&
			NormalizeDOB(rec.DOB) == dob &&
			NormalizePhone(rec.Phone) == phone {
			return rec, true
		}
	}
	return Record{}, false
}

// MaskPhone hides all but the last two digits of a registered number for
// display in OTP prompts.
func MaskPhone(phone string) string {
	p := strings.TrimSpace(phone)
	if len(p) <= 2 {
		return "250********"
	}
	return "250******" + p[len(p)-2:]
}
