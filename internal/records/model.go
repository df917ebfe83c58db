package records

// Record is one account holder's identity tuple as stored by the bank.
// DOB is kept in the stored textual form; comparisons always go through
// normalization.
type Record struct {
	Name    string
	Account string
	DOB     string
	Phone   string
	Email   string
	OTP     string
}

// Input carries the four identity fields collected from the user.
type Input struct {
	Name    string
	Account string
	DOB     string
	Phone   string
}
