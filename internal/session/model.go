package session

// State identifies where a conversation currently is in the dialogue.
type State string

const (
	StateMenu           State = "menu"
	StateGeneralQuery   State = "general_query"
	StateFAQLanguage    State = "faq_language"
	StateFAQComplaint   State = "faq_complaint"
	StateIdentityVerify State = "identity_verify"
	StateOTPMethod      State = "otp_method"
	StateVerifyEmail    State = "verify_email"
	StateVerifyOTP      State = "verify_otp"
	StateNewPIN         State = "new_pin"
	StateConfirmPIN     State = "confirm_pin"
)

const (
	// SenderBot tags messages produced by the agent.
	SenderBot = "bot"
	// SenderUser tags messages typed by the customer.
	SenderUser = "user"
)

// Message is one transcript line.
type Message struct {
	Text   string `json:"text"`
	Sender string `json:"sender"`
}

// Session carries all per-conversation state across turns. It is owned by
// exactly one request at a time; the transport loads it, the conversation
// engine mutates it, and the transport saves it back.
type Session struct {
	ID    string `json:"id"`
	State State  `json:"state"`

	// Pending identity verification fields, filled one per turn.
	Name    string `json:"name,omitempty"`
	Account string `json:"account,omitempty"`
	DOB     string `json:"dob,omitempty"`
	Phone   string `json:"phone,omitempty"`

	UserEmail    string `json:"user_email,omitempty"`
	OTP          string `json:"otp,omitempty"`
	OTPAttempts  int    `json:"otp_attempts,omitempty"`
	CandidatePIN string `json:"candidate_pin,omitempty"`
	FAQLanguage  string `json:"faq_language,omitempty"`

	Messages []Message `json:"messages"`
}

// New creates a fresh session at the menu state.
func New(id string) Session {
	return Session{ID: id, State: StateMenu}
}

// AddBot appends a bot message to the transcript.
func (s *Session) AddBot(text string) {
	s.Messages = append(s.Messages, Message{Text: text, Sender: SenderBot})
}

// AddUser appends a user message to the transcript.
func (s *Session) AddUser(text string) {
	s.Messages = append(s.Messages, Message{Text: text, Sender: SenderUser})
}

// ResetToMenu clears the verification fields and returns the conversation
// to the menu. The transcript is kept.
func (s *Session) ResetToMenu() {
	s.Name = ""
	s.Account = ""
	s.DOB = ""
	s.Phone = ""
	s.UserEmail = ""
	s.OTP = ""
	s.OTPAttempts = 0
	s.CandidatePIN = ""
	s.FAQLanguage = ""
	s.State = StateMenu
}
