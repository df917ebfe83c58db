package conversation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bk-assist/bk_assist/internal/intent"
	"github.com/bk-assist/bk_assist/internal/oracle"
	"github.com/bk-assist/bk_assist/internal/otp"
	"github.com/bk-assist/bk_assist/internal/pin"
	"github.com/bk-assist/bk_assist/internal/records"
	"github.com/bk-assist/bk_assist/internal/session"
)

const (
	otpAttemptBudget = 3
	historyWindow    = 10
)

// resetKeywords short-circuit every state back to the menu.
var resetKeywords = map[string]struct{}{
	"menu": {}, "back": {}, "start": {}, "home": {}, "restart": {},
}

// FAQMatcher resolves a complaint to an FAQ answer in a given language.
type FAQMatcher interface {
	Match(ctx context.Context, complaint, language string) (string, bool)
}

// Engine is the conversation state machine. Each turn takes the session
// and one user message, appends the exchanged messages to the transcript
// and advances the state. All collaborator failures are absorbed here; a
// turn never fails outward.
type Engine struct {
	records *records.Service
	matcher FAQMatcher
	oracle  oracle.Client
	email   otp.Sender
	sms     otp.Sender
	logger  *slog.Logger
}

// NewEngine wires the state machine to its collaborators.
func NewEngine(recs *records.Service, matcher FAQMatcher, client oracle.Client, email, sms otp.Sender, logger *slog.Logger) *Engine {
	return &Engine{records: recs, matcher: matcher, oracle: client, email: email, sms: sms, logger: logger}
}

// Greet seeds a new session's transcript with the welcome and menu messages.
func (e *Engine) Greet(sess *session.Session) {
	sess.AddBot(welcomeText)
	sess.AddBot(menuText)
	sess.State = session.StateMenu
}

// Respond processes one inbound message. The reset keywords override every
// state; otherwise the current state decides the handler. Panics and
// handler errors degrade to a generic apology with the state preserved
// (in-progress fields are not rolled back).
func (e *Engine) Respond(ctx context.Context, sess *session.Session, input string) {
	input = strings.TrimSpace(input)
	sess.AddUser(input)

	if _, reset := resetKeywords[strings.ToLower(input)]; reset {
		sess.ResetToMenu()
		sess.AddBot(menuText)
		return
	}

	prevState := sess.State
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("conversation turn panicked", "session_id", sess.ID, "state", string(prevState), "panic", r)
			sess.State = prevState
			sess.AddBot(apologyText)
		}
	}()

	var err error
	switch sess.State {
	case session.StateMenu:
		err = e.handleMenu(ctx, sess, input)
	case session.StateGeneralQuery:
		err = e.handleGeneralQuery(ctx, sess, input)
	case session.StateFAQLanguage:
		e.handleFAQLanguage(sess, input)
	case session.StateFAQComplaint:
		e.handleFAQComplaint(ctx, sess, input)
	case session.StateIdentityVerify:
		err = e.handleIdentityVerify(ctx, sess, input)
	case session.StateOTPMethod:
		e.handleOTPMethod(ctx, sess, input)
	case session.StateVerifyEmail:
		e.handleVerifyEmail(ctx, sess, input)
	case session.StateVerifyOTP:
		e.handleVerifyOTP(sess, input)
	case session.StateNewPIN:
		e.handleNewPIN(sess, input)
	case session.StateConfirmPIN:
		err = e.handleConfirmPIN(ctx, sess, input)
	default:
		sess.AddBot(menuText)
		sess.State = session.StateMenu
	}

	if err != nil {
		e.logger.Error("conversation turn failed", "session_id", sess.ID, "state", string(prevState), "error", err)
		sess.State = prevState
		sess.AddBot(apologyText)
	}
}

func (e *Engine) handleMenu(ctx context.Context, sess *session.Session, input string) error {
	switch intent.Detect(input) {
	case intent.PinReset:
		startIdentityFlow(sess)
		sess.AddBot(pinResetStartText)
	case intent.Contact:
		sess.AddBot(languageMenuText)
		sess.State = session.StateFAQLanguage
	case intent.GeneralQuery:
		if isNumericChoice(input, "2") {
			sess.AddBot(askQuestionText)
		} else {
			sess.AddBot(e.answerQuery(ctx, sess, input))
		}
		sess.State = session.StateGeneralQuery
	default:
		sess.AddBot(menuText)
		sess.State = session.StateMenu
	}
	return nil
}

func (e *Engine) handleGeneralQuery(ctx context.Context, sess *session.Session, input string) error {
	switch intent.Detect(input) {
	case intent.PinReset:
		startIdentityFlow(sess)
		sess.AddBot(pinResetSwitchText)
	case intent.Menu:
		sess.AddBot(menuText)
		sess.State = session.StateMenu
	case intent.Contact:
		sess.AddBot(languageMenuText)
		sess.State = session.StateFAQLanguage
	default:
		sess.AddBot(e.answerQuery(ctx, sess, input))
	}
	return nil
}

func (e *Engine) handleFAQLanguage(sess *session.Session, input string) {
	lang, ok := languageTokens[strings.ToLower(strings.TrimSpace(input))]
	if !ok {
		sess.AddBot(languageRetryText)
		return
	}
	sess.FAQLanguage = lang
	sess.AddBot(complaintPrompts[lang])
	sess.State = session.StateFAQComplaint
}

func (e *Engine) handleFAQComplaint(ctx context.Context, sess *session.Session, input string) {
	if intent.Detect(input) == intent.Menu {
		sess.AddBot(menuText)
		sess.State = session.StateMenu
		return
	}

	language := sess.FAQLanguage
	if language == "" {
		language = "English"
	}
	if answer, ok := e.matcher.Match(ctx, input, language); ok {
		sess.AddBot(answer + faqFollowUpText)
		return
	}
	noMatch, ok := faqNoMatchTexts[language]
	if !ok {
		noMatch = faqNoMatchTexts["English"]
	}
	sess.AddBot(noMatch)
}

// handleIdentityVerify collects name, account, date of birth and phone in
// that order, one per turn, then runs the verifier against a fresh records
// snapshot.
func (e *Engine) handleIdentityVerify(ctx context.Context, sess *session.Session, input string) error {
	switch {
	case sess.Name == "":
		sess.Name = input
		sess.AddBot(fmt.Sprintf("Thank you, %s. %s", input, accountPromptText))
	case sess.Account == "":
		sess.Account = input
		sess.AddBot(dobPromptText)
	case sess.DOB == "":
		sess.DOB = input
		sess.AddBot(phonePromptText)
	case sess.Phone == "":
		sess.Phone = input

		rec, ok, err := e.records.Verify(ctx, records.Input{
			Name:    sess.Name,
			Account: sess.Account,
			DOB:     sess.DOB,
			Phone:   sess.Phone,
		})
		if err != nil {
			return fmt.Errorf("verify identity: %w", err)
		}
		if !ok {
			// Deliberately generic: never reveal which field failed.
			sess.AddBot(identityMismatchText)
			sess.State = session.StateGeneralQuery
			return nil
		}

		sess.UserEmail = rec.Email
		sess.OTP = rec.OTP
		sess.OTPAttempts = otpAttemptBudget
		sess.AddBot(fmt.Sprintf("Identity verified! Welcome %s.\n\nHow would you like to receive your OTP?\n1 SMS\n2 Email", rec.Name))
		sess.State = session.StateOTPMethod
	}
	return nil
}

func (e *Engine) handleOTPMethod(ctx context.Context, sess *session.Session, input string) {
	if strings.Contains(input, "2") || strings.Contains(strings.ToLower(input), "email") {
		sess.AddBot(emailPromptText)
		sess.State = session.StateVerifyEmail
		return
	}

	// SMS is the default channel and is simulated; dispatch cannot fail.
	_ = e.sms.Send(ctx, sess.Phone, sess.OTP)
	sess.AddBot(fmt.Sprintf("OTP sent via SMS to %s. Please enter the code.", records.MaskPhone(sess.Phone)))
	sess.State = session.StateVerifyOTP
}

// handleVerifyEmail re-verifies the stored address before emailing the
// code. The re-prompt on mismatch is unbounded.
func (e *Engine) handleVerifyEmail(ctx context.Context, sess *session.Session, input string) {
	entered := strings.ToLower(strings.TrimSpace(input))
	stored := strings.ToLower(strings.TrimSpace(sess.UserEmail))

	if entered != stored {
		sess.AddBot(emailMismatchText)
		return
	}

	if err := e.email.Send(ctx, sess.UserEmail, sess.OTP); err != nil {
		e.logger.Warn("otp email dispatch failed", "session_id", sess.ID, "error", err)
		sess.AddBot(emailFailedText)
	} else {
		sess.AddBot(fmt.Sprintf("Email verified! OTP sent to %s. Please enter the code.", sess.UserEmail))
	}
	sess.State = session.StateVerifyOTP
}

func (e *Engine) handleVerifyOTP(sess *session.Session, input string) {
	if input == sess.OTP {
		sess.AddBot(otpVerifiedText)
		sess.State = session.StateNewPIN
		return
	}

	sess.OTPAttempts--
	if sess.OTPAttempts > 0 {
		sess.AddBot(fmt.Sprintf("Incorrect OTP. You have %d attempt(s) left.", sess.OTPAttempts))
		return
	}
	sess.AddBot(otpExhaustedText)
	sess.State = session.StateGeneralQuery
}

func (e *Engine) handleNewPIN(sess *session.Session, input string) {
	if err := pin.Validate(input); err != nil {
		sess.AddBot(err.Error())
		return
	}
	sess.CandidatePIN = input
	sess.AddBot(confirmPinPromptText)
	sess.State = session.StateConfirmPIN
}

// handleConfirmPIN commits on an exact confirmation; a mismatch discards
// the candidate and restarts PIN entry.
func (e *Engine) handleConfirmPIN(ctx context.Context, sess *session.Session, input string) error {
	if input != sess.CandidatePIN {
		sess.CandidatePIN = ""
		sess.AddBot(pinMismatchText)
		sess.State = session.StateNewPIN
		return nil
	}

	if err := e.records.CommitPIN(ctx, records.NormalizeAccount(sess.Account), input); err != nil {
		return fmt.Errorf("commit pin: %w", err)
	}
	sess.CandidatePIN = ""
	sess.AddBot(pinCommittedText)
	sess.State = session.StateGeneralQuery
	return nil
}

// startIdentityFlow begins identity verification from scratch. Stale
// fields from an earlier failed or abandoned attempt must not survive, or
// the sequential fill would skip straight past the prompts.
func startIdentityFlow(sess *session.Session) {
	sess.Name = ""
	sess.Account = ""
	sess.DOB = ""
	sess.Phone = ""
	sess.UserEmail = ""
	sess.OTP = ""
	sess.OTPAttempts = 0
	sess.CandidatePIN = ""
	sess.State = session.StateIdentityVerify
}

// answerQuery asks the oracle, folding the recent transcript into the
// prompt. Oracle failures become user-visible replies with a recovery
// hint; the turn itself always succeeds.
func (e *Engine) answerQuery(ctx context.Context, sess *session.Session, question string) string {
	prompt := fmt.Sprintf("%s\n\nCONVERSATION SO FAR:\n%s\n\nUSER QUESTION: %s\n\nRespond helpfully and accurately.",
		oracleSystemPrompt, transcriptWindow(sess, historyWindow), question)

	reply, err := e.oracle.Answer(ctx, prompt)
	if err != nil {
		if errors.Is(err, oracle.ErrRateLimited) {
			return rateLimitedText
		}
		return fmt.Sprintf("Error: %v\n\nType 'menu' to go back.", err)
	}
	return reply + queryHintText
}

func transcriptWindow(sess *session.Session, n int) string {
	msgs := sess.Messages
	if len(msgs) > n {
		msgs = msgs[len(msgs)-n:]
	}
	lines := make([]string, 0, len(msgs))
	for _, m := range msgs {
		lines = append(lines, fmt.Sprintf("%s: %s", strings.ToUpper(m.Sender), m.Text))
	}
	return strings.Join(lines, "\n")
}

func isNumericChoice(input, digit string) bool {
	trimmed := strings.TrimSpace(input)
	return trimmed == digit || trimmed == digit+"." || trimmed == digit+"️⃣"
}
