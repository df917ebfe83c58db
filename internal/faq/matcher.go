package faq

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/bk-assist/bk_assist/internal/oracle"
)

const noMatchSentinel = "NO_MATCH"

var indexPattern = regexp.MustCompile(`\[(\d+)\]`)

// Matcher delegates complaint/FAQ disambiguation to the oracle under a
// strict output contract: a bracketed index into the filtered list, or the
// NO_MATCH sentinel. Anything else is treated as no match.
type Matcher struct {
	store  Store
	oracle oracle.Client
}

// NewMatcher builds a matcher over the given store and oracle.
func NewMatcher(store Store, client oracle.Client) *Matcher {
	return &Matcher{store: store, oracle: client}
}

// Match returns the matched entry's "Category\n\nAnswer" text and true, or
// ("", false) when no FAQ answers the complaint. Oracle failures after the
// retry budget also resolve to no match.
func (m *Matcher) Match(ctx context.Context, complaint, language string) (string, bool) {
	entries, err := m.store.ListByLanguage(ctx, language)
	if err != nil || len(entries) == 0 {
		return "", false
	}

	var list strings.Builder
	for i, e := range entries {
		fmt.Fprintf(&list, "[%d] Category: %s | Q: %s\n", i, e.Category, e.Question)
	}

	prompt := fmt.Sprintf(`You are a Bank of Kigali FAQ matching assistant.
A customer has a complaint or question. Match it to the most relevant FAQ below.

CUSTOMER MESSAGE (%s): "%s"

AVAILABLE FAQs:
%s
RULES:
- If one of the FAQs clearly matches the customer's intent, reply with ONLY the index number in brackets, e.g. [5]
- If NO FAQ is relevant, reply with exactly: %s
- Do NOT add any other text.`, language, complaint, list.String(), noMatchSentinel)

	reply, err := m.oracle.Answer(ctx, prompt)
	if err != nil {
		return "", false
	}
	if strings.Contains(reply, noMatchSentinel) {
		return "", false
	}

	sub := indexPattern.FindStringSubmatch(reply)
	if sub == nil {
		return "", false
	}
	idx, err := strconv.Atoi(sub[1])
	if err != nil || idx < 0 || idx >= len(entries) {
		return "", false
	}

	entry := entries[idx]
	return fmt.Sprintf("%s\n\n%s", entry.Category, entry.Answer), true
}
