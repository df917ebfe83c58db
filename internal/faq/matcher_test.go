package faq

import (
	"context"
	"errors"
	"testing"

	"github.com/bk-assist/bk_assist/internal/oracle"
)

var testEntries = []Entry{
	{Language: "English", Category: "Cards", Question: "My card is blocked", Answer: "Visit any branch with your ID."},
	{Language: "English", Category: "Mobile", Question: "Mobile app not working", Answer: "Reinstall the app and log in again."},
	{Language: "French", Category: "Cartes", Question: "Ma carte est bloquée", Answer: "Rendez-vous dans une agence."},
}

func fixedOracle(reply string, err error) oracle.Client {
	return oracle.ClientFunc(func(context.Context, string) (string, error) {
		return reply, err
	})
}

func TestMatchReturnsIndexedEntry(t *testing.T) {
	m := NewMatcher(NewMemoryStore(testEntries), fixedOracle("[1]", nil))
	got, ok := m.Match(context.Background(), "the app keeps crashing", "English")
	if !ok {
		t.Fatal("expected a match")
	}
	want := "Mobile\n\nReinstall the app and log in again."
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestMatchLanguageFilterIsCaseInsensitive(t *testing.T) {
	m := NewMatcher(NewMemoryStore(testEntries), fixedOracle("[0]", nil))
	got, ok := m.Match(context.Background(), "carte bloquée", "french")
	if !ok {
		t.Fatal("expected a match")
	}
	if got != "Cartes\n\nRendez-vous dans une agence." {
		t.Fatalf("unexpected answer: %q", got)
	}
}

func TestMatchNoMatchConditions(t *testing.T) {
	cases := []struct {
		name   string
		client oracle.Client
		lang   string
	}{
		{"sentinel", fixedOracle("NO_MATCH", nil), "English"},
		{"free text", fixedOracle("I think entry two fits best", nil), "English"},
		{"index out of range", fixedOracle("[7]", nil), "English"},
		{"oracle error", fixedOracle("", errors.New("boom")), "English"},
		{"empty language set", fixedOracle("[0]", nil), "Kinyarwanda"},
	}
	for _, tc := range cases {
		m := NewMatcher(NewMemoryStore(testEntries), tc.client)
		if got, ok := m.Match(context.Background(), "complaint", tc.lang); ok {
			t.Fatalf("%s: expected no match, got %q", tc.name, got)
		}
	}
}
