package records

import (
	"context"
	"testing"
)

var seeded = []Record{
	{
		Name:    "Alice Uwase",
		Account: "040-1234567-01",
		DOB:     "01-02-1990",
		Phone:   "250788123456",
		Email:   "alice@example.com",
		OTP:     "482913",
	},
	{
		Name:    "Jean Bosco",
		Account: "040-7654321-02",
		DOB:     "11-30-1985",
		Phone:   "250788654321",
		Email:   "jean@example.com",
		OTP:     "119275",
	},
}

func TestNormalizeDOBVariants(t *testing.T) {
	want := NormalizeDOB("01-02-1990")
	for _, variant := range []string{"1-2-1990", "01/02/1990", "1/2/1990", " 01-02-1990 "} {
		if got := NormalizeDOB(variant); got != want {
			t.Fatalf("NormalizeDOB(%q) = %q, want %q", variant, got, want)
		}
	}
}

func TestMatchRequiresAllFourFields(t *testing.T) {
	good := Input{Name: "alice uwase", Account: "040-1234567-01", DOB: "1/2/1990", Phone: "250788123456"}

	if _, ok := Match(seeded, good); !ok {
		t.Fatal("expected known-good tuple to match")
	}

	mutations := []Input{
		{Name: "alice uwese", Account: good.Account, DOB: good.DOB, Phone: good.Phone},
		{Name: good.Name, Account: "040-1234567-99", DOB: good.DOB, Phone: good.Phone},
		{Name: good.Name, Account: good.Account, DOB: "2/2/1990", Phone: good.Phone},
		{Name: good.Name, Account: good.Account, DOB: good.DOB, Phone: "250788123457"},
	}
	for i, in := range mutations {
		if rec, ok := Match(seeded, in); ok {
			t.Fatalf("mutation %d unexpectedly matched record %q", i, rec.Name)
		}
	}
}

func TestMatchIsCaseInsensitiveOnName(t *testing.T) {
	in := Input{Name: "  ALICE UWASE ", Account: "040-1234567-01", DOB: "01-02-1990", Phone: "250788123456"}
	rec, ok := Match(seeded, in)
	if !ok {
		t.Fatal("expected match")
	}
	if rec.Email != "alice@example.com" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestMaskPhone(t *testing.T) {
	if got := MaskPhone("250788123456"); got != "250******56" {
		t.Fatalf("MaskPhone = %q", got)
	}
}

func TestServiceVerifyAndCommitPIN(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryRepository(seeded))

	rec, ok, err := svc.Verify(ctx, Input{Name: "Jean Bosco", Account: "040-7654321-02", DOB: "11-30-1985", Phone: "250788654321"})
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !ok {
		t.Fatal("expected match")
	}
	if rec.OTP != "119275" {
		t.Fatalf("unexpected OTP secret: %q", rec.OTP)
	}

	if err := svc.CommitPIN(ctx, rec.Account, "1357"); err != nil {
		t.Fatalf("commit pin: %v", err)
	}
	if err := svc.CommitPIN(ctx, "no-such-account", "1357"); err != ErrAccountNotFound {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}
