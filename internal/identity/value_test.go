package identity

import (
	"errors"
	"testing"

	"github.com/walletsim/walletsim/internal/apperror"
)

func TestNewEmail(t *testing.T) {
	email, err := NewEmail("  Jane@X.com ")
	if err != nil {
		t.Fatalf("new email: %v", err)
	}
	if email.String() != "jane@x.com" {
		t.Fatalf("expected normalized email, got %s", email)
	}

	for _, bad := range []string{"", "jane", "jane@x", "jane.x.com"} {
		if _, err := NewEmail(bad); !errors.Is(err, apperror.ErrValidation) {
			t.Fatalf("expected validation error for %q, got %v", bad, err)
		}
	}
}

func TestParseDocumentType(t *testing.T) {
	cases := map[string]DocumentType{
		"DNI":      DocumentDNI,
		"dni":      DocumentDNI,
		"Passport": DocumentPassport,
		"ID-CARD":  DocumentIDCard,
		"id_card":  DocumentIDCard,
		"id card":  DocumentIDCard,
	}
	for in, want := range cases {
		got, err := ParseDocumentType(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		if got != want {
			t.Fatalf("parse %q: expected %s, got %s", in, want, got)
		}
	}
	if _, err := ParseDocumentType("DRIVER_LICENSE"); !errors.Is(err, apperror.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDocumentEquality(t *testing.T) {
	a, err := NewDocument(DocumentDNI, " 1 ")
	if err != nil {
		t.Fatalf("new document: %v", err)
	}
	b, _ := NewDocument(DocumentDNI, "1")
	c, _ := NewDocument(DocumentPassport, "1")

	if !a.Equal(b) {
		t.Fatal("expected equal documents")
	}
	if a.Equal(c) {
		t.Fatal("documents of different types must differ")
	}
	if _, err := NewDocument(DocumentDNI, "  "); !errors.Is(err, apperror.ErrValidation) {
		t.Fatalf("expected validation error for blank number, got %v", err)
	}
	if _, err := NewDocument(DocumentType("VISA"), "1"); !errors.Is(err, apperror.ErrValidation) {
		t.Fatalf("expected validation error for unknown type, got %v", err)
	}
}

func TestRestoreUserKeepsIdentity(t *testing.T) {
	email, _ := NewEmail("jane@x.com")
	doc, _ := NewDocument(DocumentDNI, "1")
	original := NewUser("Jane", "Doe", email, doc)

	restored := RestoreUser(original.Snapshot())
	if restored.ID() != original.ID() || !restored.CreatedAt().Equal(original.CreatedAt()) {
		t.Fatalf("restore changed identity: %+v vs %+v", restored.Snapshot(), original.Snapshot())
	}
	if restored.FullName() != "Jane Doe" || !restored.Active() {
		t.Fatalf("unexpected restored user %+v", restored.Snapshot())
	}

	restored.Deactivate()
	if restored.Active() || restored.ID() != original.ID() {
		t.Fatal("deactivate must only flip the active flag")
	}
}
