package identity

import (
	"strings"

	"github.com/walletsim/walletsim/internal/apperror"
)

// Email is a validated, lower-cased e-mail address.
type Email struct {
	value string
}

// NewEmail validates the address loosely: it must contain "@" and ".".
func NewEmail(raw string) (Email, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return Email{}, apperror.Validation("email is required")
	}
	if !strings.Contains(v, "@") || !strings.Contains(v, ".") {
		return Email{}, apperror.Validation("email %q is not valid", raw)
	}
	return Email{value: v}, nil
}

func (e Email) String() string { return e.value }

// DocumentType is the kind of identity document a user registers with.
type DocumentType string

const (
	DocumentDNI      DocumentType = "DNI"
	DocumentPassport DocumentType = "PASSPORT"
	DocumentIDCard   DocumentType = "ID_CARD"
)

// DocumentTypes lists every accepted document type.
var DocumentTypes = []DocumentType{DocumentDNI, DocumentPassport, DocumentIDCard}

// ParseDocumentType accepts any letter case and "-" or " " in place of "_".
func ParseDocumentType(raw string) (DocumentType, error) {
	norm := strings.ToUpper(strings.TrimSpace(raw))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)
	switch DocumentType(norm) {
	case DocumentDNI:
		return DocumentDNI, nil
	case DocumentPassport:
		return DocumentPassport, nil
	case DocumentIDCard:
		return DocumentIDCard, nil
	default:
		return "", apperror.Validation("unknown document type %q", raw)
	}
}

// Document is an identity document: a type tag plus a number.
type Document struct {
	kind   DocumentType
	number string
}

// NewDocument builds a document from an already parsed type and a non-empty number.
func NewDocument(kind DocumentType, number string) (Document, error) {
	if _, err := ParseDocumentType(string(kind)); err != nil {
		return Document{}, err
	}
	number = strings.TrimSpace(number)
	if number == "" {
		return Document{}, apperror.Validation("document number is required")
	}
	return Document{kind: kind, number: number}, nil
}

func (d Document) Type() DocumentType { return d.kind }
func (d Document) Number() string     { return d.number }

// Equal compares type and number.
func (d Document) Equal(other Document) bool {
	return d.kind == other.kind && d.number == other.number
}

func (d Document) String() string {
	return string(d.kind) + " " + d.number
}
