package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/walletsim/walletsim/internal/apperror"
	"github.com/walletsim/walletsim/internal/money"
)

// Type classifies a balance movement.
type Type string

const (
	TypeDeposit          Type = "DEPOSIT"
	TypeWithdrawal       Type = "WITHDRAWAL"
	TypeTransferSent     Type = "TRANSFER_SENT"
	TypeTransferReceived Type = "TRANSFER_RECEIVED"
)

// Types lists every transaction type.
var Types = []Type{TypeDeposit, TypeWithdrawal, TypeTransferSent, TypeTransferReceived}

// ParseType maps text such as "deposit" or "transfer-sent" onto a Type.
func ParseType(raw string) (Type, error) {
	norm := strings.ToUpper(strings.TrimSpace(raw))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)
	for _, t := range Types {
		if Type(norm) == t {
			return t, nil
		}
	}
	return "", apperror.Validation("unknown transaction type %q", raw)
}

// IsTransfer reports whether t is one side of a transfer.
func (t Type) IsTransfer() bool {
	return t == TypeTransferSent || t == TypeTransferReceived
}

func (t Type) String() string { return string(t) }

// Transaction is an immutable audit record of one balance change on one account.
// For transfers the companion account is the counterparty: the destination on the
// sent side and the origin on the received side.
type Transaction struct {
	id            string
	kind          Type
	amount        money.Money
	accountID     string
	companionID   string
	description   string
	createdAt     time.Time
	balanceBefore money.Money
	balanceAfter  money.Money
}

// NewDeposit records money entering accountID.
func NewDeposit(amount money.Money, accountID, description string, before, after money.Money) Transaction {
	return newTransaction(TypeDeposit, amount, accountID, "", description, before, after)
}

// NewWithdrawal records money leaving accountID.
func NewWithdrawal(amount money.Money, accountID, description string, before, after money.Money) Transaction {
	return newTransaction(TypeWithdrawal, amount, accountID, "", description, before, after)
}

// NewTransferSent records the debit side of a transfer on the source account.
func NewTransferSent(amount money.Money, sourceID, destinationID, description string, before, after money.Money) Transaction {
	return newTransaction(TypeTransferSent, amount, sourceID, destinationID, description, before, after)
}

// NewTransferReceived records the credit side of a transfer. receivingID is the
// primary account, originID the account the money came from.
func NewTransferReceived(amount money.Money, receivingID, originID, description string, before, after money.Money) Transaction {
	return newTransaction(TypeTransferReceived, amount, receivingID, originID, description, before, after)
}

func newTransaction(kind Type, amount money.Money, accountID, companionID, description string, before, after money.Money) Transaction {
	return Transaction{
		id:            uuid.NewString(),
		kind:          kind,
		amount:        amount,
		accountID:     accountID,
		companionID:   companionID,
		description:   description,
		createdAt:     time.Now().UTC(),
		balanceBefore: before,
		balanceAfter:  after,
	}
}

func (t Transaction) ID() string                 { return t.id }
func (t Transaction) Type() Type                 { return t.kind }
func (t Transaction) Amount() money.Money        { return t.amount }
func (t Transaction) AccountID() string          { return t.accountID }
func (t Transaction) Description() string        { return t.description }
func (t Transaction) CreatedAt() time.Time       { return t.createdAt }
func (t Transaction) BalanceBefore() money.Money { return t.balanceBefore }
func (t Transaction) BalanceAfter() money.Money  { return t.balanceAfter }

// Destination returns the counterparty account of a transfer.
func (t Transaction) Destination() (string, bool) {
	return t.companionID, t.companionID != ""
}

// Involves reports whether accountID is the primary or the counterparty account.
func (t Transaction) Involves(accountID string) bool {
	return accountID != "" && (t.accountID == accountID || t.companionID == accountID)
}
