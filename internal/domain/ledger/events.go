package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// TopicEntries is the event stream topic for appended ledger entries.
const TopicEntries = "ledger.entries"

// EntryRecorded is published after a transaction has been appended to the log.
type EntryRecorded struct {
	TransactionID string          `json:"transaction_id"`
	BusinessID    string          `json:"business_id"`
	CustomerID    string          `json:"customer_id"`
	Type          EntryType       `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	OccurredAt    time.Time       `json:"occurred_at"`
}

// Publisher emits domain events to an external stream. Publishing is
// best-effort: the appended log row is the source of truth.
type Publisher interface {
	Publish(topic string, event any) error
}
