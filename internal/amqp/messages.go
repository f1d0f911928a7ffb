package amqp

import (
	"encoding/json"
	"time"
)

// TransactionCreatedMessage carries a full transaction to the export worker.
// The serving store may be in-memory, so the payload is self-contained rather
// than an id for the consumer to look up.
type TransactionCreatedMessage struct {
	ID          int64     `json:"id"`
	Category    string    `json:"category"`
	AmountCents int64     `json:"amount_cents"`
	Date        time.Time `json:"date"`
	Timestamp   time.Time `json:"timestamp"`
}

func NewTransactionCreatedMessage(id int64, category string, amountCents int64, date time.Time) *TransactionCreatedMessage {
	return &TransactionCreatedMessage{
		ID:          id,
		Category:    category,
		AmountCents: amountCents,
		Date:        date,
		Timestamp:   time.Now(),
	}
}

func (m *TransactionCreatedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func TransactionCreatedMessageFromJSON(data []byte) (*TransactionCreatedMessage, error) {
	var msg TransactionCreatedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
