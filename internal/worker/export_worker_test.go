package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"billfold/internal/amqp"
	"billfold/internal/core"
)

type fakeAppender struct {
	appended []core.Transaction
	err      error
}

func (f *fakeAppender) Append(_ context.Context, tx core.Transaction) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.appended = append(f.appended, tx)
	return "Transactions!A2:E2", nil
}

func testMessage() *amqp.TransactionCreatedMessage {
	return amqp.NewTransactionCreatedMessage(
		3, "Car Payment", -45075,
		time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
	)
}

func TestHandleTransactionCreated(t *testing.T) {
	app := &fakeAppender{}
	w := NewExportWorker(app)

	if err := w.HandleTransactionCreated(context.Background(), testMessage()); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if len(app.appended) != 1 {
		t.Fatalf("appended %d rows, want 1", len(app.appended))
	}
	got := app.appended[0]
	if got.ID != 3 || got.Category != "Car Payment" || got.Amount.Cents != -45075 {
		t.Fatalf("appended transaction mismatch: %+v", got)
	}
}

func TestHandleTransactionCreatedNilAppender(t *testing.T) {
	w := NewExportWorker(nil)
	// Nil appender acknowledges the event so the queue drains.
	if err := w.HandleTransactionCreated(context.Background(), testMessage()); err != nil {
		t.Fatalf("nil appender should not error: %v", err)
	}
}

func TestHandleTransactionCreatedAppendError(t *testing.T) {
	w := NewExportWorker(&fakeAppender{err: errors.New("quota exceeded")})
	if err := w.HandleTransactionCreated(context.Background(), testMessage()); err == nil {
		t.Fatalf("append failure should surface so the delivery is requeued")
	}
}
