// Package worker consumes transaction events and mirrors them to the
// configured export target.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"billfold/internal/amqp"
	"billfold/internal/core"
	"billfold/internal/sheets"
)

// ExportWorker handles transaction.created events by appending each
// transaction to the spreadsheet.
type ExportWorker struct {
	appender sheets.TransactionAppender

	appendTimeout time.Duration
}

func NewExportWorker(appender sheets.TransactionAppender) *ExportWorker {
	return &ExportWorker{
		appender:      appender,
		appendTimeout: 30 * time.Second,
	}
}

// HandleTransactionCreated processes a single event. A nil appender is
// tolerated: the event is logged and acknowledged so the queue drains even
// when no export target is configured.
func (w *ExportWorker) HandleTransactionCreated(ctx context.Context, msg *amqp.TransactionCreatedMessage) error {
	slog.InfoContext(ctx, "Processing transaction event",
		"id", msg.ID,
		"category", msg.Category,
		"amount_cents", msg.AmountCents)

	if w.appender == nil {
		slog.WarnContext(ctx, "No export target configured, skipping transaction", "id", msg.ID)
		return nil
	}

	tx := core.Transaction{
		ID:       msg.ID,
		Category: msg.Category,
		Amount:   core.Money{Cents: msg.AmountCents},
		Date:     msg.Date,
	}

	// Bound the append so a stuck export call cannot stall the consume loop.
	cctx, cancel := context.WithTimeout(ctx, w.appendTimeout)
	defer cancel()

	ref, err := w.appender.Append(cctx, tx)
	if err != nil {
		return fmt.Errorf("append transaction %d to export target: %w", msg.ID, err)
	}

	slog.InfoContext(ctx, "Transaction exported", "id", msg.ID, "ref", ref)
	return nil
}
