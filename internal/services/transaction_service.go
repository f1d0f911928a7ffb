// Package services orchestrates store writes with event publishing.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"billfold/internal/amqp"
	"billfold/internal/core"
	"billfold/internal/store"
)

// EventPublisher is the slice of the AMQP client the service needs.
type EventPublisher interface {
	PublishTransactionCreated(ctx context.Context, msg *amqp.TransactionCreatedMessage) error
}

// TransactionService saves transactions and publishes a transaction.created
// event for each. Publishing is best effort: the store write is the source of
// truth and a broker failure never fails the request.
type TransactionService struct {
	writer    store.TransactionWriter
	publisher EventPublisher
}

// NewTransactionService wires a writer with an optional publisher. A nil
// publisher disables event publishing.
func NewTransactionService(writer store.TransactionWriter, publisher EventPublisher) *TransactionService {
	return &TransactionService{writer: writer, publisher: publisher}
}

func (s *TransactionService) Create(ctx context.Context, tx store.NewTransaction) (core.Transaction, error) {
	created, err := s.writer.Create(ctx, tx)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("save transaction: %w", err)
	}

	if s.publisher == nil {
		slog.DebugContext(ctx, "Event publishing disabled, skipping transaction event")
		return created, nil
	}

	msg := amqp.NewTransactionCreatedMessage(created.ID, created.Category, created.Amount.Cents, created.Date)
	if err := s.publisher.PublishTransactionCreated(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "Failed to publish transaction event",
			"id", created.ID, "error", err)
		// Don't fail the request, the transaction is saved locally.
	}

	return created, nil
}
