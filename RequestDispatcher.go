package main

import (
	"github.com/andywarui/rsheet/contracts"
	"log/slog"
)

type RequestDispatcher struct {
	parser            contracts.CommandParser
	store             contracts.CellStore
	resolver          contracts.ExpressionResolver
	executor          contracts.ExpressionExecutor
	history           contracts.CellHistoryRepository
	webhookDispatcher contracts.WebhookDispatcher
	logger            *slog.Logger
}

func NewRequestDispatcher(
	parser contracts.CommandParser, store contracts.CellStore,
	resolver contracts.ExpressionResolver, executor contracts.ExpressionExecutor,
	logger *slog.Logger,
) *RequestDispatcher {
	return &RequestDispatcher{
		parser:   parser,
		store:    store,
		resolver: resolver,
		executor: executor,
		logger:   logger,
	}
}

// WithHistory records every successful set in the cell history journal.
func (d *RequestDispatcher) WithHistory(history contracts.CellHistoryRepository) *RequestDispatcher {
	d.history = history
	return d
}

// WithWebhookDispatcher notifies subscribers after every successful set.
func (d *RequestDispatcher) WithWebhookDispatcher(webhookDispatcher contracts.WebhookDispatcher) *RequestDispatcher {
	d.webhookDispatcher = webhookDispatcher
	return d
}

func (d *RequestDispatcher) Dispatch(message string) contracts.Reply {
	command, err := d.parser.Parse(message)
	if err != nil {
		return contracts.NewErrorReply(err)
	}

	switch command.Type {
	case contracts.GetCommand:
		return contracts.NewValueReply(d.store.Get(command.CellId))
	case contracts.SetCommand:
		return d.set(command)
	default:
		return contracts.NewErrorReply(contracts.InvalidCommandFormatError)
	}
}

// set runs snapshot, evaluate, commit. Only the final write is atomic: two concurrent
// sets may evaluate against the same snapshot.
func (d *RequestDispatcher) set(command contracts.Command) contracts.Reply {
	vars := d.resolver.Resolve(command.Expression)

	value, err := d.executor.Evaluate(command.Expression, vars)
	if err != nil {
		return contracts.NewErrorReply(err)
	}

	d.store.Set(command.CellId, value)

	if d.history != nil {
		if err = d.history.Append(command.CellId, command.Expression, value); err != nil {
			d.logger.Warn("cell history append failed", "cell", command.CellId, "error", err)
		}
	}

	if d.webhookDispatcher != nil {
		d.webhookDispatcher.Notify(command.CellId, value)
	}

	return contracts.NewValueReply(value)
}
