// Package commands contains the workflow operations that mutate order state
// through the external order service. Every command follows the same
// discipline: local validation first, then the transition gate, then exactly
// one network call, then a wholesale replacement of the cached aggregate with
// the server response. No command ever computes and trusts a "next status"
// locally for anything other than deciding whether the action is allowed.
package commands

import (
	"context"
	"log/slog"
	"time"

	"console/internal/core/domain/model/kernel"
	"console/internal/core/domain/model/order"
	"console/internal/core/ports"
	"console/internal/pkg/inflight"
)

// Environment bundles the collaborators shared by every command handler.
type Environment struct {
	Gateway   ports.OrderGateway
	Snapshots ports.SnapshotStore
	Events    ports.EventPublisher
	Notifier  ports.NotificationSink
	Actions   ports.ActionLog
	Locks     *inflight.Registry
	Logger    *slog.Logger
}

func (e Environment) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.Default()
	}
	return e.Logger
}

// currentOrder returns the last known aggregate for the id, preferring the
// snapshot cache and degrading to a gateway fetch on a miss. The fetched
// aggregate is cached best-effort; a cache failure only costs the next read.
func (e Environment) currentOrder(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	if cached, err := e.Snapshots.Get(ctx, id); err == nil {
		return cached, nil
	}

	fetched, err := e.Gateway.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := e.Snapshots.Replace(ctx, fetched); err != nil {
		e.logger().WarnContext(ctx, "failed to cache order snapshot", "order_id", id.String(), "error", err)
	}
	return fetched, nil
}

// applyMutation runs the common success path after a mutating gateway call:
// wholesale snapshot replacement, order-changed event, audit entry, success
// toast. Everything but the replacement is best-effort.
func (e Environment) applyMutation(ctx context.Context, action string, updated *order.Order, successMessage string) {
	if err := e.Snapshots.Replace(ctx, updated); err != nil {
		e.logger().WarnContext(ctx, "failed to replace order snapshot",
			"order_id", updated.ID().String(), "error", err)
	}

	if err := e.Events.OrderChanged(ctx, updated.ID(), updated.Status()); err != nil {
		e.logger().WarnContext(ctx, "failed to publish order change",
			"order_id", updated.ID().String(), "error", err)
	}

	e.appendAction(ctx, updated.ID(), action, "success", successMessage)
	e.Notifier.Success(ctx, successMessage)
}

// reportFailure surfaces a gateway error to the user and records it in the
// audit trail. Local order state is deliberately left untouched.
func (e Environment) reportFailure(ctx context.Context, id kernel.OrderID, action string, err error) {
	e.appendAction(ctx, id, action, "error", err.Error())
	e.Notifier.Error(ctx, err.Error())
}

func (e Environment) appendAction(ctx context.Context, id kernel.OrderID, action, outcome, message string) {
	entry := ports.ActionEntry{
		OrderID:    id.Int64(),
		Action:     action,
		Outcome:    outcome,
		Message:    message,
		OccurredAt: time.Now(),
	}
	if err := e.Actions.Append(ctx, entry); err != nil {
		e.logger().WarnContext(ctx, "failed to append action log entry",
			"order_id", id.String(), "action", action, "error", err)
	}
}
