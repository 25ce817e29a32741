// Package notify publishes forge notifications on the rpg-toolkit event bus.
package notify

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
)

// Publish raises an event. A nil bus makes it a no-op so headless callers can
// run without collaborators. Handler failures are logged and returned.
func Publish(ctx context.Context, bus events.EventBus, eventType string, source, target core.Entity) error {
	if bus == nil {
		return nil
	}

	if err := bus.Publish(ctx, events.NewGameEvent(eventType, source, target)); err != nil {
		slog.WarnContext(ctx, "Event handler failed",
			"event", eventType,
			"error", err)
		return err
	}
	return nil
}
