// Package app wires the services together and registers the event handlers.
package app

// setupEventBus registers every event handler with the bus.
func (a *App) setupEventBus() {
	// position.opened imports events for the ticker; transaction.recorded
	// adds the trade to the calendar.
	a.CalendarService.Subscribe(a.Deps.EventBus)
}
