package interfaces

// ConsumptionManager controls a single consumer subscription.
// Pause and Resume stop and restart fetching without leaving the consumer group.
type ConsumptionManager interface {
	Pause() error
	Resume() error
	IsRunning() bool
	IsPaused() bool
}

// ConsumptionRegistry finds a subscription by its listener id
type ConsumptionRegistry interface {
	ConsumptionManager(listenerID string) (ConsumptionManager, bool)
}

// FlowController receives backpressure signals from the message pipeline
type FlowController interface {
	Pause()
}
