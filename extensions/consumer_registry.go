package extensions

import (
	"sync"

	"github.com/topfreegames/pausepoc/interfaces"
)

// ConsumerRegistry keeps the running consumers by listener id
type ConsumerRegistry struct {
	mu        sync.RWMutex
	consumers map[string]interfaces.ConsumptionManager
}

var _ interfaces.ConsumptionRegistry = &ConsumerRegistry{}

// NewConsumerRegistry returns an empty registry
func NewConsumerRegistry() *ConsumerRegistry {
	return &ConsumerRegistry{
		consumers: map[string]interfaces.ConsumptionManager{},
	}
}

// Register adds or replaces the consumer of listenerID
func (r *ConsumerRegistry) Register(listenerID string, consumer interfaces.ConsumptionManager) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.consumers[listenerID] = consumer
}

// Unregister removes the consumer of listenerID
func (r *ConsumerRegistry) Unregister(listenerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.consumers, listenerID)
}

// ConsumptionManager returns the consumer of listenerID
func (r *ConsumerRegistry) ConsumptionManager(listenerID string) (interfaces.ConsumptionManager, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.consumers[listenerID]
	return c, ok
}
