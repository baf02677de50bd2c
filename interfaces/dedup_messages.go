package interfaces

import (
	"context"
)

// Dedup remembers records already forwarded to the sink topic.
type Dedup interface {
	IsForwarded(ctx context.Context, record Record) bool
	MarkForwarded(ctx context.Context, record Record)
}
