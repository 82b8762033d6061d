// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"sync"
	"time"

	"github.com/MKhiriev/quote-sync/internal/logger"
)

// Subscriber is a callback invoked when a toast is published.
type Subscriber func(Toast)

// Bus is a synchronous in-process toast bus. Subscribers are called inline
// on the publishing goroutine and must not block.
type Bus struct {
	subscribers []Subscriber
	mu          sync.Mutex

	logger *logger.Logger
}

func NewBus(logger *logger.Logger) *Bus {
	return &Bus{logger: logger}
}

// Subscribe registers a callback that will be invoked on every Publish.
func (b *Bus) Subscribe(fn Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = append(b.subscribers, fn)
}

// Publish dispatches t to all subscribers. Nothing is awaited.
func (b *Bus) Publish(t Toast) {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}

	b.logger.Debug().
		Str("title", t.Title).
		Str("variant", string(t.Variant)).
		Str("message", t.Message).
		Msg("toast published")

	b.mu.Lock()
	subs := make([]Subscriber, len(b.subscribers))
	copy(subs, b.subscribers)
	b.mu.Unlock()

	for _, fn := range subs {
		fn(t)
	}
}

// ShowToast publishes NewToast(message, variant).
func (b *Bus) ShowToast(message string, variant Variant) {
	b.Publish(NewToast(message, variant))
}
