// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/quote-sync/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewToast_Title(t *testing.T) {
	tests := []struct {
		variant Variant
		want    string
	}{
		{variant: VariantSuccess, want: "Success"},
		{variant: VariantError, want: "Error"},
		{variant: Variant("warning"), want: "Error"},
		{variant: Variant(""), want: "Error"},
	}

	for _, tt := range tests {
		t.Run(string(tt.variant), func(t *testing.T) {
			toast := NewToast("msg", tt.variant)

			assert.Equal(t, tt.want, toast.Title)
			assert.Equal(t, "msg", toast.Message)
			assert.Equal(t, tt.variant, toast.Variant)
		})
	}
}

func TestBus_ShowToast_dispatches_to_subscribers(t *testing.T) {
	bus := NewBus(logger.Nop())

	var first, second []Toast
	bus.Subscribe(func(t Toast) { first = append(first, t) })
	bus.Subscribe(func(t Toast) { second = append(second, t) })

	bus.ShowToast("OK", VariantSuccess)
	bus.ShowToast("Conflict", VariantError)

	require.Len(t, first, 2)
	require.Len(t, second, 2)
	assert.Equal(t, "Success", first[0].Title)
	assert.Equal(t, "OK", first[0].Message)
	assert.Equal(t, VariantError, first[1].Variant)
	assert.False(t, first[0].CreatedAt.IsZero())
}

func TestBus_Publish_keeps_created_at(t *testing.T) {
	bus := NewBus(logger.Nop())
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	var got Toast
	bus.Subscribe(func(t Toast) { got = t })
	bus.Publish(Toast{Title: "Error", Message: "x", Variant: VariantError, CreatedAt: at})

	assert.Equal(t, at, got.CreatedAt)
}

func TestBus_Publish_without_subscribers(t *testing.T) {
	bus := NewBus(logger.Nop())
	assert.NotPanics(t, func() { bus.ShowToast("nobody listens", VariantError) })
}

func TestBus_concurrent_publish(t *testing.T) {
	bus := NewBus(logger.Nop())

	var mu sync.Mutex
	count := 0
	bus.Subscribe(func(Toast) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bus.ShowToast("x", VariantSuccess)
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, count)
}
