package hub

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesSubscribers(t *testing.T) {
	h := NewHub()
	a := h.Subscribe(1)
	b := h.Subscribe(1)
	assert.Equal(t, 2, h.Subscribers())

	h.Publish(EventRatingSaved, map[string]int{"game_id": 13})

	for _, c := range []Client{a, b} {
		var ev Event
		require.NoError(t, json.Unmarshal(<-c, &ev))
		assert.Equal(t, EventRatingSaved, ev.Type)
		assert.Equal(t, map[string]any{"game_id": float64(13)}, ev.Payload)
		assert.False(t, ev.At.IsZero())
	}
}

func TestHub_SlowClientDoesNotBlock(t *testing.T) {
	h := NewHub()
	c := h.Subscribe(1)

	h.Publish(EventRankingSaved, nil)
	h.Publish(EventRankingSaved, nil) // dropped, buffer full

	assert.Len(t, c, 1)
}

func TestHub_Unsubscribe(t *testing.T) {
	h := NewHub()
	c := h.Subscribe(1)
	h.Unsubscribe(c)
	h.Unsubscribe(c)

	_, open := <-c
	assert.False(t, open)
	assert.Zero(t, h.Subscribers())

	h.Publish(EventCatalogChanged, nil)
}

func TestHub_NilIsNoop(t *testing.T) {
	var h *Hub
	assert.NotPanics(t, func() { h.Publish(EventUserChanged, nil) })
}
