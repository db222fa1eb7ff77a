package media

import (
	"testing"
	"time"

	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_GroupsMessagesPerChat(t *testing.T) {
	c := NewCollector(50 * time.Millisecond)
	done := make(chan *Window, 2)

	chat := models.Chat{ID: 42}
	c.ProcessMessage(&models.Message{ID: 1, Chat: chat, Photo: []models.PhotoSize{{FileID: "p1"}}}, func(w *Window) { done <- w })
	c.ProcessMessage(&models.Message{ID: 2, Chat: chat, Photo: []models.PhotoSize{{FileID: "p2"}}}, func(w *Window) { done <- w })
	c.ProcessMessage(&models.Message{ID: 3, Chat: chat, Text: "no media"}, func(w *Window) { done <- w })

	select {
	case w := <-done:
		assert.Equal(t, int64(42), w.ChatID)
		require.Len(t, w.Media, 2)
		assert.Equal(t, "p1", w.Media[0].FileID)
		assert.Equal(t, "p2", w.Media[1].FileID)
	case <-time.After(2 * time.Second):
		t.Fatal("collector did not flush")
	}

	select {
	case <-done:
		t.Fatal("unexpected second flush")
	case <-time.After(150 * time.Millisecond):
	}
}
