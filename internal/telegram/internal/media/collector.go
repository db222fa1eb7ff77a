package media

import (
	"sync"
	"time"

	"fileid-inspector/internal/pkg/model"

	"github.com/go-telegram/bot/models"
)

// Collector groups media that arrives in quick succession in one chat, such as
// albums, into a single batch.
type Collector struct {
	windows map[int64]*Window
	delay   time.Duration
	mu      sync.Mutex
}

type Window struct {
	ChatID int64
	Media  []model.File
	Timer  *time.Timer
	mu     sync.Mutex
}

func NewCollector(delay time.Duration) *Collector {
	return &Collector{
		windows: make(map[int64]*Window),
		delay:   delay,
	}
}

func (c *Collector) GetOrCreateWindow(id int64) *Window {
	c.mu.Lock()
	defer c.mu.Unlock()

	if window, ok := c.windows[id]; ok {
		return window
	}

	window := &Window{
		ChatID: id,
		Media:  make([]model.File, 0),
	}
	c.windows[id] = window

	return window
}

func (c *Collector) DeleteWindow(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.windows, id)
}

// ProcessMessage adds the message media to the chat window and restarts its
// timer. onSuccess runs once the chat has been quiet for the collector delay.
func (c *Collector) ProcessMessage(message *models.Message, onSuccess func(window *Window)) {
	if !HasMedia(message) {
		return
	}

	chatID := message.Chat.ID
	window := c.GetOrCreateWindow(chatID)
	media := ExtractMedia(message)

	window.mu.Lock()
	defer window.mu.Unlock()

	window.Media = append(window.Media, media...)

	if window.Timer != nil {
		window.Timer.Stop()
	}

	window.Timer = time.AfterFunc(c.delay, func() {
		c.DeleteWindow(chatID)
		window.mu.Lock()
		files := window.Media
		window.mu.Unlock()
		onSuccess(&Window{ChatID: chatID, Media: files})
	})
}
