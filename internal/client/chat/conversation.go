package chat

import (
	"sort"

	"github.com/arkfx/BiblioShare/internal/models"
)

// Conversation набор сообщений одной транзакции, ключом служит ID.
// Сообщения всегда упорядочены по возрастанию ID и не повторяются,
// highWaterMark равен максимальному ID в наборе (0 для пустого набора).
// Не потокобезопасен: синхронизацию обеспечивает Engine
type Conversation struct {
	byID          map[int64]models.Message
	ordered       []models.Message
	highWaterMark int64
}

// NewConversation создает пустой набор сообщений
func NewConversation() *Conversation {
	return &Conversation{byID: make(map[int64]models.Message)}
}

// Merge добавляет сообщения в набор. Повторное добавление ID заменяет запись
// версией сервера и не меняет размер набора. Возвращает число новых ID
func (c *Conversation) Merge(messages ...models.Message) int {
	added := 0
	for _, msg := range messages {
		if _, exists := c.byID[msg.ID]; !exists {
			added++
		}
		c.byID[msg.ID] = msg
	}
	if len(messages) > 0 {
		c.reindex()
	}
	return added
}

// Replace полностью заменяет набор: сообщения, удаленные на сервере, исчезают
func (c *Conversation) Replace(messages []models.Message) {
	c.byID = make(map[int64]models.Message, len(messages))
	for _, msg := range messages {
		c.byID[msg.ID] = msg
	}
	c.reindex()
}

// Messages возвращает копию сообщений по возрастанию ID
func (c *Conversation) Messages() []models.Message {
	out := make([]models.Message, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// HighWaterMark возвращает максимальный ID; ok равен false для пустого набора
func (c *Conversation) HighWaterMark() (id int64, ok bool) {
	return c.highWaterMark, len(c.ordered) > 0
}

// Len возвращает количество сообщений
func (c *Conversation) Len() int {
	return len(c.ordered)
}

func (c *Conversation) reindex() {
	ordered := make([]models.Message, 0, len(c.byID))
	for _, msg := range c.byID {
		ordered = append(ordered, msg)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].ID < ordered[j].ID
	})

	c.ordered = ordered
	c.highWaterMark = 0
	if len(ordered) > 0 {
		c.highWaterMark = ordered[len(ordered)-1].ID
	}
}
