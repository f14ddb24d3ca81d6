package chat

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/arkfx/BiblioShare/internal/models"
	"github.com/arkfx/BiblioShare/internal/validation"
)

// DefaultPollInterval интервал опроса новых сообщений
const DefaultPollInterval = 4 * time.Second

// Тексты статуса чата
const (
	StatusIdle       = ""
	StatusConnecting = "connecting"
	StatusSyncing    = "syncing"
	StatusEmpty      = "no messages yet"
	StatusOffline    = "offline"
)

// SyncErrorText текст ошибки синхронизации для отображения
const SyncErrorText = "could not sync the chat"

// Snapshot состояние чата на момент последнего изменения
type Snapshot struct {
	UpdatedAt     time.Time
	Err           error
	Status        string
	Messages      []models.Message
	TransactionID int64
	HighWaterMark int64
	Syncing       bool
	Sending       bool
	Paused        bool
}

// Listener получает снимок состояния после каждого изменения
type Listener func(Snapshot)

// Engine синхронизирует чат одной транзакции с сервером.
// После Start выполняется полная выборка, затем каждые interval
// запрашиваются только сообщения с ID больше highWaterMark.
// Пока запрос опроса выполняется, очередные тики пропускаются.
// Stop останавливает таймер; ответы запросов, начатых до Stop,
// отбрасываются по номеру поколения
type Engine struct {
	api       MessageAPI
	logger    *slog.Logger
	now       func() time.Time
	listeners map[uint64]Listener
	state     *Conversation
	lastErr   error
	done      chan struct{}
	updatedAt time.Time
	status    string
	interval  time.Duration
	mu        sync.Mutex
	txID      int64

	// generation меняется при каждом Start и Stop
	generation     uint64
	nextListenerID uint64
	sending        int
	started        bool
	paused         bool
	syncing        bool
}

// Option настраивает Engine
type Option func(*Engine)

// WithInterval задает интервал опроса
func WithInterval(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.interval = d
		}
	}
}

// WithClock задает источник времени для статуса "updated at"
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithLogger задает логгер
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine creates a chat sync engine
func NewEngine(api MessageAPI, opts ...Option) *Engine {
	e := &Engine{
		api:       api,
		logger:    slog.Default(),
		now:       time.Now,
		interval:  DefaultPollInterval,
		listeners: make(map[uint64]Listener),
		state:     NewConversation(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start открывает чат транзакции: полная выборка, затем периодический опрос.
// Повторный Start заменяет предыдущий чат. Запросы выполняются с ctx;
// отмена ctx также останавливает таймер
func (e *Engine) Start(ctx context.Context, transactionID int64) {
	e.mu.Lock()
	e.stopLocked()
	e.generation++
	gen := e.generation
	e.txID = transactionID
	e.state = NewConversation()
	e.lastErr = nil
	e.updatedAt = time.Time{}
	e.status = StatusConnecting
	e.started = true
	e.paused = false
	e.syncing = false
	e.sending = 0
	done := make(chan struct{})
	e.done = done
	e.mu.Unlock()

	e.logger.Debug("chat started", "transaction_id", transactionID)
	e.notify()

	go e.run(ctx, gen, done)
}

// Stop закрывает чат. Выполняющиеся запросы не прерываются, но их результат игнорируется
func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.started {
		e.mu.Unlock()
		return
	}
	e.stopLocked()
	e.generation++
	e.started = false
	e.status = StatusIdle
	txID := e.txID
	e.mu.Unlock()

	e.logger.Debug("chat stopped", "transaction_id", txID)
	e.notify()
}

// Pause приостанавливает опрос без закрытия чата
func (e *Engine) Pause() {
	e.mu.Lock()
	changed := e.started && !e.paused
	e.paused = e.started
	e.mu.Unlock()

	if changed {
		e.notify()
	}
}

// Resume возобновляет опрос и сразу запрашивает новые сообщения
func (e *Engine) Resume(ctx context.Context) {
	e.mu.Lock()
	if !e.started || !e.paused {
		e.mu.Unlock()
		return
	}
	e.paused = false
	gen := e.generation
	e.mu.Unlock()

	e.notify()
	go e.poll(ctx, gen)
}

// Send отправляет сообщение и добавляет ответ сервера в чат.
// Пустое сообщение отклоняется без обращения к серверу.
// При ошибке содержимое не теряется: его можно отправить повторно
func (e *Engine) Send(ctx context.Context, content string) (*models.Message, error) {
	content, err := validation.NormalizeMessage(content)
	if err != nil {
		return nil, ErrEmptyMessage
	}

	e.mu.Lock()
	if !e.started {
		e.mu.Unlock()
		return nil, ErrNotStarted
	}
	gen := e.generation
	txID := e.txID
	e.sending++
	e.mu.Unlock()
	e.notify()

	msg, err := e.api.SendMessage(ctx, txID, content)

	e.mu.Lock()
	current := gen == e.generation
	if current {
		e.sending--
		if err == nil {
			e.state.Merge(*msg)
			e.markUpdatedLocked()
		}
	}
	e.mu.Unlock()

	if err != nil {
		e.logger.Warn("failed to send message", "transaction_id", txID, "error", err)
		if current {
			e.notify()
		}
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	if current {
		e.notify()
	}
	return msg, nil
}

// Snapshot возвращает текущее состояние
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// Subscribe регистрирует подписчика на изменения состояния.
// Возвращает функцию отписки
func (e *Engine) Subscribe(listener Listener) (unsubscribe func()) {
	e.mu.Lock()
	id := e.nextListenerID
	e.nextListenerID++
	e.listeners[id] = listener
	e.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Lock()
			delete(e.listeners, id)
			e.mu.Unlock()
		})
	}
}

func (e *Engine) run(ctx context.Context, gen uint64, done <-chan struct{}) {
	e.fullSync(ctx, gen)

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			// опрос в отдельной горутине: медленный запрос не копит тики
			go e.poll(ctx, gen)
		}
	}
}

// fullSync выполняет полную выборку с заменой состояния
func (e *Engine) fullSync(ctx context.Context, gen uint64) {
	e.mu.Lock()
	if gen != e.generation {
		e.mu.Unlock()
		return
	}
	e.syncing = true
	e.status = StatusSyncing
	txID := e.txID
	e.mu.Unlock()
	e.notify()

	messages, err := e.api.ListMessages(ctx, txID, 0)
	e.apply(gen, txID, messages, err, true)
}

// poll запрашивает новые сообщения. Если предыдущий запрос еще выполняется, тик пропускается
func (e *Engine) poll(ctx context.Context, gen uint64) {
	e.mu.Lock()
	if gen != e.generation || e.paused {
		e.mu.Unlock()
		return
	}
	if e.syncing {
		e.mu.Unlock()
		e.logger.Debug("previous chat sync still running, tick skipped")
		return
	}
	e.syncing = true
	txID := e.txID
	afterID, ok := e.state.HighWaterMark()
	e.mu.Unlock()

	if !ok {
		// сообщений еще нет: запрашиваем все, результат объединяется с отправленными
		afterID = 0
	}

	messages, err := e.api.ListMessages(ctx, txID, afterID)
	e.apply(gen, txID, messages, err, false)
}

// apply применяет результат выборки, если чат не был перезапущен или закрыт
func (e *Engine) apply(gen uint64, txID int64, messages []models.Message, err error, replace bool) {
	e.mu.Lock()
	if gen != e.generation {
		e.mu.Unlock()
		e.logger.Debug("discarding stale chat result", "transaction_id", txID)
		return
	}
	e.syncing = false

	if err != nil {
		e.lastErr = err
		e.status = StatusOffline
		e.mu.Unlock()
		e.logger.Warn("chat sync failed", "transaction_id", txID, "error", err)
		e.notify()
		return
	}

	added := len(messages)
	if replace {
		e.state.Replace(messages)
	} else {
		added = e.state.Merge(messages...)
	}
	e.markUpdatedLocked()
	e.mu.Unlock()

	e.logger.Debug("chat synced", "transaction_id", txID, "full", replace, "new_messages", added)
	e.notify()
}

func (e *Engine) markUpdatedLocked() {
	e.lastErr = nil
	e.updatedAt = e.now()
	if e.state.Len() == 0 {
		e.status = StatusEmpty
		return
	}
	e.status = "updated at " + e.updatedAt.Format("15:04")
}

func (e *Engine) stopLocked() {
	if e.done != nil {
		close(e.done)
		e.done = nil
	}
}

func (e *Engine) snapshotLocked() Snapshot {
	hwm, _ := e.state.HighWaterMark()
	return Snapshot{
		TransactionID: e.txID,
		Messages:      e.state.Messages(),
		HighWaterMark: hwm,
		Status:        e.status,
		Err:           e.lastErr,
		UpdatedAt:     e.updatedAt,
		Syncing:       e.syncing,
		Sending:       e.sending > 0,
		Paused:        e.paused,
	}
}

// notify вызывает подписчиков вне блокировки
func (e *Engine) notify() {
	e.mu.Lock()
	snapshot := e.snapshotLocked()
	listeners := make([]Listener, 0, len(e.listeners))
	for _, l := range e.listeners {
		listeners = append(listeners, l)
	}
	e.mu.Unlock()

	for _, l := range listeners {
		l(snapshot)
	}
}
