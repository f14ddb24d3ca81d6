package chat

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkfx/BiblioShare/internal/models"
)

var fixedNow = time.Date(2025, 5, 10, 14, 7, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// gatedAPI блокирует ListMessages до сигнала release
type gatedAPI struct {
	respond  func(afterID int64) ([]models.Message, error)
	entered  chan int64
	release  chan struct{}
	mu       sync.Mutex
	afterIDs []int64
}

func newGatedAPI(respond func(afterID int64) ([]models.Message, error)) *gatedAPI {
	return &gatedAPI{
		respond: respond,
		entered: make(chan int64, 16),
		release: make(chan struct{}),
	}
}

func (g *gatedAPI) ListMessages(_ context.Context, _ int64, afterID int64) ([]models.Message, error) {
	g.mu.Lock()
	g.afterIDs = append(g.afterIDs, afterID)
	g.mu.Unlock()

	g.entered <- afterID
	<-g.release
	return g.respond(afterID)
}

func (g *gatedAPI) SendMessage(context.Context, int64, string) (*models.Message, error) {
	return nil, errors.New("not used")
}

func (g *gatedAPI) calls() []int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]int64, len(g.afterIDs))
	copy(out, g.afterIDs)
	return out
}

// prime открывает чат без фонового цикла, чтобы тесты вызывали опрос напрямую
func prime(e *Engine, txID int64, messages ...models.Message) uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.generation++
	e.txID = txID
	e.started = true
	e.syncing = false
	e.status = StatusConnecting
	e.state = NewConversation()
	e.state.Merge(messages...)
	return e.generation
}

func TestEngine_StartPerformsFullFetch(t *testing.T) {
	mock := &MessageAPIMock{
		ListMessagesFunc: func(ctx context.Context, transactionID, afterID int64) ([]models.Message, error) {
			return []models.Message{msg(3), msg(1), msg(2)}, nil
		},
	}
	e := NewEngine(mock, WithInterval(time.Hour), WithClock(fixedClock))

	var mu sync.Mutex
	var statuses []string
	e.Subscribe(func(s Snapshot) {
		mu.Lock()
		statuses = append(statuses, s.Status)
		mu.Unlock()
	})

	e.Start(context.Background(), 5)
	defer e.Stop()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(statuses) == 3
	}, time.Second, 5*time.Millisecond)

	snap := e.Snapshot()
	assert.Equal(t, []int64{1, 2, 3}, ids(snap.Messages))
	assert.Equal(t, int64(3), snap.HighWaterMark)
	assert.Equal(t, int64(5), snap.TransactionID)
	assert.False(t, snap.Syncing)

	calls := mock.ListMessagesCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, int64(5), calls[0].TransactionID)
	assert.Equal(t, int64(0), calls[0].AfterID)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{StatusConnecting, StatusSyncing, "updated at 14:07"}, statuses)
}

func TestEngine_EmptyConversationStatus(t *testing.T) {
	mock := &MessageAPIMock{
		ListMessagesFunc: func(ctx context.Context, transactionID, afterID int64) ([]models.Message, error) {
			return nil, nil
		},
	}
	e := NewEngine(mock, WithInterval(time.Hour))
	gen := prime(e, 1)

	e.fullSync(context.Background(), gen)

	assert.Equal(t, StatusEmpty, e.Snapshot().Status)
}

func TestEngine_IncrementalUsesHighWaterMark(t *testing.T) {
	mock := &MessageAPIMock{
		ListMessagesFunc: func(ctx context.Context, transactionID, afterID int64) ([]models.Message, error) {
			return []models.Message{msg(afterID + 1)}, nil
		},
	}
	e := NewEngine(mock, WithClock(fixedClock))
	gen := prime(e, 2, msg(1), msg(4))

	e.poll(context.Background(), gen)
	e.poll(context.Background(), gen)

	calls := mock.ListMessagesCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, int64(4), calls[0].AfterID)
	assert.Equal(t, int64(5), calls[1].AfterID)
	assert.Equal(t, []int64{1, 4, 5, 6}, ids(e.Snapshot().Messages))
}

func TestEngine_PollWithoutMessagesFetchesAll(t *testing.T) {
	mock := &MessageAPIMock{
		ListMessagesFunc: func(ctx context.Context, transactionID, afterID int64) ([]models.Message, error) {
			return []models.Message{msg(1)}, nil
		},
	}
	e := NewEngine(mock)
	gen := prime(e, 2)

	e.poll(context.Background(), gen)

	calls := mock.ListMessagesCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, int64(0), calls[0].AfterID)
}

// sendingGatedAPI как gatedAPI, но SendMessage сохраняет сообщение с заданным ID
type sendingGatedAPI struct {
	*gatedAPI
	nextID int64
}

func (s *sendingGatedAPI) SendMessage(_ context.Context, _ int64, content string) (*models.Message, error) {
	m := msg(s.nextID)
	m.Content = content
	return &m, nil
}

func TestEngine_SendDuringEmptyPollSurvives(t *testing.T) {
	api := &sendingGatedAPI{
		gatedAPI: newGatedAPI(func(afterID int64) ([]models.Message, error) {
			return []models.Message{}, nil
		}),
		nextID: 1,
	}
	e := NewEngine(api, WithClock(fixedClock))
	gen := prime(e, 3)
	ctx := context.Background()

	done := make(chan struct{})
	go func() {
		e.poll(ctx, gen)
		close(done)
	}()
	assert.Equal(t, int64(0), <-api.entered)

	sent, err := e.Send(ctx, "olá")
	require.NoError(t, err)
	require.Len(t, e.Snapshot().Messages, 1)

	// опрос начался до отправки и вернул пустой список
	close(api.release)
	<-done

	snap := e.Snapshot()
	require.Len(t, snap.Messages, 1)
	assert.Equal(t, sent.ID, snap.Messages[0].ID)
	assert.Equal(t, sent.ID, snap.HighWaterMark)
	assert.Equal(t, "updated at 14:07", snap.Status)
}

func TestEngine_BackpressureSkipsTicks(t *testing.T) {
	api := newGatedAPI(func(afterID int64) ([]models.Message, error) {
		return []models.Message{msg(11), msg(12)}, nil
	})
	e := NewEngine(api, WithClock(fixedClock))
	gen := prime(e, 1, msg(10))
	ctx := context.Background()

	done := make(chan struct{})
	go func() {
		e.poll(ctx, gen)
		close(done)
	}()
	<-api.entered

	// тики, пришедшие во время запроса, не создают новых запросов
	e.poll(ctx, gen)
	e.poll(ctx, gen)
	assert.Len(t, api.calls(), 1)
	assert.True(t, e.Snapshot().Syncing)

	close(api.release)
	<-done

	assert.False(t, e.Snapshot().Syncing)

	// флаг сброшен: следующий тик снова выполняет запрос
	e.poll(ctx, gen)
	assert.Equal(t, []int64{10, 12}, api.calls())
	assert.Equal(t, int64(12), e.Snapshot().HighWaterMark)
}

func TestEngine_BackpressureFlagResetOnError(t *testing.T) {
	fail := true
	mock := &MessageAPIMock{
		ListMessagesFunc: func(ctx context.Context, transactionID, afterID int64) ([]models.Message, error) {
			if fail {
				return nil, errors.New("connection refused")
			}
			return []models.Message{msg(2)}, nil
		},
	}
	e := NewEngine(mock, WithClock(fixedClock))
	gen := prime(e, 1, msg(1))

	e.poll(context.Background(), gen)
	snap := e.Snapshot()
	assert.Equal(t, StatusOffline, snap.Status)
	assert.Error(t, snap.Err)
	assert.False(t, snap.Syncing)

	fail = false
	e.poll(context.Background(), gen)
	snap = e.Snapshot()
	assert.Equal(t, "updated at 14:07", snap.Status)
	assert.NoError(t, snap.Err)
	assert.Equal(t, []int64{1, 2}, ids(snap.Messages))
	assert.Len(t, mock.ListMessagesCalls(), 2)
}

func TestEngine_StaleResultDiscardedAfterStop(t *testing.T) {
	api := newGatedAPI(func(afterID int64) ([]models.Message, error) {
		return []models.Message{msg(99)}, nil
	})
	e := NewEngine(api)
	gen := prime(e, 1, msg(1))
	before := e.Snapshot().Messages

	done := make(chan struct{})
	go func() {
		e.poll(context.Background(), gen)
		close(done)
	}()
	<-api.entered

	e.Stop()
	close(api.release)
	<-done

	snap := e.Snapshot()
	assert.Equal(t, before, snap.Messages)
	assert.Equal(t, int64(1), snap.HighWaterMark)
}

func TestEngine_StaleResultDoesNotLeakIntoRestart(t *testing.T) {
	api := newGatedAPI(func(afterID int64) ([]models.Message, error) {
		return []models.Message{msg(50)}, nil
	})
	e := NewEngine(api)
	oldGen := prime(e, 1, msg(1))

	done := make(chan struct{})
	go func() {
		e.poll(context.Background(), oldGen)
		close(done)
	}()
	<-api.entered

	newGen := prime(e, 2, msg(7))
	close(api.release)
	<-done

	snap := e.Snapshot()
	assert.NotEqual(t, oldGen, newGen)
	assert.Equal(t, []int64{7}, ids(snap.Messages))
	assert.Equal(t, int64(2), snap.TransactionID)
}

func TestEngine_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("merges returned message", func(t *testing.T) {
		mock := &MessageAPIMock{
			SendMessageFunc: func(ctx context.Context, transactionID int64, content string) (*models.Message, error) {
				return &models.Message{ID: 8, Content: content}, nil
			},
			ListMessagesFunc: func(ctx context.Context, transactionID, afterID int64) ([]models.Message, error) {
				return []models.Message{{ID: 8, Content: "olá"}}, nil
			},
		}
		e := NewEngine(mock, WithClock(fixedClock))
		gen := prime(e, 3, msg(2))

		sent, err := e.Send(ctx, "  olá  ")
		require.NoError(t, err)
		assert.Equal(t, int64(8), sent.ID)

		calls := mock.SendMessageCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "olá", calls[0].Content)
		assert.Equal(t, int64(3), calls[0].TransactionID)

		// опрос возвращает то же сообщение: дубликата нет
		e.fullSync(ctx, gen)
		snap := e.Snapshot()
		assert.Equal(t, []int64{8}, ids(snap.Messages))
		assert.False(t, snap.Sending)
	})

	t.Run("send does not replace state", func(t *testing.T) {
		mock := &MessageAPIMock{
			SendMessageFunc: func(ctx context.Context, transactionID int64, content string) (*models.Message, error) {
				return &models.Message{ID: 3, Content: content}, nil
			},
		}
		e := NewEngine(mock)
		prime(e, 3, msg(1), msg(2))

		_, err := e.Send(ctx, "oi")
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 2, 3}, ids(e.Snapshot().Messages))
	})

	t.Run("empty content", func(t *testing.T) {
		mock := &MessageAPIMock{}
		e := NewEngine(mock)
		prime(e, 3)

		_, err := e.Send(ctx, "   ")
		assert.ErrorIs(t, err, ErrEmptyMessage)
		assert.Empty(t, mock.SendMessageCalls())
	})

	t.Run("not started", func(t *testing.T) {
		e := NewEngine(&MessageAPIMock{})
		_, err := e.Send(ctx, "oi")
		assert.ErrorIs(t, err, ErrNotStarted)
	})

	t.Run("server error", func(t *testing.T) {
		serverErr := errors.New("bad request")
		mock := &MessageAPIMock{
			SendMessageFunc: func(ctx context.Context, transactionID int64, content string) (*models.Message, error) {
				return nil, serverErr
			},
		}
		e := NewEngine(mock)
		prime(e, 3, msg(1))

		_, err := e.Send(ctx, "oi")
		assert.ErrorIs(t, err, serverErr)
		snap := e.Snapshot()
		assert.Equal(t, []int64{1}, ids(snap.Messages))
		assert.False(t, snap.Sending)
	})
}

func TestEngine_PauseResume(t *testing.T) {
	mock := &MessageAPIMock{
		ListMessagesFunc: func(ctx context.Context, transactionID, afterID int64) ([]models.Message, error) {
			return []models.Message{msg(afterID + 1)}, nil
		},
	}
	e := NewEngine(mock)
	gen := prime(e, 1, msg(1))
	ctx := context.Background()

	e.Pause()
	assert.True(t, e.Snapshot().Paused)

	e.poll(ctx, gen)
	assert.Empty(t, mock.ListMessagesCalls(), "paused engine must not poll")

	e.Resume(ctx)
	require.Eventually(t, func() bool {
		return len(mock.ListMessagesCalls()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.False(t, e.Snapshot().Paused)
}

func TestEngine_PollingLoop(t *testing.T) {
	var mu sync.Mutex
	next := int64(1)
	mock := &MessageAPIMock{
		ListMessagesFunc: func(ctx context.Context, transactionID, afterID int64) ([]models.Message, error) {
			mu.Lock()
			defer mu.Unlock()
			m := msg(next)
			next++
			return []models.Message{m}, nil
		},
	}
	e := NewEngine(mock, WithInterval(10*time.Millisecond))
	e.Start(context.Background(), 4)

	require.Eventually(t, func() bool {
		return len(e.Snapshot().Messages) >= 4
	}, 2*time.Second, 5*time.Millisecond)

	e.Stop()
	stoppedAt := len(mock.ListMessagesCalls())

	time.Sleep(50 * time.Millisecond)
	// после Stop может завершиться не больше одного уже начатого опроса
	assert.LessOrEqual(t, len(mock.ListMessagesCalls()), stoppedAt+1)

	calls := mock.ListMessagesCalls()
	assert.Equal(t, int64(0), calls[0].AfterID)
	for i := 1; i < len(calls); i++ {
		assert.Greater(t, calls[i].AfterID, int64(0))
	}
}

func TestEngine_StopIdempotent(t *testing.T) {
	e := NewEngine(&MessageAPIMock{
		ListMessagesFunc: func(ctx context.Context, transactionID, afterID int64) ([]models.Message, error) {
			return nil, nil
		},
	}, WithInterval(time.Hour))

	e.Stop()
	e.Start(context.Background(), 1)
	e.Stop()
	e.Stop()

	assert.Equal(t, StatusIdle, e.Snapshot().Status)
}

func TestEngine_StopNotifiesSubscribers(t *testing.T) {
	e := NewEngine(&MessageAPIMock{
		ListMessagesFunc: func(ctx context.Context, transactionID, afterID int64) ([]models.Message, error) {
			return nil, nil
		},
	}, WithInterval(time.Hour), WithClock(fixedClock))

	var mu sync.Mutex
	var last Snapshot
	e.Subscribe(func(s Snapshot) {
		mu.Lock()
		last = s
		mu.Unlock()
	})
	lastStatus := func() string {
		mu.Lock()
		defer mu.Unlock()
		return last.Status
	}

	e.Start(context.Background(), 1)
	require.Eventually(t, func() bool { return lastStatus() == StatusEmpty }, time.Second, 5*time.Millisecond)

	e.Stop()
	assert.Equal(t, StatusIdle, lastStatus())
}
