package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkfx/BiblioShare/internal/client/api"
	"github.com/arkfx/BiblioShare/internal/client/chat"
	"github.com/arkfx/BiblioShare/internal/client/iocli"
	"github.com/arkfx/BiblioShare/internal/models"
)

// newChatIO создает IOMock, ввод которого поступает из канала
func newChatIO(t *testing.T) (*iocli.IOMock, *output, chan string) {
	t.Helper()
	mockIO, out := newTestIO()
	input := make(chan string)
	mockIO.ReadInputFunc = func(string) (string, error) {
		line, ok := <-input
		if !ok {
			return "", io.EOF
		}
		return line, nil
	}
	return mockIO, out, input
}

func chatTxMock() *TransactionServiceMock {
	return &TransactionServiceMock{
		GetFunc: func(ctx context.Context, id int64) (*models.Transaction, error) {
			return testTransaction(models.StatusAccepted), nil
		},
	}
}

func TestCli_Chat(t *testing.T) {
	createdAt := time.Date(2025, 5, 10, 9, 30, 0, 0, time.Local)

	var mu sync.Mutex
	nextID := int64(2)
	msgAPI := &chat.MessageAPIMock{
		ListMessagesFunc: func(ctx context.Context, transactionID, afterID int64) ([]models.Message, error) {
			return []models.Message{
				{ID: 1, SenderID: testRequesterID, Content: "Olá, ainda disponível?", CreatedAt: createdAt},
			}, nil
		},
		SendMessageFunc: func(ctx context.Context, transactionID int64, content string) (*models.Message, error) {
			mu.Lock()
			defer mu.Unlock()
			id := nextID
			nextID++
			return &models.Message{ID: id, SenderID: testOwnerID, Content: content, CreatedAt: createdAt}, nil
		},
	}
	engine := chat.NewEngine(msgAPI, chat.WithInterval(time.Hour))

	mockIO, out, input := newChatIO(t)
	c := New(mockIO, profileMock(testOwnerID), chatTxMock(), engine, nil)

	result := make(chan error, 1)
	go func() {
		result <- c.Run(context.Background(), "chat", []string{"10"})
	}()

	require.Eventually(t, func() bool {
		return containsAll(out.String(), "Bia Lima: Olá, ainda disponível?")
	}, 2*time.Second, 10*time.Millisecond)

	input <- "   "
	input <- "Sim, está!"

	require.Eventually(t, func() bool {
		return containsAll(out.String(), "you: Sim, está!")
	}, 2*time.Second, 10*time.Millisecond)

	input <- QuitCommand

	select {
	case err := <-result:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("chat did not exit on /quit")
	}

	text := out.String()
	assert.Contains(t, text, "Chat: transaction #10 (Dom Casmurro)")
	assert.Contains(t, text, "[09:30]")
	assert.Len(t, msgAPI.SendMessageCalls(), 1, "blank lines are not sent")
	assert.Equal(t, 1, strings.Count(text, "Bia Lima: Olá"), "messages are printed once")
}

func TestCli_Chat_InputClosed(t *testing.T) {
	engine := &ChatEngineMock{
		SubscribeFunc: func(listener chat.Listener) func() { return func() {} },
		StartFunc:     func(ctx context.Context, transactionID int64) {},
		StopFunc:      func() {},
	}
	mockIO, _, input := newChatIO(t)
	close(input)

	c := New(mockIO, profileMock(testOwnerID), chatTxMock(), engine, nil)

	require.NoError(t, c.Run(context.Background(), "chat", []string{"10"}))
	assert.Len(t, engine.StartCalls(), 1)
	assert.Len(t, engine.StopCalls(), 1)
}

func TestCli_Chat_SessionExpired(t *testing.T) {
	var listener chat.Listener
	engine := &ChatEngineMock{
		SubscribeFunc: func(l chat.Listener) func() {
			listener = l
			return func() {}
		},
		StartFunc: func(ctx context.Context, transactionID int64) {
			listener(chat.Snapshot{
				Status: chat.StatusOffline,
				Err:    fmt.Errorf("list messages request failed: %w", api.ErrUnauthorized),
			})
		},
		StopFunc: func() {},
	}
	mockIO, out, input := newChatIO(t)
	t.Cleanup(func() { close(input) })

	c := New(mockIO, profileMock(testOwnerID), chatTxMock(), engine, nil)

	err := c.Run(context.Background(), "chat", []string{"10"})
	assert.ErrorIs(t, err, api.ErrUnauthorized)
	assert.Contains(t, out.String(), "offline")
}

func TestCli_Chat_SendError(t *testing.T) {
	var listener chat.Listener
	engine := &ChatEngineMock{
		SubscribeFunc: func(l chat.Listener) func() {
			listener = l
			return func() {}
		},
		StartFunc: func(ctx context.Context, transactionID int64) {
			listener(chat.Snapshot{Status: chat.StatusEmpty})
		},
		StopFunc: func() {},
		SendFunc: func(ctx context.Context, content string) (*models.Message, error) {
			return nil, fmt.Errorf("failed to send message: %w", api.ErrTransient)
		},
	}
	mockIO, out, input := newChatIO(t)
	c := New(mockIO, profileMock(testOwnerID), chatTxMock(), engine, nil)

	result := make(chan error, 1)
	go func() {
		result <- c.Run(context.Background(), "chat", []string{"10"})
	}()

	input <- "oi"
	require.Eventually(t, func() bool {
		return containsAll(out.String(), "message not sent: Server unavailable")
	}, 2*time.Second, 10*time.Millisecond)

	close(input)
	require.NoError(t, <-result)
	assert.Contains(t, out.String(), "-- no messages yet")
}

func TestCli_Chat_TransactionNotFound(t *testing.T) {
	notFound := errors.New("not found")
	txMock := &TransactionServiceMock{
		GetFunc: func(ctx context.Context, id int64) (*models.Transaction, error) {
			return nil, notFound
		},
	}
	mockIO, _ := newTestIO()
	c := New(mockIO, profileMock(testOwnerID), txMock, &ChatEngineMock{}, nil)

	assert.ErrorIs(t, c.Run(context.Background(), "chat", []string{"10"}), notFound)
}

func containsAll(s string, parts ...string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return true
}
