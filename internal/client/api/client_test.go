package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkfx/BiblioShare/internal/models"
	"github.com/arkfx/BiblioShare/pkg/api"
)

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:8000/api/")

	assert.NotNil(t, client)
	assert.Equal(t, "http://localhost:8000/api", client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)

	client = NewClient("http://localhost", WithTimeout(5*time.Second), WithTransport(http.DefaultTransport))
	assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	assert.Equal(t, http.DefaultTransport, client.httpClient.Transport)
}

// TestClient_Login проверяет успешный вход
func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ana@example.com", req["email"])
		assert.Equal(t, "segredo", req["senha"])

		_, _ = w.Write([]byte(`{"usuario": {"id": 3, "username": "ana"}, "tokens": {"access": "acc", "refresh": "ref"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.Login(context.Background(), api.LoginRequest{Email: "ana@example.com", Password: "segredo"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.User.ID)
	assert.Equal(t, "acc", resp.Tokens.Access)
	assert.Equal(t, "ref", resp.Tokens.Refresh)
}

// TestClient_Errors проверяет классификацию ошибок
func TestClient_Errors(t *testing.T) {
	tests := []struct {
		target      error
		name        string
		body        string
		wantMessage string
		statusCode  int
	}{
		{
			name:        "unauthorized",
			statusCode:  http.StatusUnauthorized,
			body:        `{"detail": "Credenciais inválidas."}`,
			target:      ErrUnauthorized,
			wantMessage: "Credenciais inválidas.",
		},
		{
			name:        "validation detail",
			statusCode:  http.StatusForbidden,
			body:        `{"detail": "Ação não permitida."}`,
			target:      ErrValidation,
			wantMessage: "Ação não permitida.",
		},
		{
			name:        "validation list",
			statusCode:  http.StatusBadRequest,
			body:        `["Livro indisponível."]`,
			target:      ErrValidation,
			wantMessage: "Livro indisponível.",
		},
		{
			name:        "validation fields",
			statusCode:  http.StatusBadRequest,
			body:        `{"senha": ["Muito curta."], "email": "Inválido."}`,
			target:      ErrValidation,
			wantMessage: "email: Inválido.; senha: Muito curta.",
		},
		{
			name:        "server error",
			statusCode:  http.StatusBadGateway,
			body:        `<html>bad gateway</html>`,
			target:      ErrTransient,
			wantMessage: "Bad Gateway",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL)
			_, err := client.GetProfile(context.Background())

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)

			var respErr *Error
			require.True(t, errors.As(err, &respErr))
			assert.Equal(t, tt.statusCode, respErr.StatusCode)
			assert.Equal(t, tt.wantMessage, respErr.Message)
		})
	}
}

// TestClient_NetworkError проверяет, что сетевая ошибка классифицируется как временная
func TestClient_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	serverURL := server.URL
	server.Close()

	client := NewClient(serverURL)
	_, err := client.ListMessages(context.Background(), 1, 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransient)
	assert.NotErrorIs(t, err, ErrUnauthorized)
}

// TestClient_RefreshToken проверяет обновление access token
func TestClient_RefreshToken(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/token/refresh/", r.URL.Path)
			var req api.RefreshRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "ref", req.Refresh)
			_, _ = w.Write([]byte(`{"access": "new-access"}`))
		}))
		defer server.Close()

		resp, err := NewClient(server.URL).RefreshToken(context.Background(), "ref")
		require.NoError(t, err)
		assert.Equal(t, "new-access", resp.Access)
	})

	t.Run("empty access is an auth error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		defer server.Close()

		_, err := NewClient(server.URL).RefreshToken(context.Background(), "ref")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

// TestClient_ListMessages проверяет обе формы ответа и параметр depois_de
func TestClient_ListMessages(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantQuery string
		afterID   int64
		wantIDs   []int64
	}{
		{
			name:    "full fetch array",
			body:    `[{"id": 1, "remetente": 2, "conteudo": "oi"}, {"id": 2, "remetente": 3, "conteudo": "olá"}]`,
			wantIDs: []int64{1, 2},
		},
		{
			name:      "incremental paginated",
			afterID:   2,
			wantQuery: "depois_de=2",
			body:      `{"results": [{"id": 3, "remetente": 2, "conteudo": "tudo bem?"}]}`,
			wantIDs:   []int64{3},
		},
		{
			name:      "object without results",
			afterID:   3,
			wantQuery: "depois_de=3",
			body:      `{}`,
			wantIDs:   []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/transacoes/10/mensagens/", r.URL.Path)
				assert.Equal(t, tt.wantQuery, r.URL.RawQuery)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			msgs, err := NewClient(server.URL).ListMessages(context.Background(), 10, tt.afterID)
			require.NoError(t, err)

			ids := make([]int64, 0, len(msgs))
			for _, m := range msgs {
				ids = append(ids, m.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

// TestClient_SendMessage проверяет отправку сообщения
func TestClient_SendMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transacoes/10/mensagens/", r.URL.Path)

		var req api.SendMessageRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "oi", req.Content)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 11, "remetente": 2, "conteudo": "oi", "criado_em": "2024-05-01T12:00:00.123456-03:00"}`))
	}))
	defer server.Close()

	msg, err := NewClient(server.URL).SendMessage(context.Background(), 10, "oi")
	require.NoError(t, err)
	assert.Equal(t, int64(11), msg.ID)
	assert.Equal(t, int64(2), msg.SenderID)
	assert.Equal(t, 2024, msg.CreatedAt.Year())
}

// TestClient_PerformAction проверяет отправку действия над транзакцией
func TestClient_PerformAction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transacoes/4/aceitar/", r.URL.Path)
		_, _ = w.Write([]byte(`{"id": 4, "status": "ACEITA", "dono": {"id": 1}, "solicitante": {"id": 2}}`))
	}))
	defer server.Close()

	tx, err := NewClient(server.URL).PerformAction(context.Background(), 4, "aceitar")
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, tx.Status)
	assert.Equal(t, int64(1), tx.OwnerID())
	assert.Equal(t, int64(2), tx.RequesterID())
}

// TestClient_Transactions проверяет список и детали транзакций
func TestClient_Transactions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/transacoes/":
			_, _ = w.Write([]byte(`{"results": [{"id": 1, "status": "PENDENTE"}, {"id": 2, "status": "CONCLUIDA"}]}`))
		case "/transacoes/2/":
			_, _ = w.Write([]byte(`{"id": 2, "status": "CONCLUIDA", "tipo": "TROCA"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL)

	list, err := client.ListTransactions(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, models.StatusPending, list[0].Status)

	tx, err := client.GetTransaction(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, models.KindTrade, tx.Kind)

	_, err = client.GetTransaction(context.Background(), 3)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, "Session expired, please login again.", UserMessage(&Error{StatusCode: 401, Message: "x"}))
	assert.Equal(t, "Livro indisponível.", UserMessage(&Error{StatusCode: 400, Message: "Livro indisponível."}))
	assert.Equal(t, "Server unavailable, please try again later.", UserMessage(&Error{StatusCode: 503, Message: "x"}))
	assert.Equal(t, "Server unavailable, please try again later.", UserMessage(classifyTransportError(errors.New("dial tcp: refused"))))
	assert.Equal(t, "Request cancelled.", UserMessage(context.Canceled))
	assert.Equal(t, "email is required", UserMessage(errors.New("email is required")))
}
