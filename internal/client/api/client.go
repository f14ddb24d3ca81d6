package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/arkfx/BiblioShare/internal/models"
	"github.com/arkfx/BiblioShare/pkg/api"
)

// Пути REST API
const (
	PathLogin    = "/auth/login/"
	PathRegister = "/auth/registro/"
	PathRefresh  = "/auth/token/refresh/"
	PathProfile  = "/auth/perfil/"
)

// DefaultTimeout таймаут HTTP запросов по умолчанию
const DefaultTimeout = 30 * time.Second

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option настраивает Client
type Option func(*Client)

// WithTransport задает RoundTripper (например, цепочку middleware)
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.httpClient.Transport = rt
	}
}

// WithTimeout задает таймаут запросов
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// NewClient создает новый API клиент
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			// Ограничиваем количество редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	if err := c.doRequest(ctx, http.MethodPost, PathLogin, req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	if err := c.doRequest(ctx, http.MethodPost, PathRegister, req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// RefreshToken получает новый access token по refresh token
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (*api.RefreshResponse, error) {
	var resp api.RefreshResponse
	req := api.RefreshRequest{Refresh: refreshToken}
	if err := c.doRequest(ctx, http.MethodPost, PathRefresh, req, &resp); err != nil {
		return nil, fmt.Errorf("refresh request failed: %w", err)
	}
	if resp.Access == "" {
		return nil, fmt.Errorf("refresh request failed: %w", &Error{StatusCode: http.StatusUnauthorized, Message: "empty access token"})
	}
	return &resp, nil
}

// GetProfile получает профиль текущего пользователя
func (c *Client) GetProfile(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile
	if err := c.doRequest(ctx, http.MethodGet, PathProfile, nil, &profile); err != nil {
		return nil, fmt.Errorf("get profile request failed: %w", err)
	}
	return &profile, nil
}

// UpdateProfile частично обновляет профиль
func (c *Client) UpdateProfile(ctx context.Context, update api.ProfileUpdate) (*models.Profile, error) {
	var profile models.Profile
	if err := c.doRequest(ctx, http.MethodPatch, PathProfile, update, &profile); err != nil {
		return nil, fmt.Errorf("update profile request failed: %w", err)
	}
	return &profile, nil
}

// ListTransactions возвращает транзакции текущего пользователя
func (c *Client) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	var list api.List[models.Transaction]
	if err := c.doRequest(ctx, http.MethodGet, "/transacoes/", nil, &list); err != nil {
		return nil, fmt.Errorf("list transactions request failed: %w", err)
	}
	return list, nil
}

// GetTransaction возвращает транзакцию по ID
func (c *Client) GetTransaction(ctx context.Context, id int64) (*models.Transaction, error) {
	var tx models.Transaction
	path := fmt.Sprintf("/transacoes/%d/", id)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &tx); err != nil {
		return nil, fmt.Errorf("get transaction request failed: %w", err)
	}
	return &tx, nil
}

// PerformAction отправляет действие (aceitar, recusar, cancelar) и возвращает обновленную запись
func (c *Client) PerformAction(ctx context.Context, id int64, action string) (*models.Transaction, error) {
	var tx models.Transaction
	path := fmt.Sprintf("/transacoes/%d/%s/", id, url.PathEscape(action))
	if err := c.doRequest(ctx, http.MethodPost, path, struct{}{}, &tx); err != nil {
		return nil, fmt.Errorf("%s request failed: %w", action, err)
	}
	return &tx, nil
}

// ListMessages возвращает сообщения чата транзакции.
// afterID > 0 включает инкрементальную выборку (id > afterID)
func (c *Client) ListMessages(ctx context.Context, transactionID, afterID int64) ([]models.Message, error) {
	path := fmt.Sprintf("/transacoes/%d/mensagens/", transactionID)
	if afterID > 0 {
		path += "?" + url.Values{api.AfterParam: {strconv.FormatInt(afterID, 10)}}.Encode()
	}

	var list api.List[models.Message]
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, fmt.Errorf("list messages request failed: %w", err)
	}
	return list, nil
}

// SendMessage отправляет сообщение в чат транзакции
func (c *Client) SendMessage(ctx context.Context, transactionID int64, content string) (*models.Message, error) {
	var msg models.Message
	path := fmt.Sprintf("/transacoes/%d/mensagens/", transactionID)
	if err := c.doRequest(ctx, http.MethodPost, path, api.SendMessageRequest{Content: content}, &msg); err != nil {
		return nil, fmt.Errorf("send message request failed: %w", err)
	}
	return &msg, nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	// bytes.Reader позволяет http.NewRequest заполнить GetBody, что нужно для повтора после refresh
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classifyTransportError(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response body: %w", ErrTransient, err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newResponseError(resp.StatusCode, respBody)
	}

	// Декодируем успешный ответ
	if result != nil && len(bytes.TrimSpace(respBody)) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
