package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/iudanet/moodkeeper/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI определяет интерфейс API клиента для взаимодействия с сервером
type ClientAPI interface {
	// Register регистрирует нового пользователя
	Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error)

	// Login выполняет аутентификацию пользователя
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)

	// Refresh обновляет access token по refresh token
	Refresh(ctx context.Context, req api.RefreshRequest) (*api.TokenResponse, error)

	// Logout инвалидирует refresh token на сервере
	Logout(ctx context.Context, accessToken string) error

	// UpsertEntry создает или обновляет запись дневника
	UpsertEntry(ctx context.Context, accessToken string, req api.UpsertEntryRequest) (*api.UpsertEntryResponse, error)

	// DeleteEntry удаляет запись дневника
	DeleteEntry(ctx context.Context, accessToken, entryID string) error

	// ListEntries возвращает текущую страницу записей (разовое чтение)
	ListEntries(ctx context.Context, accessToken string, query api.SubscribeQuery) (*api.ListEntriesResponse, error)

	// GetSettings читает удаленные настройки режима.
	// Отсутствие записи настроек - валидное состояние: возвращается nil, nil
	GetSettings(ctx context.Context, accessToken string) (*api.Settings, error)

	// PutSettings сохраняет удаленные настройки режима
	PutSettings(ctx context.Context, accessToken string, settings api.Settings) error

	// Subscribe открывает snapshot stream записей пользователя
	Subscribe(ctx context.Context, accessToken string, query api.SubscribeQuery) (*Subscription, error)
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Compile-time check that Client implements ClientAPI
var _ ClientAPI = (*Client)(nil)

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			// Собственный timeout клиента - страховочный; рабочий таймаут
			// попытки задает remotecall через context
			Timeout: 30 * time.Second,
		},
	}
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Refresh обновляет access token по refresh token
func (c *Client) Refresh(ctx context.Context, req api.RefreshRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/refresh", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("refresh request failed: %w", err)
	}
	return &resp, nil
}

// Logout инвалидирует refresh token на сервере
func (c *Client) Logout(ctx context.Context, accessToken string) error {
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/logout", accessToken, nil, nil); err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}

// UpsertEntry создает или обновляет запись дневника.
// ID записи генерируется клиентом, поэтому повтор после неоднозначного
// сбоя идемпотентен.
func (c *Client) UpsertEntry(ctx context.Context, accessToken string, req api.UpsertEntryRequest) (*api.UpsertEntryResponse, error) {
	var resp api.UpsertEntryResponse
	err := c.doRequest(ctx, http.MethodPut, "/api/v1/journal/entries", accessToken, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("upsert entry request failed: %w", err)
	}
	return &resp, nil
}

// DeleteEntry удаляет запись дневника
func (c *Client) DeleteEntry(ctx context.Context, accessToken, entryID string) error {
	path := "/api/v1/journal/entries/" + url.PathEscape(entryID)
	if err := c.doRequest(ctx, http.MethodDelete, path, accessToken, nil, nil); err != nil {
		return fmt.Errorf("delete entry request failed: %w", err)
	}
	return nil
}

// ListEntries возвращает текущую страницу записей (разовое чтение)
func (c *Client) ListEntries(ctx context.Context, accessToken string, query api.SubscribeQuery) (*api.ListEntriesResponse, error) {
	query.Normalize()
	path := fmt.Sprintf("/api/v1/journal/entries?order_by=%s&order_dir=%s&limit=%d",
		url.QueryEscape(query.OrderBy), url.QueryEscape(query.OrderDir), query.Limit)

	var resp api.ListEntriesResponse
	err := c.doRequest(ctx, http.MethodGet, path, accessToken, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("list entries request failed: %w", err)
	}
	return &resp, nil
}

// GetSettings читает удаленные настройки режима
func (c *Client) GetSettings(ctx context.Context, accessToken string) (*api.Settings, error) {
	var resp api.Settings
	err := c.doRequest(ctx, http.MethodGet, "/api/v1/settings", accessToken, nil, &resp)
	if err != nil {
		// Отсутствие записи настроек - валидное состояние, не ошибка
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.Code == api.CodeNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings request failed: %w", err)
	}
	return &resp, nil
}

// PutSettings сохраняет удаленные настройки режима
func (c *Client) PutSettings(ctx context.Context, accessToken string, settings api.Settings) error {
	if err := c.doRequest(ctx, http.MethodPut, "/api/v1/settings", accessToken, settings, nil); err != nil {
		return fmt.Errorf("put settings request failed: %w", err)
	}
	return nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path, accessToken string, body, result any) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Не-2xx статус: пытаемся декодировать машиночитаемую ошибку сервера.
	// Типизированная *api.Error нужна remotecall для классификации.
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr api.Error
		if jsonErr := json.Unmarshal(respBody, &apiErr); jsonErr == nil && apiErr.Code != "" {
			return &apiErr
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
