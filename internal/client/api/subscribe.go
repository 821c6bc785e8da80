package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/iudanet/moodkeeper/pkg/api"
)

// Subscription представляет открытый snapshot stream.
// Сервер присылает полные замены текущей страницы коллекции (не diff);
// каждое сообщение - актуальное состояние на момент отправки.
type Subscription struct {
	conn      *websocket.Conn
	snapshots chan api.Snapshot
	closeOnce sync.Once
	errMu     sync.Mutex
	err       error
}

// Snapshots возвращает канал снапшотов. Канал закрывается при
// обрыве соединения, отмене контекста или Close.
func (s *Subscription) Snapshots() <-chan api.Snapshot {
	return s.snapshots
}

// Err возвращает причину завершения потока (nil при штатном закрытии)
func (s *Subscription) Err() error {
	s.errMu.Lock()
	defer s.errMu.Unlock()
	return s.err
}

// Close освобождает соединение. Безопасен для повторного вызова
// и вызывается на всех путях завершения подписки.
func (s *Subscription) Close() error {
	s.closeOnce.Do(func() {
		_ = s.conn.Close()
	})
	return nil
}

func (s *Subscription) setErr(err error) {
	s.errMu.Lock()
	defer s.errMu.Unlock()
	if s.err == nil {
		s.err = err
	}
}

// Subscribe открывает websocket подписку на snapshot stream записей
// пользователя. Сервер немедленно присылает начальный снапшот (возможно
// пустой), затем полный снапшот на каждое изменение данных.
func (c *Client) Subscribe(ctx context.Context, accessToken string, query api.SubscribeQuery) (*Subscription, error) {
	query.Normalize()

	wsURL, err := websocketURL(c.baseURL, query)
	if err != nil {
		return nil, fmt.Errorf("failed to build websocket url: %w", err)
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+accessToken)

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, wsURL, header)
	if err != nil {
		if resp != nil {
			_ = resp.Body.Close()
		}
		return nil, fmt.Errorf("failed to dial subscription: %w", err)
	}
	if resp != nil {
		_ = resp.Body.Close()
	}

	sub := &Subscription{
		conn:      conn,
		snapshots: make(chan api.Snapshot),
	}

	// Закрываем соединение при отмене контекста, чтобы readLoop вышел
	go func() {
		<-ctx.Done()
		_ = sub.Close()
	}()

	go sub.readLoop(ctx)

	return sub, nil
}

// readLoop читает снапшоты до обрыва соединения или отмены контекста
func (s *Subscription) readLoop(ctx context.Context) {
	defer close(s.snapshots)
	defer s.Close()

	for {
		var snapshot api.Snapshot
		if err := s.conn.ReadJSON(&snapshot); err != nil {
			// Отмена контекста - штатное завершение, не ошибка потока
			if ctx.Err() == nil && !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.setErr(err)
			}
			return
		}

		select {
		case s.snapshots <- snapshot:
		case <-ctx.Done():
			return
		}
	}
}

// websocketURL строит ws:// URL подписки из базового http:// URL
func websocketURL(baseURL string, query api.SubscribeQuery) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}

	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
		// уже websocket scheme
	default:
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	u.Path = strings.TrimRight(u.Path, "/") + "/api/v1/journal/subscribe"

	q := u.Query()
	q.Set("order_by", query.OrderBy)
	q.Set("order_dir", query.OrderDir)
	q.Set("limit", strconv.Itoa(query.Limit))
	u.RawQuery = q.Encode()

	return u.String(), nil
}
