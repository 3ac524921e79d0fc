package notification

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStreamServer(t *testing.T, hub *Hub, userID int64) *httptest.Server {
	t.Helper()
	up := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := up.Upgrade(w, r, nil)
		require.NoError(t, err)
		hub.ServeWS(conn, userID)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dialStream(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return conn
}

// All pushes funnel through the connection's single writer pump, so
// concurrent senders must never touch the websocket directly.
func TestHub_ConcurrentSendsToOneStream(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	srv := newStreamServer(t, hub, 7)
	client := dialStream(t, srv)
	defer client.Close()

	// Register happens on the server goroutine.
	require.Eventually(t, func() bool { return hub.OnlineCount() == 1 }, time.Second, 10*time.Millisecond)

	const senders = 8
	const perSender = 25

	var wg sync.WaitGroup
	delivered := make(chan bool, senders*perSender)
	for i := 0; i < senders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perSender; j++ {
				delivered <- hub.SendToUser(7, map[string]string{"title": "ping"})
			}
		}()
	}
	wg.Wait()
	close(delivered)

	queued := 0
	for ok := range delivered {
		if ok {
			queued++
		}
	}
	assert.Greater(t, queued, 0)

	client.SetReadDeadline(time.Now().Add(2 * time.Second))
	for i := 0; i < queued; i++ {
		var msg map[string]string
		require.NoError(t, client.ReadJSON(&msg))
		assert.Equal(t, "ping", msg["title"])
	}
}

func TestHub_DisconnectRemovesConnection(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	srv := newStreamServer(t, hub, 3)
	client := dialStream(t, srv)

	require.Eventually(t, func() bool { return hub.OnlineCount() == 1 }, time.Second, 10*time.Millisecond)

	client.Close()

	require.Eventually(t, func() bool { return hub.OnlineCount() == 0 }, time.Second, 10*time.Millisecond)
	assert.False(t, hub.SendToUser(3, map[string]string{"title": "gone"}))
}
