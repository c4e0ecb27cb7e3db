package ws

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careshift/servicetree/internal/executor"
)

func newTestHub(t *testing.T) (*Hub, *websocket.Conn) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := NewHub(nil)
	r := gin.New()
	r.GET("/stream", hub.HandleConnection)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/stream"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })
	return hub, conn
}

func readMessage(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var msg map[string]interface{}
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestConnectHandshake(t *testing.T) {
	hub, conn := newTestHub(t)

	msg := readMessage(t, conn)
	assert.Equal(t, "connected", msg["type"])
	assert.Equal(t, 1, hub.Clients())
}

func TestPingPong(t *testing.T) {
	_, conn := newTestHub(t)
	readMessage(t, conn)

	require.NoError(t, conn.WriteJSON(map[string]string{"type": "ping"}))
	msg := readMessage(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestBroadcastNavigate(t *testing.T) {
	hub, conn := newTestHub(t)
	readMessage(t, conn)

	hub.Navigate("/dashboard/calendar")
	msg := readMessage(t, conn)
	assert.Equal(t, "navigate", msg["type"])
	assert.Equal(t, "/dashboard/calendar", msg["route"])
}

func TestBroadcastSignal(t *testing.T) {
	hub, conn := newTestHub(t)
	readMessage(t, conn)

	hub.Emit(executor.Signal{Type: executor.SignalOpenModal, Modal: "upload"})
	msg := readMessage(t, conn)
	assert.Equal(t, "open-modal", msg["type"])
	assert.Equal(t, "upload", msg["modal"])
}
