package realtime

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// WebSocket upgrader
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// 개발용 - 모든 origin 허용
		return true
	},
}

// Event - 세션 상태 변경을 UI 클라이언트로 전달하는 메시지
type Event struct {
	Type      string      `json:"type"` // inputs_updated | prompt_generated | history_updated
	SessionID string      `json:"sessionId"`
	Payload   interface{} `json:"payload,omitempty"`
}

// client - 연결된 UI 클라이언트
type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// Hub - 세션별 이벤트 브로드캐스터
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[string]*client // sessionID → clientID → client
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]map[string]*client),
	}
}

// HandleWS - GET /ws?session= 업그레이드 처리
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session")
	if sessionID == "" {
		http.Error(w, "session query parameter required", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("❌ WebSocket upgrade failed: %v", err)
		return
	}

	c := &client{
		id:   uuid.New().String(),
		conn: conn,
		send: make(chan []byte, 64),
	}

	h.mu.Lock()
	if h.clients[sessionID] == nil {
		h.clients[sessionID] = make(map[string]*client)
	}
	h.clients[sessionID][c.id] = c
	count := len(h.clients[sessionID])
	h.mu.Unlock()

	log.Printf("👤 Client %s watching session %s (clients: %d)", c.id, sessionID, count)

	go c.writePump()
	go h.readPump(sessionID, c)
}

// Broadcast - 세션을 보고 있는 모든 클라이언트에 이벤트 전송
// 허브가 nil이어도 안전 (테스트/비활성 시).
func (h *Hub) Broadcast(event Event) {
	if h == nil {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("❌ Failed to marshal event: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients[event.SessionID] {
		select {
		case c.send <- data:
		default:
			// 느린 클라이언트는 건너뜀 (연결은 readPump 종료 시 정리)
		}
	}
}

// readPump - 클라이언트는 이벤트 수신 전용, 읽기는 연결 종료 감지용
func (h *Hub) readPump(sessionID string, c *client) {
	defer func() {
		h.remove(sessionID, c)
		c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			return
		}
	}
}

func (c *client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("WebSocket write error: %v", err)
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

func (h *Hub) remove(sessionID string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if clients, ok := h.clients[sessionID]; ok {
		if _, ok := clients[c.id]; ok {
			delete(clients, c.id)
			close(c.send)
			log.Printf("👋 Client %s left session %s (remaining: %d)", c.id, sessionID, len(clients))
		}
		if len(clients) == 0 {
			delete(h.clients, sessionID)
		}
	}
}
