package notifier

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	clientBufferSize = 16
	writeWait        = 10 * time.Second
)

// Hub подписывается на канал событий Redis и рассылает события
// подключенным websocket-клиентам. Отправка неблокирующая: клиент,
// не успевающий читать, отключается.
type Hub struct {
	redisClient *redis.Client
	logger      *logrus.Logger

	mu      sync.Mutex
	clients map[*client]struct{}
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// NewHub создает новый Hub
func NewHub(redisClient *redis.Client, logger *logrus.Logger) *Hub {
	return &Hub{
		redisClient: redisClient,
		logger:      logger,
		clients:     make(map[*client]struct{}),
	}
}

// Start запускает горутину, читающую события из Redis и рассылающую их клиентам
func (h *Hub) Start(ctx context.Context) {
	h.logger.Info("Starting notification hub...")
	pubsub := h.redisClient.Subscribe(ctx, EventChannel)

	go func() {
		defer pubsub.Close()
		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				h.logger.Info("Stopping notification hub.")
				h.closeAll()
				return
			case msg, ok := <-ch:
				if !ok {
					h.logger.Warn("Notification hub subscription channel closed")
					h.closeAll()
					return
				}
				h.broadcast([]byte(msg.Payload))
			}
		}
	}()
}

// Register добавляет websocket-соединение в число получателей событий
func (h *Hub) Register(conn *websocket.Conn) {
	c := &client{
		conn: conn,
		send: make(chan []byte, clientBufferSize),
	}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	h.logger.WithField("remote_addr", conn.RemoteAddr().String()).Info("Client connected")

	go h.writePump(c)
	go h.readPump(c)
}

// broadcast рассылает сообщение всем подключенным клиентам.
// Клиенты с переполненным буфером отключаются, доставка не гарантируется.
func (h *Hub) broadcast(payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- payload:
		default:
			delete(h.clients, c)
			close(c.send)
		}
	}
}

func (h *Hub) writePump(c *client) {
	defer c.conn.Close()
	for payload := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.unregister(c)
			return
		}
	}
}

// readPump потребляет входящие фреймы ради обработки close/ping.
// Клиенты ничего не присылают: канал односторонний, от сервера к клиенту.
func (h *Hub) readPump(c *client) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}
