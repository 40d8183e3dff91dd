package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/Hanikakadiya/Master-Quiz/internal/domain/entity"
)

// Hub рассылает события ленты всем подключённым клиентам этого инстанса
type Hub struct {
	clients    map[*Client]struct{}
	mu         sync.RWMutex
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	done       chan struct{}
	relay      *RedisRelay
}

// NewHub создает новый хаб
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 256),
		done:       make(chan struct{}),
	}
}

// SetRelay включает рассылку между инстансами через Redis
func (h *Hub) SetRelay(relay *RedisRelay) {
	h.relay = relay
}

// Run обслуживает регистрацию клиентов и рассылку до отмены ctx
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for c := range h.clients {
				close(c.send)
				delete(h.clients, c)
			}
			h.mu.Unlock()
			return
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = struct{}{}
			h.mu.Unlock()
		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()
		case msg := <-h.broadcast:
			h.mu.Lock()
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					// Медленный клиент отключается
					log.Printf("[WebSocket] Буфер клиента %s переполнен, отключаем", c.ConnectionID)
					delete(h.clients, c)
					close(c.send)
				}
			}
			h.mu.Unlock()
		}
	}
}

// ClientCount возвращает число подключённых клиентов
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// BroadcastLocal ставит сообщение в очередь рассылки локальным клиентам
func (h *Hub) BroadcastLocal(msg []byte) {
	select {
	case h.broadcast <- msg:
	default:
		log.Printf("[WebSocket] Очередь рассылки переполнена, сообщение отброшено")
	}
}

// NotifyResultRecorded отправляет RESULT_RECORDED всем клиентам (через Redis, если он подключён)
func (h *Hub) NotifyResultRecorded(result *entity.Result) {
	payload, err := json.Marshal(Message{
		Type: RESULT_RECORDED,
		Data: ResultRecordedData{
			ResultID:   result.ID,
			CategoryID: result.CategoryID,
			Score:      result.Score,
		},
	})
	if err != nil {
		log.Printf("[WebSocket] Ошибка сериализации RESULT_RECORDED: %v", err)
		return
	}

	if h.relay != nil {
		err := h.relay.Publish(context.Background(), payload)
		if err == nil {
			return
		}
		log.Printf("[WebSocket] Не удалось опубликовать в Redis, рассылаем локально: %v", err)
	}
	h.BroadcastLocal(payload)
}
