package spotrate

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

// Client is one live-rate subscriber.
type Client struct {
	Conn *websocket.Conn
	Send chan []byte
	Room string // adminId whose rates the client follows
}

type broadcastMsg struct {
	Room string // empty = every room
	Data []byte
}

// Hub fans rate updates out to subscribed clients, one room per admin.
type Hub struct {
	rooms      map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan broadcastMsg
	done       chan struct{}
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcastMsg),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case <-h.done:
			h.mu.Lock()
			for room, conns := range h.rooms {
				for c := range conns {
					close(c.Send)
				}
				delete(h.rooms, room)
			}
			h.mu.Unlock()
			return

		case c := <-h.register:
			h.mu.Lock()
			if h.rooms[c.Room] == nil {
				h.rooms[c.Room] = make(map[*Client]bool)
			}
			h.rooms[c.Room][c] = true
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			if conns := h.rooms[c.Room]; conns != nil {
				delete(conns, c)
				close(c.Send)
			}
			h.mu.Unlock()

		case m := <-h.broadcast:
			h.mu.Lock()
			for room, conns := range h.rooms {
				if m.Room != "" && m.Room != room {
					continue
				}
				for c := range conns {
					select {
					case c.Send <- m.Data:
					default:
						close(c.Send)
						delete(conns, c)
					}
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *Hub) Stop() {
	close(h.done)
}

// RateUpdate is what subscribers receive.
type RateUpdate struct {
	Event     string  `json:"event"` // "price-fix", "spread-update"
	ProductID string  `json:"productId,omitempty"`
	AdminID   string  `json:"adminId,omitempty"`
	Price     float64 `json:"price,omitempty"`
	Spread    float64 `json:"spread,omitempty"`
	Timestamp int64   `json:"timestamp"`
}

func (h *Hub) Broadcast(room string, update RateUpdate) {
	data, err := json.Marshal(update)
	if err != nil {
		log.Println("spotrate marshal error:", err)
		return
	}
	h.broadcast <- broadcastMsg{Room: room, Data: data}
}

// Live is the process-wide hub, started in main. Broadcast helpers are
// no-ops until it is running so tests and offline tools stay quiet.
var Live *Hub

// BroadcastPriceFix pushes a fixed price to every connected client.
func BroadcastPriceFix(productID string, price float64) {
	if Live == nil {
		return
	}
	Live.Broadcast("", RateUpdate{
		Event:     "price-fix",
		ProductID: productID,
		Price:     price,
		Timestamp: time.Now().Unix(),
	})
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// LiveRates upgrades the connection and subscribes it to an admin's rates.
func LiveRates(hub *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		room := ps.ByName("adminId")

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade:", err)
			return
		}
		client := &Client{
			Conn: conn,
			Send: make(chan []byte, 256),
			Room: room,
		}

		hub.register <- client
		go writePump(client)
		go readPump(client, hub)
	}
}

func writePump(c *Client) {
	defer c.Conn.Close()
	for msg := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

func readPump(c *Client, hub *Hub) {
	defer func() {
		hub.unregister <- c
		c.Conn.Close()
	}()

	for {
		// subscribers only listen; drain control frames until close
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			break
		}
	}
}
