package routes

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gorilla/websocket"
)

// Admin dashboards connect to /ws and receive a JSON event for every order
// and bill created while they are connected. The feed is one-way.

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	wsClients = make(map[*websocket.Conn]bool)
	broadcast = make(chan []byte, 100)
	wsMutex   = &sync.Mutex{}
)

type wsEvent struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// notify queues an event for every connected dashboard. Drops the event if
// the buffer is full rather than blocking the request path.
func notify(eventType string, data interface{}) {
	payload, err := json.Marshal(wsEvent{Type: eventType, Data: data})
	if err != nil {
		log.Printf("notify: marshal event: %v", err)
		return
	}
	select {
	case broadcast <- payload:
	default:
		log.Println("notify: broadcast buffer full, dropping event")
	}
}

func websocketHandler() fiber.Handler {
	return adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("Error upgrading:", err)
			return
		}
		defer conn.Close()

		wsMutex.Lock()
		wsClients[conn] = true
		wsMutex.Unlock()
		log.Println("Dashboard connected:", conn.RemoteAddr())

		// Drain reads so pings and close frames are processed; the feed
		// itself never consumes client messages.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Printf("WebSocket read error: %v", err)
				}
				wsMutex.Lock()
				delete(wsClients, conn)
				wsMutex.Unlock()
				log.Println("Dashboard disconnected:", conn.RemoteAddr())
				break
			}
		}
	})
}

func runBroadcast() {
	for message := range broadcast {
		wsMutex.Lock()
		for client := range wsClients {
			if err := client.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Printf("WebSocket write error: %v", err)
				client.Close()
				delete(wsClients, client)
			}
		}
		wsMutex.Unlock()
	}
}
