// Package websocket feeds connected admin dashboards with live booking
// events: creations, confirmations, cancellations and overrides.
package websocket

import (
	"log"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"github.com/lumierehotels/booking-api/models"
)

type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

// BookingEvent is the payload pushed to every connected admin.
type BookingEvent struct {
	Type       string    `json:"type"`
	BookingID  string    `json:"booking_id"`
	Reference  string    `json:"reference"`
	Status     string    `json:"status"`
	HotelName  string    `json:"hotel_name,omitempty"`
	RoomName   string    `json:"room_name,omitempty"`
	GuestEmail string    `json:"guest_email,omitempty"`
	TotalPrice int64     `json:"total_price"`
	OccurredAt time.Time `json:"occurred_at"`
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Broadcast = make(chan *BookingEvent, 64)

func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Admin feed client registered: %s", client.UserID)
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Admin feed client unregistered: %s", client.UserID)
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case event := <-Broadcast:
			clientsMu.RLock()
			var dead []uuid.UUID
			for userID, conn := range clients {
				if err := conn.WriteJSON(event); err != nil {
					log.Printf("Error pushing booking event to admin %s: %v", userID, err)
					conn.Close()
					dead = append(dead, userID)
				}
			}
			clientsMu.RUnlock()
			if len(dead) > 0 {
				clientsMu.Lock()
				for _, userID := range dead {
					delete(clients, userID)
				}
				clientsMu.Unlock()
			}
		}
	}
}

// BroadcastBookingEvent queues an event without blocking the caller; the
// feed is best-effort and a full queue drops the event.
func BroadcastBookingEvent(eventType string, booking models.Booking) {
	event := &BookingEvent{
		Type:       eventType,
		BookingID:  booking.ID.String(),
		Reference:  booking.Reference,
		Status:     string(booking.Status),
		HotelName:  booking.Room.Hotel.Name,
		RoomName:   booking.Room.Name,
		GuestEmail: booking.GuestEmail,
		TotalPrice: booking.TotalPrice,
		OccurredAt: time.Now().UTC(),
	}
	select {
	case Broadcast <- event:
	default:
	}
}
