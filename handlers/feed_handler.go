package handlers

import (
	"fmt"
	"log"

	websocketcontrib "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	jwtv4 "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	config "github.com/lumierehotels/booking-api/configs"
	"github.com/lumierehotels/booking-api/models"
	"github.com/lumierehotels/booking-api/websocket"
)

func parseSessionToken(tokenString string) (jwtv4.MapClaims, error) {
	token, err := jwtv4.Parse(tokenString, func(token *jwtv4.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwtv4.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.Config("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	claims, ok := token.Claims.(jwtv4.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid claims")
	}
	return claims, nil
}

// ServeAdminFeed upgrades an admin connection onto the live booking feed.
// The first message must be {"type":"auth","token":"<jwt>"} with an admin
// session token; anything else closes the socket.
func ServeAdminFeed(c *websocketcontrib.Conn) {
	type AuthMessage struct {
		Type  string `json:"type"`
		Token string `json:"token"`
	}
	var authMsg AuthMessage
	if err := c.ReadJSON(&authMsg); err != nil || authMsg.Type != "auth" {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid or missing auth message"})
		c.Close()
		return
	}

	claims, err := parseSessionToken(authMsg.Token)
	if err != nil {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid token"})
		c.Close()
		return
	}
	if role, _ := claims["role"].(string); role != models.RoleAdmin {
		_ = c.WriteJSON(fiber.Map{"error": "Admin access required"})
		c.Close()
		return
	}

	userID, err := uuid.Parse(claims["user_id"].(string))
	if err != nil {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid user ID"})
		c.Close()
		return
	}

	client := &websocket.Client{UserID: userID, Conn: c}
	websocket.Register <- client
	defer func() {
		websocket.Unregister <- client
		c.Close()
	}()

	_ = c.WriteJSON(fiber.Map{"type": "connected"})

	// Hold the socket open; the hub does all the writing.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			log.Printf("Admin feed connection closed for %s: %v", userID, err)
			break
		}
	}
}
