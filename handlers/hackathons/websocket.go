package hackathons

import (
	"log"
	"net/http"

	"github.com/Ayush5112006/dduhack-sub002/database"
	"github.com/Ayush5112006/dduhack-sub002/realtime"
	"github.com/Ayush5112006/dduhack-sub002/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HackathonWebSocket handles WebSocket connections for a specific hackathon
func HackathonWebSocket(c *gin.Context) {
	hackathonID := c.Param("id")

	// Validate hackathon ID
	if _, err := services.NewHackathonService(database.DB).Get(hackathonID); err != nil {
		c.JSON(404, gin.H{"error": "Hackathon not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	realtime.RegisterClient(hackathonID, conn)
	defer func() {
		realtime.UnregisterClient(hackathonID, conn)
		conn.Close()
	}()

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			log.Printf("WebSocket read error: %v", err)
			break
		}
	}
}
