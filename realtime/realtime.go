package realtime

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

var (
	hackathonClients = make(map[string]map[*websocket.Conn]bool) // Map of hackathon ID to connected dashboard clients
	broadcast        = make(chan Event, 64)                      // Broadcast channel for lifecycle events
	mutex            sync.Mutex                                  // Mutex to protect hackathonClients map
)

// Event types published after a successful state transition
const (
	EventRegistrationCreated = "registration_created"
	EventRegistrationUpdated = "registration_updated"
	EventTeamUpdated         = "team_updated"
	EventSubmissionFinalized = "submission_finalized"
	EventScoreRecorded       = "score_recorded"
	EventWinnersAnnounced    = "winners_announced"
)

// Event represents one state change broadcast to dashboard clients
type Event struct {
	HackathonID string      `json:"hackathon_id"`
	Type        string      `json:"type"`
	Payload     interface{} `json:"payload"`
}

// RegisterClient adds a WebSocket client to a specific hackathon
func RegisterClient(hackathonID string, conn *websocket.Conn) {
	mutex.Lock()
	if hackathonClients[hackathonID] == nil {
		hackathonClients[hackathonID] = make(map[*websocket.Conn]bool)
	}
	hackathonClients[hackathonID][conn] = true
	mutex.Unlock()
}

// UnregisterClient removes a WebSocket client from a specific hackathon
func UnregisterClient(hackathonID string, conn *websocket.Conn) {
	mutex.Lock()
	if clients, exists := hackathonClients[hackathonID]; exists {
		delete(clients, conn)
		if len(clients) == 0 {
			delete(hackathonClients, hackathonID)
		}
	}
	mutex.Unlock()
}

// Publish queues an event for all clients watching the hackathon. Services
// call this after a transition commits; a full queue drops the event rather
// than blocking the request.
func Publish(event Event) {
	select {
	case broadcast <- event:
	default:
		log.Printf("realtime: dropping %s event for hackathon %s", event.Type, event.HackathonID)
	}
}

func handleBroadcast() {
	for {
		event := <-broadcast
		mutex.Lock()
		if clients, exists := hackathonClients[event.HackathonID]; exists {
			for client := range clients {
				if err := client.WriteJSON(event); err != nil {
					log.Printf("WebSocket write error: %v", err)
					client.Close()
					delete(clients, client)
				}
			}
		}
		mutex.Unlock()
	}
}

func init() {
	go handleBroadcast()
}
