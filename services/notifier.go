package services

import (
	"log"

	"github.com/Ayush5112006/dduhack-sub002/metrics"
)

// Notifier delivers best-effort alerts to participants. Implementations must
// be safe for concurrent use. Delivery failures never fail the operation that
// triggered them.
type Notifier interface {
	Send(to, subject, body string) error
}

// notify fires a notification without blocking the calling transition.
// Errors are logged and counted, nothing more.
func notify(n Notifier, to, subject, body string) {
	if n == nil || to == "" {
		return
	}
	go func() {
		if err := n.Send(to, subject, body); err != nil {
			log.Printf("notification to %s failed: %v", to, err)
			metrics.NotificationFailures.Inc()
		}
	}()
}
