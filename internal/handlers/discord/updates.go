package discord

import (
	"log"

	"github.com/KirkDiggler/cuentasclaras/internal/services/game"
)

// UpdateQueue hands session updates from the game service to the bot without
// blocking the session loop
type UpdateQueue struct {
	updates chan *game.Update
}

// NewUpdateQueue creates a queue holding up to size pending updates
func NewUpdateQueue(size int) *UpdateQueue {
	if size < 1 {
		size = 1
	}
	return &UpdateQueue{updates: make(chan *game.Update, size)}
}

// SessionUpdated implements game.Listener. Movement frames are dropped when
// the bot falls behind; landings and the end of time never are.
func (q *UpdateQueue) SessionUpdated(update *game.Update) {
	if update.Kind == game.UpdateStep {
		select {
		case q.updates <- update:
		default:
		}
		return
	}

	select {
	case q.updates <- update:
	default:
		log.Printf("Update queue full, waiting to deliver %s for channel %s", update.Kind, update.Session.ChannelID)
		q.updates <- update
	}
}

// Updates is drained by the bot
func (q *UpdateQueue) Updates() <-chan *game.Update {
	return q.updates
}

// Pending reports how many updates are waiting
func (q *UpdateQueue) Pending() int {
	return len(q.updates)
}
