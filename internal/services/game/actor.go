package game

import (
	"context"
	"log"
	"time"

	"github.com/KirkDiggler/cuentasclaras/internal/common/clock"
	"github.com/KirkDiggler/cuentasclaras/internal/engine"
	"github.com/KirkDiggler/cuentasclaras/internal/models"
)

// request is an intent executed inside a session's loop
type request struct {
	fn   func(g *engine.Game) error
	done chan error
}

// actor owns one session's engine; every mutation runs on its goroutine
type actor struct {
	sessionID string
	channelID string
	creatorID string

	game     *engine.Game
	requests chan *request

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

func newActor(g *engine.Game) *actor {
	snap := g.Snapshot()
	ctx, cancel := context.WithCancel(context.Background())
	return &actor{
		sessionID: snap.ID,
		channelID: snap.ChannelID,
		creatorID: snap.CreatorID,
		game:      g,
		requests:  make(chan *request),
		ctx:       ctx,
		cancel:    cancel,
		done:      make(chan struct{}),
	}
}

// do runs fn on the session's goroutine and waits for its result
func (a *actor) do(ctx context.Context, fn func(g *engine.Game) error) error {
	req := &request{fn: fn, done: make(chan error, 1)}

	select {
	case a.requests <- req:
	case <-a.done:
		return ErrSessionNotFound
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-req.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// stop cancels the loop and waits for its timers to be released
func (a *actor) stop() {
	a.cancel()
	<-a.done
}

// run is the session loop. The movement ticker exists only while the token is
// moving; the countdown ticker runs until the session expires.
func (s *service) run(a *actor) {
	defer close(a.done)

	var countdownC <-chan time.Time
	if !a.game.Expired() {
		countdown := s.clock.NewTicker(time.Second)
		defer countdown.Stop()
		countdownC = countdown.C()
	}

	var movement clock.Ticker
	var movementC <-chan time.Time
	defer func() {
		if movement != nil {
			movement.Stop()
		}
	}()

	for {
		if a.game.Phase() == models.PhaseMoving {
			if movement == nil {
				movement = s.clock.NewTicker(a.game.TickInterval())
				movementC = movement.C()
			}
		} else if movement != nil {
			movement.Stop()
			movement = nil
			movementC = nil
		}

		select {
		case <-a.ctx.Done():
			return
		case req := <-a.requests:
			req.done <- req.fn(a.game)
		case <-movementC:
			s.step(a)
		case <-countdownC:
			if s.tick(a) {
				countdownC = nil
			}
		}
	}
}

func (s *service) step(a *actor) {
	result, err := a.game.AdvanceOneStep()
	if result == nil {
		log.Printf("Session %s: step rejected: %v", a.sessionID, err)
		return
	}

	if result.Landing == nil && err == nil {
		s.notify(&Update{Kind: UpdateStep, Session: a.game.Snapshot()})
		return
	}

	if err != nil {
		log.Printf("Session %s: landing failed: %v", a.sessionID, err)
	}
	if result.Landing != nil && result.Landing.Event != nil {
		s.recordEvent(a, result.Landing.Event)
	}

	snap := a.game.Snapshot()
	s.persist(a, snap)
	s.notify(&Update{
		Kind:    UpdateLanded,
		Session: snap,
		Landing: result.Landing,
		Err:     err,
	})
}

// tick counts down one second and reports whether the session just expired
func (s *service) tick(a *actor) bool {
	ended := a.game.Tick()
	snap := a.game.Snapshot()

	if ended {
		log.Printf("Session %s: time is up", a.sessionID)
		s.persist(a, snap)
		s.notify(&Update{
			Kind:    UpdateTimeUp,
			Session: snap,
			Ranking: a.game.Ranking(),
		})
		return true
	}

	if snap.TimeLeft%60 == 0 || (snap.Danger() && snap.TimeLeft%10 == 0) {
		s.persist(a, snap)
		s.notify(&Update{Kind: UpdateCountdown, Session: snap})
	}
	return false
}

func (s *service) notify(update *Update) {
	if s.listener == nil {
		return
	}
	s.listener.SessionUpdated(update)
}
