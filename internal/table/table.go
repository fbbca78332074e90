package table

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sabaccdroid/sabacc-backend/internal/game"
)

type Msg interface{ isTableMsg() }

// Watch registers a snapshot outbox for one connection. Watching does not
// take a seat; Join does.
type Watch struct {
	ClientID string
	Outbox   chan Snapshot // where this client wants to receive snapshots
}

func (Watch) isTableMsg() {}

type Unwatch struct{ ClientID string }

func (Unwatch) isTableMsg() {}

type Join struct {
	PlayerID string
	Name     string
	Reply    chan error
}

func (Join) isTableMsg() {}

type Leave struct {
	PlayerID string
	Reply    chan error
}

func (Leave) isTableMsg() {}

type Start struct {
	PlayerID string
	Reply    chan error
}

func (Start) isTableMsg() {}

// FromClient carries one turn action from a connection.
type FromClient struct {
	PlayerID string
	Action   game.Action
	Reply    chan error
}

func (FromClient) isTableMsg() {}

type GetState struct {
	Reply chan StateView
}

func (GetState) isTableMsg() {}

type Shutdown struct{}

func (Shutdown) isTableMsg() {}

// turnExpired is the internal timer message. Seq guards against stale fires
// after the turn already moved on.
type turnExpired struct{ Seq int }

func (turnExpired) isTableMsg() {}

// Snapshot is one broadcast state update. Events lists what changed since
// the previous version.
type Snapshot struct {
	Version int          `json:"version"`
	Events  []game.Event `json:"events,omitempty"`
	State   game.View    `json:"state"`
}

// StateView reflects internal state for tests without data races.
type StateView struct {
	Version    int
	NumClients int
	State      game.View
}

// Table is the actor owning one game session. All session access funnels
// through the inbox, so at most one turn is ever in flight.
type Table struct {
	code        string
	inbox       chan Msg
	session     *game.Session
	version     int
	clients     map[string]chan Snapshot
	turnTimeout time.Duration
	timer       *time.Timer
	timerSeq    int
	onEnded     func(code string)
	log         *zap.Logger
	ctx         context.Context
	cancel      context.CancelFunc
}

// New starts a table actor for the given session. onEnded is invoked exactly
// once, when the game reaches the finished phase.
func New(parent context.Context, code string, session *game.Session, turnTimeout time.Duration, onEnded func(code string), log *zap.Logger) *Table {
	ctx, cancel := context.WithCancel(parent)

	t := &Table{
		code:        code,
		inbox:       make(chan Msg, 64), // Small buffer
		session:     session,
		clients:     make(map[string]chan Snapshot),
		turnTimeout: turnTimeout,
		onEnded:     onEnded,
		log:         log.With(zap.String("table", code)),
		ctx:         ctx,
		cancel:      cancel,
	}

	go t.loop()
	return t
}

// Inbox exposes the message channel to the ws layer and tests.
func (t *Table) Inbox() chan<- Msg { return t.inbox }

func (t *Table) loop() {
	for {
		select {
		case <-t.ctx.Done():
			t.shutdown()
			return

		case m := <-t.inbox:
			switch msg := m.(type) {
			case Watch:
				t.clients[msg.ClientID] = msg.Outbox
				msg.Outbox <- Snapshot{Version: t.version, State: t.session.Snapshot()}

			case Unwatch:
				// Close so the connection's writer goroutine unblocks; a
				// client already dropped for slowness is gone from the map.
				if ch, ok := t.clients[msg.ClientID]; ok {
					close(ch)
					delete(t.clients, msg.ClientID)
				}

			case Join:
				t.mutate(msg.Reply, func() ([]game.Event, error) {
					return t.session.AddPlayer(msg.PlayerID, msg.Name)
				})

			case Leave:
				t.mutate(msg.Reply, func() ([]game.Event, error) {
					return t.session.RemovePlayer(msg.PlayerID)
				})

			case Start:
				t.mutate(msg.Reply, func() ([]game.Event, error) {
					return t.session.Start(msg.PlayerID)
				})

			case FromClient:
				t.mutate(msg.Reply, func() ([]game.Event, error) {
					return t.session.Submit(msg.PlayerID, msg.Action)
				})

			case turnExpired:
				if msg.Seq != t.timerSeq {
					break // a newer turn already rescheduled the timer
				}
				events := t.session.Timeout()
				if len(events) > 0 {
					t.log.Info("turn skipped on timeout")
					t.apply(events)
				}

			case GetState:
				msg.Reply <- StateView{
					Version:    t.version,
					NumClients: len(t.clients),
					State:      t.session.Snapshot(),
				}

			case Shutdown:
				t.shutdown()
				return
			}
		}
	}
}

// mutate runs one session mutation, replies to the caller, and on success
// broadcasts the new state.
func (t *Table) mutate(reply chan error, fn func() ([]game.Event, error)) {
	events, err := fn()
	if reply != nil {
		reply <- err
	}
	if err != nil {
		return
	}
	t.apply(events)
}

func (t *Table) apply(events []game.Event) {
	t.armTimer()
	t.version++
	t.broadcast(Snapshot{Version: t.version, Events: events, State: t.session.Snapshot()})

	for _, evt := range events {
		if evt.Type == game.EvtGameEnded {
			t.log.Info("game ended",
				zap.Strings("winners", evt.Winners),
				zap.Bool("no_winner", evt.NoWinner))
			if t.onEnded != nil {
				t.onEnded(t.code)
				t.onEnded = nil
			}
		}
	}
}

// armTimer restarts the turn deadline whenever the session accepted an
// action and a turn is still live. Each reset bumps the sequence so a stale
// expiry is ignored.
func (t *Table) armTimer() {
	t.timerSeq++
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	if t.session.Phase() != game.PhaseInProgress || t.turnTimeout <= 0 {
		return
	}
	seq := t.timerSeq
	t.timer = time.AfterFunc(t.turnTimeout, func() {
		select {
		case t.inbox <- turnExpired{Seq: seq}:
		case <-t.ctx.Done():
		}
	})
}

func (t *Table) shutdown() {
	if t.timer != nil {
		t.timer.Stop()
	}
	for id, ch := range t.clients {
		close(ch) // Tell client no more snapshots
		delete(t.clients, id)
	}
	t.cancel()
}

func (t *Table) broadcast(snap Snapshot) {
	for id, ch := range t.clients {
		select {
		case ch <- snap:
			//ok
		default:
			// Client is slow/full - drop them.
			close(ch)
			delete(t.clients, id)
		}
	}
}
