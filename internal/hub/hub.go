package hub

import (
	"context"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/sabaccdroid/sabacc-backend/internal/game"
	"github.com/sabaccdroid/sabacc-backend/internal/table"
)

type HubMsg interface{ isHubMsg() }

type CreateTable struct {
	Code  string
	Cfg   game.Config
	Reply chan *table.Table
}

type GetTable struct {
	Code  string
	Reply chan *table.Table
}

type RemoveTable struct {
	Code string
}

type ShutdownHub struct{}

func (CreateTable) isHubMsg() {}
func (GetTable) isHubMsg()    {}
func (RemoveTable) isHubMsg() {}
func (ShutdownHub) isHubMsg() {}

// Options tunes the tables a hub creates.
type Options struct {
	TurnTimeout time.Duration
	// Seed fixes the RNG for every table; 0 seeds each from the clock.
	// A fixed seed replays identical games, which only makes sense in tests.
	Seed int64
}

// Hub is the registry of active tables. A table notifies the hub exactly
// once, when its game finishes, and is dropped from the registry then.
type Hub struct {
	inbox  chan HubMsg
	tables map[string]*table.Table
	opts   Options
	log    *zap.Logger
	ctx    context.Context
	cancel context.CancelFunc
}

func NewHub(parent context.Context, opts Options, log *zap.Logger) *Hub {
	ctx, cancel := context.WithCancel(parent)
	h := &Hub{
		inbox:  make(chan HubMsg, 64),
		tables: make(map[string]*table.Table),
		opts:   opts,
		log:    log,
		ctx:    ctx,
		cancel: cancel,
	}
	go h.loop()
	return h
}

func (h *Hub) Inbox() chan<- HubMsg { return h.inbox }

func (h *Hub) loop() {
	for {
		select {
		case <-h.ctx.Done():
			return

		case m := <-h.inbox:
			switch msg := m.(type) {
			case CreateTable:
				if tb := h.tables[msg.Code]; tb != nil {
					msg.Reply <- tb
					break
				}
				msg.Reply <- h.create(msg.Code, msg.Cfg)

			case GetTable:
				msg.Reply <- h.tables[msg.Code] // May be nil

			case RemoveTable:
				delete(h.tables, msg.Code)

			case ShutdownHub:
				for _, tb := range h.tables {
					tb.Inbox() <- table.Shutdown{}
				}
				clear(h.tables)
				h.cancel()
			}
		}
	}
}

func (h *Hub) create(code string, cfg game.Config) *table.Table {
	seed := h.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	session := game.NewSession(cfg, rand.New(rand.NewSource(seed)))

	onEnded := func(code string) {
		select {
		case h.inbox <- RemoveTable{Code: code}:
		case <-h.ctx.Done():
		}
	}

	tb := table.New(h.ctx, code, session, h.opts.TurnTimeout, onEnded, h.log)
	h.tables[code] = tb
	h.log.Info("table created",
		zap.String("table", code),
		zap.Int("rounds", cfg.Rounds),
		zap.Int("starting_cards", cfg.StartingCards))
	return tb
}
