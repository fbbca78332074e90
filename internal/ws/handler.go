package ws

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sabaccdroid/sabacc-backend/internal/game"
	"github.com/sabaccdroid/sabacc-backend/internal/hub"
	"github.com/sabaccdroid/sabacc-backend/internal/table"
	"github.com/sabaccdroid/sabacc-backend/internal/types"
)

// Handler upgrades a connection and bridges it to a table: snapshots flow
// out as JSON, client messages come back in as session commands. The player
// identity is the caller-supplied "player" query param; anonymous
// connections get a generated one.
func Handler(h *hub.Hub, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			http.Error(w, "missing code", http.StatusBadRequest)
			return
		}
		playerID := r.URL.Query().Get("player")
		if playerID == "" {
			playerID = uuid.NewString()
		}

		reply := make(chan *table.Table, 1)
		h.Inbox() <- hub.GetTable{Code: code, Reply: reply}
		tb := <-reply
		if tb == nil {
			http.Error(w, "table not found", http.StatusNotFound)
			return
		}

		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{})
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		out := make(chan table.Snapshot, 8)
		tb.Inbox() <- table.Watch{ClientID: playerID, Outbox: out}
		defer func() { tb.Inbox() <- table.Unwatch{ClientID: playerID} }()

		// Writer goroutine
		writeCtx, writeCancel := context.WithCancel(r.Context())
		defer writeCancel()
		go func() {
			for snap := range out {
				snap := snap
				msg := types.ServerMessage{Type: "StateSnapshot", Snapshot: &snap}
				payload, _ := json.Marshal(msg)
				ctx, cancel := context.WithTimeout(writeCtx, 3*time.Second)
				_ = conn.Write(ctx, websocket.MessageText, payload)
				cancel()
			}
		}()

		// Reader loop
		for {
			_, data, err := conn.Read(r.Context())
			if err != nil {
				switch websocket.CloseStatus(err) {
				case websocket.StatusNormalClosure, websocket.StatusGoingAway:
					return
				}
				// Otherwise, just exit (table.Unwatch in defer):
				return
			}

			var cm types.ClientMessage
			if err := json.Unmarshal(data, &cm); err != nil {
				writeError(r.Context(), conn, "bad json")
				continue
			}

			if err := dispatch(tb, playerID, cm); err != nil {
				log.Debug("rejected message",
					zap.String("table", code),
					zap.String("player", playerID),
					zap.String("type", cm.Type),
					zap.Error(err))
				writeError(r.Context(), conn, err.Error())
			}
		}
	}
}

var errUnknownType = errors.New("unknown message type")

// dispatch routes one client message into the table actor and waits for the
// session's verdict.
func dispatch(tb *table.Table, playerID string, cm types.ClientMessage) error {
	reply := make(chan error, 1)

	switch cm.Type {
	case "join":
		name := cm.Name
		if name == "" {
			name = playerID
		}
		tb.Inbox() <- table.Join{PlayerID: playerID, Name: name, Reply: reply}
	case "leave":
		tb.Inbox() <- table.Leave{PlayerID: playerID, Reply: reply}
	case "start":
		tb.Inbox() <- table.Start{PlayerID: playerID, Reply: reply}
	default:
		action, ok := toAction(cm)
		if !ok {
			return errUnknownType
		}
		tb.Inbox() <- table.FromClient{PlayerID: playerID, Action: action, Reply: reply}
	}

	return <-reply
}

func toAction(cm types.ClientMessage) (game.Action, bool) {
	switch cm.Type {
	case "draw":
		return game.Action{Type: game.ActionDraw}, true
	case "discard":
		return game.Action{Type: game.ActionDiscard}, true
	case "replace":
		return game.Action{Type: game.ActionReplace}, true
	case "select_card":
		return game.Action{Type: game.ActionSelectCard, Card: game.Card(cm.Card)}, true
	case "go_back":
		return game.Action{Type: game.ActionGoBack}, true
	case "stand":
		return game.Action{Type: game.ActionStand}, true
	case "junk":
		return game.Action{Type: game.ActionJunk}, true
	default:
		return game.Action{}, false
	}
}

func writeError(ctx context.Context, conn *websocket.Conn, msg string) {
	payload, _ := json.Marshal(types.ServerMessage{Type: "Error", Error: msg})
	_ = conn.Write(ctx, websocket.MessageText, payload)
}
