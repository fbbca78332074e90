package types

import "github.com/sabaccdroid/sabacc-backend/internal/table"

// ClientMessage is one JSON action from a connection. Type is "join",
// "leave", "start", or a turn action: "draw", "discard", "replace",
// "select_card", "go_back", "stand", "junk". Card is read for "select_card"
// only.
type ClientMessage struct {
	Type string `json:"type"`
	Name string `json:"name,omitempty"`
	Card int    `json:"card,omitempty"`
}

type ServerMessage struct {
	Type     string          `json:"type"` // "StateSnapshot" | "Error"
	Snapshot *table.Snapshot `json:"snapshot,omitempty"`
	Error    string          `json:"error,omitempty"`
}
