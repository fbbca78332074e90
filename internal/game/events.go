package game

// EventType tags the state changes a session emits. The table layer relays
// them so the presentation side can render without querying the session.
type EventType string

const (
	EvtPlayerJoined  EventType = "PlayerJoined"
	EvtPlayerLeft    EventType = "PlayerLeft"
	EvtGameStarted   EventType = "GameStarted"
	EvtTurnStarted   EventType = "TurnStarted"
	EvtCardDrawn     EventType = "CardDrawn"
	EvtCardDiscarded EventType = "CardDiscarded"
	EvtCardReplaced  EventType = "CardReplaced"
	EvtPlayerStood   EventType = "PlayerStood"
	EvtPlayerJunked  EventType = "PlayerJunked"
	EvtTurnSkipped   EventType = "TurnSkipped"
	EvtRoundAdvanced EventType = "RoundAdvanced"
	EvtGameEnded     EventType = "GameEnded"
)

// Event is one observable state change. Card is set for discard/replace
// events (the card that left the hand); Results and Winners are set on
// EvtGameEnded only.
type Event struct {
	Type     EventType `json:"type"`
	PlayerID string    `json:"player_id,omitempty"`
	Card     Card      `json:"card,omitempty"`
	Round    int       `json:"round,omitempty"`
	Results  []Result  `json:"results,omitempty"`
	Winners  []string  `json:"winners,omitempty"`
	NoWinner bool      `json:"no_winner,omitempty"`
}

// Result is one player's line in the showdown ranking, best first.
type Result struct {
	PlayerID string     `json:"player_id"`
	Name     string     `json:"name"`
	AI       bool       `json:"ai,omitempty"`
	Cards    []Card     `json:"cards"`
	Eval     Evaluation `json:"eval"`
}
