package game

// TurnState tracks where the active turn is in its action flow. Discard and
// replace are two-step: the player first declares the action, then selects
// which card, and may back out before selecting.
type TurnState string

const (
	TurnAwaitingAction   TurnState = "awaiting_action"
	TurnDiscardSelecting TurnState = "discard_selecting"
	TurnReplaceSelecting TurnState = "replace_selecting"
	TurnCompleted        TurnState = "completed"
)

// ActionType is a player's move during their turn.
type ActionType string

const (
	ActionDraw       ActionType = "draw"
	ActionDiscard    ActionType = "discard"
	ActionReplace    ActionType = "replace"
	ActionSelectCard ActionType = "select_card"
	ActionGoBack     ActionType = "go_back"
	ActionStand      ActionType = "stand"
	ActionJunk       ActionType = "junk"
)

// Action is one discrete input to the turn engine. Card is read only for
// ActionSelectCard.
type Action struct {
	Type ActionType `json:"type"`
	Card Card       `json:"card,omitempty"`
}

// turnEngine runs a single player's turn. A fresh engine is bound per turn
// and discarded once it reaches TurnCompleted.
type turnEngine struct {
	player *Player
	state  TurnState
	junked bool
}

func newTurn(p *Player) *turnEngine {
	return &turnEngine{player: p, state: TurnAwaitingAction}
}

// apply feeds one action into the engine. A nil event with a nil error means
// the turn is still in a selecting sub-state. Rejected actions leave the
// engine's state untouched and never consume the turn.
func (t *turnEngine) apply(a Action, deck *Deck) (*Event, error) {
	switch t.state {
	case TurnAwaitingAction:
		return t.applyAwaiting(a, deck)
	case TurnDiscardSelecting, TurnReplaceSelecting:
		return t.applySelecting(a, deck)
	default:
		return nil, ErrInvalidMove
	}
}

func (t *turnEngine) applyAwaiting(a Action, deck *Deck) (*Event, error) {
	switch a.Type {
	case ActionDraw:
		if err := t.player.Hand.Draw(deck); err != nil {
			return nil, err
		}
		t.state = TurnCompleted
		return &Event{Type: EvtCardDrawn, PlayerID: t.player.ID}, nil

	case ActionDiscard:
		// The last-card floor is also enforced by Hand.Discard; checking
		// here keeps a doomed selection from opening at all.
		if t.player.Hand.Size() <= 1 {
			return nil, ErrInvalidMove
		}
		t.state = TurnDiscardSelecting
		return nil, nil

	case ActionReplace:
		t.state = TurnReplaceSelecting
		return nil, nil

	case ActionStand:
		t.state = TurnCompleted
		return &Event{Type: EvtPlayerStood, PlayerID: t.player.ID}, nil

	case ActionJunk:
		t.state = TurnCompleted
		t.junked = true
		return &Event{Type: EvtPlayerJunked, PlayerID: t.player.ID}, nil

	default:
		return nil, ErrInvalidMove
	}
}

func (t *turnEngine) applySelecting(a Action, deck *Deck) (*Event, error) {
	switch a.Type {
	case ActionGoBack:
		t.state = TurnAwaitingAction
		return nil, nil

	case ActionSelectCard:
		if t.state == TurnDiscardSelecting {
			if !t.player.Hand.Discard(a.Card) {
				return nil, ErrInvalidMove
			}
			t.state = TurnCompleted
			return &Event{Type: EvtCardDiscarded, PlayerID: t.player.ID, Card: a.Card}, nil
		}
		ok, err := t.player.Hand.Replace(a.Card, deck)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrInvalidMove
		}
		t.state = TurnCompleted
		return &Event{Type: EvtCardReplaced, PlayerID: t.player.ID, Card: a.Card}, nil

	default:
		return nil, ErrInvalidMove
	}
}

// expire completes the turn as if the player stood. Called by the session
// when the turn timer fires.
func (t *turnEngine) expire() *Event {
	t.state = TurnCompleted
	return &Event{Type: EvtTurnSkipped, PlayerID: t.player.ID}
}
