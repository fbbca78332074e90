package game

import (
	"math/rand"
	"sort"
)

// Phase is the session lifecycle.
type Phase string

const (
	PhaseLobby      Phase = "lobby"
	PhaseInProgress Phase = "in_progress"
	PhaseFinished   Phase = "finished"
)

// MaxPlayers caps lobby membership.
const MaxPlayers = 8

const (
	DefaultRounds        = 3
	DefaultStartingCards = 2
)

// landoName labels the synthesized opponent for solo games.
const landoName = "Lando Calrissian AI"

// Config holds a single game's tunables.
type Config struct {
	Rounds        int
	StartingCards int
}

func (c Config) withDefaults() Config {
	if c.Rounds <= 0 {
		c.Rounds = DefaultRounds
	}
	if c.StartingCards <= 0 {
		c.StartingCards = DefaultStartingCards
	}
	return c
}

// Session is one game from lobby to showdown. It is not safe for concurrent
// use: the owning table serializes all access through its inbox.
type Session struct {
	cfg Config
	rng *rand.Rand

	phase   Phase
	players []*Player
	deck    *Deck

	turn       *turnEngine
	turnIndex  int
	firstTurn  bool
	roundsDone int
	soloGame   bool

	results  []Result
	winners  []string
	noWinner bool
}

// NewSession creates a session in the lobby phase. The rng drives every
// shuffle; a fixed seed replays the exact same game.
func NewSession(cfg Config, rng *rand.Rand) *Session {
	return &Session{
		cfg:       cfg.withDefaults(),
		rng:       rng,
		phase:     PhaseLobby,
		turnIndex: -1,
	}
}

func (s *Session) Phase() Phase { return s.phase }

// AddPlayer seats a player in the lobby.
func (s *Session) AddPlayer(id, name string) ([]Event, error) {
	if s.phase != PhaseLobby {
		return nil, ErrGameAlreadyStarted
	}
	if s.playerByID(id) != nil {
		return nil, ErrAlreadyJoined
	}
	if len(s.players) >= MaxPlayers {
		return nil, ErrLobbyFull
	}
	s.players = append(s.players, &Player{ID: id, Name: name})
	return []Event{{Type: EvtPlayerJoined, PlayerID: id}}, nil
}

// RemovePlayer frees a seat. Only valid in the lobby; mid-game departure is
// modeled solely by junking.
func (s *Session) RemovePlayer(id string) ([]Event, error) {
	if s.phase != PhaseLobby {
		return nil, ErrGameAlreadyStarted
	}
	for i, p := range s.players {
		if p.ID == id {
			s.players = append(s.players[:i], s.players[i+1:]...)
			return []Event{{Type: EvtPlayerLeft, PlayerID: id}}, nil
		}
	}
	return nil, ErrNotInGame
}

// Start deals the opening hands and begins the first turn. Only a seated
// player may start the game. A single-player start is flagged solo: the
// house opponent is synthesized later, at showdown.
func (s *Session) Start(requesterID string) ([]Event, error) {
	if s.phase != PhaseLobby {
		return nil, ErrGameAlreadyStarted
	}
	if s.playerByID(requesterID) == nil {
		return nil, ErrNotAPlayer
	}
	if len(s.players) < 1 {
		return nil, ErrNotEnoughPlayers
	}
	// The opening deal must fit in the pool; checked before any state
	// mutation so a rejected start leaves the lobby exactly as it was.
	if len(s.players)*s.cfg.StartingCards > DeckSize {
		return nil, ErrDeckExhausted
	}

	s.deck = NewDeck(s.rng)
	s.rng.Shuffle(len(s.players), func(i, j int) {
		s.players[i], s.players[j] = s.players[j], s.players[i]
	})
	for _, p := range s.players {
		for i := 0; i < s.cfg.StartingCards; i++ {
			if err := p.Hand.Draw(s.deck); err != nil {
				return nil, err
			}
		}
	}

	s.soloGame = len(s.players) == 1
	s.phase = PhaseInProgress
	s.roundsDone = 1
	s.firstTurn = true
	s.turnIndex = -1

	events := []Event{{Type: EvtGameStarted, Round: s.roundsDone}}
	return append(events, s.beginTurn(0, true)...), nil
}

// Submit feeds one action from playerID into the active turn. Rejected
// actions leave the session exactly as it was.
func (s *Session) Submit(playerID string, a Action) ([]Event, error) {
	switch s.phase {
	case PhaseLobby:
		return nil, ErrGameNotStarted
	case PhaseFinished:
		return nil, ErrGameCompleted
	}

	current := s.players[s.turnIndex]
	if current.ID != playerID {
		return nil, ErrNotYourTurn
	}

	evt, err := s.turn.apply(a, s.deck)
	if err != nil {
		return nil, err
	}
	if s.turn.state != TurnCompleted {
		// Entered or left a card-selection sub-state; turn not consumed.
		return nil, nil
	}
	return s.finishTurn(evt), nil
}

// Timeout expires the active turn as an auto-stand. Called by the hosting
// table's timer; late fires after the game ends are ignored.
func (s *Session) Timeout() []Event {
	if s.phase != PhaseInProgress || s.turn == nil {
		return nil
	}
	evt := s.turn.expire()
	return s.finishTurn(evt)
}

// finishTurn folds the completing event into the turn advance, handling a
// junking player's removal.
func (s *Session) finishTurn(evt *Event) []Event {
	var events []Event
	if evt != nil {
		events = append(events, *evt)
	}

	if s.turn.junked {
		idx := s.turnIndex
		s.players = append(s.players[:idx], s.players[idx+1:]...)
		s.turn = nil
		if len(s.players) < 2 {
			return append(events, s.showdown()...)
		}
		// Advance by one modulo the shrunk list. The seat that slid into
		// the junker's index is passed over until the order comes back
		// around; a round closes only when the index lands on 0.
		next := (idx + 1) % len(s.players)
		return append(events, s.beginTurn(next, next == 0)...)
	}

	s.turn = nil
	next := (s.turnIndex + 1) % len(s.players)
	return append(events, s.beginTurn(next, next == 0)...)
}

// beginTurn starts the turn at idx. A wrap back to seat 0 closes a round,
// except for the very first turn of the game.
func (s *Session) beginTurn(idx int, wrapped bool) []Event {
	var events []Event
	if wrapped && !s.firstTurn {
		s.roundsDone++
		if s.roundsDone > s.cfg.Rounds {
			return append(events, s.showdown()...)
		}
		events = append(events, Event{Type: EvtRoundAdvanced, Round: s.roundsDone})
	}
	s.firstTurn = false
	s.turnIndex = idx
	s.turn = newTurn(s.players[idx])
	return append(events, Event{
		Type:     EvtTurnStarted,
		PlayerID: s.players[idx].ID,
		Round:    s.roundsDone,
	})
}

// showdown evaluates every remaining hand, ranks them, and finishes the
// session. An empty table (everyone junked) is a no-winner game. Solo games
// get the house opponent dealt here, with a fresh two-card hand that never
// took a turn.
func (s *Session) showdown() []Event {
	s.phase = PhaseFinished
	s.turn = nil

	if len(s.players) == 0 {
		s.noWinner = true
		return []Event{{Type: EvtGameEnded, NoWinner: true}}
	}

	if s.soloGame {
		lando := &Player{ID: "lando", Name: landoName, AI: true}
		for i := 0; i < DefaultStartingCards; i++ {
			// An exhausted deck cannot block the end of the game; the
			// opponent plays whatever it managed to draw.
			if err := lando.Hand.Draw(s.deck); err != nil {
				break
			}
		}
		s.players = append(s.players, lando)
	}

	results := make([]Result, 0, len(s.players))
	for _, p := range s.players {
		results = append(results, Result{
			PlayerID: p.ID,
			Name:     p.Name,
			AI:       p.AI,
			Cards:    p.Hand.Cards(),
			Eval:     Evaluate(p.Hand.Cards()),
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return Compare(results[i].Eval, results[j].Eval) < 0
	})

	winners := []string{results[0].PlayerID}
	for _, r := range results[1:] {
		if Compare(r.Eval, results[0].Eval) != 0 {
			break
		}
		winners = append(winners, r.PlayerID)
	}

	s.results = results
	s.winners = winners
	return []Event{{Type: EvtGameEnded, Results: results, Winners: winners}}
}

func (s *Session) playerByID(id string) *Player {
	for _, p := range s.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// PlayerView is a snapshot of one seat.
type PlayerView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	AI    bool   `json:"ai,omitempty"`
	Cards []Card `json:"cards"`
	Total int    `json:"total"`
}

// View is a read-only copy of the session, complete enough for a
// presentation layer to render without further queries.
type View struct {
	Phase       Phase        `json:"phase"`
	Players     []PlayerView `json:"players"`
	Round       int          `json:"round"`
	TotalRounds int          `json:"total_rounds"`
	TurnPlayer  string       `json:"turn_player,omitempty"`
	TurnState   TurnState    `json:"turn_state,omitempty"`
	DeckLeft    int          `json:"deck_left"`
	Results     []Result     `json:"results,omitempty"`
	Winners     []string     `json:"winners,omitempty"`
	NoWinner    bool         `json:"no_winner,omitempty"`
}

// Snapshot copies the current state.
func (s *Session) Snapshot() View {
	v := View{
		Phase:       s.phase,
		Round:       s.roundsDone,
		TotalRounds: s.cfg.Rounds,
		Results:     s.results,
		Winners:     s.winners,
		NoWinner:    s.noWinner,
	}
	if s.deck != nil {
		v.DeckLeft = s.deck.Remaining()
	}
	for _, p := range s.players {
		v.Players = append(v.Players, PlayerView{
			ID:    p.ID,
			Name:  p.Name,
			AI:    p.AI,
			Cards: p.Hand.Cards(),
			Total: p.Hand.Total(),
		})
	}
	if s.turn != nil {
		v.TurnPlayer = s.players[s.turnIndex].ID
		v.TurnState = s.turn.state
	}
	return v
}
