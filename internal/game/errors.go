package game

import "errors"

var ErrLobbyFull = errors.New("lobby is full")
var ErrAlreadyJoined = errors.New("player already joined")
var ErrNotInGame = errors.New("player is not in the game")
var ErrGameAlreadyStarted = errors.New("game already started")
var ErrGameNotStarted = errors.New("game has not started")
var ErrGameCompleted = errors.New("game already completed")
var ErrNotAPlayer = errors.New("only players in the game can do that")
var ErrNotEnoughPlayers = errors.New("not enough players")
var ErrNotYourTurn = errors.New("not your turn")
var ErrInvalidMove = errors.New("invalid move")
var ErrDeckExhausted = errors.New("the deck is empty")
