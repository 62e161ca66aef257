package models

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/lk16/flippy/minimax/internal/othello"
)

var validate = validator.New()

// BoardRequest is the common part of all requests that refer to a board and a player.
type BoardRequest struct {
	Board  string `json:"board"  validate:"required"`
	Player int    `json:"player" validate:"required,oneof=1 2"`
}

// ParseBoard returns the board and player of the request.
func (r BoardRequest) ParseBoard() (othello.Board, othello.Player, error) {
	board, err := othello.NewBoardFromString(r.Board)
	if err != nil {
		return othello.Board{}, 0, fmt.Errorf("invalid board: %w", err)
	}

	return board, othello.Player(r.Player), nil
}

// ApplyMoveRequest is the payload for applying a move.
type ApplyMoveRequest struct {
	BoardRequest
	Move othello.Move `json:"move"`
}

// BestMoveRequest is the payload for a search.
type BestMoveRequest struct {
	BoardRequest
	Depth int `json:"depth" validate:"required,min=1,max=9"`

	// Pruning defaults to true when omitted.
	Pruning *bool `json:"pruning"`
}

// PruningEnabled returns whether alpha-beta pruning was requested.
func (r BestMoveRequest) PruningEnabled() bool {
	return r.Pruning == nil || *r.Pruning
}

// MoveResponse is a move with its field notation.
type MoveResponse struct {
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Field string `json:"field"`
}

// NewMoveResponse converts a move.
func NewMoveResponse(move othello.Move) MoveResponse {
	return MoveResponse{
		Row:   move.Row,
		Col:   move.Col,
		Field: move.Field(),
	}
}

// NewMoveResponses converts a list of moves. The result is never nil.
func NewMoveResponses(moves []othello.Move) []MoveResponse {
	responses := make([]MoveResponse, len(moves))
	for i, move := range moves {
		responses[i] = NewMoveResponse(move)
	}
	return responses
}

// Scores holds the disc count of both players.
type Scores struct {
	Player1 int `json:"player1"`
	Player2 int `json:"player2"`
}

// NewScores counts the discs on board.
func NewScores(board othello.Board) Scores {
	return Scores{
		Player1: board.Score(othello.Player1),
		Player2: board.Score(othello.Player2),
	}
}

// MovesResponse lists the valid moves of a player.
type MovesResponse struct {
	Moves      []MoveResponse `json:"moves"`
	IsTerminal bool           `json:"is_terminal"`
}

// ApplyMoveResponse is the board after a move.
type ApplyMoveResponse struct {
	Board   string         `json:"board"`
	Flipped []MoveResponse `json:"flipped"`
	Scores  Scores         `json:"scores"`
}

// BestMoveResponse is the result of a search. Move is nil if the player has no moves.
type BestMoveResponse struct {
	Move      *MoveResponse `json:"move"`
	Score     int           `json:"score"`
	Nodes     uint64        `json:"nodes"`
	ElapsedMs float64       `json:"elapsed_ms"`
}

// SearchStats holds counters over all searches done by the server.
type SearchStats struct {
	Searches int64 `json:"searches"`
	Nodes    int64 `json:"nodes"`
}

// VersionResponse holds the version of the server.
type VersionResponse struct {
	Commit string `json:"commit"`
}

// Validate checks the validate tags of payload and returns a readable error.
func Validate(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	details := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		details = append(details, describe(fieldErr))
	}

	return fmt.Errorf("validation failed: %s", strings.Join(details, "; "))
}

func describe(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", err.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", err.Field(), err.Param())
	case "min":
		if err.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", err.Field(), err.Param())
		}
		return fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
	case "max":
		if err.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", err.Field(), err.Param())
		}
		return fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", err.Field(), err.Tag())
	}
}
