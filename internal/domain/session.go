package domain

import "time"

const (
	EventMove  = "move"
	EventPass  = "pass"
	EventReset = "reset"
	EventBoard = "board"
)

// Point is a board intersection, (0,0) is the top-left corner.
type Point struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// Move is a history entry. Coordinates are SGF letters, empty for a pass.
type Move struct {
	Color       string `json:"color"`
	Coordinates string `json:"coordinates"`
	Point       *Point `json:"point,omitempty"`
}

type ResetRequest struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Komi   float64 `json:"komi"`
}

type MoveRequest struct {
	Col   *int   `json:"col"`
	Row   *int   `json:"row"`
	Color string `json:"color,omitempty"`
}

type PassRequest struct {
	Color string `json:"color,omitempty"`
}

// MoveResult answers a move or pass attempt. Rejections carry only Result
// and Next.
type MoveResult struct {
	Result     string  `json:"result"`
	Move       *Move   `json:"move,omitempty"`
	Changed    []Point `json:"changed,omitempty"`
	Captured   int     `json:"captured"`
	Ko         *Point  `json:"ko,omitempty"`
	Next       string  `json:"next"`
	MoveNumber int     `json:"move_number"`
}

type BoardState struct {
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Komi      float64 `json:"komi"`
	Ko        *Point  `json:"ko,omitempty"`
	MoveCount int     `json:"move_count"`
	Next      string  `json:"next"`
	Black     []Point `json:"black"`
	White     []Point `json:"white"`
	Ascii     string  `json:"ascii"`
}

type TurnResponse struct {
	Color string `json:"color"`
}

type CanPlayResponse struct {
	Playable bool `json:"playable"`
}

type HistoryResponse struct {
	Moves []Move `json:"moves"`
}

type SGFResponse struct {
	SGF string `json:"sgf"`
}

// Event is what renderers receive after the board changed.
type Event struct {
	ID        string      `json:"id"`
	SessionID string      `json:"session_id"`
	Type      string      `json:"type"`
	Result    *MoveResult `json:"result,omitempty"`
	Board     *BoardState `json:"board,omitempty"`
	Time      time.Time   `json:"time"`
}
