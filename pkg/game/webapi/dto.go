package webapi

import "github.com/google/uuid"

// SolveRequest describes a grid to solve. Coordinates are [row, col] pairs.
type SolveRequest struct {
	Size     int     `json:"size" binding:"required,min=1"`
	Start    []int   `json:"start" binding:"required,len=2"`
	End      []int   `json:"end" binding:"required,len=2"`
	Barriers [][]int `json:"barriers"`
	// IncludeMap asks for the solved grid as a text map in the response
	IncludeMap bool `json:"include_map"`
}

// SolveResponse is the result of one search
type SolveResponse struct {
	ID       uuid.UUID `json:"id"`
	Outcome  string    `json:"outcome"`
	Path     [][2]int  `json:"path"`
	Cost     int       `json:"cost"`
	Expanded int       `json:"expanded"`
	Map      string    `json:"map,omitempty"`
}

// ErrorResponse carries a request error
type ErrorResponse struct {
	ID    uuid.UUID `json:"id"`
	Error string    `json:"error"`
}
