package model

import "time"

type Receipt struct {
	ID        string     `json:"id"`
	SessionID string     `json:"session_id"`
	Items     []LineItem `json:"items"`
	Total     float64    `json:"total"`
	Paid      float64    `json:"paid"`
	Change    float64    `json:"change"`
	CreatedAt time.Time  `json:"created_at"`
}
