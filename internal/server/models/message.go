package models

import "time"

// ChairmanMessage is a broadcast from the chairman. The newest row by
// CreatedAt is the active one.
type ChairmanMessage struct {
	ID        string
	Message   string
	CreatedBy string
	CreatedAt time.Time
}
