package model

type Player struct {
	Name string
	Side Side
}

// ClientPlayer is the player as spectators see it.
type ClientPlayer struct {
	Name     string `json:"name"`
	Side     Side   `json:"side"`
	TimeUsed int64  `json:"timeUsed"` // milliseconds
}
