package models

import "time"

// State is a step of the wheel flow
type State string

const (
	StateIdle         State = "IDLE"
	StateSpinning     State = "SPINNING"
	StateWonLocked    State = "WON_LOCKED"
	StateCouponActive State = "COUPON_ACTIVE"
)

// Prize is one weighted outcome of a spin
type Prize struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	DisplayName string  `json:"nameKo"`
	Color       string  `json:"color"`
	Weight      float64 `json:"probability"`
}

// SessionRecord is the persisted snapshot of the chosen prize and its unlock status.
// Unlocked implies ChosenPrize != nil.
type SessionRecord struct {
	ChosenPrize *Prize
	Unlocked    bool
	RecordedAt  time.Time
}

// Snapshot is the read model of the wheel sent to pages
type Snapshot struct {
	State          State   `json:"state"`
	Prize          *Prize  `json:"prize"`
	Rotation       float64 `json:"rotation"`
	SpinDurationMs int64   `json:"spinDurationMs"`
	ReviewURL      string  `json:"reviewUrl"`
	Unlocked       bool    `json:"unlocked"`
}

// PrizeChance is a prize with its share of the total weight in percent
type PrizeChance struct {
	Prize
	Chance float64 `json:"chance"`
}

// WSMessage represents a WebSocket message
type WSMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}
