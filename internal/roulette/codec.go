package roulette

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/abrezinsky/reviewwheel/internal/models"
)

// ErrMalformedRecord is returned when a stored record cannot be decoded
var ErrMalformedRecord = stderrors.New("malformed session record")

type storedRecord struct {
	ChosenPrize *models.Prize `json:"chosenPrize"`
	PrizeResult *models.Prize `json:"prizeResult,omitempty"`
	Timestamp   int64         `json:"timestamp"`
	IsUnlocked  bool          `json:"isUnlocked"`
}

// EncodeRecord serializes a record to its JSON wire form
func EncodeRecord(rec models.SessionRecord) (string, error) {
	data, err := json.Marshal(storedRecord{
		ChosenPrize: rec.ChosenPrize,
		Timestamp:   rec.RecordedAt.UnixMilli(),
		IsUnlocked:  rec.Unlocked,
	})
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeRecord parses the JSON wire form. Older payloads that carry the prize
// under "prizeResult" are accepted. A payload that is not an object, that
// claims to be unlocked without a prize, or whose prize has no name or no
// positive finite weight is malformed.
func DecodeRecord(raw string) (*models.SessionRecord, error) {
	var stored storedRecord
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}

	prize := stored.ChosenPrize
	if prize == nil {
		prize = stored.PrizeResult
	}
	if stored.IsUnlocked && prize == nil {
		return nil, fmt.Errorf("%w: unlocked without a prize", ErrMalformedRecord)
	}
	if prize != nil {
		if prize.Name == "" {
			return nil, fmt.Errorf("%w: prize %d has no name", ErrMalformedRecord, prize.ID)
		}
		if !ValidWeight(prize.Weight) {
			return nil, fmt.Errorf("%w: prize %d has weight %v", ErrMalformedRecord, prize.ID, prize.Weight)
		}
	}

	return &models.SessionRecord{
		ChosenPrize: prize,
		Unlocked:    stored.IsUnlocked,
		RecordedAt:  time.UnixMilli(stored.Timestamp),
	}, nil
}
