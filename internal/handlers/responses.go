package handlers

import "github.com/abrezinsky/reviewwheel/internal/models"

// ActionResponse is returned by every wheel action. Applied is false when the
// action was not valid in the current state and was ignored.
type ActionResponse struct {
	Applied bool            `json:"applied"`
	State   models.Snapshot `json:"state"`
}

// PrizesResponse lists the wheel segments in order
type PrizesResponse struct {
	Prizes []models.PrizeChance `json:"prizes"`
}

// IndexPageData holds the data passed to the wheel page
type IndexPageData struct {
	Prizes   []models.PrizeChance
	Snapshot models.Snapshot
}

// StaffPageData holds the data passed to the staff panel
type StaffPageData struct {
	Snapshot models.Snapshot
	Prizes   []models.PrizeChance
}

// LoginPageData holds data for the login template
type LoginPageData struct {
	Error string
}
