package response_models

import "wander/internal/models/request_models"

// SavedTrip lives inside the encrypted vault blob, most-recent-first.
type SavedTrip struct {
	ID        string                     `json:"id"`
	CreatedAt int64                      `json:"created_at"`
	Query     request_models.PlanRequest `json:"query"`
	Plan      TripPlanResponse           `json:"plan"`
}
