package request_models

// BudgetAllocation is the optional per-category split the user can pin.
// When present, the model is instructed to echo it exactly.
type BudgetAllocation struct {
	Transport  *int `json:"transport,omitempty"`
	Stay       *int `json:"stay,omitempty"`
	Food       *int `json:"food,omitempty"`
	Activities *int `json:"activities,omitempty"`
}

// PlanRequest carries the user's trip parameters. Immutable once submitted
// for a given request.
type PlanRequest struct {
	From          string            `json:"from"`
	Destination   string            `json:"destination" binding:"required"`
	Duration      string            `json:"duration" binding:"required"`
	Budget        int               `json:"budget" binding:"required,min=1"`
	TransportType string            `json:"transport_type"` // Train | Bus | Flight | Any
	Allocation    *BudgetAllocation `json:"budget_breakdown,omitempty"`
	IncludePlaces bool              `json:"include_places"`
}
