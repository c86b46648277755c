package response_models

// BudgetStatus is produced by the external model per the prompt contract;
// the client validates membership but never recomputes it.
type BudgetStatus string

const (
	BudgetOK       BudgetStatus = "OK"
	BudgetWarning  BudgetStatus = "WARNING"
	BudgetCritical BudgetStatus = "CRITICAL"
)

func (s BudgetStatus) Valid() bool {
	switch s {
	case BudgetOK, BudgetWarning, BudgetCritical:
		return true
	}
	return false
}

type CostBreakdown struct {
	Transport  string `json:"transport"`
	Stay       string `json:"stay"`
	Food       string `json:"food"`
	Activities string `json:"activities"`
}

type ItineraryItem struct {
	Time          string `json:"time"`
	Activity      string `json:"activity"`
	Cost          string `json:"cost,omitempty"`
	CostSavingTip string `json:"cost_saving_tip"`
}

type TransportOption struct {
	Type          string `json:"type"`
	Name          string `json:"name"`
	Cost          string `json:"cost"`
	Duration      string `json:"duration"`
	ComfortRating string `json:"comfort_rating"`
}

// TripPlanResponse mirrors the structured-output schema sent to the model.
type TripPlanResponse struct {
	TripSummary      string            `json:"trip_summary"`
	BudgetStatus     BudgetStatus      `json:"budget_status"`
	MLComparison     string            `json:"ml_comparison"`
	TransportOptions []TransportOption `json:"transport_options"`
	CostBreakdown    CostBreakdown     `json:"cost_breakdown"`
	Itinerary        []ItineraryItem   `json:"itinerary"`
	LocalProTip      string            `json:"local_pro_tip"`
}

// PlanResult is what the plan endpoint returns: the model's plan plus the
// locally estimated base cost it was compared against.
type PlanResult struct {
	EstimatedBaseCost int               `json:"estimated_base_cost"`
	Plan              *TripPlanResponse `json:"plan"`
}
