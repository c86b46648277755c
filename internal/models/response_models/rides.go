package response_models

// RidePrice is recomputed fresh on every comparison request and never
// persisted. Field names follow the dashboard's existing wire format.
type RidePrice struct {
	Service            string   `json:"service"`
	Vehicle            string   `json:"vehicle"`
	BaseFare           int      `json:"base_fare"`
	PricePerKm         int      `json:"price_per_km"`
	DistanceKm         float64  `json:"distance"`
	BasePrice          int      `json:"base_price"`
	DiscountPercentage int      `json:"discount_percentage"`
	FinalPrice         int      `json:"final_price"`
	EstimatedMinutes   int      `json:"estimated_time"`
	Rating             float64  `json:"rating"`
	Benefits           []string `json:"benefits"`
}

type RideComparison struct {
	DistanceKm      float64     `json:"distance_km"`
	DurationMinutes float64     `json:"duration_minutes"`
	UsedFallback    bool        `json:"used_fallback"`
	Rides           []RidePrice `json:"rides"`
}
