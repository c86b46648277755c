package request_models

type RideCompareRequest struct {
	From string `json:"from" binding:"required"`
	To   string `json:"to" binding:"required"`
}
