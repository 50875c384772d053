package dto

type PredictionEntryDTO struct {
	EventID int `json:"event_id" example:"12"`
	Home    int `json:"home" example:"2"`
	Away    int `json:"away" example:"1"`
}

type SubmitPredictionsRequestDTO struct {
	Predictions []PredictionEntryDTO `json:"predictions"`
}

type SubmitPredictionsResponseDTO struct {
	CreditSpent int64 `json:"credit_spent" example:"100"`
}

type InsufficientCreditsResponseDTO struct {
	Message   string `json:"message" example:"insufficient credits"`
	Required  int64  `json:"required" example:"200"`
	Available int64  `json:"available" example:"120"`
}

type GetPredictionsResponseDTO struct {
	EventID     int   `json:"event_id" example:"12"`
	Home        int   `json:"home" example:"2"`
	Away        int   `json:"away" example:"1"`
	CreditSpent int64 `json:"credit_spent" example:"100"`
	Points      int   `json:"points" example:"6"`
}
