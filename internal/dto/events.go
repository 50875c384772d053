package dto

import "time"

type CreateEventRequestDTO struct {
	Home    string    `json:"home" example:"Hungary"`
	Away    string    `json:"away" example:"Portugal"`
	Kickoff time.Time `json:"kickoff" example:"2026-06-14T18:00:00Z"`
	Cost    int64     `json:"cost" example:"100"`
	IsFinal bool      `json:"is_final" example:"false"`
	Status  string    `json:"status,omitempty" example:"OPEN"`
}

type EventResponseDTO struct {
	ID         int       `json:"id" example:"12"`
	Home       string    `json:"home" example:"Hungary"`
	Away       string    `json:"away" example:"Portugal"`
	Kickoff    time.Time `json:"kickoff" example:"2026-06-14T18:00:00Z"`
	Status     string    `json:"status" example:"OPEN"`
	Cost       int64     `json:"cost" example:"100"`
	IsFinal    bool      `json:"is_final" example:"false"`
	ResultHome *int      `json:"result_home,omitempty" example:"3"`
	ResultAway *int      `json:"result_away,omitempty" example:"1"`
}

type PostResultRequestDTO struct {
	Home int `json:"home" example:"3"`
	Away int `json:"away" example:"1"`
}

type PostResultResponseDTO struct {
	PoolDistributed bool  `json:"pool_distributed" example:"true"`
	Winners         []int `json:"winners"`
	PoolCarry       int64 `json:"pool_carry" example:"0"`
}

type DeleteEventResponseDTO struct {
	DeletedPredictionsCount int64 `json:"deleted_predictions_count" example:"7"`
}
