package dto

type StandingsEntryDTO struct {
	UserID  int    `json:"user_id" example:"1"`
	Name    string `json:"name" example:"anna"`
	Score   int64  `json:"score" example:"42"`
	Credits int64  `json:"credits" example:"360"`
}

type GlobalPoolResponseDTO struct {
	Total int64 `json:"total" example:"1240"`
}
