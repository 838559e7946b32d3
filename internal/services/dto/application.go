package dto

import "time"

type ApplicationResponse struct {
	ID            string       `json:"id"`
	JobID         string       `json:"jobId"`
	CandidateID   string       `json:"candidateId"`
	Status        string       `json:"status"`
	AppliedAt     time.Time    `json:"appliedAt"`
	CoinsDeducted *int         `json:"coinsDeducted"`
	Job           *JobResponse `json:"job,omitempty"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending reviewing shortlisted rejected hired"`
}

type ApplicationCheckResponse struct {
	HasApplied bool `json:"hasApplied"`
}

type SavedJobResponse struct {
	ID      string       `json:"id"`
	JobID   string       `json:"jobId"`
	SavedAt time.Time    `json:"savedAt"`
	Job     *JobResponse `json:"job,omitempty"`
}

type SavedJobCheckResponse struct {
	IsSaved bool `json:"isSaved"`
}

type CoinBalanceResponse struct {
	Coins int `json:"coins"`
	Score int `json:"score"`
}

type CoinCheckResponse struct {
	HasEnough bool `json:"hasEnough"`
	Coins     int  `json:"coins"`
}
