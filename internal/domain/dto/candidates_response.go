package dto

import (
	"time"

	"github.com/IT-Nick/interview-assistant/internal/domain/model"
)

// CandidatesResponse таблица результатов
type CandidatesResponse struct {
	Total      int                `json:"total"`
	Candidates []CandidateSummary `json:"candidates"`
}

type CandidateSummary struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Score       *int       `json:"score"`
	Summary     string     `json:"summary"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// CandidateDetail история ответов кандидата
type CandidateDetail struct {
	CandidateSummary
	StartedAt time.Time      `json:"started_at"`
	Answers   []model.Answer `json:"answers"`
}

func NewCandidateSummary(c model.Candidate) CandidateSummary {
	return CandidateSummary{
		ID:          c.ID,
		Name:        c.Name,
		Score:       c.Score,
		Summary:     c.Summary,
		CompletedAt: c.CompletedAt,
	}
}

func NewCandidateDetail(c model.Candidate) CandidateDetail {
	answers := c.Answers
	if answers == nil {
		answers = []model.Answer{}
	}
	return CandidateDetail{
		CandidateSummary: NewCandidateSummary(c),
		StartedAt:        c.StartedAt,
		Answers:          answers,
	}
}

func NewCandidatesResponse(list []model.Candidate) CandidatesResponse {
	resp := CandidatesResponse{Total: len(list), Candidates: make([]CandidateSummary, 0, len(list))}
	for _, c := range list {
		resp.Candidates = append(resp.Candidates, NewCandidateSummary(c))
	}
	return resp
}
