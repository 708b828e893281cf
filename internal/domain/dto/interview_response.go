package dto

import (
	"time"

	"github.com/IT-Nick/interview-assistant/internal/domain/model"
)

// InterviewResponse состояние интервью для интерфейса кандидата
type InterviewResponse struct {
	SessionID       string         `json:"session_id"`
	CandidateName   string         `json:"candidate_name"`
	QuestionNumber  int            `json:"question_number"`
	TotalQuestions  int            `json:"total_questions"`
	Index           int            `json:"index"`
	Question        QuestionInfo   `json:"question"`
	RemainingTime   int            `json:"remaining_time"`
	Draft           string         `json:"draft"`
	PreviousAnswers []model.Answer `json:"previous_answers"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

type QuestionInfo struct {
	Level     model.Tier `json:"level"`
	Text      string     `json:"text"`
	TimeLimit int        `json:"time"`
}

// NewInterviewResponse собирает ответ из снапшота
func NewInterviewResponse(s model.Snapshot) InterviewResponse {
	resp := InterviewResponse{
		SessionID:       s.ID,
		CandidateName:   s.Candidate.Name,
		QuestionNumber:  s.CurrentIndex + 1,
		TotalQuestions:  len(s.Questions),
		Index:           s.CurrentIndex,
		RemainingTime:   s.Remaining,
		Draft:           s.Draft,
		PreviousAnswers: s.Candidate.Answers,
		UpdatedAt:       s.UpdatedAt,
	}
	if resp.PreviousAnswers == nil {
		resp.PreviousAnswers = []model.Answer{}
	}
	if q, ok := s.CurrentQuestion(); ok {
		resp.Question = QuestionInfo{Level: q.Tier, Text: q.Text, TimeLimit: q.TimeLimit}
	}
	return resp
}

// SubmitResponse результат отправки ответа
type SubmitResponse struct {
	Accepted  bool               `json:"accepted"`
	Completed bool               `json:"completed"`
	Next      *InterviewResponse `json:"next,omitempty"`
	Result    *CandidateDetail   `json:"result,omitempty"`
}
