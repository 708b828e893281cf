package model

import "time"

// NoAnswer подставляется, если кандидат ничего не ввел до истечения времени
const NoAnswer = "No answer"

// Answer ответ кандидата на один вопрос
type Answer struct {
	Question string `json:"q"`
	Answer   string `json:"ans"`
}

// Candidate запись о кандидате. Score и Summary заполняются один раз при завершении интервью.
type Candidate struct {
	ID          string     `json:"id,omitempty"`
	Name        string     `json:"name"`
	Answers     []Answer   `json:"answers"`
	Score       *int       `json:"score"`
	Summary     string     `json:"summary"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Finalized true, если интервью завершено и оценка выставлена
func (c Candidate) Finalized() bool {
	return c.Score != nil
}

// Clone глубокая копия записи
func (c Candidate) Clone() Candidate {
	out := c
	out.Answers = make([]Answer, len(c.Answers))
	copy(out.Answers, c.Answers)
	if c.Score != nil {
		score := *c.Score
		out.Score = &score
	}
	if c.CompletedAt != nil {
		completedAt := *c.CompletedAt
		out.CompletedAt = &completedAt
	}
	return out
}
