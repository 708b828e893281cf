package model

import "time"

// Snapshot сохраненное состояние активного интервью.
// Наличие снапшота в хранилище означает, что есть сессия, которую можно продолжить.
type Snapshot struct {
	ID           string     `json:"id"`
	Candidate    Candidate  `json:"candidate"`
	Questions    []Question `json:"questions"`
	CurrentIndex int        `json:"currentQ"`
	Remaining    int        `json:"timer"` // секунды до автоматической отправки ответа
	Draft        string     `json:"answer"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// CurrentQuestion возвращает текущий вопрос, false если индекс вне набора
func (s Snapshot) CurrentQuestion() (Question, bool) {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Questions) {
		return Question{}, false
	}
	return s.Questions[s.CurrentIndex], true
}

// Validate проверяет, что из снапшота можно восстановить сессию
func (s Snapshot) Validate() error {
	if len(s.Questions) == 0 {
		return &ValidationError{Field: "questions", Message: "snapshot has no questions"}
	}
	if _, ok := s.CurrentQuestion(); !ok {
		return &ValidationError{Field: "currentQ", Message: "current question index is out of range"}
	}
	if s.Remaining < 0 {
		return &ValidationError{Field: "timer", Message: "remaining time is negative"}
	}
	if len(s.Candidate.Answers) != s.CurrentIndex {
		return &ValidationError{Field: "candidate.answers", Message: "answers do not match current question index"}
	}
	return nil
}

func (s Snapshot) Clone() Snapshot {
	out := s
	out.Candidate = s.Candidate.Clone()
	out.Questions = make([]Question, len(s.Questions))
	copy(out.Questions, s.Questions)
	return out
}
