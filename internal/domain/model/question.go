package model

import (
	"fmt"
	"strings"
)

// Tier уровень сложности вопроса
type Tier string

const (
	TierEasy   Tier = "Easy"
	TierMedium Tier = "Medium"
	TierHard   Tier = "Hard"
)

// Tiers возвращает уровни в порядке прохождения интервью
func Tiers() []Tier {
	return []Tier{TierEasy, TierMedium, TierHard}
}

// ParseTier разбирает название уровня без учета регистра
func ParseTier(s string) (Tier, error) {
	for _, t := range Tiers() {
		if strings.EqualFold(strings.TrimSpace(s), string(t)) {
			return t, nil
		}
	}
	return "", &ValidationError{Field: "level", Message: fmt.Sprintf("unknown level %q", s)}
}

// Question представляет вопрос из банка. После создания не изменяется.
type Question struct {
	Tier      Tier   `json:"level"`
	Text      string `json:"text"`
	TimeLimit int    `json:"time"` // секунды
}

// NewQuestion проверяет поля и создает вопрос
func NewQuestion(tier string, text string, timeLimit int) (Question, error) {
	t, err := ParseTier(tier)
	if err != nil {
		return Question{}, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return Question{}, &ValidationError{Field: "text", Message: "question text is required"}
	}
	if timeLimit <= 0 {
		return Question{}, &ValidationError{Field: "time", Message: "time limit must be a positive number of seconds"}
	}
	return Question{Tier: t, Text: text, TimeLimit: timeLimit}, nil
}

// Bank банк вопросов, сгруппированный по уровням.
// Растет только добавлением в конец.
type Bank struct {
	Easy   []Question `json:"easy"`
	Medium []Question `json:"medium"`
	Hard   []Question `json:"hard"`
}

// Questions возвращает копию списка вопросов уровня
func (b Bank) Questions(t Tier) []Question {
	var src []Question
	switch t {
	case TierEasy:
		src = b.Easy
	case TierMedium:
		src = b.Medium
	case TierHard:
		src = b.Hard
	}
	out := make([]Question, len(src))
	copy(out, src)
	return out
}

// Append возвращает новый банк с вопросом, добавленным в конец своего уровня.
// Исходный банк не меняется.
func (b Bank) Append(q Question) Bank {
	next := b.Clone()
	switch q.Tier {
	case TierEasy:
		next.Easy = append(next.Easy, q)
	case TierMedium:
		next.Medium = append(next.Medium, q)
	case TierHard:
		next.Hard = append(next.Hard, q)
	}
	return next
}

// Len общее количество вопросов
func (b Bank) Len() int {
	return len(b.Easy) + len(b.Medium) + len(b.Hard)
}

func (b Bank) Clone() Bank {
	return Bank{
		Easy:   b.Questions(TierEasy),
		Medium: b.Questions(TierMedium),
		Hard:   b.Questions(TierHard),
	}
}

// DefaultBank банк, с которым приложение стартует впервые
func DefaultBank() Bank {
	return Bank{
		Easy: []Question{
			{Tier: TierEasy, Text: "What are the features of Java?", TimeLimit: 20},
			{Tier: TierEasy, Text: "What is JVM, JRE, and JDK?", TimeLimit: 20},
			{Tier: TierEasy, Text: "What is the difference between == and .equals()?", TimeLimit: 20},
		},
		Medium: []Question{
			{Tier: TierMedium, Text: "Explain OOPs in Java with examples.", TimeLimit: 60},
			{Tier: TierMedium, Text: "What is Spring Boot and why is it used?", TimeLimit: 60},
			{Tier: TierMedium, Text: "How do you connect React frontend with Java backend?", TimeLimit: 60},
		},
		Hard: []Question{
			{Tier: TierHard, Text: "How does garbage collection work in Java?", TimeLimit: 120},
			{Tier: TierHard, Text: "Explain microservices with Spring Boot.", TimeLimit: 120},
			{Tier: TierHard, Text: "Explain JWT authentication in a full-stack project.", TimeLimit: 120},
		},
	}
}
