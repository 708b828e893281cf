package service

import (
	"math/rand/v2"

	"github.com/IT-Nick/interview-assistant/internal/domain/model"
)

// DefaultPerTier сколько вопросов каждого уровня попадает в интервью
const DefaultPerTier = 2

// Selector выбирает случайный набор вопросов для одного интервью.
type Selector struct {
	perTier int
	shuffle func(n int, swap func(i, j int))
}

// NewSelector создает Selector. perTier <= 0 заменяется значением по умолчанию.
func NewSelector(perTier int) *Selector {
	if perTier <= 0 {
		perTier = DefaultPerTier
	}
	return &Selector{perTier: perTier, shuffle: rand.Shuffle}
}

// PerTier количество вопросов на уровень
func (s *Selector) PerTier() int {
	return s.perTier
}

// Select берет perTier вопросов каждого уровня без повторов:
// сначала легкие, затем средние, затем сложные.
func (s *Selector) Select(bank model.Bank) ([]model.Question, error) {
	for _, tier := range model.Tiers() {
		if have := len(bank.Questions(tier)); have < s.perTier {
			return nil, &model.InsufficientQuestionsError{Tier: tier, Have: have, Need: s.perTier}
		}
	}

	result := make([]model.Question, 0, s.perTier*len(model.Tiers()))
	for _, tier := range model.Tiers() {
		result = append(result, s.pick(bank.Questions(tier))...)
	}
	return result, nil
}

// pick перемешивает копию списка и возвращает первые perTier элементов.
func (s *Selector) pick(questions []model.Question) []model.Question {
	s.shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	return questions[:s.perTier]
}
