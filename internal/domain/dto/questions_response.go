package dto

import "github.com/IT-Nick/interview-assistant/internal/domain/model"

// QuestionBankResponse банк вопросов с количеством по уровням
type QuestionBankResponse struct {
	Bank   model.Bank         `json:"bank"`
	Counts map[model.Tier]int `json:"counts"`
}

func NewQuestionBankResponse(bank model.Bank) QuestionBankResponse {
	counts := make(map[model.Tier]int, len(model.Tiers()))
	for _, tier := range model.Tiers() {
		counts[tier] = len(bank.Questions(tier))
	}
	return QuestionBankResponse{Bank: bank, Counts: counts}
}
