package service

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/IT-Nick/interview-assistant/internal/domain/model"
)

// BankRepository хранилище банка вопросов
type BankRepository interface {
	SaveBank(ctx context.Context, bank model.Bank) error
	LoadBank(ctx context.Context) (model.Bank, bool)
}

// BankService банк вопросов. Каждое изменение сразу сохраняется целиком.
type BankService struct {
	repo BankRepository

	mu   sync.RWMutex
	bank model.Bank
}

// NewBankService загружает банк из хранилища. Если банка нет, сохраняется банк по умолчанию.
func NewBankService(ctx context.Context, repo BankRepository) *BankService {
	s := &BankService{repo: repo}
	if bank, ok := repo.LoadBank(ctx); ok {
		s.bank = bank
		log.Printf("Question bank loaded: %d questions", bank.Len())
		return s
	}
	s.bank = model.DefaultBank()
	if err := repo.SaveBank(ctx, s.bank); err != nil {
		log.Printf("Failed to save default question bank: %v", err)
	}
	return s
}

// Bank возвращает копию текущего банка
func (s *BankService) Bank() model.Bank {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bank.Clone()
}

// Append проверяет вопрос, добавляет его в конец уровня и сохраняет банк
func (s *BankService) Append(ctx context.Context, tier string, text string, timeLimit int) (model.Question, error) {
	q, err := model.NewQuestion(tier, text, timeLimit)
	if err != nil {
		return model.Question{}, err
	}

	s.mu.Lock()
	s.bank = s.bank.Append(q)
	snapshot := s.bank.Clone()
	s.mu.Unlock()

	if err := s.repo.SaveBank(ctx, snapshot); err != nil {
		return q, fmt.Errorf("failed to persist question bank: %w", err)
	}
	log.Printf("Question added to %s level: %q (%ds)", q.Tier, q.Text, q.TimeLimit)
	return q, nil
}
