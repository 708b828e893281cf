package service

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/IT-Nick/interview-assistant/internal/domain/model"
	"github.com/google/uuid"
)

// CandidateRepository хранилище завершенных интервью
type CandidateRepository interface {
	SaveCandidates(ctx context.Context, candidates []model.Candidate) error
	LoadCandidates(ctx context.Context) ([]model.Candidate, bool)
}

// Ledger журнал завершенных интервью. Записи только добавляются,
// одинаковые имена допускаются.
type Ledger struct {
	repo CandidateRepository

	mu         sync.RWMutex
	candidates []model.Candidate
}

// NewLedger загружает журнал из хранилища, при отсутствии данных журнал пуст
func NewLedger(ctx context.Context, repo CandidateRepository) *Ledger {
	l := &Ledger{repo: repo}
	if candidates, ok := repo.LoadCandidates(ctx); ok {
		l.candidates = candidates
	}
	// записи из старых версий могли не иметь идентификатора
	for i := range l.candidates {
		if l.candidates[i].ID == "" {
			l.candidates[i].ID = uuid.NewString()
		}
	}
	return l
}

// Append добавляет завершенную запись и сохраняет весь список
func (l *Ledger) Append(ctx context.Context, record model.Candidate) error {
	if !record.Finalized() {
		return fmt.Errorf("candidate %q has no score: %w", record.Name, model.ErrValidation)
	}
	record = record.Clone()
	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	l.mu.Lock()
	l.candidates = append(l.candidates, record)
	snapshot := l.cloneLocked()
	l.mu.Unlock()

	if err := l.repo.SaveCandidates(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to persist candidates: %w", err)
	}
	log.Printf("Candidate %q recorded with score %d", record.Name, *record.Score)
	return nil
}

// List возвращает записи в порядке добавления
func (l *Ledger) List() []model.Candidate {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cloneLocked()
}

// Get ищет запись по идентификатору
func (l *Ledger) Get(id string) (model.Candidate, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, c := range l.candidates {
		if c.ID == id {
			return c.Clone(), true
		}
	}
	return model.Candidate{}, false
}

func (l *Ledger) cloneLocked() []model.Candidate {
	out := make([]model.Candidate, 0, len(l.candidates))
	for _, c := range l.candidates {
		out = append(out, c.Clone())
	}
	return out
}
