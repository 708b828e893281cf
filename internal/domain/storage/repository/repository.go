package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/IT-Nick/interview-assistant/internal/domain/model"
	"github.com/IT-Nick/interview-assistant/internal/infra/kv"
)

// Ключи, под которыми хранятся данные приложения
const (
	KeyQuestionBank   = "questionBank"
	KeyCandidates     = "candidates"
	KeyCurrentSession = "currentSession"
)

// SessionStore репозиторий для банка вопросов, списка кандидатов и снапшота активного интервью.
// Три значения независимы: каждое перезаписывается целиком своим владельцем.
type SessionStore struct {
	kv kv.Store
}

// NewSessionStore создает новый экземпляр SessionStore
func NewSessionStore(store kv.Store) *SessionStore {
	return &SessionStore{kv: store}
}

// SaveBank сохраняет банк вопросов
func (r *SessionStore) SaveBank(ctx context.Context, bank model.Bank) error {
	return r.save(ctx, KeyQuestionBank, bank)
}

// LoadBank загружает банк вопросов. Отсутствующее или испорченное значение дает false.
func (r *SessionStore) LoadBank(ctx context.Context) (model.Bank, bool) {
	var bank model.Bank
	if !r.load(ctx, KeyQuestionBank, &bank) {
		return model.Bank{}, false
	}
	return bank, true
}

// SaveCandidates сохраняет список завершенных интервью
func (r *SessionStore) SaveCandidates(ctx context.Context, candidates []model.Candidate) error {
	if candidates == nil {
		candidates = []model.Candidate{}
	}
	return r.save(ctx, KeyCandidates, candidates)
}

// LoadCandidates загружает список завершенных интервью
func (r *SessionStore) LoadCandidates(ctx context.Context) ([]model.Candidate, bool) {
	var candidates []model.Candidate
	if !r.load(ctx, KeyCandidates, &candidates) {
		return nil, false
	}
	return candidates, true
}

// SaveSnapshot сохраняет состояние активного интервью
func (r *SessionStore) SaveSnapshot(ctx context.Context, snapshot model.Snapshot) error {
	return r.save(ctx, KeyCurrentSession, snapshot)
}

// LoadSnapshot загружает состояние незавершенного интервью.
// Снапшот, из которого нельзя восстановить сессию, считается отсутствующим.
func (r *SessionStore) LoadSnapshot(ctx context.Context) (model.Snapshot, bool) {
	var snapshot model.Snapshot
	if !r.load(ctx, KeyCurrentSession, &snapshot) {
		return model.Snapshot{}, false
	}
	if err := snapshot.Validate(); err != nil {
		log.Printf("Stored interview session is unusable, ignoring it: %v", err)
		return model.Snapshot{}, false
	}
	return snapshot, true
}

// ClearSnapshot удаляет состояние активного интервью
func (r *SessionStore) ClearSnapshot(ctx context.Context) error {
	if err := r.kv.Delete(ctx, KeyCurrentSession); err != nil {
		return fmt.Errorf("failed to clear %s: %w", KeyCurrentSession, err)
	}
	return nil
}

func (r *SessionStore) save(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	if err := r.kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// load ошибки чтения и разбора не пробрасываются: вызывающий получает значения по умолчанию
func (r *SessionStore) load(ctx context.Context, key string, dst any) bool {
	data, ok, err := r.kv.Get(ctx, key)
	if err != nil {
		log.Printf("Failed to read %s, falling back to defaults: %v", key, err)
		return false
	}
	if !ok || len(data) == 0 {
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		log.Printf("Failed to parse %s, falling back to defaults: %v", key, err)
		return false
	}
	return true
}
