package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/IT-Nick/interview-assistant/internal/domain/model"
	"github.com/IT-Nick/interview-assistant/internal/infra/metrics"
	"github.com/IT-Nick/interview-assistant/internal/infra/timer"
)

// SessionRepository хранилище снапшота с возможностью чтения при старте
type SessionRepository interface {
	SnapshotRepository
	LoadSnapshot(ctx context.Context) (model.Snapshot, bool)
}

// BankProvider источник текущего банка вопросов
type BankProvider interface {
	Bank() model.Bank
}

// QuestionSelector выбирает набор вопросов для интервью
type QuestionSelector interface {
	Select(bank model.Bank) ([]model.Question, error)
}

// EventType тип уведомления об интервью
type EventType string

const (
	// EventQuestion показан новый вопрос: старт, продолжение или переход
	EventQuestion  EventType = "question"
	EventCompleted EventType = "completed"
	EventDiscarded EventType = "discarded"
)

// Event уведомление для интерфейсов (HTTP, Telegram)
type Event struct {
	Type     EventType
	Snapshot model.Snapshot
	Record   *model.Candidate
	Resumed  bool
	TimedOut bool // предыдущий вопрос закрыт по таймеру
}

// Options настройки Manager
type Options struct {
	TickInterval time.Duration
	Scorer       Scorer
	Metrics      *metrics.Metrics
}

// Manager держит единственную активную сессию процесса и ее таймер.
type Manager struct {
	repo     SessionRepository
	ledger   CandidateLedger
	bank     BankProvider
	selector QuestionSelector
	opts     Options

	mu     sync.Mutex
	active *Session
	ticker *timer.Ticker

	listenersMu sync.RWMutex
	listeners   []func(Event)
}

// NewManager создает новый экземпляр Manager
func NewManager(repo SessionRepository, ledger CandidateLedger, bank BankProvider, selector QuestionSelector, opts Options) *Manager {
	if opts.TickInterval <= 0 {
		opts.TickInterval = time.Second
	}
	if opts.Scorer == nil {
		opts.Scorer = RandomScore
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.NewMetrics()
	}
	return &Manager{
		repo:     repo,
		ledger:   ledger,
		bank:     bank,
		selector: selector,
		opts:     opts,
	}
}

// Subscribe регистрирует получателя уведомлений. Вызывается синхронно из перехода.
func (m *Manager) Subscribe(fn func(Event)) {
	m.listenersMu.Lock()
	defer m.listenersMu.Unlock()
	m.listeners = append(m.listeners, fn)
}

// Start начинает новое интервью. Пока есть активная сессия или
// сохраненный снапшот, новое интервью начать нельзя.
func (m *Manager) Start(ctx context.Context, candidateName string) (model.Snapshot, error) {
	if strings.TrimSpace(candidateName) == "" {
		return model.Snapshot{}, &model.ValidationError{Field: "name", Message: "please enter candidate name"}
	}

	m.mu.Lock()
	if m.active != nil {
		m.mu.Unlock()
		return model.Snapshot{}, model.ErrSessionActive
	}
	if _, ok := m.repo.LoadSnapshot(ctx); ok {
		m.mu.Unlock()
		return model.Snapshot{}, model.ErrSessionPending
	}

	questions, err := m.selector.Select(m.bank.Bank())
	if err != nil {
		m.mu.Unlock()
		return model.Snapshot{}, fmt.Errorf("failed to select questions: %w", err)
	}

	s := NewSession(m.repo, m.ledger, m.opts.Scorer)
	if err := s.Start(ctx, candidateName, questions); err != nil {
		m.mu.Unlock()
		return model.Snapshot{}, err
	}
	m.activateLocked(s)
	m.mu.Unlock()

	m.opts.Metrics.IncrementInterviewsStarted()
	snap := s.Snapshot()
	m.emit(Event{Type: EventQuestion, Snapshot: snap})
	return snap, nil
}

// Pending возвращает сохраненный снапшот, который можно продолжить.
// Пока сессия активна, ничего не возвращает.
func (m *Manager) Pending(ctx context.Context) (model.Snapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active != nil {
		return model.Snapshot{}, false
	}
	return m.repo.LoadSnapshot(ctx)
}

// Resume восстанавливает сессию из снапшота ровно в сохраненном состоянии
func (m *Manager) Resume(ctx context.Context) (model.Snapshot, error) {
	m.mu.Lock()
	if m.active != nil {
		m.mu.Unlock()
		return model.Snapshot{}, model.ErrSessionActive
	}
	snapshot, ok := m.repo.LoadSnapshot(ctx)
	if !ok {
		m.mu.Unlock()
		return model.Snapshot{}, model.ErrNoSession
	}
	s, err := RestoreSession(m.repo, m.ledger, m.opts.Scorer, snapshot)
	if err != nil {
		m.mu.Unlock()
		return model.Snapshot{}, err
	}
	m.activateLocked(s)
	m.mu.Unlock()

	log.Printf("Interview %s resumed for %q at question %d with %ds left",
		snapshot.ID, snapshot.Candidate.Name, snapshot.CurrentIndex+1, snapshot.Remaining)
	m.opts.Metrics.IncrementInterviewsResumed()
	snap := s.Snapshot()
	m.emit(Event{Type: EventQuestion, Snapshot: snap, Resumed: true})
	return snap, nil
}

// Discard отбрасывает активную или сохраненную сессию. Журнал кандидатов не меняется.
// Мьютекс держится до удаления снапшота, чтобы Resume не восстановил отброшенную сессию.
func (m *Manager) Discard(ctx context.Context) error {
	m.mu.Lock()
	var snap model.Snapshot
	if s := m.active; s != nil {
		m.deactivateLocked()
		s.Close()
		snap = s.Snapshot()
	} else if pending, ok := m.repo.LoadSnapshot(ctx); ok {
		snap = pending
	} else {
		m.mu.Unlock()
		return model.ErrNoSession
	}
	err := m.repo.ClearSnapshot(ctx)
	m.mu.Unlock()

	if err != nil {
		return fmt.Errorf("failed to discard session: %w", err)
	}
	log.Printf("Interview session %s discarded", snap.ID)
	m.opts.Metrics.IncrementInterviewsDiscarded()
	m.emit(Event{Type: EventDiscarded, Snapshot: snap})
	return nil
}

// Submit отправляет ответ на вопрос index активной сессии
func (m *Manager) Submit(ctx context.Context, index int, answer string) (Outcome, error) {
	s := m.current()
	if s == nil {
		return Outcome{}, model.ErrNoSession
	}
	out := s.Submit(ctx, index, answer)
	m.handleOutcome(s, out)
	return out, nil
}

// SetDraft сохраняет черновик ответа на вопрос index
func (m *Manager) SetDraft(ctx context.Context, index int, draft string) (bool, error) {
	s := m.current()
	if s == nil {
		return false, model.ErrNoSession
	}
	return s.SetDraft(ctx, index, draft), nil
}

// Current снапшот активной сессии
func (m *Manager) Current() (model.Snapshot, bool) {
	s := m.current()
	if s == nil {
		return model.Snapshot{}, false
	}
	return s.Snapshot(), true
}

// Close останавливает таймер при завершении процесса. Снапшот остается в хранилище.
func (m *Manager) Close() {
	m.mu.Lock()
	s := m.active
	m.deactivateLocked()
	m.mu.Unlock()

	if s != nil {
		s.Close()
		log.Printf("Interview %s suspended, it can be resumed after restart", s.Snapshot().ID)
	}
}

func (m *Manager) current() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

func (m *Manager) activateLocked(s *Session) {
	m.active = s
	name := "interview " + s.Snapshot().ID
	m.ticker = timer.Start(context.Background(), name, m.opts.TickInterval, func(ctx context.Context) bool {
		return m.tick(ctx, s)
	})
}

func (m *Manager) deactivateLocked() {
	if m.ticker != nil {
		m.ticker.Stop()
		m.ticker = nil
	}
	m.active = nil
}

func (m *Manager) tick(ctx context.Context, s *Session) bool {
	out := s.Tick(ctx)
	m.handleOutcome(s, out)
	return s.State() == StateInProgress
}

// handleOutcome снимает завершенную сессию и рассылает уведомления
func (m *Manager) handleOutcome(s *Session, out Outcome) {
	if !out.Accepted {
		return
	}
	m.opts.Metrics.IncrementAnswers(out.TimedOut)

	if !out.Completed {
		m.emit(Event{Type: EventQuestion, Snapshot: out.Snapshot, TimedOut: out.TimedOut})
		return
	}

	m.mu.Lock()
	if m.active == s {
		m.deactivateLocked()
	}
	m.mu.Unlock()

	m.opts.Metrics.IncrementInterviewsCompleted()
	m.emit(Event{Type: EventCompleted, Snapshot: out.Snapshot, Record: out.Record, TimedOut: out.TimedOut})
}

func (m *Manager) emit(ev Event) {
	m.listenersMu.RLock()
	listeners := make([]func(Event), len(m.listeners))
	copy(listeners, m.listeners)
	m.listenersMu.RUnlock()

	for _, fn := range listeners {
		fn(ev)
	}
}

// Metrics счетчики интервью
func (m *Manager) Metrics() metrics.Snapshot {
	return m.opts.Metrics.GetSnapshot()
}
