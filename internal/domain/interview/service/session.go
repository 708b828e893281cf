package service

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/IT-Nick/interview-assistant/internal/domain/model"
	"github.com/google/uuid"
)

// State состояние интервью
type State int

const (
	StateNotStarted State = iota
	StateInProgress
	StateCompleted
	// StateClosed сессия отброшена или отсоединена при остановке приложения
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateInProgress:
		return "in_progress"
	case StateCompleted:
		return "completed"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// SnapshotRepository хранилище снапшота активного интервью
type SnapshotRepository interface {
	SaveSnapshot(ctx context.Context, snapshot model.Snapshot) error
	ClearSnapshot(ctx context.Context) error
}

// CandidateLedger журнал, куда попадает запись после завершения интервью
type CandidateLedger interface {
	Append(ctx context.Context, record model.Candidate) error
}

// Scorer выставляет оценку завершенному интервью
type Scorer func(candidate model.Candidate) int

// RandomScore оценка-заглушка: случайное число от 0 до 100
func RandomScore(model.Candidate) int {
	return rand.IntN(101)
}

// Outcome результат перехода
type Outcome struct {
	Accepted  bool // ответ записан
	TimedOut  bool // ответ отправлен по истечении времени
	Completed bool
	Snapshot  model.Snapshot
	Record    *model.Candidate // заполняется при завершении
}

// Session конечный автомат одного интервью.
// Tick, Submit и SetDraft сериализуются мьютексом, поэтому таймер и ручная
// отправка не могут дважды продвинуть один и тот же вопрос.
type Session struct {
	repo   SnapshotRepository
	ledger CandidateLedger
	scorer Scorer
	now    func() time.Time

	mu       sync.Mutex
	state    State
	snapshot model.Snapshot
}

// NewSession создает сессию в состоянии NotStarted
func NewSession(repo SnapshotRepository, ledger CandidateLedger, scorer Scorer) *Session {
	if scorer == nil {
		scorer = RandomScore
	}
	return &Session{
		repo:   repo,
		ledger: ledger,
		scorer: scorer,
		now:    func() time.Time { return time.Now().UTC() },
		state:  StateNotStarted,
	}
}

// RestoreSession восстанавливает сессию из снапшота без сброса таймера
func RestoreSession(repo SnapshotRepository, ledger CandidateLedger, scorer Scorer, snapshot model.Snapshot) (*Session, error) {
	if err := snapshot.Validate(); err != nil {
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}
	s := NewSession(repo, ledger, scorer)
	s.snapshot = snapshot.Clone()
	s.state = StateInProgress
	return s, nil
}

// Start начинает интервью с первого вопроса набора
func (s *Session) Start(ctx context.Context, candidateName string, questions []model.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateNotStarted {
		return fmt.Errorf("session is %s: %w", s.state, model.ErrSessionActive)
	}
	name := strings.TrimSpace(candidateName)
	if name == "" {
		return &model.ValidationError{Field: "name", Message: "please enter candidate name"}
	}
	if len(questions) == 0 {
		return &model.ValidationError{Field: "questions", Message: "question set is empty"}
	}
	for i, q := range questions {
		if q.TimeLimit <= 0 {
			return &model.ValidationError{Field: "questions", Message: fmt.Sprintf("question %d has no time limit", i+1)}
		}
	}

	qs := make([]model.Question, len(questions))
	copy(qs, questions)
	s.snapshot = model.Snapshot{
		ID: uuid.NewString(),
		Candidate: model.Candidate{
			ID:        uuid.NewString(),
			Name:      name,
			Answers:   []model.Answer{},
			StartedAt: s.now(),
		},
		Questions:    qs,
		CurrentIndex: 0,
		Remaining:    qs[0].TimeLimit,
	}
	s.state = StateInProgress
	s.persistLocked(ctx)
	log.Printf("Interview %s started for %q with %d questions", s.snapshot.ID, name, len(qs))
	return nil
}

// Tick уменьшает оставшееся время на секунду. Когда время выходит,
// текущий черновик отправляется как ответ.
func (s *Session) Tick(ctx context.Context) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInProgress {
		return Outcome{Snapshot: s.snapshot.Clone()}
	}
	if s.snapshot.Remaining > 0 {
		s.snapshot.Remaining--
		if s.snapshot.Remaining > 0 {
			s.persistLocked(ctx)
			return Outcome{Snapshot: s.snapshot.Clone()}
		}
	}
	log.Printf("Interview %s: time is up for question %d", s.snapshot.ID, s.snapshot.CurrentIndex+1)
	return s.submitLocked(ctx, s.snapshot.Draft, true)
}

// Submit записывает ответ на вопрос с индексом index.
// Если вопрос уже сменился или интервью не идет, вызов ничего не меняет.
func (s *Session) Submit(ctx context.Context, index int, answer string) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInProgress || index != s.snapshot.CurrentIndex {
		return Outcome{Snapshot: s.snapshot.Clone()}
	}
	return s.submitLocked(ctx, answer, false)
}

// SetDraft сохраняет набираемый ответ на текущий вопрос
func (s *Session) SetDraft(ctx context.Context, index int, draft string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInProgress || index != s.snapshot.CurrentIndex {
		return false
	}
	if s.snapshot.Draft == draft {
		return true
	}
	s.snapshot.Draft = draft
	s.persistLocked(ctx)
	return true
}

// Close останавливает сессию без изменения хранилища. Последующие тики игнорируются.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateInProgress || s.state == StateNotStarted {
		s.state = StateClosed
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Snapshot копия текущего состояния
func (s *Session) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot.Clone()
}

func (s *Session) submitLocked(ctx context.Context, answer string, timedOut bool) Outcome {
	snap := &s.snapshot
	q := snap.Questions[snap.CurrentIndex]
	if strings.TrimSpace(answer) == "" {
		answer = model.NoAnswer
	}
	snap.Candidate.Answers = append(snap.Candidate.Answers, model.Answer{Question: q.Text, Answer: answer})
	snap.Draft = ""

	if snap.CurrentIndex+1 < len(snap.Questions) {
		snap.CurrentIndex++
		snap.Remaining = snap.Questions[snap.CurrentIndex].TimeLimit
		s.persistLocked(ctx)
		return Outcome{Accepted: true, TimedOut: timedOut, Snapshot: snap.Clone()}
	}

	return s.completeLocked(ctx, timedOut)
}

func (s *Session) completeLocked(ctx context.Context, timedOut bool) Outcome {
	snap := &s.snapshot
	score := clampScore(s.scorer(snap.Candidate.Clone()))
	completedAt := s.now()
	snap.Candidate.Score = &score
	snap.Candidate.Summary = fmt.Sprintf("Candidate %s scored %d%%.", snap.Candidate.Name, score)
	snap.Candidate.CompletedAt = &completedAt
	snap.Remaining = 0
	s.state = StateCompleted

	record := snap.Candidate.Clone()
	if err := s.ledger.Append(ctx, record); err != nil {
		log.Printf("Interview %s: failed to record candidate %q: %v", snap.ID, record.Name, err)
	}
	if err := s.repo.ClearSnapshot(ctx); err != nil {
		log.Printf("Interview %s: failed to clear session snapshot: %v", snap.ID, err)
	}
	log.Printf("Interview %s completed: %s", snap.ID, record.Summary)

	return Outcome{Accepted: true, TimedOut: timedOut, Completed: true, Snapshot: snap.Clone(), Record: &record}
}

// persistLocked ошибки записи логируются: переход уже произошел и не откатывается
func (s *Session) persistLocked(ctx context.Context) {
	s.snapshot.UpdatedAt = s.now()
	if err := s.repo.SaveSnapshot(ctx, s.snapshot.Clone()); err != nil {
		log.Printf("Interview %s: failed to persist session snapshot: %v", s.snapshot.ID, err)
	}
}

func clampScore(score int) int {
	switch {
	case score < 0:
		return 0
	case score > 100:
		return 100
	default:
		return score
	}
}
