package metrics

import (
	"sync"
	"time"
)

// Metrics счетчики интервью
type Metrics struct {
	mu                  sync.RWMutex
	InterviewsStarted   int64     `json:"interviews_started"`
	InterviewsResumed   int64     `json:"interviews_resumed"`
	InterviewsCompleted int64     `json:"interviews_completed"`
	InterviewsDiscarded int64     `json:"interviews_discarded"`
	AnswersSubmitted    int64     `json:"answers_submitted"`
	AnswersTimedOut     int64     `json:"answers_timed_out"`
	LastUpdateTime      time.Time `json:"last_update_time"`
}

func NewMetrics() *Metrics {
	return &Metrics{
		LastUpdateTime: time.Now(),
	}
}

func (m *Metrics) IncrementInterviewsStarted() {
	m.update(func() { m.InterviewsStarted++ })
}

func (m *Metrics) IncrementInterviewsResumed() {
	m.update(func() { m.InterviewsResumed++ })
}

func (m *Metrics) IncrementInterviewsCompleted() {
	m.update(func() { m.InterviewsCompleted++ })
}

func (m *Metrics) IncrementInterviewsDiscarded() {
	m.update(func() { m.InterviewsDiscarded++ })
}

// IncrementAnswers учитывает принятый ответ; timedOut для ответов, отправленных по таймеру
func (m *Metrics) IncrementAnswers(timedOut bool) {
	m.update(func() {
		m.AnswersSubmitted++
		if timedOut {
			m.AnswersTimedOut++
		}
	})
}

func (m *Metrics) update(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn()
	m.LastUpdateTime = time.Now()
}

// Snapshot копия счетчиков без мьютекса
type Snapshot struct {
	InterviewsStarted   int64     `json:"interviews_started"`
	InterviewsResumed   int64     `json:"interviews_resumed"`
	InterviewsCompleted int64     `json:"interviews_completed"`
	InterviewsDiscarded int64     `json:"interviews_discarded"`
	AnswersSubmitted    int64     `json:"answers_submitted"`
	AnswersTimedOut     int64     `json:"answers_timed_out"`
	LastUpdateTime      time.Time `json:"last_update_time"`
}

func (m *Metrics) GetSnapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Snapshot{
		InterviewsStarted:   m.InterviewsStarted,
		InterviewsResumed:   m.InterviewsResumed,
		InterviewsCompleted: m.InterviewsCompleted,
		InterviewsDiscarded: m.InterviewsDiscarded,
		AnswersSubmitted:    m.AnswersSubmitted,
		AnswersTimedOut:     m.AnswersTimedOut,
		LastUpdateTime:      m.LastUpdateTime,
	}
}
