package interview_chat

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	interviewService "github.com/IT-Nick/interview-assistant/internal/domain/interview/service"
	"github.com/IT-Nick/interview-assistant/internal/domain/model"
	"gopkg.in/telebot.v4"
)

// Кнопки приветственного экрана
var (
	ResumeButton  = telebot.InlineButton{Unique: "resume_interview", Text: "Продолжить"}
	DiscardButton = telebot.InlineButton{Unique: "discard_interview", Text: "Начать заново"}
)

const queueSize = 32

// Sender отправка сообщений, реализуется *telebot.Bot
type Sender interface {
	Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error)
}

type notification struct {
	recipient telebot.Recipient
	event     interviewService.Event
}

// Chat связывает интервью с чатом кандидата и доставляет ему уведомления Manager.
// Получатель определяется в момент события по идентификатору сессии,
// поэтому уведомления старой сессии из очереди не трогают новую привязку.
// Отправка идет из очереди по порядку, чтобы таймер не ждал сеть.
type Chat struct {
	sender Sender
	queue  chan notification

	mu        sync.Mutex
	recipient telebot.Recipient
	sessionID string
}

func NewChat(sender Sender) *Chat {
	return &Chat{
		sender: sender,
		queue:  make(chan notification, queueSize),
	}
}

// Bind закрепляет сессию sessionID за чатом
func (c *Chat) Bind(recipient telebot.Recipient, sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recipient = recipient
	c.sessionID = sessionID
}

// Owns true, если интервью идет в этом чате
func (c *Chat) Owns(recipient telebot.Recipient) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.recipient != nil && recipient != nil && c.recipient.Recipient() == recipient.Recipient()
}

// Notify подписчик Manager.Subscribe. События чужих сессий пропускаются,
// завершение или отмена привязанной сессии освобождает чат.
func (c *Chat) Notify(ev interviewService.Event) {
	c.mu.Lock()
	if c.recipient == nil || ev.Snapshot.ID != c.sessionID {
		c.mu.Unlock()
		return
	}
	n := notification{recipient: c.recipient, event: ev}
	if ev.Type != interviewService.EventQuestion {
		c.recipient = nil
		c.sessionID = ""
	}
	c.mu.Unlock()

	select {
	case c.queue <- n:
	default:
		log.Printf("Telegram notification queue is full, %s event dropped", ev.Type)
	}
}

// Run отправляет уведомления до отмены ctx
func (c *Chat) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case n := <-c.queue:
			c.deliver(n)
		}
	}
}

func (c *Chat) deliver(n notification) {
	ev := n.event
	var text string
	switch ev.Type {
	case interviewService.EventQuestion:
		text = FormatQuestion(ev.Snapshot, ev.Resumed, ev.TimedOut)
	case interviewService.EventCompleted:
		if ev.Record == nil {
			return
		}
		text = FormatResult(*ev.Record, ev.TimedOut)
	case interviewService.EventDiscarded:
		text = "Интервью отменено."
	default:
		return
	}

	if _, err := c.sender.Send(n.recipient, text); err != nil {
		log.Printf("Failed to send %s notification: %v", ev.Type, err)
	}
}

// FormatQuestion текст текущего вопроса
func FormatQuestion(s model.Snapshot, resumed, timedOut bool) string {
	q, ok := s.CurrentQuestion()
	if !ok {
		return ""
	}

	var b strings.Builder
	if timedOut {
		b.WriteString("Время на предыдущий вопрос истекло.\n\n")
	}
	if resumed {
		fmt.Fprintf(&b, "С возвращением, %s!\n\n", s.Candidate.Name)
	}
	fmt.Fprintf(&b, "Вопрос %d из %d (%s)\n%s\n\nОсталось времени: %d сек.",
		s.CurrentIndex+1, len(s.Questions), q.Tier, q.Text, s.Remaining)
	if s.Draft != "" {
		fmt.Fprintf(&b, "\nЧерновик: %s", s.Draft)
	}
	return b.String()
}

// FormatResult итог интервью
func FormatResult(c model.Candidate, timedOut bool) string {
	var b strings.Builder
	if timedOut {
		b.WriteString("Время на последний вопрос истекло.\n\n")
	}
	b.WriteString("Интервью завершено!\n")
	b.WriteString(c.Summary)
	for i, a := range c.Answers {
		fmt.Fprintf(&b, "\n\n%d. %s\n%s", i+1, a.Question, a.Answer)
	}
	return b.String()
}

// PendingMarkup кнопки выбора для сохраненного интервью
func PendingMarkup() *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	markup.InlineKeyboard = [][]telebot.InlineButton{{ResumeButton, DiscardButton}}
	return markup
}
