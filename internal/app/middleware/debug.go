package middleware

import (
	"fmt"
	"log"

	interviewService "github.com/IT-Nick/interview-assistant/internal/domain/interview/service"
	tele "gopkg.in/telebot.v4"
)

// DebugInterview возвращает middleware, которое при включенной отладке после каждого действия
// присылает пользователю отладочное сообщение: имя и ID пользователя, действие
// (текст или callback) и состояние интервью. Сообщение отправляется в отдельной горутине,
// ответ обработчика его не ждет.
func DebugInterview(enabled bool, manager *interviewService.Manager) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			// Сначала выполняем обработчик, чтобы показать состояние уже после действия.
			err := next(c)
			if !enabled || c.Sender() == nil {
				return err
			}

			msg := DebugMessage(c, manager)
			go func() {
				if _, sendErr := c.Bot().Send(c.Sender(), msg); sendErr != nil {
					log.Printf("Failed to send debug message: %v", sendErr)
				}
			}()
			return err
		}
	}
}

// DebugMessage описание действия пользователя и текущего интервью
func DebugMessage(c tele.Context, manager *interviewService.Manager) string {
	var action string
	switch {
	case c.Callback() != nil:
		action = "Callback: " + c.Callback().Data
	case c.Message() != nil:
		action = "Message: " + c.Message().Text
	default:
		action = "Unknown action"
	}

	state := "no active interview"
	if s, ok := manager.Current(); ok {
		state = fmt.Sprintf("interview %s, question %d/%d, %ds left, draft %q",
			s.ID, s.CurrentIndex+1, len(s.Questions), s.Remaining, s.Draft)
	}

	var user string
	if sender := c.Sender(); sender != nil {
		user = fmt.Sprintf("%s (ID: %d)", sender.FirstName, sender.ID)
	}
	return fmt.Sprintf("DEBUG: User: %s, State: %s, Action: %s", user, state, action)
}
