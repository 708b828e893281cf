package middleware

import (
	"encoding/json"
	"log"

	tele "gopkg.in/telebot.v4"
)

// Logger возвращает middleware, которое логирует входящие обновления Telegram.
// Можно передать свой *log.Logger (в приложении это логгер с префиксом "[bot] "),
// иначе используется log.Default().
// Обновление сериализуется в JSON с отступами и выводится целиком до вызова обработчика.
func Logger(logger ...*log.Logger) tele.MiddlewareFunc {
	l := log.Default()
	if len(logger) > 0 {
		l = logger[0]
	}
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			// Ошибка сериализации не мешает обработке обновления.
			data, _ := json.MarshalIndent(c.Update(), "", "  ")
			l.Println(string(data))
			// Передаем управление следующему обработчику.
			return next(c)
		}
	}
}
