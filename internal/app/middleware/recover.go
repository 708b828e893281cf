package middleware

import (
	"errors"
	"fmt"
	"log"

	tele "gopkg.in/telebot.v4"
)

// Recover возвращает middleware, которое перехватывает панику в обработчике и передает ее
// в onError в виде ошибки. Если onError не задан, паника только пишется в лог.
//
// Порядок работы:
//  1. Вызов следующего обработчика оборачивается в defer с recover.
//  2. Значение паники приводится к error: error как есть, строка через errors.New,
//     остальное через fmt.Errorf.
//  3. Ошибка передается в onError вместе с контекстом бота.
//  4. Та же ошибка возвращается из middleware, чтобы телебот ее залогировал.
func Recover(onError ...func(error, tele.Context)) tele.MiddlewareFunc {
	handleError := func(err error, c tele.Context) {
		log.Printf("Recovered from panic: %v", err)
	}
	// Пользовательский обработчик заменяет логирование по умолчанию.
	if len(onError) > 0 {
		handleError = onError[0]
	}

	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					var e error
					// Приводим значение паники к error.
					switch x := r.(type) {
					case error:
						e = x
					case string:
						e = errors.New(x)
					default:
						e = fmt.Errorf("panic: %v", x)
					}
					handleError(e, c)
					err = e
				}
			}()
			// Вызываем следующий обработчик в цепочке.
			return next(c)
		}
	}
}
