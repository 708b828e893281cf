package model

import (
	"errors"
	"fmt"
)

var (
	ErrValidation            = errors.New("validation error")
	ErrInsufficientQuestions = errors.New("insufficient questions")
	ErrSessionActive         = errors.New("interview session is already in progress")
	ErrSessionPending        = errors.New("unfinished interview session must be resumed or discarded first")
	ErrNoSession             = errors.New("no interview session")
)

// ValidationError отклоненный пользовательский ввод
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// InsufficientQuestionsError в уровне меньше вопросов, чем нужно для интервью
type InsufficientQuestionsError struct {
	Tier Tier
	Have int
	Need int
}

func (e *InsufficientQuestionsError) Error() string {
	return fmt.Sprintf("insufficient questions: level %s has %d, need %d", e.Tier, e.Have, e.Need)
}

func (e *InsufficientQuestionsError) Is(target error) bool {
	return target == ErrInsufficientQuestions
}
