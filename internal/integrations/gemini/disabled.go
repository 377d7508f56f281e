package gemini

import "context"

// Disabled используется вместо Client при assistant.enabled = false
type Disabled struct{}

func (Disabled) AnswerQuestion(context.Context, string, []string) (string, error) {
	return "", ErrDisabled
}
