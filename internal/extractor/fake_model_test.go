package extractor

import (
	"context"
	"errors"
)

type reply struct {
	text string
	err  error
}

// scriptedModel answers each Invoke with the next reply in order.
type scriptedModel struct {
	replies []reply
	prompts []string
}

func newScriptedModel(replies ...reply) *scriptedModel {
	return &scriptedModel{replies: replies}
}

func (m *scriptedModel) Invoke(_ context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	if len(m.prompts) > len(m.replies) {
		return "", errors.New("unexpected model call")
	}
	r := m.replies[len(m.prompts)-1]
	return r.text, r.err
}
