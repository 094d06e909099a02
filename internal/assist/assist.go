package assist

import (
	"context"
	"errors"
)

// Client abstracts the text-generation service. The gateway has no contract
// beyond "given a prompt string, eventually returns a text string or fails";
// all prompt templating and response parsing lives on this side.
type Client interface {
	SendPrompt(ctx context.Context, prompt string) (string, error)
}

// ErrEmptyResponse is returned when the service answers with nothing usable.
var ErrEmptyResponse = errors.New("assist: empty response")

// ErrUnusableResponse is returned when every parsing strategy failed to
// recover structure from the response.
var ErrUnusableResponse = errors.New("assist: unusable response")
