package domain

import "context"

// Completer is a chat-completion style call against the text-generation
// provider: a system instruction plus user text, returning free-form text.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// ImageGenerator produces an image for a prompt and returns its URL.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// Classifier assigns a sentiment score and explanation to a message.
// Implementations never fail: provider errors degrade to a neutral
// score with an empty explanation.
type Classifier interface {
	Classify(ctx context.Context, text string) (score float64, explanation string)
}
