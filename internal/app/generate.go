package app

import (
	"context"
	"fmt"

	"github.com/moodguard/moodguard/internal/domain"
)

// Generator produces the bot's creative content: quotes, welcomes,
// answers and meme images. All methods return an error instead of a
// fallback, callers decide how to degrade.
type Generator struct {
	completer     domain.Completer
	images        domain.ImageGenerator
	communityName string
}

func NewGenerator(completer domain.Completer, images domain.ImageGenerator, communityName string) *Generator {
	return &Generator{completer: completer, images: images, communityName: communityName}
}

func (g *Generator) MotivationalQuote(ctx context.Context) (string, error) {
	return g.completer.Complete(ctx,
		"You are a motivational coach. Reply with a single short motivational quote, nothing else.",
		"Give me a motivational quote to cheer someone up.")
}

func (g *Generator) WelcomeMessage(ctx context.Context, name string) (string, error) {
	return g.completer.Complete(ctx,
		fmt.Sprintf("You write warm one-sentence welcome messages for new members of %s. Do not include the member's name, it is prepended by the caller.", g.communityName),
		fmt.Sprintf("Welcome a new member called %s.", name))
}

func (g *Generator) Answer(ctx context.Context, question string) (string, error) {
	return g.completer.Complete(ctx,
		fmt.Sprintf("You are the friendly assistant of %s. Answer briefly and helpfully.", g.communityName),
		question)
}

func (g *Generator) MemeImage(ctx context.Context) (string, error) {
	prompt := fmt.Sprintf("A cheerful cartoon mascot of %s spreading positivity, vibrant colors, meme style", g.communityName)
	return g.images.GenerateImage(ctx, prompt)
}
