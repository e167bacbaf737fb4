package app

import (
	"context"
	"strings"

	"github.com/moodguard/moodguard/internal/domain"
	"github.com/moodguard/moodguard/internal/platform/correlation"
	"github.com/moodguard/moodguard/internal/sentiment"
)

// ServiceConfig bundles the dependencies of the application service.
type ServiceConfig struct {
	GroupChatID int64
	Transport   domain.Transport
	Classifier  domain.Classifier
	Scores      domain.ScoreStore
	Feedback    domain.FeedbackStore
	Directory   *Directory
	Generator   *Generator
}

// Service routes every inbound event: membership updates to the welcome
// flow, commands to their handlers, and plain text into the moderation
// pipeline. It owns the single process-wide aggregation window.
type Service struct {
	groupChatID int64
	transport   domain.Transport
	classifier  domain.Classifier
	scores      domain.ScoreStore
	feedback    domain.FeedbackStore
	directory   *Directory
	gen         *Generator
	window      *sentiment.Window
}

func NewService(cfg ServiceConfig) *Service {
	return &Service{
		groupChatID: cfg.GroupChatID,
		transport:   cfg.Transport,
		classifier:  cfg.Classifier,
		scores:      cfg.Scores,
		feedback:    cfg.Feedback,
		directory:   cfg.Directory,
		gen:         cfg.Generator,
		window:      sentiment.NewWindow(),
	}
}

// HandleMessage is the single entry point for inbound events. Messages
// from any chat but the configured group are dropped silently.
func (s *Service) HandleMessage(ctx context.Context, msg domain.InboundMessage) {
	if msg.ChatID != s.groupChatID {
		return
	}

	ctx = correlation.Tag(ctx)

	switch {
	case len(msg.NewMembers) > 0:
		s.welcomeNewMembers(ctx, msg)
	case msg.IsCommand():
		s.dispatchCommand(ctx, msg)
	case msg.Text != "":
		s.analyzeMessage(ctx, msg)
	}
}

func (s *Service) dispatchCommand(ctx context.Context, msg domain.InboundMessage) {
	command, args := splitCommand(msg.Text)
	switch command {
	case "start":
		s.handleStart(ctx, msg)
	case "score":
		s.handleScore(ctx, msg)
	case "leaderboard":
		s.handleLeaderboard(ctx, msg)
	case "feedback":
		s.handleFeedback(ctx, msg, args)
	case "ask":
		s.handleAsk(ctx, msg, args)
	case "meme":
		s.handleMeme(ctx, msg)
	}
}

// splitCommand separates "/cmd@botname the rest" into ("cmd", "the rest").
func splitCommand(text string) (command, args string) {
	command, args, _ = strings.Cut(strings.TrimPrefix(text, "/"), " ")
	command, _, _ = strings.Cut(command, "@")
	return strings.ToLower(command), strings.TrimSpace(args)
}
