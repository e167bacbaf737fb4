package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/moodguard/moodguard/internal/domain"
)

const (
	startGreeting    = "Hello! I'm MoodGuard. Share your thoughts, and I'll analyze your mood!"
	leaderboardLimit = 10
)

func (s *Service) handleStart(ctx context.Context, msg domain.InboundMessage) {
	s.reply(ctx, msg, startGreeting, nil)
}

func (s *Service) handleScore(ctx context.Context, msg domain.InboundMessage) {
	score, err := s.scores.GetScore(ctx, msg.From.ID)
	if err != nil {
		slog.ErrorContext(ctx, "reading score failed", "user_id", msg.From.ID, "error", err)
		return
	}
	s.reply(ctx, msg, fmt.Sprintf("Your current positivity score is: %.2f", score), nil)
}

func (s *Service) handleLeaderboard(ctx context.Context, msg domain.InboundMessage) {
	entries, err := s.scores.TopN(ctx, leaderboardLimit)
	if err != nil {
		slog.ErrorContext(ctx, "reading leaderboard failed", "error", err)
		return
	}
	if len(entries) == 0 {
		s.reply(ctx, msg, "No scores available yet.", nil)
		return
	}

	var b strings.Builder
	b.WriteString("🏆 <b>Leaderboard Positivity</b> 🏆\n\n")
	for i, entry := range entries {
		name := s.directory.DisplayName(ctx, entry.UserID)
		fmt.Fprintf(&b, "%d. <a href=\"tg://user?id=%d\">%s</a>: %.2f\n", i+1, entry.UserID, name, entry.Score)
	}
	s.reply(ctx, msg, b.String(), &domain.SendOptions{ParseMode: "HTML"})
}

func (s *Service) handleFeedback(ctx context.Context, msg domain.InboundMessage, args string) {
	if args == "" {
		s.reply(ctx, msg, "Please provide your feedback after the command, e.g. /feedback love the bot!", &domain.SendOptions{ReplyToMessageID: msg.MessageID})
		return
	}

	fb := domain.Feedback{
		UserID:    msg.From.ID,
		FirstName: msg.From.FirstName,
		Username:  msg.From.Username,
		Message:   args,
	}
	if err := s.feedback.StoreFeedback(ctx, fb); err != nil {
		slog.ErrorContext(ctx, "storing feedback failed", "user_id", msg.From.ID, "error", err)
		return
	}
	s.reply(ctx, msg, "Thanks for your feedback! 🙏", &domain.SendOptions{ReplyToMessageID: msg.MessageID})
}

func (s *Service) handleAsk(ctx context.Context, msg domain.InboundMessage, args string) {
	if args == "" {
		s.reply(ctx, msg, "Please ask a question after the command, e.g. /ask how do I stay positive?", &domain.SendOptions{ReplyToMessageID: msg.MessageID})
		return
	}
	answer, err := s.gen.Answer(ctx, args)
	if err != nil {
		slog.ErrorContext(ctx, "answering question failed", "error", err)
		s.reply(ctx, msg, "Sorry, I couldn't come up with an answer right now.", &domain.SendOptions{ReplyToMessageID: msg.MessageID})
		return
	}
	s.reply(ctx, msg, answer, &domain.SendOptions{ReplyToMessageID: msg.MessageID})
}

func (s *Service) handleMeme(ctx context.Context, msg domain.InboundMessage) {
	placeholderID, err := s.transport.SendMessage(ctx, msg.ChatID, "Photo is being generated...", nil)
	if err != nil {
		slog.ErrorContext(ctx, "sending meme placeholder failed", "error", err)
		return
	}

	imageURL, err := s.gen.MemeImage(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "generating meme failed", "error", err)
		if err := s.transport.EditMessageText(ctx, msg.ChatID, placeholderID, "Sorry, the photo didn't come out this time."); err != nil {
			slog.ErrorContext(ctx, "editing meme placeholder failed", "error", err)
		}
		return
	}

	if err := s.transport.EditMessageText(ctx, msg.ChatID, placeholderID, "Your photo 😀"); err != nil {
		slog.ErrorContext(ctx, "editing meme placeholder failed", "error", err)
	}
	if err := s.transport.SendPhoto(ctx, msg.ChatID, imageURL, msg.MessageID); err != nil {
		slog.ErrorContext(ctx, "sending meme photo failed", "error", err)
	}
}

func (s *Service) reply(ctx context.Context, msg domain.InboundMessage, text string, opts *domain.SendOptions) {
	if _, err := s.transport.SendMessage(ctx, msg.ChatID, text, opts); err != nil {
		slog.ErrorContext(ctx, "sending reply failed", "error", err)
	}
}
