package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/moodguard/moodguard/internal/domain"
)

const introductionText = "\n\nI'm MoodGuard, the resident mood keeper. " +
	"I score every message for positivity, so keep it friendly! " +
	"Try /score to check your standing or /leaderboard to see the most positive members."

func (s *Service) welcomeNewMembers(ctx context.Context, msg domain.InboundMessage) {
	for _, member := range msg.NewMembers {
		name := member.FirstName
		if name == "" {
			name = member.Username
		}
		mention := fmt.Sprintf("<a href=\"tg://user?id=%d\">%s</a>", member.ID, name)

		greeting, err := s.gen.WelcomeMessage(ctx, name)
		if err != nil {
			slog.WarnContext(ctx, "welcome generation failed, using fallback", "error", err)
			greeting = fmt.Sprintf("Welcome aboard, %s! Great to have you here.", mention)
		} else {
			greeting = fmt.Sprintf("%s, %s", mention, greeting)
		}

		opts := &domain.SendOptions{ParseMode: "HTML"}
		if _, err := s.transport.SendMessage(ctx, msg.ChatID, greeting+introductionText, opts); err != nil {
			slog.ErrorContext(ctx, "sending welcome failed", "user_id", member.ID, "error", err)
		}
	}
}
