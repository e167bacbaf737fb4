package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/moodguard/moodguard/internal/domain"
	"github.com/moodguard/moodguard/internal/metrics"
	"github.com/moodguard/moodguard/internal/moderation"
)

const fallbackQuote = "Stay positive and keep pushing forward!"

// analyzeMessage runs the sentiment pipeline for a plain text message:
// classify, persist the score, aggregate, and apply the moderation
// policy. A store failure aborts the pipeline for this message without
// any reply to the chat.
func (s *Service) analyzeMessage(ctx context.Context, msg domain.InboundMessage) {
	score, explanation := s.classifier.Classify(ctx, msg.Text)
	metrics.MessageScores.Observe(score)

	if err := s.scores.RecordScore(ctx, msg.From.ID, score); err != nil {
		slog.ErrorContext(ctx, "recording score failed", "user_id", msg.From.ID, "error", err)
		metrics.StoreFailures.Inc()
		metrics.MessagesProcessed.WithLabelValues("store_error").Inc()
		return
	}

	cumulative, err := s.scores.GetScore(ctx, msg.From.ID)
	if err != nil {
		slog.ErrorContext(ctx, "reading cumulative score failed", "user_id", msg.From.ID, "error", err)
		metrics.StoreFailures.Inc()
		metrics.MessagesProcessed.WithLabelValues("store_error").Inc()
		return
	}

	if summary, ok := s.window.Observe(score); ok {
		s.broadcastSummary(ctx, summary.MessageCount, summary.AverageScore)
	}

	actions := moderation.Decide(score, cumulative)
	if actions.None() {
		metrics.MessagesProcessed.WithLabelValues("silent").Inc()
		return
	}

	reply := s.applyModeration(ctx, msg, explanation, cumulative, actions)
	if reply != "" {
		opts := &domain.SendOptions{ParseMode: "HTML", ReplyToMessageID: msg.MessageID}
		if _, err := s.transport.SendMessage(ctx, msg.ChatID, reply, opts); err != nil {
			slog.ErrorContext(ctx, "sending moderation reply failed", "error", err)
		}
	}
	metrics.MessagesProcessed.WithLabelValues("dispatched").Inc()
}

func (s *Service) applyModeration(ctx context.Context, msg domain.InboundMessage, explanation string, cumulative float64, actions moderation.Actions) string {
	var reply string

	if actions.Warn {
		quote, err := s.gen.MotivationalQuote(ctx)
		if err != nil {
			slog.WarnContext(ctx, "quote generation failed, using fallback", "error", err)
			quote = fallbackQuote
		}
		reply = moderation.WarnText(explanation, cumulative, quote)
		metrics.ModerationActions.WithLabelValues("warn", "ok").Inc()
	}

	if actions.Mute {
		if err := s.transport.RestrictMember(ctx, msg.ChatID, msg.From.ID, false); err != nil {
			slog.ErrorContext(ctx, "muting user failed", "user_id", msg.From.ID, "error", err)
			reply += moderation.MuteFailureNotice
			metrics.ModerationActions.WithLabelValues("mute", "failed").Inc()
		} else {
			reply += moderation.MuteNotice
			metrics.ModerationActions.WithLabelValues("mute", "ok").Inc()
		}
	}

	return reply
}

func (s *Service) broadcastSummary(ctx context.Context, count int, average float64) {
	text := fmt.Sprintf("Processed %d messages. Overall average positivity: %.2f", count, average)
	if _, err := s.transport.SendMessage(ctx, s.groupChatID, text, nil); err != nil {
		slog.ErrorContext(ctx, "broadcasting summary failed", "error", err)
		return
	}
	metrics.SummariesBroadcast.Inc()
}
