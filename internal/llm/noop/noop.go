package noop

import (
	"context"

	"gold-premium-bot/internal/types"
)

// Summarizer is the degraded stand-in used when no summary service is
// configured. The report still goes out, carrying this placeholder.
type Summarizer struct{}

func NewSummarizer() *Summarizer { return &Summarizer{} }

func (s *Summarizer) Summarize(ctx context.Context, todayMsg string, hist []types.PremiumObservation) string {
	return "AI 분석 오류: OpenAI 클라이언트 초기화 실패 (API 키 누락)"
}
