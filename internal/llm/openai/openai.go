package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"gold-premium-bot/internal/history"
	"gold-premium-bot/internal/store"
	"gold-premium-bot/internal/trace"
	"gold-premium-bot/internal/types"
)

const apiURL = "https://api.openai.com/v1/chat/completions"

// keyMissingMsg is the placeholder shipped in the report when the summary
// service cannot be used at all.
const keyMissingMsg = "AI 분석 오류: OpenAI 클라이언트 초기화 실패 (API 키 누락)"

// Summarizer asks the OpenAI chat completions API for a short Korean
// commentary on the last week of premium data. Any failure degrades into an
// explanatory string in the report; it never fails the run.
type Summarizer struct {
	cfg *store.Config
}

func NewSummarizer(cfg *store.Config) *Summarizer {
	return &Summarizer{cfg: cfg}
}

func (s *Summarizer) Summarize(ctx context.Context, todayMsg string, hist []types.PremiumObservation) string {
	ctx, span := trace.StartSpan(ctx, "openai-api-call")
	defer span.End()

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return keyMissingMsg
	}

	last7, _ := json.MarshalIndent(history.LastN(hist, 7), "", "  ")
	prompt := fmt.Sprintf(`다음은 최근 7일간의 ACE KRX금현물 ETF 괴리율 데이터입니다.
%s

오늘의 주요 데이터:
%s

이 데이터를 기반으로 ACE KRX금현물 ETF의 괴리율(프리미엄) 상승/하락 원인과 간단한 투자 관점 요약을 3줄 이내로 설명해줘.`, string(last7), todayMsg)

	body := map[string]any{
		"model":       s.cfg.LLM.Model,
		"messages":    []map[string]string{{"role": "user", "content": prompt}},
		"temperature": s.cfg.LLM.Temperature,
		"max_tokens":  s.cfg.LLM.MaxTokens,
	}
	bb, _ := json.Marshal(body)

	req, _ := http.NewRequestWithContext(ctx, "POST", apiURL, bytes.NewReader(bb))
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Sprintf("AI 분석 오류: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Sprintf("AI 분석 오류: openai http %d", resp.StatusCode)
	}

	var r struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return fmt.Sprintf("AI 분석 오류: %v", err)
	}
	if len(r.Choices) == 0 {
		return "AI 분석 오류: no choices"
	}

	return strings.TrimSpace(r.Choices[0].Message.Content)
}
