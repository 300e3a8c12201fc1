package gemini

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"google.golang.org/genai"
	"lofi-flow-server/modules/common/config"
)

// Client - Gemini API 클라이언트 래퍼 (JSON 모드 호출 전용)
type Client struct {
	client *genai.Client
	model  string
}

// NewClient - 설정으로부터 Gemini 클라이언트 생성
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	log.Printf("✅ Gemini client initialized (model: %s)", cfg.GeminiModel)
	return &Client{client: client, model: cfg.GeminiModel}, nil
}

// Model - 사용 중인 모델명
func (c *Client) Model() string {
	return c.model
}

// GenerateJSON - JSON 모드 호출, 429 시 최대 3번 재시도 후 응답 텍스트 반환
func (c *Client) GenerateJSON(
	ctx context.Context,
	contents []*genai.Content,
	genConfig *genai.GenerateContentConfig,
) (string, error) {

	const maxRetries = 3
	var lastErr error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if attempt > 1 {
			log.Printf("   🔄 Retry attempt %d/%d", attempt, maxRetries)
		}

		result, err := c.client.Models.GenerateContent(ctx, c.model, contents, genConfig)
		if err == nil {
			text := extractText(result)
			if text == "" {
				return "", fmt.Errorf("empty response from Gemini")
			}
			return text, nil
		}

		lastErr = err

		// 429가 아닌 다른 에러면 바로 반환 (재시도 안 함)
		if !is429Error(err) {
			log.Printf("❌ [Gemini] Request failed with non-429 error: %v", err)
			return "", err
		}

		log.Printf("⚠️  [Gemini] Rate limit (429) on attempt %d/%d", attempt, maxRetries)
		if attempt < maxRetries {
			log.Printf("   ⏳ Waiting 2 seconds before retry...")
			time.Sleep(time.Second * 2)
		}
	}

	return "", fmt.Errorf("gemini exhausted %d attempts: %w", maxRetries, lastErr)
}

// extractText - 후보 응답에서 텍스트 파트 수집
func extractText(result *genai.GenerateContentResponse) string {
	if result == nil {
		return ""
	}
	var sb strings.Builder
	for _, cand := range result.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.Text != "" {
				sb.WriteString(part.Text)
			}
		}
	}
	return strings.TrimSpace(sb.String())
}

// is429Error - 429 Rate Limit 에러인지 확인
func is429Error(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	return strings.Contains(errStr, "429") ||
		strings.Contains(strings.ToLower(errStr), "rate limit") ||
		strings.Contains(strings.ToLower(errStr), "quota")
}
