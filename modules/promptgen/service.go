package promptgen

import (
	"context"
	"log"

	"lofi-flow-server/modules/common/model"
)

// Service - 번역 + 조립 파이프라인
type Service struct {
	translator TermTranslator
}

func NewService(translator TermTranslator) *Service {
	return &Service{translator: translator}
}

// Generate - 입력 스냅샷으로 최종 프롬프트와 한국어 설명 생성
// 원격 번역이 실패하면 에러를 반환하고 아무것도 만들지 않는다.
func (s *Service) Generate(ctx context.Context, in model.PromptInputs) (string, string, error) {
	tr, err := TranslateInputs(ctx, s.translator, in)
	if err != nil {
		log.Printf("❌ [Promptgen] Translation failed: %v", err)
		return "", "", err
	}

	prompt, explanation := Assemble(in, tr)
	log.Printf("✅ [Promptgen] Prompt assembled (%d chars, style: %s)", len(prompt), in.ArtStyle)
	return prompt, explanation, nil
}
