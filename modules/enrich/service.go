package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"

	"lofi-flow-server/modules/common/fallback"
	"lofi-flow-server/modules/common/model"
	"lofi-flow-server/modules/common/utils"
)

// TextGenerator - Gemini JSON 모드 호출 추상화 (테스트에서 페이크 주입)
type TextGenerator interface {
	GenerateJSON(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (string, error)
}

// Service - 네 가지 enrichment 플로우 + 배치 용어 번역
// 모든 플로우는 입력 스냅샷을 받아 새 값을 반환한다. 실패 시 세션 상태는
// 호출 측에서 건드리지 않으므로 원래 상태가 그대로 유지된다.
type Service struct {
	gen TextGenerator
}

func NewService(gen TextGenerator) *Service {
	return &Service{gen: gen}
}

// AutoGenerate - 전체 장면 자동 생성
// 수정자는 초기화하되 이미지 스타일 슬롯은 유지한다.
func (s *Service) AutoGenerate(ctx context.Context, in model.PromptInputs) (model.PromptInputs, error) {
	log.Printf("🤖 [Enrich] Auto-generating scene...")

	contents := []*genai.Content{
		{Parts: []*genai.Part{genai.NewPartFromText(autoGeneratePrompt)}},
	}
	raw, err := s.gen.GenerateJSON(ctx, contents, autoGenerateConfig())
	if err != nil {
		return model.PromptInputs{}, fmt.Errorf("auto-generate call failed: %w", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return model.PromptInputs{}, fmt.Errorf("auto-generate reply parse failed: %w", err)
	}

	out := in.Clone()
	out.Mood = fallback.SafeString(result["mood"], out.Mood)
	out.Location = fallback.SafeString(result["location"], out.Location)
	out.Objects = fallback.SafeString(result["objects"], out.Objects)
	out.People = fallback.SafeString(result["people"], out.People)
	out.Animals = fallback.SafeString(result["animals"], out.Animals)
	out.Time = fallback.SafeEnum(result["time"], model.Times, out.Time)
	out.Weather = fallback.SafeEnum(result["weather"], model.AutoWeathers, out.Weather)
	out.ArtStyle = fallback.SafeString(result["artStyle"], out.ArtStyle)

	// 수정자 초기화, 이미지 벤치마킹 슬롯만 살린다
	fresh := model.ModifierSet{}
	if slot := in.Modifiers.StyleSlot; slot != nil && slot.Source == model.StyleSourceImage {
		fresh.StyleSlot = &model.StyleSlot{Source: slot.Source, Text: slot.Text}
	}
	out.Modifiers = fresh

	log.Printf("✅ [Enrich] Scene auto-generated (style: %s)", out.ArtStyle)
	return out, nil
}

// Feedback - 자연어 피드백을 부분 필드 업데이트 + 수정자 하나로 해석
func (s *Service) Feedback(ctx context.Context, in model.PromptInputs, feedback string) (model.PromptInputs, error) {
	log.Printf("💬 [Enrich] Applying feedback: %q", feedback)

	current, err := json.Marshal(in)
	if err != nil {
		return model.PromptInputs{}, fmt.Errorf("failed to encode current inputs: %w", err)
	}

	prompt := fmt.Sprintf(`The user is configuring a Lo-fi music video background scene. Current scene fields (Korean values): %s

User instruction: %q

Interpret the instruction and return a JSON object containing ONLY the fields that should change (mood, location, objects, people, animals in Korean; time/weather from the allowed values), plus an optional 'modifier': a short English style modifier phrase capturing any lighting/color/texture request. Omit every field the instruction does not touch.`, string(current), feedback)

	contents := []*genai.Content{
		{Parts: []*genai.Part{genai.NewPartFromText(prompt)}},
	}
	raw, err := s.gen.GenerateJSON(ctx, contents, feedbackConfig())
	if err != nil {
		return model.PromptInputs{}, fmt.Errorf("feedback call failed: %w", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return model.PromptInputs{}, fmt.Errorf("feedback reply parse failed: %w", err)
	}

	out := in.Clone()
	out.Mood = fallback.SafeString(result["mood"], out.Mood)
	out.Location = fallback.SafeString(result["location"], out.Location)
	out.Objects = fallback.SafeString(result["objects"], out.Objects)
	out.People = fallback.SafeString(result["people"], out.People)
	out.Animals = fallback.SafeString(result["animals"], out.Animals)
	out.Time = fallback.SafeEnum(result["time"], model.Times, out.Time)
	out.Weather = fallback.SafeEnum(result["weather"], model.AutoWeathers, out.Weather)

	if modifier := fallback.SafeString(result["modifier"], ""); modifier != "" {
		out.Modifiers = out.Modifiers.Append(modifier)
	}

	return out, nil
}

// BenchmarkImage - 레퍼런스 이미지 스타일 분석
// 스타일 슬롯을 이미지 출처로 교체하고 시간/날씨/분위기는 응답이 있을 때만 덮어쓴다.
func (s *Service) BenchmarkImage(ctx context.Context, in model.PromptInputs, imageData []byte, mimeType string) (model.PromptInputs, error) {
	log.Printf("🖼️  [Enrich] Analyzing benchmark image (%d bytes, %s)", len(imageData), mimeType)

	normalized, normalizedMime := utils.NormalizeForGemini(imageData, mimeType)

	prompt := "Analyze the visual style of this image for a Lo-fi music video background.\n" + benchmarkInstruction
	contents := []*genai.Content{
		{Parts: []*genai.Part{
			{InlineData: &genai.Blob{MIMEType: normalizedMime, Data: normalized}},
			genai.NewPartFromText(prompt),
		}},
	}

	raw, err := s.gen.GenerateJSON(ctx, contents, benchmarkConfig())
	if err != nil {
		return model.PromptInputs{}, fmt.Errorf("image benchmark call failed: %w", err)
	}

	return s.mergeBenchmark(in, raw, model.StyleSourceImage)
}

// BenchmarkLinks - URL 문맥으로 스타일 유추, 슬롯은 벤치마크 출처
func (s *Service) BenchmarkLinks(ctx context.Context, in model.PromptInputs, links []string) (model.PromptInputs, error) {
	trimmed := make([]string, 0, len(links))
	for _, link := range links {
		if l := strings.TrimSpace(link); l != "" {
			trimmed = append(trimmed, l)
		}
	}
	if len(trimmed) == 0 {
		return model.PromptInputs{}, fmt.Errorf("no benchmark links provided")
	}

	log.Printf("🔗 [Enrich] Analyzing %d benchmark links...", len(trimmed))

	prompt := fmt.Sprintf(`Analyze the implied visual style of a Lo-fi music video from these URLs/Context: %q.
If URLs are generic, imagine a high-quality, trending Lo-fi aesthetic (e.g., Cyberpunk, Cottagecore, Retro 90s, Dreamy).

%s`, strings.Join(trimmed, ", "), benchmarkInstruction)

	contents := []*genai.Content{
		{Parts: []*genai.Part{genai.NewPartFromText(prompt)}},
	}
	raw, err := s.gen.GenerateJSON(ctx, contents, benchmarkConfig())
	if err != nil {
		return model.PromptInputs{}, fmt.Errorf("link benchmark call failed: %w", err)
	}

	return s.mergeBenchmark(in, raw, model.StyleSourceBenchmark)
}

// mergeBenchmark - 벤치마킹 응답 병합 (이미지/링크 공용)
func (s *Service) mergeBenchmark(in model.PromptInputs, raw string, source model.StyleSource) (model.PromptInputs, error) {
	var result map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return model.PromptInputs{}, fmt.Errorf("benchmark reply parse failed: %w", err)
	}

	out := in.Clone()
	out.Time = fallback.SafeEnum(result["time"], model.Times, out.Time)
	out.Weather = fallback.SafeEnum(result["weather"], model.BenchmarkWeathers, out.Weather)
	out.Mood = fallback.SafeEnum(result["mood"], model.BenchmarkMoods, out.Mood)

	if styleModifier := fallback.SafeString(result["styleModifier"], ""); styleModifier != "" {
		out.Modifiers = out.Modifiers.WithStyleSlot(source, styleModifier)
	}

	log.Printf("✅ [Enrich] Benchmark merged (source: %s)", source)
	return out, nil
}

// TranslateTerms - 렉시콘 미등재 한국어 구절 일괄 번역
// promptgen.TermTranslator 구현.
func (s *Service) TranslateTerms(ctx context.Context, terms []string) (map[string]string, error) {
	if len(terms) == 0 {
		return map[string]string{}, nil
	}

	log.Printf("🌐 [Enrich] Translating %d terms...", len(terms))

	encoded, err := json.Marshal(terms)
	if err != nil {
		return nil, fmt.Errorf("failed to encode terms: %w", err)
	}

	prompt := fmt.Sprintf(`Translate each of the following Korean phrases into a short English fragment suitable for an image-generation prompt (lowercase, descriptive, no full sentences): %s

Return a JSON object mapping each original Korean phrase to its English translation.`, string(encoded))

	contents := []*genai.Content{
		{Parts: []*genai.Part{genai.NewPartFromText(prompt)}},
	}
	raw, err := s.gen.GenerateJSON(ctx, contents, translateConfig())
	if err != nil {
		return nil, fmt.Errorf("term translation call failed: %w", err)
	}

	var translations map[string]string
	if err := json.Unmarshal([]byte(raw), &translations); err != nil {
		return nil, fmt.Errorf("term translation reply parse failed: %w", err)
	}

	return translations, nil
}
