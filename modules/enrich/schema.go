package enrich

import (
	"google.golang.org/genai"

	"lofi-flow-server/modules/catalog"
	"lofi-flow-server/modules/common/model"
)

// autoGeneratePrompt - 전체 장면 자동 생성 지시문
const autoGeneratePrompt = "Create a creative and cohesive scene description for a Lo-fi hip hop music video background. Mix and match elements to create a unique vibe (e.g., Cyberpunk cafe, Fantasy forest, Retro bedroom)."

// autoGenerateConfig - 모든 필드 필수, 시간/날씨/스타일은 열거값 강제
func autoGenerateConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"mood":     {Type: genai.TypeString},
				"location": {Type: genai.TypeString},
				"objects":  {Type: genai.TypeString},
				"people":   {Type: genai.TypeString},
				"animals":  {Type: genai.TypeString},
				"time":     {Type: genai.TypeString, Enum: model.Times},
				"weather":  {Type: genai.TypeString, Enum: model.AutoWeathers},
				"artStyle": {Type: genai.TypeString, Enum: catalog.StyleKeys()},
			},
			Required: []string{"mood", "location", "objects", "people", "animals", "time", "weather", "artStyle"},
		},
	}
}

// benchmarkInstruction - 이미지/링크 벤치마킹 공용 지시문 꼬리
const benchmarkInstruction = `You MUST return a JSON object with the following fields to configure a generative AI prompt:
1. 'styleModifier': A detailed, artistic style description string (max 15-20 words).
2. 'time': Pick one exactly from ['새벽', '밤', '늦은 오후', '아침'].
3. 'weather': Pick one exactly from ['비', '맑음', '눈', '안개'].
4. 'mood': Pick one exactly from ['밤샘 공부', '새벽', '휴식', '도시 야경', '몽환적인', '평화로움', '잔잔한', '슬픔/고독', '행복/설렘', '신남/활기', '따뜻함'].`

// benchmarkConfig - 이미지/링크 벤치마킹 공용 응답 스키마
func benchmarkConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"styleModifier": {Type: genai.TypeString},
				"time":          {Type: genai.TypeString},
				"weather":       {Type: genai.TypeString},
				"mood":          {Type: genai.TypeString},
			},
			Required: []string{"styleModifier", "time", "weather", "mood"},
		},
	}
}

// feedbackConfig - 피드백은 부분 업데이트라 필수 필드 없음
func feedbackConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"mood":     {Type: genai.TypeString},
				"location": {Type: genai.TypeString},
				"objects":  {Type: genai.TypeString},
				"people":   {Type: genai.TypeString},
				"animals":  {Type: genai.TypeString},
				"time":     {Type: genai.TypeString, Enum: model.Times},
				"weather":  {Type: genai.TypeString, Enum: model.AutoWeathers},
				"modifier": {Type: genai.TypeString},
			},
		},
	}
}

// translateConfig - 동적 키의 한→영 매핑은 JSON 스키마로 지정
// (키 목록을 미리 알 수 없어 genai.Schema 대신 ResponseJsonSchema 사용)
func translateConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(float32(0.1)),
		ResponseMIMEType: "application/json",
		ResponseJsonSchema: map[string]any{
			"type":                 "object",
			"additionalProperties": map[string]any{"type": "string"},
		},
	}
}
