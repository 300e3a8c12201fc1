package catalog

// ArtStyle - 아트 스타일 정의
// Prompt는 최종 프롬프트 맨 앞에 그대로 들어가는 영어 스타일 프리픽스.
// PromptTail은 프롬프트 끝에 붙는 네거티브 프롬프트 절 (스타일별 오버라이드 가능).
type ArtStyle struct {
	Key        string `json:"key"`
	Label      string `json:"label"`
	Prompt     string `json:"prompt"`
	PromptTail string `json:"-"`
}

// DefaultPromptTail - 일러스트 계열 스타일 공통 꼬리절
const DefaultPromptTail = ". Focus on atmosphere. --no people, distracting elements, harsh lights, vibrant colors"

// cinematicPromptTail - 실사 스타일은 atmosphere 문장 없이 실사용 네거티브만 사용
const cinematicPromptTail = ". --no illustration, cartoon art, text, watermark, harsh lights, oversaturated colors"

// artStyles - 정의 순서가 곧 목록 순서 (맵 순회 비결정성 회피)
var artStyles = []ArtStyle{
	{
		Key:        "anime",
		Label:      "Lo-fi Anime",
		Prompt:     "Lo-fi and Chillhop anime art style, calming, cozy, nostalgic, soft ambient lighting, muted color palette, grainy film texture, subtle depth of field.",
		PromptTail: DefaultPromptTail,
	},
	{
		Key:        "pixel",
		Label:      "Pixel Art",
		Prompt:     "16-bit pixel art style, retro game aesthetic, vibrant but cozy colors, dithering, isometric perspective, arcade nostalgia.",
		PromptTail: DefaultPromptTail,
	},
	{
		Key:        "watercolor",
		Label:      "Watercolor",
		Prompt:     "Soft watercolor painting, artistic texture, wet-on-wet technique, pastel colors, dreamy atmosphere, paper texture, hand-drawn feel.",
		PromptTail: DefaultPromptTail,
	},
	{
		Key:        "isometric",
		Label:      "3D Isometric",
		Prompt:     "3D blender render, isometric view, soft clay texture, cozy lighting, miniature world feel, orthographic camera, clean edges.",
		PromptTail: DefaultPromptTail,
	},
	{
		Key:        "cinematic",
		Label:      "Cinematic Photo",
		Prompt:     "Cinematic photography, photorealistic, 35mm film, bokeh, golden hour, highly detailed, 8k resolution, atmospheric lighting.",
		PromptTail: cinematicPromptTail,
	},
}

var stylesByKey = func() map[string]ArtStyle {
	m := make(map[string]ArtStyle, len(artStyles))
	for _, s := range artStyles {
		m[s.Key] = s
	}
	return m
}()

// Styles - 전체 스타일 목록 (정의 순서)
func Styles() []ArtStyle {
	out := make([]ArtStyle, len(artStyles))
	copy(out, artStyles)
	return out
}

// StyleByKey - 키로 스타일 조회
// 미등록 키는 빈 프리픽스 + 기본 꼬리절
func StyleByKey(key string) ArtStyle {
	if s, ok := stylesByKey[key]; ok {
		return s
	}
	return ArtStyle{Key: key, PromptTail: DefaultPromptTail}
}

// StyleKeys - Gemini 응답 스키마의 artStyle 열거값
func StyleKeys() []string {
	out := make([]string, len(artStyles))
	for i, s := range artStyles {
		out[i] = s.Key
	}
	return out
}
