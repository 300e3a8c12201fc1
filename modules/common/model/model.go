package model

import "time"

// PromptInputs - 씬 입력 레코드 (세션이 소유, 항상 값 복사로 전달)
type PromptInputs struct {
	Mood     string `json:"mood"`
	Location string `json:"location"`
	Objects  string `json:"objects"`
	People   string `json:"people"`
	Animals  string `json:"animals"`
	Time     string `json:"time"`
	Weather  string `json:"weather"`

	Ratio    string `json:"ratio"`
	ArtStyle string `json:"artStyle"`

	Modifiers ModifierSet `json:"modifiers"`
}

// StyleSource - 스타일 슬롯의 출처 (이미지 벤치마킹 vs 링크 벤치마킹)
type StyleSource string

const (
	StyleSourceImage     StyleSource = "image"
	StyleSourceBenchmark StyleSource = "benchmark"
)

// 스타일 슬롯을 표시 문자열로 펼칠 때 사용하는 접두사
const (
	ImageStylePrefix     = "Image Style: "
	BenchmarkStylePrefix = "Benchmarked Style: "
)

// StyleSlot - 가장 최근 벤치마킹 결과 하나만 유지되는 배타 슬롯
type StyleSlot struct {
	Source StyleSource `json:"source"`
	Text   string      `json:"text"`
}

// ModifierSet - 커스텀 수정자 집합
// 자유 수정자는 누적되고, 스타일 슬롯은 카테고리 전체에서 항상 1개만 유지된다.
type ModifierSet struct {
	Freeform  []string   `json:"freeform"`
	StyleSlot *StyleSlot `json:"styleSlot,omitempty"`
}

// Clone - 깊은 복사
func (m ModifierSet) Clone() ModifierSet {
	out := ModifierSet{}
	if len(m.Freeform) > 0 {
		out.Freeform = make([]string, len(m.Freeform))
		copy(out.Freeform, m.Freeform)
	}
	if m.StyleSlot != nil {
		slot := *m.StyleSlot
		out.StyleSlot = &slot
	}
	return out
}

// Append - 자유 수정자 추가 (새 값 반환)
func (m ModifierSet) Append(text string) ModifierSet {
	out := m.Clone()
	out.Freeform = append(out.Freeform, text)
	return out
}

// WithStyleSlot - 스타일 슬롯 교체 (기존 이미지/벤치마크 슬롯은 출처 무관하게 제거됨)
func (m ModifierSet) WithStyleSlot(source StyleSource, text string) ModifierSet {
	out := m.Clone()
	out.StyleSlot = &StyleSlot{Source: source, Text: text}
	return out
}

// Display - 렌더링/조립 시점에만 단일 리스트로 펼친다
func (m ModifierSet) Display() []string {
	out := make([]string, 0, len(m.Freeform)+1)
	out = append(out, m.Freeform...)
	if m.StyleSlot != nil {
		switch m.StyleSlot.Source {
		case StyleSourceImage:
			out = append(out, ImageStylePrefix+m.StyleSlot.Text)
		default:
			out = append(out, BenchmarkStylePrefix+m.StyleSlot.Text)
		}
	}
	return out
}

// IsEmpty - 수정자가 하나도 없는지
func (m ModifierSet) IsEmpty() bool {
	return len(m.Freeform) == 0 && m.StyleSlot == nil
}

// Clone - 입력 레코드 깊은 복사
func (p PromptInputs) Clone() PromptInputs {
	out := p
	out.Modifiers = p.Modifiers.Clone()
	return out
}

// DefaultInputs - 초기 상태
func DefaultInputs() PromptInputs {
	return PromptInputs{
		Ratio:    "16:9",
		ArtStyle: "anime",
	}
}

// HistoryItem - 조립 성공 시점의 스냅샷
type HistoryItem struct {
	ID                int64        `json:"id"`
	Timestamp         time.Time    `json:"timestamp"`
	Prompt            string       `json:"prompt"`
	KoreanExplanation string       `json:"koreanExplanation"`
	Inputs            PromptInputs `json:"inputs"`
}

// Clone - 히스토리 항목 깊은 복사 (복원 후 편집이 과거 항목을 오염시키지 않도록)
func (h HistoryItem) Clone() HistoryItem {
	out := h
	out.Inputs = h.Inputs.Clone()
	return out
}

// 시간/날씨 열거값 - Gemini 응답 스키마와 폼 셀렉트가 공유
var (
	Times = []string{"새벽", "밤", "늦은 오후", "아침"}

	// 자동 생성은 흐림 포함, 벤치마킹 분석은 흐림 제외
	AutoWeathers      = []string{"비", "맑음", "눈", "안개", "흐림"}
	BenchmarkWeathers = []string{"비", "맑음", "눈", "안개"}

	BenchmarkMoods = []string{
		"밤샘 공부", "새벽", "휴식", "도시 야경", "몽환적인", "평화로움",
		"잔잔한", "슬픔/고독", "행복/설렘", "신남/활기", "따뜻함",
	}

	Ratios = []string{"16:9", "9:16", "1:1", "4:5"}
)

// Error codes
const (
	ErrCodeInvalidRequest    = "INVALID_REQUEST"
	ErrCodeSessionNotFound   = "SESSION_NOT_FOUND"
	ErrCodeEnrichmentFailed  = "ENRICHMENT_FAILED"
	ErrCodeTranslationFailed = "TRANSLATION_FAILED"
	ErrCodeStaleEnrichment   = "STALE_ENRICHMENT"
	ErrCodeGuestLimitReached = "GUEST_LIMIT_REACHED"
	ErrCodeHistoryNotFound   = "HISTORY_NOT_FOUND"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)
