package promptgen

import (
	"context"
	"fmt"
	"strings"

	"lofi-flow-server/modules/common/model"
	"lofi-flow-server/modules/lexicon"
)

// TermTranslator - 렉시콘에 없는 한국어 구절을 원격 번역하는 게이트웨이
// 반환 맵에 빠진 항목은 호출 측에서 원문 그대로 유지한다.
type TermTranslator interface {
	TranslateTerms(ctx context.Context, terms []string) (map[string]string, error)
}

// Translated - 번역이 끝난 영어 필드 (조립기 입력)
type Translated struct {
	Mood      string
	Location  string
	Objects   string
	People    string
	Animals   string
	Time      string
	Weather   string
	Modifiers []string
}

// batch - 한 번의 생성 요청에서 렉시콘 미등재 한국어 구절을 모아
// 플레이스홀더 토큰으로 치환해 두고, 원격 번역 1회로 한꺼번에 해소한다.
type batch struct {
	terms   []string       // 등록 순서 유지
	tokens  map[string]string // term → placeholder
	pending bool
}

func newBatch() *batch {
	return &batch{tokens: map[string]string{}}
}

// field - 쉼표 구분 필드를 부분별로 번역 (렉시콘 → 플레이스홀더 → 통과)
func (b *batch) field(value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, b.part(part))
	}
	return strings.Join(out, ", ")
}

// part - 단일 구절 처리
func (b *batch) part(part string) string {
	if en, ok := lexicon.Lookup(part); ok {
		return en
	}
	if !lexicon.ContainsHangul(part) {
		// 영어/기호 구절은 그대로 통과
		return part
	}
	return b.placeholder(part)
}

func (b *batch) placeholder(term string) string {
	if token, ok := b.tokens[term]; ok {
		return token
	}
	// 토큰은 원문 구절을 그대로 포함한다
	token := fmt.Sprintf("__kw%d[%s]__", len(b.terms), term)
	b.tokens[term] = token
	b.terms = append(b.terms, term)
	b.pending = true
	return token
}

// resolve - 원격 번역 결과로 플레이스홀더 치환
// 번역 실패 시 에러 반환 (조립 중단), 빠진 항목은 원문 유지.
func (b *batch) resolve(ctx context.Context, tt TermTranslator, texts []string) error {
	if !b.pending {
		return nil
	}
	if tt == nil {
		return fmt.Errorf("no translator configured for %d untranslated terms", len(b.terms))
	}

	translations, err := tt.TranslateTerms(ctx, b.terms)
	if err != nil {
		return fmt.Errorf("term translation failed: %w", err)
	}

	replacements := make([]string, 0, len(b.terms)*2)
	for _, term := range b.terms {
		en := strings.TrimSpace(translations[term])
		if en == "" {
			en = term
		}
		replacements = append(replacements, b.tokens[term], en)
	}
	replacer := strings.NewReplacer(replacements...)
	for i := range texts {
		texts[i] = replacer.Replace(texts[i])
	}
	return nil
}

// TranslateInputs - 입력 레코드 전체를 영어로 번역
// 모든 필드와 한국어 수정자가 하나의 원격 번역 배치를 공유한다.
func TranslateInputs(ctx context.Context, tt TermTranslator, in model.PromptInputs) (Translated, error) {
	b := newBatch()

	out := Translated{
		Mood:     b.field(in.Mood),
		Location: b.field(in.Location),
		Objects:  b.field(in.Objects),
		People:   b.field(in.People),
		Animals:  b.field(in.Animals),
		Time:     b.field(in.Time),
		Weather:  b.field(in.Weather),
	}

	// 수정자는 쉼표 분리 없이 구절 단위로 처리 (스타일 슬롯 텍스트는 이미 영어)
	display := in.Modifiers.Display()
	out.Modifiers = make([]string, 0, len(display))
	for _, m := range display {
		if lexicon.ContainsHangul(m) {
			out.Modifiers = append(out.Modifiers, b.placeholder(m))
		} else {
			out.Modifiers = append(out.Modifiers, m)
		}
	}

	// 필드 + 수정자를 한 슬라이스로 모아 일괄 치환
	texts := []string{out.Mood, out.Location, out.Objects, out.People, out.Animals, out.Time, out.Weather}
	texts = append(texts, out.Modifiers...)
	if err := b.resolve(ctx, tt, texts); err != nil {
		return Translated{}, err
	}
	out.Mood, out.Location, out.Objects, out.People = texts[0], texts[1], texts[2], texts[3]
	out.Animals, out.Time, out.Weather = texts[4], texts[5], texts[6]
	copy(out.Modifiers, texts[7:])

	return out, nil
}
