package enrich

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/genai"

	"lofi-flow-server/modules/common/model"
)

type fakeGen struct {
	response     string
	err          error
	calls        int
	lastContents []*genai.Content
	lastConfig   *genai.GenerateContentConfig
}

func (f *fakeGen) GenerateJSON(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (string, error) {
	f.calls++
	f.lastContents = contents
	f.lastConfig = config
	return f.response, f.err
}

func TestAutoGenerateFillsScene(t *testing.T) {
	fg := &fakeGen{response: `{
		"mood": "도시 야경",
		"location": "루프탑",
		"objects": "노트북",
		"people": "소녀",
		"animals": "고양이",
		"time": "밤",
		"weather": "비",
		"artStyle": "cinematic"
	}`}
	svc := NewService(fg)

	in := model.DefaultInputs()
	in.Modifiers = in.Modifiers.Append("neon glow")
	in.Modifiers = in.Modifiers.WithStyleSlot(model.StyleSourceImage, "vhs grain")

	out, err := svc.AutoGenerate(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Mood != "도시 야경" || out.Location != "루프탑" || out.ArtStyle != "cinematic" {
		t.Fatalf("scene not filled: %+v", out)
	}
	if out.Time != "밤" || out.Weather != "비" {
		t.Fatalf("enums not applied: time=%q weather=%q", out.Time, out.Weather)
	}

	// 자유 수정자는 초기화, 이미지 스타일 슬롯만 유지
	if len(out.Modifiers.Freeform) != 0 {
		t.Fatalf("freeform modifiers should be reset: %v", out.Modifiers.Freeform)
	}
	if out.Modifiers.StyleSlot == nil || out.Modifiers.StyleSlot.Text != "vhs grain" {
		t.Fatalf("image style slot should survive auto-generate: %+v", out.Modifiers.StyleSlot)
	}
}

func TestAutoGenerateDropsBenchmarkSlot(t *testing.T) {
	fg := &fakeGen{response: `{"mood":"휴식","location":"카페","objects":"커피","people":"학생","animals":"고양이","time":"밤","weather":"맑음","artStyle":"anime"}`}
	svc := NewService(fg)

	in := model.DefaultInputs()
	in.Modifiers = in.Modifiers.WithStyleSlot(model.StyleSourceBenchmark, "retro palette")

	out, err := svc.AutoGenerate(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Modifiers.StyleSlot != nil {
		t.Fatalf("benchmark slot should not survive auto-generate: %+v", out.Modifiers.StyleSlot)
	}
}

func TestAutoGenerateFailureLeavesNothing(t *testing.T) {
	fg := &fakeGen{err: errors.New("quota exceeded")}
	svc := NewService(fg)

	if _, err := svc.AutoGenerate(context.Background(), model.DefaultInputs()); err == nil {
		t.Fatalf("expected error to propagate")
	}
}

func TestAutoGenerateBadJSON(t *testing.T) {
	fg := &fakeGen{response: "not json"}
	svc := NewService(fg)

	if _, err := svc.AutoGenerate(context.Background(), model.DefaultInputs()); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestFeedbackPartialMerge(t *testing.T) {
	fg := &fakeGen{response: `{"weather":"비","time":"밤","modifier":"low key lighting, deep shadows"}`}
	svc := NewService(fg)

	in := model.DefaultInputs()
	in.Mood = "휴식"
	in.Location = "카페"

	out, err := svc.Feedback(context.Background(), in, "더 어둡게, 비 오는 밤으로")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Weather != "비" || out.Time != "밤" {
		t.Fatalf("returned fields not merged: %+v", out)
	}
	if out.Mood != "휴식" || out.Location != "카페" {
		t.Fatalf("absent fields must stay untouched: %+v", out)
	}
	if len(out.Modifiers.Freeform) != 1 || out.Modifiers.Freeform[0] != "low key lighting, deep shadows" {
		t.Fatalf("modifier not appended: %v", out.Modifiers.Freeform)
	}
}

func TestFeedbackWithoutModifier(t *testing.T) {
	fg := &fakeGen{response: `{"people":"사람 없음"}`}
	svc := NewService(fg)

	out, err := svc.Feedback(context.Background(), model.DefaultInputs(), "사람 빼줘")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.People != "사람 없음" {
		t.Fatalf("People = %q", out.People)
	}
	if !out.Modifiers.IsEmpty() {
		t.Fatalf("no modifier expected: %v", out.Modifiers.Display())
	}
}

func TestBenchmarkLinksMerge(t *testing.T) {
	fg := &fakeGen{response: `{"styleModifier":"dreamy cottagecore, soft grain","time":"새벽","weather":"안개","mood":"몽환적인"}`}
	svc := NewService(fg)

	in := model.DefaultInputs()
	in.Modifiers = in.Modifiers.WithStyleSlot(model.StyleSourceImage, "old slot")

	out, err := svc.BenchmarkLinks(context.Background(), in, []string{"https://youtube.com/watch?v=abc", ""})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Time != "새벽" || out.Weather != "안개" || out.Mood != "몽환적인" {
		t.Fatalf("benchmark fields not merged: %+v", out)
	}

	slot := out.Modifiers.StyleSlot
	if slot == nil || slot.Source != model.StyleSourceBenchmark || slot.Text != "dreamy cottagecore, soft grain" {
		t.Fatalf("style slot = %+v, want benchmark source replacing image slot", slot)
	}
}

func TestBenchmarkMissingKeysKeepPrevious(t *testing.T) {
	fg := &fakeGen{response: `{"styleModifier":"","time":"","weather":"","mood":""}`}
	svc := NewService(fg)

	in := model.DefaultInputs()
	in.Time = "밤"
	in.Weather = "비"
	in.Mood = "휴식"
	in.Modifiers = in.Modifiers.WithStyleSlot(model.StyleSourceImage, "old slot")

	out, err := svc.BenchmarkLinks(context.Background(), in, []string{"https://example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Time != "밤" || out.Weather != "비" || out.Mood != "휴식" {
		t.Fatalf("empty reply values must keep previous fields: %+v", out)
	}
	slot := out.Modifiers.StyleSlot
	if slot == nil || slot.Source != model.StyleSourceImage || slot.Text != "old slot" {
		t.Fatalf("empty styleModifier must keep previous slot: %+v", slot)
	}
}

func TestBenchmarkRejectsOutOfEnumValues(t *testing.T) {
	fg := &fakeGen{response: `{"styleModifier":"x","time":"한낮","weather":"흐림","mood":"신나는"}`}
	svc := NewService(fg)

	in := model.DefaultInputs()
	in.Time = "밤"
	in.Weather = "비"
	in.Mood = "휴식"

	// 벤치마킹 날씨 열거값에는 흐림이 없다
	out, err := svc.BenchmarkLinks(context.Background(), in, []string{"https://example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Time != "밤" || out.Weather != "비" || out.Mood != "휴식" {
		t.Fatalf("out-of-enum reply values must keep previous fields: %+v", out)
	}
}

func TestBenchmarkLinksRequiresLink(t *testing.T) {
	svc := NewService(&fakeGen{})
	if _, err := svc.BenchmarkLinks(context.Background(), model.DefaultInputs(), []string{" ", ""}); err == nil {
		t.Fatalf("expected error when no usable links")
	}
}

func TestBenchmarkImageSendsInlineData(t *testing.T) {
	fg := &fakeGen{response: `{"styleModifier":"soft pastel palette","time":"아침","weather":"맑음","mood":"따뜻함"}`}
	svc := NewService(fg)

	// 디코딩 불가능한 바이트는 원본 그대로 전송된다
	raw := []byte{0x01, 0x02, 0x03}
	out, err := svc.BenchmarkImage(context.Background(), model.DefaultInputs(), raw, "image/png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	slot := out.Modifiers.StyleSlot
	if slot == nil || slot.Source != model.StyleSourceImage {
		t.Fatalf("style slot = %+v, want image source", slot)
	}

	parts := fg.lastContents[0].Parts
	if parts[0].InlineData == nil || len(parts[0].InlineData.Data) != len(raw) {
		t.Fatalf("inline image data not sent")
	}
	if parts[1].Text == "" {
		t.Fatalf("instruction text part missing")
	}
}

func TestTranslateTerms(t *testing.T) {
	fg := &fakeGen{response: `{"우주 정거장":"a space station interior"}`}
	svc := NewService(fg)

	got, err := svc.TranslateTerms(context.Background(), []string{"우주 정거장"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["우주 정거장"] != "a space station interior" {
		t.Fatalf("translations = %v", got)
	}
}

func TestTranslateTermsEmptyBatch(t *testing.T) {
	fg := &fakeGen{}
	svc := NewService(fg)

	got, err := svc.TranslateTerms(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("translations = %v, want empty", got)
	}
	if fg.calls != 0 {
		t.Fatalf("empty batch must not call Gemini")
	}
}
