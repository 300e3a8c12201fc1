package catalog

import (
	"strings"
	"testing"

	"lofi-flow-server/modules/common/model"
)

func TestStyleByKeyUnknown(t *testing.T) {
	style := StyleByKey("vaporwave")
	if style.Prompt != "" {
		t.Fatalf("unknown key must yield an empty prefix, got %q", style.Prompt)
	}
	if style.PromptTail != DefaultPromptTail {
		t.Fatalf("unknown key must keep the default tail, got %q", style.PromptTail)
	}
}

func TestStyleTails(t *testing.T) {
	for _, style := range Styles() {
		if style.Key == "cinematic" {
			if strings.Contains(style.PromptTail, "Focus on atmosphere") {
				t.Fatalf("cinematic tail should drop the atmosphere sentence: %q", style.PromptTail)
			}
			continue
		}
		if style.PromptTail != DefaultPromptTail {
			t.Fatalf("style %q tail = %q, want default", style.Key, style.PromptTail)
		}
	}
}

func TestStyleKeysOrder(t *testing.T) {
	want := []string{"anime", "pixel", "watercolor", "isometric", "cinematic"}
	got := StyleKeys()
	if len(got) != len(want) {
		t.Fatalf("StyleKeys = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("StyleKeys[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPresetApplyMergesOnlyGivenFields(t *testing.T) {
	preset, ok := PresetByKey("beach-walk")
	if !ok {
		t.Fatalf("preset not found")
	}

	in := model.DefaultInputs()
	in.Objects = "노트북"
	in.ArtStyle = "pixel"

	out := preset.Apply(in)

	if out.Mood != "평화로움" || out.Location != "바다" {
		t.Fatalf("preset fields not applied: %+v", out)
	}
	if out.Objects != "노트북" {
		t.Fatalf("untouched field overwritten: Objects = %q", out.Objects)
	}
	if out.ArtStyle != "pixel" || out.Ratio != "16:9" {
		t.Fatalf("style/ratio must survive preset apply: %+v", out)
	}
}

func TestActivePresetTracking(t *testing.T) {
	preset, _ := PresetByKey("cafe-break")
	in := preset.Apply(model.DefaultInputs())

	if key := ActivePresetKey(in); key != "cafe-break" {
		t.Fatalf("ActivePresetKey = %q, want cafe-break", key)
	}

	// 필드 하나만 바뀌어도 해제
	in.Weather = "눈"
	if key := ActivePresetKey(in); key == "cafe-break" {
		t.Fatalf("preset should deactivate after a field change")
	}
}

func TestPresetCategories(t *testing.T) {
	valid := map[string]bool{"daily": true, "travel": true, "season": true}
	for _, p := range Presets() {
		if !valid[p.Category] {
			t.Fatalf("preset %q has invalid category %q", p.Key, p.Category)
		}
	}
}
