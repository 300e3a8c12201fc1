package promptgen

import (
	"strings"
	"testing"

	"lofi-flow-server/modules/common/model"
)

const animePrefix = "Lo-fi and Chillhop anime art style, calming, cozy, nostalgic, soft ambient lighting, muted color palette, grainy film texture, subtle depth of field."

func TestAssembleEmptyInputs(t *testing.T) {
	in := model.DefaultInputs()

	prompt, explanation := Assemble(in, Translated{})

	want := animePrefix + " . Focus on atmosphere. --no people, distracting elements, harsh lights, vibrant colors --ar 16:9"
	if prompt != want {
		t.Fatalf("prompt mismatch:\n got: %q\nwant: %q", prompt, want)
	}
	if explanation != FallbackExplanation {
		t.Fatalf("explanation = %q, want fallback %q", explanation, FallbackExplanation)
	}
}

func TestAssembleFullScene(t *testing.T) {
	in := model.PromptInputs{
		Mood:     "휴식",
		Location: "카페",
		Objects:  "커피",
		People:   "소녀",
		Animals:  "고양이",
		Time:     "밤",
		Weather:  "비",
		Ratio:    "16:9",
		ArtStyle: "anime",
	}
	tr := Translated{
		Mood:     "relaxing, chill vibe",
		Location: "cozy cafe interior",
		Objects:  "steaming cup of coffee",
		People:   "a lo-fi girl, relaxed posture",
		Animals:  "a sleeping cat, fluffy",
		Time:     "night time",
		Weather:  "rainy, raindrops on glass",
	}

	prompt, explanation := Assemble(in, tr)

	want := animePrefix +
		" relaxing, chill vibe" +
		". A scene situated at cozy cafe interior during night time with rainy, raindrops on glass weather" +
		". a lo-fi girl, relaxed posture is visible in the frame" +
		". a sleeping cat, fluffy is relaxing nearby" +
		". Featuring steaming cup of coffee" +
		". Focus on atmosphere. --no people, distracting elements, harsh lights, vibrant colors --ar 16:9"
	if prompt != want {
		t.Fatalf("prompt mismatch:\n got: %q\nwant: %q", prompt, want)
	}

	wantExplanation := "비 날씨의 밤, 카페에서 '휴식' 분위기를 담고 있습니다. \n등장 요소: 소녀, 고양이. \n소품: 커피."
	if explanation != wantExplanation {
		t.Fatalf("explanation mismatch:\n got: %q\nwant: %q", explanation, wantExplanation)
	}
}

func TestAssembleModifierClause(t *testing.T) {
	in := model.PromptInputs{
		Mood:     "휴식",
		Ratio:    "1:1",
		ArtStyle: "anime",
		Modifiers: model.ModifierSet{
			Freeform:  []string{"warm color palette"},
			StyleSlot: &model.StyleSlot{Source: model.StyleSourceImage, Text: "vhs grain, retro palette"},
		},
	}
	tr := Translated{
		Mood:      "relaxing, chill vibe",
		Modifiers: []string{"warm color palette", "Image Style: vhs grain, retro palette"},
	}

	prompt, explanation := Assemble(in, tr)

	wantFragment := animePrefix + " warm color palette, Image Style: vhs grain, retro palette. relaxing, chill vibe."
	if !strings.HasPrefix(prompt, wantFragment) {
		t.Fatalf("prompt should start with %q, got %q", wantFragment, prompt)
	}
	if !strings.HasSuffix(prompt, " --ar 1:1") {
		t.Fatalf("prompt should end with ratio param, got %q", prompt)
	}

	wantModifierBlock := "\n\n✨ AI 수정/벤치마킹 반영됨:\n- warm color palette\n- Image Style: vhs grain, retro palette"
	if !strings.HasSuffix(explanation, wantModifierBlock) {
		t.Fatalf("explanation should list modifiers, got %q", explanation)
	}
}

func TestAssembleCinematicTail(t *testing.T) {
	in := model.PromptInputs{Mood: "휴식", Ratio: "16:9", ArtStyle: "cinematic"}
	tr := Translated{Mood: "relaxing, chill vibe"}

	prompt, _ := Assemble(in, tr)

	if strings.Contains(prompt, "Focus on atmosphere") {
		t.Fatalf("cinematic prompt should not carry the atmosphere sentence: %q", prompt)
	}
	if !strings.Contains(prompt, "--no illustration") {
		t.Fatalf("cinematic prompt should carry the photorealism negative clause: %q", prompt)
	}
}

func TestAssembleNoRatio(t *testing.T) {
	in := model.PromptInputs{Mood: "휴식", ArtStyle: "anime"}
	tr := Translated{Mood: "relaxing, chill vibe"}

	prompt, _ := Assemble(in, tr)

	if strings.Contains(prompt, "--ar") {
		t.Fatalf("prompt should omit ratio param when ratio empty: %q", prompt)
	}
}
