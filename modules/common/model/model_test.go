package model

import "testing"

func TestStyleSlotExclusive(t *testing.T) {
	m := ModifierSet{Freeform: []string{"warm lighting"}}

	m = m.WithStyleSlot(StyleSourceBenchmark, "retro 90s palette")
	m = m.WithStyleSlot(StyleSourceImage, "vhs grain")

	if m.StyleSlot == nil || m.StyleSlot.Source != StyleSourceImage {
		t.Fatalf("style slot = %+v, want image source", m.StyleSlot)
	}

	display := m.Display()
	styleCount := 0
	for _, entry := range display {
		if entry == "Image Style: vhs grain" || entry == "Benchmarked Style: retro 90s palette" {
			styleCount++
		}
	}
	if styleCount != 1 {
		t.Fatalf("display = %v, want exactly one style entry", display)
	}
	if display[0] != "warm lighting" {
		t.Fatalf("freeform modifiers must survive slot replacement: %v", display)
	}
}

func TestDisplayPrefixes(t *testing.T) {
	img := ModifierSet{}.WithStyleSlot(StyleSourceImage, "vhs grain")
	if got := img.Display(); len(got) != 1 || got[0] != "Image Style: vhs grain" {
		t.Fatalf("image slot display = %v", got)
	}

	bench := ModifierSet{}.WithStyleSlot(StyleSourceBenchmark, "retro palette")
	if got := bench.Display(); len(got) != 1 || got[0] != "Benchmarked Style: retro palette" {
		t.Fatalf("benchmark slot display = %v", got)
	}
}

func TestCloneIndependence(t *testing.T) {
	in := DefaultInputs()
	in.Modifiers = in.Modifiers.Append("warm lighting")

	clone := in.Clone()
	clone.Modifiers.Freeform[0] = "corrupted"
	clone.Mood = "휴식"

	if in.Modifiers.Freeform[0] != "warm lighting" {
		t.Fatalf("clone shares freeform backing array")
	}
	if in.Mood != "" {
		t.Fatalf("clone shares scalar state")
	}
}

func TestAppendDoesNotMutateReceiver(t *testing.T) {
	base := ModifierSet{Freeform: []string{"a"}}
	_ = base.Append("b")
	if len(base.Freeform) != 1 {
		t.Fatalf("Append mutated receiver: %v", base.Freeform)
	}
}
