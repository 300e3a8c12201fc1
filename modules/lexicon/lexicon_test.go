package lexicon

import "testing"

func TestLookupExact(t *testing.T) {
	en, ok := Lookup("밤샘 공부")
	if !ok {
		t.Fatalf("expected hit for exact keyword")
	}
	if en != "late night study session, deep focus" {
		t.Fatalf("Lookup = %q", en)
	}
}

func TestLookupWhitespaceStripped(t *testing.T) {
	en, ok := Lookup("밤샘공부")
	if !ok {
		t.Fatalf("expected hit after whitespace strip")
	}
	if en != "late night study session, deep focus" {
		t.Fatalf("Lookup = %q", en)
	}
}

func TestLookupMiss(t *testing.T) {
	if _, ok := Lookup("우주 정거장"); ok {
		t.Fatalf("expected miss for unmapped term")
	}
	if _, ok := Lookup("cyberpunk alley"); ok {
		t.Fatalf("expected miss for English text")
	}
}

func TestContainsHangul(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"카페", true},
		{"cozy cafe", false},
		{"neon 거리", true},
		{"", false},
		{"--ar 16:9", false},
	}
	for _, c := range cases {
		if got := ContainsHangul(c.in); got != c.want {
			t.Fatalf("ContainsHangul(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
