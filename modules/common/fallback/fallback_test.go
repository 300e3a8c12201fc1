package fallback

import "testing"

func TestSafeString(t *testing.T) {
	if got := SafeString("  비  ", "x"); got != "비" {
		t.Fatalf("SafeString = %q", got)
	}
	if got := SafeString("", "previous"); got != "previous" {
		t.Fatalf("SafeString empty = %q", got)
	}
	if got := SafeString(nil, "previous"); got != "previous" {
		t.Fatalf("SafeString nil = %q", got)
	}
	if got := SafeString(42, "previous"); got != "previous" {
		t.Fatalf("SafeString non-string = %q", got)
	}
}

func TestSafeEnum(t *testing.T) {
	allowed := []string{"비", "맑음", "눈", "안개"}

	if got := SafeEnum("눈", allowed, "비"); got != "눈" {
		t.Fatalf("SafeEnum member = %q", got)
	}
	if got := SafeEnum("흐림", allowed, "비"); got != "비" {
		t.Fatalf("SafeEnum non-member = %q", got)
	}
	if got := SafeEnum("", allowed, "비"); got != "비" {
		t.Fatalf("SafeEnum empty = %q", got)
	}
}

func TestSafeAspectRatio(t *testing.T) {
	if got := SafeAspectRatio(nil); got != "16:9" {
		t.Fatalf("SafeAspectRatio = %q", got)
	}
	if got := SafeAspectRatio("9:16"); got != "9:16" {
		t.Fatalf("SafeAspectRatio = %q", got)
	}
}
