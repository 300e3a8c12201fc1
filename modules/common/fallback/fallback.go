package fallback

import (
	"strings"
)

// SafeString returns a trimmed string or the provided fallback.
func SafeString(value interface{}, fallback string) string {
	if s, ok := value.(string); ok {
		s = strings.TrimSpace(s)
		if s != "" {
			return s
		}
	}
	return fallback
}

// SafeEnum returns the trimmed value only when it is one of the allowed
// members, otherwise the fallback. 모델이 열거값 밖의 응답을 주면 기존 값 유지.
func SafeEnum(value interface{}, allowed []string, fallback string) string {
	s := SafeString(value, "")
	if s == "" {
		return fallback
	}
	for _, a := range allowed {
		if s == a {
			return s
		}
	}
	return fallback
}

// SafeAspectRatio provides a sane default aspect ratio.
func SafeAspectRatio(value interface{}) string {
	return SafeString(value, "16:9")
}
