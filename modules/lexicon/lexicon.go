package lexicon

import (
	"strings"
	"unicode"
)

// keywordMap - 한국어 키워드 → 영어 프롬프트 조각 매핑
// UI 셀렉트 값과 자주 쓰는 변형을 모두 포함한다.
var keywordMap = map[string]string{
	// 분위기
	"밤샘 공부": "late night study session, deep focus",
	"새벽":    "early dawn, quiet atmosphere",
	"휴식":    "relaxing, chill vibe",
	"도시 야경": "city night view, bokeh lights",
	"몽환적인":  "dreamy, ethereal",
	"평화로움":  "peaceful, serene",
	"잔잔한":   "calm, tranquil",
	"슬픔/고독": "melancholic, solitary, emotional",
	"행복/설렘": "happy, cheerful, romantic",
	"신남/활기": "upbeat, energetic, vibrant",
	"따뜻함":   "warm, cozy, heartwarming",

	// 장소
	"창가":       "by the window",
	"책상 위":     "cluttered desk setup",
	"작은 아파트 방": "small cozy apartment room",
	"루프탑":      "rooftop terrace",
	"도서관":      "library corner",
	"뒷골목":      "back alley",
	"바다":       "ocean view, beach side",
	"카페":       "cozy cafe interior",
	"거리":       "city street",
	"교회":       "old church exterior, spiritual atmosphere",
	"앞마당":      "front yard, garden, grassy lawn",
	"공원":       "park, nature",

	// 인물
	"학생":    "a student studying hard, headphones on",
	"소녀":    "a lo-fi girl, relaxed posture",
	"소년":    "a lo-fi boy, casual hoodie",
	"여자":    "a young woman",
	"남자":    "a young man",
	"커플":    "a couple sitting together",
	"사람 없음": "no people, empty scene",

	// 동물
	"고양이": "a sleeping cat, fluffy",
	"강아지": "a puppy resting, cute dog",
	"새":   "birds sitting on power lines",
	"너구리": "a raccoon looking curious",

	// 소품
	"커피":    "steaming cup of coffee",
	"노트북":   "open laptop",
	"책":     "stacked books",
	"헤드폰":   "headphones",
	"식물":    "potted plants",
	"가로등":   "street lamp",
	"술/와인":  "glass of wine, cocktail",
	"편지":    "handwritten letter",
	"십자가":   "cross symbol, holy mood",

	// 시간
	"밤":     "night time",
	"늦은 오후": "late afternoon, golden hour",
	"초저녁":   "dusk, blue hour",
	"아침":    "morning sunlight, fresh air",

	// 날씨
	"비":  "rainy, raindrops on glass",
	"눈":  "snowy, gentle snowfall",
	"안개": "foggy, misty",
	"맑음": "clear sky, sunny",
	"흐림": "cloudy, overcast",
}

// Lookup - 정확히 일치하는 키워드 검색, 실패 시 공백 제거 후 재시도
func Lookup(term string) (string, bool) {
	if en, ok := keywordMap[term]; ok {
		return en, true
	}
	stripped := stripWhitespace(term)
	if en, ok := keywordMap[stripped]; ok {
		return en, true
	}
	return "", false
}

// ContainsHangul - 한글 음절/자모 포함 여부 (번역 필요 판단)
func ContainsHangul(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Hangul, r) {
			return true
		}
	}
	return false
}

func stripWhitespace(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if !unicode.IsSpace(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
