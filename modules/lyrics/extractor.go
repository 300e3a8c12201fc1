package lyrics

import (
	"strings"

	"lofi-flow-server/modules/common/model"
)

// trigger - 한 필드 값과 그 값을 발동시키는 가사 단어들
// 슬라이스 순서가 곧 우선순위: 먼저 선언된 항목이 먼저 매칭된다.
type trigger struct {
	value string
	words []string
}

var (
	timeTriggers = []trigger{
		{"새벽", []string{"새벽", "3시"}},
		{"밤", []string{"밤", "달", "별"}},
		{"아침", []string{"아침"}},
		{"늦은 오후", []string{"노을"}},
	}
	weatherTriggers = []trigger{
		{"비", []string{"비가", "빗소리"}},
		{"눈", []string{"눈이"}},
		{"맑음", []string{"맑은"}},
		{"안개", []string{"안개"}},
	}
	moodTriggers = []trigger{
		{"슬픔/고독", []string{"눈물", "이별"}},
		{"행복/설렘", []string{"사랑", "웃음"}},
		{"휴식", []string{"편안"}},
		{"평화로움", []string{"평화"}},
		{"따뜻함", []string{"따뜻한", "온기"}},
	}
	locationTriggers = []trigger{
		{"바다", []string{"바다"}},
		{"카페", []string{"카페"}},
		{"작은 아파트 방", []string{"방", "침대"}},
		{"거리", []string{"거리"}},
		{"교회", []string{"교회", "성당"}},
		{"앞마당", []string{"마당", "정원"}},
	}
	objectTriggers = []trigger{
		{"십자가", []string{"십자가"}},
		{"커피", []string{"커피"}},
		{"책", []string{"성경", "책"}},
	}
	peopleTriggers = []trigger{
		{"소녀", []string{"소녀", "여자"}},
		{"소년", []string{"소년", "남자"}},
		{"커플", []string{"우리", "연인"}},
	}
	animalTriggers = []trigger{
		{"고양이", []string{"고양이"}},
		{"강아지", []string{"강아지", "개"}},
		{"새", []string{"새"}},
	}
)

// findMatch - 선언 순서대로 첫 매칭 값 반환
func findMatch(text string, triggers []trigger) string {
	for _, t := range triggers {
		for _, word := range t.words {
			if strings.Contains(text, word) {
				return t.value
			}
		}
	}
	return ""
}

// Extract - 가사에서 장면 필드 추출
// 장면 7개 필드와 수정자를 모두 비운 뒤 매칭된 값만 채운다.
// 장소/분위기/시간이 하나도 안 잡히면 가사 원문을 컨텍스트 수정자로 남긴다.
func Extract(text string, in model.PromptInputs) model.PromptInputs {
	out := in.Clone()
	out.Mood = ""
	out.Location = ""
	out.Objects = ""
	out.People = ""
	out.Animals = ""
	out.Time = ""
	out.Weather = ""
	out.Modifiers = model.ModifierSet{}

	out.Time = findMatch(text, timeTriggers)
	out.Weather = findMatch(text, weatherTriggers)
	out.Mood = findMatch(text, moodTriggers)
	out.Location = findMatch(text, locationTriggers)
	out.Objects = findMatch(text, objectTriggers)
	out.People = findMatch(text, peopleTriggers)
	out.Animals = findMatch(text, animalTriggers)

	if out.Location == "" && out.Mood == "" && out.Time == "" {
		out.Modifiers = out.Modifiers.Append("Context: " + text)
	}

	return out
}
