package catalog

import "lofi-flow-server/modules/common/model"

// PresetData - 프리셋이 채우는 부분 입력 (nil 필드는 건드리지 않음)
type PresetData struct {
	Mood     *string `json:"mood,omitempty"`
	Location *string `json:"location,omitempty"`
	Objects  *string `json:"objects,omitempty"`
	People   *string `json:"people,omitempty"`
	Animals  *string `json:"animals,omitempty"`
	Time     *string `json:"time,omitempty"`
	Weather  *string `json:"weather,omitempty"`
}

// Preset - 한 번에 장면을 채우는 바로가기
type Preset struct {
	Key      string     `json:"key"`
	Label    string     `json:"label"`
	Emoji    string     `json:"emoji"`
	Category string     `json:"category"`
	Data     PresetData `json:"data"`
}

func s(v string) *string { return &v }

// presets - 정의 순서가 곧 목록 순서
var presets = []Preset{
	// daily
	{
		Key: "cafe-break", Label: "카페에서 한잔", Emoji: "☕", Category: "daily",
		Data: PresetData{Mood: s("휴식"), Location: s("카페"), Objects: s("커피"), Time: s("늦은 오후"), Weather: s("맑음")},
	},
	{
		Key: "all-nighter", Label: "밤샘 공부", Emoji: "📚", Category: "daily",
		Data: PresetData{Mood: s("밤샘 공부"), Location: s("책상 위"), Objects: s("노트북"), People: s("학생"), Time: s("밤"), Weather: s("비")},
	},
	{
		Key: "cozy-room", Label: "아늑한 방", Emoji: "🛏️", Category: "daily",
		Data: PresetData{Mood: s("따뜻함"), Location: s("작은 아파트 방"), Objects: s("식물"), Animals: s("고양이"), Time: s("밤"), Weather: s("비")},
	},

	// travel
	{
		Key: "beach-walk", Label: "바닷가 산책", Emoji: "🌊", Category: "travel",
		Data: PresetData{Mood: s("평화로움"), Location: s("바다"), Time: s("늦은 오후"), Weather: s("맑음")},
	},
	{
		Key: "city-night", Label: "도시의 밤", Emoji: "🌃", Category: "travel",
		Data: PresetData{Mood: s("도시 야경"), Location: s("루프탑"), Objects: s("술/와인"), Time: s("밤"), Weather: s("맑음")},
	},
	{
		Key: "rainy-street", Label: "빗속의 거리", Emoji: "🌧️", Category: "travel",
		Data: PresetData{Mood: s("잔잔한"), Location: s("거리"), Objects: s("가로등"), Time: s("초저녁"), Weather: s("비")},
	},

	// season
	{
		Key: "first-snow", Label: "첫눈 오는 날", Emoji: "❄️", Category: "season",
		Data: PresetData{Mood: s("따뜻함"), Location: s("창가"), Objects: s("커피"), Time: s("밤"), Weather: s("눈")},
	},
	{
		Key: "monsoon", Label: "장마철 오후", Emoji: "💧", Category: "season",
		Data: PresetData{Mood: s("몽환적인"), Location: s("창가"), Objects: s("책"), Time: s("늦은 오후"), Weather: s("비")},
	},
	{
		Key: "autumn-park", Label: "가을 공원", Emoji: "🍂", Category: "season",
		Data: PresetData{Mood: s("잔잔한"), Location: s("공원"), Animals: s("강아지"), Time: s("늦은 오후"), Weather: s("맑음")},
	},
}

var presetsByKey = func() map[string]Preset {
	m := make(map[string]Preset, len(presets))
	for _, p := range presets {
		m[p.Key] = p
	}
	return m
}()

// Presets - 전체 프리셋 목록 (정의 순서)
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// PresetByKey - 키로 프리셋 조회
func PresetByKey(key string) (Preset, bool) {
	p, ok := presetsByKey[key]
	return p, ok
}

// Apply - 프리셋 부분 입력을 현재 입력에 병합 (nil 필드는 유지)
func (p Preset) Apply(inputs model.PromptInputs) model.PromptInputs {
	out := inputs.Clone()
	if p.Data.Mood != nil {
		out.Mood = *p.Data.Mood
	}
	if p.Data.Location != nil {
		out.Location = *p.Data.Location
	}
	if p.Data.Objects != nil {
		out.Objects = *p.Data.Objects
	}
	if p.Data.People != nil {
		out.People = *p.Data.People
	}
	if p.Data.Animals != nil {
		out.Animals = *p.Data.Animals
	}
	if p.Data.Time != nil {
		out.Time = *p.Data.Time
	}
	if p.Data.Weather != nil {
		out.Weather = *p.Data.Weather
	}
	return out
}

// IsActive - 프리셋의 모든 지정 필드가 현재 입력과 일치하는지
// (UI 하이라이트용, 이후 필드 하나만 바뀌어도 해제)
func (p Preset) IsActive(inputs model.PromptInputs) bool {
	match := func(want *string, got string) bool {
		return want == nil || *want == got
	}
	return match(p.Data.Mood, inputs.Mood) &&
		match(p.Data.Location, inputs.Location) &&
		match(p.Data.Objects, inputs.Objects) &&
		match(p.Data.People, inputs.People) &&
		match(p.Data.Animals, inputs.Animals) &&
		match(p.Data.Time, inputs.Time) &&
		match(p.Data.Weather, inputs.Weather)
}

// ActivePresetKey - 현재 입력과 일치하는 첫 프리셋 키 (없으면 빈 문자열)
func ActivePresetKey(inputs model.PromptInputs) string {
	for _, p := range presets {
		if p.IsActive(inputs) {
			return p.Key
		}
	}
	return ""
}
