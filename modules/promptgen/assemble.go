package promptgen

import (
	"strings"

	"lofi-flow-server/modules/catalog"
	"lofi-flow-server/modules/common/model"
)

// FallbackExplanation - 모든 필드가 비어있을 때의 안내 문장
const FallbackExplanation = "생성된 프롬프트 정보를 확인하세요."

// Assemble - 번역된 필드로 최종 프롬프트와 한국어 설명을 조립한다.
// 순수 함수: 입력만 읽고 부수효과 없음. 설명은 번역 전 원문 값을 사용한다.
func Assemble(in model.PromptInputs, tr Translated) (prompt string, explanation string) {
	style := catalog.StyleByKey(in.ArtStyle)

	mainDesc := tr.Mood

	var sceneDesc string
	locationPart := ""
	if tr.Location != "" {
		locationPart = " situated at " + tr.Location
	}
	timePart := ""
	if tr.Time != "" {
		timePart = " during " + tr.Time
	}
	weatherPart := ""
	if tr.Weather != "" {
		weatherPart = " with " + tr.Weather + " weather"
	}
	if locationPart != "" || timePart != "" || weatherPart != "" {
		sceneDesc = ". A scene" + locationPart + timePart + weatherPart
	}

	var charDesc string
	if tr.People != "" {
		charDesc += ". " + tr.People + " is visible in the frame"
	}
	if tr.Animals != "" {
		charDesc += ". " + tr.Animals + " is relaxing nearby"
	}

	var objDesc string
	if tr.Objects != "" {
		objDesc = ". Featuring " + tr.Objects
	}

	var modifierDesc string
	if len(tr.Modifiers) > 0 {
		modifierDesc = " " + strings.Join(tr.Modifiers, ", ") + "."
	}

	var fullContent strings.Builder
	for _, clause := range []string{mainDesc, sceneDesc, charDesc, objDesc} {
		fullContent.WriteString(clause)
	}

	ratioParam := ""
	if in.Ratio != "" {
		ratioParam = " --ar " + in.Ratio
	}

	prompt = style.Prompt + modifierDesc + " " + fullContent.String() + style.PromptTail + ratioParam

	return prompt, assembleExplanation(in)
}

// assembleExplanation - 번역 전 원문 값으로 한국어 설명 생성
func assembleExplanation(in model.PromptInputs) string {
	var kr strings.Builder
	if in.Weather != "" {
		kr.WriteString(in.Weather + " 날씨의 ")
	}
	if in.Time != "" {
		kr.WriteString(in.Time + ", ")
	}
	if in.Location != "" {
		kr.WriteString(in.Location + "에서 ")
	}
	if in.Mood != "" {
		kr.WriteString("'" + in.Mood + "' 분위기를 담고 있습니다. ")
	}
	if in.People != "" || in.Animals != "" {
		subjects := []string{}
		if in.People != "" {
			subjects = append(subjects, in.People)
		}
		if in.Animals != "" {
			subjects = append(subjects, in.Animals)
		}
		kr.WriteString("\n등장 요소: " + strings.Join(subjects, ", ") + ". ")
	}
	if in.Objects != "" {
		kr.WriteString("\n소품: " + in.Objects + ".")
	}

	if display := in.Modifiers.Display(); len(display) > 0 {
		lines := make([]string, len(display))
		for i, m := range display {
			lines[i] = "- " + m
		}
		kr.WriteString("\n\n✨ AI 수정/벤치마킹 반영됨:\n" + strings.Join(lines, "\n"))
	}

	if kr.Len() == 0 {
		return FallbackExplanation
	}
	return kr.String()
}
