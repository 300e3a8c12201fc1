package session

import (
	"sync"
	"time"

	"lofi-flow-server/modules/common/model"
)

// Session - 한 UI 세션의 프롬프트 작업 상태
// 입력 레코드는 세션이 단독 소유하며 밖으로는 항상 깊은 복사만 나간다.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu           sync.Mutex
	inputs       model.PromptInputs
	prompt       string
	explanation  string
	history      []model.HistoryItem
	historyLimit int

	// enrichSeq는 상태가 바뀔 때마다 증가한다.
	// 원격 enrichment는 시작 시점의 값을 들고 있다가 커밋 시 비교해
	// 그 사이 상태가 바뀌었으면 결과를 버린다.
	enrichSeq uint64

	lastHistoryID int64
	lastActivity  time.Time
}

// Snapshot - 현재 상태 조회용 복사본
type Snapshot struct {
	Inputs      model.PromptInputs
	Prompt      string
	Explanation string
}

func newSession(id string, historyLimit int) *Session {
	now := time.Now()
	return &Session{
		ID:           id,
		CreatedAt:    now,
		inputs:       model.DefaultInputs(),
		historyLimit: historyLimit,
		lastActivity: now,
	}
}

// Snapshot - 입력/프롬프트/설명의 일관된 복사본
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Inputs:      s.inputs.Clone(),
		Prompt:      s.prompt,
		Explanation: s.explanation,
	}
}

// Inputs - 현재 입력 복사본
func (s *Session) Inputs() model.PromptInputs {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inputs.Clone()
}

// UpdateInputs - 입력 변경 (변환 함수는 복사본을 받아 새 값을 반환)
func (s *Session) UpdateInputs(fn func(model.PromptInputs) model.PromptInputs) model.PromptInputs {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputs = fn(s.inputs.Clone()).Clone()
	s.enrichSeq++
	s.lastActivity = time.Now()
	return s.inputs.Clone()
}

// Reset - 입력과 표시 프롬프트 초기화 (히스토리는 유지)
func (s *Session) Reset() model.PromptInputs {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputs = model.DefaultInputs()
	s.prompt = ""
	s.explanation = ""
	s.enrichSeq++
	s.lastActivity = time.Now()
	return s.inputs.Clone()
}

// BeginEnrichment - 원격 호출 시작: 현재 토큰과 입력 스냅샷 반환
func (s *Session) BeginEnrichment() (uint64, model.PromptInputs) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActivity = time.Now()
	return s.enrichSeq, s.inputs.Clone()
}

// CommitEnrichment - 원격 호출 결과 반영
// 시작 이후 상태가 바뀌었으면 (토큰 불일치) 결과를 버리고 false 반환.
func (s *Session) CommitEnrichment(token uint64, next model.PromptInputs) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.enrichSeq {
		return false
	}
	s.inputs = next.Clone()
	s.enrichSeq++
	s.lastActivity = time.Now()
	return true
}

// CommitAssembly - 조립 결과 반영 + 히스토리 추가
// 번역 호출 동안 입력이 바뀌었으면 버린다.
func (s *Session) CommitAssembly(token uint64, prompt, explanation string) (model.HistoryItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.enrichSeq {
		return model.HistoryItem{}, false
	}

	s.prompt = prompt
	s.explanation = explanation

	// 밀리초 타임스탬프 ID, 같은 밀리초면 +1로 단조 증가 유지
	id := time.Now().UnixMilli()
	if id <= s.lastHistoryID {
		id = s.lastHistoryID + 1
	}
	s.lastHistoryID = id

	item := model.HistoryItem{
		ID:                id,
		Timestamp:         time.Now(),
		Prompt:            prompt,
		KoreanExplanation: explanation,
		Inputs:            s.inputs.Clone(),
	}

	// 최신순, 상한 초과 시 가장 오래된 항목 제거
	s.history = append([]model.HistoryItem{item}, s.history...)
	if len(s.history) > s.historyLimit {
		s.history = s.history[:s.historyLimit]
	}

	s.enrichSeq++
	s.lastActivity = time.Now()
	return item.Clone(), true
}

// History - 히스토리 복사본 (최신순)
func (s *Session) History() []model.HistoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.HistoryItem, len(s.history))
	for i, item := range s.history {
		out[i] = item.Clone()
	}
	return out
}

// Restore - 히스토리 항목을 라이브 상태로 복원 (히스토리 자체는 불변)
func (s *Session) Restore(id int64) (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.history {
		if item.ID == id {
			restored := item.Clone()
			s.inputs = restored.Inputs
			s.prompt = restored.Prompt
			s.explanation = restored.KoreanExplanation
			s.enrichSeq++
			s.lastActivity = time.Now()
			return Snapshot{
				Inputs:      s.inputs.Clone(),
				Prompt:      s.prompt,
				Explanation: s.explanation,
			}, true
		}
	}
	return Snapshot{}, false
}

// LastActivity - 정리 루틴용
func (s *Session) LastActivity() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity
}
