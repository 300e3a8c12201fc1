package session

import (
	"fmt"
	"testing"

	"lofi-flow-server/modules/common/model"
)

func newTestSession() *Session {
	return newSession("test-session", 10)
}

func assemble(t *testing.T, sess *Session, prompt string) model.HistoryItem {
	t.Helper()
	token, _ := sess.BeginEnrichment()
	item, ok := sess.CommitAssembly(token, prompt, "설명: "+prompt)
	if !ok {
		t.Fatalf("assembly unexpectedly stale for %q", prompt)
	}
	return item
}

func TestHistoryCap(t *testing.T) {
	sess := newTestSession()

	for i := 1; i <= 11; i++ {
		assemble(t, sess, fmt.Sprintf("prompt-%d", i))
	}

	history := sess.History()
	if len(history) != 10 {
		t.Fatalf("history length = %d, want 10", len(history))
	}
	if history[0].Prompt != "prompt-11" {
		t.Fatalf("newest item = %q, want prompt-11 at index 0", history[0].Prompt)
	}
	for _, item := range history {
		if item.Prompt == "prompt-1" {
			t.Fatalf("oldest item should have been evicted")
		}
	}
}

func TestHistoryIDsMonotonic(t *testing.T) {
	sess := newTestSession()

	var last int64
	for i := 0; i < 5; i++ {
		item := assemble(t, sess, fmt.Sprintf("prompt-%d", i))
		if item.ID <= last {
			t.Fatalf("history id %d not greater than previous %d", item.ID, last)
		}
		last = item.ID
	}
}

func TestRestoreReproducesSnapshot(t *testing.T) {
	sess := newTestSession()

	sess.UpdateInputs(func(in model.PromptInputs) model.PromptInputs {
		in.Mood = "휴식"
		in.Location = "카페"
		return in
	})
	first := assemble(t, sess, "first-prompt")

	sess.UpdateInputs(func(in model.PromptInputs) model.PromptInputs {
		in.Mood = "도시 야경"
		in.Location = "루프탑"
		return in
	})
	assemble(t, sess, "second-prompt")

	before := sess.History()

	snap, ok := sess.Restore(first.ID)
	if !ok {
		t.Fatalf("restore failed for id %d", first.ID)
	}
	if snap.Prompt != "first-prompt" {
		t.Fatalf("restored prompt = %q", snap.Prompt)
	}
	if snap.Inputs.Mood != "휴식" || snap.Inputs.Location != "카페" {
		t.Fatalf("restored inputs = %+v", snap.Inputs)
	}

	after := sess.History()
	if len(after) != len(before) {
		t.Fatalf("restore changed history length: %d → %d", len(before), len(after))
	}
	for i := range before {
		if before[i].ID != after[i].ID || before[i].Prompt != after[i].Prompt {
			t.Fatalf("restore reordered history at %d", i)
		}
	}
}

func TestRestoreUnknownID(t *testing.T) {
	sess := newTestSession()
	if _, ok := sess.Restore(12345); ok {
		t.Fatalf("restore should fail for unknown id")
	}
}

func TestHistoryItemsAreDeepCopies(t *testing.T) {
	sess := newTestSession()

	sess.UpdateInputs(func(in model.PromptInputs) model.PromptInputs {
		in.Modifiers = in.Modifiers.Append("warm lighting")
		return in
	})
	item := assemble(t, sess, "prompt")

	// 이후 편집이 히스토리 스냅샷을 오염시키면 안 된다
	sess.UpdateInputs(func(in model.PromptInputs) model.PromptInputs {
		in.Modifiers = in.Modifiers.Append("neon glow")
		in.Mood = "도시 야경"
		return in
	})

	stored := sess.History()[0]
	if len(stored.Inputs.Modifiers.Freeform) != 1 || stored.Inputs.Modifiers.Freeform[0] != "warm lighting" {
		t.Fatalf("history snapshot mutated: %+v", stored.Inputs.Modifiers)
	}
	if stored.Inputs.Mood != "" {
		t.Fatalf("history snapshot mood mutated: %q", stored.Inputs.Mood)
	}

	// 반환된 복사본을 고쳐도 세션 내부는 그대로
	item.Inputs.Modifiers.Freeform[0] = "corrupted"
	if sess.History()[0].Inputs.Modifiers.Freeform[0] == "corrupted" {
		t.Fatalf("returned item shares backing storage with session history")
	}
}

func TestStaleEnrichmentDiscarded(t *testing.T) {
	sess := newTestSession()

	token, snapshot := sess.BeginEnrichment()

	// 원격 호출 사이에 사용자가 입력을 바꿈
	sess.UpdateInputs(func(in model.PromptInputs) model.PromptInputs {
		in.Mood = "따뜻함"
		return in
	})

	enriched := snapshot.Clone()
	enriched.Mood = "몽환적인"
	if sess.CommitEnrichment(token, enriched) {
		t.Fatalf("stale enrichment commit should be rejected")
	}
	if got := sess.Inputs().Mood; got != "따뜻함" {
		t.Fatalf("session mood = %q, want user edit preserved", got)
	}
}

func TestStaleAssemblyDiscarded(t *testing.T) {
	sess := newTestSession()

	token, _ := sess.BeginEnrichment()
	sess.UpdateInputs(func(in model.PromptInputs) model.PromptInputs {
		in.Mood = "휴식"
		return in
	})

	if _, ok := sess.CommitAssembly(token, "prompt", "설명"); ok {
		t.Fatalf("stale assembly commit should be rejected")
	}
	if len(sess.History()) != 0 {
		t.Fatalf("stale assembly must not touch history")
	}
}

func TestResetKeepsHistory(t *testing.T) {
	sess := newTestSession()

	sess.UpdateInputs(func(in model.PromptInputs) model.PromptInputs {
		in.Mood = "휴식"
		return in
	})
	assemble(t, sess, "prompt")

	inputs := sess.Reset()
	if inputs.Mood != "" || inputs.Ratio != "16:9" || inputs.ArtStyle != "anime" {
		t.Fatalf("reset inputs = %+v, want defaults", inputs)
	}

	snap := sess.Snapshot()
	if snap.Prompt != "" || snap.Explanation != "" {
		t.Fatalf("reset should clear displayed prompt")
	}
	if len(sess.History()) != 1 {
		t.Fatalf("reset should keep history")
	}
}

func TestStoreCreateAndGet(t *testing.T) {
	store := NewStore(10)

	sess := store.Create()
	if sess.ID == "" {
		t.Fatalf("session id must be set")
	}

	got, ok := store.Get(sess.ID)
	if !ok || got != sess {
		t.Fatalf("store lookup failed")
	}
	if _, ok := store.Get("missing"); ok {
		t.Fatalf("lookup of unknown id should fail")
	}
	if store.Count() != 1 {
		t.Fatalf("store count = %d, want 1", store.Count())
	}
}
