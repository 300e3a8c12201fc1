package session

import (
	"log"

	"github.com/supabase-community/supabase-go"
	"lofi-flow-server/modules/common/config"
	"lofi-flow-server/modules/common/model"
)

// Archive - 히스토리 항목의 Supabase 보관 (베스트 에포트)
// 메모리 히스토리가 항상 기준이고, 보관 실패는 로그만 남긴다.
type Archive struct {
	client *supabase.Client
}

// NewArchive - Supabase 설정이 없으면 비활성 아카이브 반환
func NewArchive(cfg *config.Config) *Archive {
	if cfg.SupabaseURL == "" || cfg.SupabaseServiceKey == "" {
		return &Archive{}
	}

	client, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, &supabase.ClientOptions{})
	if err != nil {
		log.Printf("❌ Failed to create Supabase client: %v (archive disabled)", err)
		return &Archive{}
	}

	log.Printf("✅ History archive enabled (Supabase)")
	return &Archive{client: client}
}

// Enabled - 보관 활성 여부
func (a *Archive) Enabled() bool {
	return a != nil && a.client != nil
}

type historyRow struct {
	SessionID         string `json:"session_id"`
	HistoryID         int64  `json:"history_id"`
	Prompt            string `json:"prompt"`
	KoreanExplanation string `json:"korean_explanation"`
	ArtStyle          string `json:"art_style"`
	Ratio             string `json:"ratio"`
	CreatedAt         string `json:"created_at"`
}

// SaveHistory - 히스토리 항목 기록, 고루틴에서 fire-and-forget으로 호출
func (a *Archive) SaveHistory(sessionID string, item model.HistoryItem) {
	if !a.Enabled() {
		return
	}

	row := historyRow{
		SessionID:         sessionID,
		HistoryID:         item.ID,
		Prompt:            item.Prompt,
		KoreanExplanation: item.KoreanExplanation,
		ArtStyle:          item.Inputs.ArtStyle,
		Ratio:             item.Inputs.Ratio,
		CreatedAt:         item.Timestamp.UTC().Format("2006-01-02T15:04:05.000Z"),
	}

	_, _, err := a.client.From("lofi_history").
		Insert(row, false, "", "", "").
		Execute()
	if err != nil {
		log.Printf("⚠️  Failed to archive history item %d: %v", item.ID, err)
		return
	}

	log.Printf("📤 History item %d archived (session: %s)", item.ID, sessionID)
}
