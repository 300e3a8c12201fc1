package enrich

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"lofi-flow-server/modules/common/httpx"
	"lofi-flow-server/modules/common/model"
	"lofi-flow-server/modules/promptgen"
	"lofi-flow-server/modules/realtime"
	"lofi-flow-server/modules/session"
)

type Handler struct {
	store   *session.Store
	svc     *Service
	gen     *promptgen.Service
	limiter *GuestLimiter
	archive *session.Archive
	hub     *realtime.Hub
}

func NewHandler(store *session.Store, svc *Service, gen *promptgen.Service, limiter *GuestLimiter, archive *session.Archive, hub *realtime.Hub) *Handler {
	return &Handler{store: store, svc: svc, gen: gen, limiter: limiter, archive: archive, hub: hub}
}

func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sessionID := mux.Vars(r)["sessionId"]
	sess, ok := h.store.Get(sessionID)
	if !ok {
		httpx.Error(w, http.StatusNotFound, model.ErrCodeSessionNotFound, "Session not found: "+sessionID)
		return nil, false
	}
	return sess, true
}

// checkGuestLimit - Gemini 호출 전 비회원 제한 확인
func (h *Handler) checkGuestLimit(w http.ResponseWriter, r *http.Request, sess *session.Session) bool {
	usage, reached := h.limiter.Check(r.Context(), sess.ID)
	if reached {
		log.Printf("🚫 [Enrich] Guest limit reached (session: %s, used: %d)", sess.ID, usage.UsedCount)
		httpx.Error(w, http.StatusTooManyRequests, model.ErrCodeGuestLimitReached, "Guest enrichment limit reached, try again tomorrow")
		return false
	}
	return true
}

// runEnrichment - begin → 원격 호출 → commit 공통 골격
// 실패하거나 그 사이 상태가 바뀌면 세션은 그대로 남는다.
func (h *Handler) runEnrichment(
	w http.ResponseWriter,
	r *http.Request,
	sess *session.Session,
	flow func(ctx context.Context, in model.PromptInputs) (model.PromptInputs, error),
) (model.PromptInputs, bool) {

	token, inputs := sess.BeginEnrichment()

	next, err := flow(r.Context(), inputs)
	if err != nil {
		log.Printf("❌ [Enrich] Flow failed: %v", err)
		httpx.Error(w, http.StatusBadGateway, model.ErrCodeEnrichmentFailed, "Enrichment failed, inputs unchanged")
		return model.PromptInputs{}, false
	}

	if !sess.CommitEnrichment(token, next) {
		httpx.Error(w, http.StatusConflict, model.ErrCodeStaleEnrichment, "Inputs changed during enrichment, result discarded")
		return model.PromptInputs{}, false
	}

	h.limiter.Consume(r.Context(), sess.ID)
	h.hub.Broadcast(realtime.Event{Type: "inputs_updated", SessionID: sess.ID, Payload: next})
	return next, true
}

// regenerate - enrichment 직후 프롬프트 재조립 + 히스토리 추가
// 번역 실패는 입력만 남기고 프롬프트는 비워둔다.
func (h *Handler) regenerate(r *http.Request, sess *session.Session) (string, string, *model.HistoryItem) {
	token, inputs := sess.BeginEnrichment()

	prompt, explanation, err := h.gen.Generate(r.Context(), inputs)
	if err != nil {
		log.Printf("⚠️  [Enrich] Regeneration skipped: %v", err)
		return "", "", nil
	}

	item, committed := sess.CommitAssembly(token, prompt, explanation)
	if !committed {
		return "", "", nil
	}

	go h.archive.SaveHistory(sess.ID, item)
	h.hub.Broadcast(realtime.Event{Type: "prompt_generated", SessionID: sess.ID, Payload: map[string]interface{}{
		"prompt":            prompt,
		"koreanExplanation": explanation,
	}})
	h.hub.Broadcast(realtime.Event{Type: "history_updated", SessionID: sess.ID, Payload: item})
	return prompt, explanation, &item
}

// HandleAutoGenerate - POST /api/sessions/{sessionId}/auto-generate
// 장면을 채운 뒤 곧바로 프롬프트까지 재조립한다.
func (h *Handler) HandleAutoGenerate(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}
	if !h.checkGuestLimit(w, r, sess) {
		return
	}

	next, ok := h.runEnrichment(w, r, sess, h.svc.AutoGenerate)
	if !ok {
		return
	}

	prompt, explanation, item := h.regenerate(r, sess)
	httpx.JSON(w, http.StatusOK, map[string]interface{}{
		"success":           true,
		"inputs":            next,
		"prompt":            prompt,
		"koreanExplanation": explanation,
		"historyItem":       item,
	})
}

// HandleFeedback - POST /api/sessions/{sessionId}/feedback
func (h *Handler) HandleFeedback(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req struct {
		Feedback string `json:"feedback"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Feedback) == "" {
		httpx.Error(w, http.StatusBadRequest, model.ErrCodeInvalidRequest, "Feedback text is required")
		return
	}

	if !h.checkGuestLimit(w, r, sess) {
		return
	}

	next, ok := h.runEnrichment(w, r, sess, func(ctx context.Context, in model.PromptInputs) (model.PromptInputs, error) {
		return h.svc.Feedback(ctx, in, req.Feedback)
	})
	if !ok {
		return
	}

	prompt, explanation, item := h.regenerate(r, sess)
	httpx.JSON(w, http.StatusOK, map[string]interface{}{
		"success":           true,
		"inputs":            next,
		"prompt":            prompt,
		"koreanExplanation": explanation,
		"historyItem":       item,
	})
}

// HandleBenchmarkImage - POST /api/sessions/{sessionId}/benchmark/image
func (h *Handler) HandleBenchmarkImage(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req struct {
		ImageData string `json:"imageData"` // base64
		MimeType  string `json:"mimeType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ImageData == "" {
		httpx.Error(w, http.StatusBadRequest, model.ErrCodeInvalidRequest, "Image data is required")
		return
	}

	imageData, err := base64.StdEncoding.DecodeString(req.ImageData)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, model.ErrCodeInvalidRequest, "Invalid base64 image data")
		return
	}
	mimeType := req.MimeType
	if mimeType == "" {
		mimeType = "image/png"
	}

	if !h.checkGuestLimit(w, r, sess) {
		return
	}

	next, ok := h.runEnrichment(w, r, sess, func(ctx context.Context, in model.PromptInputs) (model.PromptInputs, error) {
		return h.svc.BenchmarkImage(ctx, in, imageData, mimeType)
	})
	if !ok {
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"inputs":  next,
	})
}

// HandleBenchmarkLinks - POST /api/sessions/{sessionId}/benchmark/links
func (h *Handler) HandleBenchmarkLinks(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req struct {
		Links []string `json:"links"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, model.ErrCodeInvalidRequest, "Invalid request format")
		return
	}

	hasLink := false
	for _, link := range req.Links {
		if strings.TrimSpace(link) != "" {
			hasLink = true
			break
		}
	}
	if !hasLink {
		httpx.Error(w, http.StatusBadRequest, model.ErrCodeInvalidRequest, "At least one benchmark link is required")
		return
	}

	if !h.checkGuestLimit(w, r, sess) {
		return
	}

	next, ok := h.runEnrichment(w, r, sess, func(ctx context.Context, in model.PromptInputs) (model.PromptInputs, error) {
		return h.svc.BenchmarkLinks(ctx, in, req.Links)
	})
	if !ok {
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"inputs":  next,
	})
}

// HandleGuestLimit - GET /api/guest/limit?sessionId=
func (h *Handler) HandleGuestLimit(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("sessionId")
	if sessionID == "" {
		httpx.Error(w, http.StatusBadRequest, model.ErrCodeInvalidRequest, "sessionId query parameter required")
		return
	}

	usage, reached := h.limiter.Check(r.Context(), sessionID)
	httpx.JSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"usedCount":    usage.UsedCount,
		"limit":        h.limiter.Limit(),
		"limitReached": reached,
	})
}
