package lyrics

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"lofi-flow-server/modules/common/httpx"
	"lofi-flow-server/modules/common/model"
	"lofi-flow-server/modules/realtime"
	"lofi-flow-server/modules/session"
)

type Handler struct {
	store *session.Store
	hub   *realtime.Hub
}

func NewHandler(store *session.Store, hub *realtime.Hub) *Handler {
	return &Handler{store: store, hub: hub}
}

// HandleAnalyze - POST /api/sessions/{sessionId}/lyrics
// 로컬 사전 기반이라 Gemini 호출도 비회원 제한도 없다.
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	sess, ok := h.store.Get(sessionID)
	if !ok {
		httpx.Error(w, http.StatusNotFound, model.ErrCodeSessionNotFound, "Session not found: "+sessionID)
		return
	}

	var req struct {
		Lyrics string `json:"lyrics"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Lyrics) == "" {
		httpx.Error(w, http.StatusBadRequest, model.ErrCodeInvalidRequest, "Lyrics text is required")
		return
	}

	updated := sess.UpdateInputs(func(in model.PromptInputs) model.PromptInputs {
		return Extract(req.Lyrics, in)
	})

	log.Printf("🎵 [Lyrics] Analyzed %d chars (session: %s)", len(req.Lyrics), sess.ID)
	h.hub.Broadcast(realtime.Event{Type: "inputs_updated", SessionID: sess.ID, Payload: updated})

	httpx.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"inputs":  updated,
	})
}
