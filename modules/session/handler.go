package session

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"lofi-flow-server/modules/catalog"
	"lofi-flow-server/modules/common/httpx"
	"lofi-flow-server/modules/common/model"
	"lofi-flow-server/modules/promptgen"
	"lofi-flow-server/modules/realtime"
)

type Handler struct {
	store   *Store
	gen     *promptgen.Service
	archive *Archive
	hub     *realtime.Hub
}

func NewHandler(store *Store, gen *promptgen.Service, archive *Archive, hub *realtime.Hub) *Handler {
	return &Handler{store: store, gen: gen, archive: archive, hub: hub}
}

// sessionResponse - 세션 상태 응답 (activePreset은 UI 하이라이트용)
type sessionResponse struct {
	Success           bool               `json:"success"`
	SessionID         string             `json:"sessionId"`
	Inputs            model.PromptInputs `json:"inputs"`
	Prompt            string             `json:"prompt"`
	KoreanExplanation string             `json:"koreanExplanation"`
	ActivePreset      string             `json:"activePreset"`
}

func (h *Handler) respondState(w http.ResponseWriter, sess *Session) {
	snap := sess.Snapshot()
	httpx.JSON(w, http.StatusOK, sessionResponse{
		Success:           true,
		SessionID:         sess.ID,
		Inputs:            snap.Inputs,
		Prompt:            snap.Prompt,
		KoreanExplanation: snap.Explanation,
		ActivePreset:      catalog.ActivePresetKey(snap.Inputs),
	})
}

// lookup - 경로의 sessionId로 세션 조회
func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	sessionID := mux.Vars(r)["sessionId"]
	sess, ok := h.store.Get(sessionID)
	if !ok {
		httpx.Error(w, http.StatusNotFound, model.ErrCodeSessionNotFound, "Session not found: "+sessionID)
		return nil, false
	}
	return sess, true
}

// HandleCreate - POST /api/sessions
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	sess := h.store.Create()
	h.respondState(w, sess)
}

// HandleGet - GET /api/sessions/{sessionId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}
	h.respondState(w, sess)
}

// inputsRequest - 부분 업데이트 (nil 필드는 유지)
type inputsRequest struct {
	Mood     *string `json:"mood"`
	Location *string `json:"location"`
	Objects  *string `json:"objects"`
	People   *string `json:"people"`
	Animals  *string `json:"animals"`
	Time     *string `json:"time"`
	Weather  *string `json:"weather"`
	Ratio    *string `json:"ratio"`
	ArtStyle *string `json:"artStyle"`
}

// HandleUpdateInputs - PUT /api/sessions/{sessionId}/inputs
func (h *Handler) HandleUpdateInputs(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req inputsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, model.ErrCodeInvalidRequest, "Invalid request format")
		return
	}

	updated := sess.UpdateInputs(func(in model.PromptInputs) model.PromptInputs {
		apply := func(dst *string, src *string) {
			if src != nil {
				*dst = *src
			}
		}
		apply(&in.Mood, req.Mood)
		apply(&in.Location, req.Location)
		apply(&in.Objects, req.Objects)
		apply(&in.People, req.People)
		apply(&in.Animals, req.Animals)
		apply(&in.Time, req.Time)
		apply(&in.Weather, req.Weather)
		apply(&in.Ratio, req.Ratio)
		apply(&in.ArtStyle, req.ArtStyle)
		return in
	})

	h.hub.Broadcast(realtime.Event{Type: "inputs_updated", SessionID: sess.ID, Payload: updated})
	h.respondState(w, sess)
}

// HandleApplyPreset - POST /api/sessions/{sessionId}/preset
func (h *Handler) HandleApplyPreset(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Key == "" {
		httpx.Error(w, http.StatusBadRequest, model.ErrCodeInvalidRequest, "Preset key is required")
		return
	}

	preset, found := catalog.PresetByKey(req.Key)
	if !found {
		httpx.Error(w, http.StatusBadRequest, model.ErrCodeInvalidRequest, "Unknown preset: "+req.Key)
		return
	}

	updated := sess.UpdateInputs(preset.Apply)
	log.Printf("✅ Preset applied: %s (session: %s)", preset.Key, sess.ID)

	h.hub.Broadcast(realtime.Event{Type: "inputs_updated", SessionID: sess.ID, Payload: updated})
	h.respondState(w, sess)
}

// HandleReset - POST /api/sessions/{sessionId}/reset
func (h *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}

	updated := sess.Reset()
	h.hub.Broadcast(realtime.Event{Type: "inputs_updated", SessionID: sess.ID, Payload: updated})
	h.respondState(w, sess)
}

// HandleGenerate - POST /api/sessions/{sessionId}/generate
// 번역 호출 동안 입력이 바뀌면 결과를 버리고 409를 반환한다.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}

	token, inputs := sess.BeginEnrichment()

	prompt, explanation, err := h.gen.Generate(r.Context(), inputs)
	if err != nil {
		httpx.Error(w, http.StatusBadGateway, model.ErrCodeTranslationFailed, "Translation failed, prompt not generated")
		return
	}

	item, committed := sess.CommitAssembly(token, prompt, explanation)
	if !committed {
		httpx.Error(w, http.StatusConflict, model.ErrCodeStaleEnrichment, "Inputs changed during generation, result discarded")
		return
	}

	go h.archive.SaveHistory(sess.ID, item)
	h.hub.Broadcast(realtime.Event{Type: "prompt_generated", SessionID: sess.ID, Payload: map[string]interface{}{
		"prompt":            prompt,
		"koreanExplanation": explanation,
	}})
	h.hub.Broadcast(realtime.Event{Type: "history_updated", SessionID: sess.ID, Payload: item})

	httpx.JSON(w, http.StatusOK, map[string]interface{}{
		"success":           true,
		"prompt":            prompt,
		"koreanExplanation": explanation,
		"historyItem":       item,
	})
}

// HandleHistory - GET /api/sessions/{sessionId}/history
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"history": sess.History(),
	})
}

// HandleRestore - POST /api/sessions/{sessionId}/history/{itemId}/restore
func (h *Handler) HandleRestore(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}

	itemID, err := strconv.ParseInt(mux.Vars(r)["itemId"], 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, model.ErrCodeInvalidRequest, "Invalid history item id")
		return
	}

	snap, found := sess.Restore(itemID)
	if !found {
		httpx.Error(w, http.StatusNotFound, model.ErrCodeHistoryNotFound, "History item not found")
		return
	}

	log.Printf("✅ History item %d restored (session: %s)", itemID, sess.ID)
	h.hub.Broadcast(realtime.Event{Type: "inputs_updated", SessionID: sess.ID, Payload: snap.Inputs})
	h.hub.Broadcast(realtime.Event{Type: "prompt_generated", SessionID: sess.ID, Payload: map[string]interface{}{
		"prompt":            snap.Prompt,
		"koreanExplanation": snap.Explanation,
	}})
	h.respondState(w, sess)
}
