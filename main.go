package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"lofi-flow-server/modules/catalog"
	"lofi-flow-server/modules/common/config"
	"lofi-flow-server/modules/common/gemini"
	"lofi-flow-server/modules/common/httpx"
	redisutil "lofi-flow-server/modules/common/redis"
	"lofi-flow-server/modules/enrich"
	"lofi-flow-server/modules/lyrics"
	"lofi-flow-server/modules/promptgen"
	"lofi-flow-server/modules/realtime"
	"lofi-flow-server/modules/session"
)

// CORS 헤더 추가
func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// 헬스 체크 엔드포인트
func healthCheck(store *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]interface{}{
			"status":         "healthy",
			"service":        "lofi-flow-server",
			"activeSessions": store.Count(),
		})
	}
}

func main() {
	// 환경변수 로드
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	// Gemini 클라이언트
	geminiClient, err := gemini.NewClient(context.Background(), cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini client: %v", err)
	}

	// Redis (없으면 게스트 제한 비활성화)
	rdb := redisutil.Connect(cfg)

	// 세션 저장소 + 정리 루틴
	store := session.NewStore(cfg.HistoryLimit)
	store.StartCleanup(10*time.Minute, 2*time.Hour)

	// 공용 컴포넌트
	hub := realtime.NewHub()
	archive := session.NewArchive(cfg)
	enrichService := enrich.NewService(geminiClient)
	limiter := enrich.NewGuestLimiter(rdb, cfg.GuestEnrichLimit)
	genService := promptgen.NewService(enrichService)

	// 핸들러
	catalogHandler := catalog.NewHandler()
	sessionHandler := session.NewHandler(store, genService, archive, hub)
	enrichHandler := enrich.NewHandler(store, enrichService, genService, limiter, archive, hub)
	lyricsHandler := lyrics.NewHandler(store, hub)

	// 라우터 설정
	r := mux.NewRouter()
	r.Use(enableCORS)

	r.HandleFunc("/", healthCheck(store)).Methods("GET")
	r.HandleFunc("/health", healthCheck(store)).Methods("GET")
	r.HandleFunc("/ws", hub.HandleWS)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/catalog/styles", catalogHandler.HandleStyles).Methods("GET")
	api.HandleFunc("/catalog/presets", catalogHandler.HandlePresets).Methods("GET")
	api.HandleFunc("/guest/limit", enrichHandler.HandleGuestLimit).Methods("GET")

	api.HandleFunc("/sessions", sessionHandler.HandleCreate).Methods("POST")
	api.HandleFunc("/sessions/{sessionId}", sessionHandler.HandleGet).Methods("GET")
	api.HandleFunc("/sessions/{sessionId}/inputs", sessionHandler.HandleUpdateInputs).Methods("PUT")
	api.HandleFunc("/sessions/{sessionId}/preset", sessionHandler.HandleApplyPreset).Methods("POST")
	api.HandleFunc("/sessions/{sessionId}/reset", sessionHandler.HandleReset).Methods("POST")
	api.HandleFunc("/sessions/{sessionId}/generate", sessionHandler.HandleGenerate).Methods("POST")
	api.HandleFunc("/sessions/{sessionId}/history", sessionHandler.HandleHistory).Methods("GET")
	api.HandleFunc("/sessions/{sessionId}/history/{itemId}/restore", sessionHandler.HandleRestore).Methods("POST")

	api.HandleFunc("/sessions/{sessionId}/auto-generate", enrichHandler.HandleAutoGenerate).Methods("POST")
	api.HandleFunc("/sessions/{sessionId}/feedback", enrichHandler.HandleFeedback).Methods("POST")
	api.HandleFunc("/sessions/{sessionId}/benchmark/image", enrichHandler.HandleBenchmarkImage).Methods("POST")
	api.HandleFunc("/sessions/{sessionId}/benchmark/links", enrichHandler.HandleBenchmarkLinks).Methods("POST")
	api.HandleFunc("/sessions/{sessionId}/lyrics", lyricsHandler.HandleAnalyze).Methods("POST")

	log.Printf("🚀 Lo-fi Flow prompt server starting on port %s", cfg.Port)
	log.Printf("📡 WebSocket endpoint: ws://localhost:%s/ws", cfg.Port)
	log.Printf("❤️  Health check: http://localhost:%s/health", cfg.Port)

	// 서버 시작
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
