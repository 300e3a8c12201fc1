package session

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store - 세션 저장소 (프로세스 메모리, 서버 재시작 시 소멸)
type Store struct {
	mu           sync.RWMutex
	sessions     map[string]*Session
	historyLimit int
}

func NewStore(historyLimit int) *Store {
	return &Store{
		sessions:     make(map[string]*Session),
		historyLimit: historyLimit,
	}
}

// Create - 새 세션 생성
func (st *Store) Create() *Session {
	sess := newSession(uuid.New().String(), st.historyLimit)

	st.mu.Lock()
	st.sessions[sess.ID] = sess
	count := len(st.sessions)
	st.mu.Unlock()

	log.Printf("✅ Session created: %s (total: %d)", sess.ID, count)
	return sess
}

// Get - 세션 조회
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	sess, ok := st.sessions[id]
	return sess, ok
}

// Count - 활성 세션 수
func (st *Store) Count() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// StartCleanup - 유휴 세션 정리 루틴 시작
func (st *Store) StartCleanup(interval, maxIdle time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			st.cleanup(maxIdle)
		}
	}()
}

func (st *Store) cleanup(maxIdle time.Duration) {
	cutoff := time.Now().Add(-maxIdle)

	st.mu.Lock()
	removed := 0
	for id, sess := range st.sessions {
		if sess.LastActivity().Before(cutoff) {
			delete(st.sessions, id)
			removed++
		}
	}
	remaining := len(st.sessions)
	st.mu.Unlock()

	if removed > 0 {
		log.Printf("🧹 Cleaned up %d idle sessions (remaining: %d)", removed, remaining)
	}
}
