package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// guestLimitTTL - 사용 기록 보존 시간 (시간 단위)
const guestLimitTTL = 24 * time.Hour

// GuestUsage - 비회원 enrichment 사용 기록
type GuestUsage struct {
	SessionID   string    `json:"sessionId"`
	UsedCount   int       `json:"usedCount"`
	FirstUsedAt time.Time `json:"firstUsedAt"`
	LastUsedAt  time.Time `json:"lastUsedAt"`
}

// GuestLimiter - Redis 기반 비회원 enrichment 횟수 제한
// Redis가 없으면 제한 없이 통과한다 (fails open).
type GuestLimiter struct {
	redis *redis.Client
	limit int
}

func NewGuestLimiter(rdb *redis.Client, limit int) *GuestLimiter {
	return &GuestLimiter{redis: rdb, limit: limit}
}

func guestKey(sessionID string) string {
	return fmt.Sprintf("guest:enrich:%s", sessionID)
}

// Check - 현재 사용량과 제한 도달 여부 조회
func (g *GuestLimiter) Check(ctx context.Context, sessionID string) (*GuestUsage, bool) {
	if g == nil || g.redis == nil {
		// Redis 없으면 제한 없음 (개발 환경)
		return &GuestUsage{SessionID: sessionID}, false
	}

	data, err := g.redis.Get(ctx, guestKey(sessionID)).Result()
	if err == redis.Nil {
		return &GuestUsage{SessionID: sessionID}, false
	}
	if err != nil {
		log.Printf("⚠️  [Guest] Redis error: %v (allowing request)", err)
		return &GuestUsage{SessionID: sessionID}, false
	}

	var usage GuestUsage
	if err := json.Unmarshal([]byte(data), &usage); err != nil {
		log.Printf("⚠️  [Guest] Failed to parse guest usage: %v (allowing request)", err)
		return &GuestUsage{SessionID: sessionID}, false
	}

	return &usage, usage.UsedCount >= g.limit
}

// Consume - 사용 횟수 증가 (24시간 TTL 갱신)
func (g *GuestLimiter) Consume(ctx context.Context, sessionID string) {
	if g == nil || g.redis == nil {
		return
	}

	usage, _ := g.Check(ctx, sessionID)
	usage.UsedCount++
	usage.LastUsedAt = time.Now()
	if usage.FirstUsedAt.IsZero() {
		usage.FirstUsedAt = time.Now()
	}

	data, err := json.Marshal(usage)
	if err != nil {
		log.Printf("⚠️  [Guest] Failed to encode guest usage: %v", err)
		return
	}

	if err := g.redis.Set(ctx, guestKey(sessionID), data, guestLimitTTL).Err(); err != nil {
		log.Printf("⚠️  [Guest] Failed to save guest usage: %v", err)
		return
	}
}

// Limit - 설정된 제한값
func (g *GuestLimiter) Limit() int {
	if g == nil {
		return 0
	}
	return g.limit
}
