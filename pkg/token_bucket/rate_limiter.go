package token_bucket

import (
	"sync"
	"time"
)

// TokenBucket пропускает запрос, если в ведре есть целый токен. Токены
// копятся дробно со скоростью refillRate в секунду, но не выше capacity.
type TokenBucket struct {
	capacity   float64
	tokens     float64
	refillRate float64
	lastRefill time.Time
	mu         sync.Mutex
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return &TokenBucket{
		capacity:   float64(capacity),
		tokens:     float64(capacity),
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill(time.Now())

	if t.tokens >= 1 {
		t.tokens--
		return true
	}
	return false
}

func (t *TokenBucket) refill(now time.Time) {
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	t.tokens += elapsed * t.refillRate
	if t.tokens > t.capacity {
		t.tokens = t.capacity
	}
	t.lastRefill = now
}

func (t *TokenBucket) full(now time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill(now)
	return t.tokens >= t.capacity
}

// Keyed держит отдельное ведро на каждый ключ (например, IP клиента).
// Полные ведра, к которым давно не обращались, удаляются при очередном Allow.
type Keyed struct {
	capacity   int
	refillRate float64
	idleTTL    time.Duration

	mu        sync.Mutex
	buckets   map[string]*keyedBucket
	lastSweep time.Time
}

type keyedBucket struct {
	bucket   *TokenBucket
	lastSeen time.Time
}

func NewKeyed(capacity int, refillRate float64, idleTTL time.Duration) *Keyed {
	return &Keyed{
		capacity:   capacity,
		refillRate: refillRate,
		idleTTL:    idleTTL,
		buckets:    make(map[string]*keyedBucket),
		lastSweep:  time.Now(),
	}
}

func (k *Keyed) Allow(key string) bool {
	now := time.Now()

	k.mu.Lock()
	entry, ok := k.buckets[key]
	if !ok {
		entry = &keyedBucket{bucket: NewTokenBucket(k.capacity, k.refillRate)}
		k.buckets[key] = entry
	}
	entry.lastSeen = now
	if now.Sub(k.lastSweep) >= k.idleTTL {
		k.sweep(now)
	}
	k.mu.Unlock()

	return entry.bucket.Allow()
}

// Len - число отслеживаемых ключей.
func (k *Keyed) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.buckets)
}

func (k *Keyed) sweep(now time.Time) {
	for key, entry := range k.buckets {
		if now.Sub(entry.lastSeen) >= k.idleTTL && entry.bucket.full(now) {
			delete(k.buckets, key)
		}
	}
	k.lastSweep = now
}
