package memory

import (
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

// LoginAttemptRepository tracks failed login attempts per email so the auth
// service can throttle brute-force attempts. Entries expire on their own;
// a successful login clears the counter.
type LoginAttemptRepository struct {
	cache       *cache.Cache
	maxAttempts int
}

func NewLoginAttemptRepository(window time.Duration, maxAttempts int) *LoginAttemptRepository {
	c := cache.New(window, 10*time.Minute)
	return &LoginAttemptRepository{
		cache:       c,
		maxAttempts: maxAttempts,
	}
}

func (r *LoginAttemptRepository) RecordFailure(email string) {
	key := strings.ToLower(email)
	if n, found := r.cache.Get(key); found {
		r.cache.Set(key, n.(int)+1, cache.DefaultExpiration)
		return
	}
	r.cache.Set(key, 1, cache.DefaultExpiration)
}

func (r *LoginAttemptRepository) Blocked(email string) bool {
	if n, found := r.cache.Get(strings.ToLower(email)); found {
		return n.(int) >= r.maxAttempts
	}
	return false
}

func (r *LoginAttemptRepository) Clear(email string) {
	r.cache.Delete(strings.ToLower(email))
}
