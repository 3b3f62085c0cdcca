package utils

import (
	"context"
	"sync"
	"time"

	"rootsdental/calendar"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Calendar  bool      `json:"calendarConnected"`
	Redis     bool      `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory state.
// The calendar probe is a minimal free/busy query; redisClient may be nil.
func StartHealthMonitor(cal calendar.Client, calendarID string, redisClient *redis.Client) {
	check := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		calendarHealthy := false
		if cal != nil {
			now := time.Now()
			_, err := cal.FreeBusy(ctx, calendarID, now, now.Add(time.Minute))
			calendarHealthy = err == nil
		}

		redisHealthy := false
		if redisClient != nil {
			redisHealthy = redisClient.Ping(ctx).Err() == nil
		}

		mu.Lock()
		currentHealth = HealthStatus{
			Calendar:  calendarHealthy,
			Redis:     redisHealthy,
			CheckedAt: time.Now(),
		}
		mu.Unlock()
	}

	check()

	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			check()
		}
	}()
}
