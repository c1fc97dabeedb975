package jobs

import (
	"log"
	"time"

	"skillswap-server/services"
)

// CleanupJob periodically removes expired refresh tokens
type CleanupJob struct {
	jwtService *services.JWTService
	interval   time.Duration
	stopChan   chan struct{}
}

// NewCleanupJob creates a cleanup job that runs once a day
func NewCleanupJob() *CleanupJob {
	return &CleanupJob{
		jwtService: services.NewJWTService(),
		interval:   24 * time.Hour,
		stopChan:   make(chan struct{}),
	}
}

// Start begins the background loop
func (j *CleanupJob) Start() {
	log.Printf("🧹 Token cleanup job started (interval: %s)", j.interval)
	go j.run()
}

// Stop signals the loop to exit
func (j *CleanupJob) Stop() {
	close(j.stopChan)
}

func (j *CleanupJob) run() {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	// Run once at startup, then on the ticker
	j.cleanup()

	for {
		select {
		case <-ticker.C:
			j.cleanup()
		case <-j.stopChan:
			log.Println("🧹 Token cleanup job stopped")
			return
		}
	}
}

func (j *CleanupJob) cleanup() {
	if err := j.jwtService.CleanupExpiredTokens(); err != nil {
		log.Printf("⚠️ Token cleanup failed: %v", err)
	}
}
