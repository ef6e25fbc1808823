package dto

import "time"

// QueueSnapshot is the planner job queue state.
type QueueSnapshot struct {
	Pending   int    `json:"pending"`
	Processed uint64 `json:"processed"`
	Retried   uint64 `json:"retried"`
	Dropped   uint64 `json:"dropped"`
}

// MetricsSnapshot is a lightweight view of the process counters.
type MetricsSnapshot struct {
	CacheHitRatio            float64           `json:"cacheHitRatio"`
	CacheHits                uint64            `json:"cacheHits"`
	CacheMisses              uint64            `json:"cacheMisses"`
	RequestsTotal            uint64            `json:"requestsTotal"`
	AverageRequestDurationMs float64           `json:"averageRequestDurationMs"`
	StoreMutations           map[string]uint64 `json:"storeMutations"`
	PlannerJobs              uint64            `json:"plannerJobs"`
	PlannerFailures          uint64            `json:"plannerFailures"`
	PlannerQueue             *QueueSnapshot    `json:"plannerQueue,omitempty"`
	Goroutines               int               `json:"goroutines"`
	GeneratedAt              time.Time         `json:"generatedAt"`
}
