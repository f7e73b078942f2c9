package monitor

import (
	"context"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/shirou/gopsutil/v4/process"

	"consolelog/internal/app/status"
	"consolelog/internal/config"
	"consolelog/internal/config/logger"
)

// Stats contains process resource statistics
type Stats struct {
	CPU     float64
	MEM     float64 // in MB
	Threads int32
}

// String renders stats as a single status line
func (s Stats) String() string {
	return fmt.Sprintf("cpu %.1f%% · rss %.1f MB · threads %d", s.CPU, s.MEM, s.Threads)
}

// Monitor samples process resource usage and raises it as debug statuses
type Monitor interface {
	GetStats(ctx context.Context, pid int) (Stats, error)
	Start(ctx context.Context)
}

type monitor struct {
	interval    time.Duration
	enabled     bool
	pid         int
	broadcaster status.Broadcaster
	log         logger.Logger
}

// NewMonitor creates a new Monitor sampling the current process
func NewMonitor(cfg *config.Config, broadcaster status.Broadcaster, log logger.Logger) Monitor {
	return &monitor{
		interval:    cfg.Monitor.Interval,
		enabled:     cfg.Monitor.Enabled,
		pid:         os.Getpid(),
		broadcaster: broadcaster,
		log:         log.WithComponent("MONITOR"),
	}
}

// GetStats samples a process; non-positive or out of range pids yield empty stats
func (m *monitor) GetStats(ctx context.Context, pid int) (Stats, error) {
	if pid <= 0 || pid > math.MaxInt32 {
		return Stats{}, nil
	}

	proc, err := process.NewProcessWithContext(ctx, int32(pid)) // #nosec G115 -- PID range checked above
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{}

	if cpuPercent, err := proc.CPUPercentWithContext(ctx); err == nil {
		stats.CPU = cpuPercent
	}

	if memInfo, err := proc.MemoryInfoWithContext(ctx); err == nil {
		stats.MEM = float64(memInfo.RSS) / 1024 / 1024
	}

	if threads, err := proc.NumThreadsWithContext(ctx); err == nil {
		stats.Threads = threads
	}

	return stats, nil
}

// Start raises a debug status every interval until ctx is done; no-op when disabled
func (m *monitor) Start(ctx context.Context) {
	if !m.enabled || m.interval <= 0 {
		return
	}

	go m.loop(ctx)
}

func (m *monitor) loop(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.sample(ctx)
		}
	}
}

func (m *monitor) sample(ctx context.Context) {
	stats, err := m.GetStats(ctx, m.pid)
	if err != nil {
		m.log.Warn().Err(err).Msgf("Failed to sample process %d", m.pid)
		return
	}

	m.broadcaster.Raise(stats.String(), status.WithCategory(status.Debug))
}
