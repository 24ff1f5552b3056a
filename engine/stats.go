package engine

import (
	"sync/atomic"
	"time"
)

// Stats records frame loop counters; safe for concurrent readers
type Stats struct {
	frames       atomic.Int64
	overruns     atomic.Int64 // frames slower than the target frame time
	blockedMoves atomic.Int64
	dropped      atomic.Int64 // frames a presenter chose not to deliver
	totalFrameNs atomic.Int64
	lastFrameNs  atomic.Int64
}

// AddFrame records the work time of one frame, excluding the pacing sleep
func (s *Stats) AddFrame(work time.Duration, overrun bool) {
	s.frames.Add(1)
	s.totalFrameNs.Add(int64(work))
	s.lastFrameNs.Store(int64(work))
	if overrun {
		s.overruns.Add(1)
	}
}

func (s *Stats) AddBlocked(n int) { s.blockedMoves.Add(int64(n)) }
func (s *Stats) IncDropped()      { s.dropped.Add(1) }

func (s *Stats) Frames() int64 { return s.frames.Load() }

// Snapshot returns a read-only copy for HTTP output and logging
func (s *Stats) Snapshot() map[string]any {
	frames := s.frames.Load()
	total := s.totalFrameNs.Load()
	var avgMs float64
	if frames > 0 {
		avgMs = float64(total) / float64(frames) / 1e6
	}
	return map[string]any{
		"frames":        frames,
		"overruns":      s.overruns.Load(),
		"blocked_moves": s.blockedMoves.Load(),
		"dropped":       s.dropped.Load(),
		"avg_frame_ms":  avgMs,
		"last_frame_ms": float64(s.lastFrameNs.Load()) / 1e6,
	}
}
