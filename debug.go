package tilekit

import (
	"fmt"
	"os"
	"time"
)

// globalDebug gates diagnostics in code paths that have no owner to ask.
// tilekit is single-threaded, so a plain bool is enough.
var globalDebug bool

// SetDebugMode enables or disables debug mode. When enabled, deep trees and
// crowded containers print warnings, unknown tileset names are logged, and
// Tilemap.Draw prints per-frame stats to stderr.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// drawStats holds per-frame timing and draw-call metrics.
// Only populated when debug mode is on.
type drawStats struct {
	collectTime   time.Duration
	submitTime    time.Duration
	commandCount  int
	drawCallCount int
}

// debugLog prints timing and draw-call stats to stderr.
func debugLog(stats drawStats) {
	_, _ = fmt.Fprintf(os.Stderr,
		"[tilekit] collect: %v | submit: %v | total: %v\n",
		stats.collectTime, stats.submitTime, stats.collectTime+stats.submitTime)
	_, _ = fmt.Fprintf(os.Stderr,
		"[tilekit] commands: %d | draw calls: %d\n",
		stats.commandCount, stats.drawCallCount)
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(t *Tile) {
	depth := treeDepth(t)
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[tilekit] warning: tree depth %d exceeds %d (tile id %d)\n",
			depth, debugMaxTreeDepth, t.id)
	}
}

// treeDepth counts t and every owner above it, the Tilemap root included.
func treeDepth(t *Tile) int {
	depth := 1
	for p := t.parent; p != nil; {
		depth++
		pt := p.asTile()
		if pt == nil {
			break
		}
		p = pt.parent
	}
	return depth
}

// debugCheckChildCount warns on stderr if a container has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(l *tileList) {
	if len(l.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[tilekit] warning: container has %d tiles (threshold %d)\n",
			len(l.children), debugMaxChildCount)
	}
}
