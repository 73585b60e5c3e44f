package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/tetris"
)

// FrameHistory is a ring buffer of frame times in milliseconds.
type FrameHistory struct {
	samples []float32
	index   int
	filled  int
}

func NewFrameHistory(frames int) *FrameHistory {
	return &FrameHistory{samples: make([]float32, max(frames, 1))}
}

func (fh *FrameHistory) Add(ms float32) {
	fh.samples[fh.index] = ms
	fh.index = (fh.index + 1) % len(fh.samples)
	fh.filled = min(fh.filled+1, len(fh.samples))
}

// Average returns the mean of the recorded samples, or 0 when empty.
func (fh *FrameHistory) Average() float32 {
	if fh.filled == 0 {
		return 0
	}
	var total float32
	for _, ms := range fh.samples[:fh.filled] {
		total += ms
	}
	return total / float32(fh.filled)
}

func (fh *FrameHistory) Len() int { return fh.filled }

// Ordered returns the recorded samples oldest first.
func (fh *FrameHistory) Ordered() []float32 {
	out := make([]float32, 0, fh.filled)
	if fh.filled < len(fh.samples) {
		return append(out, fh.samples[:fh.filled]...)
	}
	out = append(out, fh.samples[fh.index:]...)
	return append(out, fh.samples[:fh.index]...)
}

// FrameTimer measures the wall-clock time between calls to Delta.
type FrameTimer struct {
	now  func() time.Time
	last time.Time
}

func NewFrameTimer(now func() time.Time) *FrameTimer {
	if now == nil {
		now = time.Now
	}
	return &FrameTimer{now: now}
}

// Delta returns the time since the previous call, or fallback on the first call.
func (ft *FrameTimer) Delta(fallback time.Duration) time.Duration {
	now := ft.now()
	delta := fallback
	if !ft.last.IsZero() {
		delta = now.Sub(ft.last)
	}
	ft.last = now
	return delta
}

// PerformanceStats shows tick times and the per-system timings collected by
// the session scheduler.
type PerformanceStats struct {
	history *FrameHistory
	timer   *FrameTimer
}

func NewPerformanceStats(historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		history: NewFrameHistory(historyFrames),
		timer:   NewFrameTimer(time.Now),
	}
}

// Record adds the measured interval since the previous frame to the history.
// The simulated deltaTime is used only for the first frame.
func (ps *PerformanceStats) Record(deltaTime float64) {
	fallback := time.Duration(deltaTime * float64(time.Second))
	ps.history.Add(float32(ps.timer.Delta(fallback).Seconds() * 1000.0))
}

func (ps *PerformanceStats) Render(g *tetris.Game, deltaTime float64) {
	ps.Record(deltaTime)

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 380), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 300), imgui.CondOnce)

	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := g.Scheduler().GetStats()

	imgui.Text(fmt.Sprintf("Ticks: %d", stats.Frames))
	imgui.Text(fmt.Sprintf("Systems: %d", stats.SystemCount))

	avg := ps.history.Average()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Tick Interval: %.2f ms (%.0f TPS)", avg, 1000.0/avg))
	}

	imgui.Separator()
	imgui.Text("Tick Interval Graph (ms)")
	if samples := ps.history.Ordered(); len(samples) > 0 {
		imgui.PlotLinesFloatPtr("##ticktime", &samples[0], int32(len(samples)))
	}

	if imgui.TreeNodeStr("System Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Last")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(formatDuration(sys.LastDuration))
				imgui.TableNextColumn()
				imgui.Text(formatDuration(sys.AvgDuration))
				imgui.TableNextColumn()
				imgui.Text(formatDuration(sys.MaxDuration))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.1fµs", float64(d)/float64(time.Microsecond))
}
