// Package debugui provides an immediate-mode debug overlay using Dear ImGui.
// The overlay is a loop.System: it queues its windows as deferred commands so
// they render after every other system has run for the frame.
package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/tetoris/game"
	"github.com/plus3/tetoris/loop"
)

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay shows the session inspector and scheduler statistics.
type Overlay struct {
	Enabled bool

	session   *game.Session
	scheduler *loop.Scheduler
	input     InputState
}

// NewOverlay creates a disabled overlay for session and the scheduler that runs it.
func NewOverlay(session *game.Session, scheduler *loop.Scheduler) *Overlay {
	return &Overlay{session: session, scheduler: scheduler}
}

// Name identifies the overlay in scheduler stats.
func (o *Overlay) Name() string {
	return "DebugOverlay"
}

// Input returns the capture state recorded in the last frame.
func (o *Overlay) Input() InputState {
	return o.input
}

// Toggle flips visibility.
func (o *Overlay) Toggle() {
	o.Enabled = !o.Enabled
}

// Execute records the input capture state and queues the overlay windows.
func (o *Overlay) Execute(frame *loop.Frame) {
	if !o.Enabled {
		o.input = InputState{}
		return
	}

	io := imgui.CurrentIO()
	o.input.WantCaptureMouse = io.WantCaptureMouse()
	o.input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	frame.Commands.Defer(o.renderSession)
	frame.Commands.Defer(o.renderStats)
}

func (o *Overlay) renderSession() {
	imgui.SetNextWindowPosV(imgui.NewVec2(320, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 220), imgui.CondOnce)

	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	for _, row := range sessionRows(o.session) {
		imgui.Text(row)
	}

	imgui.Separator()
	if imgui.Button("Restart") {
		o.session.Restart()
	}

	imgui.End()
}

func (o *Overlay) renderStats() {
	imgui.SetNextWindowPosV(imgui.NewVec2(320, 240), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 160), imgui.CondOnce)

	if !imgui.BeginV("Scheduler", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := o.scheduler.Stats()
	imgui.Text(fmt.Sprintf("Systems: %d  Executions: %d", stats.SystemCount, stats.TotalExecutions))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SystemStatsTable", int32(len(statsColumns)), tableFlags, imgui.NewVec2(0, 0), 0) {
		for _, col := range statsColumns {
			imgui.TableSetupColumn(col)
		}
		imgui.TableHeadersRow()

		for _, row := range statsRows(stats) {
			imgui.TableNextRow()
			for _, cell := range row {
				imgui.TableNextColumn()
				imgui.Text(cell)
			}
		}

		imgui.EndTable()
	}

	imgui.End()
}

var statsColumns = []string{"System", "Runs", "Last", "Avg", "Max"}

func statsRows(stats *loop.SchedulerStats) [][]string {
	rows := make([][]string, 0, len(stats.Systems))
	for _, s := range stats.Systems {
		rows = append(rows, []string{
			s.Name,
			fmt.Sprintf("%d", s.ExecutionCount),
			formatDuration(s.LastDuration),
			formatDuration(s.AvgDuration),
			formatDuration(s.MaxDuration),
		})
	}
	return rows
}

func sessionRows(s *game.Session) []string {
	snap := s.Snapshot()

	piece := "none"
	if snap.Piece != nil {
		piece = snap.Piece.Kind.String()
	}

	return []string{
		fmt.Sprintf("ID: %s", s.ID()),
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("Game over: %t", snap.GameOver),
		fmt.Sprintf("Piece: %s at (%d, %d)", piece, snap.Position.X, snap.Position.Y),
		fmt.Sprintf("Filled cells: %d", snap.Board.Filled()),
		fmt.Sprintf("Pending commands: %d", s.Pending()),
		fmt.Sprintf("Active timers: %d", s.Timers().Len()),
		fmt.Sprintf("Repeating: %t", s.Repeating()),
	}
}

func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.3f ms", float64(d)/float64(time.Millisecond))
}
