package debugui

import (
	"fmt"
	"slices"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/tetris"
)

// ShapeCount is one row of the spawn distribution table.
type ShapeCount struct {
	Shape tetris.Shape
	Count int
	Share float32
}

// ShapeCounts returns per-shape spawn counts in shape order, with each
// shape's share of the total.
func ShapeCounts(stats *engine.Stats) []ShapeCount {
	rows := make([]ShapeCount, len(tetris.Shapes))
	total := 0
	for i, shape := range tetris.Shapes {
		rows[i] = ShapeCount{Shape: shape, Count: stats.Spawns(shape)}
		total += rows[i].Count
	}
	if total > 0 {
		for i := range rows {
			rows[i].Share = float32(rows[i].Count) / float32(total)
		}
	}
	return rows
}

// ClearRows returns the distinct numbers of rows cleared by a single lock,
// ascending.
func ClearRows(stats *engine.Stats) []int {
	counts := stats.ClearCounts()
	rows := make([]int, 0, len(counts))
	for r := range counts {
		rows = append(rows, r)
	}
	slices.Sort(rows)
	return rows
}

// BoardInspector shows the live board state and lets the user drive the
// session by hand.
type BoardInspector struct {
	// Pos is where the window first opens.
	Pos imgui.Vec2

	session *engine.Session
	paused  bool
}

func NewBoardInspector(session *engine.Session) *BoardInspector {
	return &BoardInspector{
		Pos:     imgui.NewVec2(10, 10),
		session: session,
		paused:  session.Paused(),
	}
}

// Item wraps the inspector for an Overlay.
func (bi *BoardInspector) Item() ImguiItem {
	return ImguiItem{Render: bi.Render}
}

func (bi *BoardInspector) Render() {
	imgui.SetNextWindowPosV(bi.Pos, imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(280, 310), imgui.CondOnce)

	if !imgui.BeginV("Board", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	state := bi.session.State()
	block := state.Block

	imgui.Text(fmt.Sprintf("Score: %d", state.Score))
	imgui.Text(fmt.Sprintf("Level: %d  Lines: %d  Spawns: %d", state.Level, state.Lines, state.Spawns))
	imgui.Text(fmt.Sprintf("Block: %s at %v (rotations %d)", block.Shape(), block.Position(), block.Rotations()))
	imgui.Text(fmt.Sprintf("Drop Target: %v", state.DropTarget))
	if state.GameOver {
		imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), "GAME OVER")
	}

	imgui.Separator()
	if imgui.Checkbox("Paused", &bi.paused) {
		bi.session.Pause(bi.paused)
	}
	imgui.SameLine()
	if imgui.Button("Reset") {
		bi.session.Submit(tetris.Reset{})
	}
	imgui.SameLine()
	if imgui.Button("Hard Drop") {
		bi.session.Submit(tetris.HardDrop{})
	}

	imgui.Text("Spawn:")
	for _, shape := range tetris.Shapes {
		imgui.SameLine()
		if imgui.Button(shape.String()) {
			bi.session.Submit(tetris.Spawn{Shape: shape})
		}
	}

	stats := bi.session.Stats()
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Games: %d  Locks: %d  Best: %d", stats.Games, stats.Locks, stats.BestScore))

	if imgui.TreeNodeStr("Spawns by Shape") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SpawnTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Shape")
			imgui.TableSetupColumn("Count")
			imgui.TableSetupColumn("Share")
			imgui.TableHeadersRow()

			for _, row := range ShapeCounts(stats) {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(row.Shape.String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", row.Count))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%.1f%%", row.Share*100))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Line Clears") {
		rows := ClearRows(stats)
		if len(rows) == 0 {
			imgui.Text("none yet")
		}
		for _, r := range rows {
			imgui.BulletText(fmt.Sprintf("%d row(s): %d", r, stats.Clears(r)))
		}
		imgui.TreePop()
	}

	imgui.End()
}
