// Command blockfall plays the game in a window.
package main

import (
	"errors"
	"flag"
	"log"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/internal/setup"
)

func main() {
	flags := setup.Register(flag.CommandLine)
	debug := flag.Bool("debug", false, "Show the Dear ImGui debug overlay.")
	sound := flag.Bool("sound", false, "Play sound cues on line clears and game over.")
	cellSize := flag.Int("cell", 28, "Cell size in pixels.")
	flag.Parse()

	session, err := flags.NewSession()
	if err != nil {
		log.Fatalf("Failed to create board: %v", err)
	}

	if *sound {
		player, err := audio.NewPlayer()
		if err != nil {
			// Non-fatal, the game runs without sound.
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer player.Close()
			session.Listen(player)
		}
	}

	game := NewGame(session, *cellSize)
	width, height := game.Layout(0, 0)

	if *debug {
		left := float32(width + 10)
		inspector := debugui.NewBoardInspector(session)
		inspector.Pos = imgui.NewVec2(left, 10)
		stats := debugui.NewPerformanceStats(120)
		stats.Pos = imgui.NewVec2(left, 330)
		timer := debugui.NewFrameTimer()
		overlay := debugui.NewOverlay(
			inspector.Item(),
			debugui.ImguiItem{Render: func() {
				stats.Record(timer.Tick())
				stats.Render(session.Pending())
			}},
		)
		game.imgui = debugui_ebiten.NewImguiBackend("blockfall", width+600, max(height, 520), overlay)
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle("blockfall")
	}

	log.Printf("Starting %dx%d board", flags.Width, flags.Height)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("Game exited: %v", err)
	}
	stats := session.Stats()
	log.Printf("Played %d game(s), %d lines, best score %d", stats.Games, stats.Lines, stats.BestScore)
}
