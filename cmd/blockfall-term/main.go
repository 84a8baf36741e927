// Command blockfall-term plays the game in a terminal.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/internal/setup"
)

func main() {
	flags := setup.Register(flag.CommandLine)
	sound := flag.Bool("sound", false, "Play sound cues on line clears and game over.")
	logPath := flag.String("log", "", "Write log output to this file. The terminal is owned by the game, so logs are discarded by default.")
	fps := flag.Int("fps", 60, "Frames drawn per second.")
	flag.Parse()

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	session, err := flags.NewSession()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to create board: %v", err)
	}

	if *sound {
		player, err := audio.NewPlayer()
		if err != nil {
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer player.Close()
			session.Listen(player)
		}
	}
	session.Listen(engine.ListenerFunc(func(o engine.Outcome) {
		if o.Rows > 0 || o.GameOver {
			log.Printf("Locked: rows=%d reward=%d game over=%t", o.Rows, o.Reward, o.GameOver)
		}
	}))

	screen, err := tcell.NewScreen()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	screen.HideCursor()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Input is read on its own goroutine and reaches the session through
	// its queue, so the board is only touched by the loop below.
	go func() {
		for {
			ev := screen.PollEvent()
			switch ev := ev.(type) {
			case nil:
				return
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				action, quit := keyAction(ev)
				if quit {
					cancel()
					return
				}
				if action != nil {
					session.Submit(action)
				}
			}
		}
	}()

	log.Printf("Starting %dx%d board", flags.Width, flags.Height)
	loop := engine.NewLoop(session)
	loop.Run(ctx, time.Second/time.Duration(max(*fps, 1)), func() {
		draw(screen, session.State())
	})
	screen.Fini()

	stats := session.Stats()
	frames := loop.Stats()
	log.Printf("Played %d game(s), %d lines, best score %d", stats.Games, stats.Lines, stats.BestScore)
	log.Printf("Frames: %d avg=%s min=%s max=%s", frames.Frames, frames.Avg, frames.Min, frames.Max)
}
