package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/kdalton/mdnote-tui/internal/ui"
)

func main() {
	// The terminal belongs to tcell while we run, so logs go to a file
	if dir, err := os.UserCacheDir(); err == nil {
		logPath := filepath.Join(dir, "mdnote", "mdnote.log")
		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err == nil {
			if f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
				log.SetOutput(f)
				defer f.Close()
			}
		}
	}

	app := ui.NewApp()

	if len(os.Args) > 1 {
		if err := app.OpenFile(os.Args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "mdnote: %v\n", err)
			os.Exit(1)
		}
	}

	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "mdnote: %v\n", err)
		os.Exit(1)
	}
}
