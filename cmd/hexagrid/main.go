package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"hexagrid/internal/config"
	"hexagrid/internal/storage"
	"hexagrid/internal/tui"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	configPath := flag.String("config", "", "config file (default ./hexagrid.yaml if present)")
	writeConfig := flag.String("write-config", "", "write the default config to this path and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [document.json]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *writeConfig != "" {
		if err := config.WriteDefault(*writeConfig); err != nil {
			log.Fatal(err)
		}
		fmt.Println("wrote", *writeConfig)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	// The alt screen owns stdout; logs go to a file or nowhere.
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "hexagrid")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	store := storage.NewFileStore(cfg.DataDir)
	var m tea.Model
	if flag.NArg() > 0 {
		m = tui.NewWithPath(cfg, store, flag.Arg(0))
	} else {
		m = tui.New(cfg, store)
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
