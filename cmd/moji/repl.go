package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"nickandperla.net/moji/pkg/moji"
)

const historyFile = ".moji_history"

func printBanner() {
	fmt.Println("moji REPL (Ctrl+D to exit, :quit to quit)")
	fmt.Println()
	fmt.Println("Symbols:")
	fmt.Println("  👉  assign      🗣️  print       ❓ conditional")
	fmt.Println("  ▶️  arrow       🟰  equals      ➕ concat")
	fmt.Println("  🔧  function    🫷  statement separator")
	fmt.Println("  💬  comment")
	fmt.Println()
}

func runREPL(runtime *moji.Runtime) {
	printBanner()

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt(">>> ")
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			return
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.TrimSpace(line) == ":quit" {
			return
		}

		if err := runtime.Run(line); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		ln.AppendHistory(line)
	}
}
