// Command moji is the moji interpreter CLI.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"nickandperla.net/moji/pkg/moji"
)

func main() {
	var (
		evalStr  = flag.String("e", "", "Evaluate moji string")
		file     = flag.String("f", "", "Execute moji file")
		traceOn  = flag.Bool("trace", os.Getenv("MOJI_TRACE") != "", "Emit trace events to stderr")
		traceDB  = flag.String("trace-db", "", "SQLite trace log path")
	)

	flag.Parse()

	// Build options
	opts := []moji.Option{
		moji.WithOutput(os.Stdout),
	}
	if *traceOn {
		opts = append(opts, moji.WithTraceWriter(os.Stderr))
	}
	if *traceDB != "" {
		opts = append(opts, moji.WithSQLiteTrace(*traceDB))
	}

	runtime := moji.New(opts...)
	defer runtime.Close()

	var err error
	switch {
	case *evalStr != "":
		err = runtime.Run(*evalStr)

	case *file != "":
		err = runtime.RunFile(*file)

	case !term.IsTerminal(int(os.Stdin.Fd())):
		// Piped input
		var input []byte
		input, err = io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			os.Exit(1)
		}
		err = runtime.Run(string(input))

	default:
		runREPL(runtime)
		return
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
