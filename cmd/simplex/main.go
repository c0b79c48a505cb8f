// Command simplex runs the interactive menu of built-in example
// models (see repl.Scenarios) and the load-your-own option, replaying
// every pivot and the final report of an LP solve (or, for an integer
// model, the best integer solution) to stdout (or to -out, if set).
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/corvidlabs/simplex/repl"
)

func main() {
	outPath := flag.String("out", "", "write the replay dump to this path instead of stdout")
	verbose := flag.Bool("v", false, "enable verbose (development) logging")
	flag.Parse()

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintln(os.Stderr, "logger:", err)
			os.Exit(1)
		}
		logger = l
	}
	defer logger.Sync()

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "out:", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	menu := repl.NewMenu(os.Stdin, out, logger)
	for {
		menu.Print()
		choice, err := menu.Choose()
		if err != nil {
			if errors.Is(err, repl.ErrNoSelection) {
				return
			}
			fmt.Fprintln(out, err)
			continue
		}
		if err := menu.Run(choice); err != nil {
			fmt.Fprintln(out, "run:", err)
		}
	}
}
