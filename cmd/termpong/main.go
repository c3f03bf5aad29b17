package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/diegok/termpong/internal/app"
	"github.com/diegok/termpong/internal/config"
	"github.com/diegok/termpong/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.ParseArgs(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		printUsage()
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		return 1
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	application := app.NewApp(cfg, logger)
	if err := application.Run(context.Background()); err != nil {
		logger.Error("game aborted", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Play classic Pong in the terminal.")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  termpong [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprint(os.Stderr, config.Usage())
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Controls:")
	fmt.Fprintln(os.Stderr, "  w/s          left paddle up/down")
	fmt.Fprintln(os.Stderr, "  arrow keys   right paddle up/down")
	fmt.Fprintln(os.Stderr, "  space, p     pause")
	fmt.Fprintln(os.Stderr, "  q, Esc       quit")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Every option can also be set with a TERMPONG_ environment variable,")
	fmt.Fprintln(os.Stderr, "e.g. TERMPONG_RIGHT=human or TERMPONG_LOG_FILE=pong.log.")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  termpong                      human (w/s) vs computer")
	fmt.Fprintln(os.Stderr, "  termpong --right human        two players on one keyboard")
	fmt.Fprintln(os.Stderr, "  termpong -l ai -r ai --mute   watch the computer play itself")
}
