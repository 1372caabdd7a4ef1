// Command contrastcheck checks text/background color pairs against the WCAG
// AA contrast minimums.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
	exitFail  = 3
)

const usageText = `contrastcheck - check text/background contrast against WCAG AA

Usage:
  contrastcheck check --bg COLOR --text COLOR [flags]
  contrastcheck audit [flags] FILE...
  contrastcheck watch [flags] < pairs.txt
  contrastcheck serve [--addr :8080] [--open]

Colors may be CSS names, #rgb, #rrggbb, #rrggbbaa, rgb()/rgba() or hsl()/hsla().
Run "contrastcheck COMMAND -h" for the flags of each command.
`

// stdio bundles the process streams and environment so commands can run
// against buffers in tests.
type stdio struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	getenv func(string) string
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "contrastcheck: .env: %v\n", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], stdio{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		getenv: os.Getenv,
	})
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, sio stdio) int {
	if sio.getenv == nil {
		sio.getenv = func(string) string { return "" }
	}
	if len(args) == 0 {
		fmt.Fprint(sio.stderr, usageText)
		return exitUsage
	}
	switch args[0] {
	case "check":
		return checkCmd(ctx, args[1:], sio)
	case "audit":
		return auditCmd(ctx, args[1:], sio)
	case "watch":
		return watchCmd(ctx, args[1:], sio)
	case "serve":
		return serveCmd(ctx, args[1:], sio)
	case "-h", "--help", "help":
		fmt.Fprint(sio.stdout, usageText)
		return exitOK
	default:
		fmt.Fprintf(sio.stderr, "contrastcheck: unknown command %q\n\n", args[0])
		fmt.Fprint(sio.stderr, usageText)
		return exitUsage
	}
}
