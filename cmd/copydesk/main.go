package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"copydesk/internal/store"
)

func main() {
	os.Exit(run())
}

func run() int {
	err := newRootCommand().Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return 1
	case errors.Is(err, store.ErrStoreLocked):
		fmt.Fprintln(os.Stderr, "copydesk: another session holds the data store; close it and retry")
		return 2
	default:
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
}
