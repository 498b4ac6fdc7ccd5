// Package main provides the CLI entrypoint for accessor-generator.
//
// accessor-generator reads structs annotated with //accessor:gen (or listed
// in an options file) and writes getter, mutable getter and setter methods
// next to them:
//   - gen: generate accessors_gen.go for every matching package
//   - explain: show how each accessor's options were resolved
//   - watch: regenerate whenever Go sources change
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd().ExecuteContext(ctx)

	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
