// tailhash prints the last ten hex characters of the SHA-256 digest of its
// single argument.
//
//	$ tailhash "hello world"
//	ace2efcde9
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/asteroid-belt/tailhash/internal/cli"
	"github.com/asteroid-belt/tailhash/internal/config"
	"github.com/asteroid-belt/tailhash/internal/log"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	log.Init(log.New(os.Stdout, os.Stderr))

	cfg, err := config.Load()
	if err != nil {
		log.Errorf("tailhash: %v", err)
		os.Exit(cli.ExitError)
	}

	// fang has already written the diagnostic to stderr.
	if err := cli.Execute(ctx, cfg); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
