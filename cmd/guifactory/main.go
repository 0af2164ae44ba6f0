// Package main draws one GUI widget family.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	guifactorycmd "github.com/louisbranch/creational/internal/cmd/guifactory"
	"github.com/louisbranch/creational/internal/platform/config"
)

func main() {
	cfg, err := guifactorycmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[GUIFACTORY] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := guifactorycmd.Run(ctx, cfg, os.Stdout); err != nil {
		log.Fatalf("guifactory: %v", err)
	}
}
