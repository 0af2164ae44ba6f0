// Package main assembles a character for one archetype.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	characterbuildercmd "github.com/louisbranch/creational/internal/cmd/characterbuilder"
	"github.com/louisbranch/creational/internal/platform/config"
)

func main() {
	cfg, err := characterbuildercmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[CHARACTERBUILDER] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := characterbuildercmd.Run(ctx, cfg, os.Stdout); err != nil {
		log.Fatalf("characterbuilder: %v", err)
	}
}
