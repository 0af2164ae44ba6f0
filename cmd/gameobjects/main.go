// Package main creates the demo shapes through the game object factory.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	gameobjectscmd "github.com/louisbranch/creational/internal/cmd/gameobjects"
	"github.com/louisbranch/creational/internal/platform/config"
)

func main() {
	cfg, err := gameobjectscmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[GAMEOBJECTS] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := gameobjectscmd.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("gameobjects: %v", err)
	}
}
