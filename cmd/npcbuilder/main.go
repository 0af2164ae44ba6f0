// Package main scripts the hero NPC through the setter builder.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	npcbuildercmd "github.com/louisbranch/creational/internal/cmd/npcbuilder"
	"github.com/louisbranch/creational/internal/platform/config"
)

func main() {
	cfg, err := npcbuildercmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[NPCBUILDER] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := npcbuildercmd.Run(ctx, cfg, os.Stdout); err != nil {
		log.Fatalf("npcbuilder: %v", err)
	}
}
