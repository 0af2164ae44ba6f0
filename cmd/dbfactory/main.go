// Package main runs a query through one database family.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	dbfactorycmd "github.com/louisbranch/creational/internal/cmd/dbfactory"
	"github.com/louisbranch/creational/internal/platform/config"
)

func main() {
	cfg, err := dbfactorycmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[DBFACTORY] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := dbfactorycmd.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("dbfactory: %v", err)
	}
}
