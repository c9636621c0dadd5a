// Package main runs the Skee-Ball simulator on the console.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/louisbranch/skeeball/internal/platform/config"
	"github.com/louisbranch/skeeball/internal/tools/skeeball"
)

func main() {
	cfg, err := skeeball.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[SKEEBALL] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := skeeball.Run(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		stop()
		log.Fatalf("play: %v", err)
	}
}
