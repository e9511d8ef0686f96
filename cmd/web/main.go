// Package main starts the tilavaraus web server process lifecycle.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	webcmd "github.com/tilavaraus/tilavaraus-web/internal/cmd/web"
	"github.com/tilavaraus/tilavaraus-web/internal/platform/config"
)

func main() {
	if err := webcmd.LoadDotEnv(webcmd.DotEnvFile); err != nil {
		config.Exitf("load env: %v", err)
	}
	cfg, err := webcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[WEB] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := webcmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
