// Package main starts the brand directory web service.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	webcmd "github.com/louisbranch/topbrands/internal/cmd/web"
	entrypoint "github.com/louisbranch/topbrands/internal/platform/cmd"
	"github.com/louisbranch/topbrands/internal/platform/config"
)

func main() {
	entrypoint.ConfigureLogging(entrypoint.ServiceWeb)
	cfg, err := webcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := webcmd.Run(ctx, cfg); err != nil {
		config.Exitf("failed to serve: %v", err)
	}
}
