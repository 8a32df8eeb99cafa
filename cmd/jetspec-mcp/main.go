// Command jetspec-mcp is an MCP (Model Context Protocol) server that exposes
// dossier layout and rendering to AI assistants over stdio.
//
// # Installation
//
//	go install github.com/jetspec/dossier/cmd/jetspec-mcp@latest
//
// # Available Tools
//
//   - generate_dossier: lay out and render a dossier PDF
//   - plan_dossier: lay out a dossier and report its pages
//   - segment_text: normalize and segment a record field
//
// # Available Resources
//
//   - dossier://pages?path=... : page count and text of a generated dossier
//   - dossier://sections : the section order per branding variant
//
// Logs go to stderr so they never mix with protocol messages on stdout.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"github.com/jetspec/dossier/brand"
	"github.com/jetspec/dossier/mcp"
)

func main() {
	fontDir := flag.String("fonts", "", "directory holding PlayfairDisplay and Manrope TrueType files")
	brandPath := flag.String("brand", "", "default brand JSON file")
	verbose := flag.Bool("v", false, "log debug messages")
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	cfg := mcp.Config{FontDir: *fontDir, Log: log}
	if *brandPath != "" {
		b, err := brand.Load(*brandPath)
		if err != nil {
			log.WithError(err).Fatal("loading brand")
		}
		cfg.Brand = b
	}

	server := mcp.NewServer()
	server.SetLogger(log)
	mcp.RegisterDefaultTools(server, cfg)
	mcp.RegisterDefaultResources(server)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := server.Run(ctx); err != nil && ctx.Err() == nil {
		log.WithError(err).Fatal("jetspec-mcp")
	}
}
