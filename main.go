package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/leonelquinteros/gotext"

	"labyrinth/pkg/engine/config"
	"labyrinth/pkg/game/cli"
)

func initGettext(cfg config.Config) {
	gotext.Configure(cfg.LocaleDir, cfg.Locale, "default")
}

func main() {
	log.SetFlags(0)

	fs := flag.NewFlagSet("labyrinth", flag.ExitOnError)
	cfg, err := config.ParseConfig(fs, os.Args[1:])
	if err != nil {
		log.Fatalf("labyrinth: %v", err)
	}

	initGettext(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.Run(ctx, cfg, os.Stdin, os.Stdout, os.Stderr); err != nil {
		stop()
		log.Fatalf("labyrinth: %v", err)
	}
}
