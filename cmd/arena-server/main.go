// Command arena-server runs the headless tank arena simulation and serves
// it over websockets.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"tankarena/internal/config"
	"tankarena/internal/game"
	"tankarena/internal/server"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (defaults apply when empty)")
	dev := flag.Bool("dev", false, "use human-readable development logging")
	flag.Parse()

	if err := run(*configPath, *dev); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, dev bool) error {
	log, err := buildLogger(dev)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	cfg := config.Default()
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
		if err != nil {
			return err
		}
	}

	world := game.NewWorld(cfg, log.Named("world"))
	world.TankHit.AddListener(func(e game.HitEvent) {
		log.Debug("tank hit",
			zap.Uint64("target", e.Target.UID),
			zap.Float32("damage", e.Damage),
		)
	})
	world.ObstacleDestroyed.AddListener(func(o *game.Obstacle) {
		log.Info("obstacle destroyed", zap.Uint64("uid", o.UID))
	})

	hub := server.NewHub(cfg, world, log.Named("hub"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return hub.Run(ctx)
}

func buildLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
