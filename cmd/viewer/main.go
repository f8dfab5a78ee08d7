//go:build ebiten

package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"snowflake/internal/app"
	"snowflake/internal/sims/reiter"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(pflag.CommandLine)
	pflag.Parse()

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", cfg.LogLevel)
	}
	logrus.SetLevel(level)

	model, err := cfg.Resolve(pflag.CommandLine)
	if err != nil {
		logrus.Fatalf("invalid parameters: %v", err)
	}

	grid := reiter.New(model)
	logrus.Infof("viewer started: %d points, alpha=%g beta=%g gamma=%g", grid.Len(), model.Alpha, model.Beta, model.Gamma)

	game := app.New(grid, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("snowflake: " + grid.Name())
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logrus.Fatal(err)
	}
}
