package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/dixieflatline76/WallCrop/config"
)

func main() {
	root := newRootCmd()

	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(config.AppVersion),
		fang.WithNotifySignal(os.Interrupt, os.Kill),
	); err != nil {
		os.Exit(1)
	}
}
