package main

import (
	"context"
	"fmt"

	"github.com/peas8810/ojs/internal/app"
	"github.com/peas8810/ojs/internal/config"
)

// The process always exits 0: a failed run only prints the error line and
// leaves the previous JSON snapshot as-is.
func main() {
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		fmt.Println("ERRO ao atualizar (mantendo JSON anterior):", err)
		return
	}

	updater, err := app.NewUpdater(cfg)
	if err != nil {
		fmt.Println("ERRO ao atualizar (mantendo JSON anterior):", err)
		return
	}
	defer updater.Close()

	if err := updater.Run(context.Background()); err != nil {
		fmt.Println("ERRO ao atualizar (mantendo JSON anterior):", err)
		return
	}

	fmt.Println("OK: JSON atualizado.")
}
