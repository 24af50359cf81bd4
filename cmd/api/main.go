// Command api sirve la API de mascotas.
//
//	api serve --config config.yaml   # HTTP (default si no se pasa subcomando)
//	api migrate up|down [n]|status   # esquema Postgres
//
// Sin archivo de config se usan defaults + env (PORT, DB_DRIVER, DB_DSN, LOG_LEVEL, ...).
package main

import (
	"fmt"
	"os"

	"pets-api/internal/platform/config"
	"pets-api/internal/platform/logger"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "pets-api",
	Short:         "API de mascotas con grupos y características",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", os.Getenv("CONFIG_FILE"),
		"archivo de configuración (.yaml, .yml o .toml)")
}

// @title Pets API
// @version 1.0
// @description Registro de mascotas con grupos taxonómicos y características que se resuelven o crean al escribir.
// @BasePath /
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig lee la config y arma el logger del proceso.
func loadConfig() (config.Config, logger.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Logging.Level),
		Format: logger.ParseFormat(cfg.Logging.Format),
		App:    cfg.AppName,
	})
	return cfg, log, nil
}

func syncLogger(log logger.Logger) {
	if s, ok := log.(interface{ Sync() error }); ok {
		_ = s.Sync()
	}
}
