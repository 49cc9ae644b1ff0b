package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stagelight/go-dmxboot/config"
	"github.com/stagelight/go-dmxboot/internal/logging"
)

var (
	configDir string

	// populated by loadConfig before every command runs
	v   *viper.Viper
	cfg *config.Config
	log = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:               "dmxboot",
	Short:             "Upload firmware to a DMX fixture bootloader",
	Long:              "Uploads Intel HEX firmware images to the serial bootloader of a DMX fixture.",
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", ".", "directory containing dmxboot.yaml")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	v = config.New(configDir)

	// config init must work even when the existing file is broken
	if cmd == configInitCmd {
		return nil
	}
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	var err error
	cfg, err = config.Load(v)
	if err != nil {
		return err
	}

	log, err = logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log-level: %w", err)
	}
	log.Debug().Str("port", cfg.Port).Int("baud", cfg.BaudRate).Msg("configuration loaded")
	return nil
}
