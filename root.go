package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/SergeyParamoshkin/articles/internal/config"
)

var (
	configFile string
	v          = config.New()
)

var rootCmd = &cobra.Command{
	Use:   ServiceName,
	Short: "Articles and authors REST API",
	// serve is the default action
	RunE:          runServe,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(config.LoadEnvFiles)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (yaml, json or toml)")
	flags.String("addr", ":3333", "application address")
	flags.String("diag_addr", ":9999", "diagnostics address serving /metrics")
	flags.String("db-driver", config.DriverMemory, "storage backend: memory or postgres")
	flags.String("db-dsn", "", "postgres DSN")

	bindFlag(v, "addr", "addr")
	bindFlag(v, "diag_addr", "diag_addr")
	bindFlag(v, "db.driver", "db-driver")
	bindFlag(v, "db.dsn", "db-dsn")
}

func bindFlag(v *viper.Viper, key, flag string) {
	if err := v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

func loadConfig() (*config.Config, error) {
	return config.Load(v, configFile)
}
