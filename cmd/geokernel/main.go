// Command geokernel evaluates kernel scripts from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/chazu/geokernel/pkg/engine"
	"github.com/chazu/geokernel/pkg/numeric"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// These variables are set via ldflags during build.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

const envPrefix = "GEOKERNEL"

var rootCmd = &cobra.Command{
	Use:   "geokernel",
	Short: "Tolerant computational geometry kernel",
	Long: `geokernel evaluates Lisp scripts against a tolerant geometry kernel:
oriented bounding boxes, plane clipping, curve equality and best-fit frames.`,
	SilenceUsage: true,
}

// conf holds flags, GEOKERNEL_* environment variables and the optional
// config file, in decreasing order of precedence.
var conf = viper.New()

func init() {
	rootCmd.PersistentFlags().Duration("timeout", engine.DefaultTimeout,
		"Evaluation time limit for a single script.")
	rootCmd.PersistentFlags().Float64("tolerance", numeric.DefaultTolerance,
		"Default tolerance for builtins that compare or iterate.")
	rootCmd.PersistentFlags().String("log_level", "warn",
		"Log level, one of [debug, info, warn, error].")
	rootCmd.PersistentFlags().String("config", "",
		"Configuration file. Overridden by environment variables and flags.")
	_ = conf.BindPFlags(rootCmd.PersistentFlags())
	conf.SetEnvPrefix(envPrefix)
	conf.AutomaticEnv()

	cobra.OnInitialize(func() {
		cfg := conf.GetString("config")
		if cfg == "" {
			return
		}
		conf.SetConfigFile(cfg)
		if err := conf.ReadInConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading config %s: %v\n", cfg, err)
			os.Exit(1)
		}
	})

	rootCmd.AddCommand(evalCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
