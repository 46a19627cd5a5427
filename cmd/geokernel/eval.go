package main

import (
	"fmt"
	"io"
	"os"

	"github.com/chazu/geokernel/pkg/engine"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var evalCmd = &cobra.Command{
	Use:   "eval [file]",
	Short: "Evaluate a kernel script and print its last value",
	Long:  "Evaluate a kernel script. Use - to read the script from standard input.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readSource(args[0], cmd.InOrStdin())
		if err != nil {
			return err
		}
		return runEval(conf, string(source), cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "geokernel %s (%s)\n", Version, GitCommit)
	},
}

func readSource(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		source, err := io.ReadAll(stdin)
		return source, errors.Wrap(err, "reading standard input")
	}
	source, err := os.ReadFile(path)
	return source, errors.Wrapf(err, "reading %s", path)
}

// runEval evaluates source with the engine settings in v. Eval errors are
// printed to stderr, one per line, and reported as a single error.
func runEval(v *viper.Viper, source string, stdout, stderr io.Writer) error {
	logger, err := newLogger(v.GetString("log_level"), stderr)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	eng := engine.NewEngine(
		engine.WithTimeout(v.GetDuration("timeout")),
		engine.WithTolerance(v.GetFloat64("tolerance")),
		engine.WithLogger(logger),
	)
	res, evalErrs, err := eng.Evaluate(source)
	if err != nil {
		return err
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			fmt.Fprintln(stderr, e.Error())
		}
		return errors.Errorf("%d evaluation error(s)", len(evalErrs))
	}
	if res.Text != "" {
		fmt.Fprintln(stdout, res.Text)
	}
	return nil
}

// newLogger builds a console logger writing to w at the named level.
func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "log_level")
	}
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), lvl)
	return zap.New(core), nil
}
