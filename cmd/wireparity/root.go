package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	// Registers the checkout models with registry.Default.
	_ "github.com/reoring/wireparity/model/checkout"
)

// Exit codes.
const (
	exitPass       = 0
	exitDivergence = 1
	exitSetup      = 2
)

// exitError carries a process exit code out of a command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

func setupError(err error) error { return &exitError{code: exitSetup, err: err} }

func newRootCmd(v *viper.Viper) *cobra.Command {
	var configPath string
	root := &cobra.Command{
		Use:           "wireparity",
		Short:         "Check that two JSON codecs serialize the registered models identically",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to a wireparity.yaml config file")
	root.PersistentFlags().Bool("debug", false, "Run in debug mode")
	_ = v.BindPFlag("debug", root.PersistentFlags().Lookup("debug"))

	root.AddCommand(newCheckCmd(v, &configPath), newGenCmd(v, &configPath))
	return root
}

// run executes the CLI and maps the outcome to an exit code.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(viper.New())
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return exitPass
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			fmt.Fprintln(stderr, "Error:", ee.err)
		}
		return ee.code
	}
	fmt.Fprintln(stderr, "Error:", err)
	return exitSetup
}
