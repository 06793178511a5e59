package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/reoring/wireparity/config"
	"github.com/reoring/wireparity/internal/gen"
	"github.com/reoring/wireparity/internal/log"
)

func newGenCmd(v *viper.Viper, configPath *string) *cobra.Command {
	var opts gen.Options
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate the registry file for a model package",
		Long: `Scans a Go package and writes zz_generated.registry.go, which registers
its exported structs, its enums (named basic types with typed constants) and
its families (interfaces marked with //wireparity:family) on init.`,
		Example: `  wireparity gen --pkgdir ./model/checkout
  wireparity gen --pkgdir ./model/checkout --verify`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v, *configPath)
			if err != nil {
				return setupError(err)
			}
			logger, err := log.New(cfg.Debug)
			if err != nil {
				return setupError(err)
			}
			defer func() { _ = logger.Sync() }()

			pkg, err := gen.Generate(opts)
			switch {
			case errors.Is(err, gen.ErrStale):
				return &exitError{code: exitDivergence, err: err}
			case err != nil:
				return setupError(err)
			}
			for _, d := range pkg.Decls() {
				logger.Debug("registered", zap.String("type", d.TypeName()), zap.Int("kind", int(d.Kind())))
			}
			if opts.Verify {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: registry is up to date\n", opts.PkgDir)
			} else {
				logger.Info("wrote registry", zap.String("package", pkg.Name), zap.Int("models", len(pkg.Models)), zap.Int("enums", len(pkg.Enums)), zap.Int("families", len(pkg.Families)))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.PkgDir, "pkgdir", ".", "Directory of the model package")
	cmd.Flags().StringVarP(&opts.Out, "output", "o", "", "Output file (default <pkgdir>/"+gen.FileName+")")
	cmd.Flags().BoolVar(&opts.Verify, "verify", false, "Fail when the committed registry file is stale")
	return cmd
}
