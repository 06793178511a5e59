package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/reoring/wireparity"
	"github.com/reoring/wireparity/check"
	"github.com/reoring/wireparity/codec/gojson"
	"github.com/reoring/wireparity/codec/jsoniter"
	"github.com/reoring/wireparity/codec/stdjson"
	"github.com/reoring/wireparity/config"
	"github.com/reoring/wireparity/i18n"
	"github.com/reoring/wireparity/internal/log"
	"github.com/reoring/wireparity/registry"
	"github.com/reoring/wireparity/report"
)

// flag name -> config key
var checkFlags = map[string]string{
	"namespace":         "namespace",
	"codec-a":           "codecA",
	"tag-key-b":         "tagKeyB",
	"parallelism":       "parallelism",
	"strict-undeclared": "strictUndeclared",
	"payloads":          "payloads",
	"lang":              "language",
	"format":            "format",
	"color":             "color",
}

func newCheckCmd(v *viper.Viper, configPath *string) *cobra.Command {
	def := config.Default()
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compare both codecs over every model and enum in a namespace",
		Example: `  wireparity check
  wireparity check --namespace github.com/acme/api/model --format json
  wireparity check --strict-undeclared --payloads`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, v, *configPath)
		},
	}
	f := cmd.Flags()
	f.String("namespace", def.Namespace, "Package path whose registered models are checked")
	f.String("codec-a", def.CodecA, "Codec A implementation (go-json|encoding/json)")
	f.String("tag-key-b", def.TagKeyB, "Struct tag key read by codec B")
	f.Int("parallelism", def.Parallelism, "Types checked concurrently (0 selects GOMAXPROCS)")
	f.Bool("strict-undeclared", def.StrictUndeclared, "Report enum constants neither codec declares a wire value for")
	f.Bool("payloads", def.Payloads, "Also compare whole-model payloads")
	f.String("lang", def.Language, "Report language (en|ja)")
	f.StringP("format", "f", def.Format, "Output format (table|text|json|yaml)")
	f.Bool("color", def.Color, "Colour table output when writing to a terminal")
	return cmd
}

func bindFlags(cmd *cobra.Command, v *viper.Viper, keys map[string]string) error {
	for name, key := range keys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return fmt.Errorf("failed to bind flag %s to config: %w", name, err)
		}
	}
	return nil
}

func codecA(name string) wireparity.Codec {
	if name == config.CodecStdJSON {
		return stdjson.New()
	}
	return gojson.New()
}

func runCheck(cmd *cobra.Command, v *viper.Viper, configPath string) error {
	if err := bindFlags(cmd, v, checkFlags); err != nil {
		return setupError(err)
	}
	cfg, err := config.Load(v, configPath)
	if err != nil {
		return setupError(err)
	}
	logger, err := log.New(cfg.Debug)
	if err != nil {
		return setupError(err)
	}
	defer func() { _ = logger.Sync() }()
	logger.Debug("config has been initialised", zap.Any("config", cfg))

	i18n.SetLanguage(cfg.Language)
	a, b := codecA(cfg.CodecA), jsoniter.New(cfg.TagKeyB)
	got, err := check.Suite{
		Registry:  registry.Default,
		Namespace: cfg.Namespace,
		A:         a,
		B:         b,
		Logger:    logger,
		Options: []check.Option{
			check.WithParallelism(cfg.Parallelism),
			check.WithStrictUndeclared(cfg.StrictUndeclared),
			check.WithPayloads(cfg.Payloads),
		},
	}.Run()
	if err != nil {
		return setupError(err)
	}

	res := report.Report(got, report.WithCodecs(a, b))
	out := cmd.OutOrStdout()
	if cfg.Format == report.FormatTable {
		report.Render(out, res, cfg.Color && !color.NoColor)
	} else if err := report.Encode(out, res, cfg.Format); err != nil {
		return setupError(err)
	}
	if !res.Passed {
		return &exitError{code: res.ExitCode()}
	}
	return nil
}
