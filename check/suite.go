package check

import (
	"go.uber.org/zap"

	"github.com/reoring/wireparity"
	"github.com/reoring/wireparity/extract"
	"github.com/reoring/wireparity/registry"
)

// Suite wires discovery, extraction and checking for one namespace.
type Suite struct {
	Registry  *registry.Registry
	Namespace string
	A, B      wireparity.Codec
	Logger    *zap.Logger
	Options   []Option
}

// Run discovers every model and enum type in the namespace, then checks them.
// Discovery completes before any check starts; a discovery failure is returned
// as is and no partial analysis is attempted.
func (s Suite) Run() (wireparity.Divergences, error) {
	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	reg := s.Registry
	if reg == nil {
		reg = registry.Default
	}

	models, err := reg.DiscoverModelTypes(s.Namespace)
	if err != nil {
		logger.Error("model discovery failed", zap.String("namespace", s.Namespace), zap.Error(err))
		return nil, err
	}
	enums, err := reg.DiscoverEnumTypes(models)
	if err != nil {
		logger.Error("enum discovery failed", zap.String("namespace", s.Namespace), zap.Error(err))
		return nil, err
	}
	logger.Info("discovered types", zap.String("namespace", s.Namespace), zap.Int("models", len(models)), zap.Int("enums", len(enums)))

	x := extract.New(s.A, s.B, reg.Enum)
	opts := append([]Option{WithLogger(logger)}, s.Options...)
	return New(s.A, s.B, x, opts...).Run(models, enums), nil
}
