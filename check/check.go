package check

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/wI2L/jsondiff"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/reoring/wireparity"
	"github.com/reoring/wireparity/extract"
)

// Checker compares two codecs over discovered model and enum types. Every check
// is a total function: malformed metadata becomes a Divergence, never a panic or
// an error.
type Checker struct {
	a, b wireparity.Codec
	x    *extract.Extractor

	logger      *zap.Logger
	parallelism int
	strict      bool
	payloads    bool
}

// Option configures a Checker.
type Option func(*Checker)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *Checker) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithParallelism bounds the number of types checked at once. Values below one
// select GOMAXPROCS.
func WithParallelism(n int) Option {
	return func(c *Checker) {
		if n > 0 {
			c.parallelism = n
		}
	}
}

// WithStrictUndeclared reports enum constants for which neither codec emits a
// JSON string, even when both emit the same fallback text.
func WithStrictUndeclared(on bool) Option { return func(c *Checker) { c.strict = on } }

// WithPayloads enables the payload check in Run.
func WithPayloads(on bool) Option { return func(c *Checker) { c.payloads = on } }

// New creates a Checker for codecs a and b using x for field metadata.
func New(a, b wireparity.Codec, x *extract.Extractor, opts ...Option) *Checker {
	c := &Checker{
		a:           a,
		b:           b,
		x:           x,
		logger:      zap.NewNop(),
		parallelism: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run executes the enum check, the field-name check and, when enabled, the
// payload check. The result is sorted by (kind, type, member) and contains no
// duplicates.
func (c *Checker) Run(models []wireparity.ModelType, enums []wireparity.EnumType) wireparity.Divergences {
	var out wireparity.Divergences
	out = append(out, c.CheckEnums(enums)...)
	out = append(out, c.CheckFields(models)...)
	if c.payloads {
		out = append(out, c.CheckPayloads(models)...)
	}
	out.Sort()
	out = out.Compact()
	c.logger.Info("conformance check finished",
		zap.String("codecA", c.a.Name()),
		zap.String("codecB", c.b.Name()),
		zap.Int("models", len(models)),
		zap.Int("enums", len(enums)),
		zap.Int("divergences", len(out)),
	)
	return out
}

// CheckEnums serializes every constant of every enum with both codecs and
// reports each pair whose text differs. A codec failure is recorded as the
// undeclared sentinel and always counts as a mismatch.
func (c *Checker) CheckEnums(enums []wireparity.EnumType) wireparity.Divergences {
	return c.fanOut(wireparity.KindEnumMismatch, len(enums), func(i int) (string, string) {
		return enums[i].Name, enums[i].Pkg
	}, func(i int) wireparity.Divergences {
		return c.checkEnum(enums[i])
	})
}

// CheckFields reports every non-enum field that carries a custom wire name
// under at least one codec but is not declared identically under both.
func (c *Checker) CheckFields(models []wireparity.ModelType) wireparity.Divergences {
	return c.fanOut(wireparity.KindFieldNameMismatch, len(models), modelSubject(models), func(i int) wireparity.Divergences {
		return c.checkFields(models[i])
	})
}

// CheckPayloads marshals the zero value of every model (with its discriminator
// set for family variants) under both codecs and reports semantic differences
// as well as repeated object keys in either output.
func (c *Checker) CheckPayloads(models []wireparity.ModelType) wireparity.Divergences {
	return c.fanOut(wireparity.KindPayloadMismatch, len(models), modelSubject(models), func(i int) wireparity.Divergences {
		return c.checkPayload(models[i])
	})
}

func modelSubject(models []wireparity.ModelType) func(int) (string, string) {
	return func(i int) (string, string) { return models[i].Name, models[i].Pkg }
}

// fanOut runs work for every index in parallel. Each worker owns its slot; the
// slots are merged and sorted only after all workers have returned. A worker
// that panics fills its slot with a divergence of the given kind for subject(i).
func (c *Checker) fanOut(kind string, n int, subject func(i int) (typ, pkg string), work func(i int) wireparity.Divergences) wireparity.Divergences {
	slots := make([]wireparity.Divergences, n)
	var g errgroup.Group
	g.SetLimit(c.parallelism)
	for i := 0; i < n; i++ {
		g.Go(func() (err error) {
			defer func() {
				if p := recover(); p != nil {
					typ, pkg := subject(i)
					err = fmt.Errorf("check %s: panic: %v", typ, p)
					failed := wireparity.Failed(err)
					slots[i] = wireparity.Divergences{{Kind: kind, Type: typ, Pkg: pkg, A: failed, B: failed, Detail: err.Error()}}
				}
			}()
			slots[i] = work(i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		c.logger.Warn("check recovered from a panic", zap.String("kind", kind), zap.Error(err))
	}

	var out wireparity.Divergences
	for _, s := range slots {
		out = append(out, s...)
	}
	out.Sort()
	return out.Compact()
}

func (c *Checker) checkEnum(et wireparity.EnumType) wireparity.Divergences {
	var out wireparity.Divergences
	for _, k := range c.x.ConstantsOf(et) {
		k.A = c.serialize(c.a, k.Value)
		k.B = c.serialize(c.b, k.Value)

		var detail string
		switch {
		case k.A.Err != nil || k.B.Err != nil:
			detail = failureDetail(c.a, k.A, c.b, k.B)
		case k.A.Key() != k.B.Key():
		case c.strict && !k.A.Declared && !k.B.Declared:
			detail = "no codec declares a wire value"
		default:
			continue
		}
		out = append(out, wireparity.Divergence{
			Kind:   wireparity.KindEnumMismatch,
			Type:   et.Name,
			Pkg:    et.Pkg,
			Member: k.Name,
			A:      k.A,
			B:      k.B,
			Detail: detail,
		})
	}
	c.logger.Debug("enum checked", zap.String("enum", et.Name), zap.Int("constants", len(et.Constants)), zap.Int("divergences", len(out)))
	return out
}

func (c *Checker) checkFields(mt wireparity.ModelType) wireparity.Divergences {
	var out wireparity.Divergences
	for _, f := range c.x.FieldsOf(mt) {
		if f.IsEnum() {
			continue // covered by the enum check
		}
		renamed := (f.A.Declared && f.A.Value != f.Name) || (f.B.Declared && f.B.Value != f.Name)
		if !renamed {
			continue
		}
		if f.A.Declared && f.B.Declared && f.A.Value == f.B.Value {
			continue
		}
		out = append(out, wireparity.Divergence{
			Kind:   wireparity.KindFieldNameMismatch,
			Type:   mt.Name,
			Pkg:    mt.Pkg,
			Member: f.Name,
			A:      f.A,
			B:      f.B,
		})
	}
	c.logger.Debug("fields checked", zap.String("model", mt.Name), zap.Int("divergences", len(out)))
	return out
}

func (c *Checker) checkPayload(mt wireparity.ModelType) wireparity.Divergences {
	if mt.Type == nil || mt.Type.Kind() != reflect.Struct {
		return nil
	}
	v := reflect.New(mt.Type).Elem()
	if mt.Polymorphic && mt.Discriminator != "" {
		if f := v.FieldByName(mt.Discriminator); f.IsValid() && f.CanSet() && f.Kind() == reflect.String {
			f.SetString(mt.DiscriminatorValue)
		}
	}
	sample := v.Interface()

	a := c.serialize(c.a, sample)
	b := c.serialize(c.b, sample)
	a.Declared, b.Declared = a.Err == nil, b.Err == nil
	d := wireparity.Divergence{Kind: wireparity.KindPayloadMismatch, Type: mt.Name, Pkg: mt.Pkg, A: a, B: b}
	if a.Err != nil || b.Err != nil {
		d.Detail = failureDetail(c.a, a, c.b, b)
		return wireparity.Divergences{d}
	}
	var ops []string
	patch, err := jsondiff.CompareJSON([]byte(a.Value), []byte(b.Value))
	if err != nil {
		ops = append(ops, "compare: "+err.Error())
	}
	for _, op := range patch {
		ops = append(ops, fmt.Sprintf("%s %s", op.Type, op.Path))
	}
	for _, side := range []struct {
		codec wireparity.Codec
		out   string
	}{{c.a, a.Value}, {c.b, b.Value}} {
		dups, err := duplicateKeys([]byte(side.out))
		if err != nil {
			ops = append(ops, fmt.Sprintf("scan under %s: %v", side.codec.Name(), err))
		}
		for _, p := range dups {
			ops = append(ops, fmt.Sprintf("duplicate %s under %s", p, side.codec.Name()))
		}
	}
	if len(ops) == 0 {
		return nil
	}
	d.Detail = strings.Join(ops, ", ")
	c.logger.Debug("payload differs", zap.String("model", mt.Name), zap.String("patch", d.Detail))
	return wireparity.Divergences{d}
}

// serialize runs one codec. Output that is a JSON string counts as declared;
// anything else is the codec's fallback rendering.
func (c *Checker) serialize(codec wireparity.Codec, v any) wireparity.Wire {
	s, err := codec.Serialize(v)
	if err != nil {
		c.logger.Debug("codec failed", zap.String("codec", codec.Name()), zap.String("type", fmt.Sprintf("%T", v)), zap.Error(err))
		return wireparity.Failed(err)
	}
	return wireparity.Wire{Value: s, Declared: strings.HasPrefix(s, `"`)}
}

func failureDetail(ca wireparity.Codec, a wireparity.Wire, cb wireparity.Codec, b wireparity.Wire) string {
	var parts []string
	if a.Err != nil {
		parts = append(parts, ca.Name()+": "+a.Err.Error())
	}
	if b.Err != nil {
		parts = append(parts, cb.Name()+": "+b.Err.Error())
	}
	return strings.Join(parts, "; ")
}
