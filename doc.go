package wireparity

// Package wireparity verifies that two independently implemented JSON codecs
// agree on the wire shape of a model set:
//
// - Every enum constant serializes to the same text under both codecs
// - Every field with a custom wire name declares the same name for both codecs
// - Optionally, whole payloads marshal to semantically identical JSON
//
// Design policy:
// - Keep the data model and codec contract in the root package.
// - Discovery lives under registry/, tag extraction under extract/, the
//   checks under check/, and the pass/fail gate under report/.
// - Codec adapters live under codec/, one package per JSON library.
//
// Typical usage:
//
//	suite := check.Suite{
//		Registry:  registry.Default,
//		Namespace: "github.com/reoring/wireparity/model",
//		A:         gojson.New(),
//		B:         jsoniter.New(jsoniter.DefaultTagKey),
//	}
//	divs, err := suite.Run()
//	res := report.Report(divs)
//	report.Require(t, res)
