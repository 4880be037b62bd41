package scenario

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed scenario.schema.json
var schemaJSON string

var schema = jsonschema.MustCompileString("scenario.schema.json", schemaJSON)

// Load reads the scenario at path. Files ending in ".zst" are zstd-compressed,
// files ending in ".gz" gzip-compressed; anything else is plain YAML.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst":
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		defer dec.Close()
		r = dec
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	s, err := Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decode reads one YAML scenario document from r, validates it against the
// embedded schema and the semantic rules of Scenario.Validate.
func Decode(r io.Reader) (*Scenario, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if err := validateSchema(raw); err != nil {
		return nil, err
	}

	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// validateSchema converts the YAML document to its JSON form and checks it
// against scenario.schema.json.
func validateSchema(raw []byte) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	js, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	var v any
	jd := json.NewDecoder(bytes.NewReader(js))
	jd.UseNumber()
	if err := jd.Decode(&v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	return nil
}
