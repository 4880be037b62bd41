package scenario

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"
)

// WriteYAML encodes the report as a YAML document.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

// WriteFile writes the report to path, zstd-compressed when path ends in ".zst".
func (r *Report) WriteFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if !strings.EqualFold(filepath.Ext(path), ".zst") {
		return r.WriteYAML(f)
	}
	zw, err := zstd.NewWriter(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := r.WriteYAML(zw); err != nil {
		_ = zw.Close()
		return err
	}
	return zw.Close()
}

// ReadReport decodes a YAML report previously written by WriteYAML.
func ReadReport(rd io.Reader) (*Report, error) {
	var rep Report
	if err := yaml.NewDecoder(rd).Decode(&rep); err != nil {
		return nil, err
	}
	return &rep, nil
}
