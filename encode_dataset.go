package perfcompare

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// A dataset is persisted as a single JSON object:
//
//	{"years":[2020,2021],"assets":[{"key":"bitcoin","name":"Bitcoin","color":"#f7931a","returns":[303,59.7]}]}
//
// name and color are optional and default to the asset key's ones.

// DecodeDataset reads and validates a dataset.
func DecodeDataset(r io.Reader) (*Dataset, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var d Dataset
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("format error in dataset: %w", err)
	}
	for i := range d.Assets {
		a := &d.Assets[i]
		if a.Name == "" {
			a.Name = a.Key.Name()
		}
		if a.Color == "" {
			a.Color = a.Key.Color()
		}
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dataset: %w", err)
	}
	return &d, nil
}

// EncodeDataset writes the dataset as indented JSON.
func EncodeDataset(w io.Writer, d *Dataset) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// LoadDataset decodes the dataset stored in filename.
// The returned error wraps fs.ErrNotExist if the file is missing.
func LoadDataset(filename string) (*Dataset, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := DecodeDataset(f)
	if err != nil {
		return nil, fmt.Errorf("cannot load %q: %w", filename, err)
	}
	return d, nil
}
