package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

// wrapperKeys are the object keys probed when the catalog file wraps its
// entry array instead of being a bare array.
var wrapperKeys = []string{"feeds", "items", "data"}

// ErrInvalidCatalogFile indicates a catalog file that is present but not an
// array of entries (or an object wrapping one). This is fatal
// misconfiguration, unlike a missing file.
var ErrInvalidCatalogFile = errors.New("catalog: file must be a JSON array or an object wrapping one")

// fileEntry is the raw shape of one catalog file entry. Tags may be a
// string or an array of strings; mapstructure's weakly typed decoding
// wraps a bare string into a single-element slice.
type fileEntry struct {
	URL    string   `mapstructure:"url"`
	Source string   `mapstructure:"source"`
	Tags   []string `mapstructure:"tags"`
}

// LoadFile reads feed descriptors from a JSON catalog file. The file is an
// array of {url, source?, tags?} objects, or an object wrapping such an
// array under "feeds", "items", or "data". A missing file yields no
// descriptors and no error; a present but malformed file is an error.
// Entries without a URL are skipped; entries without a source get the
// endpoint's scheme+host.
func LoadFile(path string) ([]Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("catalog read %s: %w", path, err)
	}

	rawEntries, err := decodeEntryList(data)
	if err != nil {
		return nil, fmt.Errorf("catalog load %s: %w", path, err)
	}

	descriptors := make([]Descriptor, 0, len(rawEntries))

	for _, raw := range rawEntries {
		entry, decodeErr := decodeEntry(raw)
		if decodeErr != nil {
			continue
		}

		if entry.URL == "" {
			continue
		}

		descriptor := Descriptor{
			Kind:     KindFeed,
			Endpoint: entry.URL,
			Origin:   entry.Source,
			Labels:   entry.Tags,
		}

		if normErr := descriptor.Normalize(); normErr != nil {
			continue
		}

		descriptors = append(descriptors, descriptor)
	}

	return descriptors, nil
}

// decodeEntryList extracts the raw entry array from the file body,
// unwrapping a single-key object when needed.
func decodeEntryList(data []byte) ([]map[string]any, error) {
	var asArray []map[string]any
	if err := json.Unmarshal(data, &asArray); err == nil {
		return asArray, nil
	}

	var asObject map[string]json.RawMessage
	if err := json.Unmarshal(data, &asObject); err != nil {
		return nil, ErrInvalidCatalogFile
	}

	for _, key := range wrapperKeys {
		raw, ok := asObject[key]
		if !ok {
			continue
		}

		var entries []map[string]any
		if err := json.Unmarshal(raw, &entries); err == nil {
			return entries, nil
		}
	}

	return nil, ErrInvalidCatalogFile
}

// decodeEntry converts one raw entry map to a fileEntry.
func decodeEntry(raw map[string]any) (fileEntry, error) {
	var entry fileEntry

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &entry,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fileEntry{}, fmt.Errorf("catalog decoder: %w", err)
	}

	if decodeErr := decoder.Decode(raw); decodeErr != nil {
		return fileEntry{}, fmt.Errorf("catalog decode entry: %w", decodeErr)
	}

	return entry, nil
}
