package stream

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/paulmach/orb/geojson"
)

const maxLineBytes = 64 * 1024 * 1024

// CollectionReader streams the members of the "features" array of
// a single FeatureCollection document, one at a time.
type CollectionReader struct {
	decoder *json.Decoder
	started bool
	done    bool
}

func (r *CollectionReader) seekFeatures() error {
	r.started = true

	tok, err := r.decoder.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			r.done = true
			return nil
		}
		return err
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected a FeatureCollection object, got %v", tok)
	}

	for r.decoder.More() {
		tok, err := r.decoder.Token()
		if err != nil {
			return err
		}

		key, _ := tok.(string)
		if key != "features" {
			var skipped json.RawMessage
			if err := r.decoder.Decode(&skipped); err != nil {
				return fmt.Errorf("bad '%s' member: %w", key, err)
			}
			continue
		}

		tok, err = r.decoder.Token()
		if err != nil {
			return err
		}
		if delim, ok := tok.(json.Delim); !ok || delim != '[' {
			return fmt.Errorf("'features' should be an array, got %v", tok)
		}
		return nil
	}

	// object without features
	r.done = true
	return nil
}

func (r *CollectionReader) Next() (*geojson.Feature, error) {
	if !r.started {
		if err := r.seekFeatures(); err != nil {
			r.done = true
			return nil, err
		}
	}

	if r.done {
		return nil, io.EOF
	}

	if !r.decoder.More() {
		r.done = true
		// closing ']'
		if _, err := r.decoder.Token(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}

	var raw json.RawMessage
	if err := r.decoder.Decode(&raw); err != nil {
		r.done = true
		return nil, err
	}

	return geojson.UnmarshalFeature(raw)
}

func NewCollectionReader(input io.Reader) *CollectionReader {
	return &CollectionReader{
		decoder: json.NewDecoder(bufio.NewReader(input)),
	}
}

// NDJSONReader reads one feature per line. Blank lines are skipped.
type NDJSONReader struct {
	scanner *bufio.Scanner
	line    int
}

func (r *NDJSONReader) Next() (*geojson.Feature, error) {
	for r.scanner.Scan() {
		r.line++
		line := bytes.TrimSpace(r.scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		feature, err := geojson.UnmarshalFeature(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", r.line, err)
		}
		return feature, nil
	}

	if err := r.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

func NewNDJSONReader(input io.Reader) *NDJSONReader {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &NDJSONReader{
		scanner: scanner,
	}
}

// SliceReader hands out features that are already in memory.
type SliceReader struct {
	features []*geojson.Feature
}

func (r *SliceReader) Next() (*geojson.Feature, error) {
	if len(r.features) == 0 {
		return nil, io.EOF
	}
	feature := r.features[0]
	r.features = r.features[1:]
	return feature, nil
}

func NewSliceReader(features []*geojson.Feature) *SliceReader {
	return &SliceReader{
		features: features,
	}
}
