package stream

import (
	"bufio"
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmgeojson"
)

// ReadOSM decodes an OSM document, XML or overpass JSON, and converts its
// ways and relations to features.
func ReadOSM(input io.Reader) ([]*geojson.Feature, error) {
	buffered := bufio.NewReader(input)

	var osmData osm.OSM

	first, err := firstNonSpace(buffered)
	if err != nil {
		return nil, fmt.Errorf("failed to read osm data: %w", err)
	}

	if first == '<' {
		err = xml.NewDecoder(buffered).Decode(&osmData)
	} else {
		err = json.NewDecoder(buffered).Decode(&osmData)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode osm data: %w", err)
	}

	fc, err := osmgeojson.Convert(&osmData)
	if err != nil {
		return nil, fmt.Errorf("error converting osm to geojson: %w", err)
	}

	for _, feature := range fc.Features {
		AdjustOSMProperties(feature)
	}

	return fc.Features, nil
}

func firstNonSpace(r *bufio.Reader) (byte, error) {
	for n := 1; ; n++ {
		peeked, err := r.Peek(n)
		if len(peeked) < n {
			return 0, err
		}
		if b := peeked[n-1]; len(bytes.TrimSpace([]byte{b})) > 0 {
			return b, nil
		}
	}
}

// AdjustOSMProperties moves osm tags up into the feature properties without
// replacing existing ones, then drops the nested tags, meta and relations
// members.
func AdjustOSMProperties(feature *geojson.Feature) {
	props := feature.Properties
	if props == nil {
		return
	}

	switch tags := props["tags"].(type) {
	case map[string]string:
		for k, v := range tags {
			if _, ok := props[k]; !ok {
				props[k] = v
			}
		}
	case map[string]any:
		for k, v := range tags {
			if _, ok := props[k]; !ok {
				props[k] = v
			}
		}
	}

	// meta and relations are an object and an array that labels have no
	// use for.
	delete(props, "meta")
	delete(props, "relations")
	delete(props, "tags")
}
