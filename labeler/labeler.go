package labeler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/sirupsen/logrus"

	"github.com/UnownHash/polygon-labels/geo"
)

// Progress is told the running count of input features.
type Progress interface {
	Update(count uint64)
}

type FeatureReader interface {
	// Next returns io.EOF when there are no more features.
	Next() (*geojson.Feature, error)
}

type FeatureWriter interface {
	Write(any) error
}

type Labeler struct {
	logger   *logrus.Logger
	config   Config
	progress Progress

	processed uint64
}

// Processed returns the number of input features seen so far.
func (labeler *Labeler) Processed() uint64 {
	return labeler.processed
}

func (labeler *Labeler) labelPoint(polygon orb.Polygon) orb.Point {
	var pt orb.Point

	switch labeler.config.ParsedLabel {
	case LabelPolylabel:
		pt = geo.Polylabel(polygon, labeler.config.Precision)
	case LabelCentroid:
		pt = geo.Centroid(polygon)
	case LabelCenterOfMass:
		pt = geo.CenterOfMass(polygon)
	}

	return geo.RoundPoint(pt)
}

func (labeler *Labeler) labelPolygon(feature *geojson.Feature, polygon orb.Polygon, bbox geojson.BBox) *LabelFeature {
	config := labeler.config

	props := make(geojson.Properties, len(feature.Properties)+2)
	for k, v := range feature.Properties {
		props[k] = v
	}

	label := &LabelFeature{
		ID:         feature.ID,
		Point:      labeler.labelPoint(polygon),
		Properties: props,
	}

	if config.IncludeArea || config.MinzoomBound != nil {
		area := geo.Area(polygon)

		if config.IncludeArea {
			props["_area"] = int64(math.Round(area))
		}

		if config.MinzoomBound != nil {
			label.Tippecanoe = &Tippecanoe{
				Minzoom: AreaToZoom(area, *config.MinzoomBound),
			}
		}
	}

	if bbox != nil {
		props["_bbox"] = append(geojson.BBox(nil), bbox...)
	}

	return label
}

// LabelFeature returns one point feature per polygon the configured style
// resolves the feature into. Parts that are not polygons are skipped with
// a warning.
func (labeler *Labeler) LabelFeature(feature *geojson.Feature) []*LabelFeature {
	labeler.processed++
	if labeler.progress != nil {
		labeler.progress.Update(labeler.processed)
	}

	if feature == nil || feature.Geometry == nil {
		labeler.logger.Debugf("skipping feature %d: no geometry", labeler.processed)
		return nil
	}

	var bbox geojson.BBox
	if labeler.config.IncludeBbox {
		bbox = geo.BBox(feature.Geometry)
	}

	candidates := labeler.resolve(feature)
	labels := make([]*LabelFeature, 0, len(candidates))

	for _, candidate := range candidates {
		polygon, ok := candidate.Geometry.(orb.Polygon)
		if !ok {
			if candidate.Geometry == nil {
				labeler.logger.Debugf("skipping part of feature %d: no geometry", labeler.processed)
				continue
			}
			dump, err := json.MarshalIndent(candidate, "", "  ")
			if err != nil {
				dump = []byte(fmt.Sprintf("<cannot dump feature: %v>", err))
			}
			labeler.logger.Warnf(
				"skipping part of feature %d: unsupported geometry %s:\n%s",
				labeler.processed,
				candidate.Geometry.GeoJSONType(),
				dump,
			)
			continue
		}
		if len(geo.Vertices(polygon)) == 0 {
			labeler.logger.Warnf("skipping part of feature %d: polygon has no coordinates", labeler.processed)
			continue
		}
		labels = append(labels, labeler.labelPolygon(feature, polygon, bbox))
	}

	return labels
}

// Run labels every feature from reader, writing the labels in input order.
// It returns the number of labels written.
func (labeler *Labeler) Run(reader FeatureReader, writer FeatureWriter) (int, error) {
	var written int

	for {
		feature, err := reader.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return written, nil
			}
			return written, fmt.Errorf("failed to read feature %d: %w", labeler.processed+1, err)
		}

		for _, label := range labeler.LabelFeature(feature) {
			if err := writer.Write(label); err != nil {
				return written, fmt.Errorf("failed to write label for feature %d: %w", labeler.processed, err)
			}
			written++
		}
	}
}

func NewLabeler(logger *logrus.Logger, config Config, progress Progress) (*Labeler, error) {
	if logger == nil {
		return nil, errors.New("No logger given")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	labeler := &Labeler{
		logger:   logger,
		config:   config,
		progress: progress,
	}
	return labeler, nil
}
