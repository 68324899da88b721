package labeler

import (
	"encoding/json"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

type Tippecanoe struct {
	Minzoom int `json:"minzoom"`
}

// LabelFeature is the Point feature emitted for one labelled polygon.
type LabelFeature struct {
	ID         any
	Point      orb.Point
	Properties geojson.Properties
	Tippecanoe *Tippecanoe
}

type jsonLabelFeature struct {
	Type       string             `json:"type"`
	ID         any                `json:"id,omitempty"`
	Geometry   *geojson.Geometry  `json:"geometry"`
	Properties geojson.Properties `json:"properties"`
	Tippecanoe *Tippecanoe        `json:"tippecanoe,omitempty"`
}

func (lf *LabelFeature) MarshalJSON() ([]byte, error) {
	props := lf.Properties
	if props == nil {
		props = geojson.Properties{}
	}
	return json.Marshal(jsonLabelFeature{
		Type:       "Feature",
		ID:         lf.ID,
		Geometry:   geojson.NewGeometry(lf.Point),
		Properties: props,
		Tippecanoe: lf.Tippecanoe,
	})
}
