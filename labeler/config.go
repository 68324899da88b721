package labeler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/UnownHash/polygon-labels/geo"
)

var (
	ErrUnknownStyle = errors.New("unknown style")
	ErrUnknownLabel = errors.New("unknown label algorithm")
	ErrBadMinzoom   = errors.New("include_minzoom should look like 'min-max'")
)

// Style decides how a feature is split into the polygons that get labels.
type Style string

const (
	StyleExplode Style = "explode"
	StyleLargest Style = "largest"
	StyleCombine Style = "combine"
)

func ParseStyle(s string) (Style, error) {
	switch style := Style(s); style {
	case StyleExplode, StyleLargest, StyleCombine:
		return style, nil
	}
	return "", fmt.Errorf("%w '%s': should be one of explode, largest, combine", ErrUnknownStyle, s)
}

func (style Style) Description() string {
	switch style {
	case StyleExplode:
		return "labelling every polygon part of each feature"
	case StyleLargest:
		return "labelling only the largest polygon part of each feature"
	case StyleCombine:
		return "labelling the convex hull of all parts of each feature"
	}
	return "unknown style"
}

// Label picks the algorithm computing the label point of one polygon.
type Label string

const (
	LabelPolylabel    Label = "polylabel"
	LabelCentroid     Label = "centroid"
	LabelCenterOfMass Label = "center-of-mass"
)

func ParseLabel(s string) (Label, error) {
	switch label := Label(s); label {
	case LabelPolylabel, LabelCentroid, LabelCenterOfMass:
		return label, nil
	}
	return "", fmt.Errorf("%w '%s': should be one of polylabel, centroid, center-of-mass", ErrUnknownLabel, s)
}

type ZoomBound struct {
	Min int
	Max int
}

func (zb ZoomBound) String() string {
	return fmt.Sprintf("%d-%d", zb.Min, zb.Max)
}

func ParseZoomBound(s string) (ZoomBound, error) {
	splitted := strings.Split(s, "-") // "5-10"
	if len(splitted) != 2 {
		return ZoomBound{}, fmt.Errorf("%w, got '%s'", ErrBadMinzoom, s)
	}

	minZoom, err := strconv.Atoi(strings.TrimSpace(splitted[0]))
	if err != nil {
		return ZoomBound{}, fmt.Errorf("%w, got '%s': bad min: %v", ErrBadMinzoom, s, err)
	}

	maxZoom, err := strconv.Atoi(strings.TrimSpace(splitted[1]))
	if err != nil {
		return ZoomBound{}, fmt.Errorf("%w, got '%s': bad max: %v", ErrBadMinzoom, s, err)
	}

	if minZoom > maxZoom {
		return ZoomBound{}, fmt.Errorf("%w, got '%s': min is larger than max", ErrBadMinzoom, s)
	}

	return ZoomBound{Min: minZoom, Max: maxZoom}, nil
}

type Config struct {
	// tolerance for polylabel, in coordinate units.
	Precision   float64 `koanf:"precision"`
	IncludeArea bool    `koanf:"include_area"`
	IncludeBbox bool    `koanf:"include_bbox"`
	// "min-max" or empty/"false" to disable.
	IncludeMinzoom string `koanf:"include_minzoom"`
	Label          string `koanf:"label"`
	Style          string `koanf:"style"`

	// computed during validation
	ParsedStyle  Style      `koanf:"-"`
	ParsedLabel  Label      `koanf:"-"`
	MinzoomBound *ZoomBound `koanf:"-"`
}

func (cfg *Config) Validate() error {
	style, err := ParseStyle(cfg.Style)
	if err != nil {
		return err
	}

	label, err := ParseLabel(cfg.Label)
	if err != nil {
		return err
	}

	if cfg.Precision <= 0 {
		return fmt.Errorf("precision should be greater than 0, got %v", cfg.Precision)
	}

	cfg.MinzoomBound = nil
	if minzoom := cfg.IncludeMinzoom; minzoom != "" && minzoom != "false" {
		bound, err := ParseZoomBound(minzoom)
		if err != nil {
			return err
		}
		cfg.MinzoomBound = &bound
	}

	cfg.ParsedStyle = style
	cfg.ParsedLabel = label

	return nil
}

func GetDefaultConfig() Config {
	return Config{
		Precision: geo.DEFAULT_PRECISION,
		Label:     string(LabelPolylabel),
		Style:     string(StyleExplode),
	}
}
