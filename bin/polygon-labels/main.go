package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/UnownHash/polygon-labels/geo"
	"github.com/UnownHash/polygon-labels/labeler"
	"github.com/UnownHash/polygon-labels/logging"
	"github.com/UnownHash/polygon-labels/pyroscope"
	"github.com/UnownHash/polygon-labels/stream"
	"github.com/UnownHash/polygon-labels/version"
)

type featureWriter interface {
	labeler.FeatureWriter
	Close() error
}

func usage(flagSet *flag.FlagSet, output io.Writer) {
	fmt.Fprintf(output, `polygon-labels version %s
Usage: %s [options] [<input-file>]

%s reads GeoJSON polygon features and writes one label point per polygon,
for placing map labels. Input is read from <input-file>, or stdin if it is
missing or '-'. Output goes to stdout. Logging goes to stderr.

`,
		version.APP_VERSION, os.Args[0], os.Args[0])

	fmt.Fprint(output, "Options:\n")
	flagSet.SetOutput(output)
	flagSet.PrintDefaults()

	fmt.Fprintf(output, `
Examples:
%s -style largest -include-area < parks.geojson > labels.geojson
%s -ndjson -label center-of-mass -include-minzoom 5-14 parks.ndjson
%s -osm -style combine export.osm > labels.geojson
`,
		os.Args[0], os.Args[0], os.Args[0])
}

func newReader(cfg IOConfig, input io.Reader) (labeler.FeatureReader, error) {
	switch {
	case cfg.OSM:
		features, err := stream.ReadOSM(input)
		if err != nil {
			return nil, err
		}
		return stream.NewSliceReader(features), nil
	case cfg.NDJSON:
		return stream.NewNDJSONReader(input), nil
	default:
		return stream.NewCollectionReader(input), nil
	}
}

func newWriter(cfg IOConfig, output io.Writer) featureWriter {
	if cfg.NDJSON {
		return stream.NewNDJSONWriter(output)
	}
	return stream.NewCollectionWriter(output)
}

func openInput(filename string) (io.ReadCloser, error) {
	if filename == "" || filename == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("couldn't open '%s': %w", filename, err)
	}
	return f, nil
}

func run(logger *logrus.Logger, cfg *Config, output io.Writer) error {
	input, err := openInput(cfg.IO.Input)
	if err != nil {
		return err
	}
	defer input.Close()

	progress := logging.NewProgress(os.Stderr, "features processed:")
	logger.AddHook(progress)

	labelerImpl, err := labeler.NewLabeler(logger, cfg.Labels, progress)
	if err != nil {
		return err
	}

	reader, err := newReader(cfg.IO, input)
	if err != nil {
		return err
	}

	writer := newWriter(cfg.IO, output)

	written, err := labelerImpl.Run(reader, writer)
	progress.Done()
	if err != nil {
		return err
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	logger.Infof("Done. %d label(s) written for %d feature(s).", written, labelerImpl.Processed())

	return nil
}

// defineFlags declares the flags that applyFlags copies over the config.
func defineFlags(flagSet *flag.FlagSet) {
	flagSet.Float64("precision", geo.DEFAULT_PRECISION, "polylabel precision, in coordinate units")
	flagSet.Bool("include-area", false, "add the polygon area in m² as '_area'")
	flagSet.Bool("include-bbox", false, "add the feature bounding box as '_bbox'")
	flagSet.String("include-minzoom", "", "add 'tippecanoe.minzoom' derived from area, clamped to 'min-max', e.g. '5-14'")
	flagSet.String("label", string(labeler.LabelPolylabel), "label algorithm: polylabel, centroid or center-of-mass")
	flagSet.String("style", string(labeler.StyleExplode), "how multi geometries are labelled: explode, largest or combine")
	flagSet.Bool("ndjson", false, "read and write newline delimited features instead of a FeatureCollection")
	flagSet.Bool("osm", false, "input is an OSM XML or overpass JSON document")
	flagSet.Bool("verbose", false, "turn on debug logging")
	flagSet.String("log-file", "", "also log to this file, rotated")
}

func main() {
	flagSet := flag.NewFlagSet(os.Args[0], flag.ExitOnError)

	helpFlag := flagSet.Bool("help", false, "help!")
	flagSet.BoolVar(helpFlag, "h", false, "help!")
	versionFlag := flagSet.Bool("version", false, "print the version of this tool and exit")
	configFileFlag := flagSet.String("config", "", "optional toml config file; flags override it")

	defineFlags(flagSet)

	err := flagSet.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s", err)
		usage(flagSet, os.Stderr)
		os.Exit(2)
	}

	if *helpFlag {
		usage(flagSet, os.Stdout)
		os.Exit(0)
	}

	if *versionFlag {
		fmt.Fprintf(os.Stdout, "%s\n", version.APP_VERSION)
		os.Exit(0)
	}

	args := flagSet.Args()
	if len(args) > 1 {
		fmt.Fprint(os.Stderr, "Error: only one input file may be given\n")
		fmt.Fprintf(os.Stderr, "Try %s -help for help.\n", os.Args[0])
		os.Exit(1)
	}

	cfg, err := LoadConfig(*configFileFlag, flagSet)
	if err != nil {
		log.Fatal(err)
	}

	if len(args) == 1 {
		cfg.IO.Input = args[0]
	}

	logger := cfg.CreateLogger()
	logger.Debugf("STARTUP: Version %s. Config loaded.", version.APP_VERSION)
	logger.Infof("Style '%s': %s.", cfg.Labels.ParsedStyle, cfg.Labels.ParsedStyle.Description())

	stopProfiling, err := pyroscope.Run(cfg.Pyroscope)
	if err != nil {
		logger.Errorf("failed to start pyroscope: %v", err)
		os.Exit(1)
	}

	err = run(logger, cfg, os.Stdout)
	stopProfiling()
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}
