package main

import (
	"flag"
	"fmt"

	"github.com/golang/geo/s2"
	"github.com/golang/glog"

	"github.com/mapgrid/geoscene/internal/batch"
	"github.com/mapgrid/geoscene/internal/config"
	"github.com/mapgrid/geoscene/internal/converters"
	"github.com/mapgrid/geoscene/internal/converters/elevation/grid_elevation_sampler"
	"github.com/mapgrid/geoscene/internal/converters/elevation/offset_elevation_sampler"
	"github.com/mapgrid/geoscene/internal/converters/utm_coordinate_converter"
	sceneio "github.com/mapgrid/geoscene/internal/io"
	"github.com/mapgrid/geoscene/pkg/anchor"
	"github.com/mapgrid/geoscene/pkg/geometry"
	"github.com/mapgrid/geoscene/pkg/scene"
	"github.com/mapgrid/geoscene/tools"
)

const VERSION = "1.0.0"

const banner = `geoscene - anchored ETRS89/UTM <-> scene coordinate converter`

func main() {
	// glog registers its own flags (-logtostderr etc.) on the default set
	flag.Parse()
	defer glog.Flush()

	args := flag.Args()
	if len(args) == 0 {
		glog.Exit("Please specify a subcommand [convert|batch].")
	}
	cmd, args := args[0], args[1:]

	switch cmd {
	case tools.CommandConvert:
		mainCommandConvert(args)
	case tools.CommandBatch:
		mainCommandBatch(args)
	default:
		glog.Exitf("Unrecognized command [%q]. Command must be one of [convert|batch]", cmd)
	}
}

func mainCommandConvert(args []string) {
	flags := tools.ParseFlagsForCommandConvert(args)

	if *flags.Help {
		showHelp()
		return
	}
	if *flags.Version {
		printVersion()
		return
	}

	glog.Infoln(tools.FmtJSONString(flags))

	converter, err := buildConverter(flags.SceneFlags)
	if err != nil {
		glog.Exit(err)
	}

	switch {
	case *flags.Local:
		printAbsolute(converter, geometry.NewLocalPoint(
			float32(*flags.East), float32(*flags.Height), float32(*flags.North)))
	case *flags.Geographic:
		local, err := converter.GeographicToLocal(s2.LatLngFromDegrees(*flags.Lat, *flags.Lon))
		if err != nil {
			glog.Exit(err)
		}
		printLocal(local)
	default:
		local, err := converter.ToLocal(geometry.NewCoordinate(*flags.East, *flags.North, *flags.Height))
		if err != nil {
			glog.Exit(err)
		}
		printLocal(local)
	}
}

func mainCommandBatch(args []string) {
	flags := tools.ParseFlagsForCommandBatch(args)

	if *flags.Help {
		showHelp()
		return
	}
	if *flags.Version {
		printVersion()
		return
	}

	glog.Infoln(tools.FmtJSONString(flags))

	if *flags.Input == "" || *flags.Output == "" {
		glog.Exit("Both the input and output flags are required for the batch command.")
	}

	converter, err := buildConverter(flags.SceneFlags)
	if err != nil {
		glog.Exit(err)
	}

	opts := &batch.Options{
		Input:            *flags.Input,
		Output:           *flags.Output,
		Geographic:       *flags.Geographic,
		FolderProcessing: *flags.FolderProcessing,
		Recursive:        *flags.RecursiveFolderProcessing,
		WorkerCount:      *flags.Workers,
	}

	runner := batch.NewRunner(tools.NewStandardFileFinder(), converter)
	if err := runner.Run(opts); err != nil {
		glog.Exit(err)
	}
}

// buildConverter assembles the scene converter from config file, environment
// and command line overrides, in that order of precedence.
func buildConverter(flags tools.SceneFlags) (*scene.Converter, error) {
	cfg := config.NewAppConfig()

	if *flags.Config != "" {
		if !cfg.Load(*flags.Config) {
			return nil, fmt.Errorf("could not load config file %s", *flags.Config)
		}
	}
	if err := cfg.LoadEnv("GEOSCENE_"); err != nil {
		return nil, err
	}

	applyOverrides(cfg, flags)

	coordConverter, err := utm_coordinate_converter.NewUTMCoordinateConverter(cfg.UTMZone(), cfg.SouthernHemisphere())
	if err != nil {
		return nil, err
	}

	elevation, err := buildElevationSampler(cfg)
	if err != nil {
		return nil, err
	}

	transform := anchor.NewWithMaxOffset(cfg.Anchor(), cfg.MaxOffset())

	return scene.NewConverter(transform, coordConverter, elevation), nil
}

// applyOverrides copies explicitly-set command line flags into the config.
// Checking Changed rather than the values keeps deliberate zeros usable,
// e.g. -anchor-height 0 over a config file that sets one.
func applyOverrides(cfg *config.AppConfig, flags tools.SceneFlags) {
	if flags.Changed("zone") {
		cfg.Set("utm.zone", *flags.Zone)
	}
	if flags.Changed("south") {
		cfg.Set("utm.south", *flags.South)
	}
	if flags.Changed("anchor-east") {
		cfg.Set("anchor.east", *flags.AnchorEast)
	}
	if flags.Changed("anchor-north") {
		cfg.Set("anchor.north", *flags.AnchorNorth)
	}
	if flags.Changed("anchor-height") {
		cfg.Set("anchor.height", *flags.AnchorHeight)
	}
	if flags.Changed("terrain") {
		cfg.Set("elevation.grid", *flags.ElevGrid)
	}
}

func buildElevationSampler(cfg *config.AppConfig) (converters.ElevationSampler, error) {
	if path := cfg.ElevationGrid(); path != "" {
		return grid_elevation_sampler.NewGridElevationSampler(path)
	}

	if cfg.HasElevationOffset() {
		return offset_elevation_sampler.NewOffsetElevationSampler(cfg.ElevationOffset()), nil
	}

	return nil, nil
}

func printLocal(p geometry.LocalPoint) {
	fmt.Printf("local x=%s y=%s z=%s\n",
		sceneio.FormatCoordinate(float64(p.X), 3),
		sceneio.FormatCoordinate(float64(p.Y), 3),
		sceneio.FormatCoordinate(float64(p.Z), 3))
}

func printAbsolute(converter *scene.Converter, p geometry.LocalPoint) {
	abs := converter.ToAbsolute(p)
	fmt.Printf("projected east=%s north=%s height=%s\n",
		sceneio.FormatCoordinate(abs.East, 3),
		sceneio.FormatCoordinate(abs.North, 3),
		sceneio.FormatCoordinate(abs.Height, 3))

	ll, err := converter.LocalToGeographic(p)
	if err != nil {
		glog.Exit(err)
	}
	fmt.Printf("geographic lat=%s lon=%s\n",
		sceneio.FormatCoordinate(ll.Lat.Degrees(), 7),
		sceneio.FormatCoordinate(ll.Lng.Degrees(), 7))
}

func printVersion() {
	fmt.Printf("geoscene v%s\n", VERSION)
}

func showHelp() {
	fmt.Println(banner)
	fmt.Println()
	fmt.Println("usage: geoscene [glog flags] <command> [flags]")
	fmt.Println()
	fmt.Println("commands:")
	fmt.Println("  convert   convert a single point between geographic, projected and scene coordinates")
	fmt.Println("  batch     convert csv files of points to scene coordinates")
	fmt.Println()
	fmt.Println("run 'geoscene <command> -help' for the command's flags")
}
