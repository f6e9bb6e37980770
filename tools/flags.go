package tools

import (
	"flag"
)

const (
	CommandConvert = "convert"
	CommandBatch   = "batch"
)

// SceneFlags are the flags shared by every command: they override the
// config file's anchor and projection settings.
type SceneFlags struct {
	Config       *string
	AnchorEast   *float64
	AnchorNorth  *float64
	AnchorHeight *float64
	Zone         *int
	South        *bool
	ElevGrid     *string

	changed map[string]bool
}

// Changed reports whether the named flag was explicitly set on the command
// line, so callers can tell a deliberate zero from an untouched default.
// Shorthand flags count as their full name.
func (f *SceneFlags) Changed(name string) bool {
	return f.changed[name]
}

// shorthand aliases registered by the flag definition helpers below
var flagAliases = map[string]string{
	"c": "config",
	"z": "zone",
	"e": "east",
	"n": "north",
	"g": "geographic",
	"l": "local",
	"i": "input",
	"o": "output",
	"f": "folder",
	"r": "recursive",
	"w": "workers",
	"h": "help",
	"v": "version",
}

func collectChanged(flagCommand *flag.FlagSet) map[string]bool {
	changed := make(map[string]bool)
	flagCommand.Visit(func(f *flag.Flag) {
		name := f.Name
		if full, ok := flagAliases[name]; ok {
			name = full
		}
		changed[name] = true
	})

	return changed
}

type FlagsForCommandConvert struct {
	SceneFlags
	East       *float64
	North      *float64
	Height     *float64
	Lon        *float64
	Lat        *float64
	Geographic *bool
	Local      *bool
	Help       *bool
	Version    *bool
}

type FlagsForCommandBatch struct {
	SceneFlags
	Input                     *string
	Output                    *string
	Geographic                *bool
	FolderProcessing          *bool
	RecursiveFolderProcessing *bool
	Workers                   *int
	Help                      *bool
	Version                   *bool
}

func defineSceneFlags(flagCommand *flag.FlagSet) SceneFlags {
	config := defineStringFlagCommand(flagCommand, "config", "c", "", "Path of the YAML config file.")
	anchorEast := defineFloat64FlagCommand(flagCommand, "anchor-east", "", 0, "Anchor easting in meters, overrides the config file.")
	anchorNorth := defineFloat64FlagCommand(flagCommand, "anchor-north", "", 0, "Anchor northing in meters, overrides the config file.")
	anchorHeight := defineFloat64FlagCommand(flagCommand, "anchor-height", "", 0, "Anchor height in meters, overrides the config file.")
	zone := defineIntFlagCommand(flagCommand, "zone", "z", 0, "UTM zone of the projected system, overrides the config file.")
	south := defineBoolFlagCommand(flagCommand, "south", "", false, "Use the southern hemisphere false northing.")
	elevGrid := defineStringFlagCommand(flagCommand, "terrain", "", "", "Path of an ESRI ASCII terrain grid used for heights.")

	return SceneFlags{
		Config:       config,
		AnchorEast:   anchorEast,
		AnchorNorth:  anchorNorth,
		AnchorHeight: anchorHeight,
		Zone:         zone,
		South:        south,
		ElevGrid:     elevGrid,
	}
}

func ParseFlagsForCommandConvert(args []string) FlagsForCommandConvert {
	flagCommand := flag.NewFlagSet("command-convert", flag.ExitOnError)

	sceneFlags := defineSceneFlags(flagCommand)
	east := defineFloat64FlagCommand(flagCommand, "east", "e", 0, "Easting of the point to convert, in meters.")
	north := defineFloat64FlagCommand(flagCommand, "north", "n", 0, "Northing of the point to convert, in meters.")
	height := defineFloat64FlagCommand(flagCommand, "height", "", 0, "Height of the point to convert, in meters.")
	lon := defineFloat64FlagCommand(flagCommand, "lon", "", 0, "Longitude of the point to convert, in degrees.")
	lat := defineFloat64FlagCommand(flagCommand, "lat", "", 0, "Latitude of the point to convert, in degrees.")
	geographic := defineBoolFlagCommand(flagCommand, "geographic", "g", false, "Convert the lon/lat flags instead of east/north.")
	local := defineBoolFlagCommand(flagCommand, "local", "l", false, "Treat east/north/height as local scene coordinates and convert back.")
	help := defineBoolFlagCommand(flagCommand, "help", "h", false, "Displays this help.")
	version := defineBoolFlagCommand(flagCommand, "version", "v", false, "Displays the version of geoscene.")

	flagCommand.Parse(args)
	sceneFlags.changed = collectChanged(flagCommand)

	return FlagsForCommandConvert{
		SceneFlags: sceneFlags,
		East:       east,
		North:      north,
		Height:     height,
		Lon:        lon,
		Lat:        lat,
		Geographic: geographic,
		Local:      local,
		Help:       help,
		Version:    version,
	}
}

func ParseFlagsForCommandBatch(args []string) FlagsForCommandBatch {
	flagCommand := flag.NewFlagSet("command-batch", flag.ExitOnError)

	sceneFlags := defineSceneFlags(flagCommand)
	input := defineStringFlagCommand(flagCommand, "input", "i", "", "Specifies the input csv file/folder.")
	output := defineStringFlagCommand(flagCommand, "output", "o", "", "Specifies the output folder where to write the converted data.")
	geographic := defineBoolFlagCommand(flagCommand, "geographic", "g", false, "Interpret input columns as lon,lat[,height] instead of east,north[,height].")
	folderProcessing := defineBoolFlagCommand(flagCommand, "folder", "f", false, "Enables processing of all csv files from input folder. Input must be a folder if specified")
	recursiveFolderProcessing := defineBoolFlagCommand(flagCommand, "recursive", "r", false, "Enables recursive lookup for all .csv files inside the subfolders")
	workers := defineIntFlagCommand(flagCommand, "workers", "w", 0, "Number of conversion workers. Defaults to the number of CPUs.")
	help := defineBoolFlagCommand(flagCommand, "help", "h", false, "Displays this help.")
	version := defineBoolFlagCommand(flagCommand, "version", "v", false, "Displays the version of geoscene.")

	flagCommand.Parse(args)
	sceneFlags.changed = collectChanged(flagCommand)

	return FlagsForCommandBatch{
		SceneFlags:                sceneFlags,
		Input:                     input,
		Output:                    output,
		Geographic:                geographic,
		FolderProcessing:          folderProcessing,
		RecursiveFolderProcessing: recursiveFolderProcessing,
		Workers:                   workers,
		Help:                      help,
		Version:                   version,
	}
}

func defineStringFlagCommand(flagCommand *flag.FlagSet, name string, shortHand string, defaultValue string, usage string) *string {
	var output string
	flagCommand.StringVar(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		flagCommand.StringVar(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}

	return &output
}

func defineIntFlagCommand(flagCommand *flag.FlagSet, name string, shortHand string, defaultValue int, usage string) *int {
	var output int
	flagCommand.IntVar(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		flagCommand.IntVar(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}

	return &output
}

func defineFloat64FlagCommand(flagCommand *flag.FlagSet, name string, shortHand string, defaultValue float64, usage string) *float64 {
	var output float64
	flagCommand.Float64Var(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		flagCommand.Float64Var(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}
	return &output
}

func defineBoolFlagCommand(flagCommand *flag.FlagSet, name string, shortHand string, defaultValue bool, usage string) *bool {
	var output bool
	flagCommand.BoolVar(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		flagCommand.BoolVar(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}
	return &output
}
