package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/wildstyl3r/seaecho/internal/acoustic"
	"github.com/wildstyl3r/seaecho/internal/utils"
)

var ErrConfig = errors.New("invalid configuration")

// Config is the decoded sweep file. The embedded SweepParameters are the global
// values every sweep falls back to.
type Config struct {
	OutputDir string
	Sweeps    map[string]SweepParameters
	SweepParameters
	Profile      string // depth-temperature file, one sweep per line
	isDefinedMap map[string]struct{}

	InputUnits  []string
	OutputUnits []string
}

func (c *Config) isDefined(path []string, meta *toml.MetaData) bool {
	if _, sureDefined := c.isDefinedMap[strings.Join(path, "#")]; sureDefined {
		return true
	}
	return meta.IsDefined(path...)
}

func (c *Config) markDefined(path ...string) {
	c.isDefinedMap[strings.Join(path, "#")] = struct{}{}
}

func LoadConfig(configFileName string) (Config, toml.MetaData, error) {
	var config Config
	if !strings.HasSuffix(configFileName, ".toml") {
		configFileName += ".toml"
	}
	meta, err := toml.DecodeFile(configFileName, &config)
	if err != nil {
		return config, meta, err
	}
	return config, meta, config.prepare(&meta)
}

// DecodeConfig is LoadConfig for an in-memory document.
func DecodeConfig(data string) (Config, toml.MetaData, error) {
	var config Config
	meta, err := toml.Decode(data, &config)
	if err != nil {
		return config, meta, err
	}
	return config, meta, config.prepare(&meta)
}

func (config *Config) prepare(meta *toml.MetaData) error {
	config.isDefinedMap = map[string]struct{}{}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: unknown keys %v", ErrConfig, undecoded)
	}

	var unitsConflict []string
	config.InputUnits, unitsConflict = checkUnits(config.InputUnits)
	if len(unitsConflict) > 0 {
		return fmt.Errorf("%w: found input unit conflict: %v", ErrConfig, unitsConflict)
	}
	if len(config.OutputUnits) == 0 {
		config.OutputUnits = config.InputUnits
	}
	config.OutputUnits, unitsConflict = checkUnits(config.OutputUnits)
	if len(unitsConflict) > 0 {
		return fmt.Errorf("%w: found output unit conflict: %v", ErrConfig, unitsConflict)
	}

	if len(config.Profile) > 0 {
		if len(config.Sweeps) > 0 {
			return fmt.Errorf("%w: simultaneous profile file and direct sweep definitions not supported", ErrConfig)
		}
		profile, err := utils.ReadFloatPairs(config.Profile)
		if err != nil {
			return fmt.Errorf("%w: profile file reading error: %w", ErrConfig, err)
		}
		filename := utils.GetFilename(config.Profile)
		config.Sweeps = make(map[string]SweepParameters, len(profile))
		for line := range profile {
			sweepName := fmt.Sprintf("%s_l%d", filename, line+1)
			config.Sweeps[sweepName] = SweepParameters{
				Depth:       profile[line][0],
				Temperature: profile[line][1],
			}
			config.markDefined("Sweeps", sweepName, "Depth")
			config.markDefined("Sweeps", sweepName, "Temperature")
		}
	} else if len(config.Sweeps) == 0 {
		return fmt.Errorf("%w: no sweeps provided", ErrConfig)
	}
	return nil
}

// SweepParameters describe one sweep: water, scatterer, grid and numerics.
// Dimensional values are in InputUnits until CheckAndUnify converts them to SI.
type SweepParameters struct {
	Kind  string // bubble | sphere
	Sweep string // frequency | size

	Temperature       float64 // [°C]
	Salinity          float64 // [ppt]
	Depth             float64 // [m]
	Pressure          float64 // [Pa] hydrostatic
	PH                float64
	SoundSpeedFormula string

	Gas      string
	Models   []string
	Diameter float64 // [m]
	Radius   float64 // [m]

	Material          string
	Density           float64 // [kg/m^3] custom sphere material
	LongitudinalSpeed float64 // [m/s]
	ShearSpeed        float64 // [m/s]

	Frequency     float64 // [Hz] fixed frequency of a size sweep
	FrequencyMin  float64 // [Hz]
	FrequencyMax  float64 // [Hz]
	FrequencyStep float64 // [Hz]
	SizeMin       float64 // [m] radius
	SizeMax       float64 // [m]
	SizeStep      float64 // [m]
	Points        int
	Spacing       string // linear | log

	Precision acoustic.Precision
	Retries   int

	MakeDir  bool
	FindPeak bool

	_outputUnits []string
	_verbose     bool
	_threads     int
}

func (p *SweepParameters) OutputUnits() []string {
	return p._outputUnits
}

func (p *SweepParameters) SetOutputUnits(u []string) {
	p._outputUnits = u
}

func (p *SweepParameters) Verbose() bool {
	return p._verbose
}

func (p *SweepParameters) SetVerbosity(verbose bool) {
	p._verbose = verbose
}

func (p *SweepParameters) Threads() int {
	return p._threads
}

func (p *SweepParameters) SetThreads(threads int) {
	p._threads = threads
}

var defaultValues = map[string]any{ // in SI
	"Kind":              "bubble",
	"Sweep":             "frequency",
	"Temperature":       10.,
	"Salinity":          35.,
	"Depth":             0., //[m]
	"PH":                8.,
	"SoundSpeedFormula": "coppens",
	"Gas":               "air",
	"Models":            []string{"Medwin_Clay"},
	"Material":          "tungsten_carbide",
	"Spacing":           "linear",
	"Retries":           2,
	"MakeDir":           false,
	"FindPeak":          false,
}

var defaultUnits = []string{"m", "Pa", "Hz"}

var fieldsXor = map[string][]string{
	"Depth":         {"Pressure"},
	"Pressure":      {"Depth"},
	"Diameter":      {"Radius"},
	"Radius":        {"Diameter"},
	"Material":      {"Density"},
	"Density":       {"Material"},
	"FrequencyStep": {"Points"},
	"SizeStep":      {"Points"},
	"Points":        {"FrequencyStep", "SizeStep"},
}

var fieldsAnd = map[string][]string{
	"FrequencyMin":  {"FrequencyMax"},
	"FrequencyMax":  {"FrequencyMin"},
	"FrequencyStep": {"FrequencyMin"},
	"SizeMin":       {"SizeMax"},
	"SizeMax":       {"SizeMin"},
	"SizeStep":      {"SizeMin"},
	"Density":       {"LongitudinalSpeed", "ShearSpeed"},
}

var fieldsDerivable = map[string][]string{
	"Diameter": {"Radius"},
}

// depth is always given in metres
var valueUnits = map[string][]UnitElement{
	"Pressure":      {{Class: Pressure, Power: 1}},
	"Diameter":      {{Class: Length, Power: 1}},
	"Radius":        {{Class: Length, Power: 1}},
	"SizeMin":       {{Class: Length, Power: 1}},
	"SizeMax":       {{Class: Length, Power: 1}},
	"SizeStep":      {{Class: Length, Power: 1}},
	"Frequency":     {{Class: Frequency, Power: 1}},
	"FrequencyMin":  {{Class: Frequency, Power: 1}},
	"FrequencyMax":  {{Class: Frequency, Power: 1}},
	"FrequencyStep": {{Class: Frequency, Power: 1}},
}

var calculableFields = map[string]func(*SweepParameters, []string) []string{
	"Diameter": func(sp *SweepParameters, definedFields []string) []string {
		sp.Radius = sp.Diameter / 2.
		return []string{"Radius"}
	},
}
