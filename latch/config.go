package latch

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.viam.com/utils"
)

const (
	// DefaultPatchRadius is the half width of the compared patches (7x7 windows).
	DefaultPatchRadius = 3
	// DefaultWindowRadius is the half width of the area the triplets are sampled from.
	DefaultWindowRadius = 24
)

// Config stores the parameters of the descriptor builder.
type Config struct {
	PatchRadius  int  `json:"patch_radius"`
	WindowRadius int  `json:"window_radius"`
	Parallel     bool `json:"parallel"`
}

// DefaultConfig returns the configuration the sampling triplets were designed for.
func DefaultConfig() *Config {
	return &Config{
		PatchRadius:  DefaultPatchRadius,
		WindowRadius: DefaultWindowRadius,
	}
}

// LoadConfig loads a Config from a json file. Fields missing from the file keep their
// default values.
func LoadConfig(file string) (*Config, error) {
	config := DefaultConfig()
	filePath := filepath.Clean(file)
	configFile, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer utils.UncheckedErrorFunc(configFile.Close)
	jsonParser := json.NewDecoder(configFile)
	err = jsonParser.Decode(config)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse latch config %q", file)
	}
	err = config.Validate(file)
	if err != nil {
		return nil, err
	}
	return config, nil
}

// Validate ensures all parts of the Config are valid.
func (config *Config) Validate(path string) error {
	if config.PatchRadius < 1 {
		return utils.NewConfigValidationError(path, errors.New("patch_radius should be >= 1"))
	}
	if maxOffset := MaxTripletOffset(); config.WindowRadius < maxOffset {
		return utils.NewConfigValidationError(path,
			errors.Errorf("window_radius should be >= %d to cover the sampling triplets", maxOffset))
	}
	return nil
}
