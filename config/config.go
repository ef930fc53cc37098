package config

import (
	"os"

	"github.com/jsphweid/engrave/model"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Prefix starts the ids of stem and beam elements.
	Prefix      string `yaml:"prefix"`
	Clef        string `yaml:"clef"`
	OctaveShift string `yaml:"octave_shift"`
	Addr        string `yaml:"addr"`
}

func Default() Config {
	return Config{
		Prefix:      "vf",
		Clef:        "treble",
		OctaveShift: "none",
		Addr:        ":8080",
	}
}

func GetConfigPath() string {
	return os.Getenv("ENGRAVE_CONFIG")
}

// Load reads the defaults, then the YAML file at ENGRAVE_CONFIG if set,
// then the ENGRAVE_PREFIX and ENGRAVE_ADDR overrides.
func Load() (Config, error) {
	c := Default()
	if path := GetConfigPath(); path != "" {
		dat, err := os.ReadFile(path)
		if err != nil {
			return c, errors.Wrap(err, "reading config")
		}
		if err := yaml.Unmarshal(dat, &c); err != nil {
			return c, errors.Wrapf(err, "parsing config %s", path)
		}
	}
	if prefix := os.Getenv("ENGRAVE_PREFIX"); prefix != "" {
		c.Prefix = prefix
	}
	if addr := os.Getenv("ENGRAVE_ADDR"); addr != "" {
		c.Addr = addr
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	if c.Prefix == "" {
		return errors.New("empty element id prefix")
	}
	if _, err := model.ParseClef(c.Clef); err != nil {
		return err
	}
	_, err := model.ParseOctaveShift(c.OctaveShift)
	return err
}

func (c Config) ActiveClef() model.Clef {
	clef, err := model.ParseClef(c.Clef)
	if err != nil {
		panic("Could not parse clef: " + err.Error())
	}
	return clef
}

func (c Config) ActiveOctaveShift() model.OctaveShift {
	shift, err := model.ParseOctaveShift(c.OctaveShift)
	if err != nil {
		panic("Could not parse octave shift: " + err.Error())
	}
	return shift
}
