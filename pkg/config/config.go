// Package config reads the configuration of the map benchmark harness.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/evolib/evo/pkg/convert"
	"github.com/evolib/evo/pkg/enum"
	"github.com/evolib/evo/pkg/pair"
	"github.com/phuslu/log"
	"golang.org/x/exp/constraints"
	yaml "gopkg.in/yaml.v3"
)

const ConfigFile1 = "config.yaml"
const ConfigFile2 = "config.yml"

const (
	DefaultKeyLength = 16
	DefaultRounds    = 1000
	DefaultTimeout   = 10 * time.Second
	DefaultSeed      = 1
	MaxKeyLength     = 1024
)

// Implementation identifies a benchmarked map implementation.
type Implementation uint8

const (
	ImplMapList Implementation = iota
	ImplHamap
	ImplGoMap
)

// Implementations maps implementation names to values.
var Implementations = enum.New[Implementation]("maplist", "hamap", "gomap")

func (i Implementation) String() string { return Implementations.String(i) }

// LogLevels maps log level names to values.
var LogLevels = mustEnum(enum.Of(
	pair.New("trace", log.TraceLevel),
	pair.New("debug", log.DebugLevel),
	pair.New("info", log.InfoLevel),
	pair.New("warn", log.WarnLevel),
	pair.New("error", log.ErrorLevel),
))

func DefaultSizes() []int { return []int{8, 64, 512} }

type Config struct {
	Sizes           []int
	KeyLength       int
	Rounds          int
	Timeout         time.Duration
	Implementations []Implementation
	Seed            int64
	LogLevel        log.Level
}

// Default returns the configuration used when no file is provided.
func Default() *Config {
	return &Config{
		Sizes:           DefaultSizes(),
		KeyLength:       DefaultKeyLength,
		Rounds:          DefaultRounds,
		Timeout:         DefaultTimeout,
		Implementations: Implementations.Values(),
		Seed:            DefaultSeed,
		LogLevel:        log.InfoLevel,
	}
}

type fileConfig struct {
	Sizes           []int    `yaml:"sizes"`
	KeyLength       *int     `yaml:"key-length"`
	Rounds          *int     `yaml:"rounds"`
	Timeout         string   `yaml:"timeout"`
	Implementations []string `yaml:"implementations"`
	Seed            *int64   `yaml:"seed"`
	LogLevel        string   `yaml:"log-level"`
}

// Read reads the configuration file from dirPath.
// Fields absent in the file are set to their defaults.
func Read(filesystem fs.FS, dirPath string) (*Config, error) {
	d, err := fs.ReadDir(filesystem, dirPath)
	if err != nil {
		return nil, fmt.Errorf("reading config directory: %w", err)
	}

	var fileName string
	for _, o := range d {
		if o.IsDir() {
			continue
		}
		if n := o.Name(); n == ConfigFile1 || n == ConfigFile2 {
			if fileName != "" {
				return nil, &ErrorConflict{Items: []string{
					ConfigFile1,
					ConfigFile2,
				}}
			}
			fileName = n
		}
	}
	if fileName == "" {
		return nil, &ErrorMissing{
			FilePath: filepath.Join(dirPath, ConfigFile1),
		}
	}
	return ReadFile(filesystem, filepath.Join(dirPath, fileName))
}

// ReadFile reads the configuration file at path.
func ReadFile(filesystem fs.FS, path string) (*Config, error) {
	f, err := filesystem.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	var c fileConfig
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, &ErrorIllegal{
			FilePath: path,
			Message:  err.Error(),
		}
	}
	return c.resolve(path)
}

func (c *fileConfig) resolve(path string) (*Config, error) {
	conf := Default()
	illegal := func(feature, msg string) error {
		return &ErrorIllegal{FilePath: path, Feature: feature, Message: msg}
	}

	if c.Sizes != nil {
		if len(c.Sizes) < 1 {
			return nil, &ErrorMissing{FilePath: path, Feature: "sizes"}
		}
		for i, s := range c.Sizes {
			if s < 1 {
				return nil, illegal("sizes", "non-positive size at index "+
					strconv.Itoa(i))
			}
		}
		conf.Sizes = c.Sizes
	}

	if c.KeyLength != nil {
		if *c.KeyLength < 1 || *c.KeyLength > MaxKeyLength {
			return nil, illegal("key-length", fmt.Sprintf(
				"must be within [1, %d]", MaxKeyLength,
			))
		}
		conf.KeyLength = *c.KeyLength
	}

	if c.Rounds != nil {
		if *c.Rounds < 1 {
			return nil, illegal("rounds", "must be positive")
		}
		conf.Rounds = *c.Rounds
	}

	if c.Timeout != "" {
		t, err := convert.String[time.Duration](c.Timeout)
		if err != nil {
			return nil, illegal("timeout", err.Error())
		}
		if t <= 0 {
			return nil, illegal("timeout", "must be positive")
		}
		conf.Timeout = t
	}

	if c.Implementations != nil {
		conf.Implementations = make([]Implementation, len(c.Implementations))
		for i, n := range c.Implementations {
			v, err := Implementations.ParseValue(n)
			if err != nil {
				return nil, illegal("implementations", err.Error())
			}
			conf.Implementations[i] = v
		}
		if d := duplicate(conf.Implementations); d != "" {
			return nil, &ErrorConflict{Items: []string{
				"implementations." + d,
				"implementations." + d,
			}}
		}
	}

	if c.Seed != nil {
		conf.Seed = *c.Seed
	}

	if c.LogLevel != "" {
		l, err := LogLevels.ParseValue(c.LogLevel)
		if err != nil {
			return nil, illegal("log-level", err.Error())
		}
		conf.LogLevel = l
	}

	return conf, nil
}

func duplicate(impl []Implementation) string {
	for i := range impl {
		for j := i + 1; j < len(impl); j++ {
			if impl[i] == impl[j] {
				return impl[i].String()
			}
		}
	}
	return ""
}

func mustEnum[T constraints.Integer](e *enum.Enum[T], err error) *enum.Enum[T] {
	if err != nil {
		panic(err)
	}
	return e
}

type ErrorConflict struct {
	Items []string
}

func (e ErrorConflict) Error() string {
	var b strings.Builder
	b.WriteString("conflict between: ")
	for i := range e.Items {
		b.WriteString(e.Items[i])
		if i+1 < len(e.Items) {
			b.WriteString(", ")
		}
	}
	return b.String()
}

type ErrorMissing struct {
	FilePath string
	Feature  string
}

func (e ErrorMissing) Error() string {
	var b strings.Builder
	b.WriteString("missing ")
	if e.Feature != "" {
		b.WriteString(e.Feature)
		b.WriteString(" in ")
	}
	b.WriteString(e.FilePath)
	return b.String()
}

type ErrorIllegal struct {
	FilePath string
	Feature  string
	Message  string
}

func (e ErrorIllegal) Error() string {
	var b strings.Builder
	b.WriteString("illegal ")
	if e.Feature != "" {
		b.WriteString(e.Feature)
		b.WriteString(" in ")
	}
	b.WriteString(e.FilePath)
	b.WriteString(": ")
	b.WriteString(e.Message)
	return b.String()
}
