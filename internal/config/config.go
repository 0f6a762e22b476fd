package config

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/vango-go/overridable/internal/errors"
	"github.com/vango-go/overridable/pkg/overridable"
	"github.com/vango-go/overridable/pkg/vdom"
)

const (
	// TOMLFileName is the preferred configuration file name.
	TOMLFileName = "overridable.toml"

	// JSONFileName is the JSON configuration file name.
	JSONFileName = "overridable.json"

	// DefaultAddr is the default preview server address.
	DefaultAddr = "localhost:3100"

	// DefaultTitle is the default preview page title.
	DefaultTitle = "Overridable preview"

	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "info"
)

// Override modes.
const (
	// ModeAdd sets the single replacement for an identifier.
	ModeAdd = "add"

	// ModeAppend adds a replacement to the identifier's expand list.
	ModeAppend = "append"
)

// ErrUnknownPreset is returned by a PresetResolver for a preset name it does
// not know.
var ErrUnknownPreset = stderrors.New("config: unknown preset")

// Config represents the overridable.toml (or overridable.json) configuration.
type Config struct {
	// Addr is the preview server listen address.
	Addr string `json:"addr,omitempty" toml:"addr,omitempty"`

	// Title is the preview page title.
	Title string `json:"title,omitempty" toml:"title,omitempty"`

	// DevMode activates the dev-mode overlay at startup.
	DevMode bool `json:"devMode,omitempty" toml:"dev_mode,omitempty"`

	// Pretty enables indented HTML output.
	Pretty bool `json:"pretty,omitempty" toml:"pretty,omitempty"`

	// Metrics exposes Prometheus metrics on /metrics.
	Metrics bool `json:"metrics,omitempty" toml:"metrics,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"logLevel,omitempty" toml:"log_level,omitempty"`

	// Overrides is the override manifest applied to the store at startup.
	Overrides []OverrideSpec `json:"overrides,omitempty" toml:"overrides,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// OverrideSpec is one manifest entry.
type OverrideSpec struct {
	// ID is the region or component identifier to override.
	ID string `json:"id" toml:"id"`

	// Preset names the replacement in the preset catalog.
	Preset string `json:"preset" toml:"preset"`

	// Mode is ModeAdd (default) or ModeAppend.
	Mode string `json:"mode,omitempty" toml:"mode,omitempty"`

	// Params configure the preset.
	Params map[string]any `json:"params,omitempty" toml:"params,omitempty"`
}

// exampleOverride is shown with manifest errors.
const exampleOverride = `[[overrides]]
id = "Card.header"
preset = "text"
params = { text = "Sale!" }`

// PresetResolver builds the replacement a manifest entry names.
type PresetResolver interface {
	Resolve(preset string, params map[string]any) (vdom.Component, error)
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Addr:     DefaultAddr,
		Title:    DefaultTitle,
		LogLevel: DefaultLogLevel,
	}
}

// Load reads configuration from dir. It looks for overridable.toml first,
// then overridable.json.
func Load(dir string) (*Config, error) {
	for _, name := range []string{TOMLFileName, JSONFileName} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return nil, errors.New(errors.CodeConfigNotFound).
		WithDetail("No " + TOMLFileName + " or " + JSONFileName + " found in " + dir)
}

// LoadFile reads configuration from the specified file path. The format is
// chosen by extension.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.CodeConfigNotFound).
				WithDetail("No configuration file at " + path).
				Wrap(err)
		}
		return nil, errors.New(errors.CodeConfigParse).Wrap(err)
	}

	cfg := New()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		meta, err := toml.Decode(string(data), cfg)
		if err != nil {
			oe := errors.New(errors.CodeConfigParse).
				WithDetail("Failed to parse " + filepath.Base(path) + ".").
				Wrap(err)
			var pe toml.ParseError
			if stderrors.As(err, &pe) {
				oe.WithLocation(path, pe.Position.Line, 0)
			}
			return nil, oe
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, errors.New(errors.CodeConfigParse).
				WithDetail("Unknown keys: " + strings.Join(keys, ", ")).
				WithSuggestion("Remove the keys or check their spelling")
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return nil, errors.New(errors.CodeConfigParse).
				WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
				WithSuggestion("Check that " + filepath.Base(path) + " is valid JSON")
		}
	default:
		return nil, errors.New(errors.CodeConfigFormat).
			WithDetail("Cannot load " + path + ": configuration files must end in .json or .toml.")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path in the format given
// by its extension.
func (c *Config) SaveTo(path string) error {
	var buf bytes.Buffer
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return errors.New(errors.CodeConfigParse).Wrap(err)
		}
	case ".json":
		data, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return errors.New(errors.CodeConfigParse).Wrap(err)
		}
		buf.Write(data)
		buf.WriteByte('\n')
	default:
		return errors.New(errors.CodeConfigFormat).WithDetail("Cannot save to " + path)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.New(errors.CodeConfigWrite).Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	for i := range c.Overrides {
		if c.Overrides[i].Mode == "" {
			c.Overrides[i].Mode = ModeAdd
		}
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, port, err := net.SplitHostPort(c.Addr); err != nil || port == "" {
		return errors.New(errors.CodeConfigAddr).
			WithDetail(fmt.Sprintf("addr %q is not a host:port pair", c.Addr))
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return errors.Newf(errors.CategoryConfig, "invalid log level %q", c.LogLevel).
			WithSuggestion("Use debug, info, warn or error")
	}
	for i, o := range c.Overrides {
		if strings.TrimSpace(o.ID) == "" {
			return errors.New(errors.CodeManifestID).
				WithDetail(fmt.Sprintf("overrides[%d] has no id", i)).
				WithExample(exampleOverride)
		}
		switch o.Mode {
		case "", ModeAdd, ModeAppend:
		default:
			return errors.New(errors.CodeManifestMode).
				WithDetail(fmt.Sprintf("overrides[%d] (%s) has mode %q", i, o.ID, o.Mode)).
				WithExample(fmt.Sprintf("[[overrides]]\nid = %q\npreset = %q\nmode = \"append\"", o.ID, o.Preset))
		}
	}
	return nil
}

// Level returns the configured log level, or info if it does not parse.
func (c *Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Apply resolves every manifest entry through presets and records it in
// store, in manifest order. Add entries replace; append entries expand.
// Later entries for the same identifier win, as with direct store calls.
func (c *Config) Apply(store *overridable.Store, presets PresetResolver) error {
	for i, o := range c.Overrides {
		rep, err := presets.Resolve(o.Preset, o.Params)
		if err != nil {
			code := errors.CodeManifestParams
			if stderrors.Is(err, ErrUnknownPreset) {
				code = errors.CodeManifestPreset
			}
			return errors.New(code).
				WithDetail(fmt.Sprintf("overrides[%d] (%s): preset %q", i, o.ID, o.Preset)).
				WithExample(exampleOverride).
				Wrap(err)
		}
		if o.Mode == ModeAppend {
			store.Append(o.ID, rep)
		} else {
			store.Add(o.ID, rep)
		}
	}
	return nil
}
