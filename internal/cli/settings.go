package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cardgraph/pkg/debounce"
	"github.com/matzehuels/cardgraph/pkg/errors"
	"github.com/matzehuels/cardgraph/pkg/storage"
	"github.com/matzehuels/cardgraph/pkg/view"
)

// Settings is the TOML settings file.
//
//	board = "/path/to/board.json"
//
//	[storage]
//	backend = "badger"
//	dir = "/var/lib/cardgraph"
//
//	[session]
//	debounce = "1.2s"
//
//	[render]
//	node_width = 240
type Settings struct {
	Board   string          `toml:"board"`
	Storage StorageSettings `toml:"storage"`
	Session SessionSettings `toml:"session"`
	Render  RenderSettings  `toml:"render"`
}

// StorageSettings selects the key-value backend.
type StorageSettings struct {
	Backend         string `toml:"backend"`
	Dir             string `toml:"dir"`
	InMemory        bool   `toml:"in_memory"`
	Key             string `toml:"key"`
	RedisAddr       string `toml:"redis_addr"`
	RedisPassword   string `toml:"redis_password"`
	RedisDB         int    `toml:"redis_db"`
	RedisPrefix     string `toml:"redis_prefix"`
	MongoURI        string `toml:"mongo_uri"`
	MongoDatabase   string `toml:"mongo_database"`
	MongoCollection string `toml:"mongo_collection"`
}

// SessionSettings tunes session behavior.
type SessionSettings struct {
	// Debounce is the quiet window for color commits and board file events.
	Debounce duration `toml:"debounce"`
}

// RenderSettings sets the node geometry used for height measurement.
type RenderSettings struct {
	NodeWidth  float64 `toml:"node_width"`
	FontSize   float64 `toml:"font_size"`
	LineHeight float64 `toml:"line_height"`
	Padding    float64 `toml:"padding"`
	Detailed   bool    `toml:"detailed"`
}

// duration decodes TOML strings such as "1.2s" or "500ms".
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// defaultSettings returns the settings used when no file exists.
func defaultSettings() Settings {
	return Settings{
		Storage: StorageSettings{
			Backend:     storage.BackendFile,
			Key:         storage.DefaultKey,
			RedisPrefix: appName + ":",
		},
		Session: SessionSettings{Debounce: duration{debounce.DefaultDelay}},
		Render: RenderSettings{
			NodeWidth:  view.DefaultNodeWidth,
			FontSize:   view.DefaultFontSize,
			LineHeight: view.DefaultLineHeight,
			Padding:    view.DefaultPadding,
		},
	}
}

// loadSettings reads path over the defaults. A missing file yields the
// defaults; an explicitly requested file must exist.
func loadSettings(path string, explicit bool) (Settings, error) {
	s := defaultSettings()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return s.withDerived()
	}
	if os.IsNotExist(err) {
		return s, errors.Wrap(errors.ErrCodeFileNotFound, err, "settings file %s", path)
	}
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}
	if _, err := toml.Decode(string(data), &s); err != nil {
		return s, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse settings %s", path)
	}
	return s.withDerived()
}

// withDerived fills values that depend on the environment.
func (s Settings) withDerived() (Settings, error) {
	if s.Storage.Dir == "" && !s.Storage.InMemory {
		dir, err := dataDir()
		if err != nil {
			return s, fmt.Errorf("resolve data dir: %w", err)
		}
		s.Storage.Dir = filepath.Join(dir, s.Storage.backendName())
	}
	if s.Storage.Key == "" {
		s.Storage.Key = storage.DefaultKey
	}
	return s, nil
}

func (s StorageSettings) backendName() string {
	if s.Backend == "" {
		return storage.BackendFile
	}
	return s.Backend
}

// storageConfig converts the settings to a backend configuration.
func (s StorageSettings) storageConfig() storage.Config {
	return storage.Config{
		Backend:         s.backendName(),
		Dir:             s.Dir,
		InMemory:        s.InMemory,
		RedisAddr:       s.RedisAddr,
		RedisPassword:   s.RedisPassword,
		RedisDB:         s.RedisDB,
		RedisPrefix:     s.RedisPrefix,
		MongoURI:        s.MongoURI,
		MongoDatabase:   s.MongoDatabase,
		MongoCollection: s.MongoCollection,
	}
}

// measurer returns the text measurer for the render settings.
func (r RenderSettings) measurer() view.TextMeasurer {
	m := view.DefaultMeasurer()
	if r.NodeWidth > 0 {
		m.NodeWidth = r.NodeWidth
	}
	if r.FontSize > 0 {
		m.FontSize = r.FontSize
	}
	if r.LineHeight > 0 {
		m.LineHeight = r.LineHeight
	}
	if r.Padding > 0 {
		m.Padding = r.Padding
	}
	return m
}

// =============================================================================
// Paths
// =============================================================================

// configDir returns the config directory using XDG standard (~/.config/cardgraph/).
func configDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// dataDir returns the data directory using XDG standard (~/.local/share/cardgraph/).
func dataDir() (string, error) {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", appName), nil
}

// resolveSettingsPath returns the settings file to read and whether the
// user asked for it explicitly.
func (c *CLI) resolveSettingsPath() (string, bool, error) {
	if c.settingsPath != "" {
		return c.settingsPath, true, nil
	}
	dir, err := configDir()
	if err != nil {
		return "", false, fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "settings.toml"), false, nil
}

func (c *CLI) loadSettings() (Settings, error) {
	path, explicit, err := c.resolveSettingsPath()
	if err != nil {
		return Settings{}, err
	}
	s, err := loadSettings(path, explicit)
	if err != nil {
		return Settings{}, err
	}
	c.Logger.Debug("settings", "path", path, "storage", storage.Describe(s.Storage.storageConfig()))
	return s, nil
}

// =============================================================================
// settings command
// =============================================================================

// settingsCommand prints the effective settings as TOML.
func (c *CLI) settingsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "settings",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.loadSettings()
			if err != nil {
				return err
			}
			path, _, _ := c.resolveSettingsPath()

			var buf bytes.Buffer
			if err := toml.NewEncoder(&buf).Encode(s); err != nil {
				return fmt.Errorf("encode settings: %w", err)
			}
			printInfo("Settings file: %s", path)
			fmt.Fprint(cmd.OutOrStdout(), buf.String())
			return nil
		},
	}
}
