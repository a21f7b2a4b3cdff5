// Package config loads client settings from TOML or YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/tinyrange/kvmio/internal/frame"
	"github.com/tinyrange/kvmio/internal/rawinput"
)

var (
	ErrUnknownKey      = errors.New("config: unknown key")
	ErrUnsupportedFile = errors.New("config: unsupported file type")
	errInvalid         = errors.New("config: invalid")
)

// Loop modes.
const (
	LoopBlocking = "blocking"
	LoopUncapped = "uncapped"
	LoopCapped   = "capped"
)

// Combination actions.
const (
	ActionFullScreen = "fullscreen"
	ActionLock       = "lock"
	ActionQuit       = "quit"
	ActionLog        = "log"
)

// Combination binds an ordered key sequence to an action.
type Combination struct {
	Name   string   `toml:"name" yaml:"name"`
	Keys   []string `toml:"keys" yaml:"keys"`
	Action string   `toml:"action" yaml:"action"`
}

// VirtualKeys resolves the combination's key names.
func (c Combination) VirtualKeys() ([]rawinput.VirtualKey, error) {
	keys := make([]rawinput.VirtualKey, 0, len(c.Keys))
	for _, name := range c.Keys {
		vk, err := rawinput.ParseVirtualKey(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %q in combination %q", ErrUnknownKey, name, c.Name)
		}
		keys = append(keys, vk)
	}
	return keys, nil
}

type Config struct {
	Title  string `toml:"title" yaml:"title"`
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`

	// FrameFormat is the layout of produced frames: rgb, nv12 or yuyv.
	FrameFormat string `toml:"frame_format" yaml:"frame_format"`
	// FrameFile is a raw frame in FrameFormat shown on every paint.
	FrameFile string `toml:"frame_file" yaml:"frame_file"`

	Loop      string  `toml:"loop" yaml:"loop"`
	FrameRate float64 `toml:"frame_rate" yaml:"frame_rate"`

	FullScreen bool `toml:"fullscreen" yaml:"fullscreen"`
	LockCursor bool `toml:"lock_cursor" yaml:"lock_cursor"`

	Combinations []Combination `toml:"combinations" yaml:"combinations"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Title:       "kvmio",
		Width:       800,
		Height:      800,
		FrameFormat: frame.NV12.String(),
		Loop:        LoopCapped,
		FrameRate:   60,
		Combinations: []Combination{
			{Name: "full screen", Keys: []string{"CTRL", "ALT", "F"}, Action: ActionFullScreen},
			{Name: "lock cursor", Keys: []string{"CTRL", "ALT", "L"}, Action: ActionLock},
			{Name: "quit", Keys: []string{"CTRL", "ALT", "Q"}, Action: ActionQuit},
		},
	}
}

// Load reads path on top of Default. The file type is chosen by extension.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse decodes data, named name, on top of Default. Combinations listed in
// the file replace the default ones.
func Parse(name string, data []byte) (Config, error) {
	c := Default()
	defaults := c.Combinations
	c.Combinations = nil
	var err error
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		err = toml.Unmarshal(data, &c)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &c)
	default:
		return Config{}, fmt.Errorf("%w: %s", ErrUnsupportedFile, name)
	}
	if err != nil {
		return Config{}, &ParseError{Path: name, Err: err}
	}
	if c.Combinations == nil {
		c.Combinations = defaults
	}
	return c, nil
}

// ParseError is a file that could not be decoded.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Format returns the parsed frame format.
func (c Config) Format() (frame.Format, error) {
	return frame.ParseFormat(c.FrameFormat)
}

func (c Config) checkFrameFile(f frame.Format, size int) error {
	info, err := os.Stat(c.FrameFile)
	if err != nil {
		return fmt.Errorf("frame file: %w", err)
	}
	return c.checkFrameSize(f, size, info.Size())
}

func (c Config) checkFrameSize(f frame.Format, want int, got int64) error {
	if got != int64(want) {
		return fmt.Errorf("%w: %s holds %d bytes, a %dx%d %v frame is %d",
			frame.ErrFrameSize, c.FrameFile, got, c.Width, c.Height, f, want)
	}
	return nil
}

// ReadFrame reads FrameFile, which must hold exactly one frame of the
// configured format and window size.
func (c Config) ReadFrame() ([]byte, error) {
	f, err := c.Format()
	if err != nil {
		return nil, err
	}
	size, err := f.Size(c.Width, c.Height)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(c.FrameFile)
	if err != nil {
		return nil, fmt.Errorf("frame file: %w", err)
	}
	if err := c.checkFrameSize(f, size, int64(len(data))); err != nil {
		return nil, err
	}
	return data, nil
}

// Validate reports every problem with c.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: window size %dx%d", errInvalid, c.Width, c.Height))
	}
	if f, err := c.Format(); err != nil {
		errs = append(errs, err)
	} else if size, err := f.Size(c.Width, c.Height); err != nil {
		errs = append(errs, err)
	} else if c.FrameFile != "" {
		if err := c.checkFrameFile(f, size); err != nil {
			errs = append(errs, err)
		}
	}
	switch c.Loop {
	case LoopBlocking, LoopUncapped, LoopCapped:
	default:
		errs = append(errs, fmt.Errorf("%w: loop %q", errInvalid, c.Loop))
	}
	if c.Loop == LoopCapped && c.FrameRate < 0 {
		errs = append(errs, fmt.Errorf("%w: frame rate %v", errInvalid, c.FrameRate))
	}
	for _, comb := range c.Combinations {
		if len(comb.Keys) == 0 {
			errs = append(errs, fmt.Errorf("%w: combination %q has no keys", errInvalid, comb.Name))
		}
		if _, err := comb.VirtualKeys(); err != nil {
			errs = append(errs, err)
		}
		switch comb.Action {
		case ActionFullScreen, ActionLock, ActionQuit, ActionLog:
		default:
			errs = append(errs, fmt.Errorf("%w: combination %q action %q", errInvalid, comb.Name, comb.Action))
		}
	}
	return errors.Join(errs...)
}
