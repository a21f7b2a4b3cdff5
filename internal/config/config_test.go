package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tinyrange/kvmio/internal/frame"
	"github.com/tinyrange/kvmio/internal/rawinput"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	f, err := Default().Format()
	if err != nil || f != frame.NV12 {
		t.Errorf("Default().Format() = %v, %v, want nv12", f, err)
	}
}

const tomlConfig = `
title = "desk"
width = 1280
height = 720
frame_format = "yuyv"
loop = "blocking"
lock_cursor = true

[[combinations]]
name = "grab"
keys = ["ctrl", "shift", "g"]
action = "lock"
`

const yamlConfig = `
title: desk
width: 1280
height: 720
frame_format: yuyv
loop: blocking
lock_cursor: true
combinations:
  - name: grab
    keys: [ctrl, shift, g]
    action: lock
`

func TestParse(t *testing.T) {
	want := Default()
	want.Title = "desk"
	want.Width, want.Height = 1280, 720
	want.FrameFormat = "yuyv"
	want.Loop = LoopBlocking
	want.LockCursor = true
	want.Combinations = []Combination{{Name: "grab", Keys: []string{"ctrl", "shift", "g"}, Action: ActionLock}}

	for name, data := range map[string]string{
		"client.toml": tomlConfig,
		"client.yaml": yamlConfig,
		"client.YML":  yamlConfig,
	} {
		t.Run(name, func(t *testing.T) {
			got, err := Parse(name, []byte(data))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Parse mismatch (-want +got):\n%s", diff)
			}
			if err := got.Validate(); err != nil {
				t.Errorf("Validate() = %v", err)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse("client.json", []byte("{}")); !errors.Is(err, ErrUnsupportedFile) {
		t.Errorf("json error = %v, want ErrUnsupportedFile", err)
	}
	_, err := Parse("client.toml", []byte("width = ["))
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Path != "client.toml" {
		t.Errorf("bad toml error = %v, want *ParseError for client.toml", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.toml")
	if err := os.WriteFile(path, []byte("fullscreen = true\nframe_rate = 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !c.FullScreen || c.FrameRate != 30 || c.Width != 800 {
		t.Errorf("Load() = %+v, want defaults with fullscreen at 30fps", c)
	}
	if diff := cmp.Diff(Default().Combinations, c.Combinations); diff != "" {
		t.Errorf("file without combinations lost the defaults (-want +got):\n%s", diff)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want os.ErrNotExist", err)
	}
}

func TestValidateJoinsProblems(t *testing.T) {
	c := Default()
	c.Width = 0
	c.Loop = "sometimes"
	c.Combinations = []Combination{{Name: "bad", Keys: []string{"CTRL", "HYPER"}, Action: "dance"}}

	err := c.Validate()
	if err == nil {
		t.Fatal("Validate() = nil")
	}
	if !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Validate() = %v, want ErrUnknownKey among the problems", err)
	}
	if n := len(err.(interface{ Unwrap() []error }).Unwrap()); n != 4 {
		t.Errorf("Validate() joined %d problems, want 4: %v", n, err)
	}
}

func TestValidateFrameSize(t *testing.T) {
	c := Default()
	c.Width = 801
	if err := c.Validate(); !errors.Is(err, frame.ErrFrameSize) {
		t.Errorf("odd nv12 width error = %v, want ErrFrameSize", err)
	}
}

func TestValidateFrameFile(t *testing.T) {
	dir := t.TempDir()
	c := Default()
	c.Width, c.Height = 4, 4

	c.FrameFile = filepath.Join(dir, "short.nv12")
	if err := os.WriteFile(c.FrameFile, make([]byte, 10), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := c.Validate(); !errors.Is(err, frame.ErrFrameSize) {
		t.Errorf("short frame file error = %v, want ErrFrameSize", err)
	}
	if _, err := c.ReadFrame(); !errors.Is(err, frame.ErrFrameSize) {
		t.Errorf("ReadFrame() of a short file = %v, want ErrFrameSize", err)
	}

	c.FrameFile = filepath.Join(dir, "missing.nv12")
	if err := c.Validate(); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing frame file error = %v, want os.ErrNotExist", err)
	}

	c.FrameFile = filepath.Join(dir, "frame.nv12")
	want := make([]byte, 24)
	want[0] = 0x80
	if err := os.WriteFile(c.FrameFile, want, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
	got, err := c.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame() = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("frame mismatch (-want +got):\n%s", diff)
	}

	c.FrameFormat = "rgb"
	if _, err := c.ReadFrame(); !errors.Is(err, frame.ErrFrameSize) {
		t.Errorf("ReadFrame() of an nv12 file as rgb = %v, want ErrFrameSize", err)
	}
}

func TestVirtualKeys(t *testing.T) {
	c := Combination{Name: "fs", Keys: []string{"ctrl", "Alt", "f11"}}
	got, err := c.VirtualKeys()
	if err != nil {
		t.Fatal(err)
	}
	want := []rawinput.VirtualKey{rawinput.VKControl, rawinput.VKMenu, rawinput.Function(11)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("VirtualKeys mismatch (-want +got):\n%s", diff)
	}
}
