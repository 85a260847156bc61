package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/hubastard/grove-thumbstick/engine/config"
	"github.com/hubastard/grove-thumbstick/engine/core"
	"github.com/hubastard/grove-thumbstick/engine/joystick"
	"github.com/hubastard/grove-thumbstick/engine/storage"
)

func writeConfig(t *testing.T, statePath string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "grove.yaml")
	body := "joystick:\n  max_radius: 50\nstorage:\n  path: " + statePath + "\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestConfigCommand(t *testing.T) {
	state := filepath.Join(t.TempDir(), "state.json")
	out, err := execute(t, "config", "--config", writeConfig(t, state))
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, float32(50), cfg.Joystick.MaxRadius)
	assert.Equal(t, float32(100), cfg.Joystick.Size)
	assert.Equal(t, state, cfg.Storage.Path)
}

func TestConfigCommandMissingFile(t *testing.T) {
	_, err := execute(t, "config", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestResetPlacementCommand(t *testing.T) {
	state := filepath.Join(t.TempDir(), "state.json")
	store, err := storage.NewFileStore(state)
	require.NoError(t, err)
	require.NoError(t, store.Set("joystickPosition", []byte(`{"left":"10px","bottom":"10px"}`)))

	out, err := execute(t, "reset-placement", "--config", writeConfig(t, state))
	require.NoError(t, err)
	assert.Contains(t, out, "joystickPosition")

	_, err = store.Get("joystickPosition")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

type stubWindow struct{ w, h int }

func (s *stubWindow) PollEvents()                       {}
func (s *stubWindow) SwapBuffers()                      {}
func (s *stubWindow) ShouldClose() bool                 { return false }
func (s *stubWindow) RequestClose()                     {}
func (s *stubWindow) FramebufferSize() (int, int)       { return s.w, s.h }
func (s *stubWindow) SetTitle(string)                   {}
func (s *stubWindow) SetEventCallback(func(core.Event)) {}
func (s *stubWindow) TouchCapable() bool                { return false }

func TestMapFollowsStick(t *testing.T) {
	eng := core.NewEngine(&stubWindow{w: 800, h: 600}, nil, nil)
	l := NewLayerMap(100)
	eng.PushLayer(l)

	l.OnStick(joystick.Event{Kind: joystick.EventMove, X: 1, Y: 0})
	l.OnUpdate(eng, 0.5)
	x, y := l.cam.Position()
	assert.Equal(t, float32(50), x)
	assert.Equal(t, float32(0), y)

	l.OnStick(joystick.Event{Kind: joystick.EventRelease})
	l.OnUpdate(eng, 0.5)
	x, _ = l.cam.Position()
	assert.Equal(t, float32(50), x)
}

func TestHUDTracksState(t *testing.T) {
	surface := joystick.NewWindowSurface(400, 800)
	js, err := joystick.New(surface, storage.NewMemoryStore(), joystick.DefaultOptions(), nil)
	require.NoError(t, err)
	defer js.Close()

	hud := NewLayerHUD(js)
	js.TouchStart([]core.Touch{{X: 82, Y: 718}})
	js.TouchMove([]core.Touch{{X: 117, Y: 718}})

	x, _, w, _ := hud.barX.FillRect()
	bx, _ := hud.barX.Node().Pos()
	bw, _ := hud.barX.Node().Size()
	assert.Equal(t, bx+bw/2, x)
	assert.Equal(t, bw/2, w)
}

func TestJoystickOptionsFromConfig(t *testing.T) {
	cfg := config.NewDefaultConfig()
	assert.Equal(t, joystick.DefaultOptions(), joystickOptions(cfg.Joystick))

	cfg.Joystick.TouchCapable = true
	cfg.Joystick.UserAgent = "test-agent"
	opts := joystickOptions(cfg.Joystick)
	assert.Equal(t, joystick.DeviceInfo{TouchCapable: true, UserAgent: "test-agent"}, opts.Device)
}
