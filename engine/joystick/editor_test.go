package joystick

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/hubastard/grove-thumbstick/engine/storage"
)

const testKey = "joystickPosition"

func newTestEditor(t *testing.T, store storage.Store) (*Editor, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	return NewEditor(store, testKey, 100, 16, zap.New(core)), logs
}

func TestEditorLoadDefault(t *testing.T) {
	e, _ := newTestEditor(t, storage.NewMemoryStore())
	assert.Equal(t, Placement{Left: 32, Bottom: 32}, e.Load())
}

func TestEditorLoadMalformed(t *testing.T) {
	cases := map[string]string{
		"not json":     `{left:`,
		"wrong type":   `[1,2]`,
		"bad unit":     `{"left":"10em","bottom":"5px"}`,
		"missing unit": `{"left":"10","bottom":"5px"}`,
		"empty object": `{}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			store := storage.NewMemoryStore()
			require.NoError(t, store.Set(testKey, []byte(raw)))
			e, logs := newTestEditor(t, store)

			assert.Equal(t, Placement{Left: 32, Bottom: 32}, e.Load())
			assert.Equal(t, 1, logs.FilterMessage("placement record malformed, using default").Len())
		})
	}
}

func TestEditorLoadStored(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(testKey, []byte(`{"left":"120px","bottom":"1rem"}`)))
	e, _ := newTestEditor(t, store)
	assert.Equal(t, Placement{Left: 120, Bottom: 16}, e.Load())
}

func TestEditorDragPersistsEveryUpdate(t *testing.T) {
	store := storage.NewMemoryStore()
	e, _ := newTestEditor(t, store)
	e.Load()

	_, ok := e.Drag(Vec2{10, 10}, 800, 600)
	assert.False(t, ok, "drag without begin")

	e.Begin(Vec2{400, 300}, 800, 600)
	raw, err := store.Get(testKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"left":"350px","bottom":"250px"}`, string(raw))

	p, ok := e.Drag(Vec2{0, 0}, 800, 600)
	require.True(t, ok)
	assert.Equal(t, Placement{Left: 0, Bottom: 500}, p)
	raw, err = store.Get(testKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"left":"0px","bottom":"500px"}`, string(raw))

	e.End()
	assert.False(t, e.Dragging())
}

func TestEditorReloadAfterRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	fs, err := storage.NewFileStore(path)
	require.NoError(t, err)

	e, _ := newTestEditor(t, fs)
	e.Load()
	e.Begin(Vec2{200, 100}, 800, 600)
	e.Drag(Vec2{250, 150}, 800, 600)
	e.End()
	want := e.Placement()

	fs2, err := storage.NewFileStore(path)
	require.NoError(t, err)
	e2, _ := newTestEditor(t, fs2)
	assert.Equal(t, want, e2.Load())
}

func TestEditorFitDoesNotPersist(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(testKey, []byte(`{"left":"700px","bottom":"500px"}`)))
	e, _ := newTestEditor(t, store)
	e.Load()

	assert.Equal(t, Placement{Left: 300, Bottom: 200}, e.Fit(400, 300))
	raw, _ := store.Get(testKey)
	assert.JSONEq(t, `{"left":"700px","bottom":"500px"}`, string(raw))

	// Growing the viewport again restores the stored position.
	assert.Equal(t, Placement{Left: 700, Bottom: 500}, e.Fit(1024, 768))
}

func TestEditorReset(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(testKey, []byte(`{"left":"70px","bottom":"50px"}`)))
	e, _ := newTestEditor(t, store)
	e.Load()

	p, err := e.Reset()
	require.NoError(t, err)
	assert.Equal(t, Placement{Left: 32, Bottom: 32}, p)
	_, err = store.Get(testKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

type failingStore struct{ storage.Store }

func (failingStore) Get(string) ([]byte, error) { return nil, errors.New("disk on fire") }
func (failingStore) Set(string, []byte) error   { return errors.New("disk on fire") }

func TestEditorStoreFailuresAreLogged(t *testing.T) {
	e, logs := newTestEditor(t, failingStore{storage.NewMemoryStore()})
	assert.Equal(t, Placement{Left: 32, Bottom: 32}, e.Load())
	assert.Equal(t, 1, logs.FilterMessage("placement read failed, using default").Len())

	e.Begin(Vec2{400, 300}, 800, 600)
	p, ok := e.Drag(Vec2{410, 300}, 800, 600)
	assert.True(t, ok, "drag keeps going when the write fails")
	assert.Equal(t, Placement{Left: 360, Bottom: 250}, p)

	warns := logs.FilterMessage("placement write failed")
	assert.Equal(t, 2, warns.Len())
	assert.Equal(t, zapcore.WarnLevel, warns.All()[0].Level)
}
