package settings

import (
	"errors"
	"testing"

	cfg "github.com/automoto/hopdrop/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeItems struct {
	items   map[string][]byte
	loadErr error
}

func (f *fakeItems) LoadItem(key string) ([]byte, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.items[key], nil
}

func (f *fakeItems) SaveItem(key string, data []byte) error {
	f.items[key] = data
	return nil
}

func TestMemoryStoreTypedValues(t *testing.T) {
	s := NewMemoryStore()

	assert.Equal(t, 0.5, s.GetFloat("missing", 0.5))
	assert.Equal(t, 3, s.GetInt("missing", 3))
	assert.Equal(t, "x", s.GetString("missing", "x"))

	s.SetFloat("f", 0.25)
	s.SetInt("i", 7)
	s.SetString("s", "KeyW")

	assert.Equal(t, 0.25, s.GetFloat("f", 0))
	assert.Equal(t, 7, s.GetInt("i", 0))
	assert.Equal(t, "KeyW", s.GetString("s", ""))

	// A value of another type reads as the default.
	assert.Equal(t, 9, s.GetInt("s", 9))
	assert.NoError(t, s.Save())
}

func TestLoadDefaultsIntensities(t *testing.T) {
	tests := []struct {
		name  string
		shake *float64
		flash *float64
		want  [2]float64
	}{
		{name: "unset", want: [2]float64{1, 1}},
		{name: "zero turns shake off but keeps flash positive", shake: ptr(0), flash: ptr(0), want: [2]float64{0, 1}},
		{name: "negative shake is off", shake: ptr(-2), flash: ptr(-1), want: [2]float64{0, 1}},
		{name: "set", shake: ptr(0.5), flash: ptr(0.2), want: [2]float64{0.5, 0.2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewMemoryStore()
			if tt.shake != nil {
				s.SetFloat(cfg.SettingScreenShake, *tt.shake)
			}
			if tt.flash != nil {
				s.SetFloat(cfg.SettingFlashEffects, *tt.flash)
			}

			snap := Load(s)
			assert.Equal(t, tt.want[0], snap.ScreenShake)
			assert.Equal(t, tt.want[1], snap.FlashEffects)
		})
	}
}

func TestLoadNilStore(t *testing.T) {
	snap := Load(nil)
	assert.Equal(t, 1.0, snap.ScreenShake)
	assert.Equal(t, 1.0, snap.FlashEffects)
	assert.Empty(t, snap.Keys)
}

func TestLoadKeyOverrides(t *testing.T) {
	s := NewMemoryStore()
	s.SetString(cfg.SettingJumpKey, "W")

	snap := Load(s)
	assert.Equal(t, map[string]string{cfg.SettingJumpKey: "W"}, snap.Keys)

	c := snap.Component()
	assert.Equal(t, snap.ScreenShake, c.ScreenShake)
}

func TestGdataStoreRoundTrip(t *testing.T) {
	items := &fakeItems{items: map[string][]byte{}}

	s := newGdataStore(items, "settings", nil)
	s.SetFloat(cfg.SettingScreenShake, 0.3)
	s.SetString(cfg.SettingLeftKey, "A")
	require.NoError(t, s.Save())
	require.NotEmpty(t, items.items["settings"])

	reopened := newGdataStore(items, "settings", nil)
	assert.Equal(t, 0.3, reopened.GetFloat(cfg.SettingScreenShake, 1))
	assert.Equal(t, "A", reopened.GetString(cfg.SettingLeftKey, ""))
}

func TestGdataStoreBadItemsStartEmpty(t *testing.T) {
	t.Run("load error", func(t *testing.T) {
		s := newGdataStore(&fakeItems{loadErr: errors.New("boom")}, "settings", nil)
		assert.Equal(t, 1.0, Load(s).ScreenShake)
	})
	t.Run("corrupt", func(t *testing.T) {
		items := &fakeItems{items: map[string][]byte{"settings": []byte("{not json")}}
		s := newGdataStore(items, "settings", nil)
		assert.Equal(t, "", s.GetString(cfg.SettingJumpKey, ""))
	})
}

func ptr(v float64) *float64 { return &v }
