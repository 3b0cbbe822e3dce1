package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/aura/scene"
)

func TestDefault_BuiltinScenes(t *testing.T) {
	r := Default()
	assert.Equal(t, []string{Lissajous, Rune, Contour, Placeholder}, r.Names())

	for _, name := range r.Names() {
		s, err := r.Create(name, scene.Options{IntroDuration: 1})
		require.NoError(t, err, name)
		assert.Equal(t, name, s.Name())
	}
}

func TestLookup_Unknown(t *testing.T) {
	r := Default()
	_, err := r.Lookup("spiral")
	assert.ErrorIs(t, err, ErrUnknownScene)
	assert.Contains(t, err.Error(), "spiral")

	s, err := r.Create("spiral", scene.Options{})
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrUnknownScene)
}

func TestRegister_ReplaceKeepsOrder(t *testing.T) {
	r := New()
	calls := 0
	r.Register("a", func(opts scene.Options) scene.Scene { return scene.NewPlaceholder(opts) })
	r.Register("b", func(opts scene.Options) scene.Scene { return scene.NewPlaceholder(opts) })
	r.Register("a", func(opts scene.Options) scene.Scene {
		calls++
		return scene.NewRune(opts)
	})
	assert.Equal(t, []string{"a", "b"}, r.Names())

	s, err := r.Create("a", scene.Options{})
	require.NoError(t, err)
	assert.Equal(t, "rune", s.Name())
	assert.Equal(t, 1, calls)
}

func TestNext_Cycles(t *testing.T) {
	r := Default()
	assert.Equal(t, Rune, r.Next(Lissajous))
	assert.Equal(t, Lissajous, r.Next(Placeholder))
	assert.Equal(t, Lissajous, r.Next("missing"))
	assert.Equal(t, "", New().Next("x"))
}

func TestRegistriesAreIndependent(t *testing.T) {
	a, b := New(), New()
	a.Register("x", func(opts scene.Options) scene.Scene { return scene.NewPlaceholder(opts) })
	_, err := b.Lookup("x")
	assert.ErrorIs(t, err, ErrUnknownScene)
}
