package prototype

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_CreateForest(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("Forest", &Forest{TreeType: "Pine", Wildlife: "Deer"}))

	b, err := reg.Create("Forest")
	require.NoError(t, err)
	assert.Equal(t, "Forest with Pine trees and Deer wildlife.", b.Describe())
	assert.Equal(t, KindForest, b.Kind())
}

func TestDefaultRegistry_Descriptions(t *testing.T) {
	reg := DefaultRegistry()
	tests := []struct {
		name string
		want string
	}{
		{"Forest", "Forest with Pine trees and Deer wildlife."},
		{"Desert", "Desert with Golden sand and Hot climate."},
		{"Ocean", "Ocean with Salt water and Fish marine life."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := reg.Create(tt.name)
			require.NoError(t, err)
			var buf bytes.Buffer
			require.NoError(t, Print(&buf, b))
			assert.Equal(t, tt.want+"\n", buf.String())
		})
	}
	assert.Equal(t, []string{"Desert", "Forest", "Ocean"}, reg.Names())
}

func TestRegistry_NotFound(t *testing.T) {
	reg := DefaultRegistry()
	b, err := reg.Create("Tundra")
	assert.Nil(t, b)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "Tundra", nf.Name)
}

// tundra keeps its attributes unexported and copies itself through Clone.
type tundra struct {
	moss  string
	fauna string
}

func (t *tundra) Clone() Biome {
	c := *t
	return &c
}

func (t *tundra) Describe() string {
	return fmt.Sprintf("Tundra with %s moss and %s fauna.", t.moss, t.fauna)
}

func (t *tundra) Kind() string { return "tundra" }

func TestRegistry_RegisterNil(t *testing.T) {
	reg := NewRegistry()
	tests := []struct {
		name     string
		template Biome
	}{
		{"untyped", nil},
		{"forest", (*Forest)(nil)},
		{"desert", (*Desert)(nil)},
		{"tundra", (*tundra)(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, reg.Register(tt.name, tt.template), ErrNilTemplate)
			_, err := reg.Create(tt.name)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
	assert.Empty(t, reg.Names())
}

func TestRegistry_UnexportedStateSurvivesCopy(t *testing.T) {
	reg := NewRegistry()
	src := &tundra{moss: "Reindeer", fauna: "Fox"}
	require.NoError(t, reg.Register("Tundra", src))
	src.moss = "Lichen"

	b, err := reg.Create("Tundra")
	require.NoError(t, err)
	assert.Equal(t, "Tundra with Reindeer moss and Fox fauna.", b.Describe())

	b.(*tundra).fauna = "Wolf"
	again, err := reg.Create("Tundra")
	require.NoError(t, err)
	assert.Equal(t, "Tundra with Reindeer moss and Fox fauna.", again.Describe())
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("b", &Forest{TreeType: "Oak", Wildlife: "Fox"}))
	require.NoError(t, reg.Register("b", &Ocean{WaterType: "Fresh", MarineLife: "Trout"}))

	b, err := reg.Create("b")
	require.NoError(t, err)
	assert.Equal(t, "Ocean with Fresh water and Trout marine life.", b.Describe())
	assert.Len(t, reg.Names(), 1)
}

func TestRegistry_ClonesAreIndependent(t *testing.T) {
	reg := NewRegistry()
	src := &Forest{TreeType: "Pine", Wildlife: "Deer"}
	require.NoError(t, reg.Register("Forest", src))

	// mutating the caller's value must not reach the stored template
	src.TreeType = "Birch"

	first, err := reg.Create("Forest")
	require.NoError(t, err)
	second, err := reg.Create("Forest")
	require.NoError(t, err)

	first.(*Forest).Wildlife = "Wolf"

	assert.Equal(t, "Forest with Pine trees and Wolf wildlife.", first.Describe())
	assert.Equal(t, "Forest with Pine trees and Deer wildlife.", second.Describe())

	third, err := reg.Create("Forest")
	require.NoError(t, err)
	assert.Equal(t, "Forest with Pine trees and Deer wildlife.", third.Describe())
}

func TestRegistry_Close(t *testing.T) {
	reg := DefaultRegistry()
	reg.Close()
	assert.Empty(t, reg.Names())
	_, err := reg.Create("Forest")
	assert.ErrorIs(t, err, ErrNotFound)

	// a closed registry can be reused
	require.NoError(t, reg.Register("Desert", &Desert{SandType: "Red", Climate: "Dry"}))
	b, err := reg.Create("Desert")
	require.NoError(t, err)
	assert.Equal(t, "Desert with Red sand and Dry climate.", b.Describe())
}

func TestNewTemplate(t *testing.T) {
	tests := []struct {
		kind    string
		want    string
		wantErr bool
	}{
		{"forest", "Forest with a trees and b wildlife.", false},
		{"Desert", "Desert with a sand and b climate.", false},
		{"OCEAN", "Ocean with a water and b marine life.", false},
		{"tundra", "", true},
	}
	for _, tt := range tests {
		b, err := NewTemplate(tt.kind, "a", "b")
		if tt.wantErr {
			assert.Error(t, err, tt.kind)
			continue
		}
		require.NoError(t, err, tt.kind)
		assert.Equal(t, tt.want, b.Describe())
	}
}
