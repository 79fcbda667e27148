package multimedia

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowsFactory_Play(t *testing.T) {
	f := WindowsFactory{}
	var buf bytes.Buffer
	require.NoError(t, f.CreateVideoPlayer().Play(&buf))
	assert.Equal(t, "Playing video on Windows.\n", buf.String())

	buf.Reset()
	require.NoError(t, f.CreateAudioPlayer().Play(&buf))
	assert.Equal(t, "Playing audio on Windows.\n", buf.String())
}

func TestFactory_FamilyConsistency(t *testing.T) {
	tests := []struct {
		factory Factory
		want    Platform
	}{
		{WindowsFactory{}, Windows},
		{MacFactory{}, Mac},
	}
	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			v := tt.factory.CreateVideoPlayer()
			a := tt.factory.CreateAudioPlayer()
			assert.Equal(t, tt.want, v.Platform())
			assert.Equal(t, v.Platform(), a.Platform())

			var buf bytes.Buffer
			require.NoError(t, v.Play(&buf))
			require.NoError(t, a.Play(&buf))
			assert.Equal(t,
				"Playing video on "+string(tt.want)+".\nPlaying audio on "+string(tt.want)+".\n",
				buf.String())
		})
	}
}

func TestNewFactory(t *testing.T) {
	f, err := NewFactory("Mac")
	require.NoError(t, err)
	assert.IsType(t, MacFactory{}, f)

	f, err = NewFactory("windows")
	require.NoError(t, err)
	assert.IsType(t, WindowsFactory{}, f)

	_, err = NewFactory("linux")
	assert.Error(t, err)
}
