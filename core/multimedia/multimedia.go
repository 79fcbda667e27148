// Package multimedia groups the creation of video and audio players per
// platform so that a caller always receives players of the same family.
package multimedia

import (
	"fmt"
	"io"
	"strings"
)

// Platform identifies a product family.
type Platform string

const (
	Windows Platform = "Windows"
	Mac     Platform = "Mac"
)

// VideoPlayer plays video on its platform.
type VideoPlayer interface {
	Play(w io.Writer) error
	Platform() Platform
}

// AudioPlayer plays audio on its platform.
type AudioPlayer interface {
	Play(w io.Writer) error
	Platform() Platform
}

// Factory creates players that all belong to one platform.
type Factory interface {
	CreateVideoPlayer() VideoPlayer
	CreateAudioPlayer() AudioPlayer
}

type videoPlayer struct{ platform Platform }

func (p videoPlayer) Play(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Playing video on %s.\n", p.platform)
	return err
}

func (p videoPlayer) Platform() Platform { return p.platform }

type audioPlayer struct{ platform Platform }

func (p audioPlayer) Play(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Playing audio on %s.\n", p.platform)
	return err
}

func (p audioPlayer) Platform() Platform { return p.platform }

// WindowsFactory creates Windows players.
type WindowsFactory struct{}

func (WindowsFactory) CreateVideoPlayer() VideoPlayer { return videoPlayer{platform: Windows} }
func (WindowsFactory) CreateAudioPlayer() AudioPlayer { return audioPlayer{platform: Windows} }

// MacFactory creates Mac players.
type MacFactory struct{}

func (MacFactory) CreateVideoPlayer() VideoPlayer { return videoPlayer{platform: Mac} }
func (MacFactory) CreateAudioPlayer() AudioPlayer { return audioPlayer{platform: Mac} }

// NewFactory returns the factory for the named platform.
func NewFactory(platform string) (Factory, error) {
	switch strings.ToLower(platform) {
	case "windows":
		return WindowsFactory{}, nil
	case "mac":
		return MacFactory{}, nil
	default:
		return nil, fmt.Errorf("unknown platform %s", platform)
	}
}
