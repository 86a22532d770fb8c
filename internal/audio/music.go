// Package audio plays the song track that accompanies a run.
// Playback is best-effort: every method on a nil *Music is a no-op so the
// game never waits on, or fails because of, a missing audio device or file.
package audio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

const (
	sampleRate      = beep.SampleRate(44100)
	resampleQuality = 4
)

var (
	speakerOnce sync.Once
	speakerErr  error
)

// initSpeaker initializes the output device once per process.
func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	})
	return speakerErr
}

// Music is a looping track that can be restarted, paused and resumed.
type Music struct {
	mu      sync.Mutex
	stream  beep.StreamSeekCloser
	ctrl    *beep.Ctrl
	playing bool
}

// SongPath resolves a song id to its file under dir. The mp3 name is
// returned unless only a wav exists.
func SongPath(dir string, songID int) string {
	mp3Path := filepath.Join(dir, fmt.Sprintf("%d.mp3", songID))
	if _, err := os.Stat(mp3Path); err == nil {
		return mp3Path
	}
	wavPath := filepath.Join(dir, fmt.Sprintf("%d.wav", songID))
	if _, err := os.Stat(wavPath); err == nil {
		return wavPath
	}
	return mp3Path
}

// OpenMusic decodes the track at path and attaches it to the speaker,
// paused. Supported formats are mp3 and wav.
func OpenMusic(path string) (*Music, error) {
	stream, format, err := decode(path)
	if err != nil {
		return nil, err
	}
	if err := initSpeaker(); err != nil {
		stream.Close()
		return nil, fmt.Errorf("audio: cannot open output device: %w", err)
	}

	m := &Music{
		stream: stream,
		ctrl:   &beep.Ctrl{Streamer: loop(stream, format), Paused: true},
	}
	speaker.Play(m.ctrl)
	return m, nil
}

// decode opens a track by extension.
func decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("audio: cannot open %s: %w", path, err)
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("audio: unsupported format %q", filepath.Ext(path))
	}
	if err != nil {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("audio: cannot decode %s: %w", path, err)
	}
	return stream, format, nil
}

// loop repeats the stream forever at the speaker's sample rate.
func loop(stream beep.StreamSeeker, format beep.Format) beep.Streamer {
	looped := beep.Loop(-1, stream)
	if format.SampleRate == sampleRate {
		return looped
	}
	return beep.Resample(resampleQuality, format.SampleRate, sampleRate, looped)
}

// Play starts the track from the beginning. If rewinding fails the track
// still plays from where it stopped and the error is returned.
func (m *Music) Play() error {
	if m == nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	speaker.Lock()
	err := m.stream.Seek(0)
	m.ctrl.Paused = false
	speaker.Unlock()
	m.playing = true

	if err != nil {
		return fmt.Errorf("audio: cannot rewind track: %w", err)
	}
	return nil
}

// Pause halts the track at its current position.
func (m *Music) Pause() {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	speaker.Lock()
	m.ctrl.Paused = true
	speaker.Unlock()
}

// Resume continues a paused track. A track that was never played stays
// silent.
func (m *Music) Resume() {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.playing {
		return
	}
	speaker.Lock()
	m.ctrl.Paused = false
	speaker.Unlock()
}

// Stop pauses the track and forgets that it was playing, so Resume does
// nothing until the next Play.
func (m *Music) Stop() {
	if m == nil {
		return
	}
	m.Pause()
	m.mu.Lock()
	m.playing = false
	m.mu.Unlock()
}

// Close detaches the track and releases the decoder.
func (m *Music) Close() error {
	if m == nil {
		return nil
	}
	m.Stop()
	speaker.Lock()
	m.ctrl.Streamer = nil
	speaker.Unlock()
	return m.stream.Close()
}

// ListSongs returns the ids of the tracks in dir, ascending. Files not named
// <id>.mp3 or <id>.wav are ignored; a missing dir has no songs.
func ListSongs(dir string) ([]int, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("audio: cannot list %s: %w", dir, err)
	}

	seen := make(map[int]bool)
	var ids []int
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".mp3" && ext != ".wav" {
			continue
		}
		id, err := strconv.Atoi(strings.TrimSuffix(name, filepath.Ext(name)))
		if err != nil || id < 1 || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, nil
}
