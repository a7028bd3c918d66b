package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Cue names a one-shot effect.
type Cue int

const (
	CuePrimaryPlaced Cue = iota
	CueSecondaryPlaced
	CueCrossed
	cueCount
)

var cueFiles = [cueCount]string{
	CuePrimaryPlaced:   "portal_primary.wav",
	CueSecondaryPlaced: "portal_secondary.wav",
	CueCrossed:         "portal_enter.wav",
}

func (c Cue) String() string {
	switch c {
	case CuePrimaryPlaced:
		return "primary placed"
	case CueSecondaryPlaced:
		return "secondary placed"
	case CueCrossed:
		return "crossed"
	}
	return "unknown"
}

// Listener represents the audio listener position and orientation
type Listener struct {
	Position rl.Vector3
	Forward  rl.Vector3
	Right    rl.Vector3
}

// NewListener builds a listener from a look direction and up vector.
// A zero forward falls back to -Z.
func NewListener(pos, forward, up rl.Vector3) Listener {
	l := Listener{Position: pos}

	if fwdLen := rl.Vector3Length(forward); fwdLen > 0.001 {
		l.Forward = rl.Vector3Scale(forward, 1.0/fwdLen)
	} else {
		l.Forward = rl.Vector3{Z: -1}
	}

	right := rl.Vector3CrossProduct(l.Forward, up)
	if rightLen := rl.Vector3Length(right); rightLen > 0.001 {
		l.Right = rl.Vector3Scale(right, 1.0/rightLen)
	} else {
		l.Right = rl.Vector3{X: 1}
	}
	return l
}

// Spatialize returns the volume and pan for a sound at pos. Volume falls
// off linearly to zero at maxDistance and sounds behind the listener are
// slightly quieter. Pan is 0 for full left, 0.5 centred, 1 full right.
func Spatialize(l Listener, pos rl.Vector3, volume, maxDistance float32) (float32, float32) {
	toSource := rl.Vector3Subtract(pos, l.Position)
	distance := rl.Vector3Length(toSource)
	if distance >= maxDistance {
		return 0, 0.5
	}
	volume *= 1 - distance/maxDistance
	if distance <= 0.001 {
		return volume, 0.5
	}

	direction := rl.Vector3Scale(toSource, 1.0/distance)
	pan := math32.Max(0, math32.Min(1, 0.5+rl.Vector3DotProduct(direction, l.Right)*0.5))
	if frontDot := rl.Vector3DotProduct(direction, l.Forward); frontDot < 0 {
		volume *= 0.7 + 0.3*math32.Abs(frontDot)
	}
	return volume, pan
}

// Manager plays the game's one-shot cues. A manager whose device never
// opened, or whose cue files are missing, stays silent.
type Manager struct {
	mu          sync.Mutex
	listener    Listener
	sounds      [cueCount]rl.Sound
	loaded      [cueCount]bool
	device      bool
	Volume      float32
	MaxDistance float32
}

func NewManager() *Manager {
	return &Manager{
		listener:    NewListener(rl.Vector3{}, rl.Vector3{Z: -1}, rl.Vector3{Y: 1}),
		Volume:      1.0,
		MaxDistance: 50.0,
	}
}

// Init opens the audio device and loads every cue found under dir. Missing
// files are reported but do not stop the others from loading.
func (m *Manager) Init(dir string) error {
	rl.InitAudioDevice()
	if !rl.IsAudioDeviceReady() {
		return fmt.Errorf("audio device not ready")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.device = true

	var missing []string
	for cue, name := range cueFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			missing = append(missing, name)
			continue
		}
		sound := rl.LoadSound(path)
		if !rl.IsSoundValid(sound) {
			missing = append(missing, name)
			continue
		}
		m.sounds[cue] = sound
		m.loaded[cue] = true
	}
	if len(missing) > 0 {
		return fmt.Errorf("audio: cues not loaded: %v", missing)
	}
	return nil
}

// Close shuts down the audio system
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for cue := range m.sounds {
		if m.loaded[cue] {
			rl.UnloadSound(m.sounds[cue])
			m.loaded[cue] = false
		}
	}
	if m.device {
		rl.CloseAudioDevice()
		m.device = false
	}
}

// SetListener updates the listener position and orientation
func (m *Manager) SetListener(pos, forward, up rl.Vector3) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listener = NewListener(pos, forward, up)
}

func (m *Manager) Listener() Listener {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listener
}

// Loaded reports whether cue has a sound to play.
func (m *Manager) Loaded(cue Cue) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cue >= 0 && cue < cueCount && m.loaded[cue]
}

// PlayAt plays cue as if emitted from pos.
func (m *Manager) PlayAt(cue Cue, pos rl.Vector3) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cue < 0 || cue >= cueCount || !m.loaded[cue] {
		return
	}
	volume, pan := Spatialize(m.listener, pos, m.Volume, m.MaxDistance)
	sound := m.sounds[cue]
	rl.SetSoundVolume(sound, volume)
	rl.SetSoundPan(sound, pan)
	rl.PlaySound(sound)
}

// Play plays cue centred at full volume.
func (m *Manager) Play(cue Cue) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cue < 0 || cue >= cueCount || !m.loaded[cue] {
		return
	}
	rl.SetSoundVolume(m.sounds[cue], m.Volume)
	rl.SetSoundPan(m.sounds[cue], 0.5)
	rl.PlaySound(m.sounds[cue])
}
