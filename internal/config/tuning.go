package config

import (
	"errors"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Tuning collects the gameplay constants. Per-frame quantities (speeds,
// gravity) are in world units per fixed step.
type Tuning struct {
	Player PlayerTuning `json:"player"`
	Portal PortalTuning `json:"portal"`
	Camera CameraTuning `json:"camera"`
}

type PlayerTuning struct {
	Scale            float32    `json:"scale"`
	MoveSpeed        float32    `json:"moveSpeed"`
	Gravity          float32    `json:"gravity"`
	TerminalVelocity float32    `json:"terminalVelocity"`
	JumpImpulse      float32    `json:"jumpImpulse"`
	UpLerp           float32    `json:"upLerp"`
	BoxSize          rl.Vector3 `json:"boxSize"`   // model units
	BoxOffset        rl.Vector3 `json:"boxOffset"` // model units
}

type PortalTuning struct {
	Scale           float32 `json:"scale"`
	MouthHalfWidth  float32 `json:"mouthHalfWidth"`  // local units
	MouthHalfHeight float32 `json:"mouthHalfHeight"` // local units
	ApproachDepth   float32 `json:"approachDepth"`   // world units
	FireDistance    float32 `json:"fireDistance"`
}

type CameraTuning struct {
	FOV       float32 `json:"fov"` // degrees
	Near      float32 `json:"near"`
	Far       float32 `json:"far"`
	EyeHeight float32 `json:"eyeHeight"`
	LookSpeed float32 `json:"lookSpeed"` // degrees per pixel
}

func Default() Tuning {
	return Tuning{
		Player: PlayerTuning{
			Scale:            0.06,
			MoveSpeed:        0.3,
			Gravity:          0.098,
			TerminalVelocity: -1.0,
			JumpImpulse:      1.4,
			UpLerp:           0.06,
			BoxSize:          rl.Vector3{X: 40, Y: 70, Z: 40},
			BoxOffset:        rl.Vector3{X: 0, Y: 35, Z: 0},
		},
		Portal: PortalTuning{
			Scale:           2,
			MouthHalfWidth:  0.8,
			MouthHalfHeight: 1.2,
			ApproachDepth:   2.5,
			FireDistance:    1000,
		},
		Camera: CameraTuning{
			FOV:       60,
			Near:      0.05,
			Far:       1000,
			EyeHeight: 3.6,
			LookSpeed: 0.1,
		},
	}
}

// Load overlays the JSON file at path onto Default.
func Load(path string) (Tuning, error) {
	t := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read tuning %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("decode tuning %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("tuning %s: %w", path, err)
	}
	return t, nil
}

var (
	ErrNonPositiveScale = errors.New("scale must be positive")
	ErrBadGravity       = errors.New("gravity must be positive and terminal velocity negative")
	ErrBadMouth         = errors.New("portal mouth and approach depth must be positive")
	ErrBadClipPlanes    = errors.New("camera clip planes must satisfy 0 < near < far")
)

func (t Tuning) Validate() error {
	switch {
	case t.Player.Scale <= 0 || t.Portal.Scale <= 0:
		return ErrNonPositiveScale
	case t.Player.Gravity <= 0 || t.Player.TerminalVelocity >= 0:
		return ErrBadGravity
	case t.Portal.MouthHalfWidth <= 0 || t.Portal.MouthHalfHeight <= 0 || t.Portal.ApproachDepth <= 0:
		return ErrBadMouth
	case t.Camera.Near <= 0 || t.Camera.Far <= t.Camera.Near:
		return ErrBadClipPlanes
	}
	return nil
}
