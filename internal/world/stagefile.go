package world

import (
	"errors"
	"fmt"
	"os"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	jsoniter "github.com/json-iterator/go"

	"portalgame/internal/physics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// --- JSON types ---

type StageFile struct {
	Name     string       `json:"name"`
	Spawn    [3]float32   `json:"spawn"`
	SpawnYaw float32      `json:"spawnYaw"`
	Rooms    []RoomDef    `json:"rooms,omitempty"`
	Surfaces []SurfaceDef `json:"surfaces,omitempty"`
	Obstacle *ObstacleDef `json:"obstacle,omitempty"`
}

// RoomDef expands to the six inward-facing walls of a box.
type RoomDef struct {
	Min   [3]float32 `json:"min"`
	Max   [3]float32 `json:"max"`
	Color string     `json:"color,omitempty"`
}

type SurfaceDef struct {
	ID       int          `json:"id"`
	Vertices [][3]float32 `json:"vertices"`
	Color    string       `json:"color,omitempty"`
}

type ObstacleDef struct {
	Position      [3]float32 `json:"position"`
	Size          [3]float32 `json:"size"`
	DegreesPerSec float32    `json:"degreesPerSec"`
	Radius        float32    `json:"radius"`
	Speed         float32    `json:"speed"`
	Color         string     `json:"color,omitempty"`
}

// --- Color mapping ---

var colorByName = map[string]rl.Color{
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Beige":     rl.Beige,
	"Brown":     rl.Brown,
	"Red":       rl.Red,
	"Maroon":    rl.Maroon,
	"Gold":      rl.Gold,
	"Purple":    rl.Purple,
}

func lookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	return rl.LightGray
}

func vec(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

var (
	ErrDegenerateSurface = errors.New("surface needs at least three vertices")
	ErrNonPlanarSurface  = errors.New("surface vertices are not coplanar")
	ErrDuplicateSurface  = errors.New("duplicate surface id")
	ErrEmptyRoom         = errors.New("room has zero extent")
)

const planarTolerance = 1e-3

// LoadStage reads and validates a stage file.
func LoadStage(path string) (*StageFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stage %s: %w", path, err)
	}
	stage, err := ParseStage(data)
	if err != nil {
		return nil, fmt.Errorf("stage %s: %w", path, err)
	}
	return stage, nil
}

func ParseStage(data []byte) (*StageFile, error) {
	var stage StageFile
	if err := json.Unmarshal(data, &stage); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if _, _, err := stage.Build(); err != nil {
		return nil, err
	}
	return &stage, nil
}

// Build expands rooms and surfaces into collision polygons. Room walls get
// ids after the highest explicit surface id.
func (s *StageFile) Build() ([]physics.Surface, map[int]rl.Color, error) {
	var surfaces []physics.Surface
	colors := make(map[int]rl.Color)
	seen := make(map[int]bool)
	nextID := 1

	for _, def := range s.Surfaces {
		if def.ID >= nextID {
			nextID = def.ID + 1
		}
	}

	add := func(id int, verts []rl.Vector3, color string) error {
		if seen[id] {
			return fmt.Errorf("%w: %d", ErrDuplicateSurface, id)
		}
		if len(verts) < 3 {
			return fmt.Errorf("surface %d: %w", id, ErrDegenerateSurface)
		}
		surf := physics.NewSurface(id, verts)
		if rl.Vector3Length(surf.Normal) == 0 {
			return fmt.Errorf("surface %d: %w", id, ErrDegenerateSurface)
		}
		for _, v := range verts[3:] {
			if math32.Abs(rl.Vector3DotProduct(rl.Vector3Subtract(v, verts[0]), surf.Normal)) > planarTolerance {
				return fmt.Errorf("surface %d: %w", id, ErrNonPlanarSurface)
			}
		}
		seen[id] = true
		surfaces = append(surfaces, surf)
		colors[id] = lookupColor(color)
		return nil
	}

	for _, def := range s.Surfaces {
		verts := make([]rl.Vector3, len(def.Vertices))
		for i, v := range def.Vertices {
			verts[i] = vec(v)
		}
		if err := add(def.ID, verts, def.Color); err != nil {
			return nil, nil, err
		}
	}

	for i, room := range s.Rooms {
		walls, err := roomWalls(vec(room.Min), vec(room.Max))
		if err != nil {
			return nil, nil, fmt.Errorf("room %d: %w", i, err)
		}
		for _, w := range walls {
			if err := add(nextID, w, room.Color); err != nil {
				return nil, nil, err
			}
			nextID++
		}
	}
	return surfaces, colors, nil
}

// roomWalls returns floor, ceiling and four walls, each wound so its
// normal points into the room.
func roomWalls(lo, hi rl.Vector3) ([][]rl.Vector3, error) {
	if hi.X <= lo.X || hi.Y <= lo.Y || hi.Z <= lo.Z {
		return nil, ErrEmptyRoom
	}
	v := func(x, y, z float32) rl.Vector3 { return rl.Vector3{X: x, Y: y, Z: z} }
	return [][]rl.Vector3{
		// floor, +Y
		{v(lo.X, lo.Y, lo.Z), v(lo.X, lo.Y, hi.Z), v(hi.X, lo.Y, hi.Z), v(hi.X, lo.Y, lo.Z)},
		// ceiling, -Y
		{v(lo.X, hi.Y, lo.Z), v(hi.X, hi.Y, lo.Z), v(hi.X, hi.Y, hi.Z), v(lo.X, hi.Y, hi.Z)},
		// -Z wall, +Z
		{v(lo.X, lo.Y, lo.Z), v(hi.X, lo.Y, lo.Z), v(hi.X, hi.Y, lo.Z), v(lo.X, hi.Y, lo.Z)},
		// +Z wall, -Z
		{v(lo.X, lo.Y, hi.Z), v(lo.X, hi.Y, hi.Z), v(hi.X, hi.Y, hi.Z), v(hi.X, lo.Y, hi.Z)},
		// -X wall, +X
		{v(lo.X, lo.Y, lo.Z), v(lo.X, hi.Y, lo.Z), v(lo.X, hi.Y, hi.Z), v(lo.X, lo.Y, hi.Z)},
		// +X wall, -X
		{v(hi.X, lo.Y, lo.Z), v(hi.X, lo.Y, hi.Z), v(hi.X, hi.Y, hi.Z), v(hi.X, hi.Y, lo.Z)},
	}, nil
}
