package assets

import (
	"fmt"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Cache loads GPU resources once per path.
type Cache struct {
	root     string
	shaders  map[string]rl.Shader
	textures map[string]rl.Texture2D
}

func NewCache(root string) *Cache {
	return &Cache{
		root:     root,
		shaders:  make(map[string]rl.Shader),
		textures: make(map[string]rl.Texture2D),
	}
}

// Path resolves name against the asset root.
func (c *Cache) Path(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.root, name)
}

// LoadShader compiles a shader pair. An empty name selects raylib's
// default stage.
func (c *Cache) LoadShader(vs, fs string) (rl.Shader, error) {
	key := vs + "|" + fs
	if shader, ok := c.shaders[key]; ok {
		return shader, nil
	}
	for _, name := range []string{vs, fs} {
		if name == "" {
			continue
		}
		if _, err := os.Stat(c.Path(name)); err != nil {
			return rl.Shader{}, fmt.Errorf("shader %s: %w", name, err)
		}
	}
	shader := rl.LoadShader(c.Path(vs), c.Path(fs))
	if !rl.IsShaderValid(shader) {
		return rl.Shader{}, fmt.Errorf("shader %s: compile failed", key)
	}
	c.shaders[key] = shader
	return shader, nil
}

func (c *Cache) LoadTexture(name string) (rl.Texture2D, error) {
	if texture, ok := c.textures[name]; ok {
		return texture, nil
	}
	if _, err := os.Stat(c.Path(name)); err != nil {
		return rl.Texture2D{}, fmt.Errorf("texture %s: %w", name, err)
	}
	texture := rl.LoadTexture(c.Path(name))
	c.textures[name] = texture
	return texture, nil
}

func (c *Cache) Unload() {
	for _, shader := range c.shaders {
		rl.UnloadShader(shader)
	}
	for _, texture := range c.textures {
		rl.UnloadTexture(texture)
	}
	c.shaders = make(map[string]rl.Shader)
	c.textures = make(map[string]rl.Texture2D)
}
