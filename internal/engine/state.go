package engine

// ShaderKind tags a pipeline state so redundant binds can be skipped by
// comparing tags instead of handles.
type ShaderKind int

const (
	ShaderNone ShaderKind = iota
	ShaderLit
	ShaderUnlit
	ShaderPortal
	ShaderStencil
)

func (k ShaderKind) String() string {
	switch k {
	case ShaderLit:
		return "lit"
	case ShaderUnlit:
		return "unlit"
	case ShaderPortal:
		return "portal"
	case ShaderStencil:
		return "stencil"
	}
	return "none"
}

// StateCache remembers the last bound shader kind.
type StateCache struct {
	current ShaderKind
	binds   int
}

// Bind records kind as current and reports whether the backend has to
// switch state.
func (c *StateCache) Bind(kind ShaderKind) bool {
	if kind == c.current {
		return false
	}
	c.current = kind
	c.binds++
	return true
}

func (c *StateCache) Current() ShaderKind { return c.current }

// Binds counts the real state changes since the last Reset.
func (c *StateCache) Binds() int { return c.binds }

// Reset forgets the bound state; call it when a pass begins.
func (c *StateCache) Reset() {
	c.current = ShaderNone
	c.binds = 0
}
