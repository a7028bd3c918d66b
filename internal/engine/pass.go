package engine

// Pass selects what a draw call is for. The set is closed.
type Pass int

const (
	PassDefault Pass = iota
	PassPrimaryPortalView
	PassSecondaryPortalView
	PassStencilOnly
)

func (p Pass) String() string {
	switch p {
	case PassDefault:
		return "default"
	case PassPrimaryPortalView:
		return "primary-portal-view"
	case PassSecondaryPortalView:
		return "secondary-portal-view"
	case PassStencilOnly:
		return "stencil-only"
	}
	return "unknown"
}

// IsPortalView reports whether p renders the scene as seen through a portal.
func (p Pass) IsPortalView() bool {
	return p == PassPrimaryPortalView || p == PassSecondaryPortalView
}

// PortalType returns the portal whose view p renders.
func (p Pass) PortalType() (PortalType, bool) {
	switch p {
	case PassPrimaryPortalView:
		return PortalPrimary, true
	case PassSecondaryPortalView:
		return PortalSecondary, true
	}
	return 0, false
}

type PortalType int

const (
	PortalPrimary PortalType = iota
	PortalSecondary
)

func (t PortalType) String() string {
	if t == PortalPrimary {
		return "primary"
	}
	return "secondary"
}

// Other returns the type of the paired portal.
func (t PortalType) Other() PortalType {
	if t == PortalPrimary {
		return PortalSecondary
	}
	return PortalPrimary
}

// ViewPass is the pass that renders the view through a portal of type t.
func (t PortalType) ViewPass() Pass {
	if t == PortalPrimary {
		return PassPrimaryPortalView
	}
	return PassSecondaryPortalView
}
