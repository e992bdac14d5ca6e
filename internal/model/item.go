package model

// WindowID is the window server's opaque handle for a window. It is stable
// for the window's lifetime and unique at any instant, which makes it the
// only reliable identity a menu bar item has.
type WindowID uint32

// Rect is a screen-space rectangle in global display coordinates.
type Rect struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
	W float64 `yaml:"w" json:"w"`
	H float64 `yaml:"h" json:"h"`
}

// MinX returns the left edge of the rectangle.
func (r Rect) MinX() float64 { return r.X }

// MaxX returns the right edge of the rectangle.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MidX returns the horizontal center of the rectangle.
func (r Rect) MidX() float64 { return r.X + r.W/2 }

// MidY returns the vertical center of the rectangle.
func (r Rect) MidY() float64 { return r.Y + r.H/2 }

// IsDegenerate reports whether the rectangle carries no usable position,
// which happens when the window server could not supply a frame.
func (r Rect) IsDegenerate() bool { return r.W <= 0 || r.H <= 0 }

// Item is one application's entry in the menu bar. Items are rebuilt from
// scratch on every scan; only the window id identifies an item across scans.
type Item struct {
	WindowID WindowID `yaml:"window_id" json:"window_id"`
	Frame    Rect     `yaml:"frame"     json:"frame"`

	// OwnerPID is the process the window server attributes the window to.
	// Zero or negative means the owner could not be determined.
	OwnerPID int `yaml:"pid" json:"pid"`

	// OwnerName and Title come from the public metadata enumeration and are
	// best-effort: either may be absent or, on some hosts, wrong.
	OwnerName string `yaml:"owner,omitempty" json:"owner,omitempty"`
	Title     string `yaml:"title,omitempty" json:"title,omitempty"`

	// ResolvedName and BundleID come from the live-process table when the
	// owner pid maps to a running application.
	ResolvedName string `yaml:"app,omitempty"    json:"app,omitempty"`
	BundleID     string `yaml:"bundle,omitempty" json:"bundle,omitempty"`

	// OnScreen is set when the window appeared in the on-screen enumeration
	// during the same scan.
	OnScreen bool `yaml:"on_screen" json:"on_screen"`
}

// Equal reports whether two items refer to the same window.
func (it Item) Equal(other Item) bool { return it.WindowID == other.WindowID }

// DisplayName returns the best human-readable name for the item: the
// resolved running-process name, then the reported owner name, then the
// window title, then "Unknown".
func (it Item) DisplayName() string {
	if it.ResolvedName != "" {
		return it.ResolvedName
	}
	if it.OwnerName != "" {
		return it.OwnerName
	}
	if it.Title != "" {
		return it.Title
	}
	return "Unknown"
}
