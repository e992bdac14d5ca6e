package platform

import (
	"fmt"
	"runtime"
)

// Provider bundles all platform backends for the current OS.
type Provider struct {
	Gateway     WindowGateway
	StatusItems StatusItemHost
	Input       InputPoster
	Processes   ProcessResolver
	Display     DisplayMetrics
}

// ErrUnsupported is returned on unsupported platforms.
var ErrUnsupported = fmt.Errorf("stowbar is not supported on %s/%s; supported: darwin/amd64, darwin/arm64", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/darwin/init.go for the macOS registration.
var NewProviderFunc func() (*Provider, error)

// InputTrustedFunc is set by platform-specific packages via init(). It
// reports whether the process holds the accessibility trust grant, without
// constructing a full provider.
var InputTrustedFunc func() bool

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}

// InputTrusted reports the input-simulation capability. Detection works
// without it; move and click degrade to silent no-ops on the host.
func InputTrusted() bool {
	if InputTrustedFunc == nil {
		return false
	}
	return InputTrustedFunc()
}
