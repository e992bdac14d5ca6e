//go:build darwin && cgo

package darwin

import "github.com/stowbar/stowbar/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			Gateway:     NewGateway(),
			StatusItems: NewStatusItems(),
			Input:       NewInput(),
			Processes:   NewProcesses(),
			Display:     NewDisplay(),
		}, nil
	}
	platform.InputTrustedFunc = IsInputTrusted
}
