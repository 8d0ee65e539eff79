//go:build !tinygo && !cgo

package hal

import "errors"

func RunWindow(_ HostConfig, _ func(h HAL) func() error) error {
	return errors.New("hal: window mode requires cgo (build/run with CGO_ENABLED=1)")
}
