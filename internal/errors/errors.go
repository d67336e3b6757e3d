// Package errors defines sentinel errors used across multiple packages.
package errors

import "errors"

// ErrUnknownTheme is returned when a theme preference is not one of
// light, dark, or system.
var ErrUnknownTheme = errors.New("unknown theme preference")

// ErrSystemDisabled is returned when the system preference is requested
// but system selection is disabled by configuration.
var ErrSystemDisabled = errors.New("system theme selection is disabled")
