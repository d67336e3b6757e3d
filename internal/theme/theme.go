// Package theme implements the light/dark theme store for keyflow.
//
// The store is the single source of truth for theme state: it mediates
// between the persisted user preference, the OS-reported colour scheme,
// and the resolved value the UI actually renders. Storage, the OS
// signal source, and the render surface are injectable capabilities so
// the store works identically in interactive and headless contexts.
package theme

// Preference is the user's stored theme choice.
type Preference string

const (
	// PreferenceLight forces the light theme regardless of the OS setting.
	PreferenceLight Preference = "light"
	// PreferenceDark forces the dark theme regardless of the OS setting.
	PreferenceDark Preference = "dark"
	// PreferenceSystem follows the OS-reported colour scheme.
	PreferenceSystem Preference = "system"
)

// Scheme is a concrete light or dark colour scheme, either reported by
// the operating system or resolved from a preference.
type Scheme string

const (
	// SchemeLight is the light colour scheme.
	SchemeLight Scheme = "light"
	// SchemeDark is the dark colour scheme.
	SchemeDark Scheme = "dark"
)

// ValidPreference checks if the given string is a valid preference name.
func ValidPreference(s string) bool {
	switch Preference(s) {
	case PreferenceLight, PreferenceDark, PreferenceSystem:
		return true
	default:
		return false
	}
}

// Resolve computes the scheme actually rendered for a preference given
// the current OS scheme.
func Resolve(pref Preference, system Scheme) Scheme {
	switch pref {
	case PreferenceLight:
		return SchemeLight
	case PreferenceDark:
		return SchemeDark
	default:
		return system
	}
}

// Opposite returns the other scheme.
func (s Scheme) Opposite() Scheme {
	if s == SchemeDark {
		return SchemeLight
	}
	return SchemeDark
}

// Preference converts a scheme to the explicit preference selecting it.
func (s Scheme) Preference() Preference {
	if s == SchemeDark {
		return PreferenceDark
	}
	return PreferenceLight
}

// String returns the string representation of the preference.
func (p Preference) String() string {
	return string(p)
}

// String returns the string representation of the scheme.
func (s Scheme) String() string {
	return string(s)
}
