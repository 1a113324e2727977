package entity

// Well-known preference media queries.
const (
	MediaPrefersDark           = "(prefers-color-scheme: dark)"
	MediaPrefersMediumContrast = "(prefers-contrast: more)"
	MediaPrefersHighContrast   = "(prefers-contrast: high)"
)

// SignalKind identifies one boolean preference signal.
type SignalKind string

const (
	SignalDark           SignalKind = "dark"
	SignalMediumContrast SignalKind = "contrast-more"
	SignalHighContrast   SignalKind = "contrast-high"
)

// SignalKinds lists every known signal in a stable order.
func SignalKinds() []SignalKind {
	return []SignalKind{SignalDark, SignalHighContrast, SignalMediumContrast}
}

// Media returns the media query for the signal.
func (k SignalKind) Media() string {
	switch k {
	case SignalDark:
		return MediaPrefersDark
	case SignalMediumContrast:
		return MediaPrefersMediumContrast
	case SignalHighContrast:
		return MediaPrefersHighContrast
	default:
		return ""
	}
}

// SignalForMedia maps a media query back to its signal.
func SignalForMedia(query string) (SignalKind, bool) {
	for _, k := range SignalKinds() {
		if k.Media() == query {
			return k, true
		}
	}
	return "", false
}
