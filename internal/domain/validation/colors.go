// Package validation holds value checks shared by config and the CLI.
package validation

import (
	"net"
	"regexp"
	"strings"
)

var hexColorRE = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}

// ValidateMetaColors checks each non-empty color. An empty color disables that meta update.
func ValidateMetaColors(prefix string, colors map[string]string) []string {
	var errs []string
	for _, key := range []string{"light_meta_color", "dark_meta_color", "high_contrast_meta_color"} {
		value, ok := colors[key]
		if !ok || value == "" {
			continue
		}
		if !IsHexColor(value) {
			errs = append(errs, prefix+"."+key+" must be a hex color like #RRGGBB")
		}
	}
	return errs
}

// IsListenAddress reports whether addr is a usable host:port pair.
func IsListenAddress(addr string) bool {
	host, port, err := net.SplitHostPort(addr)
	if err != nil || port == "" {
		return false
	}
	return !strings.ContainsAny(host, " /")
}
