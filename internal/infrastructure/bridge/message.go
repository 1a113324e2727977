// Package bridge pushes preference and scroll updates to browser clients over
// WebSocket and accepts their scroll offsets in return.
package bridge

import "github.com/bnema/lookout/internal/domain/entity"

// Message types exchanged with clients.
const (
	TypePreferences = "preferences"
	TypeScroll      = "scroll"
	TypeThemeClass  = "theme-class"
	TypeMetaColor   = "meta-color"
	TypeHello       = "hello"
)

// Message is the single JSON envelope used in both directions.
type Message struct {
	Type        string                    `json:"type"`
	ClientID    string                    `json:"client_id,omitempty"`
	Agent       string                    `json:"agent,omitempty"`
	Preferences *entity.SystemPreferences `json:"preferences,omitempty"`
	Scroll      *entity.WindowScroll      `json:"scroll,omitempty"`
	Class       string                    `json:"class,omitempty"`
	Color       string                    `json:"color,omitempty"`
}

// PreferencesMessage wraps a snapshot.
func PreferencesMessage(p entity.SystemPreferences) Message {
	return Message{Type: TypePreferences, Preferences: &p}
}

// ScrollMessage wraps a scroll offset.
func ScrollMessage(s entity.WindowScroll) Message {
	return Message{Type: TypeScroll, Scroll: &s}
}
