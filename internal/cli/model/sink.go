package model

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/lookout/internal/application/port"
	"github.com/bnema/lookout/internal/domain/entity"
)

// Sender delivers messages to a running program. *tea.Program implements it.
type Sender interface {
	Send(msg tea.Msg)
}

// ThemeClassMsg carries a root class applied through TeaSink.
type ThemeClassMsg struct {
	Class string
}

// MetaColorMsg carries a meta color applied through TeaSink.
type MetaColorMsg struct {
	Color string
}

// ScrollMsg carries a scroll offset published by a ScrollObserver.
type ScrollMsg struct {
	Scroll entity.WindowScroll
}

// TeaSink is a PresentationSink that turns side effects into tea messages.
// Send blocks until the program reads the message, so it must not be
// called from inside Update.
type TeaSink struct {
	to Sender
}

// NewTeaSink creates a sink delivering to s.
func NewTeaSink(s Sender) *TeaSink {
	return &TeaSink{to: s}
}

// ApplyThemeClass implements port.PresentationSink.
func (s *TeaSink) ApplyThemeClass(name string) error {
	if _, err := entity.ParseClassName(name); err != nil {
		return err
	}
	s.to.Send(ThemeClassMsg{Class: name})
	return nil
}

// SetMetaColor implements port.PresentationSink.
func (s *TeaSink) SetMetaColor(value string) error {
	s.to.Send(MetaColorMsg{Color: value})
	return nil
}

var _ port.PresentationSink = (*TeaSink)(nil)
