// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/lookout/internal/cli/styles"
	"github.com/bnema/lookout/internal/domain/entity"
	"github.com/bnema/lookout/internal/logging"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	statusHeight  = 1
)

// OffsetSink receives the pager's scroll offset after every move.
type OffsetSink interface {
	Update(x, y float64)
}

// PagerOption configures a PagerModel.
type PagerOption func(*PagerModel)

// WithOffsetSink reports viewport offsets to s.
func WithOffsetSink(s OffsetSink) PagerOption {
	return func(m *PagerModel) {
		m.offsets = s
	}
}

// WithMount runs cmd once the program has started. Observers that deliver
// through a TeaSink must be activated from here, not before Run.
func WithMount(cmd tea.Cmd) PagerOption {
	return func(m *PagerModel) {
		m.mount = cmd
	}
}

// PagerModel is the Bubble Tea model for the document pager.
type PagerModel struct {
	// UI components
	viewport viewport.Model
	help     help.Model
	keys     styles.PagerKeyMap

	// State
	title     string
	content   string
	markdown  bool
	scroll    entity.WindowScroll
	metaColor string
	ready     bool
	showHelp  bool
	width     int
	height    int
	err       error

	// Dependencies
	ctx     context.Context
	theme   *styles.Theme
	offsets OffsetSink
	mount   tea.Cmd
}

// NewPagerModel creates a pager for content. Files ending in .md or
// .markdown are rendered with glamour.
func NewPagerModel(ctx context.Context, theme *styles.Theme, path, content string, opts ...PagerOption) PagerModel {
	ext := strings.ToLower(filepath.Ext(path))
	m := PagerModel{
		help:     styles.NewStyledHelp(theme),
		keys:     styles.DefaultPagerKeyMap(),
		title:    filepath.Base(path),
		content:  content,
		markdown: ext == ".md" || ext == ".markdown",
		ctx:      ctx,
		theme:    theme,
		width:    defaultWidth,
		height:   defaultHeight,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init implements tea.Model.
func (m PagerModel) Init() tea.Cmd {
	return m.mount
}

// Update implements tea.Model.
func (m PagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if !m.ready {
			m.viewport = viewport.New(m.width, m.viewportHeight())
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = m.viewportHeight()
		}
		m.render()
		m.reportOffset()
		return m, nil

	case ThemeClassMsg:
		prefs, err := entity.ParseClassName(msg.Class)
		if err != nil {
			m.err = err
			return m, nil
		}
		if prefs != m.theme.Preferences {
			m.applyTheme(prefs)
		}
		return m, nil

	case MetaColorMsg:
		m.metaColor = msg.Color
		return m, nil

	case ScrollMsg:
		m.scroll = msg.Scroll
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			m.help.ShowAll = m.showHelp
			if m.ready {
				m.viewport.Height = m.viewportHeight()
			}
			return m, nil
		case key.Matches(msg, m.keys.Top):
			if m.ready {
				m.viewport.GotoTop()
				m.reportOffset()
			}
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			if m.ready {
				m.viewport.GotoBottom()
				m.reportOffset()
			}
			return m, nil
		}
	}

	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
		m.reportOffset()
	}

	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m PagerModel) View() string {
	if !m.ready {
		return "\n  Loading..."
	}

	parts := []string{m.viewport.View(), m.statusBar()}
	if m.showHelp {
		parts = append(parts, m.help.View(m.keys))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Theme returns the theme in use.
func (m PagerModel) Theme() *styles.Theme {
	return m.theme
}

// Scroll returns the last offset published by the scroll observer.
func (m PagerModel) Scroll() entity.WindowScroll {
	return m.scroll
}

// MetaColor returns the last meta color received.
func (m PagerModel) MetaColor() string {
	return m.metaColor
}

// Err returns the last error, if any.
func (m PagerModel) Err() error {
	return m.err
}

func (m *PagerModel) applyTheme(prefs entity.SystemPreferences) {
	logging.FromContext(m.ctx).Debug().Str("prefs", prefs.String()).Msg("pager theme changed")

	m.theme = styles.NewTheme(prefs)
	m.help = styles.NewStyledHelp(m.theme)
	m.help.ShowAll = m.showHelp
	if m.ready {
		offset := m.viewport.YOffset
		m.render()
		m.viewport.SetYOffset(offset)
		m.reportOffset()
	}
}

func (m *PagerModel) viewportHeight() int {
	h := m.height - statusHeight
	if m.showHelp {
		h -= lipgloss.Height(m.help.View(m.keys))
	}
	return max(h, 1)
}

// render restyles the content for the current theme and width.
func (m *PagerModel) render() {
	out, err := renderContent(m.content, m.markdown, m.theme.GlamourStyle(), m.width)
	if err != nil {
		logging.FromContext(m.ctx).Warn().Err(err).Msg("markdown rendering failed, showing raw text")
		m.err = err
		out = m.content
	}
	m.viewport.Style = lipgloss.NewStyle().Foreground(m.theme.Text)
	m.viewport.SetContent(out)
}

// reportOffset pushes the viewport offset. The pager never scrolls
// horizontally, so x is always zero.
func (m *PagerModel) reportOffset() {
	if m.offsets == nil || !m.ready {
		return
	}
	m.offsets.Update(0, float64(m.viewport.YOffset))
}

func (m PagerModel) statusBar() string {
	left := m.theme.Title.Render(m.title)
	class := m.theme.AccentBadge(m.theme.Preferences.ClassName())

	swatch := ""
	if m.metaColor != "" {
		swatch = lipgloss.NewStyle().Foreground(lipgloss.Color(m.metaColor)).Render("■ ") +
			m.theme.Subtle.Render(m.metaColor)
	}

	right := m.theme.MutedBadge(fmt.Sprintf("%s y=%.0f %3.f%%",
		styles.IconScroll, m.scroll.Y, m.viewport.ScrollPercent()*100))

	used := lipgloss.Width(left) + lipgloss.Width(class) + lipgloss.Width(swatch) + lipgloss.Width(right) + 3
	gap := strings.Repeat(" ", max(m.width-used-2, 1))

	return m.theme.StatusBar.Width(m.width).Render(
		lipgloss.JoinHorizontal(lipgloss.Center, left, " ", class, " ", swatch, gap, right),
	)
}

func renderContent(content string, markdown bool, style string, width int) (string, error) {
	if !markdown {
		return content, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(width-2, 20)),
	)
	if err != nil {
		return "", err
	}
	return r.Render(content)
}
