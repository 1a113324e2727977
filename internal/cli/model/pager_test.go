package model

import (
	"context"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/lookout/internal/cli/styles"
	"github.com/bnema/lookout/internal/domain/entity"
)

type recordingOffsets struct {
	got []entity.WindowScroll
}

func (r *recordingOffsets) Update(x, y float64) {
	r.got = append(r.got, entity.WindowScroll{X: x, Y: y})
}

func (r *recordingOffsets) last() entity.WindowScroll {
	if len(r.got) == 0 {
		return entity.WindowScroll{}
	}
	return r.got[len(r.got)-1]
}

func longText(lines int) string {
	var sb strings.Builder
	for i := 0; i < lines; i++ {
		sb.WriteString("line ")
		sb.WriteString(strings.Repeat("x", i%7))
		sb.WriteString("\n")
	}
	return sb.String()
}

func sized(t *testing.T, m PagerModel, w, h int) PagerModel {
	t.Helper()
	next, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return next.(PagerModel)
}

func send(m PagerModel, msg tea.Msg) PagerModel {
	next, _ := m.Update(msg)
	return next.(PagerModel)
}

func TestPagerModel_ReportsOffsets(t *testing.T) {
	offsets := &recordingOffsets{}
	theme := styles.NewTheme(entity.DefaultPreferences())
	m := NewPagerModel(context.Background(), theme, "notes.txt", longText(200), WithOffsetSink(offsets))

	assert.Equal(t, "\n  Loading...", m.View())

	m = sized(t, m, 80, 20)
	require.NotEmpty(t, offsets.got)
	assert.Equal(t, entity.WindowScroll{}, offsets.last())

	m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	assert.Equal(t, 1.0, offsets.last().Y)

	m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	assert.Greater(t, offsets.last().Y, 100.0)

	m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	assert.Equal(t, 0.0, offsets.last().Y)
	assert.Contains(t, m.View(), "notes.txt")
}

func TestPagerModel_ThemeFollowsClass(t *testing.T) {
	theme := styles.NewTheme(entity.DefaultPreferences())
	m := sized(t, NewPagerModel(context.Background(), theme, "README.md", "# Title\n\nbody"), 80, 20)

	m = send(m, ThemeClassMsg{Class: "dark contrast-high"})
	assert.Equal(t, entity.SystemPreferences{Theme: entity.ThemeDark, Contrast: entity.ContrastHigh}, m.Theme().Preferences)
	assert.NoError(t, m.Err())
	assert.Contains(t, m.View(), "dark contrast-high")

	m = send(m, ThemeClassMsg{Class: "sepia"})
	assert.Error(t, m.Err())
	assert.Equal(t, entity.ThemeDark, m.Theme().Preferences.Theme)
}

func TestPagerModel_StatusMessages(t *testing.T) {
	theme := styles.NewTheme(entity.DefaultPreferences())
	m := sized(t, NewPagerModel(context.Background(), theme, "a.txt", "hello"), 80, 10)

	m = send(m, MetaColorMsg{Color: "#0a0a0b"})
	m = send(m, ScrollMsg{Scroll: entity.WindowScroll{Y: 42}})

	assert.Equal(t, "#0a0a0b", m.MetaColor())
	assert.Equal(t, 42.0, m.Scroll().Y)
	assert.Contains(t, m.View(), "y=42")
	assert.Contains(t, m.View(), "#0a0a0b")
}

func TestPagerModel_HelpAndQuit(t *testing.T) {
	theme := styles.NewTheme(entity.DefaultPreferences())
	m := sized(t, NewPagerModel(context.Background(), theme, "a.txt", "hello"), 80, 10)

	m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	assert.Contains(t, m.View(), "page down")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestPagerModel_InitRunsMount(t *testing.T) {
	mounted := false
	theme := styles.NewTheme(entity.DefaultPreferences())
	m := NewPagerModel(context.Background(), theme, "a.txt", "", WithMount(func() tea.Msg {
		mounted = true
		return nil
	}))

	cmd := m.Init()
	require.NotNil(t, cmd)
	cmd()
	assert.True(t, mounted)
}

type recordingSender struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (r *recordingSender) Send(msg tea.Msg) {
	r.mu.Lock()
	r.msgs = append(r.msgs, msg)
	r.mu.Unlock()
}

func TestTeaSink(t *testing.T) {
	sender := &recordingSender{}
	sink := NewTeaSink(sender)

	require.NoError(t, sink.ApplyThemeClass("dark"))
	require.NoError(t, sink.SetMetaColor("#000000"))
	assert.Error(t, sink.ApplyThemeClass("neon"))

	assert.Equal(t, []tea.Msg{ThemeClassMsg{Class: "dark"}, MetaColorMsg{Color: "#000000"}}, sender.msgs)
}
