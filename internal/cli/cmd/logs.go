package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bnema/lookout/internal/cli/styles"
	"github.com/bnema/lookout/internal/logging"
)

var (
	logsFollow    bool
	logsLines     int
	logsComponent string
	logsLevel     string
	logsClearAll  bool
)

const defaultLogsLines = 50

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View lookout logs",
	Long: `Show the end of the lookout log file.

File logging must be enabled with logging.enable_file_log. Lines can be
narrowed to one component (preference-observer, scroll-observer,
mediaquery, bridge, presentation, config) and to a minimum level.

Examples:
  lookout logs                        # Show the last 50 lines
  lookout logs -n 200 -l warn         # Last 200 warnings and errors
  lookout logs -f -c bridge           # Follow the WebSocket bridge`,
	RunE: runLogs,
}

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "follow log output in real-time")
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", defaultLogsLines, "number of lines to show")
	logsCmd.Flags().StringVarP(&logsComponent, "component", "c", "", "only show lines from this component")
	logsCmd.Flags().StringVarP(&logsLevel, "level", "l", "", "minimum level: trace, debug, info, warn, error")
}

func runLogs(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	filter, err := newLogFilter(logsComponent, logsLevel)
	if err != nil {
		return err
	}

	logDir, err := app.Config().LogDir()
	if err != nil {
		return err
	}
	logPath := filepath.Join(logDir, logging.LogFileName)

	if _, err := os.Stat(logPath); err != nil {
		if os.IsNotExist(err) {
			fmt.Println(app.Theme.Subtle.Render("No log file at " + logPath + ". Enable logging.enable_file_log first."))
			return nil
		}
		return fmt.Errorf("stat log file: %w", err)
	}

	view := logView{filter: filter, theme: app.Theme}
	if err := view.show(os.Stdout, logPath, logsLines); err != nil {
		return err
	}
	if !logsFollow {
		return nil
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return view.follow(ctx, os.Stdout, logPath)
}

// logEntry is the subset of a zerolog JSON line the viewer uses.
type logEntry struct {
	Level     string `json:"level"`
	Time      string `json:"time"`
	Message   string `json:"message"`
	Component string `json:"component"`
	Error     string `json:"error"`
}

// logFilter selects lines by component and minimum level. Lines that are not
// JSON only pass when no filter is set.
type logFilter struct {
	component string
	minLevel  zerolog.Level
	active    bool
}

func newLogFilter(component, level string) (logFilter, error) {
	f := logFilter{component: component, minLevel: zerolog.TraceLevel}
	if level != "" {
		l, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil || l == zerolog.NoLevel {
			return f, fmt.Errorf("unknown level %q", level)
		}
		f.minLevel = l
	}
	f.active = component != "" || level != ""
	return f, nil
}

func (f logFilter) match(entry logEntry, parsed bool) bool {
	if !f.active {
		return true
	}
	if !parsed {
		return false
	}
	if f.component != "" && entry.Component != f.component {
		return false
	}
	level, err := zerolog.ParseLevel(entry.Level)
	if err != nil {
		return false
	}
	return level >= f.minLevel
}

func parseLogLine(line string) (logEntry, bool) {
	var entry logEntry
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		return logEntry{}, false
	}
	return entry, true
}

// logView renders filtered log lines with the terminal theme.
type logView struct {
	filter logFilter
	theme  *styles.Theme
}

// emit writes line if it passes the filter.
func (v logView) emit(w io.Writer, line string) {
	entry, parsed := parseLogLine(line)
	if !v.filter.match(entry, parsed) {
		return
	}
	_, _ = fmt.Fprintln(w, v.render(line, entry, parsed))
}

// show writes the last n matching lines of path.
func (v logView) show(w io.Writer, path string, n int) (retErr error) {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("close log file: %w", closeErr)
		}
	}()

	if n <= 0 {
		return nil
	}
	ring := make([]string, 0, n)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if entry, parsed := parseLogLine(line); !v.filter.match(entry, parsed) {
			continue
		}
		if len(ring) == n {
			ring = append(ring[:0], ring[1:]...)
		}
		ring = append(ring, line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read log file: %w", err)
	}

	for _, line := range ring {
		entry, parsed := parseLogLine(line)
		_, _ = fmt.Fprintln(w, v.render(line, entry, parsed))
	}
	return nil
}

// follow prints lines appended to path until ctx is cancelled. When the
// rotator moves the file aside, the new file is read from its start.
func (v logView) follow(ctx context.Context, w io.Writer, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create log watcher: %w", err)
	}
	defer watcher.Close()

	// Rotation replaces the file, so the directory is watched.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch log directory: %w", err)
	}

	t, err := openTail(path, io.SeekEnd)
	if err != nil {
		return err
	}
	defer func() { t.close() }()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if err := t.drain(w, v); err != nil {
				return err
			}
			if event.Has(fsnotify.Create) {
				t.close()
				if t, err = openTail(path, io.SeekStart); err != nil {
					return err
				}
				if err := t.drain(w, v); err != nil {
					return err
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("log watcher: %w", err)
		}
	}
}

// tail reads complete lines from an open log file, keeping a partial last line.
type tail struct {
	file    *os.File
	reader  *bufio.Reader
	pending string
}

func openTail(path string, whence int) (*tail, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	if _, err := file.Seek(0, whence); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("seek log file: %w", err)
	}
	return &tail{file: file, reader: bufio.NewReader(file)}, nil
}

func (t *tail) drain(w io.Writer, v logView) error {
	for {
		chunk, err := t.reader.ReadString('\n')
		t.pending += chunk
		if strings.HasSuffix(t.pending, "\n") {
			v.emit(w, strings.TrimSuffix(t.pending, "\n"))
			t.pending = ""
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read log file: %w", err)
		}
	}
}

func (t *tail) close() {
	if t != nil && t.file != nil {
		_ = t.file.Close()
	}
}

var levelLabels = map[string]string{
	"trace": "TRC",
	"debug": "DBG",
	"info":  "INF",
	"warn":  "WRN",
	"error": "ERR",
	"fatal": "FTL",
	"panic": "PNC",
}

func (v logView) render(line string, entry logEntry, parsed bool) string {
	t := v.theme
	if !parsed {
		switch {
		case strings.Contains(line, "ERR"):
			return t.ErrorStyle.Render(line)
		case strings.Contains(line, "WRN"):
			return t.WarningStyle.Render(line)
		case strings.Contains(line, "DBG"), strings.Contains(line, "TRC"):
			return t.Subtle.Render(line)
		default:
			return line
		}
	}

	ts := entry.Time
	if parsedTime, err := time.Parse(time.RFC3339, entry.Time); err == nil {
		ts = parsedTime.Format(logging.ConsoleTimeFormat)
	}

	label, ok := levelLabels[entry.Level]
	if !ok {
		label = strings.ToUpper(entry.Level)
	}
	switch entry.Level {
	case "error", "fatal", "panic":
		label = t.ErrorStyle.Render(label)
	case "warn":
		label = t.WarningStyle.Render(label)
	case "info":
		label = t.Highlight.Render(label)
	default:
		label = t.Subtle.Render(label)
	}

	msg := entry.Message
	if entry.Component != "" {
		msg = t.Subtle.Render(entry.Component+":") + " " + msg
	}
	if entry.Error != "" {
		msg += " " + t.ErrorStyle.Render("error="+entry.Error)
	}
	return fmt.Sprintf("%s %s %s", t.Subtle.Render(ts), label, msg)
}

var logsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear rotated log files",
	Long: `Remove rotated log backups older than logging.max_age_days.

Use --all to remove every backup. The active log file is kept.`,
	RunE: runLogsClear,
}

func init() {
	logsCmd.AddCommand(logsClearCmd)
	logsClearCmd.Flags().BoolVar(&logsClearAll, "all", false, "remove all rotated logs")
}

// backupsToClear picks the backups `logs clear` removes.
func backupsToClear(backups []logging.Backup, maxAgeDays int, all bool, now time.Time) []logging.Backup {
	if all {
		return backups
	}
	return logging.Retention{MaxAge: time.Duration(maxAgeDays) * 24 * time.Hour}.Expired(backups, now)
}

func runLogsClear(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	t := app.Theme

	logDir, err := app.Config().LogDir()
	if err != nil {
		return err
	}
	backups, err := logging.ListBackups(logDir)
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Println(t.Subtle.Render("No logs to clear"))
		return nil
	}

	maxAge := app.Config().Logging.MaxAgeDays
	if maxAge <= 0 {
		maxAge = 7
	}

	var removed int
	for _, b := range backupsToClear(backups, maxAge, logsClearAll, time.Now()) {
		if err := os.Remove(b.Path); err != nil {
			fmt.Printf("%s %s: %v\n", t.ErrorStyle.Render(styles.IconX), b.Name, err)
			continue
		}
		fmt.Printf("%s %s (%s)\n", t.SuccessStyle.Render(styles.IconCheck), b.Name, formatSize(b.Size))
		removed++
	}

	if removed == 0 {
		fmt.Println(t.Subtle.Render(fmt.Sprintf("No logs older than %d days", maxAge)))
		return nil
	}
	fmt.Printf("\n%s\n", t.SuccessStyle.Render(fmt.Sprintf("Cleared %d log file(s)", removed)))
	return nil
}

// formatSize formats a byte count for display.
func formatSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}
