package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const (
	// LogFileName is the active log file; rotated backups append a timestamp.
	LogFileName = "lookout.log"
	logFilePerm = 0o600

	backupTimeFormat = "2006-01-02-15-04-05.000"
)

// Backup is a rotated log file.
type Backup struct {
	Name    string
	Path    string
	Size    int64
	ModTime time.Time
}

// ListBackups returns the rotated log files in dir, oldest first.
// A missing directory has no backups.
func ListBackups(dir string) ([]Backup, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read log directory: %w", err)
	}

	var backups []Backup
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), LogFileName+".") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Backup{
			Name:    entry.Name(),
			Path:    filepath.Join(dir, entry.Name()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].ModTime.Before(backups[j].ModTime)
	})
	return backups, nil
}

// Retention bounds the rotated backups kept. A zero field does not limit.
type Retention struct {
	MaxBackups int
	MaxAge     time.Duration
}

// Expired returns the backups outside the retention at now. backups must be
// oldest first, as ListBackups returns them.
func (r Retention) Expired(backups []Backup, now time.Time) []Backup {
	var expired, kept []Backup
	for _, b := range backups {
		if r.MaxAge > 0 && now.Sub(b.ModTime) > r.MaxAge {
			expired = append(expired, b)
			continue
		}
		kept = append(kept, b)
	}
	if r.MaxBackups > 0 && len(kept) > r.MaxBackups {
		expired = append(expired, kept[:len(kept)-r.MaxBackups]...)
	}
	return expired
}

// LogRotator is an io.Writer over lookout.log that moves the file aside once
// it would grow past maxSize, then prunes backups by retention.
type LogRotator struct {
	mu        sync.Mutex
	dir       string
	maxSize   int64
	retention Retention
	file      *os.File
	size      int64
	now       func() time.Time
}

// NewLogRotator opens (or creates) lookout.log inside dir.
func NewLogRotator(dir string, maxSizeMB, maxBackups, maxAgeDays int) (*LogRotator, error) {
	r := &LogRotator{
		dir:     dir,
		maxSize: int64(maxSizeMB) << 20,
		retention: Retention{
			MaxBackups: maxBackups,
			MaxAge:     time.Duration(maxAgeDays) * 24 * time.Hour,
		},
		now: time.Now,
	}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *LogRotator) path() string {
	return filepath.Join(r.dir, LogFileName)
}

func (r *LogRotator) open() error {
	file, err := os.OpenFile(r.path(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("stat log file: %w", err)
	}
	r.file, r.size = file, info.Size()
	return nil
}

// Write implements io.Writer. A single write is never split across files.
func (r *LogRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}
	if r.maxSize > 0 && r.size > 0 && r.size+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

func (r *LogRotator) rotate() error {
	_ = r.file.Close()
	r.file = nil

	backup := filepath.Join(r.dir, LogFileName+"."+r.now().Format(backupTimeFormat))
	if err := os.Rename(r.path(), backup); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	r.prune()
	return r.open()
}

// prune is best effort; whatever fails to go is retried on the next rotation.
func (r *LogRotator) prune() {
	backups, err := ListBackups(r.dir)
	if err != nil {
		return
	}
	for _, b := range r.retention.Expired(backups, r.now()) {
		_ = os.Remove(b.Path)
	}
}

// Close closes the current log file.
func (r *LogRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
