package colorscheme

import (
	"context"
	"sync"

	"github.com/rymdport/portal/settings"

	"github.com/bnema/lookout/internal/domain/entity"
)

const (
	detectorNamePortal = "xdg-desktop-portal"
	priorityPortal     = 100

	// AppearanceNamespace is the portal settings namespace for appearance keys.
	AppearanceNamespace = "org.freedesktop.appearance"
	KeyColorScheme      = "color-scheme"
	KeyContrast         = "contrast"
)

// PortalSettings is the subset of the XDG settings portal lookout uses.
type PortalSettings interface {
	// ReadOne reads a single setting.
	ReadOne(namespace, key string) (any, error)
	// Subscribe calls fn for every SettingChanged signal. It blocks until
	// ctx is done or the subscription fails.
	Subscribe(ctx context.Context, fn func(namespace, key string, value any)) error
}

// SystemPortal talks to the session bus through rymdport/portal.
//
// The bus listener cannot be removed once installed, so a SystemPortal
// installs it once and fans SettingChanged signals out to the current
// subscribers. Use DefaultSystemPortal to share that listener process-wide.
type SystemPortal struct {
	listen func(func(settings.Changed)) error

	start  sync.Once
	failed chan struct{}

	mu   sync.Mutex
	err  error
	next uint64
	subs map[uint64]func(namespace, key string, value any)
}

var defaultSystemPortal = NewSystemPortal(settings.OnSignalSettingChanged)

// DefaultSystemPortal returns the process-wide portal client.
func DefaultSystemPortal() *SystemPortal {
	return defaultSystemPortal
}

// NewSystemPortal creates a portal client whose change signals come from
// listen, normally settings.OnSignalSettingChanged.
func NewSystemPortal(listen func(func(settings.Changed)) error) *SystemPortal {
	return &SystemPortal{
		listen: listen,
		failed: make(chan struct{}),
		subs:   make(map[uint64]func(namespace, key string, value any)),
	}
}

// ReadOne implements PortalSettings.
func (*SystemPortal) ReadOne(namespace, key string) (any, error) {
	return settings.ReadOne(namespace, key)
}

// Subscribe implements PortalSettings. The first call installs the bus
// listener; fn stops receiving signals once ctx is done.
func (p *SystemPortal) Subscribe(ctx context.Context, fn func(namespace, key string, value any)) error {
	p.start.Do(func() { go p.run() })

	p.mu.Lock()
	if p.err != nil {
		err := p.err
		p.mu.Unlock()
		return err
	}
	id := p.next
	p.next++
	p.subs[id] = fn
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		delete(p.subs, id)
		p.mu.Unlock()
	}()

	select {
	case <-ctx.Done():
		return nil
	case <-p.failed:
		p.mu.Lock()
		defer p.mu.Unlock()
		return p.err
	}
}

func (p *SystemPortal) run() {
	if err := p.listen(p.dispatch); err != nil {
		p.mu.Lock()
		p.err = err
		p.mu.Unlock()
		close(p.failed)
	}
}

func (p *SystemPortal) dispatch(changed settings.Changed) {
	p.mu.Lock()
	subs := make([]func(namespace, key string, value any), 0, len(p.subs))
	for _, fn := range p.subs {
		subs = append(subs, fn)
	}
	p.mu.Unlock()

	for _, fn := range subs {
		fn(changed.Namespace, changed.Key, changed.Value)
	}
}

func (p *SystemPortal) subscribers() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.subs)
}

// PortalDetector reads org.freedesktop.appearance from the settings portal.
// The portal knows the color scheme and a single "higher contrast" level,
// which maps to the more-contrast signal.
type PortalDetector struct {
	kind   entity.SignalKind
	portal PortalSettings

	probe     sync.Once
	available bool
}

// NewPortalDetector creates a portal-based detector for kind.
func NewPortalDetector(kind entity.SignalKind, portal PortalSettings) *PortalDetector {
	return &PortalDetector{kind: kind, portal: portal}
}

// Name implements port.SignalDetector.
func (*PortalDetector) Name() string {
	return detectorNamePortal
}

// Priority implements port.SignalDetector.
func (*PortalDetector) Priority() int {
	return priorityPortal
}

// Available implements port.SignalDetector.
// The first call probes the portal; the answer is kept for the process lifetime.
func (d *PortalDetector) Available() bool {
	key, ok := portalKey(d.kind)
	if !ok || d.portal == nil {
		return false
	}
	d.probe.Do(func() {
		_, err := d.portal.ReadOne(AppearanceNamespace, key)
		d.available = err == nil
	})
	return d.available
}

// Detect implements port.SignalDetector.
func (d *PortalDetector) Detect() (matches, ok bool) {
	key, supported := portalKey(d.kind)
	if !supported || d.portal == nil {
		return false, false
	}

	value, err := d.portal.ReadOne(AppearanceNamespace, key)
	if err != nil {
		return false, false
	}
	return DecodeAppearance(key, value)
}

// DecodeAppearance interprets a raw org.freedesktop.appearance value.
//   - color-scheme: 0 no preference, 1 prefer dark, 2 prefer light
//   - contrast: 0 no preference, 1 higher contrast
//
// "No preference" for the color scheme is reported as undetected so that
// lower-priority detectors get a chance.
func DecodeAppearance(key string, value any) (matches, ok bool) {
	n, isNumber := toUint32(value)
	if !isNumber {
		return false, false
	}

	switch key {
	case KeyColorScheme:
		switch n {
		case 1:
			return true, true
		case 2:
			return false, true
		default:
			return false, false
		}
	case KeyContrast:
		// Unknown values are treated as no preference.
		return n == 1, true
	default:
		return false, false
	}
}

// SignalForPortalKey returns the signal a changed appearance key affects.
func SignalForPortalKey(namespace, key string) (entity.SignalKind, bool) {
	if namespace != AppearanceNamespace {
		return "", false
	}
	switch key {
	case KeyColorScheme:
		return entity.SignalDark, true
	case KeyContrast:
		return entity.SignalMediumContrast, true
	default:
		return "", false
	}
}

func portalKey(kind entity.SignalKind) (string, bool) {
	switch kind {
	case entity.SignalDark:
		return KeyColorScheme, true
	case entity.SignalMediumContrast:
		return KeyContrast, true
	default:
		return "", false
	}
}

func toUint32(value any) (uint32, bool) {
	// dbus variants expose their payload through Value().
	if v, ok := value.(interface{ Value() any }); ok {
		value = v.Value()
	}

	switch v := value.(type) {
	case uint32:
		return v, true
	case uint8:
		return uint32(v), true
	case uint16:
		return uint32(v), true
	case uint64:
		return uint32(v), true
	case int32:
		if v < 0 {
			return 0, false
		}
		return uint32(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint32(v), true
	default:
		return 0, false
	}
}
