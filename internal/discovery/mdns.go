// Package discovery finds urwerk devices on the local network over mDNS.
package discovery

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/grandcat/zeroconf"
)

const (
	// DefaultService is the service type devices advertise their API under.
	DefaultService = "_http._tcp"

	// DefaultDomain is the mDNS domain.
	DefaultDomain = "local."

	// DefaultScanTimeout bounds a scan when the caller sets no timeout.
	DefaultScanTimeout = 5 * time.Second

	// DefaultPort is assumed when an entry advertises none.
	DefaultPort = 80
)

// Scanner browses for devices advertising Service.
type Scanner struct {
	Service string
	Domain  string
	Timeout time.Duration

	// HostPrefix, when set, keeps only hostnames starting with it.
	HostPrefix string
}

// NewScanner creates a scanner with default settings.
func NewScanner() *Scanner {
	return &Scanner{
		Service: DefaultService,
		Domain:  DefaultDomain,
		Timeout: DefaultScanTimeout,
	}
}

// Scan browses until the timeout or ctx ends and returns the devices found,
// sorted by hostname.
func (s *Scanner) Scan(ctx context.Context) ([]*Device, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()

	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	entries := make(chan *zeroconf.ServiceEntry)

	var (
		mu      sync.Mutex
		seen    = map[string]*Device{}
		drained = make(chan struct{})
	)

	go func() {
		defer close(drained)

		for entry := range entries {
			device := s.parseServiceEntry(entry)
			if device == nil {
				continue
			}

			mu.Lock()
			seen[device.Hostname+"|"+device.IP] = device
			mu.Unlock()
		}
	}()

	if err := resolver.Browse(ctx, s.service(), s.domain(), entries); err != nil {
		return nil, fmt.Errorf("failed to browse for mDNS services: %w", err)
	}

	<-ctx.Done()

	// zeroconf closes entries once the browse context is done.
	select {
	case <-drained:
	case <-time.After(time.Second):
	}

	mu.Lock()
	defer mu.Unlock()

	devices := make([]*Device, 0, len(seen))
	for _, device := range seen {
		devices = append(devices, device)
	}

	sortDevices(devices)

	return devices, nil
}

func sortDevices(devices []*Device) {
	sort.Slice(devices, func(i, j int) bool {
		if devices[i].Hostname != devices[j].Hostname {
			return devices[i].Hostname < devices[j].Hostname
		}

		return devices[i].IP < devices[j].IP
	})
}

// parseServiceEntry converts an entry to a Device, or nil when it has no
// usable address or is filtered out by HostPrefix.
func (s *Scanner) parseServiceEntry(entry *zeroconf.ServiceEntry) *Device {
	if entry == nil || entry.HostName == "" {
		return nil
	}

	if s.HostPrefix != "" && !strings.HasPrefix(entry.HostName, s.HostPrefix) {
		return nil
	}

	var ip string
	if len(entry.AddrIPv4) > 0 {
		ip = entry.AddrIPv4[0].String()
	} else if len(entry.AddrIPv6) > 0 {
		ip = entry.AddrIPv6[0].String()
	}

	if ip == "" {
		return nil
	}

	port := entry.Port
	if port == 0 {
		port = DefaultPort
	}

	metadata := make(map[string]string, len(entry.Text))
	for _, txt := range entry.Text {
		key, value, _ := strings.Cut(txt, "=")
		metadata[key] = value
	}

	return &Device{
		Instance:     entry.Instance,
		Hostname:     entry.HostName,
		IP:           ip,
		Port:         port,
		Metadata:     metadata,
		DiscoveredAt: time.Now(),
	}
}

func (s *Scanner) timeout() time.Duration {
	if s.Timeout <= 0 {
		return DefaultScanTimeout
	}

	return s.Timeout
}

func (s *Scanner) service() string {
	if s.Service == "" {
		return DefaultService
	}

	return s.Service
}

func (s *Scanner) domain() string {
	if s.Domain == "" {
		return DefaultDomain
	}

	return s.Domain
}
