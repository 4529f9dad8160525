package net

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/mdns"
)

const serviceType = "_vectordisplay._tcp"

var ErrNoSource = errors.New("no command source found")

// Advertise announces a command source on the local network. Close the
// returned server to withdraw it.
func Advertise(port int, sceneID string) (*mdns.Server, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("could not get hostname: %w", err)
	}

	service, err := mdns.NewMDNSService(
		host,        // instance name
		serviceType, // _vectordisplay._tcp
		"",          // .local
		"",          // OS hostname
		port,
		nil, // auto-detect IPs
		[]string{"VectorDisplay", "scene=" + sceneID},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS service: %w", err)
	}

	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return nil, fmt.Errorf("failed to start mDNS server: %w", err)
	}
	logger.Infof("advertising %s on port %d", serviceType, port)
	return server, nil
}

// Browse returns the address of the first command source that answers
// within timeout.
func Browse(ctx context.Context, timeout time.Duration) (string, error) {
	entries := make(chan *mdns.ServiceEntry, 8)
	found := make(chan string, 1)
	drained := make(chan struct{})

	go func() {
		defer close(drained)
		for e := range entries {
			if e.AddrV4 == nil || e.Port == 0 {
				continue
			}
			select {
			case found <- fmt.Sprintf("%s:%d", e.AddrV4.String(), e.Port):
			default:
			}
		}
	}()

	params := mdns.DefaultParams(serviceType)
	params.Entries = entries
	params.Timeout = timeout
	params.DisableIPv6 = true

	queryErr := make(chan error, 1)
	go func() {
		queryErr <- mdns.Query(params)
		close(entries)
	}()

	select {
	case addr := <-found:
		logger.Infof("found command source at %s", addr)
		return addr, nil
	case err := <-queryErr:
		if err != nil {
			return "", fmt.Errorf("mDNS query failed: %w", err)
		}
		<-drained
		select {
		case addr := <-found:
			return addr, nil
		default:
			return "", ErrNoSource
		}
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
