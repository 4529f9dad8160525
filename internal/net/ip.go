package net

import (
	"fmt"
	"net"
	"strings"
)

// URLScheme prefixes share links handed to displays.
const URLScheme = "vectordisplay://"

// DefaultPort is where the command source listens unless told otherwise.
const DefaultPort = 8888

// GetOutgoingIP finds the preferred local IP address for the source to share.
func GetOutgoingIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		// no route out, fall back to checking local interfaces
		return getLocalIPFallback()
	}
	defer conn.Close()

	localAddr := conn.LocalAddr().(*net.UDPAddr)
	return localAddr.IP.String()
}

// getLocalIPFallback is used on networks without internet access.
func getLocalIPFallback() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		logger.Warningf("could not list interface addresses: %v", err)
		return "127.0.0.1"
	}
	for _, address := range addrs {
		if ipnet, ok := address.(*net.IPNet); ok && !ipnet.IP.IsLoopback() && ipnet.IP.To4() != nil {
			return ipnet.IP.String()
		}
	}
	logger.Warning("no suitable local IP found, share link may not work")
	return "127.0.0.1"
}

// ShareLink is the link a display can be started with.
func ShareLink(host string, port int) string {
	return fmt.Sprintf("%s%s:%d", URLScheme, host, port)
}

// ParseLink turns a share link or a bare host:port into a dial address.
// An empty link yields an empty address.
func ParseLink(link string) (string, error) {
	address := strings.TrimPrefix(link, URLScheme)
	address = strings.TrimSuffix(address, "/")
	if address == "" {
		return "", nil
	}
	if _, _, err := net.SplitHostPort(address); err != nil {
		return "", fmt.Errorf("invalid display link %q: %w", link, err)
	}
	return address, nil
}
