package serviceutil

import (
	"fmt"
	"net"
	"os"
	"sync"
)

var (
	once    sync.Once
	address string
)

// InstanceAddress returns a "hostname/ip:port" string identifying this service
// instance. Each service stamps it on the payloads it serves so callers can
// see which instance produced which part of a composed response. The value is
// computed once and cached.
func InstanceAddress(port int) string {
	once.Do(func() {
		host, err := os.Hostname()
		if err != nil {
			host = "unknown"
		}
		address = fmt.Sprintf("%s/%s:%d", host, localIP(), port)
	})
	return address
}

// localIP returns the first non-loopback IPv4 address of this host, or
// "127.0.0.1" if none is found.
func localIP() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "127.0.0.1"
	}
	for _, addr := range addrs {
		if ipNet, ok := addr.(*net.IPNet); ok && !ipNet.IP.IsLoopback() {
			if ip4 := ipNet.IP.To4(); ip4 != nil {
				return ip4.String()
			}
		}
	}
	return "127.0.0.1"
}
