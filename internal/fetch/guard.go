package fetch

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"sync"
	"syscall"
	"time"
)

// ErrForbiddenDestination is returned when a public-only fetch would connect
// to an address that is not globally routable.
var ErrForbiddenDestination = errors.New("destination address is not public")

// PublicAddr reports whether addr is a globally routable unicast address.
func PublicAddr(addr netip.Addr) bool {
	addr = addr.Unmap()
	return addr.IsValid() &&
		addr.IsGlobalUnicast() &&
		!addr.IsPrivate() &&
		!addr.IsLoopback() &&
		!addr.IsLinkLocalUnicast() &&
		!sharedAddressSpace.Contains(addr)
}

// 100.64.0.0/10 is carrier-grade NAT space and never reachable from outside.
var sharedAddressSpace = netip.MustParsePrefix("100.64.0.0/10")

// publicOnlyControl runs after DNS resolution, so it sees the address
// actually dialed, including every redirect hop.
func publicOnlyControl(_, address string, _ syscall.RawConn) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrForbiddenDestination, address)
	}
	addr, err := netip.ParseAddr(host)
	if err != nil || !PublicAddr(addr) {
		return fmt.Errorf("%w: %s", ErrForbiddenDestination, host)
	}
	return nil
}

var publicTransport = sync.OnceValue(func() *http.Transport {
	dialer := &net.Dialer{
		Timeout:   10 * time.Second,
		KeepAlive: 30 * time.Second,
		Control:   publicOnlyControl,
	}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = dialer.DialContext
	// a proxy would be dialed instead of the posting host
	transport.Proxy = nil
	return transport
})

// PublicOnlyClient returns an HTTP client that refuses to connect to
// non-public addresses. Connections are pooled across clients.
func PublicOnlyClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout, Transport: publicTransport()}
}
