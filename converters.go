package cliargs

import (
	"fmt"
	"net"

	"github.com/pkg/errors"
)

// Converters for use with OptionAs and ArgumentAs, for types whose standard parse functions don't
// already have the right signature. strconv.Atoi, strconv.ParseBool, time.ParseDuration and
// url.Parse can be passed directly.

// TCPAddr resolves s, which must have a port.
func TCPAddr(s string) (*net.TCPAddr, error) {
	return net.ResolveTCPAddr("tcp", s)
}

func IP(s string) (net.IP, error) {
	ip := net.ParseIP(s)
	if ip == nil {
		return nil, errors.Errorf("bad IP address %q", s)
	}
	return ip, nil
}

// Scan is the fallback converter, using fmt.Sscan. The whole of s must be consumed.
func Scan[T any](s string) (ret T, err error) {
	var extra string
	n, err := fmt.Sscan(s, &ret, &extra)
	switch n {
	case 0:
		err = errors.Wrapf(err, "error parsing %q", s)
	case 1:
		err = nil
	default:
		err = errors.Errorf("error parsing %q: unexpected %q", s, extra)
	}
	return
}
