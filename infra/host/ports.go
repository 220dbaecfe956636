package host

import (
	"net"
	"strconv"

	"github.com/pkg/errors"
)

// ValidatePort returns error if port number is outside the TCP range
func ValidatePort(port int) error {
	if port < 1 || port > 65535 {
		return errors.Errorf("port %d is invalid, it must be in range 1-65535", port)
	}
	return nil
}

// PortInUse returns true if TCP port can't be bound on all the interfaces of the host
func PortInUse(port int) bool {
	l, err := net.Listen("tcp", net.JoinHostPort("0.0.0.0", strconv.Itoa(port)))
	if err != nil {
		return true
	}
	_ = l.Close()
	return false
}
