package botvac

import (
	"fmt"
	"strings"
)

// HTTPStatusError is returned when Nucleo answers with a non-2xx status.
type HTTPStatusError struct {
	Status int
	Body   string
}

func (e HTTPStatusError) Error() string {
	return fmt.Sprintf("nucleo api error %d: %s", e.Status, strings.TrimSpace(e.Body))
}

// UnsupportedServiceVersionError is returned when the robot advertises a
// service version this library does not know how to talk to. It is raised
// before any request is sent.
type UnsupportedServiceVersionError struct {
	Service string
	Version string
}

func (e UnsupportedServiceVersionError) Error() string {
	return fmt.Sprintf("version %q of service %s is not known", e.Version, e.Service)
}
