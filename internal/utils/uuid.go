package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrMalformedInstrumentURL is returned when an instrument URL does not carry
// a UUID at the expected path position.
var ErrMalformedInstrumentURL = errors.New("malformed instrument url")

// instrumentIDSegment is the index of the UUID in an instrument URL split on
// "/": https: | "" | host | instruments | <uuid> | "".
const instrumentIDSegment = 4

// InstrumentIDFromURL extracts the instrument UUID embedded in an
// instrument resource URL such as
// "https://api.robinhood.com/instruments/450dfc6d-5510-4d40-abfb-f633b7d9be3e/".
func InstrumentIDFromURL(instrumentURL string) (uuid.UUID, error) {
	parts := strings.Split(instrumentURL, "/")
	if len(parts) <= instrumentIDSegment {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrMalformedInstrumentURL, instrumentURL)
	}

	id, err := uuid.Parse(parts[instrumentIDSegment])
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q: %v", ErrMalformedInstrumentURL, instrumentURL, err)
	}

	return id, nil
}
