package types

import (
	"strconv"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// MessageTS is a Slack message timestamp such as "1700000000.000100".
// Slack issues these as fixed-width strings, so both lexical and numeric
// ordering agree. Within a channel it is the message's natural key.
type MessageTS string

// Validate checks if the MessageTS has the "<seconds>.<fraction>" shape
func (ts MessageTS) Validate() error {
	sec, frac, ok := strings.Cut(string(ts), ".")
	if !ok || sec == "" || frac == "" {
		return goerr.New("message ts must be '<seconds>.<fraction>'", goerr.V("ts", ts))
	}
	if _, err := strconv.ParseInt(sec, 10, 64); err != nil {
		return goerr.Wrap(err, "invalid seconds part", goerr.V("ts", ts))
	}
	if _, err := strconv.ParseInt(frac, 10, 64); err != nil {
		return goerr.Wrap(err, "invalid fraction part", goerr.V("ts", ts))
	}
	return nil
}

// String returns the string representation of MessageTS
func (ts MessageTS) String() string {
	return string(ts)
}

// Time converts the timestamp to a time.Time. Returns the zero value
// when the timestamp cannot be parsed.
func (ts MessageTS) Time() time.Time {
	f, err := strconv.ParseFloat(string(ts), 64)
	if err != nil {
		return time.Time{}
	}
	sec := int64(f)
	nsec := int64((f - float64(sec)) * 1e9)
	return time.Unix(sec, nsec)
}

// After reports whether ts is newer than other. Empty timestamps sort first.
func (ts MessageTS) After(other MessageTS) bool {
	return string(ts) > string(other)
}
