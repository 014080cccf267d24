package postgres

import (
	"strconv"
	"strings"
	"time"

	"github.com/cybergrind/slack-assistant/pkg/domain/model"
)

// nullableTime maps the zero time to SQL NULL
func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// timeOrZero maps SQL NULL back to the zero time
func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

// extraParam normalizes an Extra map for jsonb encoding
func extraParam(e model.Extra) map[string]any {
	if e == nil {
		return map[string]any{}
	}
	return map[string]any(e)
}

// vectorLiteral renders a float32 slice in pgvector's input syntax,
// e.g. "[0.1,0.2,0.3]", for use with a ::vector cast
func vectorLiteral(v []float32) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, f := range v {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(float64(f), 'f', -1, 32))
	}
	b.WriteByte(']')
	return b.String()
}
