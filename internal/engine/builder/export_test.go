package builder

import "time"

// SetNow replaces the clock used for the t filename token.
func SetNow(b *Builder, now func() time.Time) {
	b.now = now
}
