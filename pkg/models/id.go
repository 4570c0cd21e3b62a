package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NewID returns a prefixed identifier such as "ALERT-9f8b2c1d". The
// suffix is the first group of a random UUID, which keeps ids short
// enough for console boards while staying collision-safe for a
// process-lifetime store.
func NewID(prefix string) string {
	u := uuid.NewString()
	return fmt.Sprintf("%s-%s", strings.ToUpper(prefix), u[:strings.Index(u, "-")])
}
