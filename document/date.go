package document

import (
	"fmt"
	"time"
)

// sieDateLayout is the compact date format used throughout SIE files.
const sieDateLayout = "20060102"

// Date represents a calendar date in the compact YYYYMMDD form SIE uses.
type Date struct {
	time.Time
}

// ParseDate parses a YYYYMMDD date string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(sieDateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q", s)
	}
	return Date{Time: t}, nil
}

// String formats the date back into YYYYMMDD form. The zero date renders
// as an empty string.
func (d Date) String() string {
	if d.Time.IsZero() {
		return ""
	}
	return d.Format(sieDateLayout)
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d.Time.IsZero()
}
