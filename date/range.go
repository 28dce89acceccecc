package date

import (
	"fmt"
	"time"
)

// Range represents a range of dates.
type Range struct{ From, To Date }

// Days returns the number of days in the range, boundaries included.
func (r Range) Days() int {
	return int(r.To.time().Sub(r.From.time())/(24*time.Hour)) + 1
}

func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
