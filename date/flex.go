package date

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// Flex is a Date decoded leniently from a JSON value.
//
// Decoding a Flex never fails: a value that is not a date is kept in Raw and
// Err reports why, so that one bad record does not reject a whole document.
// Strings go through ParseFlexible, numbers are Unix epoch milliseconds.
type Flex struct {
	Date
	Raw string // original JSON text, without quotes for strings
	Err error  // non nil when Raw is not a date
}

// FlexOf returns a valid Flex for d.
func FlexOf(d Date) Flex { return Flex{Date: d, Raw: d.String()} }

// ParseFlex parses str like ParseFlexible, recording any failure in the result.
func ParseFlex(str string) Flex {
	d, err := ParseFlexible(str)
	return Flex{Date: d, Raw: str, Err: err}
}

// Valid reports whether the value was parsed to a date.
func (f Flex) Valid() bool { return f.Err == nil && !f.Date.IsZero() }

func (f *Flex) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*f = Flex{Raw: "", Err: fmt.Errorf("%w: missing value", ErrUnparseable)}
	case data[0] == '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*f = ParseFlex(str)
	default:
		var ms json.Number
		if err := json.Unmarshal(data, &ms); err != nil {
			*f = Flex{Raw: string(data), Err: fmt.Errorf("%w: %s", ErrUnparseable, data)}
			return nil
		}
		n, ok := epochMilli(ms)
		if !ok {
			*f = Flex{Raw: string(data), Err: fmt.Errorf("%w: %s is not an epoch in milliseconds", ErrUnparseable, data)}
			return nil
		}
		*f = Flex{Date: FromUnixMilli(n), Raw: string(data)}
	}
	return nil
}

// epochMilli returns n as whole milliseconds, accepting floats such as 1.7112e12.
func epochMilli(n json.Number) (int64, bool) {
	if i, err := n.Int64(); err == nil {
		return i, true
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) > maxEpochMilli {
		return 0, false
	}
	return int64(f), true
}

// maxEpochMilli is the largest epoch a JavaScript Date accepts.
const maxEpochMilli = 8.64e15

// MarshalJSON writes the date when valid, the raw value otherwise.
func (f Flex) MarshalJSON() ([]byte, error) {
	if f.Valid() {
		return f.Date.MarshalJSON()
	}
	return json.Marshal(f.Raw)
}

var _ json.Marshaler = (*Flex)(nil)
var _ json.Unmarshaler = (*Flex)(nil)
