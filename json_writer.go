package finboard

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// jsonObjectWriter helps construct a JSON object with a specific field order.
// Its zero value is ready to use.
type jsonObjectWriter struct {
	bytes.Buffer
	err error
}

// Append adds a new key-value pair to the JSON object. The value is marshaled
// to JSON using `json.Marshal`.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	valBytes, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal value for key %q: %w", key, err)
		return w
	}
	fmt.Fprintf(w, "%q:", key)
	w.Write(valBytes)
	w.WriteString(",")
	return w
}

// Optional appends a key-value pair only if value is not its type's zero
// value. Empty slices are omitted too.
func (w *jsonObjectWriter) Optional(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	v := reflect.ValueOf(value)
	if !v.IsValid() || v.IsZero() || (v.Kind() == reflect.Slice && v.Len() == 0) {
		return w
	}
	return w.Append(key, value)
}

// MarshalJSON finalizes the JSON object construction, wraps the content in
// braces, and returns the complete JSON byte slice.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	content := bytes.TrimSuffix(w.Bytes(), []byte(","))
	final := make([]byte, 0, len(content)+2)
	final = append(final, '{')
	final = append(final, content...)
	final = append(final, '}')
	return final, nil
}

// MarshalJSON encodes the window with its derived values, ready to be charted.
func (pw *PriceWindow) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("window", pw.Window).
		Append("reference", pw.Reference).
		Append("cutoff", pw.Cutoff).
		Append("points", pw.Points).
		Append("change", pw.Change()).
		Append("changePercent", pw.ChangePercent()).
		Append("high", pw.High()).
		Append("low", pw.Low()).
		Optional("unparsed", pw.Unparsed)
	return w.MarshalJSON()
}

// MarshalJSON encodes the calendar most recent year first, each year with its summary.
func (c *DividendCalendar) MarshalJSON() ([]byte, error) {
	type year struct {
		DividendSummary
		Months []MonthlyAggregate `json:"months"`
	}
	years := make([]year, 0, len(c.byYear))
	for _, y := range c.Years() {
		years = append(years, year{c.Summary(y), c.Months(y)})
	}
	var w jsonObjectWriter
	w.Append("totalIncome", c.total).
		Append("years", years).
		Optional("unparsed", c.Unparsed)
	return w.MarshalJSON()
}
