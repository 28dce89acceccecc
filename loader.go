package finboard

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// RootPath is the JSONPath of a document that is itself the array of records.
const RootPath = "$"

// RecordError reports a record left out of a decoded document.
type RecordError struct {
	Index int // position of the record in the selected array
	Err   error
}

func (e RecordError) Error() string { return fmt.Sprintf("record #%d: %v", e.Index, e.Err) }

func (e RecordError) Unwrap() error { return e.Err }

// DecodePrices reads a JSON document from r and returns the price records found at path.
//
// path is a JSONPath expression selecting the array of records, like "$.data"
// for a payload wrapped by an API. Empty path means RootPath.
//
// A record that cannot be decoded or is not valid does not reject the
// document: it is left out and reported in the returned RecordErrors.
// Only a document without an array at path fails.
func DecodePrices(r io.Reader, path string) ([]PriceRecord, []RecordError, error) {
	return decodeRecords[PriceRecord](r, path)
}

// DecodeDividends reads a JSON document from r and returns the dividend payments found at path.
//
// See DecodePrices for the path syntax and how invalid records are handled.
func DecodeDividends(r io.Reader, path string) ([]DividendPayment, []RecordError, error) {
	return decodeRecords[DividendPayment](r, path)
}

// LoadPrices is DecodePrices on a file, "-" reads stdin.
func LoadPrices(file, path string) ([]PriceRecord, []RecordError, error) {
	return loadFile(file, func(r io.Reader) ([]PriceRecord, []RecordError, error) { return DecodePrices(r, path) })
}

// LoadDividends is DecodeDividends on a file, "-" reads stdin.
func LoadDividends(file, path string) ([]DividendPayment, []RecordError, error) {
	return loadFile(file, func(r io.Reader) ([]DividendPayment, []RecordError, error) { return DecodeDividends(r, path) })
}

func loadFile[T any](file string, decode func(io.Reader) ([]T, []RecordError, error)) ([]T, []RecordError, error) {
	if file == "-" {
		records, skipped, err := decode(os.Stdin)
		if err != nil {
			return nil, nil, fmt.Errorf("reading stdin: %w", err)
		}
		return records, skipped, nil
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	records, skipped, err := decode(f)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %q: %w", file, err)
	}
	return records, skipped, nil
}

// decodeRecords decodes each element of the array at path, and keeps the valid ones.
func decodeRecords[T any](r io.Reader, path string) ([]T, []RecordError, error) {
	if path = strings.TrimSpace(path); path == "" {
		path = RootPath
	}
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}
	raw, err := selectArray(content, path)
	if err != nil {
		return nil, nil, err
	}
	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return nil, nil, fmt.Errorf("invalid records at %q: %w", path, err)
	}

	records := make([]T, 0, len(elements))
	var skipped []RecordError
	for i, element := range elements {
		var record T
		if err := json.Unmarshal(element, &record); err != nil {
			skipped = append(skipped, RecordError{Index: i, Err: err})
			continue
		}
		if err := validateRecord(&record); err != nil {
			skipped = append(skipped, RecordError{Index: i, Err: err})
			continue
		}
		records = append(records, record)
	}
	return records, skipped, nil
}

// selectArray returns the raw JSON array found at path in content.
func selectArray(content []byte, path string) (json.RawMessage, error) {
	if path == RootPath {
		if trimmed := bytes.TrimSpace(content); len(trimmed) == 0 || trimmed[0] != '[' {
			return nil, fmt.Errorf("document is not a JSON array, use a path to select one")
		}
		return content, nil
	}

	var jobj any
	dec := json.NewDecoder(bytes.NewReader(content))
	// numbers are kept verbatim, prices must not go through float64.
	dec.UseNumber()
	if err := dec.Decode(&jobj); err != nil {
		return nil, fmt.Errorf("invalid JSON document: %w", err)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating path %q: %w", path, err)
	}
	// a path on a single array may come back wrapped in a list of one answer.
	if jlist, ok := jval.([]any); ok && len(jlist) == 1 {
		if inner, ok := jlist[0].([]any); ok {
			jval = inner
		}
	}
	if _, ok := jval.([]any); !ok {
		return nil, fmt.Errorf("path %q does not select an array but %T", path, jval)
	}
	return json.Marshal(jval)
}
