// Package format renders command output as JSON or EDN.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

type Format string

const (
	JSON Format = "json"
	EDN  Format = "edn"
)

// Formats lists the accepted --format values.
var Formats = []Format{JSON, EDN}

// Parse accepts "", "json" and "edn" (case-insensitive). Empty means JSON.
func Parse(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", JSON:
		return JSON, nil
	case EDN:
		return EDN, nil
	default:
		return "", fmt.Errorf("unknown format %q (want json or edn)", s)
	}
}

// Write encodes v to w followed by a newline.
func Write(w io.Writer, v any, f Format, pretty bool) error {
	var (
		b   []byte
		err error
	)
	switch f {
	case "", JSON:
		b, err = marshalJSON(v, pretty)
	case EDN:
		b, err = MarshalEDN(v, pretty)
	default:
		return fmt.Errorf("unknown format %q", f)
	}
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

func marshalJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
