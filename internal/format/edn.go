package format

import (
	"encoding/json"
	"slices"
	"strconv"
	"strings"
)

// MarshalEDN renders v as EDN. Values go through encoding/json first so
// struct tags decide key names; object keys become keywords. Only the
// JSON-shaped subset is produced: maps, vectors, strings, numbers,
// booleans and nil.
func MarshalEDN(v any, pretty bool) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var tree any
	dec := json.NewDecoder(strings.NewReader(string(raw)))
	dec.UseNumber()
	if err := dec.Decode(&tree); err != nil {
		return nil, err
	}
	p := ednPrinter{pretty: pretty}
	p.value(tree, 0)
	return []byte(p.sb.String()), nil
}

type ednPrinter struct {
	sb     strings.Builder
	pretty bool
}

func (p *ednPrinter) value(v any, depth int) {
	switch t := v.(type) {
	case nil:
		p.sb.WriteString("nil")
	case bool:
		p.sb.WriteString(strconv.FormatBool(t))
	case json.Number:
		p.sb.WriteString(t.String())
	case string:
		p.sb.WriteString(strconv.Quote(t))
	case []any:
		p.open('[', len(t) == 0)
		for i, x := range t {
			p.sep(i, depth+1)
			p.value(x, depth+1)
		}
		p.close(']', len(t) == 0, depth)
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		p.open('{', len(keys) == 0)
		for i, k := range keys {
			p.sep(i, depth+1)
			p.sb.WriteString(keyword(k))
			p.sb.WriteByte(' ')
			p.value(t[k], depth+1)
		}
		p.close('}', len(keys) == 0, depth)
	}
}

func (p *ednPrinter) open(b byte, empty bool) {
	p.sb.WriteByte(b)
	if p.pretty && !empty {
		p.sb.WriteByte('\n')
	}
}

func (p *ednPrinter) sep(i, depth int) {
	if i > 0 {
		if p.pretty {
			p.sb.WriteByte('\n')
		} else {
			p.sb.WriteByte(' ')
		}
	}
	if p.pretty {
		p.sb.WriteString(strings.Repeat("  ", depth))
	}
}

func (p *ednPrinter) close(b byte, empty bool, depth int) {
	if p.pretty && !empty {
		p.sb.WriteByte('\n')
		p.sb.WriteString(strings.Repeat("  ", depth))
	}
	p.sb.WriteByte(b)
}

// keyword maps a JSON key to an EDN keyword; camelCase becomes kebab-case.
func keyword(k string) string {
	var b strings.Builder
	b.WriteByte(':')
	for i, r := range strings.TrimSpace(k) {
		switch {
		case r == ' ' || r == '_':
			b.WriteByte('-')
		case r >= 'A' && r <= 'Z':
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
