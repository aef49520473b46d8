// Package nav defines the parameters screens hand to each other when navigating.
//
// Params is the only channel between screens: a screen is constructed from the
// Params it was navigated with and never holds a reference to another screen's
// state. The DTOs in this package encode to and decode from Params.
package nav

import (
	"maps"
	"sort"
	"strings"
)

type Route string

const (
	RouteAuth    Route = "auth"
	RouteListing Route = "listing"
	RouteCreate  Route = "create-post"
	RouteDetail  Route = "post-detail"
)

const (
	KeyID           = "id"
	KeyTitle        = "title"
	KeyDescription  = "description"
	KeyDate         = "date"
	KeyImage        = "image"
	KeyType         = "type"
	KeyComments     = "comments"
	KeyItemType     = "itemType"
	KeyRefresh      = "refresh"
	KeyUsername     = "username"
	KeyProfileImage = "profileImage"
)

// Params are plain text fields, the same shape a URL query would have.
type Params map[string]string

func (p Params) Get(key string) string {
	if p == nil {
		return ""
	}
	return p[key]
}

func (p Params) Clone() Params {
	if p == nil {
		return Params{}
	}
	return maps.Clone(p)
}

func (p Params) Equal(o Params) bool {
	if len(p) != len(o) {
		return false
	}
	for k, v := range p {
		if ov, ok := o[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// Merge returns a copy of p with the non-empty values of o layered on top.
func (p Params) Merge(o Params) Params {
	out := p.Clone()
	for k, v := range o {
		if strings.TrimSpace(v) == "" {
			continue
		}
		out[k] = v
	}
	return out
}

// String renders params in key order (log-friendly, stable).
func (p Params) String() string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k)
		b.WriteByte('=')
		v := p[k]
		if r := []rune(v); len(r) > 40 {
			v = string(r[:40]) + "…"
		}
		b.WriteString(v)
	}
	return b.String()
}
