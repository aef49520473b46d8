package listing

import (
	"fmt"
	"strconv"
	"strings"

	"lostfound-cli/internal/model"
)

// Ref names one item across both boards, e.g. "lost-2" or "found-1".
func Ref(cat model.Category, id int) string {
	return string(cat) + "-" + strconv.Itoa(id)
}

// ParseRef is the inverse of Ref. Unlike ParseCategory it rejects unknown
// category prefixes.
func ParseRef(s string) (model.Category, int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	prefix, num, ok := strings.Cut(s, "-")
	if !ok {
		return "", 0, fmt.Errorf("invalid item ref %q (want lost-N or found-N)", s)
	}
	var cat model.Category
	switch model.Category(prefix) {
	case model.CategoryLost, model.CategoryFound:
		cat = model.Category(prefix)
	default:
		return "", 0, fmt.Errorf("invalid item ref %q (want lost-N or found-N)", s)
	}
	id, err := strconv.Atoi(num)
	if err != nil || id <= 0 {
		return "", 0, fmt.Errorf("invalid item ref %q (want lost-N or found-N)", s)
	}
	return cat, id, nil
}
