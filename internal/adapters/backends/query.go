package backends

import (
	"net/url"
	"strings"
)

// query is an insertion-ordered query string. url.Values sorts keys, which
// would reorder the provider parameters.
type query []struct{ key, value string }

func (q *query) add(key, value string) {
	*q = append(*q, struct{ key, value string }{key, value})
}

func (q query) encode() string {
	parts := make([]string, 0, len(q))
	for _, kv := range q {
		parts = append(parts, url.QueryEscape(kv.key)+"="+url.QueryEscape(kv.value))
	}
	return strings.Join(parts, "&")
}
