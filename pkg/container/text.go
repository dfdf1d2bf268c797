package container

import (
	"errors"
	"fmt"
	"strings"

	"github.com/evolib/evo/pkg/convert"
	"github.com/tidwall/gjson"
)

var (
	ErrInvalidJSON = errors.New("invalid JSON")
	ErrNotObject   = errors.New("JSON document is not an object")
)

// AddSplit parses text of the form "k1=v1,k2=v2" into m and returns
// the number of added items, existing keys are overwritten.
// Items are separated by itemDelim, keys from values by kvDelim
// (see Split).
//
// Items without kvDelim and values that can't be converted to V
// are added with the zero value.
// Items with keys that can't be converted to K are skipped.
func AddSplit[K, V any](
	m Map[K, V],
	text, itemDelim, kvDelim string,
) (count int) {
	Split(text, itemDelim, kvDelim, func(ks, vs string, hasValue bool) bool {
		k, err := convert.String[K](ks)
		if err != nil {
			return false
		}
		var v V
		if hasValue {
			v, _ = convert.String[V](vs)
		}
		m.Add(k, v, true)
		count++
		return false
	})
	return count
}

// Split calls fn for every item of text separated by itemDelim
// passing the key and the value separated by the first kvDelim.
// hasValue is false if the item contains no kvDelim.
// Empty items are skipped. The whole text is a single item
// if itemDelim is empty, an empty kvDelim makes every item a key.
// Returns immediately if fn returns true.
func Split(
	text, itemDelim, kvDelim string,
	fn func(key, value string, hasValue bool) (stop bool),
) {
	for len(text) > 0 {
		var item string
		if i := strings.Index(text, itemDelim); i < 0 || itemDelim == "" {
			item, text = text, ""
		} else {
			item, text = text[:i], text[i+len(itemDelim):]
		}
		if item == "" {
			continue
		}

		k, v, ok := strings.Cut(item, kvDelim)
		if kvDelim == "" {
			k, v, ok = item, "", false
		}
		if fn(k, v, ok) {
			return
		}
	}
}

// AddJSON adds the members of the JSON object data to m
// and returns the number of added members, existing keys are overwritten.
//
// Member values that can't be converted to V are added with the zero
// value. Values other than strings are converted from their JSON text.
func AddJSON[K, V any](m Map[K, V], data []byte) (count int, err error) {
	if !gjson.ValidBytes(data) {
		return 0, ErrInvalidJSON
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return 0, ErrNotObject
	}
	doc.ForEach(func(key, value gjson.Result) bool {
		var k K
		if k, err = convert.String[K](key.String()); err != nil {
			err = fmt.Errorf("converting key %q: %w", key.String(), err)
			return false
		}
		var v V
		if value.Type != gjson.Null {
			v, _ = convert.String[V](jsonValue(value))
		}
		m.Add(k, v, true)
		count++
		return true
	})
	return count, err
}

// jsonValue returns the text of r. Only strings are unquoted.
func jsonValue(r gjson.Result) string {
	if r.Type == gjson.String {
		return r.Str
	}
	return r.Raw
}
