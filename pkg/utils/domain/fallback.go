package domain

import (
	"github.com/tidwall/gjson"
)

// Source yields a value and whether it was present.
type Source[T any] func() (T, bool)

// FirstPresent tries sources in order and returns the first present value,
// or sentinel when none is present.
func FirstPresent[T any](sentinel T, sources ...Source[T]) T {
	for _, source := range sources {
		if v, ok := source(); ok {
			return v
		}
	}
	return sentinel
}

// field reads a non-empty JSON string at path. Empty strings and values of
// any other type count as absent.
func field(doc gjson.Result, path string) Source[string] {
	return func() (string, bool) {
		v := doc.Get(path)
		if v.Type != gjson.String || v.Str == "" {
			return "", false
		}
		return v.Str, true
	}
}

// object reads a JSON object at path.
func object(doc gjson.Result, path string) Source[gjson.Result] {
	return func() (gjson.Result, bool) {
		v := doc.Get(path)
		return v, v.IsObject()
	}
}

// list reads a JSON array at path.
func list(doc gjson.Result, path string) Source[gjson.Result] {
	return func() (gjson.Result, bool) {
		v := doc.Get(path)
		return v, v.IsArray()
	}
}
