// Package jsonpath reads experiment counts and metric values out of JSON
// exports using a small JSONPath subset ($.a.b, $.a[0].b, $['a']).
package jsonpath

import (
	"fmt"
	"math"
	"strings"

	"github.com/tidwall/gjson"
)

// Lookup resolves path against json and returns the raw gjson result.
func Lookup(json, path string) (gjson.Result, error) {
	if json == "" {
		return gjson.Result{}, fmt.Errorf("empty JSON document")
	}
	if path == "" {
		return gjson.Result{}, fmt.Errorf("empty JSONPath expression")
	}
	if !gjson.Valid(json) {
		return gjson.Result{}, fmt.Errorf("invalid JSON document")
	}

	result := gjson.Get(json, toGjsonPath(path))
	if !result.Exists() {
		return gjson.Result{}, fmt.Errorf("path not found: %s", path)
	}
	return result, nil
}

// Extract returns the value at path as a string. JSON null is returned as "null".
func Extract(json, path string) (string, error) {
	result, err := Lookup(json, path)
	if err != nil {
		return "", err
	}
	if result.Type == gjson.Null {
		return "null", nil
	}
	return result.String(), nil
}

// ExtractInt returns the value at path as a whole number. Numeric strings
// are accepted; fractional values are rejected.
func ExtractInt(json, path string) (int64, error) {
	f, err := ExtractFloat(json, path)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return 0, fmt.Errorf("%s: expected an integer, got %v", path, f)
	}
	return int64(f), nil
}

// ExtractFloat returns the value at path as a finite number.
func ExtractFloat(json, path string) (float64, error) {
	result, err := Lookup(json, path)
	if err != nil {
		return 0, err
	}
	return toFloat(path, result)
}

// ExtractFloats returns the numbers in the array at path.
func ExtractFloats(json, path string) ([]float64, error) {
	result, err := Lookup(json, path)
	if err != nil {
		return nil, err
	}
	if !result.IsArray() {
		return nil, fmt.Errorf("%s: expected an array", path)
	}

	var values []float64
	var errs []string
	for i, item := range result.Array() {
		v, err := toFloat(fmt.Sprintf("%s[%d]", path, i), item)
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}
		values = append(values, v)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("extraction errors: %s", strings.Join(errs, "; "))
	}
	return values, nil
}

// ExtractMultiple resolves several named paths at once. Values that resolve
// are returned even when others fail.
func ExtractMultiple(json string, paths map[string]string) (map[string]string, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no JSONPath expressions provided")
	}

	results := make(map[string]string, len(paths))
	var errs []string
	for name, path := range paths {
		value, err := Extract(json, path)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", name, err))
			continue
		}
		results[name] = value
	}
	if len(errs) > 0 {
		return results, fmt.Errorf("extraction errors: %s", strings.Join(errs, "; "))
	}
	return results, nil
}

func toFloat(path string, result gjson.Result) (float64, error) {
	switch result.Type {
	case gjson.Number:
		return result.Num, nil
	case gjson.String:
		f := gjson.Parse(strings.TrimSpace(result.Str))
		if f.Type == gjson.Number {
			return f.Num, nil
		}
	}
	return 0, fmt.Errorf("%s: expected a number, got %s", path, result.Type)
}

// toGjsonPath rewrites a JSONPath expression into gjson syntax:
//
//	$.variants[0].users  ->  variants.0.users
//	$['control']         ->  control
func toGjsonPath(path string) string {
	path = strings.TrimPrefix(path, "$")
	if path == "" {
		return "@this"
	}

	replacer := strings.NewReplacer(
		"['", ".", "']", "",
		`["`, ".", `"]`, "",
		"[", ".", "]", "",
	)
	path = replacer.Replace(path)
	return strings.TrimPrefix(path, ".")
}
