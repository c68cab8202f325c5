package utils

import (
	"fmt"
	"net/url"
	"strconv"
)

// ParseIntParam retrieves an int value from the provided URL query parameters.
// If the key is not present it returns def. If the value is invalid, it returns def
// and records the problem in fieldErrors.
func ParseIntParam(params url.Values, key string, def int, fieldErrors map[string][]string) (int, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return def, fieldErrors
	}

	i, err := strconv.Atoi(val)
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
		return def, fieldErrors
	}
	return i, fieldErrors
}
