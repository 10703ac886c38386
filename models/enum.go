package models

import (
	"encoding/json"
	"fmt"
)

// unmarshalEnum decodes a JSON string and checks it against the token table
// PayPal documents for the field. Tokens outside the table are rejected so
// that provider contract drift surfaces as a decode error instead of a
// silently defaulted value.
func unmarshalEnum[T ~string](data []byte, name string, valid ...T) (T, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", fmt.Errorf("error reading %s: [%s]", name, err)
	}
	for _, v := range valid {
		if s == string(v) {
			return T(s), nil
		}
	}
	return "", fmt.Errorf("invalid %s value: [%s]", name, s)
}
