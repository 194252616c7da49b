package model

import (
	"bytes"
	"fmt"
	"strconv"
)

// FlexInt is an int64 that unmarshals from either a JSON number or a
// numeric JSON string.  Clients of the reservation API send ids and
// capacities both ways ({"roomId": 1} and {"roomId": "1"}), so request
// structs use FlexInt for those fields and normalize them to integers
// before any catalog comparison.  A JSON null decodes to zero, which
// the handlers treat the same as an absent field.  Anything that is
// not numeric is a malformed field and fails to unmarshal.
type FlexInt int64

// Int64 returns the coerced value as a plain int64.
func (f FlexInt) Int64() int64 { return int64(f) }

// UnmarshalJSON implements json.Unmarshaler.  It accepts numbers,
// quoted numbers and null.  Fractional values are truncated toward
// zero, matching integer coercion of a float input.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := string(bytes.TrimSpace(data))
	if s == "null" {
		*f = 0
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" {
		*f = 0
		return nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*f = FlexInt(n)
		return nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		*f = FlexInt(int64(v))
		return nil
	}
	return fmt.Errorf("model: cannot coerce %q to an integer", s)
}
