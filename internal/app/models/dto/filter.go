package dto

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/yigit/collegefinance/internal/app/models"
)

// FilterID is an optional id in a request body. It accepts a number, a numeric string,
// "all", an empty string or null; the last three mean no filter.
type FilterID struct {
	models.IDFilter
}

// UnmarshalJSON implements json.Unmarshaler
func (f *FilterID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		f.IDFilter = models.IDFilter{}
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		f.IDFilter = models.ParseIDFilter(s)
		return nil
	}

	id, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		f.IDFilter = models.IDFilter{Present: true, Invalid: true}
		return nil
	}
	f.IDFilter = models.IDEquals(id)
	return nil
}

// MarshalJSON implements json.Marshaler
func (f FilterID) MarshalJSON() ([]byte, error) {
	if !f.Present || f.Invalid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(f.ID, 10)), nil
}
