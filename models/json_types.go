package models

import (
	"database/sql/driver"
	"encoding/json"
)

// StringList is a list of labels persisted as a JSON text column.
// Malformed or absent column data scans to the empty list instead of
// failing the whole row read.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	*l = StringList{}
	raw, ok := rawJSON(value)
	if !ok {
		return nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return nil
	}
	*l = out
	return nil
}

// UnmarshalJSON tolerates non-list request values by collapsing them to the
// empty list. Documented fallback, not an error.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var out []string
	if err := json.Unmarshal(data, &out); err != nil || out == nil {
		*l = StringList{}
		return nil
	}
	*l = out
	return nil
}

// ExtraSelection is a name+price snapshot of an extra chosen on an order
// item. It is a value copy: later edits or deletion of the catalog extra do
// not affect historical orders.
type ExtraSelection struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ExtraList is a list of extra snapshots persisted as a JSON text column,
// with the same lenient scan and unmarshal rules as StringList.
type ExtraList []ExtraSelection

func (l ExtraList) Value() (driver.Value, error) {
	if l == nil {
		l = ExtraList{}
	}
	b, err := json.Marshal([]ExtraSelection(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *ExtraList) Scan(value interface{}) error {
	*l = ExtraList{}
	raw, ok := rawJSON(value)
	if !ok {
		return nil
	}
	var out []ExtraSelection
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return nil
	}
	*l = out
	return nil
}

func (l *ExtraList) UnmarshalJSON(data []byte) error {
	var out []ExtraSelection
	if err := json.Unmarshal(data, &out); err != nil || out == nil {
		*l = ExtraList{}
		return nil
	}
	*l = out
	return nil
}

func rawJSON(value interface{}) ([]byte, bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case string:
		if v == "" || v == "null" {
			return nil, false
		}
		return []byte(v), true
	case []byte:
		if len(v) == 0 || string(v) == "null" {
			return nil, false
		}
		return v, true
	default:
		// Unexpected column type, treat as empty rather than failing the scan.
		return nil, false
	}
}
