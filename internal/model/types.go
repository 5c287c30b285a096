package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is a list of tag strings stored as a JSON column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("marshal StringList: %w", err)
	}
	return b, nil
}

func (l *StringList) Scan(src interface{}) error {
	if src == nil {
		*l = StringList{}
		return nil
	}
	data, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("StringList.Scan: expected []byte, got %T", src)
	}
	if err := json.Unmarshal(data, l); err != nil {
		return fmt.Errorf("unmarshal StringList: %w", err)
	}
	return nil
}
