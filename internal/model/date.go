package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// NullDate maps a nullable DATE column. It reads and writes YYYY-MM-DD.
type NullDate struct {
	Time  time.Time
	Valid bool
}

func ParseDate(s string) (NullDate, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return NullDate{}, nil
	}
	if len(s) > len(dateLayout) {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return NullDate{Time: t, Valid: true}, nil
		}
		s = s[:len(dateLayout)]
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return NullDate{}, fmt.Errorf("invalid date %q", s)
	}
	return NullDate{Time: t, Valid: true}, nil
}

func (d *NullDate) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = NullDate{}
	case time.Time:
		*d = NullDate{Time: v, Valid: true}
	case []byte:
		nd, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		*d = nd
	case string:
		nd, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = nd
	default:
		return fmt.Errorf("cannot scan %T into NullDate", src)
	}
	return nil
}

func (d NullDate) Value() (driver.Value, error) {
	if !d.Valid {
		return nil, nil
	}
	return d.Time.Format(dateLayout), nil
}

func (d NullDate) String() string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format(dateLayout)
}

func (d NullDate) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(d.Time.Format(dateLayout))
}

func (d *NullDate) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = NullDate{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	nd, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = nd
	return nil
}
