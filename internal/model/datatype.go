package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// FlexInt is an int64 that accepts both JSON number and numeric string input.
// The wpdb layer behind the API serializes every column as a string.
type FlexInt int64

func (v *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*v = 0
		return nil
	}
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return err
	}
	*v = FlexInt(n)
	return nil
}

func (v FlexInt) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(v), 10)), nil
}

func (v FlexInt) Int64() int64 {
	return int64(v)
}

// Amount is a monetary value in minor units,
// accepted as JSON number or numeric string.
type Amount float64

func (v *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*v = 0
		return nil
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*v = Amount(f)
	return nil
}

func (v Amount) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(v), 'f', -1, 64)), nil
}

// mysql DATETIME column layout
const dateTimeLayout = "2006-01-02 15:04:05"

// DateTime accepts the API's "2006-01-02 15:04:05" datetime
// strings as well as RFC 3339 input.
type DateTime struct {
	time.Time
}

func (v *DateTime) UnmarshalJSON(data []byte) error {
	input := strings.Trim(string(data), `"`)
	if input == "" || input == "null" {
		v.Time = time.Time{}
		return nil
	}
	// MUST: mysql datetime
	date, err := time.ParseInLocation(dateTimeLayout, input, time.UTC)
	if err == nil {
		v.Time = date
		return nil
	}
	// TRY: RFC 3339
	date, err = time.Parse(time.RFC3339, input)
	if err != nil {
		return err
	}
	v.Time = date
	return nil
}

func (v DateTime) String() string {
	if v.Time.IsZero() {
		return ""
	}
	return v.Time.UTC().Format(dateTimeLayout)
}

func (v DateTime) MarshalJSON() ([]byte, error) {
	if v.Time.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(v.Time.UTC().Format(dateTimeLayout))
}
