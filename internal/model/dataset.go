package model

import (
	"net/http"

	"github.com/mrhaji1999/vandapay-sub001/internal/errors"
)

// Dataset of *[T] records
type Dataset[T any] struct {
	// List of dataset records
	Data []*T
	// Total records count, beyond this page, if reported
	Total int
}

var (
	ErrTooManyRecords = errors.New(
		errors.Code(http.StatusConflict),
		errors.Status("CONFLICT"),
		errors.Message("too many records"),
	)
	ErrNoRecordsFound = errors.NotFound(
		errors.Message("no records found"),
	)
)

// Get ensures that given dataset [list] contains exact one result record.
func Get[T any](list *Dataset[T], err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	if list == nil {
		// Not Found
		return nil, nil
	}
	size := len(list.Data)
	if size > 1 {
		return nil, ErrTooManyRecords
	}
	var row *T
	if size == 1 {
		row = list.Data[0]
	}
	return row, nil
}
