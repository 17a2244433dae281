package vandapay

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/mrhaji1999/vandapay-sub001/internal/model"
)

// Employees lists a company's employee roster. Company role.
// Optional [query] passes search/paging parameters through.
func (c *Client) Employees(ctx context.Context, companyId int64, query url.Values) (*model.EmployeeList, error) {
	var payload json.RawMessage
	path := fmt.Sprintf("/companies/%d/employees", companyId)
	err := c.rest.Get(ctx, path, query, &payload)
	if err != nil {
		return nil, err
	}

	return dataset(model.UnwrapList[model.Employee](payload)), nil
}

// SearchEmployee resolves exactly one employee by national id.
// No match ⇒ model.ErrNoRecordsFound ; an ambiguous national
// id ⇒ model.ErrTooManyRecords.
func (c *Client) SearchEmployee(ctx context.Context, nationalId string) (*model.Employee, error) {
	query := url.Values{
		"national_id": []string{nationalId},
	}
	var payload json.RawMessage
	err := c.rest.Get(ctx, "/employees/search", query, &payload)
	if err != nil {
		return nil, err
	}

	employee, err := model.Get(dataset(model.UnwrapList[model.Employee](payload)), nil)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, model.ErrNoRecordsFound
	}
	return employee, nil
}
