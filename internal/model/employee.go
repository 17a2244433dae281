package model

// Employee roster record, as a company dashboard sees it
type Employee struct {
	Id         FlexInt  `json:"id"`
	Name       string   `json:"name,omitempty"`
	Email      string   `json:"email,omitempty"`
	NationalId string   `json:"national_id,omitempty"`
	Balance    Amount   `json:"balance,omitempty"`
	Status     string   `json:"status,omitempty"`
	CreatedAt  DateTime `json:"created_at,omitempty"`
}

type EmployeeList = Dataset[Employee]
