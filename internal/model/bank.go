package model

// BankAccount is a merchant payout destination.
type BankAccount struct {
	Id        FlexInt  `json:"id"`
	Title     string   `json:"title,omitempty"`
	BankName  string   `json:"bank_name,omitempty"`
	Iban      string   `json:"iban,omitempty"`
	Status    string   `json:"status,omitempty"` // pending | verified | rejected
	CreatedAt DateTime `json:"created_at,omitempty"`
}

type BankAccountList = Dataset[BankAccount]
