package model

// Wallet ledger transaction record
type Transaction struct {
	Id          FlexInt  `json:"id"`
	SenderId    FlexInt  `json:"sender_id"`
	ReceiverId  FlexInt  `json:"receiver_id"`
	Amount      Amount   `json:"amount"`
	Type        string   `json:"type,omitempty"`
	Description string   `json:"description,omitempty"`
	Status      string   `json:"status,omitempty"`
	CreatedAt   DateTime `json:"created_at,omitempty"`
}

// Wallet balance snapshot
type WalletBalance struct {
	UserId  FlexInt `json:"user_id"`
	Balance Amount  `json:"balance"`
}

// Merchant → employee payment request, settled via OTP confirmation
type PaymentRequest struct {
	Id         FlexInt  `json:"id"`
	MerchantId FlexInt  `json:"merchant_id"`
	EmployeeId FlexInt  `json:"employee_id"`
	Amount     Amount   `json:"amount"`
	Status     string   `json:"status,omitempty"` // pending | confirmed | rejected
	CreatedAt  DateTime `json:"created_at,omitempty"`
}

// Merchant payout (settlement) request
type PayoutRequest struct {
	Id         FlexInt  `json:"id"`
	MerchantId FlexInt  `json:"merchant_id"`
	Amount     Amount   `json:"amount"`
	AccountId  string   `json:"selected_account_id,omitempty"`
	Status     string   `json:"status,omitempty"` // pending | approved | rejected | paid
	CreatedAt  DateTime `json:"created_at,omitempty"`
}

type TransactionList = Dataset[Transaction]
type PayoutList = Dataset[PayoutRequest]
