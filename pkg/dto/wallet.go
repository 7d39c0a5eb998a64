package dto

/**
{
  "amount": 25,
  "address": "TLi35GdB6HN4bDDKZvE4Uezv6BDTX9yRfq",
  "status": "pending",
  "requested_at": "2024-06-01T10:00:00Z"
}
*/

type Balance struct {
	Balance    float64 `json:"spx_balance"`
	TotalMined float64 `json:"total_mined"`
}

type WithdrawalRequest struct {
	Amount  float64 `json:"amount"`
	Address string  `json:"address"`
}

type Withdrawal struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Address     string  `json:"address"`
	Status      string  `json:"status"`
	RequestedAt string  `json:"requested_at"`
	ResolvedAt  string  `json:"resolved_at,omitempty"`
}
