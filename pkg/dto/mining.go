package dto

/**
{
  "is_mining": true,
  "mining_started_at": "2024-06-01T10:00:00Z",
  "current_earnings": 0.2,
  "mining_rate": 0.105,
  "spx_balance": 100,
  "total_mined": 42.5,
  "mining_enabled": true
}
*/

type MiningStatus struct {
	IsMining        bool    `json:"is_mining"`
	MiningStartedAt string  `json:"mining_started_at,omitempty"`
	CurrentEarnings float64 `json:"current_earnings"`
	MiningRate      float64 `json:"mining_rate"`
	Balance         float64 `json:"spx_balance"`
	TotalMined      float64 `json:"total_mined"`
	MiningEnabled   bool    `json:"mining_enabled"`
}

type MiningStarted struct {
	MiningStartedAt string  `json:"mining_started_at"`
	MiningRate      float64 `json:"mining_rate"`
	IsMining        bool    `json:"is_mining"`
}

type MiningStopped struct {
	Earnings   float64 `json:"earnings"`
	NewBalance float64 `json:"new_balance"`
	TotalMined float64 `json:"total_mined"`
}
