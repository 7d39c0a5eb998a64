package domain

import "time"

// Mining rate constants. Every account accrues BaseMiningRate SPX per hour
// while a session is open, plus ReferralBonus per registered referral.
const (
	BaseMiningRate = 0.1
	ReferralBonus  = 0.005
)

// MiningRate returns the accrual rate for an account with the given number of
// referrals.
func MiningRate(referralCount int64) float64 {
	return BaseMiningRate + float64(referralCount)*ReferralBonus
}

// Earnings returns the SPX accrued by a session opened at startedAt, as of the
// given instant, at rate units per hour. The result carries full float64
// precision with no rounding, so the live status figure and the settled amount
// agree whenever a stop immediately follows a status read. A non-positive
// elapsed duration yields zero.
func Earnings(startedAt, asOf time.Time, rate float64) float64 {
	hours := asOf.Sub(startedAt).Hours()
	if hours <= 0 {
		return 0
	}
	return hours * rate
}
