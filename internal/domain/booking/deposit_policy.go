package booking

// DepositPercent is the share of the resolved price collected at booking time.
// The remainder is due on move-in.
const DepositPercent int64 = 20

// SplitDeposit divides total into the amount collected now and the amount due.
// paid is rounded down so paid+due always equals total.
func SplitDeposit(total Money) (paid, due Money) {
	q, r := total.minor/100, total.minor%100
	paid = Money{minor: q*DepositPercent + r*DepositPercent/100}
	due = total.Sub(paid)
	return paid, due
}
