package entity

// FundTotals is the ledger projection the dashboard derives the available
// balance from. All three sums must come from one database snapshot so a
// scholarship mid-transition is counted exactly once.
type FundTotals struct {
	Donated   float64
	Disbursed float64
	Committed float64
}

// Available is what remains for new awards.
func (t FundTotals) Available() float64 {
	return t.Donated - t.Disbursed - t.Committed
}
