package dto

// FinancialSummaryResponse is the derived ledger projection shown on the
// dashboard. available_balance = total_donations - total_disbursed -
// pending_commitments.
type FinancialSummaryResponse struct {
	TotalDonations     float64 `json:"total_donations"`
	TotalDisbursed     float64 `json:"total_disbursed"`
	PendingCommitments float64 `json:"pending_commitments"`
	AvailableBalance   float64 `json:"available_balance"`
}
