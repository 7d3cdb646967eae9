package reports

type StockSummary struct {
	TotalMedicines  int64 `json:"total_medicines"`
	TotalCategories int64 `json:"total_categories"`
	ExpiringSoon    int64 `json:"expiring_soon"`
	Expired         int64 `json:"expired"`
}
