package planner

// TotalCost adds the transport fare, the stay (nightly price times nights)
// and the activity spend.
func TotalCost(transport, accommodationPerNight, nights, activities int) int {
	return transport + accommodationPerNight*nights + activities
}

type BudgetStatus string

const (
	UnderBudget BudgetStatus = "under"
	AtBudget    BudgetStatus = "at"
	OverBudget  BudgetStatus = "over"
)

// ClassifyBudget compares a total against the budget.
func ClassifyBudget(total, budget int) BudgetStatus {
	switch {
	case total < budget:
		return UnderBudget
	case total > budget:
		return OverBudget
	}
	return AtBudget
}
