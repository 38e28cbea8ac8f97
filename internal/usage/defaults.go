package usage

const (
	PlanFree = "free"
	PlanPro  = "pro"

	freeLimit = 3
	proLimit  = 100
)

// LimitFor maps a plan tier to its resume-count limit. Unknown tiers get
// the free limit.
func LimitFor(plan string) int {
	if plan == PlanPro {
		return proLimit
	}
	return freeLimit
}
