package rules

import (
	"fmt"
	"sort"
)

// NewRegistry returns every known rule sorted ascending by priority. The
// ordering is a policy decision: an administrative override always wins,
// schedule windows gate harder than supply, and supply harder than spend.
// Duplicate priorities are a programming defect and fail construction.
func NewRegistry() ([]Rule, error) {
	rs := []Rule{
		disabledManagement{},
		schedule{},
		lowStock{},
		budgetExceeded{},
	}

	sort.Slice(rs, func(i, j int) bool { return rs[i].Priority() < rs[j].Priority() })

	for i := 1; i < len(rs); i++ {
		if rs[i].Priority() == rs[i-1].Priority() {
			return nil, fmt.Errorf("rules %s and %s share priority %d",
				rs[i-1].Name(), rs[i].Name(), rs[i].Priority())
		}
	}
	return rs, nil
}
