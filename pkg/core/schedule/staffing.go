package schedule

import "sort"

// Staffing summarizes the headcount requirements of a role composition
// against the live role catalog.
type Staffing struct {
	// Required is the total headcount, including counts for stale roles:
	// the authored staffing intent stands until an operator removes the
	// entry, even when the role label is gone.
	Required int

	// ByRole holds the per-role headcounts.
	ByRole map[string]int

	// StaleRoles lists every referenced role absent from the catalog,
	// sorted. Surfaced distinctly so an operator can reconcile compositions
	// that outlived a deleted role.
	StaleRoles []string
}

// HasStaleRoles reports whether the composition references deleted roles.
func (s Staffing) HasStaleRoles() bool {
	return len(s.StaleRoles) > 0
}

// ResolveStaffing computes the staffing summary for a composition. The
// catalog is the set of currently existing role IDs. Stale references are
// reported, never dropped and never treated as errors.
func ResolveStaffing(comp RoleComposition, catalog map[string]bool) Staffing {
	byRole := make(map[string]int, len(comp))
	var stale []string
	required := 0

	for _, entry := range comp {
		required += entry.Count
		byRole[entry.RoleID] = entry.Count
		if !catalog[entry.RoleID] {
			stale = append(stale, entry.RoleID)
		}
	}

	sort.Strings(stale)
	return Staffing{Required: required, ByRole: byRole, StaleRoles: stale}
}
