package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveStaffing_AllRolesKnown(t *testing.T) {
	comp := NewRoleComposition(
		RoleCount{RoleID: "medic", Count: 1},
		RoleCount{RoleID: "driver", Count: 2},
	)
	catalog := map[string]bool{"medic": true, "driver": true, "cook": true}

	staffing := ResolveStaffing(comp, catalog)

	assert.Equal(t, 3, staffing.Required)
	assert.Equal(t, map[string]int{"medic": 1, "driver": 2}, staffing.ByRole)
	assert.Empty(t, staffing.StaleRoles)
	assert.False(t, staffing.HasStaleRoles())
}

func TestResolveStaffing_StaleRoleStillCounts(t *testing.T) {
	// A deleted role's headcount still contributes to the total: the authored
	// intent stands until the entry is removed.
	comp := NewRoleComposition(
		RoleCount{RoleID: "roleA", Count: 2},
		RoleCount{RoleID: "roleB", Count: 3},
	)
	catalog := map[string]bool{"roleA": true}

	staffing := ResolveStaffing(comp, catalog)

	assert.Equal(t, 5, staffing.Required)
	assert.Equal(t, []string{"roleB"}, staffing.StaleRoles)
	assert.True(t, staffing.HasStaleRoles())
}

func TestResolveStaffing_StaleRolesSorted(t *testing.T) {
	comp := NewRoleComposition(
		RoleCount{RoleID: "zulu", Count: 1},
		RoleCount{RoleID: "alpha", Count: 1},
		RoleCount{RoleID: "mike", Count: 1},
	)

	staffing := ResolveStaffing(comp, map[string]bool{})
	assert.Equal(t, []string{"alpha", "mike", "zulu"}, staffing.StaleRoles)
	assert.Equal(t, 3, staffing.Required)
}

func TestResolveStaffing_EmptyComposition(t *testing.T) {
	staffing := ResolveStaffing(nil, map[string]bool{"medic": true})
	assert.Zero(t, staffing.Required)
	assert.Empty(t, staffing.ByRole)
	assert.Empty(t, staffing.StaleRoles)
}

func TestRoleComposition_WithRole(t *testing.T) {
	comp := NewRoleComposition(RoleCount{RoleID: "medic", Count: 1})

	updated := comp.WithRole("driver", 2)
	require.Len(t, updated, 2)
	assert.Equal(t, 1, updated.CountFor("medic"))
	assert.Equal(t, 2, updated.CountFor("driver"))

	// Original is untouched.
	assert.Len(t, comp, 1)
	assert.Zero(t, comp.CountFor("driver"))

	replaced := updated.WithRole("medic", 4)
	assert.Equal(t, 4, replaced.CountFor("medic"))
	assert.Len(t, replaced, 2)

	removed := updated.WithRole("medic", 0)
	require.Len(t, removed, 1)
	assert.Equal(t, "driver", removed[0].RoleID)
}

func TestNewRoleComposition_DropsNonPositiveAndDeduplicates(t *testing.T) {
	comp := NewRoleComposition(
		RoleCount{RoleID: "medic", Count: 1},
		RoleCount{RoleID: "cook", Count: 0},
		RoleCount{RoleID: "medic", Count: 3},
	)

	require.Len(t, comp, 1)
	assert.Equal(t, 3, comp.CountFor("medic"))
	assert.Equal(t, 3, comp.TotalCount())
}
