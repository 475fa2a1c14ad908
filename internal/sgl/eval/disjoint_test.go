package eval

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fraunhofer-iese/structuredgrant/internal/sgl/model"
)

func employeeInvestorAll(t *testing.T) model.Criterion {
	t.Helper()
	employee, err := model.Role("employee")
	require.NoError(t, err)
	investor, err := model.RoleN("investor", 2)
	require.NoError(t, err)
	all, err := model.All(employee, investor)
	require.NoError(t, err)
	return all
}

// TestEvaluateDisjoint_DivergesFromNonDisjoint reproduces the scenario
// where a single principal who could cover both conjuncts at once makes
// the non-disjoint evaluator say yes, while the disjoint evaluator -
// which must assign each conjunct its own, non-overlapping subset of the
// group - correctly says no: the group is one principal short of the two
// distinct investors the second conjunct needs once the first conjunct
// has claimed its only qualifying member.
func TestEvaluateDisjoint_DivergesFromNonDisjoint(t *testing.T) {
	all := employeeInvestorAll(t)
	alice := principal(t, "", "employee", "investor")
	bob := principal(t, "", "investor")
	group := []*model.Principal{alice, bob}

	require.True(t, Evaluate(group, all), "non-disjoint should allow alice to cover both conjuncts")
	require.False(t, EvaluateDisjoint(group, all), "disjoint should refuse to double-book alice")
}

func TestEvaluateDisjoint_MinimalRemediation(t *testing.T) {
	all := employeeInvestorAll(t)
	alice := principal(t, "", "employee", "investor")
	bob := principal(t, "", "investor")

	t.Run("adding another investor suffices", func(t *testing.T) {
		carl := principal(t, "", "investor")
		group := []*model.Principal{alice, bob, carl}
		require.True(t, EvaluateDisjoint(group, all))
	})

	t.Run("adding another employee suffices", func(t *testing.T) {
		dave := principal(t, "", "employee")
		group := []*model.Principal{alice, bob, dave}
		require.True(t, EvaluateDisjoint(group, all))
	})

	t.Run("adding a dual employee-investor suffices", func(t *testing.T) {
		erin := principal(t, "", "employee", "investor")
		group := []*model.Principal{alice, bob, erin}
		require.True(t, EvaluateDisjoint(group, all))
	})
}

func TestEvaluateDisjoint_SingletonAllDelegatesDirectly(t *testing.T) {
	role, err := model.RoleN("investor", 2)
	require.NoError(t, err)
	all, err := model.All(role)
	require.NoError(t, err)

	a := principal(t, "", "investor")
	b := principal(t, "", "investor")
	require.True(t, EvaluateDisjoint([]*model.Principal{a, b}, all))
	require.False(t, EvaluateDisjoint([]*model.Principal{a}, all))
}

func TestEvaluateDisjoint_AnyFallsBackToNonDisjoint(t *testing.T) {
	employee, _ := model.Role("employee")
	investor, _ := model.Role("investor")
	anyCrit, err := model.Any(employee, investor)
	require.NoError(t, err)

	both := principal(t, "", "employee", "investor")
	require.True(t, EvaluateDisjoint([]*model.Principal{both}, anyCrit))
}

// TestEvaluateDisjoint_AnyNestedInsideAllSharesGroup documents that
// disjointness only propagates through All: an Any nested as a conjunct
// shares the whole remaining subgroup among its own alternatives instead
// of being split further.
func TestEvaluateDisjoint_AnyNestedInsideAllSharesGroup(t *testing.T) {
	employee, _ := model.Role("employee")
	investor, _ := model.Role("investor")
	anyCrit, err := model.Any(employee, investor)
	require.NoError(t, err)
	idCrit, err := model.ID("Bob")
	require.NoError(t, err)
	all, err := model.All(idCrit, anyCrit)
	require.NoError(t, err)

	bob := principal(t, "Bob", "employee")
	group := []*model.Principal{bob}
	// Bob alone satisfies the Id conjunct; the remainder (empty) can't
	// satisfy Any, so this should fail disjoint evaluation.
	require.False(t, EvaluateDisjoint(group, all))

	carl := principal(t, "", "investor")
	require.True(t, EvaluateDisjoint([]*model.Principal{bob, carl}, all))
}

func TestEvaluateDisjoint_DuplicateIdentityNoDoubleCount(t *testing.T) {
	role, err := model.RoleN("investor", 2)
	require.NoError(t, err)
	all, err := model.All(role)
	require.NoError(t, err)

	alice, err := model.NewPrincipal("alice", []string{"investor"})
	require.NoError(t, err)
	group := DedupGroup([]*model.Principal{alice, alice})
	require.Len(t, group, 1)
	require.False(t, EvaluateDisjoint(group, all))
}
