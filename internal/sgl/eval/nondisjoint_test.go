package eval

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fraunhofer-iese/structuredgrant/internal/sgl/model"
)

func principal(t *testing.T, id string, roles ...string) *model.Principal {
	t.Helper()
	p, err := model.NewPrincipal(id, roles)
	require.NoError(t, err)
	return p
}

func TestEvaluate_IDCriterion(t *testing.T) {
	bob := principal(t, "Bob")
	carl := principal(t, "Carl")
	c, err := model.ID("Bob")
	require.NoError(t, err)

	require.True(t, Evaluate([]*model.Principal{bob, carl}, c))
	require.False(t, Evaluate([]*model.Principal{carl}, c))
}

func TestEvaluate_RoleCriterionThreshold(t *testing.T) {
	a := principal(t, "", "investor")
	b := principal(t, "", "investor")
	c := principal(t, "", "employee")
	crit, err := model.RoleN("investor", 2)
	require.NoError(t, err)

	require.True(t, Evaluate([]*model.Principal{a, b, c}, crit))
	require.False(t, Evaluate([]*model.Principal{a, c}, crit))
}

func TestEvaluate_AllRequiresEveryChild(t *testing.T) {
	employee, _ := model.Role("employee")
	investor, _ := model.Role("investor")
	all, err := model.All(employee, investor)
	require.NoError(t, err)

	both := principal(t, "", "employee", "investor")
	require.True(t, Evaluate([]*model.Principal{both}, all))

	onlyEmployee := principal(t, "", "employee")
	require.False(t, Evaluate([]*model.Principal{onlyEmployee}, all))
}

func TestEvaluate_AllowsOverlapBetweenConjuncts(t *testing.T) {
	// The non-disjoint evaluator lets a single principal satisfy every
	// conjunct of an All at once.
	employee, _ := model.RoleN("employee", 1)
	investor, _ := model.RoleN("investor", 2)
	all, err := model.All(employee, investor)
	require.NoError(t, err)

	alice := principal(t, "", "employee", "investor")
	bob := principal(t, "", "investor")

	require.True(t, Evaluate([]*model.Principal{alice, bob}, all))
}

func TestEvaluate_AnyRequiresNMatches(t *testing.T) {
	employee, _ := model.Role("employee")
	investor, _ := model.Role("investor")
	anyOne, err := model.Any(employee, investor)
	require.NoError(t, err)
	anyTwo, err := model.AnyN(2, employee, investor)
	require.NoError(t, err)

	both := principal(t, "", "employee", "investor")
	require.True(t, Evaluate([]*model.Principal{both}, anyOne))
	require.True(t, Evaluate([]*model.Principal{both}, anyTwo))

	onlyEmployee := principal(t, "", "employee")
	require.True(t, Evaluate([]*model.Principal{onlyEmployee}, anyOne))
	require.False(t, Evaluate([]*model.Principal{onlyEmployee}, anyTwo))
}

func TestEvaluate_EmptyGroup(t *testing.T) {
	c, err := model.Role("employee")
	require.NoError(t, err)
	require.False(t, Evaluate(nil, c))
}
