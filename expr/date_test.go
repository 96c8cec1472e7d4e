package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trueprep/fact-graph/expr"
	"github.com/trueprep/fact-graph/value"
)

func TestToday(t *testing.T) {
	t.Parallel()

	ctx := newFakeCtx()
	v, err := expr.Today{}.Eval(ctx)
	require.NoError(t, err)
	assert.Equal(t, ctx.today, v.MustSingle().MustValue())
}

func TestLastDayOfMonthExpr(t *testing.T) {
	t.Parallel()

	feb := expr.Const{Value: value.NewDay(2024, 2, 10)}
	v, err := expr.LastDayOfMonthExpr{Operand: feb}.Eval(newFakeCtx())
	require.NoError(t, err)
	assert.Equal(t, value.NewDay(2024, 2, 29), v.MustSingle().MustValue())
}

func TestAddPayrollMonthsPreservesMonthEndAnchor(t *testing.T) {
	t.Parallel()

	jan31 := expr.Const{Value: value.NewDay(2024, 1, 31)}
	a := expr.AddPayrollMonths{Operand: jan31, N: 1}
	v, err := a.Eval(newFakeCtx())
	require.NoError(t, err)
	assert.Equal(t, value.NewDay(2024, 2, 29), v.MustSingle().MustValue())
}

func TestAddPayrollMonthsAnchorAcrossShorterMonth(t *testing.T) {
	t.Parallel()

	may31 := expr.Const{Value: value.NewDay(2024, 5, 31)}
	a := expr.AddPayrollMonths{Operand: may31, N: 1}
	v, err := a.Eval(newFakeCtx())
	require.NoError(t, err)
	assert.Equal(t, value.NewDay(2024, 6, 30), v.MustSingle().MustValue())
}

func TestAddPayrollMonthsNonAnchored(t *testing.T) {
	t.Parallel()

	jan15 := expr.Const{Value: value.NewDay(2024, 1, 15)}
	a := expr.AddPayrollMonths{Operand: jan15, N: 2}
	v, err := a.Eval(newFakeCtx())
	require.NoError(t, err)
	assert.Equal(t, value.NewDay(2024, 3, 15), v.MustSingle().MustValue())
}
