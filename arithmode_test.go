package arithmode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arithmode/arithmode"
	"github.com/arithmode/arithmode/internal/rewriter"
)

func TestEntryPoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rewrite  func(string, ...arithmode.Option) (string, error)
		src      string
		expected string
	}{
		{"panicking", arithmode.Panicking, "a + b", "safemath.MustAdd(a, b)"},
		{"wrapping", arithmode.Wrapping, "a - b", "safemath.WrappingSub(a, b)"},
		{"saturating", arithmode.Saturating, "a * b", "safemath.SaturatingMul(a, b)"},
		{"checked", arithmode.Checked, "a / b", "safemath.ZipThen(a, b, safemath.CheckedDiv)"},
		{"precedence", arithmode.Panicking, "a + b*c", "safemath.MustAdd(a, safemath.MustMul(b, c))"},
		{"left associativity", arithmode.Wrapping, "a - b - c", "safemath.WrappingSub(safemath.WrappingSub(a, b), c)"},
		{"parens preserved", arithmode.Wrapping, "(a + b) * c", "safemath.WrappingMul((safemath.WrappingAdd(a, b)), c)"},
		{"comparison untouched operator", arithmode.Wrapping, "a+b < c", "safemath.WrappingAdd(a, b) < c"},
		{"opaque call", arithmode.Saturating, "f(a+b) + 1", "safemath.SaturatingAdd(f(a+b), 1)"},
		{"checked literal", arithmode.Checked, "42", "safemath.Some(42)"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.rewrite(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRewriteByMode(t *testing.T) {
	t.Parallel()

	got, err := arithmode.Rewrite(arithmode.ModeChecked, "1 + 2")
	require.NoError(t, err)
	assert.Equal(t, "safemath.ZipThen(safemath.Some(1), safemath.Some(2), safemath.CheckedAdd)", got)
}

func TestQualifierOption(t *testing.T) {
	t.Parallel()

	got, err := arithmode.Wrapping("a + b", arithmode.WithQualifier("sm"))
	require.NoError(t, err)
	assert.Equal(t, "sm.WrappingAdd(a, b)", got)
}

func TestSaturatingShiftOption(t *testing.T) {
	t.Parallel()

	_, err := arithmode.Saturating("a << 2")
	require.ErrorIs(t, err, rewriter.ErrUnsupportedOperator)

	got, err := arithmode.Saturating("a << 2", arithmode.WithSaturatingShifts(true))
	require.NoError(t, err)
	assert.Equal(t, "satint.Shl(a, 2)", got)
}

func TestParseFailure(t *testing.T) {
	t.Parallel()

	_, err := arithmode.Wrapping("a +")
	require.ErrorIs(t, err, arithmode.ErrParse)
}

func TestDiagnostic(t *testing.T) {
	t.Parallel()

	_, err := arithmode.Wrapping("a +")
	require.Error(t, err)
	assert.True(t, len(arithmode.Diagnostic(err)) > len("Error: "))
	assert.Contains(t, arithmode.Diagnostic(err), "Error: ")

	_, err = arithmode.Saturating("a << 2")
	require.Error(t, err)
	assert.Equal(t, "Error: unsupported operator: saturating << requires the saturating-shift capability", arithmode.Diagnostic(err))
}

func TestMaxDepthOption(t *testing.T) {
	t.Parallel()

	_, err := arithmode.Wrapping("a + b + c + d", arithmode.WithMaxDepth(1))
	require.ErrorIs(t, err, rewriter.ErrUnsupportedExpression)
}
