/*
File    : lim/eval/evaluator_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"testing"

	"github.com/akashmaji946/lim/builtin"
	"github.com/akashmaji946/lim/value"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string) (value.Value, error) {
	t.Helper()
	return Interpret(src, builtin.Default())
}

// TestEvaluator_EndToEndScenarios covers the concrete scenarios table in
// the language's worked examples.
func TestEvaluator_EndToEndScenarios(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected value.Number
	}{
		{"literal", "3", 3},
		{"precedence", "2 + 7 * 4", 30},
		{"nested parens", "7 + 3 * (10 / (12 / (3 + 1) - 1))", 22},
		{"reassignment", "let x = 5; x = 10; x", 10},
		{"closure add", "let add; add = fn (a,b) { a + b }; add(3,4)", 7},
		{"nested closure", "let mk; mk = fn(x) { fn(y){ x + y } }; let a5; a5 = mk(5); a5(3)", 8},
		{"while loop", "let i = 0; while i < 3 { i = i + 1 }; i", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := run(t, tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected, result)
		})
	}
}

func TestEvaluator_DivisionByZero(t *testing.T) {
	_, err := run(t, "10 / (5 - 5)")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Division by zero")
}

func TestEvaluator_LogicalShortCircuitOr(t *testing.T) {
	result, err := run(t, "true && false || true")
	require.NoError(t, err)
	require.Equal(t, value.Boolean(true), result)
}

func TestEvaluator_UndefinedVariable(t *testing.T) {
	_, err := run(t, "a + 5")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Undefined variable: a")
}

func TestEvaluator_DoubleNotEqualsOriginal(t *testing.T) {
	for _, x := range []bool{true, false} {
		src := "!!true"
		if !x {
			src = "!!false"
		}
		result, err := run(t, src)
		require.NoError(t, err)
		require.Equal(t, value.Boolean(x), result)
	}
}

func TestEvaluator_ParenSingleExprReducesToSameValue(t *testing.T) {
	plain, err := run(t, "2 + 3 * 4")
	require.NoError(t, err)
	parenthesized, err := run(t, "(2 + 3 * 4)")
	require.NoError(t, err)
	require.Equal(t, plain, parenthesized)
}

func TestEvaluator_DuplicateLetInSameBlockIsError(t *testing.T) {
	_, err := run(t, "let x = 1; let x = 2; x")
	require.Error(t, err)
}

func TestEvaluator_AssignWithoutLetIsError(t *testing.T) {
	_, err := run(t, "x = 5")
	require.Error(t, err)
}

func TestEvaluator_ShortCircuitAndNeverEvaluatesRight(t *testing.T) {
	// Division by zero on the right-hand side must never execute because
	// the left operand is falsey.
	result, err := run(t, "false && (1 / 0 > 0)")
	require.NoError(t, err)
	require.Equal(t, value.Boolean(false), result)
}

func TestEvaluator_ShortCircuitOrNeverEvaluatesRight(t *testing.T) {
	result, err := run(t, "true || (1 / 0 > 0)")
	require.NoError(t, err)
	require.Equal(t, value.Boolean(true), result)
}

func TestEvaluator_ClosureSharesMutableCapturedFrame(t *testing.T) {
	result, err := run(t, `
		let counter;
		counter = fn() {
			let bump;
			bump = fn() { n = n + 1; n };
			bump
		};
		let n = 0;
		let inc; inc = counter();
		inc(); inc(); inc()
	`)
	require.NoError(t, err)
	require.Equal(t, value.Number(3), result)
}

func TestEvaluator_RecursionViaSelf(t *testing.T) {
	result, err := run(t, `
		let fact;
		fact = fn(n) { n <= 1 ? 1 : n * self(n - 1) };
		fact(5)
	`)
	require.NoError(t, err)
	require.Equal(t, value.Number(120), result)
}

func TestEvaluator_ArityMismatch(t *testing.T) {
	_, err := run(t, "let f; f = fn(a,b) { a + b }; f(1)")
	require.Error(t, err)
}

func TestEvaluator_CallNonFunctionIsError(t *testing.T) {
	_, err := run(t, "let x = 5; x(1)")
	require.Error(t, err)
}

func TestEvaluator_BreakOutsideLoopInFunctionIsError(t *testing.T) {
	_, err := run(t, "let f; f = fn() { break }; f()")
	require.Error(t, err)
}

func TestEvaluator_BreakExitsLoopWithNull(t *testing.T) {
	result, err := run(t, "let i = 0; while true { i = i + 1; if i >= 3 { break } }; i")
	require.NoError(t, err)
	require.Equal(t, value.Number(3), result)

	result, err = run(t, "let i = 0; while true { i = i + 1; if i >= 3 { break } }")
	require.NoError(t, err)
	require.Equal(t, value.Null{}, result)
}

func TestEvaluator_ReturnPropagatesThroughLoopAndBlock(t *testing.T) {
	result, err := run(t, `
		let f;
		f = fn() {
			let i = 0;
			while true {
				if i == 2 { return i };
				i = i + 1
			}
		};
		f()
	`)
	require.NoError(t, err)
	require.Equal(t, value.Number(2), result)
}

func TestEvaluator_IndexIntoVectorAndString(t *testing.T) {
	result, err := run(t, "[10, 20, 30][1]")
	require.NoError(t, err)
	require.Equal(t, value.Number(20), result)

	result, err = run(t, `"hello"[1]`)
	require.NoError(t, err)
	require.Equal(t, value.String("e"), result)
}

func TestEvaluator_IndexOutOfRangeIsError(t *testing.T) {
	_, err := run(t, "[1, 2][5]")
	require.Error(t, err)
}

func TestEvaluator_TupleAndVectorLiterals(t *testing.T) {
	result, err := run(t, "(1, 2, 3)")
	require.NoError(t, err)
	require.Equal(t, value.Tuple{Items: []value.Value{value.Number(1), value.Number(2), value.Number(3)}}, result)

	result, err = run(t, "[1, 2]")
	require.NoError(t, err)
	require.Equal(t, value.Vector{Items: []value.Value{value.Number(1), value.Number(2)}}, result)
}

func TestEvaluator_EqualityIsTypeRestricted(t *testing.T) {
	_, err := run(t, `"a" == "a"`)
	require.Error(t, err)
}

func TestEvaluator_TernaryBothFormsAgree(t *testing.T) {
	result, err := run(t, "true ? 1 : 2")
	require.NoError(t, err)
	require.Equal(t, value.Number(1), result)

	ifResult, err := run(t, "if true { 1 } else { 2 }")
	require.NoError(t, err)
	require.Equal(t, result, ifResult)
}

func TestEvaluator_PrintfReturnsNothing(t *testing.T) {
	result, err := run(t, `printf("{} and {}", 1, 2)`)
	require.NoError(t, err)
	require.Equal(t, value.Nothing{}, result)
}

func TestEvaluator_TimestampReturnsNumber(t *testing.T) {
	result, err := run(t, "timestamp()")
	require.NoError(t, err)
	_, ok := result.(value.Number)
	require.True(t, ok)
}
