/*
File    : lumen/evaluator/evaluator_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package evaluator

import (
	"testing"

	"github.com/akashmaji946/lumen/object"
	"github.com/akashmaji946/lumen/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEval(t *testing.T, input string) object.Object {
	t.Helper()
	p := parser.NewParser(input)
	program := p.Parse()
	require.Empty(t, p.GetErrors(), "parser errors: %v", p.GetErrors())
	env := object.NewEnvironment()
	return Eval(program, env)
}

func testIntegerObject(t *testing.T, obj object.Object, expected int64) {
	t.Helper()
	result, ok := obj.(*object.Integer)
	require.True(t, ok, "object is not Integer, got %T (%+v)", obj, obj)
	assert.Equal(t, expected, result.Value)
}

func testBooleanObject(t *testing.T, obj object.Object, expected bool) {
	t.Helper()
	result, ok := obj.(*object.Boolean)
	require.True(t, ok, "object is not Boolean, got %T (%+v)", obj, obj)
	assert.Equal(t, expected, result.Value)
}

func testNullObject(t *testing.T, obj object.Object) {
	t.Helper()
	assert.Equal(t, object.NULL, obj)
}

func TestEvalIntegerExpression(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"5", 5},
		{"10", 10},
		{"-5", -5},
		{"-10", -10},
		{"5 + 5 + 5 + 5 - 10", 10},
		{"2 * 2 * 2 * 2 * 2", 32},
		{"-50 + 100 + -50", 0},
		{"5 * 2 + 10", 20},
		{"5 + 2 * 10", 25},
		{"20 + 2 * -10", 0},
		{"50 / 2 * 2 + 10", 60},
		{"2 * (5 + 10)", 30},
		{"3 * 3 * 3 + 10", 37},
		{"3 * (3 * 3) + 10", 37},
		{"(5 + 10 * 2 + 15 / 3) * 2 + -10", 50},
		{"(1 + 2 * 3) * 4 / 7", 4},
		{"7 / 2", 3},
		{"-7 / 2", -3},
	}

	for _, tt := range tests {
		testIntegerObject(t, testEval(t, tt.input), tt.expected)
	}
}

func TestEvalBooleanExpression(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"true", true},
		{"false", false},
		{"1 < 2", true},
		{"1 > 2", false},
		{"1 < 1", false},
		{"1 > 1", false},
		{"1 == 1", true},
		{"1 != 1", false},
		{"1 == 2", false},
		{"1 != 2", true},
		{"true == true", true},
		{"false == false", true},
		{"true == false", false},
		{"true != false", true},
		{"false != true", true},
		{"(1 < 2) == true", true},
		{"(1 < 2) == false", false},
		{"(1 > 2) == true", false},
	}

	for _, tt := range tests {
		testBooleanObject(t, testEval(t, tt.input), tt.expected)
	}
}

func TestBangOperator(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"!true", false},
		{"!false", true},
		{"!5", false},
		{"!!true", true},
		{"!!false", false},
		{"!!5", true},
	}

	for _, tt := range tests {
		testBooleanObject(t, testEval(t, tt.input), tt.expected)
	}
}

func TestIfElseExpressions(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"if (true) { 10 }", 10},
		{"if (false) { 10 }", nil},
		{"if (1) { 10 }", 10},
		{"if (1 < 2) { 10 }", 10},
		{"if (1 > 2) { 10 }", nil},
		{"if (1 > 2) { 10 } else { 20 }", 20},
		{"if (1 < 2) { 10 } else { 20 }", 10},
	}

	for _, tt := range tests {
		evaluated := testEval(t, tt.input)
		if expected, ok := tt.expected.(int); ok {
			testIntegerObject(t, evaluated, int64(expected))
		} else {
			testNullObject(t, evaluated)
		}
	}
}

func TestReturnStatements(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"return 10;", 10},
		{"return 10; 9;", 10},
		{"return 2 * 5; 9;", 10},
		{"9; return 2 * 5; 9;", 10},
		{
			`
if (10 > 1) {
  if (10 > 1) {
    return 10;
  }
  return 1;
}
`,
			10,
		},
	}

	for _, tt := range tests {
		testIntegerObject(t, testEval(t, tt.input), tt.expected)
	}
}

func TestErrorHandling(t *testing.T) {
	tests := []struct {
		input           string
		expectedMessage string
	}{
		{"5 + true;", "type mismatch: Integer + Boolean"},
		{"5 + true; 5;", "type mismatch: Integer + Boolean"},
		{"-true", "unknown operator: -Boolean"},
		{"true + false;", "unknown operator: Boolean + Boolean"},
		{"5; true + false; 5", "unknown operator: Boolean + Boolean"},
		{"if (10 > 1) { true + false; }", "unknown operator: Boolean + Boolean"},
		{
			`
if (10 > 1) {
  if (10 > 1) {
    return true + false;
  }
  return 1;
}
`,
			"unknown operator: Boolean + Boolean",
		},
		{"foobar", "identifier not found: foobar"},
		{`"Hello" - "World"`, "unknown operator: String - String"},
		{"5 / 0", "division by zero"},
		{"len(1)", "argument to 'len' not supported, got Integer"},
		{`len("one", "two")`, "wrong number of arguments. got=2, want=1"},
		{"fn(x) { x }(1, 2)", "wrong number of arguments: got=2, want=1"},
		{"1[0]", "index operator not supported: Integer"},
		{"5 == true", "type mismatch: Integer == Boolean"},
		{"5 != true", "type mismatch: Integer != Boolean"},
		{"true == 1", "type mismatch: Boolean == Integer"},
		{`"a" != 1`, "type mismatch: String != Integer"},
	}

	for _, tt := range tests {
		evaluated := testEval(t, tt.input)
		errObj, ok := evaluated.(*object.Error)
		require.True(t, ok, "no error object returned for %q, got %T (%+v)", tt.input, evaluated, evaluated)
		assert.Equal(t, tt.expectedMessage, errObj.Message)
	}
}

func TestLetStatements(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"let a = 5; a;", 5},
		{"let a = 5 * 5; a;", 25},
		{"let a = 5; let b = a; b;", 5},
		{"let a = 5; let b = a; let c = a + b + 5; c;", 15},
	}

	for _, tt := range tests {
		testIntegerObject(t, testEval(t, tt.input), tt.expected)
	}
}

func TestFunctionObject(t *testing.T) {
	evaluated := testEval(t, "fn(x) { x + 2; };")
	fn, ok := evaluated.(*object.Function)
	require.True(t, ok)
	require.Len(t, fn.Parameters, 1)
	assert.Equal(t, "x", fn.Parameters[0].String())
	assert.Equal(t, "(x + 2)", fn.Body.String())
}

func TestFunctionApplication(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"let identity = fn(x) { x; }; identity(5);", 5},
		{"let identity = fn(x) { return x; }; identity(5);", 5},
		{"let double = fn(x) { x * 2; }; double(5);", 10},
		{"let add = fn(x, y) { x + y; }; add(5, 5);", 10},
		{"let add = fn(x, y) { x + y; }; add(5 + 5, add(5, 5));", 20},
		{"fn(x) { x; }(5)", 5},
	}

	for _, tt := range tests {
		testIntegerObject(t, testEval(t, tt.input), tt.expected)
	}
}

func TestClosures(t *testing.T) {
	input := `
let newAdder = fn(x) {
  fn(y) { x + y };
};
let addTwo = newAdder(2);
addTwo(2);
`
	testIntegerObject(t, testEval(t, input), 4)
}

func TestClosureCapturesLiveEnvironmentNotASnapshot(t *testing.T) {
	// f is built before x is bound in its defining scope. Because a
	// Function holds a live pointer to that scope rather than a copy of
	// its bindings at creation time, f still resolves x once the let
	// statement after it runs — this is the behavior spec.md mandates
	// and the teacher's scope.Copy() snapshot approach would break.
	input := `
let outer = fn() {
  let f = fn() { x };
  let x = 10;
  f()
};
outer()
`
	testIntegerObject(t, testEval(t, input), 10)
}

func TestStringLiteral(t *testing.T) {
	evaluated := testEval(t, `"Hello World!"`)
	str, ok := evaluated.(*object.String)
	require.True(t, ok)
	assert.Equal(t, "Hello World!", str.Value)
}

func TestStringConcatenation(t *testing.T) {
	evaluated := testEval(t, `"Hello" + " " + "World"`)
	str, ok := evaluated.(*object.String)
	require.True(t, ok)
	assert.Equal(t, "Hello World", str.Value)
}

func TestBuiltinFunctions(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{`len("")`, 0},
		{`len("four")`, 4},
		{`len("hello world")`, 11},
		{`len([1, 2, 3])`, 3},
		{`len([])`, 0},
		{`first([1, 2, 3])`, 1},
		{`first([])`, nil},
		{`last([1, 2, 3])`, 3},
		{`last([])`, nil},
	}

	for _, tt := range tests {
		evaluated := testEval(t, tt.input)
		switch expected := tt.expected.(type) {
		case int:
			testIntegerObject(t, evaluated, int64(expected))
		case nil:
			testNullObject(t, evaluated)
		}
	}

	rest := testEval(t, `rest([1, 2, 3])`).(*object.Array)
	require.Len(t, rest.Elements, 2)
	testIntegerObject(t, rest.Elements[0], 2)
	testIntegerObject(t, rest.Elements[1], 3)

	pushed := testEval(t, `push([1, 2], 3)`).(*object.Array)
	require.Len(t, pushed.Elements, 3)
	testIntegerObject(t, pushed.Elements[2], 3)
}

func TestArrayLiterals(t *testing.T) {
	evaluated := testEval(t, "[1, 2 * 2, 3 + 3]")
	result, ok := evaluated.(*object.Array)
	require.True(t, ok)
	require.Len(t, result.Elements, 3)

	testIntegerObject(t, result.Elements[0], 1)
	testIntegerObject(t, result.Elements[1], 4)
	testIntegerObject(t, result.Elements[2], 6)
}

func TestArrayIndexExpressions(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"[1, 2, 3][0]", 1},
		{"[1, 2, 3][1]", 2},
		{"[1, 2, 3][2]", 3},
		{"let i = 0; [1][i];", 1},
		{"[1, 2, 3][1 + 1];", 3},
		{"let myArray = [1, 2, 3]; myArray[2];", 3},
		{"let myArray = [1, 2, 3]; myArray[0] + myArray[1] + myArray[2];", 6},
		{"let myArray = [1, 2, 3]; let i = myArray[0]; myArray[i]", 2},
		{"[1, 2, 3][3]", nil},
		{"[1, 2, 3][-1]", nil},
	}

	for _, tt := range tests {
		evaluated := testEval(t, tt.input)
		if expected, ok := tt.expected.(int); ok {
			testIntegerObject(t, evaluated, int64(expected))
		} else {
			testNullObject(t, evaluated)
		}
	}
}

func TestLetShadowsBuiltin(t *testing.T) {
	evaluated := testEval(t, `let len = fn(x) { 99 }; len([1,2,3])`)
	testIntegerObject(t, evaluated, 99)
}

func TestReturnValueNeverLeaksToInspect(t *testing.T) {
	evaluated := testEval(t, "if (10 > 1) { if (10 > 1) { return 10; } return 1; }")
	assert.NotContains(t, evaluated.Inspect(), "ReturnValue")
}

func TestASTRoundTripOnWellFormedInput(t *testing.T) {
	inputs := []string{
		"let a = 5;",
		"return 10;",
		"(1 + (2 * 3))",
		"fn(a, b) { (a + b) }",
		"add(a, b)",
		"[1, 2, 3]",
		"(arr[0])",
	}

	for _, in := range inputs {
		p := parser.NewParser(in)
		program := p.Parse()
		require.Empty(t, p.GetErrors())

		rendered := program.String()

		p2 := parser.NewParser(rendered)
		program2 := p2.Parse()
		require.Empty(t, p2.GetErrors())

		assert.Equal(t, rendered, program2.String())
	}
}
