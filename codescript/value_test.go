package codescript

import (
	"math"
	"testing"
)

func TestValueString(t *testing.T) {
	cases := []struct {
		val  Value
		want string
	}{
		{NewInt(-7), "-7"},
		{NewFloat(2.5), "2.5"},
		{NewFloat(3), "3"},
		{NewFloat(1234567), "1234567"},
		{NewFloat(0.00001), "0.00001"},
		{NewFloat(-0.125), "-0.125"},
		{NewFloat(1e21), "1e+21"},
		{NewFloat(1e-7), "1e-07"},
		{NewString("hi"), "hi"},
		{NewBool(true), "true"},
		{NewBool(false), "false"},
		{NewNull(), ""},
		{Value{}, ""},
		{NewBuiltin("DISPLAY", builtinDisplay), "<builtin DISPLAY>"},
	}
	for _, tc := range cases {
		if got := tc.val.String(); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.val.Kind(), tc.want, got)
		}
	}
}

func TestValueInspect(t *testing.T) {
	if got := NewString("a b").Inspect(); got != `"a b"` {
		t.Fatalf("unexpected string inspect %q", got)
	}
	if got := NewNull().Inspect(); got != "null" {
		t.Fatalf("unexpected null inspect %q", got)
	}
	if got := NewInt(4).Inspect(); got != "4" {
		t.Fatalf("unexpected int inspect %q", got)
	}
}

func TestAddValues(t *testing.T) {
	cases := []struct {
		name        string
		left, right Value
		want        Value
	}{
		{"ints", NewInt(2), NewInt(3), NewInt(5)},
		{"floats", NewFloat(1.5), NewFloat(2.25), NewFloat(3.75)},
		{"int float", NewInt(1), NewFloat(0.5), NewFloat(1.5)},
		{"float int", NewFloat(0.5), NewInt(1), NewFloat(1.5)},
		{"strings", NewString("a"), NewString("b"), NewString("ab")},
		{"string int", NewString("n="), NewInt(4), NewString("n=4")},
		{"float string", NewFloat(1.5), NewString("x"), NewString("1.5x")},
		{"bool string", NewBool(true), NewString("!"), NewString("true!")},
		{"null string", NewNull(), NewString("x"), NewString("x")},
		{"overflow wraps", NewInt(math.MaxInt64), NewInt(1), NewInt(math.MinInt64)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := addValues(tc.left, tc.right)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("expected %s, got %s", tc.want.Inspect(), got.Inspect())
			}
		})
	}
}

func TestAddValuesTypeErrors(t *testing.T) {
	pairs := [][2]Value{
		{NewBool(true), NewInt(1)},
		{NewNull(), NewNull()},
		{NewInt(1), NewBool(false)},
	}
	for _, pair := range pairs {
		_, err := addValues(pair[0], pair[1])
		if classifyRuntimeErrorType(err) != runtimeErrorTypeType {
			t.Fatalf("%s + %s: expected TypeError, got %v", pair[0].Kind(), pair[1].Kind(), err)
		}
	}
}

func TestSubtractValues(t *testing.T) {
	cases := []struct {
		name        string
		left, right Value
		want        Value
	}{
		{"ints", NewInt(10), NewInt(4), NewInt(6)},
		{"mixed", NewInt(3), NewFloat(0.5), NewFloat(2.5)},
		{"string concatenates", NewString("ab"), NewString("cd"), NewString("abcd")},
		{"int string concatenates", NewInt(1), NewString("x"), NewString("1x")},
		{"underflow wraps", NewInt(math.MinInt64), NewInt(1), NewInt(math.MaxInt64)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := subtractValues(tc.left, tc.right)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("expected %s, got %s", tc.want.Inspect(), got.Inspect())
			}
		})
	}

	if _, err := subtractValues(NewBool(true), NewInt(1)); classifyRuntimeErrorType(err) != runtimeErrorTypeType {
		t.Fatalf("expected TypeError, got %v", err)
	}
}

func TestLessThan(t *testing.T) {
	cases := []struct {
		left, right Value
		want        bool
	}{
		{NewInt(1), NewInt(2), true},
		{NewInt(2), NewInt(2), false},
		{NewFloat(1.5), NewInt(2), true},
		{NewInt(2), NewFloat(1.5), false},
	}
	for _, tc := range cases {
		got, err := lessThan(tc.left, tc.right)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Kind() != KindBool || got.Bool() != tc.want {
			t.Fatalf("%s < %s: expected %v, got %s", tc.left.Inspect(), tc.right.Inspect(), tc.want, got.Inspect())
		}
	}

	if _, err := lessThan(NewString("a"), NewString("b")); classifyRuntimeErrorType(err) != runtimeErrorTypeType {
		t.Fatalf("expected TypeError comparing strings, got %v", err)
	}
}

func TestTruthPredicates(t *testing.T) {
	if ok, err := isTrue(NewBool(true)); err != nil || !ok {
		t.Fatalf("isTrue(true) = %v, %v", ok, err)
	}
	if ok, err := isFalse(NewBool(false)); err != nil || !ok {
		t.Fatalf("isFalse(false) = %v, %v", ok, err)
	}
	for _, v := range []Value{NewInt(1), NewString("true"), NewNull()} {
		if _, err := isTrue(v); classifyRuntimeErrorType(err) != runtimeErrorTypeType {
			t.Fatalf("isTrue(%s): expected TypeError, got %v", v.Inspect(), err)
		}
		if _, err := isFalse(v); classifyRuntimeErrorType(err) != runtimeErrorTypeType {
			t.Fatalf("isFalse(%s): expected TypeError, got %v", v.Inspect(), err)
		}
	}
}

func TestIntAccessorOnlyReadsIntegers(t *testing.T) {
	if got := NewInt(7).Int(); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
	for _, v := range []Value{NewFloat(2.9), NewString("3"), NewBool(true), NewNull()} {
		if got := v.Int(); got != 0 {
			t.Fatalf("%s: expected 0, got %d", v.Inspect(), got)
		}
	}
}
