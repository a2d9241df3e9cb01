package leptjson

import (
	"errors"
	"math"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLiterals(t *testing.T) {
	f := func(name, input string, want Type) {
		t.Helper()
		t.Run(name, func(t *testing.T) {
			v := Value{typ: TypeNumber, n: 42}
			require.NoError(t, Parse(&v, input))
			assert.Equal(t, want, v.Type())
			assert.Zero(t, v.n, "literal values carry no payload")
		})
	}

	f("null", "null", TypeNull)
	f("true", "true", TypeTrue)
	f("false", "false", TypeFalse)
	f("leading_whitespace", " \t\r\nnull", TypeNull)
	f("trailing_whitespace", "true \t\r\n", TypeTrue)
	f("surrounded", "  false  ", TypeFalse)
}

func TestParseNumbers(t *testing.T) {
	f := func(input string) {
		t.Helper()
		t.Run(input, func(t *testing.T) {
			want, err := strconv.ParseFloat(input, 64)
			if err != nil && !errors.Is(err, strconv.ErrRange) {
				t.Fatalf("reference conversion failed: %v", err)
			}

			var v Value
			require.NoError(t, Parse(&v, input))
			require.Equal(t, TypeNumber, v.Type())
			assert.Equal(t, math.Float64bits(want), math.Float64bits(v.Number()),
				"got %v, want %v", v.Number(), want)
		})
	}

	f("0")
	f("-0")
	f("-0.0")
	f("1")
	f("-1")
	f("1.5")
	f("-1.5")
	f("3.1416")
	f("0.5")
	f("1E10")
	f("1e10")
	f("1E+10")
	f("1E-10")
	f("-1E10")
	f("-1e10")
	f("-1E+10")
	f("-1E-10")
	f("1.234E+10")
	f("1.234E-10")
	f("0.0e0")
	f("1e-10000")
	f("-1e-10000")
	f("1.0000000000000002")
	f("4.9406564584124654e-324")
	f("-4.9406564584124654e-324")
	f("2.2250738585072009e-308")
	f("-2.2250738585072009e-308")
	f("2.2250738585072014e-308")
	f("-2.2250738585072014e-308")
	f("1.7976931348623157e+308")
	f("-1.7976931348623157e+308")
}

func TestParseNegativeZero(t *testing.T) {
	var v Value
	require.NoError(t, Parse(&v, "-0"))
	assert.Equal(t, 0.0, v.Number())
	assert.True(t, math.Signbit(v.Number()))

	require.NoError(t, Parse(&v, "0"))
	assert.False(t, math.Signbit(v.Number()))
}

func TestParseOverflow(t *testing.T) {
	var v Value
	require.NoError(t, Parse(&v, "1e309"))
	assert.True(t, math.IsInf(v.Number(), 1))

	require.NoError(t, Parse(&v, "-1e309"))
	assert.True(t, math.IsInf(v.Number(), -1))

	require.NoError(t, Parse(&v, "1e400"))
	assert.True(t, math.IsInf(v.Number(), 1))
}

func TestParseErrors(t *testing.T) {
	f := func(name, input string, code ErrorCode, offset int) {
		t.Helper()
		t.Run(name, func(t *testing.T) {
			v := Value{typ: TypeTrue}
			err := Parse(&v, input)
			require.Error(t, err)
			assert.Equal(t, code, CodeOf(err))
			assert.Equal(t, TypeNull, v.Type(), "value must be reset to null on failure")

			var se *SyntaxError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, offset, se.Offset)
		})
	}

	// Empty input.
	f("empty", "", ExpectValue, 0)
	f("whitespace_only", "   ", ExpectValue, 3)
	f("mixed_whitespace", " \t\n\r", ExpectValue, 4)

	// Invalid literals.
	f("nul", "nul", InvalidValue, 3)
	f("nulx", "nulx", InvalidValue, 3)
	f("tru", "tru", InvalidValue, 3)
	f("trUe", "trUe", InvalidValue, 2)
	f("fals", "fals", InvalidValue, 4)
	f("f_space", "f alse", InvalidValue, 1)
	f("question", "?", InvalidValue, 0)
	f("nul_byte", "\x00", InvalidValue, 0)

	// Invalid numbers.
	f("plus_sign", "+0", InvalidValue, 0)
	f("plus_one", "+1", InvalidValue, 0)
	f("bare_dot", ".123", InvalidValue, 0)
	f("dot_no_digits", "1.", InvalidValue, 2)
	f("exp_no_digits", "1e", InvalidValue, 2)
	f("exp_sign_no_digits", "1e+", InvalidValue, 3)
	f("exp_minus_no_digits", "1E-", InvalidValue, 3)
	f("dot_exp", "1.e5", InvalidValue, 2)
	f("leading_zero", "01", InvalidValue, 1)
	f("double_zero", "00", InvalidValue, 1)
	f("negative_leading_zero", "-01", InvalidValue, 2)
	f("hex", "0x0", InvalidValue, 1)
	f("hex_upper", "0X10", InvalidValue, 1)
	f("minus_only", "-", InvalidValue, 1)
	f("minus_space", "- 1", InvalidValue, 1)
	f("inf", "INF", InvalidValue, 0)
	f("inf_lower", "inf", InvalidValue, 0)
	f("nan", "NAN", InvalidValue, 0)
	f("nan_lower", "nan", InvalidValue, 1)

	// Trailing content.
	f("number_then_word", "123 abc", RootNotSingular, 4)
	f("two_literals", "true false", RootNotSingular, 5)
	f("null_x", "null x", RootNotSingular, 5)
	f("null_glued", "nullx", RootNotSingular, 4)
	f("second_dot", "1.5.3", RootNotSingular, 3)
	f("exp_junk", "1e5x", RootNotSingular, 3)
	f("trailing_nul", "1\x00", RootNotSingular, 1)
}

func TestParseErrorSentinels(t *testing.T) {
	var v Value

	err := Parse(&v, "")
	assert.ErrorIs(t, err, ErrExpectValue)
	assert.NotErrorIs(t, err, ErrInvalidValue)

	err = Parse(&v, "-")
	assert.ErrorIs(t, err, ErrInvalidValue)

	err = Parse(&v, "0 0")
	assert.ErrorIs(t, err, ErrRootNotSingular)
	assert.EqualError(t, err, "leptjson: root not singular at offset 2")
}

func TestParseNilValuePanics(t *testing.T) {
	assert.Panics(t, func() { _ = Parse(nil, "null") })
}

func TestParseBytes(t *testing.T) {
	var v Value
	require.NoError(t, ParseBytes(&v, []byte(" 2.5 ")))
	assert.Equal(t, 2.5, v.Number())

	assert.Equal(t, ExpectValue, CodeOf(ParseBytes(&v, nil)))
}

func TestParseConcurrent(t *testing.T) {
	inputs := []string{"null", "true", "false", "-12.5e3", "1e309", "01"}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				for _, in := range inputs {
					var v Value
					_ = Parse(&v, in)
				}
			}
		}()
	}
	wg.Wait()

	var v Value
	require.NoError(t, Parse(&v, "-12.5e3"))
	assert.Equal(t, -12500.0, v.Number())
}
