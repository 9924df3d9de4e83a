package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShorthandAssertionHasNoValue(t *testing.T) {
	tree, err := Parse("fn:name")
	require.NoError(t, err)
	require.Len(t, tree, 1)
	require.Len(t, tree[0], 1)
	a := tree[0][0]
	assert.Equal(t, "fn", a.Selector)
	assert.Equal(t, "name", a.Attr)
	assert.False(t, a.HasValue)
	assert.Equal(t, 2, a.Len())
}

func TestParseEqAssertionWithStringLiteral(t *testing.T) {
	tree, err := Parse(`fn:name == "foo"`)
	require.NoError(t, err)
	a := tree[0][0]
	assert.Equal(t, Eq, a.Op)
	assert.True(t, a.HasValue)
	assert.Equal(t, 4, a.Len())
	assert.False(t, a.Value.IsSet)
	assert.Equal(t, "foo", a.Value.One.Str)
	assert.False(t, a.Value.One.IsInt)
}

func TestParseAcceptsSingleAndDoubleQuotedStrings(t *testing.T) {
	tree, err := Parse(`fn:name == 'foo'`)
	require.NoError(t, err)
	assert.Equal(t, "foo", tree[0][0].Value.One.Str)
}

func TestParseNeqAssertionWithNumber(t *testing.T) {
	tree, err := Parse("fn:argcount != 3")
	require.NoError(t, err)
	a := tree[0][0]
	assert.Equal(t, Neq, a.Op)
	assert.True(t, a.Value.One.IsInt)
	assert.Equal(t, 3, a.Value.One.Int)
}

func TestParseInAssertionWithSet(t *testing.T) {
	tree, err := Parse(`cls:parent in {"Base", "Mixin"}`)
	require.NoError(t, err)
	a := tree[0][0]
	assert.Equal(t, In, a.Op)
	require.True(t, a.Value.IsSet)
	require.Len(t, a.Value.Set, 2)
	assert.Equal(t, "Base", a.Value.Set[0].Str)
	assert.Equal(t, "Mixin", a.Value.Set[1].Str)
}

func TestParseNotInNormalizesToSingleOperator(t *testing.T) {
	tree, err := Parse(`cls:parent not in {"Base"}`)
	require.NoError(t, err)
	assert.Equal(t, NotIn, tree[0][0].Op)
}

func TestParseSetOfNumbers(t *testing.T) {
	tree, err := Parse("fn:argcount in {1, 2, 3}")
	require.NoError(t, err)
	set := tree[0][0].Value.Set
	require.Len(t, set, 3)
	assert.Equal(t, 1, set[0].Int)
	assert.Equal(t, 2, set[1].Int)
	assert.Equal(t, 3, set[2].Int)
}

func TestParseMultipleAssertionsInExpression(t *testing.T) {
	tree, err := Parse(`fn:name == "foo", fn:argcount == 2`)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	require.Len(t, tree[0], 2)
	assert.Equal(t, "name", tree[0][0].Attr)
	assert.Equal(t, "argcount", tree[0][1].Attr)
}

func TestParseMultipleExpressionsAreUnioned(t *testing.T) {
	tree, err := Parse(`fn:name == "foo"; cls:name == "Bar"`)
	require.NoError(t, err)
	require.Len(t, tree, 2)
	assert.Equal(t, "fn", tree[0][0].Selector)
	assert.Equal(t, "cls", tree[1][0].Selector)
}

func TestParseEveryQueryIsEitherTreeOrError(t *testing.T) {
	inputs := []string{
		`fn:name`,
		`fn:name == "x"`,
		`fn:name == "x", cls:name == "y"; var:name`,
		``,
		`fn:`,
		`not a query at all`,
	}
	for _, in := range inputs {
		tree, err := Parse(in)
		if err != nil {
			assert.Nil(t, tree)
			continue
		}
		assert.NotNil(t, tree)
	}
}

func TestParseErrorOnMalformedField(t *testing.T) {
	_, err := Parse("fn name")
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
}

func TestParseErrorOnMissingAttr(t *testing.T) {
	_, err := Parse("fn:")
	require.Error(t, err)
}

func TestParseErrorOnDanglingOperator(t *testing.T) {
	_, err := Parse("fn:name ==")
	require.Error(t, err)
}

func TestParseErrorOnTrailingGarbage(t *testing.T) {
	_, err := Parse(`fn:name == "x" garbage`)
	require.Error(t, err)
}

func TestParseErrorOnUnterminatedString(t *testing.T) {
	_, err := Parse(`fn:name == "unterminated`)
	require.Error(t, err)
}

func TestParseErrorOnNotWithoutIn(t *testing.T) {
	_, err := Parse(`cls:parent not "Base"`)
	require.Error(t, err)
}

func TestParseErrorMessageHasCaret(t *testing.T) {
	_, err := Parse("fn name")
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "parse error at line 1, column")
	assert.Contains(t, msg, "^")
}

func TestParseEmptyInputFails(t *testing.T) {
	_, err := Parse("")
	require.Error(t, err)
}
