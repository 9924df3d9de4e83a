package clierr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIncludesDetailWhenPresent(t *testing.T) {
	e := CLIError{Code: ErrParseQuery, Message: "bad query", Detail: "unexpected token"}
	assert.Equal(t, "bad query: unexpected token", e.Error())
}

func TestErrorOmitsDetailWhenAbsent(t *testing.T) {
	e := CLIError{Code: ErrParseQuery, Message: "bad query"}
	assert.Equal(t, "bad query", e.Error())
}

func TestJSONRoundTripsFields(t *testing.T) {
	e := CLIError{Code: ErrNoSemanticIndexer, Message: "no finder", Detail: "fn:bogus"}
	assert.Contains(t, e.JSON(), `"code":"ERR_NO_SEMANTIC_INDEXER"`)
	assert.Contains(t, e.JSON(), `"detail":"fn:bogus"`)
}

func TestWrapCarriesInnerErrorAsDetail(t *testing.T) {
	err := Wrap(ErrDiscovery, "scanning root", errors.New("permission denied"))
	var ce CLIError
	require := assert.New(t)
	require.True(errors.As(err, &ce))
	require.Equal("permission denied", ce.Detail)
}

func TestWrapWithNilInnerOmitsDetail(t *testing.T) {
	err := Wrap(ErrUnknown, "mystery", nil)
	var ce CLIError
	assert.True(t, errors.As(err, &ce))
	assert.Empty(t, ce.Detail)
}
