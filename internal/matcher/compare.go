package matcher

import "github.com/harlowlabs/semq/internal/query"

// matchString applies an assertion's operator to a single string value.
// Absent operator (shorthand) always matches (§4.3).
func matchString(a query.Assertion, actual string) bool {
	if !a.HasValue {
		return true
	}
	switch a.Op {
	case query.Eq:
		return actual == a.Value.One.Str
	case query.Neq:
		return actual != a.Value.One.Str
	case query.In:
		return stringInSet(actual, a.Value.Set)
	case query.NotIn:
		return !stringInSet(actual, a.Value.Set)
	default:
		return false
	}
}

// matchInt applies an assertion's operator to a single integer value.
func matchInt(a query.Assertion, actual int) bool {
	if !a.HasValue {
		return true
	}
	switch a.Op {
	case query.Eq:
		return actual == a.Value.One.Int
	case query.Neq:
		return actual != a.Value.One.Int
	case query.In:
		return intInSet(actual, a.Value.Set)
	case query.NotIn:
		return !intInSet(actual, a.Value.Set)
	default:
		return false
	}
}

func stringInSet(actual string, set []query.Literal) bool {
	for _, lit := range set {
		if lit.Str == actual {
			return true
		}
	}
	return false
}

func intInSet(actual int, set []query.Literal) bool {
	for _, lit := range set {
		if lit.Int == actual {
			return true
		}
	}
	return false
}
