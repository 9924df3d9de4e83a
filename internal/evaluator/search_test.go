package evaluator

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harlowlabs/semq/internal/ast"
	"github.com/harlowlabs/semq/internal/index"
	"github.com/harlowlabs/semq/internal/provider"
	"github.com/harlowlabs/semq/internal/provider/python"
	"github.com/harlowlabs/semq/internal/query"
)

const sample = `
def fn2(arg1, arg2):
    def fn3(*myargs, **mykwargs):
        pass

def fn1(a='hello'):
    pass
`

func buildIndex(t *testing.T) *index.Index {
	t.Helper()
	p := python.New()
	root, err := p.Build("sample.py", []byte(sample))
	require.NoError(t, err)
	return index.New(root)
}

func names(nodes []*ast.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		name, _ := n.Name()
		out = append(out, name)
	}
	return out
}

func mustParse(t *testing.T, q string) query.Tree {
	t.Helper()
	tree, err := query.Parse(q)
	require.NoError(t, err)
	return tree
}

// Scenario table from §8's property checks, against the documented sample.
func TestEvaluateTreeScenarios(t *testing.T) {
	ix := buildIndex(t)

	cases := []struct {
		query string
		want  []string
	}{
		{`fn:name == "fn1"`, []string{"fn1"}},
		{`fn:name != "fn1"`, []string{"fn2", "fn3"}},
		{`fn:name == "fn1", fn:name == "fn2"`, nil},
		{`fn:name == "fn1"; fn:name == "fn2"`, []string{"fn1", "fn2"}},
		{`fn:name in {"fn1","fn2"}`, []string{"fn1", "fn2"}},
		{`fn:argcount in {2}`, []string{"fn2", "fn3"}},
		{`fn:argcount not in {2}`, []string{"fn1"}},
		{`fn:name`, []string{"fn1", "fn2", "fn3"}},
	}

	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			tree := mustParse(t, tc.query)
			got, err := EvaluateTree(ix, tree)
			require.NoError(t, err)
			assert.ElementsMatch(t, tc.want, names(got))
		})
	}
}

func TestEvaluateExpressionCommaNarrows(t *testing.T) {
	ix := buildIndex(t)
	expr := mustParse(t, `fn:argcount in {2}, fn:name == "fn2"`)[0]
	got, err := EvaluateExpression(ix, expr)
	require.NoError(t, err)
	assert.Equal(t, []string{"fn2"}, names(got))
}

func TestEvaluateExpressionUnknownSelectorSurfaces(t *testing.T) {
	ix := buildIndex(t)
	expr := mustParse(t, `foo:bar == "x"`)[0]
	_, err := EvaluateExpression(ix, expr)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no registered finder")
}

func TestSearchYieldsMatchesInLineOrderAcrossFiles(t *testing.T) {
	registry := provider.NewRegistry()
	registry.Register(python.New())

	sources := map[string][]byte{
		"a.py": []byte(sample),
		"b.py": []byte("def only_in_b():\n    pass\n"),
	}

	matches, errs := Search(context.Background(), registry, []string{"a.py", "b.py"}, mustParse(t, "fn:name"), func(path string) ([]byte, error) {
		src, ok := sources[path]
		if !ok {
			return nil, fmt.Errorf("no such file: %s", path)
		}
		return src, nil
	})

	var got []Match
	for m := range matches {
		got = append(got, m)
	}
	require.NoError(t, <-errs)

	require.Len(t, got, 4)
	assert.Equal(t, "a.py", got[0].Path)
	assert.Equal(t, "a.py", got[1].Path)
	assert.Equal(t, "a.py", got[2].Path)
	assert.Equal(t, "b.py", got[3].Path)

	for i := 1; i < 3; i++ {
		assert.LessOrEqual(t, got[i-1].Node.Line(), got[i].Node.Line())
	}
}

func TestSearchSkipsFilesWithSyntaxErrors(t *testing.T) {
	registry := provider.NewRegistry()
	registry.Register(python.New())

	sources := map[string][]byte{
		"broken.py": []byte("def f(:\n    pass\n"),
		"ok.py":     []byte("def fn1():\n    pass\n"),
	}

	matches, errs := Search(context.Background(), registry, []string{"broken.py", "ok.py"}, mustParse(t, "fn:name"), func(path string) ([]byte, error) {
		return sources[path], nil
	})

	var got []Match
	for m := range matches {
		got = append(got, m)
	}
	require.NoError(t, <-errs)
	require.Len(t, got, 1)
	assert.Equal(t, "ok.py", got[0].Path)
}

func TestSearchSkipsFilesWithUnknownExtension(t *testing.T) {
	registry := provider.NewRegistry()
	registry.Register(python.New())

	matches, errs := Search(context.Background(), registry, []string{"notes.txt"}, mustParse(t, "fn:name"), func(path string) ([]byte, error) {
		t.Fatalf("read should not be called for an unhandled extension")
		return nil, nil
	})

	var got []Match
	for m := range matches {
		got = append(got, m)
	}
	require.NoError(t, <-errs)
	assert.Empty(t, got)
}

func TestSearchCancellationStopsEarly(t *testing.T) {
	registry := provider.NewRegistry()
	registry.Register(python.New())

	ctx, cancel := context.WithCancel(context.Background())
	sources := map[string][]byte{
		"a.py": []byte(sample),
		"b.py": []byte(sample),
		"c.py": []byte(sample),
	}

	matches, errs := Search(ctx, registry, []string{"a.py", "b.py", "c.py"}, mustParse(t, "fn:name"), func(path string) ([]byte, error) {
		return sources[path], nil
	})

	m, ok := <-matches
	require.True(t, ok)
	assert.Equal(t, "a.py", m.Path)
	cancel()

	for range matches {
		// drain until the feeding goroutine observes cancellation and closes.
	}
	<-errs
}
