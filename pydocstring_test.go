package pydocstring

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xonecas/pydocstring/internal/format"
	"github.com/xonecas/pydocstring/internal/locate"
)

func TestGenerateVariadics(t *testing.T) {
	src := "\ndef method(*args, **kwargs):\n    pass\n"
	for _, strategy := range locate.Strategies() {
		t.Run(string(strategy), func(t *testing.T) {
			text, err := Generate(src, WithPosition(2, 2), WithStyle("google"), WithStrategy(strategy))
			require.NoError(t, err)
			assert.Equal(t, "\n\n\nArgs:\n    *args: Variable length argument list.\n    **kwargs: Arbitrary keyword arguments.\n\n", text)
		})
	}
}

func TestGenerateAnnotatedReturn(t *testing.T) {
	text, err := Generate("\ndef method() -> int:\n    return var1\n", WithPosition(2, 2))
	require.NoError(t, err)
	assert.Contains(t, text, "Returns:\n    int: var1\n")
	assert.Equal(t, "\n\n\nReturns:\n    int: var1\n\n", text)
}

func TestGenerateEmptyModule(t *testing.T) {
	text, err := Generate("", WithPosition(1, 0), WithStyle("numpy"))
	require.NoError(t, err)
	assert.Equal(t, "\n\nEmpty Module\n\n", text)
}

func TestGenerateDefaults(t *testing.T) {
	text, err := Generate("x = 1\n")
	require.NoError(t, err)
	assert.Equal(t, "\n\n\nAttributes:\n    x (int): 1\n\n", text)
}

func TestGenerateInvalidFormatter(t *testing.T) {
	_, err := Generate("def f():\n    pass\n", WithStyle("yaml"))
	require.Error(t, err)

	var fe *InvalidFormatterError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "yaml", fe.Style)
	assert.ErrorIs(t, err, format.ErrUnknownStyle)
}

func TestGenerateInvalidFormatterBeforeParsing(t *testing.T) {
	// An unusable position would fail later; the style check comes first.
	_, err := Generate("", WithStyle("yaml"), WithPosition(99, 0))
	var fe *InvalidFormatterError
	assert.ErrorAs(t, err, &fe)
}

func TestGenerateFailedPosition(t *testing.T) {
	for _, pos := range [][2]int{{0, 0}, {5, 0}, {1, -1}} {
		_, err := Generate("def f():\n    pass\n", WithPosition(pos[0], pos[1]))
		var fe *FailedToGenerateError
		require.ErrorAs(t, err, &fe, "position %v", pos)
		assert.ErrorIs(t, err, locate.ErrInvalidPosition)
	}
}

func TestGenerateUnknownStrategy(t *testing.T) {
	_, err := Generate("x = 1\n", WithStrategy("guess"))
	var fe *FailedToGenerateError
	assert.ErrorAs(t, err, &fe)
}

func TestGenerateRaises(t *testing.T) {
	src := "def f():\n    raise MyException()\n    raise Exception\n"
	text, err := Generate(src, WithPosition(1, 4))
	require.NoError(t, err)
	assert.Equal(t, "\n\n\nRaises:\n    MyException: \n    Exception: \n\n", text)
}

func TestGenerateStyles(t *testing.T) {
	src := "def f(p1, p2=2) -> bool:\n    return p1 == p2\n"
	tests := []struct {
		style string
		want  string
	}{
		{
			"google",
			"\n\n\nArgs:\n    p1 (TYPE): \n    p2 (int):  default: ``2``\n\n\nReturns:\n    bool: p1 == p2\n\n",
		},
		{
			"numpy",
			"\n\n\n    Parameters\n    ----------\n    p1 : TYPE\n        \n    p2 : int\n         default: ``2``\n\n\n    Returns\n    -------\n    bool\n        p1 == p2\n\n",
		},
		{
			"rest",
			"\n\n\n:param p1: \n:type p1: TYPE\n:param p2:  default: ``2``\n:type p2: int\n\n\n:return: p1 == p2\n:rtype: bool\n\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			text, err := Generate(src, WithPosition(1, 4), WithStyle(tt.style))
			require.NoError(t, err)
			assert.Equal(t, tt.want, text)
		})
	}
}

func TestGenerateClass(t *testing.T) {
	src := `class Sample:
    attr1 = 3 * some_var
    attr2 = 2

    def __init__(self):
        self.attr2 = 'two'

    class Nested:
        hidden = 1
`
	text, err := Generate(src, WithPosition(2, 4))
	require.NoError(t, err)
	assert.Equal(t, "\n\n\nAttributes:\n    attr1 (TYPE): 3 * some_var\n    attr2 (str): 'two'\n\n", text)
}

func TestGenerateAutocomplete(t *testing.T) {
	src := "def f(a):\n    \"\"\"\n    return a\n"
	text, err := Generate(src, WithPosition(2, 7), WithAutocomplete(true))
	require.NoError(t, err)
	assert.Equal(t, "\n\n\nArgs:\n    a (TYPE): \n\n\nReturns:\n    TYPE: a\n\n", text)

	// Without the adjustment the open string swallows the body.
	plain, err := Generate(src, WithPosition(2, 7))
	require.NoError(t, err)
	assert.NotEqual(t, text, plain)
}

func TestGenerateAutocompleteWithoutBody(t *testing.T) {
	// A header with nothing under it but the typed delimiter does not parse
	// as a definition, so the cursor falls back to the module.
	src := "def f(a, b=1):\n    \"\"\""
	for _, strategy := range locate.Strategies() {
		t.Run(string(strategy), func(t *testing.T) {
			text, err := Generate(src, WithPosition(2, 7), WithAutocomplete(true), WithStrategy(strategy))
			require.NoError(t, err)
			assert.Equal(t, format.EmptyModule, text)
		})
	}
}

func TestGenerateSilentByDefault(t *testing.T) {
	var global bytes.Buffer
	saved := log.Logger
	log.Logger = zerolog.New(&global)
	t.Cleanup(func() { log.Logger = saved })

	src := "\ndef method(*args, **kwargs):\n    pass\n"
	_, err := Generate(src, WithPosition(2, 2))
	require.NoError(t, err)
	assert.Empty(t, global.String())

	var injected bytes.Buffer
	_, err = Generate(src, WithPosition(2, 2), WithLogger(zerolog.New(&injected)))
	require.NoError(t, err)
	assert.Contains(t, injected.String(), "declaration located")
	assert.Contains(t, injected.String(), "docstring rendered")
	assert.Empty(t, global.String())
}

func TestPrepare(t *testing.T) {
	text := []byte("ab\n  \"\"\"x\n")

	out, pos, err := prepare(text, Position{Row: 2, Column: 5}, true)
	require.NoError(t, err)
	assert.Equal(t, "ab\n  x\n", string(out))
	assert.Equal(t, Position{Row: 2, Column: 2}, pos)

	out, pos, err = prepare(text, Position{Row: 2, Column: 2}, true)
	require.NoError(t, err)
	assert.Equal(t, string(text), string(out), "fewer than three characters before the cursor")
	assert.Equal(t, Position{Row: 2, Column: 2}, pos)

	out, _, err = prepare(text, Position{Row: 2, Column: 5}, false)
	require.NoError(t, err)
	assert.Equal(t, string(text), string(out))

	_, _, err = prepare(text, Position{Row: 9, Column: 5}, true)
	assert.True(t, errors.Is(err, locate.ErrInvalidPosition))
}

func TestGenerateIdempotent(t *testing.T) {
	src := "class A:\n    x = 3\n\n    def __init__(self):\n        self.x = 0\n"
	first, err := Generate(src, WithPosition(1, 0), WithStyle("reST"))
	require.NoError(t, err)
	for n := 0; n < 5; n++ {
		again, err := Generate(src, WithPosition(1, 0), WithStyle("reST"))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, "\n\n\n:var x: 0\n:type x: int\n\n", first)
}

func TestGenerateConcurrent(t *testing.T) {
	src := "def f(x=[1, 2]):\n    yield x\n"
	want, err := Generate(src, WithPosition(1, 0))
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = Generate(src, WithPosition(1, 0))
		}()
	}
	wg.Wait()
	for _, got := range results {
		assert.Equal(t, want, got)
	}
	assert.Contains(t, want, "x (list):  default: ``[1, 2]``")
	assert.Contains(t, want, "Yields:\n    TYPE: x\n")
}

func TestIngest(t *testing.T) {
	facts, err := Ingest("def f(a: int, *rest):\n    return a\n", WithPosition(1, 0))
	require.NoError(t, err)
	assert.Equal(t, KindFunction, facts.Kind)
	assert.Equal(t, Position{Row: 1, Column: 0}, facts.Position)

	fn, ok := facts.Details.(*FunctionDetails)
	require.True(t, ok)
	assert.Equal(t, "rest", fn.Args)
	require.Len(t, fn.Params, 1)
	assert.Equal(t, "int", fn.Params[0].Type)
}

func TestErrorMessages(t *testing.T) {
	err := &FailedToGenerateError{Position: Position{Row: 3, Column: 1}, Err: locate.ErrNoScope}
	assert.Equal(t, "failed to generate docstring at 3:1: no enclosing scope", err.Error())
	assert.ErrorIs(t, err, locate.ErrNoScope)

	ee := &ExtractionError{Kind: KindClass, Err: errors.New("bad node")}
	assert.Equal(t, "failed to extract class facts: bad node", ee.Error())

	assert.Equal(t, `invalid formatter "yaml"`, (&InvalidFormatterError{Style: "yaml"}).Error())
}

func TestStyles(t *testing.T) {
	assert.Equal(t, []string{"google", "numpy", "reST"}, Styles())
}
