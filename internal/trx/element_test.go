package trx_test

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"trx-reporter/internal/trx"
)

func TestElement_Serialize(t *testing.T) {
	root := trx.NewElement("Root").Att("b", "2").Att("a", "1").Att("b", "3")
	root.Ele("Child").SetText("line one\nline <two> & \x00three")
	root.Ele("Empty").Att("q", `say "hi"`)

	out, err := root.Serialize()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, xml.Header))
	require.Contains(t, out, `<Root b="3" a="1">`)
	require.Contains(t, out, "\n  <Child>")

	var parsed struct {
		Child string `xml:"Child"`
		Empty struct {
			Q string `xml:"q,attr"`
		} `xml:"Empty"`
	}
	require.NoError(t, xml.Unmarshal([]byte(out), &parsed))
	require.Equal(t, "line one\nline <two> & three", parsed.Child)
	require.Equal(t, `say "hi"`, parsed.Empty.Q)
}

func TestElement_Accessors(t *testing.T) {
	root := trx.NewElement("Root")
	child := root.Ele("Child").Att("k", "v")

	require.Equal(t, "Root", root.Name())
	v, ok := child.Attr("k")
	require.True(t, ok)
	require.Equal(t, "v", v)
	_, ok = child.Attr("missing")
	require.False(t, ok)

	children := root.Children()
	require.Len(t, children, 1)
	children[0] = nil
	require.NotNil(t, root.Children()[0], "Children must return a copy")
}
