package treebuilder_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordring/gowordring"
	htmlerrors "github.com/wordring/gowordring/errors"
)

func TestDeepNestingReportsStackOverflowInsteadOfUnboundedGrowth(t *testing.T) {
	depth := 2000
	html := strings.Repeat("<div>", depth) + "text" + strings.Repeat("</div>", depth)

	doc, err := gowordring.Parse(html, gowordring.WithCollectErrors())
	require.NotNil(t, doc, "a deeply nested document must still produce a tree")

	var perrs htmlerrors.ParseErrors
	require.ErrorAs(t, err, &perrs)

	found := false
	for _, e := range perrs {
		if e.Code == htmlerrors.StackOverflow {
			found = true
			break
		}
	}
	assert.True(t, found, "expected a stack-overflow parse error for %d levels of nesting", depth)
}
