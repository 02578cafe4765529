package pathrecon_test

import (
	"testing"

	"github.com/Unsaif/pathrecon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage_Text(t *testing.T) {
	t.Parallel()

	t.Run("joins words with single spaces", func(t *testing.T) {
		t.Parallel()

		p := &pathrecon.Page{Number: 1, Words: []pathrecon.Word{
			{Text: "the"}, {Text: "liver"}, {Text: "converts"}, {Text: "glucose"},
		}}

		assert.Equal(t, "the liver converts glucose", p.Text())
	})

	t.Run("empty page yields empty string", func(t *testing.T) {
		t.Parallel()

		p := &pathrecon.Page{Number: 1}
		assert.Equal(t, "", p.Text())
	})
}

func TestDocument_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()

		doc := &pathrecon.Document{Name: "paper.pdf", Pages: []*pathrecon.Page{
			{Number: 1, Words: []pathrecon.Word{{Text: "liver", X0: 10, Y0: 700, X1: 40, Y1: 712}}},
		}}

		require.NoError(t, doc.Validate())
	})

	t.Run("rejects zero page number", func(t *testing.T) {
		t.Parallel()

		doc := &pathrecon.Document{Pages: []*pathrecon.Page{{Number: 0}}}

		err := doc.Validate()
		require.Error(t, err)
		assert.Equal(t, pathrecon.EINVALID, pathrecon.ErrorCode(err))
	})

	t.Run("rejects inverted bounding box", func(t *testing.T) {
		t.Parallel()

		doc := &pathrecon.Document{Pages: []*pathrecon.Page{
			{Number: 1, Words: []pathrecon.Word{{Text: "liver", X0: 40, X1: 10}}},
		}}

		err := doc.Validate()
		require.Error(t, err)
		assert.Equal(t, pathrecon.EINVALID, pathrecon.ErrorCode(err))
	})

	t.Run("rejects negative coordinates", func(t *testing.T) {
		t.Parallel()

		doc := &pathrecon.Document{Pages: []*pathrecon.Page{
			{Number: 1, Words: []pathrecon.Word{{Text: "liver", X0: -1, X1: 10, Y0: 0, Y1: 10}}},
		}}

		err := doc.Validate()
		require.Error(t, err)
		assert.Equal(t, pathrecon.EINVALID, pathrecon.ErrorCode(err))
	})
}

func TestAnalysis_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid analysis", func(t *testing.T) {
		t.Parallel()

		a := &pathrecon.Analysis{Name: "paper.pdf", Pathway: &pathrecon.Pathway{}}
		require.NoError(t, a.Validate())
	})

	t.Run("requires name", func(t *testing.T) {
		t.Parallel()

		a := &pathrecon.Analysis{Pathway: &pathrecon.Pathway{}}
		err := a.Validate()
		require.Error(t, err)
		assert.Equal(t, pathrecon.EINVALID, pathrecon.ErrorCode(err))
	})

	t.Run("requires pathway", func(t *testing.T) {
		t.Parallel()

		a := &pathrecon.Analysis{Name: "paper.pdf"}
		err := a.Validate()
		require.Error(t, err)
		assert.Equal(t, pathrecon.EINVALID, pathrecon.ErrorCode(err))
	})
}
