package pdf

import (
	"bytes"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/require"
)

// blankTemplate builds a minimal single-page template PDF in the given
// orientation, standing in for the operator-supplied asset.
func blankTemplate(t *testing.T, orientation string) []byte {
	t.Helper()

	doc := fpdf.New(orientation, "pt", "A4", "")
	doc.SetCompression(false)
	doc.AddPage()
	doc.SetFont("Helvetica", "", 10)
	doc.Text(40, 40, "TEMPLATE")

	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))
	return buf.Bytes()
}

// countText counts how many times value was drawn into the document. Streams
// are written uncompressed, so every drawn string appears as a
// parenthesized literal.
func countText(out []byte, value string) int {
	return bytes.Count(out, []byte("("+value+")"))
}
