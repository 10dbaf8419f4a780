package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLToText_BlocksBecomeLines(t *testing.T) {
	html := `<html><body>
		<h1>Jean Dupont</h1>
		<p>Développeur<br/>Paris</p>
		<ul><li>Go</li><li>SQL</li></ul>
	</body></html>`

	text, err := HTMLToText(html)
	require.NoError(t, err)

	assert.Equal(t, "Jean Dupont\nDéveloppeur\nParis\n- Go\n- SQL", text)
}

func TestHTMLToText_RemovesNonContent(t *testing.T) {
	html := `<html><head><title>Title</title><style>p { color: red; }</style></head>
		<body><script>alert("x")</script><p>Visible</p><noscript>Enable JS</noscript></body></html>`

	text, err := HTMLToText(html)
	require.NoError(t, err)

	assert.Equal(t, "Visible", text)
}

func TestHTMLToText_Fragment(t *testing.T) {
	text, err := HTMLToText("<div>Infirmière</div><div>CHU de Nantes</div>")
	require.NoError(t, err)

	assert.Equal(t, "Infirmière\nCHU de Nantes", text)
}

func TestHTMLToText_Empty(t *testing.T) {
	text, err := HTMLToText("")
	require.NoError(t, err)
	assert.Empty(t, text)
}
