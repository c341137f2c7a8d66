package web

import (
	"bytes"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexTemplate_EscapesTitle(t *testing.T) {
	var buf bytes.Buffer

	err := Templates.ExecuteTemplate(&buf, IndexTemplate, map[string]string{
		"Title":   `<script>alert(1)</script>`,
		"Version": "1.0.0",
	})
	require.NoError(t, err)

	page := buf.String()
	assert.NotContains(t, page, "<script>alert(1)</script>")
	assert.Contains(t, page, "&lt;script&gt;")
	assert.Contains(t, page, `/static/js/scripts.js`)
}

func TestStatic_ContainsAssets(t *testing.T) {
	for _, name := range []string{"js/scripts.js", "css/styles.css"} {
		_, err := fs.Stat(Static(), name)
		assert.NoError(t, err, name)
	}
}
