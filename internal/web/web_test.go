package web

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesParse(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	for _, name := range []string{"index.html", "verify_email.html", "register.html", "login.html", "dashboard.html", "recipes.html", "header", "footer"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestStaticFiles(t *testing.T) {
	for _, name := range []string{"/js/recipes.js", "/js/restaurants.js", "/css/style.css"} {
		f, err := Static().Open(name)
		require.NoError(t, err, name)
		data, err := io.ReadAll(f)
		f.Close()
		require.NoError(t, err)
		assert.NotEmpty(t, data)
	}
}
