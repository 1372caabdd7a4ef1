// Package web serves the embedded browser UI.
package web

import (
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/phyten/contrastcheck/internal/i18n"
)

const (
	StylesPath = "/assets/styles.css"
	ScriptPath = "/assets/ui.js"

	pageCSP = "default-src 'none'; style-src 'self'; script-src 'self'; img-src 'self'; connect-src 'self'; form-action 'self'; base-uri 'none'"
)

var (
	//go:embed templates/index.html
	indexHTML string
	indexTmpl = template.Must(template.New("index").Parse(indexHTML))

	//go:embed assets/styles.css
	stylesCSS string

	//go:embed assets/ui.js
	scriptJS string
)

// asset is an embedded file with a strong validator derived from its bytes.
type asset struct {
	contentType string
	body        []byte
	etag        string
}

func newAsset(contentType, body string) asset {
	sum := sha256.Sum256([]byte(body))
	return asset{contentType: contentType, body: []byte(body), etag: `"` + hex.EncodeToString(sum[:8]) + `"`}
}

var (
	stylesAsset = newAsset("text/css; charset=utf-8", stylesCSS)
	scriptAsset = newAsset("application/javascript; charset=utf-8", scriptJS)
)

type indexData struct {
	StylesPath string
	ScriptPath string
	Lang       string
	Languages  []string
}

// Script returns the embedded UI script.
func Script() string { return scriptJS }

// Register mounts the page and its assets on r.
func Register(r gin.IRoutes) {
	r.GET("/", Index)
	r.GET(StylesPath, serveAsset(stylesAsset))
	r.GET(ScriptPath, serveAsset(scriptAsset))
}

// Index renders the page. The preselected language follows the request's
// Accept-Language header.
func Index(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Header("Content-Security-Policy", pageCSP)
	c.Header("Cache-Control", "no-cache")
	data := indexData{
		StylesPath: StylesPath,
		ScriptPath: ScriptPath,
		Lang:       i18n.Match(c.GetHeader("Accept-Language")).String(),
		Languages:  i18n.Supported(),
	}
	c.Status(http.StatusOK)
	if err := indexTmpl.Execute(c.Writer, data); err != nil {
		_ = c.Error(err)
	}
}

func serveAsset(a asset) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("ETag", a.etag)
		c.Header("Cache-Control", "public, max-age=86400")
		if c.GetHeader("If-None-Match") == a.etag {
			c.Status(http.StatusNotModified)
			return
		}
		c.Data(http.StatusOK, a.contentType, a.body)
	}
}
