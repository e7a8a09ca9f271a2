package display

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"regexp"

	"github.com/Masterminds/sprig/v3"
	"github.com/tdewolff/minify/v2"
	mincss "github.com/tdewolff/minify/v2/css"
	minhtml "github.com/tdewolff/minify/v2/html"
	minjs "github.com/tdewolff/minify/v2/js"
)

//go:embed templates/index.html
var templatesFS embed.FS

var pageTemplate = template.Must(
	template.New("index.html").Funcs(sprig.FuncMap()).ParseFS(templatesFS, "templates/index.html"),
)

var minifier = newMinifier()

type pageData struct {
	State
	Heading    string
	Accent     string
	ReloadPath string
}

func newMinifier() *minify.M {
	m := minify.New()
	m.AddFunc("text/css", mincss.Minify)
	m.AddFunc("text/html", minhtml.Minify)
	m.AddFuncRegexp(regexp.MustCompile("^(application|text)/(x-)?(java|ecma)script$"), minjs.Minify)
	return m
}

func renderPage(w io.Writer, state State) error {
	var buf bytes.Buffer
	data := pageData{
		State:      state,
		Heading:    "Blog",
		Accent:     "Gorilla",
		ReloadPath: ReloadPath,
	}
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return err
	}
	return minifier.Minify("text/html", w, &buf)
}
