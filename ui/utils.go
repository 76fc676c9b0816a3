package ui

import (
	"encoding/json"
	"html/template"
	"log"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// renderMarkdown converts an interpretation sentence (which carries **bold**
// variable names) into inline HTML.
func renderMarkdown(text string) template.HTML {
	p := parser.New()
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	return template.HTML(markdown.ToHTML([]byte(text), p, renderer))
}

// toJSON serializes a chart spec for the client-side renderer
func toJSON(v interface{}) template.JS {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Printf("toJSON: %v", err)
		return template.JS("null")
	}
	return template.JS(raw)
}
