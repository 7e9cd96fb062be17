package main

import (
	"fmt"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-elements/pkg/document"
	"github.com/goliatone/go-elements/pkg/materialize"
)

const defaultLayout = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{ title }}</title>
</head>
<body>
{{ body|safe }}
</body>
</html>`

type renderOptions struct {
	Page   bool
	Layout string
}

// renderFile materializes the document at path into a fresh document so
// repeated renders in watch mode never share nodes.
func renderFile(path string, opts renderOptions) (string, error) {
	doc, err := document.LoadFile(path)
	if err != nil {
		return "", err
	}
	return renderDocument(doc, opts)
}

func renderDocument(doc document.Document, opts renderOptions) (string, error) {
	body, err := doc.RenderHTML(materialize.New())
	if err != nil {
		return "", err
	}
	if !opts.Page {
		return body, nil
	}
	return renderPage(doc.Title, body, opts.Layout)
}

func renderPage(title, body, layoutPath string) (string, error) {
	var (
		tpl *pongo2.Template
		err error
	)
	if layoutPath != "" {
		tpl, err = pongo2.FromFile(layoutPath)
	} else {
		tpl, err = pongo2.FromString(defaultLayout)
	}
	if err != nil {
		return "", fmt.Errorf("load layout: %w", err)
	}

	out, err := tpl.Execute(pongo2.Context{
		"title": title,
		"body":  body,
	})
	if err != nil {
		return "", fmt.Errorf("execute layout: %w", err)
	}
	return out, nil
}
