// Package renderer turns rendered documents into files: full HTML pages and
// PDF exports.
package renderer

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// RootID is the id of the shell element documents are mounted into.
const RootID = "root"

// DefaultShell is used when no built page shell is configured.
const DefaultShell = `<!doctype html>
<html lang="en">
<head><meta charset="utf-8"><title>Resume</title></head>
<body><div id="root"></div></body>
</html>`

// Mount parses shell and appends node to its element with id "root",
// falling back to <body> when the shell has none.
func Mount(shell string, node *html.Node) (page []byte, err error) {
	var doc *html.Node
	doc, err = html.Parse(strings.NewReader(shell))
	if err != nil {
		err = errors.Wrap(err, "failed to parse page shell")
		return page, err
	}

	root := findByID(doc, RootID)
	if root == nil {
		root = findElement(doc, "body")
	}
	if root == nil {
		err = errors.New("page shell has no root element")
		return page, err
	}
	if node != nil {
		root.AppendChild(node)
	}

	var buf bytes.Buffer
	err = html.Render(&buf, doc)
	if err != nil {
		err = errors.Wrap(err, "failed to render page")
		return page, err
	}

	page = buf.Bytes()
	return page, err
}

// ReadShell returns the shell at path, or DefaultShell when path is empty.
func ReadShell(path string) (shell string, err error) {
	if path == "" {
		shell = DefaultShell
		return shell, err
	}

	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read page shell: %s", path)
		return shell, err
	}

	shell = string(data)
	return shell, err
}

// WriteHTML writes a rendered page to a file.
func WriteHTML(content []byte, outputPath string) (err error) {
	// Ensure output directory exists
	outputDir := filepath.Dir(outputPath)
	err = os.MkdirAll(outputDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outputDir)
		return err
	}

	err = os.WriteFile(outputPath, content, 0644)
	if err != nil {
		err = errors.Wrapf(err, "failed to write HTML file: %s", outputPath)
		return err
	}

	return err
}

// Cleanup removes intermediate files after PDF generation.
func Cleanup(paths ...string) (err error) {
	for _, path := range paths {
		err = os.Remove(path)
		if err != nil {
			err = errors.Wrapf(err, "failed to remove file: %s", path)
			return err
		}
	}
	return err
}

func findByID(n *html.Node, id string) (found *html.Node) {
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Key == "id" && a.Val == id {
				found = n
				return found
			}
		}
	}
	for c := n.FirstChild; c != nil && found == nil; c = c.NextSibling {
		found = findByID(c, id)
	}
	return found
}

func findElement(n *html.Node, tag string) (found *html.Node) {
	if n.Type == html.ElementNode && n.Data == tag {
		found = n
		return found
	}
	for c := n.FirstChild; c != nil && found == nil; c = c.NextSibling {
		found = findElement(c, tag)
	}
	return found
}
