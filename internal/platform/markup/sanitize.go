// Package markup normaliza el HTML que devuelve el modelo generativo.
package markup

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// bodyContext: parseamos como fragmento dentro de <body> para no agregar <html><head><body>.
var bodyContext = &html.Node{
	Type:     html.ElementNode,
	Data:     "body",
	DataAtom: atom.Body,
}

// maxPasses acota la búsqueda del punto fijo de parse+render.
const maxPasses = 8

// Sanitize reescribe <strong> como **texto** y <em> como _texto_.
// El resto del árbol se serializa sin cambios. Nunca falla: si el parser
// o el render fallan, devuelve la entrada tal cual.
//
// Con HTML mal formado un solo parse+render puede dejar un árbol que se
// reparsea distinto (p. ej. <a> o <h3> anidados, contenido dentro de <table>),
// así que se repite hasta que la salida no cambia.
func Sanitize(s string) string {
	out, ok := sanitizeOnce(s)
	if !ok {
		return s
	}
	for i := 1; i < maxPasses; i++ {
		next, ok := sanitizeOnce(out)
		if !ok || next == out {
			break
		}
		out = next
	}
	return out
}

func sanitizeOnce(s string) (string, bool) {
	nodes, err := html.ParseFragment(strings.NewReader(s), bodyContext)
	if err != nil {
		return "", false
	}

	var buf bytes.Buffer
	for _, n := range nodes {
		// ParseFragment devuelve los hijos del contexto ya desenganchados.
		switch repl := replacement(n); {
		case repl != nil:
			n = repl
		case n.Type == html.TextNode:
			n = rawText(n.Data)
		default:
			rewrite(n)
		}
		if err := html.Render(&buf, n); err != nil {
			return "", false
		}
	}
	return buf.String(), true
}

// rewrite recorre en pre-orden; un elemento reescrito se reemplaza por un
// nodo raw, así que sus descendientes no se visitan. El texto también pasa a
// raw para escapar solo & < y >.
func rewrite(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if repl := replacement(c); repl != nil {
			n.InsertBefore(repl, c)
			n.RemoveChild(c)
		} else if c.Type == html.TextNode && !rawTextParent(n) {
			data := c.Data
			// el parser descarta el primer salto de línea tras <pre>, <listing> y <textarea>
			if c == n.FirstChild && leadingNewlineParent(n) && strings.HasPrefix(data, "\n") {
				data = "\n" + data
			}
			n.InsertBefore(rawText(data), c)
			n.RemoveChild(c)
		} else {
			rewrite(c)
		}
		c = next
	}
}

func replacement(n *html.Node) *html.Node {
	if n.Type != html.ElementNode || n.Namespace != "" {
		return nil
	}

	var marker string
	switch n.DataAtom {
	case atom.Strong:
		marker = "**"
	case atom.Em:
		marker = "_"
	default:
		return nil
	}

	return rawText(marker + textContent(n) + marker)
}

func rawText(s string) *html.Node {
	return &html.Node{Type: html.RawNode, Data: escapeText(s)}
}

// textEscaper solo escapa lo que el parser necesita para reconstruir el texto;
// html.Render además escaparía comillas y apóstrofes.
var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeText(s string) string { return textEscaper.Replace(s) }

// rawTextParent: html.Render ya escribe sin escapar el texto de estos elementos.
func rawTextParent(n *html.Node) bool {
	if n.Type != html.ElementNode || n.Namespace != "" {
		return false
	}
	switch n.Data {
	case "iframe", "noembed", "noframes", "noscript", "plaintext", "script", "style", "xmp":
		return true
	}
	return false
}

func leadingNewlineParent(n *html.Node) bool {
	if n.Type != html.ElementNode || n.Namespace != "" {
		return false
	}
	switch n.Data {
	case "pre", "listing", "textarea":
		return true
	}
	return false
}

// textContent concatena todos los nodos de texto descendientes.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
