package subtitles

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

var ErrMalformedXML = errors.New("XML mal formé")

// utf8BOM : marque d'ordre des octets qu'on trouve en tête de certains exports.
var utf8BOM = []byte("\xef\xbb\xbf")

// Node est un élément XML réduit à ce dont l'extraction de texte a besoin.
// Text contient le texte situé avant le premier enfant, Tail celui qui suit
// la balise fermante de l'élément (toujours à l'intérieur du parent).
type Node struct {
	Name     string // nom local, sans namespace ni préfixe
	Space    string // namespace résolu (informatif, jamais utilisé pour comparer)
	Attrs    []xml.Attr
	Text     string
	Tail     string
	Children []*Node
}

// ParseTTML construit l'arbre de Node à partir d'un document XML complet.
// Le décodeur est strict : entités inconnues, balises non fermées ou
// contenu hors de la racine renvoient une erreur qui enveloppe ErrMalformedXML.
// Un BOM UTF-8 initial est ignoré ; un encodage déclaré autre qu'UTF-8
// (ISO-8859-1, windows-1252...) est converti à la lecture.
func ParseTTML(data []byte) (*Node, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charset.NewReaderLabel

	var root *Node
	var stack []*Node

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedXML, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{
				Name:  t.Name.Local,
				Space: t.Name.Space,
				Attrs: append([]xml.Attr(nil), t.Attr...),
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("%w: plusieurs éléments racine (<%s>)", ErrMalformedXML, n.Name)
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)

		case xml.EndElement:
			// le décodeur strict garantit l'appariement des balises
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) == 0 {
				if strings.TrimSpace(string(t)) != "" {
					return nil, fmt.Errorf("%w: texte hors de l'élément racine", ErrMalformedXML)
				}
				continue
			}
			cur := stack[len(stack)-1]
			if len(cur.Children) == 0 {
				cur.Text += string(t)
			} else {
				last := cur.Children[len(cur.Children)-1]
				last.Tail += string(t)
			}
		}
		// commentaires, instructions et directives sont ignorés
	}

	if root == nil {
		return nil, fmt.Errorf("%w: document vide", ErrMalformedXML)
	}
	return root, nil
}

// Attr retourne la valeur de l'attribut de nom local `name`, namespace ignoré.
func (n *Node) Attr(name string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attrs {
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			continue
		}
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// Child retourne le premier enfant direct nommé `name`, ou nil.
func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ChildrenNamed retourne les enfants directs nommés `name`, dans l'ordre du document.
func (n *Node) ChildrenNamed(name string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Find cherche en profondeur (ordre du document) le premier descendant nommé `name`.
// Le noeud n lui-même n'est pas candidat.
func (n *Node) Find(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}
