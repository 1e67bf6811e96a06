package subtitles

import "strings"

// ExtractText rassemble récursivement tout le texte d'un élément :
// son texte propre, puis pour chaque enfant (ordre du document) le texte
// extrait de l'enfant suivi de son "tail". Les fragments sont joints par un
// espace puis le résultat est trimé.
//
// Le texte extrait d'un enfant est ajouté même s'il est vide, ce qui peut
// produire des espaces doubles à l'intérieur du résultat.
func ExtractText(n *Node) string {
	if n == nil {
		return ""
	}
	var texts []string
	if n.Text != "" {
		texts = append(texts, n.Text)
	}
	for _, c := range n.Children {
		texts = append(texts, ExtractText(c))
		if c.Tail != "" {
			texts = append(texts, c.Tail)
		}
	}
	return strings.TrimSpace(strings.Join(texts, " "))
}
