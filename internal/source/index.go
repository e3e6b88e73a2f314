package source

import "github.com/heartmarshall/contentchef/internal/domain"

// Index maps every slug in the tree to its node. When a slug occurs more
// than once the first node in depth-first order wins.
func Index(root *domain.Topic) map[string]domain.Node {
	idx := make(map[string]domain.Node)
	if root == nil {
		return idx
	}
	var walk func(n domain.Node)
	walk = func(n domain.Node) {
		slug := n.Base().Slug
		if _, exists := idx[slug]; !exists {
			idx[slug] = n
		}
		if t, ok := n.(*domain.Topic); ok {
			for _, c := range t.Children {
				walk(c)
			}
		}
	}
	walk(root)
	return idx
}
