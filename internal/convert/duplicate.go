package convert

import (
	"strings"

	"github.com/heartmarshall/contentchef/internal/domain"
)

// DubMarker is appended to the title of every video that received an
// English clone.
const DubMarker = " -dubbed(KY)"

// DuplicateDubbed returns a copy of the tree in which every non-English
// video is immediately followed by an English clone. The clone points at
// the original audio track (its translated id is the original youtube id)
// so it is admitted with subtitles only. The original is marked Dubbed and
// its title gets DubMarker.
//
// The input tree is not modified. Topics are copied; nodes that do not
// change are shared between both trees.
func DuplicateDubbed(root *domain.Topic) *domain.Topic {
	if root == nil {
		return nil
	}
	return &domain.Topic{
		NodeBase: root.NodeBase,
		Children: duplicateChildren(root.Children),
	}
}

func duplicateChildren(children []domain.Node) []domain.Node {
	out := make([]domain.Node, 0, len(children))
	for _, child := range children {
		switch n := child.(type) {
		case *domain.Topic:
			out = append(out, DuplicateDubbed(n))
		case *domain.Video:
			if strings.EqualFold(n.Lang, englishCode) {
				out = append(out, n)
				continue
			}
			original := n.Clone()
			original.Title += DubMarker
			original.Dubbed = true

			replica := n.Clone()
			replica.TranslatedYoutubeID = n.YoutubeID
			replica.Lang = englishCode

			out = append(out, original, replica)
		default:
			out = append(out, child)
		}
	}
	return out
}
