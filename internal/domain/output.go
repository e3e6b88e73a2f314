package domain

// ContentNode is a node of the converted output tree.
// The set of implementations is closed: *TopicNode, *ExerciseNode and *VideoNode.
type ContentNode interface {
	NodeKind() Kind
	contentNode()
}

// ContentBase holds the fields common to all output nodes.
type ContentBase struct {
	Kind        Kind   `json:"kind"`
	SourceID    string `json:"source_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Slug        string `json:"slug,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
}

func (b ContentBase) NodeKind() Kind { return b.Kind }

// TopicNode is an output topic. Converted topics always have at least one child.
type TopicNode struct {
	ContentBase
	Children []ContentNode `json:"children"`
}

func (*TopicNode) contentNode() {}

// NewTopicNode returns an empty topic shell.
func NewTopicNode(sourceID, slug, title, description string) *TopicNode {
	return &TopicNode{
		ContentBase: ContentBase{
			Kind:        KindTopic,
			SourceID:    sourceID,
			Title:       title,
			Description: TruncateDescription(description),
			Slug:        slug,
		},
		Children: []ContentNode{},
	}
}

// Question is one assessment item of an output exercise.
type Question struct {
	Type      QuestionType `json:"question_type"`
	ID        string       `json:"id"`
	ItemData  string       `json:"item_data"`
	SourceURL string       `json:"source_url"`
}

// ExerciseNode is an output exercise. Converted exercises always have at least one question.
type ExerciseNode struct {
	ContentBase
	ExerciseData MasteryModel `json:"exercise_data"`
	License      License      `json:"license"`
	Questions    []Question   `json:"questions"`
	Tags         []string     `json:"tags"`
}

func (*ExerciseNode) contentNode() {}

// File describes one file attached to an output video.
type File struct {
	Type           FileType `json:"file_type"`
	YoutubeID      string   `json:"youtube_id,omitempty"`
	Path           string   `json:"path,omitempty"`
	Language       string   `json:"language,omitempty"`
	HighResolution *bool    `json:"high_resolution,omitempty"`
}

// VideoNode is an output video.
type VideoNode struct {
	ContentBase
	License License `json:"license"`
	Files   []File  `json:"files"`
}

func (*VideoNode) contentNode() {}
