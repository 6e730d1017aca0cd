package domain

// ConnectionType distinguishes the two kinds of edges in the
// knowledge graph.
type ConnectionType string

const (
	// ConnectionReference is a directional edge created by an explicit
	// [[Title]] marker in the source article's content.
	ConnectionReference ConnectionType = "references"

	// ConnectionRelated is an edge created by keyword-set similarity.
	// Similarity is symmetric, so related edges appear on both nodes.
	ConnectionRelated ConnectionType = "related"
)

// Connection is a single edge from a graph node to a target article.
type Connection struct {
	// TargetID is the article the edge points at.
	TargetID string

	// Type is the edge kind.
	Type ConnectionType
}

// GraphNode is one article's entry in the knowledge graph.
type GraphNode struct {
	// ID is the article ID.
	ID string

	// Title is the article title.
	Title string

	// Slug is the article slug.
	Slug string

	// Connections are the node's outgoing edges. A node never links
	// to itself and carries each (target, type) pair at most once.
	Connections []Connection
}

// HasConnection reports whether the node already carries an edge to
// targetID of the given type.
func (n *GraphNode) HasConnection(targetID string, t ConnectionType) bool {
	for _, c := range n.Connections {
		if c.TargetID == targetID && c.Type == t {
			return true
		}
	}
	return false
}

// KnowledgeGraph maps article IDs to their graph nodes. It is rebuilt
// in full whenever the underlying corpus changes; there is no
// incremental-update contract.
type KnowledgeGraph struct {
	// Nodes is keyed by article ID.
	Nodes map[string]*GraphNode
}

// NewKnowledgeGraph creates an empty graph.
func NewKnowledgeGraph() *KnowledgeGraph {
	return &KnowledgeGraph{Nodes: make(map[string]*GraphNode)}
}

// Node returns the node for an article ID, or nil if absent.
func (g *KnowledgeGraph) Node(id string) *GraphNode {
	return g.Nodes[id]
}

// Connect adds an edge from one node to another, skipping self-edges
// and duplicates. It reports whether the edge was added.
func (g *KnowledgeGraph) Connect(fromID, targetID string, t ConnectionType) bool {
	if fromID == targetID {
		return false
	}
	node, ok := g.Nodes[fromID]
	if !ok {
		return false
	}
	if node.HasConnection(targetID, t) {
		return false
	}
	node.Connections = append(node.Connections, Connection{TargetID: targetID, Type: t})
	return true
}

// BackLink identifies an article that references a given title.
type BackLink struct {
	// ArticleID is the referencing article.
	ArticleID string

	// Title is the referencing article's title.
	Title string

	// Slug is the referencing article's slug.
	Slug string
}

// RelatedArticle pairs an article with its similarity score against
// a reference article. Used when building related edges.
type RelatedArticle struct {
	// ArticleID is the similar article.
	ArticleID string

	// Score is the Jaccard similarity in [0,1].
	Score float64
}
