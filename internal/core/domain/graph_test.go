package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGraph() *KnowledgeGraph {
	g := NewKnowledgeGraph()
	g.Nodes["a"] = &GraphNode{ID: "a", Title: "Alpha", Slug: "alpha"}
	g.Nodes["b"] = &GraphNode{ID: "b", Title: "Beta", Slug: "beta"}
	return g
}

func TestKnowledgeGraph_Connect(t *testing.T) {
	g := newTestGraph()

	added := g.Connect("a", "b", ConnectionReference)

	require.True(t, added)
	node := g.Node("a")
	require.Len(t, node.Connections, 1)
	assert.Equal(t, "b", node.Connections[0].TargetID)
	assert.Equal(t, ConnectionReference, node.Connections[0].Type)
}

func TestKnowledgeGraph_Connect_RejectsSelfEdge(t *testing.T) {
	g := newTestGraph()

	assert.False(t, g.Connect("a", "a", ConnectionRelated))
	assert.Empty(t, g.Node("a").Connections)
}

func TestKnowledgeGraph_Connect_RejectsDuplicate(t *testing.T) {
	g := newTestGraph()

	require.True(t, g.Connect("a", "b", ConnectionRelated))
	assert.False(t, g.Connect("a", "b", ConnectionRelated))
	assert.Len(t, g.Node("a").Connections, 1)
}

func TestKnowledgeGraph_Connect_SameTargetDifferentType(t *testing.T) {
	g := newTestGraph()

	require.True(t, g.Connect("a", "b", ConnectionRelated))
	require.True(t, g.Connect("a", "b", ConnectionReference))
	assert.Len(t, g.Node("a").Connections, 2)
}

func TestKnowledgeGraph_Connect_UnknownNode(t *testing.T) {
	g := newTestGraph()

	assert.False(t, g.Connect("missing", "b", ConnectionRelated))
}

func TestKnowledgeGraph_Node_Absent(t *testing.T) {
	g := newTestGraph()

	assert.Nil(t, g.Node("zzz"))
}
