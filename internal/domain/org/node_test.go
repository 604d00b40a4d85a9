package org

import (
	"reflect"
	"testing"
)

func testTree() *Node {
	return &Node{
		ID: "root", Name: "Acme", Type: TypeRoot,
		Children: []*Node{
			{
				ID: "eng", Name: "Engineering", Type: TypeDepartment,
				Children: []*Node{
					{ID: "platform", Name: "Platform", Type: TypeTeam},
					{ID: "mobile", Name: "Mobile", Type: TypeTeam},
				},
			},
			{ID: "sales", Name: "Sales", Type: TypeDepartment, IsCulturalDriver: true},
		},
	}
}

func TestWalk_PreOrderWithParents(t *testing.T) {
	var order []string
	parents := make(map[string]string)
	Walk(testTree(), func(n, parent *Node) {
		order = append(order, n.ID)
		if parent != nil {
			parents[n.ID] = parent.ID
		}
	})

	want := []string{"root", "eng", "platform", "mobile", "sales"}
	if !reflect.DeepEqual(order, want) {
		t.Fatalf("pre-order mismatch: got %v want %v", order, want)
	}
	if parents["platform"] != "eng" || parents["sales"] != "root" {
		t.Fatalf("parent wiring wrong: %v", parents)
	}
	if _, ok := parents["root"]; ok {
		t.Fatal("root must be visited with nil parent")
	}
}

func TestWalk_NilRoot(t *testing.T) {
	called := false
	Walk(nil, func(_, _ *Node) { called = true })
	if called {
		t.Fatal("visit called for nil root")
	}
}

func TestFind(t *testing.T) {
	tree := testTree()
	if n := Find(tree, "mobile"); n == nil || n.Name != "Mobile" {
		t.Fatalf("Find(mobile) = %v", n)
	}
	if n := Find(tree, "ghost"); n != nil {
		t.Fatalf("expected nil for unknown id, got %v", n)
	}
}
