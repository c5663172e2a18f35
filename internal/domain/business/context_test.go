package business

import "testing"

func TestContext_StartsUnselected(t *testing.T) {
	c := NewContext()
	if _, ok := c.Active(); ok {
		t.Error("new context should have no active business")
	}
}

func TestContext_SetActive(t *testing.T) {
	c := NewContext()
	b := &Business{ID: "biz-1", Name: "Kirana"}

	c.SetActive(b)

	active, ok := c.Active()
	if !ok || active.ID != "biz-1" {
		t.Errorf("Active() = %v, %v; want biz-1", active, ok)
	}
}

func TestContext_ApplyDefault(t *testing.T) {
	c := NewContext()

	// Empty list: stays unselected.
	if c.ApplyDefault(nil) {
		t.Error("ApplyDefault(nil) reported a selection")
	}

	// Non-empty list: first business becomes active.
	list := []*Business{{ID: "biz-1"}, {ID: "biz-2"}}
	if !c.ApplyDefault(list) {
		t.Fatal("ApplyDefault() did not select")
	}
	if active, _ := c.Active(); active.ID != "biz-1" {
		t.Errorf("default selection = %s, want biz-1 (first created)", active.ID)
	}
}

func TestContext_ApplyDefaultDoesNotOverrideSelection(t *testing.T) {
	c := NewContext()
	c.SetActive(&Business{ID: "biz-2"})

	c.ApplyDefault([]*Business{{ID: "biz-1"}, {ID: "biz-2"}})

	if active, _ := c.Active(); active.ID != "biz-2" {
		t.Errorf("ApplyDefault() replaced explicit selection with %s", active.ID)
	}
}
