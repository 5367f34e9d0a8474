package engine

import "testing"

func TestSceneAddGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Player")

	scene.AddGameObject(obj)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject, got %d", len(scene.GameObjects))
	}

	if scene.GameObjects[0] != obj {
		t.Error("GameObject not added to scene")
	}

	if obj.Scene != scene {
		t.Error("GameObject.Scene not set")
	}
}

func TestSceneUIDLookup(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Player")

	scene.AddGameObject(obj)

	found := scene.FindByUID(obj.UID)
	if found != obj {
		t.Errorf("FindByUID failed: expected %v, got %v", obj, found)
	}

	notFound := scene.FindByUID(99999999)
	if notFound != nil {
		t.Error("FindByUID should return nil for non-existent UID")
	}
}

func TestSceneRemoveGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj1 := NewGameObject("Player")
	obj2 := NewGameObject("Enemy")

	scene.AddGameObject(obj1)
	scene.AddGameObject(obj2)

	scene.RemoveGameObject(obj1)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject after removal, got %d", len(scene.GameObjects))
	}

	if scene.GameObjects[0] != obj2 {
		t.Error("Wrong GameObject removed")
	}

	if scene.FindByUID(obj1.UID) != nil {
		t.Error("Removed GameObject still in UID map")
	}

	if scene.FindByUID(obj2.UID) != obj2 {
		t.Error("Remaining GameObject not in UID map")
	}
}

func TestSceneFindByName(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Canvas")
	scene.AddGameObject(obj)

	if scene.FindByName("Canvas") != obj {
		t.Error("FindByName failed")
	}

	if scene.FindByName("Missing") != nil {
		t.Error("FindByName should return nil for unknown name")
	}
}

func TestSceneIndexesChildren(t *testing.T) {
	scene := NewScene("Test")
	parent := NewGameObject("Panel")
	child := NewGameObject("Label")
	parent.AddChild(child)

	scene.AddGameObject(parent)

	if scene.FindByUID(child.UID) != child {
		t.Error("Child GameObject not indexed by UID")
	}

	scene.RemoveGameObject(parent)

	if scene.FindByUID(child.UID) != nil {
		t.Error("Child GameObject still indexed after parent removal")
	}
}
