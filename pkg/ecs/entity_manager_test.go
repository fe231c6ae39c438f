package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testLabelComponent struct {
	Text string
}

type testOffsetComponent struct {
	X, Y float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testOffsetComponent{X: 100, Y: 200})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testOffsetComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}
	retrieved := comp.(*testOffsetComponent)
	if retrieved.X != 100 || retrieved.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", retrieved.X, retrieved.Y)
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testOffsetComponent{})

	// 标记删除
	em.DestroyEntity(id)

	// 清理前实体仍存在
	if !HasComponent[*testOffsetComponent](em, id) {
		t.Error("Entity should still exist before cleanup")
	}

	// 清理后实体消失
	em.RemoveMarkedEntities()
	if HasComponent[*testOffsetComponent](em, id) {
		t.Error("Entity should be removed after cleanup")
	}
	if em.EntityCount() != 0 {
		t.Errorf("EntityCount = %d, want 0", em.EntityCount())
	}
}

func TestGetEntitiesWith_CreationOrder(t *testing.T) {
	em := NewEntityManager()

	// 创建足够多的实体，map 遍历顺序随机时该测试会失败
	var want []EntityID
	for i := 0; i < 50; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testLabelComponent{})
		if i%3 != 0 {
			em.AddComponent(id, &testOffsetComponent{})
			want = append(want, id)
		}
	}

	for round := 0; round < 5; round++ {
		got := GetEntitiesWith2[*testLabelComponent, *testOffsetComponent](em)
		if len(got) != len(want) {
			t.Fatalf("got %d entities, want %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("round %d: entity %d = %d, want %d", round, i, got[i], want[i])
			}
		}
	}
}

func TestRemoveMarkedEntities_KeepsOrder(t *testing.T) {
	em := NewEntityManager()
	ids := make([]EntityID, 5)
	for i := range ids {
		ids[i] = em.CreateEntity()
		em.AddComponent(ids[i], &testLabelComponent{})
	}

	em.DestroyEntity(ids[1])
	em.DestroyEntity(ids[3])
	em.RemoveMarkedEntities()

	got := GetEntitiesWith1[*testLabelComponent](em)
	want := []EntityID{ids[0], ids[2], ids[4]}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
			break
		}
	}
}

func TestGenericAPI(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testLabelComponent{Text: "Go"})
	AddComponent(em, id, &testOffsetComponent{X: 1})

	label, ok := GetComponent[*testLabelComponent](em, id)
	if !ok || label.Text != "Go" {
		t.Errorf("GetComponent = (%v, %v), want Go", label, ok)
	}

	// 泛型与反射 API 共享同一份存储
	comp, ok := em.GetComponent(id, reflect.TypeOf(&testLabelComponent{}))
	if !ok || comp.(*testLabelComponent) != label {
		t.Error("generic and reflect accessors disagree")
	}

	RemoveComponent[*testOffsetComponent](em, id)
	if HasComponent[*testOffsetComponent](em, id) {
		t.Error("component should be removed")
	}
	if _, ok := GetComponent[*testOffsetComponent](em, id); ok {
		t.Error("GetComponent found a removed component")
	}
	if got := GetEntitiesWith3[*testLabelComponent, *testOffsetComponent, *testLabelComponent](em); len(got) != 0 {
		t.Errorf("GetEntitiesWith3 = %v, want empty", got)
	}
}

func BenchmarkGetEntitiesWith2(b *testing.B) {
	em := NewEntityManager()
	for i := 0; i < 40; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testLabelComponent{})
		em.AddComponent(id, &testOffsetComponent{})
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GetEntitiesWith2[*testLabelComponent, *testOffsetComponent](em)
	}
}
