package cards

import "testing"

func TestAttributes_FixedOrder(t *testing.T) {
	want := []struct {
		key   string
		label string
		icon  IconType
	}{
		{"attr_0", "Energia", IconZap},
		{"attr_1", "Estilo", IconSmile},
		{"attr_2", "Audácia", IconRocket},
		{"attr_3", "Social", IconHeart},
		{"attr_4", "Skill", IconLaptop},
	}
	attrs := Attributes()
	if len(attrs) != AttributeCount {
		t.Fatalf("got %d attributes, want %d", len(attrs), AttributeCount)
	}
	for i, a := range attrs {
		if int(a) != i {
			t.Errorf("attribute %d has index %d", i, int(a))
		}
		if a.Key() != want[i].key || a.Label() != want[i].label || a.Icon() != want[i].icon {
			t.Errorf("attribute %d = (%s,%s,%s), want %+v", i, a.Key(), a.Label(), a.Icon(), want[i])
		}
		if a.Guidance() == "" {
			t.Errorf("attribute %d has no guidance", i)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := map[int]int{-5: 0, 0: 0, 50: 50, 100: 100, 130: 100}
	for in, want := range tests {
		if got := Clamp(in); got != want {
			t.Errorf("Clamp(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestNewStats_Clamps(t *testing.T) {
	s := NewStats([AttributeCount]int{-10, 0, 55, 100, 250}, "Café no sangue")
	want := [AttributeCount]int{0, 0, 55, 100, 100}
	if got := s.Values(); got != want {
		t.Errorf("Values() = %v, want %v", got, want)
	}
	if s.Attributes[Boldness].Label != "Audácia" || s.Attributes[Boldness].Icon != IconRocket {
		t.Errorf("slot 2 = %+v", s.Attributes[Boldness])
	}
	if s.SpecialAbility != "Café no sangue" {
		t.Errorf("ability = %q", s.SpecialAbility)
	}
}

func TestStats_WithBonus(t *testing.T) {
	base := NewStats([AttributeCount]int{10, 50, 80, 90, 100}, "x")
	got := base.WithBonus(20).Values()
	want := [AttributeCount]int{30, 70, 100, 100, 100}
	if got != want {
		t.Errorf("WithBonus(20) = %v, want %v", got, want)
	}
	if base.Values()[0] != 10 {
		t.Error("WithBonus mutated the receiver")
	}
}

func TestStats_ValuePanicsOnInvalidIndex(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for index 5")
		}
	}()
	NewStats([AttributeCount]int{}, "").Value(Attribute(5))
}

func TestCategoryForAge(t *testing.T) {
	tests := map[int]Category{0: CategoryKid, 11: CategoryKid, 12: CategoryTeen, 19: CategoryTeen, 20: CategoryAdult, 70: CategoryAdult}
	for age, want := range tests {
		if got := CategoryForAge(age); got != want {
			t.Errorf("CategoryForAge(%d) = %s, want %s", age, got, want)
		}
	}
}

func TestValidMaritalStatus(t *testing.T) {
	if !ValidMaritalStatus("Viúvo(a) do Orkut") {
		t.Error("expected option to be valid")
	}
	if ValidMaritalStatus("Divorciado") {
		t.Error("expected unknown option to be invalid")
	}
}
