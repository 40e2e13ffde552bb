package ward

import "testing"

func storeFixture() []DistrictRecord {
	return []DistrictRecord{
		{ID: "1", Name: "Narela", CompositeRisk: 30},
		{ID: "2", Name: "Karol Bagh", CompositeRisk: 70},
	}
}

func TestFeatureStoreLookups(t *testing.T) {
	s := NewFeatureStore()
	if s.Len() != 0 {
		t.Fatalf("new store should be empty, got %d", s.Len())
	}
	s.Replace(storeFixture())

	if s.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", s.Len())
	}
	rec, ok := s.Get("2")
	if !ok || rec.Name != "Karol Bagh" {
		t.Errorf("Get(2) = %+v (ok=%v)", rec, ok)
	}
	if _, ok := s.Get("99"); ok {
		t.Error("expected miss for unknown id")
	}

	rec, ok = s.GetByName("karol bagh")
	if !ok || rec.ID != "2" {
		t.Errorf("name lookup should be case-insensitive, got %+v (ok=%v)", rec, ok)
	}
	if _, ok := s.GetByName("Atlantis"); ok {
		t.Error("expected miss for unknown name")
	}
}

func TestFeatureStoreReplaceSwapsWholesale(t *testing.T) {
	s := NewFeatureStore()
	s.Replace(storeFixture())
	s.Replace([]DistrictRecord{{ID: "9", Name: "Dwarka", CompositeRisk: 50}})

	if s.Len() != 1 {
		t.Fatalf("expected 1 record after replace, got %d", s.Len())
	}
	if _, ok := s.Get("1"); ok {
		t.Error("old records must not survive a replace")
	}
	if _, ok := s.Get("9"); !ok {
		t.Error("new record missing after replace")
	}
}

func TestFeatureStoreAllReturnsCopy(t *testing.T) {
	s := NewFeatureStore()
	s.Replace(storeFixture())

	all := s.All()
	all[0].Name = "mutated"
	if rec, _ := s.Get("1"); rec.Name != "Narela" {
		t.Error("All must return a copy, not the backing slice")
	}
}

func TestFeatureStoreHooks(t *testing.T) {
	s := NewFeatureStore()
	var calls [][]DistrictRecord
	s.OnReplace(func(records []DistrictRecord) {
		calls = append(calls, records)
	})
	order := []string{}
	s.OnReplace(func([]DistrictRecord) { order = append(order, "second") })

	s.Replace(storeFixture())
	if len(calls) != 1 || len(calls[0]) != 2 {
		t.Fatalf("expected one hook invocation with 2 records, got %v", calls)
	}
	if len(order) != 1 {
		t.Errorf("all hooks must run on replace")
	}

	s.Replace(nil)
	if len(calls) != 2 || len(calls[1]) != 0 {
		t.Errorf("hooks must also fire for an empty replace, got %v", calls)
	}
}

func TestReportStore(t *testing.T) {
	s := NewReportStore()
	if got := s.List(); len(got) != 0 {
		t.Fatalf("new store should be empty, got %d", len(got))
	}

	r := s.Create("Karol Bagh", "HIGH", "knee-deep water near the metro gate")
	if r.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("expected a generated report id")
	}
	if r.CreatedAt.IsZero() {
		t.Error("expected a creation timestamp")
	}

	s.Create("Narela", "LOW", "minor pooling")
	list := s.List()
	if len(list) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(list))
	}
	if list[0].Ward != "Karol Bagh" || list[1].Ward != "Narela" {
		t.Errorf("reports must list in creation order: %v", list)
	}
}
