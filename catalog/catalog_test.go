package catalog

import "testing"

func TestDefaultSnapshotShape(t *testing.T) {
	snap := Default()
	if len(snap.Models) != 3 {
		t.Fatalf("models = %d, want 3", len(snap.Models))
	}
	if len(snap.Bins) != 9 {
		t.Fatalf("bins = %d, want 9", len(snap.Bins))
	}
	if len(snap.Options) != 11 {
		t.Fatalf("options = %d, want 11", len(snap.Options))
	}
	for _, m := range snap.Models {
		if len(snap.BinsForModel(m.ID)) != 3 {
			t.Fatalf("model %s should have 3 size variants", m.ID)
		}
	}
}

func TestBinFor(t *testing.T) {
	snap := Default()
	bin := snap.BinFor("cesto", Size80)
	if bin == nil {
		t.Fatal("cesto/80 should exist")
	}
	if bin.BasePrice != 329 {
		t.Fatalf("base price = %v, want 329", bin.BasePrice)
	}
	if snap.BinFor("cesto", Size("999")) != nil {
		t.Fatal("unknown size should return nil")
	}
	if snap.BinFor("unknown", Size80) != nil {
		t.Fatal("unknown model should return nil")
	}
}

func TestOptionAvailability(t *testing.T) {
	snap := Default()
	hook := snap.OptionByCode("pole_hook")
	if hook == nil {
		t.Fatal("pole_hook should exist")
	}
	if !hook.Available(Size50) {
		t.Fatal("pole_hook fits 50/60")
	}
	if hook.Available(Size80) || hook.Available(Size110) {
		t.Fatal("pole_hook is 50/60 only")
	}

	light := snap.OptionByCode("light")
	if light == nil {
		t.Fatal("light should exist")
	}
	for _, size := range []Size{Size50, Size80, Size110} {
		if !light.Available(size) {
			t.Fatalf("light should fit size %s", size)
		}
	}
}

func TestModelByID(t *testing.T) {
	snap := Default()
	if m := snap.ModelByID("branca"); m == nil || m.Name != "BRANCA" {
		t.Fatalf("branca lookup = %+v", m)
	}
	if snap.ModelByID("missing") != nil {
		t.Fatal("unknown model should return nil")
	}
}
