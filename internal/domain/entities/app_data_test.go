package entities

import (
	"testing"
	"time"
)

func TestAppData_SnapshotIsSortedByID(t *testing.T) {
	d := NewAppData()
	d.Clients[30] = Client{ID: 30}
	d.Clients[10] = Client{ID: 10}
	d.Clients[20] = Client{ID: 20}

	s := d.Snapshot()
	if len(s.Clients) != 3 || s.Clients[0].ID != 10 || s.Clients[2].ID != 30 {
		t.Fatalf("unexpected order %+v", s.Clients)
	}
	if s.Count()[KindClients] != 3 || s.Count()[KindQuotes] != 0 {
		t.Fatalf("unexpected counts %+v", s.Count())
	}
}

func TestAppData_CloneIsDeep(t *testing.T) {
	d := NewAppData()
	d.Products[1] = Product{ID: 1, Materials: []MaterialLine{{MaterialID: 2, Qty: 1}}}

	c, err := d.Clone()
	if err != nil {
		t.Fatalf("clone: %v", err)
	}
	p := c.Products[1]
	p.Materials[0].Qty = 99
	c.Products[1] = p
	c.Clients[5] = Client{ID: 5}

	if d.Products[1].Materials[0].Qty != 1 || len(d.Clients) != 0 {
		t.Fatalf("clone shares state with the original")
	}
}

func TestAppData_ReplaceEntitiesKeepsSettings(t *testing.T) {
	d := NewAppData()
	d.Config.Tax = 5
	d.Metadata.LastQuoteNumber = 9
	d.Clients[1] = Client{ID: 1}

	d.ReplaceEntities(Snapshot{Quotes: []Quote{{ID: 4}}})
	if len(d.Clients) != 0 || len(d.Quotes) != 1 || d.Config.Tax != 5 || d.Metadata.LastQuoteNumber != 9 {
		t.Fatalf("unexpected state %+v", d)
	}
}

func TestRecordHelpers(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	r, err := Touch(Labor{ID: 3}, now)
	if err != nil || !r.GetLastModified().Equal(now) {
		t.Fatalf("touch failed r=%+v err=%v", r, err)
	}
	kind, _ := KindOf(r)
	if kind != KindLabor {
		t.Fatalf("unexpected kind %s", kind)
	}

	d := NewAppData()
	if err := d.Upsert(r); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	found, err := d.Delete(KindLabor, 3)
	if err != nil || !found || len(d.Labor) != 0 {
		t.Fatalf("delete failed found=%v err=%v", found, err)
	}
	if _, err := d.Delete("invoices", 1); err == nil {
		t.Fatalf("expected unknown kind error")
	}
}

func TestCodes(t *testing.T) {
	if SequenceCode(MaterialCodePrefix, 7) != "MAT-007" {
		t.Fatalf("unexpected material code")
	}
	if LaborFabrication.CodePrefix() != "MO-FAB-" || LaborInstallation.CodePrefix() != "MO-INS-" {
		t.Fatalf("unexpected labor prefixes")
	}
	if ProductTypeService.CodePrefix() != "SERV-" || ProductTypeProduct.CodePrefix() != "PROD-" {
		t.Fatalf("unexpected product prefixes")
	}
}
