package service

import (
	"testing"

	"github.com/RobsonJunqueira/contrato-explorer-ui/model"
)

func TestCollectionReplaceAndAll(t *testing.T) {
	col := NewCollection()

	if col.Len() != 0 {
		t.Error("Expected empty collection")
	}

	col.ReplaceAll(model.SampleContracts(), true)

	if col.Len() != 5 {
		t.Errorf("Expected 5 contracts, got %d", col.Len())
	}
	if !col.Fallback() {
		t.Error("Expected fallback flag to be set")
	}

	col.ReplaceAll(model.SampleContracts()[:2], false)
	if col.Len() != 2 || col.Fallback() {
		t.Error("Expected replacement to swap contents and clear fallback flag")
	}
}

func TestCollectionAllReturnsCopy(t *testing.T) {
	col := NewCollection()
	col.ReplaceAll(model.SampleContracts(), false)

	all := col.All()
	all[0].NomCredor = "Mutated"

	fresh, _ := col.Get(all[0].ID)
	if fresh.NomCredor == "Mutated" {
		t.Error("All must return a copy, not the backing slice")
	}
}

func TestCollectionGetByIDAndNumContrato(t *testing.T) {
	col := NewCollection()
	col.ReplaceAll(model.SampleContracts(), false)

	if _, ok := col.Get("2"); !ok {
		t.Error("Expected lookup by synthetic id to succeed")
	}
	c, ok := col.Get("CONT-2023-002")
	if !ok {
		t.Fatal("Expected lookup by contract number to succeed")
	}
	if c.NumContrato != "CONT-2023-002" {
		t.Errorf("Wrong record: %s", c.NumContrato)
	}

	if _, ok := col.Get("missing"); ok {
		t.Error("Expected miss for unknown id")
	}
}

func TestCollectionPatch(t *testing.T) {
	col := NewCollection()
	col.ReplaceAll(model.SampleContracts(), false)

	updated, ok := col.Patch("CONT-2023-002", map[model.EditableField]string{
		model.FieldClass1Setor: "Obras",
		model.FieldClassif2:    "Papelaria",
	})
	if !ok {
		t.Fatal("Expected patch to find the record")
	}
	if updated.Class1Setor != "Obras" || updated.Classif2 != "Papelaria" {
		t.Errorf("Patch not applied: %+v", updated)
	}

	// The held record reflects the patch
	held, _ := col.Get("CONT-2023-002")
	if held.Class1Setor != "Obras" {
		t.Error("Held collection not updated")
	}

	// Miss leaves the collection untouched
	if _, ok := col.Patch("missing", map[model.EditableField]string{model.FieldClassif1: "X"}); ok {
		t.Error("Expected patch miss for unknown id")
	}
}
