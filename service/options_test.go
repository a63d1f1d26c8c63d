package service

import (
	"reflect"
	"testing"

	"github.com/RobsonJunqueira/contrato-explorer-ui/model"
)

func TestOptionsDedupesSortsAndDropsEmpties(t *testing.T) {
	contracts := []model.Contract{
		{Class1Setor: "Tecnologia"},
		{Class1Setor: "Administração"},
		{Class1Setor: ""},
		{Class1Setor: "Tecnologia"},
		{Class1Setor: "Engenharia"},
	}

	got := SectorOptions(contracts)

	expected := []string{"Administração", "Engenharia", "Tecnologia"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestStatusOptions(t *testing.T) {
	got := StatusOptions(model.SampleContracts())

	expected := []string{model.StatusEncerrado, model.StatusVigente}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestClassif2OptionsScopedToClassif1(t *testing.T) {
	contracts := model.SampleContracts()

	got := Classif2Options(contracts, "Custeio")

	// Only level-2 values from records whose level-1 is Custeio.
	expected := []string{"Manutenção", "Segurança", "Suprimentos"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}

	got = Classif2Options(contracts, "Investimento")
	expected = []string{"Infraestrutura", "Software"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestClassif2OptionsUnscopedSelections(t *testing.T) {
	contracts := model.SampleContracts()

	all := Classif2Options(contracts, "")
	if len(all) != 5 {
		t.Errorf("Expected all 5 classif2 values without a selection, got %v", all)
	}

	sentinel := Classif2Options(contracts, FilterAll)
	if !reflect.DeepEqual(all, sentinel) {
		t.Error("Expected sentinel selection to behave like no selection")
	}
}

func TestClassif2OptionsUnknownParent(t *testing.T) {
	got := Classif2Options(model.SampleContracts(), "Inexistente")
	if len(got) != 0 {
		t.Errorf("Expected no options for unknown classif1, got %v", got)
	}
}

func TestClassif2OptionsRecomputedOnCollectionChange(t *testing.T) {
	contracts := model.SampleContracts()

	before := Classif2Options(contracts, "Custeio")

	// A new value occurring in a record surfaces on the next derivation.
	contracts[1].Classif2 = "Logística"
	after := Classif2Options(contracts, "Custeio")

	if reflect.DeepEqual(before, after) {
		t.Error("Expected derivation to reflect the updated collection")
	}
	found := false
	for _, v := range after {
		if v == "Logística" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected Logística in %v", after)
	}
}

func TestTipoDocumentoOptionsUsesDisplayFallback(t *testing.T) {
	contracts := []model.Contract{
		{DscTipoDocumentoLegal: "Contrato"},
		{CodTipoDocumentoLegal: "07"},
		{DscTipoDocumentoLegal: "Contrato", CodTipoDocumentoLegal: "01"},
	}

	got := TipoDocumentoOptions(contracts)

	expected := []string{"07", "Contrato"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}
