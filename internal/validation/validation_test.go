package validation

import "testing"

type caseForm struct {
	Title         string `validate:"required,max=200"`
	ItemType      string `validate:"required,itemtype"`
	PriceCategory string `validate:"required,pricecategory"`
}

func TestStructCaseForm(t *testing.T) {
	valid := caseForm{Title: "Велосипед", ItemType: "Дитячий світ", PriceCategory: "500-1000 грн"}
	if err := Struct(valid); err != nil {
		t.Fatalf("valid form rejected: %v", err)
	}

	cases := []struct {
		name string
		form caseForm
	}{
		{"empty title", caseForm{ItemType: "Авто", PriceCategory: "0-100 грн"}},
		{"unknown item type", caseForm{Title: "x", ItemType: "Меблі", PriceCategory: "0-100 грн"}},
		{"unknown price category", caseForm{Title: "x", ItemType: "Авто", PriceCategory: "дорого"}},
	}
	for _, c := range cases {
		if err := Struct(c.form); err == nil {
			t.Fatalf("%s: invalid form accepted", c.name)
		}
	}
}

func TestStructRegionAndDecision(t *testing.T) {
	type regionForm struct {
		Region string `validate:"required,region"`
	}
	if err := Struct(regionForm{Region: "Одеська"}); err != nil {
		t.Fatalf("valid region rejected: %v", err)
	}
	if err := Struct(regionForm{Region: "Crimea"}); err == nil {
		t.Fatal("unknown region accepted")
	}

	type decisionForm struct {
		Decision string `validate:"required,offerdecision"`
	}
	if err := Struct(decisionForm{Decision: "accepted"}); err != nil {
		t.Fatalf("accepted rejected: %v", err)
	}
	if err := Struct(decisionForm{Decision: "pending"}); err == nil {
		t.Fatal("pending accepted as decision")
	}
}
