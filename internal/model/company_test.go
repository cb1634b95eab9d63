package model

import "testing"

func TestCompany_Accessors(t *testing.T) {
	// A Spanish constituent carries both optional attributes.
	c := NewCompany("Banco Santander", "SANTANDER", "SAN", "ES0113900J37", "A39000013")

	if c.Name() != "SANTANDER" {
		t.Errorf("Name() = %q, want %q", c.Name(), "SANTANDER")
	}
	if c.Ticker() != "SAN" {
		t.Errorf("Ticker() = %q, want %q", c.Ticker(), "SAN")
	}
	if c.ISIN() != "ES0113900J37" {
		t.Errorf("ISIN() = %q, want %q", c.ISIN(), "ES0113900J37")
	}

	full, ok := c.FullName()
	if !ok {
		t.Fatal("FullName() reported absent")
	}
	if full != "Banco Santander" {
		t.Errorf("FullName() = %q, want %q", full, "Banco Santander")
	}

	nif, ok := c.ExtraID()
	if !ok {
		t.Fatal("ExtraID() reported absent")
	}
	if nif != "A39000013" {
		t.Errorf("ExtraID() = %q, want %q", nif, "A39000013")
	}
}

func TestCompany_OptionalFieldsAbsent(t *testing.T) {
	// A constituent registered outside Spain has no NIF.
	c := NewCompany("Ferrovial S.E.", "FERROVIAL", "FER", "NL0015001FS8", "")

	if id, ok := c.ExtraID(); ok {
		t.Errorf("ExtraID() = %q, want absent", id)
	}

	c = NewCompany("", "FERROVIAL", "FER", "NL0015001FS8", "")
	if full, ok := c.FullName(); ok {
		t.Errorf("FullName() = %q, want absent", full)
	}
}

func TestCompany_String(t *testing.T) {
	c := NewCompany("AENA S.A.", "AENA", "AENA", "ES0105046009", "A86212420")

	if got := c.String(); got != "AENA: AENA" {
		t.Errorf("String() = %q, want %q", got, "AENA: AENA")
	}
}
