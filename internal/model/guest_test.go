package model

import (
	"encoding/json"
	"testing"
)

func TestTableAssignmentStringForms(t *testing.T) {
	cases := []struct {
		in   TableAssignment
		want string
	}{
		{TableAssignment{Kind: TableVIP}, "VIP_TABLE"},
		{TableAssignment{Kind: TableFamily}, "FAMILY_TABLE"},
		{TableAssignment{Kind: TableNumbered, Number: 3}, "TABLE_3"},
		{Unassigned(), "UNASSIGNED"},
		{TableAssignment{}, "UNASSIGNED"}, // zero value renders as unassigned
	}
	for _, tc := range cases {
		if got := tc.in.String(); got != tc.want {
			t.Fatalf("String(%+v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseTableAssignment(t *testing.T) {
	got, err := ParseTableAssignment("table_12")
	if err != nil {
		t.Fatalf("ParseTableAssignment: %v", err)
	}
	if got.Kind != TableNumbered || got.Number != 12 {
		t.Fatalf("got %+v, want numbered table 12", got)
	}

	if _, err := ParseTableAssignment("BALCONY"); err == nil {
		t.Fatal("unknown assignment accepted")
	}
	if _, err := ParseTableAssignment("TABLE_999"); err == nil {
		t.Fatal("table number out of range accepted")
	}

	empty, err := ParseTableAssignment("")
	if err != nil {
		t.Fatalf("ParseTableAssignment empty: %v", err)
	}
	if empty.Kind != TableUnassigned {
		t.Fatalf("empty input parsed to %+v, want unassigned", empty)
	}
}

func TestGuestJSONCarriesTableWireForm(t *testing.T) {
	g := Guest{
		Name:            "Ada",
		Email:           "ada@example.com",
		RSVPStatus:      RSVPConfirmed,
		TableAssignment: TableAssignment{Kind: TableNumbered, Number: 7},
	}
	data, err := json.Marshal(g)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded Guest
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.TableAssignment != g.TableAssignment {
		t.Fatalf("table lost in round-trip: %+v", decoded.TableAssignment)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal raw: %v", err)
	}
	if raw["table_assignment"] != "TABLE_7" {
		t.Fatalf("wire form = %v, want TABLE_7", raw["table_assignment"])
	}
	if raw["guest_email"] != "ada@example.com" {
		t.Fatalf("email field = %v, want guest_email key", raw["guest_email"])
	}
}
