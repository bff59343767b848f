package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// RSVPStatus represents a guest's attendance confirmation state.
type RSVPStatus string

const (
	RSVPPending   RSVPStatus = "pending"
	RSVPConfirmed RSVPStatus = "confirmed"
	RSVPDeclined  RSVPStatus = "declined"
)

// TableKind enumerates the seating options for a confirmed guest.
type TableKind string

const (
	TableVIP        TableKind = "VIP_TABLE"
	TableFamily     TableKind = "FAMILY_TABLE"
	TableNumbered   TableKind = "TABLE"
	TableUnassigned TableKind = "UNASSIGNED"
)

// TableAssignment is a closed tagged value: VIP table, family table, a
// numbered table, or unassigned. It serializes to a compact string form
// ("VIP_TABLE", "TABLE_3", ...) so guest records stay readable.
type TableAssignment struct {
	Kind   TableKind `json:"-"`
	Number uint8     `json:"-"`
}

// Unassigned is the default table assignment for a newly submitted RSVP.
func Unassigned() TableAssignment { return TableAssignment{Kind: TableUnassigned} }

// String renders the assignment in its wire form.
func (t TableAssignment) String() string {
	if t.Kind == TableNumbered {
		return fmt.Sprintf("%s_%d", TableNumbered, t.Number)
	}
	if t.Kind == "" {
		return string(TableUnassigned)
	}
	return string(t.Kind)
}

// ParseTableAssignment parses the wire form back into a TableAssignment.
// An empty string maps to Unassigned; anything else unknown is an error.
func ParseTableAssignment(s string) (TableAssignment, error) {
	switch v := strings.ToUpper(strings.TrimSpace(s)); {
	case v == "" || v == string(TableUnassigned):
		return Unassigned(), nil
	case v == string(TableVIP):
		return TableAssignment{Kind: TableVIP}, nil
	case v == string(TableFamily):
		return TableAssignment{Kind: TableFamily}, nil
	case strings.HasPrefix(v, string(TableNumbered)+"_"):
		n, err := strconv.ParseUint(strings.TrimPrefix(v, string(TableNumbered)+"_"), 10, 8)
		if err != nil {
			return TableAssignment{}, fmt.Errorf("invalid table number in %q", s)
		}
		return TableAssignment{Kind: TableNumbered, Number: uint8(n)}, nil
	default:
		return TableAssignment{}, fmt.Errorf("unknown table assignment %q", s)
	}
}

// MarshalJSON encodes the assignment as its string form.
func (t TableAssignment) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes the string form produced by MarshalJSON.
func (t *TableAssignment) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseTableAssignment(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Guest is an RSVP entry on a wedding's guest list. Email is the natural
// key within one wedding; no two guests may share it.
type Guest struct {
	Name                string          `json:"name"`
	Email               string          `json:"guest_email"`
	RSVPStatus          RSVPStatus      `json:"rsvp_status"`
	DietaryRestrictions string          `json:"dietary_restrictions"`
	PlusOne             bool            `json:"plus_one"`
	TableAssignment     TableAssignment `json:"table_assignment"`
}
