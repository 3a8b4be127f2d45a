package pathutil

import (
	"errors"
	"testing"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name      string
		segment   string
		wantID    int64
		wantError error
	}{
		{name: "valid ID", segment: "123", wantID: 123},
		{name: "valid ID - one", segment: "1", wantID: 1},
		{name: "surrounding spaces", segment: " 7 ", wantID: 7},
		{name: "explicit plus sign", segment: "+4", wantID: 4},
		{name: "trailing garbage uses leading digits", segment: "12abc", wantID: 12},
		{name: "decimal truncates", segment: "2.5", wantID: 2},
		{name: "exponent ignored", segment: "3e2", wantID: 3},
		{name: "hex prefix", segment: "0x1A", wantID: 26},
		{name: "invalid ID - not a number", segment: "abc", wantError: ErrInvalidID},
		{name: "invalid ID - leading dot", segment: ".5", wantError: ErrInvalidID},
		{name: "invalid ID - bare sign", segment: "-", wantError: ErrInvalidID},
		{name: "invalid ID - bare hex prefix", segment: "0x", wantError: ErrInvalidID},
		{name: "invalid ID - negative with garbage", segment: "-2abc", wantError: ErrInvalidID},
		{name: "invalid ID - zero", segment: "0", wantError: ErrInvalidID},
		{name: "invalid ID - negative", segment: "-1", wantError: ErrInvalidID},
		{name: "invalid ID - empty", segment: "", wantError: ErrInvalidID},
		{name: "invalid ID - overflow", segment: "99999999999999999999", wantError: ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotID, err := ParseID(tt.segment)

			if !errors.Is(err, tt.wantError) {
				t.Errorf("ParseID(%q) error = %v, want %v", tt.segment, err, tt.wantError)
			}
			if gotID != tt.wantID {
				t.Errorf("ParseID(%q) = %d, want %d", tt.segment, gotID, tt.wantID)
			}
		})
	}
}
