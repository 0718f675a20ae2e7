// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"strings"
	"testing"
)

func TestSymbolName_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   SymbolName
		wantErr bool
	}{
		{"simple", "copy", false},
		{"with hyphen", "dry-run", false},
		{"with underscore", "out_dir", false},
		{"single letter", "v", false},
		{"digits after letter", "arg1", false},
		{"empty", "", true},
		{"leading digit", "1arg", true},
		{"leading dash", "-v", true},
		{"space", "dry run", true},
		{"too long", SymbolName("a" + strings.Repeat("b", MaxSymbolNameLength)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.value.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("SymbolName(%q).Validate() error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidSymbolName) {
				t.Errorf("error should wrap ErrInvalidSymbolName, got: %v", err)
			}
		})
	}
}
