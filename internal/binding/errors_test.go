// SPDX-License-Identifier: MPL-2.0

package binding

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/invowk/argbind/pkg/argument"
)

func TestMessages(t *testing.T) {
	t.Parallel()

	validation := &ValidationError{Kind: argument.KindOption, Name: "mode", Messages: []string{"a", "b"}}
	conversion := &ConversionError{Kind: argument.KindCommand, Name: "c", Message: "c"}
	unknown := &UnknownOptionError{Command: "copy", Option: "x"}

	tests := []struct {
		name string
		err  error
		want []string
	}{
		{"nil", nil, nil},
		{"validation", validation, []string{"a", "b"}},
		{"wrapped join", fmt.Errorf("outer: %w", errors.Join(validation, conversion, unknown)), []string{"a", "b", "c", "command 'copy' has no option 'x'"}},
		{"plain", errors.New("boom"), []string{"boom"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Messages(tt.err); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Messages() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	single := &ValidationError{Kind: argument.KindCommand, Name: "copy", Messages: []string{"only"}}
	if single.Error() != "only" {
		t.Errorf("Error() = %q", single.Error())
	}
	multi := &ValidationError{Kind: argument.KindOption, Name: "mode", Messages: []string{"one.", "two."}}
	if got := multi.Error(); got != "option 'mode': one. two." {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(multi, ErrValidationFailed) {
		t.Error("ValidationError should unwrap to ErrValidationFailed")
	}
	if !errors.Is(&ConversionError{}, argument.ErrConversionFailed) {
		t.Error("ConversionError should unwrap to argument.ErrConversionFailed")
	}
}
