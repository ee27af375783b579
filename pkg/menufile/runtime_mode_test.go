// SPDX-License-Identifier: MPL-2.0

package menufile

import (
	"errors"
	"testing"
)

func TestRuntimeModeValidate(t *testing.T) {
	tests := []struct {
		mode    RuntimeMode
		wantErr bool
	}{
		{RuntimeNative, false},
		{RuntimeVirtual, false},
		{"", true},
		{"container", true},
		{"NATIVE", true},
	}
	for _, tt := range tests {
		err := tt.mode.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("RuntimeMode(%q).Validate() = %v, wantErr %v", tt.mode, err, tt.wantErr)
		}
		if tt.wantErr && !errors.Is(err, ErrInvalidRuntimeMode) {
			t.Errorf("RuntimeMode(%q) error = %v, want ErrInvalidRuntimeMode", tt.mode, err)
		}
	}
}
