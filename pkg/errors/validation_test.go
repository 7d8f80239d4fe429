package errors

import (
	"strings"
	"testing"
)

func TestValidateWord(t *testing.T) {
	tests := []struct {
		name string
		word string
		code Code // empty means valid
	}{
		{"simple word", "cat", ""},
		{"unicode word", "über", ""},
		{"empty", "", ErrCodeEmptyWord},
		{"too long", strings.Repeat("a", MaxWordLength+1), ErrCodeInvalidWord},
		{"max length ok", strings.Repeat("a", MaxWordLength), ""},
		{"invalid utf8", string([]byte{0xff, 0xfe}), ErrCodeInvalidWord},
		{"embedded tab", "ca\tt", ErrCodeInvalidWord},
		{"embedded nul", "a\x00b", ErrCodeInvalidWord},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWord(tt.word)
			if tt.code == "" {
				if err != nil {
					t.Errorf("ValidateWord(%q) = %v, want nil", tt.word, err)
				}
				return
			}
			if !Is(err, tt.code) {
				t.Errorf("ValidateWord(%q) = %v, want code %v", tt.word, err, tt.code)
			}
		})
	}
}
