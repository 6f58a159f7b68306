package tailwind

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsUtilityClass(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"block", true},
		{"border", true},
		{"rounded", true},
		{"container", true},
		{"p-4", true},
		{"p-2.5", true},
		{"px-px", true},
		{"mx-auto", true},
		{"m-[10px]", true},
		{"p-large", false},
		{"mt-foo", false},
		{"w-full", true},
		{"text-blue-500", true},
		{"bg-custom-thing", true},
		{"text-[22px]", true},
		{"[mso-hide:all]", true},
		{"shadow", false},
		{"shadow-md", true},
		{"ps-4", false},
		{"btn", false},
		{"header-logo", false},
		{"email-wrapper", false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			require.Equal(t, tt.want, IsUtilityClass(tt.token))
		})
	}
}
