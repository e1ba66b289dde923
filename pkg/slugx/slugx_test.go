package slugx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMake(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain name", "Jean Dupont", "jean-dupont"},
		{"diacritics stripped", "Éléonore Müller", "eleonore-muller"},
		{"symbol runs collapse", "12 rue de l'Église -- Paris", "12-rue-de-l-eglise-paris"},
		{"leading and trailing junk", "  ---Villa «Les Pins»!  ", "villa-les-pins"},
		{"digits kept", "Lot 42B", "lot-42b"},
		{"empty input", "", ""},
		{"only symbols", "!!! ***", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Make(tc.in))
		})
	}
}

func TestMakeCapsLength(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("appartement ", 12)
	got := Make(long)
	require.LessOrEqual(t, len(got), MaxLength)
	require.False(t, strings.HasSuffix(got, "-"))
	require.False(t, strings.HasPrefix(got, "-"))
}
