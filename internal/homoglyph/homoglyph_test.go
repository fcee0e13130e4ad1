package homoglyph_test

import (
	"phishsniper/internal/homoglyph"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFold(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
	}{
		{name: "plain", in: "example", out: "example"},
		{name: "uppercase", in: "PayPal", out: "paypal"},
		{name: "digit one", in: "paypa1", out: "paypal"},
		{name: "digit zero", in: "g00gle", out: "google"},
		{name: "i and l collapse", in: "paypai", out: "paypal"},
		{name: "rn sequence", in: "arnazon", out: "amazon"},
		{name: "vv sequence", in: "vvalmart", out: "walmart"},
		{name: "cyrillic a", in: "pаypal", out: "paypal"},
		{name: "greek omicron", in: "gοοgle", out: "google"},
		{name: "diacritics", in: "ámázön", out: "amazon"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.out, homoglyph.Fold(tc.in))
		})
	}
}

func TestFoldIdempotent(t *testing.T) {
	for _, in := range []string{"rrnn", "vvv", "c1ick", "micrоsоft"} {
		once := homoglyph.Fold(in)
		require.Equal(t, once, homoglyph.Fold(once), in)
	}
}

func TestContainsConfusable(t *testing.T) {
	require.False(t, homoglyph.ContainsConfusable("paypa1.com"))
	require.True(t, homoglyph.ContainsConfusable("pаypal.com"))
	require.True(t, homoglyph.ContainsConfusable("аррӏе.com"))
}

func TestMixedScript(t *testing.T) {
	require.False(t, homoglyph.MixedScript("example.com"))
	require.False(t, homoglyph.MixedScript("пример.рф"))
	require.True(t, homoglyph.MixedScript("pаypal.com"))
	require.False(t, homoglyph.MixedScript(""))
}
