package chromatui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateFontStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give FontStyle
		want Modifier
	}{
		{desc: "empty", give: 0, want: 0},
		{desc: "bold", give: FontBold, want: Bold},
		{desc: "italic", give: FontItalic, want: Italic},
		{desc: "underline", give: FontUnderline, want: Underlined},
		{
			desc: "bold italic",
			give: FontBold | FontItalic,
			want: Bold | Italic,
		},
		{
			desc: "bold underline",
			give: FontBold | FontUnderline,
			want: Bold | Underlined,
		},
		{
			desc: "italic underline",
			give: FontItalic | FontUnderline,
			want: Italic | Underlined,
		},
		{
			desc: "bold italic underline",
			give: FontBold | FontItalic | FontUnderline,
			want: Bold | Italic | Underlined,
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			got, err := TranslateFontStyle(tt.give)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTranslateFontStyle_unknown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give uint8
	}{
		{desc: "high bits", give: 254},
		{desc: "single stray bit", give: 8},
		{desc: "known bits and stray bit", give: 0b1000_0011},
		{desc: "all bits", give: 255},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			got, err := TranslateFontStyle(FontStyle(tt.give))
			assert.Zero(t, got)
			assert.Equal(t, &UnknownFontStyleError{Bits: tt.give}, err)
		})
	}
}

func TestUnknownFontStyleError(t *testing.T) {
	t.Parallel()

	err := &UnknownFontStyleError{Bits: 254}
	assert.EqualError(t, err,
		"unable to convert font style into modifier: unsupported bits (254) value")
}

func TestParseFontStyle(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		for bits := uint8(0); bits < 8; bits++ {
			fs, err := ParseFontStyle(bits)
			require.NoError(t, err, "bits %d", bits)
			assert.Equal(t, FontStyle(bits), fs)

			_, err = TranslateFontStyle(fs)
			assert.NoError(t, err, "bits %d", bits)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()

		for bits := 8; bits <= 255; bits++ {
			_, err := ParseFontStyle(uint8(bits))
			var ufe *UnknownFontStyleError
			require.ErrorAs(t, err, &ufe, "bits %d", bits)
			assert.Equal(t, uint8(bits), ufe.Bits)
		}
	})
}

func TestFontStyle_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give FontStyle
		want string
	}{
		{0, "none"},
		{FontBold, "bold"},
		{FontItalic | FontUnderline, "italic|underline"},
		{FontBold | FontItalic | FontUnderline, "bold|italic|underline"},
		{FontStyle(254), "FontStyle(254)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.give.String())
	}
}

func TestModifier_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give Modifier
		want string
	}{
		{0, "none"},
		{Underlined, "underlined"},
		{Bold | Italic | Underlined, "bold|italic|underlined"},
		{Dim | CrossedOut, "dim|crossed_out"},
		{Modifier(1 << 12), "Modifier(4096)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.give.String())
	}
}

func TestModifier_Contains(t *testing.T) {
	t.Parallel()

	m := Bold | Underlined
	assert.True(t, m.Contains(Bold))
	assert.True(t, m.Contains(Bold|Underlined))
	assert.True(t, m.Contains(0))
	assert.False(t, m.Contains(Italic))
	assert.False(t, m.Contains(Bold|Italic))
}
