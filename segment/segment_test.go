package segment_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jetspec/dossier/segment"
)

func TestSegmentMultiLineDefaultsToBullets(t *testing.T) {
	units := segment.Segment("Item A\nItem B\nItem C")
	require.Len(t, units, 3)
	for i, want := range []string{"Item A", "Item B", "Item C"} {
		assert.Equal(t, segment.Bullet, units[i].Kind)
		assert.Equal(t, want, units[i].Text)
	}
}

func TestSegmentSingleLineIsPlainVerbatim(t *testing.T) {
	units := segment.Segment("  - Honeywell RE220  \n\n")
	require.Len(t, units, 1)
	assert.Equal(t, segment.Plain, units[0].Kind)
	assert.Equal(t, "- Honeywell RE220", units[0].Text)
}

func TestSegmentStripsMarkers(t *testing.T) {
	units := segment.Segment("- Dual FMS\n* TCAS II\n• Synthetic vision\n--  HUD\n   \nEGPWS")
	require.Len(t, units, 5)
	got := make([]string, len(units))
	for i, u := range units {
		got[i] = u.Text
		assert.Equal(t, segment.Bullet, u.Kind)
	}
	assert.Equal(t, []string{"Dual FMS", "TCAS II", "Synthetic vision", "HUD", "EGPWS"}, got)
}

func TestSegmentDropsMarkerOnlyLines(t *testing.T) {
	units := segment.Segment("- \n-\nReal item\nOther")
	assert.Equal(t, 2, segment.Count(units, segment.Bullet))
}

func TestSegmentEmpty(t *testing.T) {
	assert.Empty(t, segment.Segment(""))
	assert.Empty(t, segment.Segment(" \n\t\n "))
}

func TestBulletizationIdempotent(t *testing.T) {
	fields := []string{
		"Item A\nItem B\nItem C",
		"Collins Pro Line 21\nDual IRS\nHF radio\nSATCOM",
		"x\ny",
	}
	for _, raw := range fields {
		lines := segment.SplitLines(raw)
		marked := "- " + strings.Join(lines, "\n- ")

		plain := segment.Segment(raw)
		again := segment.Segment(marked)
		assert.Equal(t, segment.Count(plain, segment.Bullet), segment.Count(again, segment.Bullet), raw)
		assert.Equal(t, plain, again, raw)
	}
}

func TestNormalizeSubstitutions(t *testing.T) {
	in := "“Smart” ‘quotes’ – dash — more…  end • item"
	assert.Equal(t, `"Smart" 'quotes' - dash - more...  end - item`, segment.Normalize(in))
}

func TestNormalizeDropsUnsupported(t *testing.T) {
	assert.Equal(t, "Gulfstream  G650", segment.Normalize("Gulfstream ✈ G650"))
	assert.Equal(t, "line1\nline2", segment.Normalize("line1\r\nline2\x00"))
	assert.Equal(t, "", segment.Normalize("日本"))
	assert.Equal(t, "Caf\u00e9", segment.Normalize("Cafe\u0301"))
	assert.Equal(t, "a b", segment.Normalize("a\u00a0b"))
}

func TestNormalizeThenSegmentTreatsBulletGlyph(t *testing.T) {
	units := segment.Segment(segment.Normalize("• One\n• Two"))
	require.Len(t, units, 2)
	assert.Equal(t, "One", units[0].Text)
	assert.Equal(t, "Two", units[1].Text)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "bullet", segment.Bullet.String())
	assert.Equal(t, "plain", segment.Plain.String())
}

func TestUpperKeepsLatin1(t *testing.T) {
	assert.Equal(t, "DISPLAY 10 µS", segment.Upper("Display 10 µs"))
	assert.Equal(t, "CAFÉ ÿ UNIT", segment.Upper("Café ÿ unit"))
	assert.Equal(t, "STRASSE ß", segment.Upper("strasse ß"))
	assert.Equal(t, "G650 - \"VIEW\"", segment.Upper("g650 – “view”"))
	assert.Equal(t, "", segment.Upper("日本"))
}
