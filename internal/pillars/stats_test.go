package pillars

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatValue(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  StatParts
	}{
		{
			name:  "range with unit",
			value: "12–18 mo",
			want:  StatParts{Prefix: "", Num: 12, Suffix: "–18 mo", HasNum: true},
		},
		{
			name:  "plus prefix percentage",
			value: "+18%",
			want:  StatParts{Prefix: "+", Num: 18, Suffix: "%", HasNum: true},
		},
		{
			name:  "minus-sign prefix",
			value: "−0.5 day",
			want:  StatParts{Prefix: "−", Num: 0.5, Suffix: " day", HasNum: true},
		},
		{
			name:  "trailing plus",
			value: "95%+",
			want:  StatParts{Prefix: "", Num: 95, Suffix: "%+", HasNum: true},
		},
		{
			name:  "ratio",
			value: "9.2/10",
			want:  StatParts{Prefix: "", Num: 9.2, Suffix: "/10", HasNum: true},
		},
		{
			name:  "bare count",
			value: "8+",
			want:  StatParts{Prefix: "", Num: 8, Suffix: "+", HasNum: true},
		},
		{
			name:  "no digits",
			value: "High",
			want:  StatParts{Suffix: "High"},
		},
		{
			name:  "empty",
			value: "",
			want:  StatParts{Suffix: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseStatValue(tt.value))
		})
	}
}

func TestParseStatValue_AllDefaultStats(t *testing.T) {
	// Every stat in the shipped content parses to an animatable number.
	for _, p := range NewDefault().All() {
		for _, st := range p.Stats {
			parts := ParseStatValue(st.Value)
			assert.True(t, parts.HasNum, "stat %q (%s) should carry a number", st.Value, st.Label)
		}
	}
}

func TestIconDescriptor(t *testing.T) {
	d := IconTag("stethoscope").Descriptor()
	assert.Equal(t, "stethoscope", d.Name)
	assert.False(t, d.Default)

	unknown := IconTag("flux-capacitor").Descriptor()
	assert.Equal(t, "check-circle", unknown.Name)
	assert.Equal(t, "Item", unknown.Label)
	assert.True(t, unknown.Default)

	assert.False(t, IconTag("flux-capacitor").Known())
	assert.True(t, IconCheck.Known())
}
