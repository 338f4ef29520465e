package domain

import "testing"

func TestParseDegrees(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Degree
	}{
		{
			name: "explicit abbreviations",
			text: "Requires a BS in Computer Science, MS preferred.",
			want: []Degree{DegreeBA, DegreeMA},
		},
		{
			name: "slash separated",
			text: "BS/MS in a quantitative field",
			want: []Degree{DegreeBA, DegreeMA},
		},
		{
			name: "spelled out with possessive",
			text: "Bachelor's degree required; master's a plus",
			want: []Degree{DegreeBA, DegreeMA},
		},
		{
			name: "doctorate synonyms",
			text: "Ph.D. or equivalent doctoral experience",
			want: []Degree{DegreePhD},
		},
		{
			name: "advanced degree implies masters",
			text: "An advanced degree is strongly preferred",
			want: []Degree{DegreeMA},
		},
		{
			name: "degree in field counts as bachelor",
			text: "Degree in Physics or related discipline",
			want: []Degree{DegreeBA},
		},
		{
			name: "no mentions",
			text: "Five years of experience shipping production systems",
			want: []Degree{},
		},
		{
			name: "case insensitive",
			text: "phd candidates welcome",
			want: []Degree{DegreePhD},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDegrees(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseDegrees(%q) = %v, want %v", tt.text, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseDegrees(%q)[%d] = %v, want %v", tt.text, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCanonicalDegree(t *testing.T) {
	tests := []struct {
		in   string
		want Degree
		ok   bool
	}{
		{"PhD", DegreePhD, true},
		{"phd", DegreePhD, true},
		{"BS", DegreeBA, true},
		{"Masters", DegreeMA, true},
		{" doctorate ", DegreePhD, true},
		{"associate", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := CanonicalDegree(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("CanonicalDegree(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
