package consolidate

import "testing"

func TestFormatHeading(t *testing.T) {
	cases := map[string]string{
		"clean-code-typescript": "Clean Code Typescript",
		"clean-architecture":    "Clean Architecture",
		"a":                     "A",
		"":                      "",
		"already Upper":         "Already Upper",
		"über-guide":            "Über Guide",
	}
	for input, want := range cases {
		if got := FormatHeading(input); got != want {
			t.Errorf("FormatHeading(%q) = %q, want %q", input, got, want)
		}
	}
}
