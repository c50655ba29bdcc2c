package corpus

import (
	"strings"
	"testing"
)

func TestCorpus_Run(t *testing.T) {
	var seen []string
	Corpus{
		Root:      "testdata/upper",
		Refresh:   "CORPUS_TEST_REFRESH",
		Extension: "txt",
		Outputs:   []Output{{Extension: "out"}},
		Test: func(t *testing.T, path, text string) []string {
			seen = append(seen, path)
			return []string{strings.ToUpper(text)}
		},
	}.Run(t)

	want := []string{"a.txt", "empty.txt", "nested/b.txt"}
	if strings.Join(seen, ",") != strings.Join(want, ",") {
		t.Errorf("cases = %v, want %v", seen, want)
	}
}

func TestDiff(t *testing.T) {
	type tc struct {
		got, want string
		match     bool
		contains  []string
	}

	tests := map[string]tc{
		"equal": {
			got: "a\nb\n", want: "a\nb\n", match: true,
		},
		"changed line": {
			got: "a\nc\n", want: "a\nb\n",
			contains: []string{"--- want", "+++ got", "-b", "+c"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			msg := Diff(tt.got, tt.want)
			if tt.match != (msg == "") {
				t.Fatalf("Diff() = %q, match want %v", msg, tt.match)
			}
			for _, c := range tt.contains {
				if !strings.Contains(msg, c) {
					t.Errorf("Diff() missing %q:\n%s", c, msg)
				}
			}
		})
	}
}
