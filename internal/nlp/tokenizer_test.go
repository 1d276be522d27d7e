package nlp

import (
	"reflect"
	"testing"
)

func TestSentenceSplit(t *testing.T) {
	tok := NewRuleTokenizer()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "two sentences",
			in:   "Marie Curie discovered polonium in 1898. She won the Nobel Prize in 1903.",
			want: []string{
				"Marie Curie discovered polonium in 1898.",
				"She won the Nobel Prize in 1903.",
			},
		},
		{
			name: "mixed terminators",
			in:   "Really? Yes! It works.",
			want: []string{"Really?", "Yes!", "It works."},
		},
		{
			name: "decimal number stays whole",
			in:   "The rate was 3.5 percent. It fell later.",
			want: []string{"The rate was 3.5 percent.", "It fell later."},
		},
		{
			name: "trailing text without terminator",
			in:   "First sentence. trailing fragment",
			want: []string{"First sentence.", "trailing fragment"},
		},
		{
			name: "ellipsis run",
			in:   "Wait... it worked.",
			want: []string{"Wait...", "it worked."},
		},
		{
			name: "empty input",
			in:   "   ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tok.SentenceSplit(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SentenceSplit(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestWordSplit(t *testing.T) {
	tok := NewRuleTokenizer()

	got := tok.WordSplit("Marie Curie's well-known work, in 1898.")
	want := []string{"Marie", "Curie's", "well-known", "work", "in", "1898"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("WordSplit = %q, want %q", got, want)
	}
}

func TestStopWordsAndArticles(t *testing.T) {
	if !IsStopWord("The") {
		t.Error("expected 'The' to be a stop word")
	}
	if IsStopWord("polonium") {
		t.Error("did not expect 'polonium' to be a stop word")
	}
	if !IsStopArticle(" the ") {
		t.Error("expected 'the' to be a stop article")
	}
	if IsStopArticle("Nobel Prize") {
		t.Error("did not expect 'Nobel Prize' to be a stop article")
	}
}

func TestIsQuestionWord(t *testing.T) {
	for _, w := range []string{"What", "comment", "dónde"} {
		if !IsQuestionWord(w) {
			t.Errorf("expected %q to be a question word", w)
		}
	}
	if IsQuestionWord("polonium") {
		t.Error("did not expect 'polonium' to be a question word")
	}
}
