package sentiment

import "testing"

func TestAnalyzeEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t  "} {
		result := Analyze(input)
		if result.Label != LabelNeutral || result.Score != 0.5 {
			t.Errorf("Analyze(%q) = %+v, want Neutral/0.5", input, result)
		}
	}
}

func TestAnalyzeDeterminism(t *testing.T) {
	inputs := []string{
		"bugün çok mutluyum, harika bir gün",
		"çok yorgun ve stresli hissediyorum 😢",
		"markete gittim",
	}
	for _, input := range inputs {
		first := Analyze(input)
		second := Analyze(input)
		if first != second {
			t.Errorf("Analyze(%q) not deterministic: %+v vs %+v", input, first, second)
		}
	}
}

func TestAnalyzePositive(t *testing.T) {
	result := Analyze("mutlu")
	if result.Label != LabelPositive {
		t.Errorf("Analyze(\"mutlu\") label = %s, want Positive", result.Label)
	}
	if result.Score != 1.0 {
		t.Errorf("Analyze(\"mutlu\") score = %v, want 1.0", result.Score)
	}
}

func TestAnalyzeNegative(t *testing.T) {
	result := Analyze("üzgün")
	if result.Label != LabelNegative {
		t.Errorf("Analyze(\"üzgün\") label = %s, want Negative", result.Label)
	}
	if result.Score != 0.0 {
		t.Errorf("Analyze(\"üzgün\") score = %v, want 0.0", result.Score)
	}
}

func TestAnalyzeBalancedIsNeutral(t *testing.T) {
	result := Analyze("mutlu üzgün")
	if result.Label != LabelNeutral || result.Score != 0.5 {
		t.Errorf("Analyze(\"mutlu üzgün\") = %+v, want Neutral/0.5", result)
	}
}

func TestIntensifierDoubling(t *testing.T) {
	// The intensifier doubles the following positive word, shifting the
	// ratio in a mixed sentence from 1/2 to 2/3.
	plain := Analyze("mutlu ama üzgün")
	boosted := Analyze("çok mutlu ama üzgün")
	if boosted.Score <= plain.Score {
		t.Errorf("boosted score %v not above plain score %v", boosted.Score, plain.Score)
	}
}

func TestIntensifierAloneIsNeutral(t *testing.T) {
	result := Analyze("çok çok çok")
	if result.Label != LabelNeutral || result.Score != 0.5 {
		t.Errorf("Analyze(\"çok çok çok\") = %+v, want Neutral/0.5", result)
	}
}

func TestNoSentimentWordsFallsBackToNeutral(t *testing.T) {
	result := Analyze("bugün markete gittim ve ekmek aldım")
	if result.Label != LabelNeutral || result.Score != 0.5 {
		t.Errorf("no-lexicon text = %+v, want Neutral/0.5", result)
	}
}

func TestSubstringFallbackCatchesGluedEmoji(t *testing.T) {
	// "😊🙏" is not an exact lexicon entry but contains one.
	result := Analyze("günaydın 😊🙏 dünya")
	if result.Label != LabelPositive {
		t.Errorf("glued emoji label = %s, want Positive", result.Label)
	}
}

func TestDensityDampening(t *testing.T) {
	short := Analyze("mutlu")

	padded := "mutlu"
	for i := 0; i < 20; i++ {
		padded += " kalem"
	}
	long := Analyze(padded)

	if long.Score >= short.Score {
		t.Errorf("padded score %v not dampened below %v", long.Score, short.Score)
	}
	if long.Score != 0.75 {
		t.Errorf("padded score = %v, want 0.75", long.Score)
	}
}

func TestLabelScoreConsistency(t *testing.T) {
	inputs := []string{
		"", "mutlu", "üzgün", "mutlu üzgün", "çok mutlu ama üzgün",
		"harika muhteşem kötü", "bugün markete gittim", "😢😢 😊",
	}
	for _, input := range inputs {
		result := Analyze(input)
		var want string
		switch {
		case result.Score >= 0.6:
			want = LabelPositive
		case result.Score <= 0.4:
			want = LabelNegative
		default:
			want = LabelNeutral
		}
		if result.Label != want {
			t.Errorf("Analyze(%q) = %+v, label inconsistent with score (want %s)", input, result, want)
		}
	}
}

func TestLabelBoundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{0.6, LabelPositive},
		{0.61, LabelPositive},
		{0.59, LabelNeutral},
		{0.5, LabelNeutral},
		{0.41, LabelNeutral},
		{0.4, LabelNegative},
		{0.39, LabelNegative},
	}
	for _, tc := range cases {
		if got := labelFor(tc.score); got != tc.want {
			t.Errorf("labelFor(%v) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestLexiconsAreDisjoint(t *testing.T) {
	for _, w := range positiveWords {
		if _, ok := negativeSet[w]; ok {
			t.Errorf("word %q is in both positive and negative lexicons", w)
		}
		if _, ok := intensifierSet[w]; ok {
			t.Errorf("word %q is in both positive and intensifier lexicons", w)
		}
	}
	for _, w := range negativeWords {
		if _, ok := intensifierSet[w]; ok {
			t.Errorf("word %q is in both negative and intensifier lexicons", w)
		}
	}
}
