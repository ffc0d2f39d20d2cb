package score

import "testing"

func TestTierFor_FiveQuestions(t *testing.T) {
	tests := []struct {
		yes  int
		want Tier
	}{
		{5, TierAllYes},
		{4, TierNearlyAll},
		{3, TierHalfway},
		{2, TierHalfway},
		{1, TierSomeday},
		{0, TierSomeday},
	}
	for _, tt := range tests {
		if got := TierFor(tt.yes, 5); got != tt.want {
			t.Errorf("TierFor(%d, 5) = %v, want %v", tt.yes, got, tt.want)
		}
	}
}

func TestTierFor_SingleQuestion(t *testing.T) {
	if got := TierFor(1, 1); got != TierAllYes {
		t.Errorf("TierFor(1, 1) = %v, want %v", got, TierAllYes)
	}
	// 0 >= 1-1 matches the second rung before the halfway rung.
	if got := TierFor(0, 1); got != TierNearlyAll {
		t.Errorf("TierFor(0, 1) = %v, want %v", got, TierNearlyAll)
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		yes, total, want int
	}{
		{3, 5, 60},
		{0, 5, 0},
		{5, 5, 100},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13}, // 12.5 rounds up
		{0, 0, 0},
	}
	for _, tt := range tests {
		if got := Percentage(tt.yes, tt.total); got != tt.want {
			t.Errorf("Percentage(%d, %d) = %d, want %d", tt.yes, tt.total, got, tt.want)
		}
	}
}

func TestCompute(t *testing.T) {
	r := Compute(3, 5)
	if r.YesCount != 3 || r.Total != 5 || r.Percentage != 60 || r.Tier != TierHalfway {
		t.Errorf("Compute(3, 5) = %+v", r)
	}
	if r.Fraction() != "3/5" {
		t.Errorf("Fraction = %q, want 3/5", r.Fraction())
	}
}

func TestMessages(t *testing.T) {
	for _, tier := range []Tier{TierAllYes, TierNearlyAll, TierHalfway, TierSomeday} {
		m := tier.Message()
		if m.Emoji == "" || m.Title == "" || m.Description == "" {
			t.Errorf("tier %v has incomplete message %+v", tier, m)
		}
	}
	if got := TierHalfway.Message().Title; got != "Sweet!" {
		t.Errorf("halfway title = %q, want Sweet!", got)
	}
}

func TestShareText(t *testing.T) {
	got := Compute(3, 5).ShareText()
	want := "I scored 3/5 (60% Compatible) on the love quiz! 🥰 Sweet!"
	if got != want {
		t.Errorf("ShareText = %q, want %q", got, want)
	}
}
