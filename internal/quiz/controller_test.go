package quiz

import (
	"fmt"
	"testing"
)

func testQuestions(t *testing.T, n int) QuestionSet {
	t.Helper()
	prompts := make([]string, n)
	for i := range prompts {
		prompts[i] = fmt.Sprintf("Question %d?", i+1)
	}
	qs, err := NewQuestionSet(prompts)
	if err != nil {
		t.Fatalf("NewQuestionSet: %v", err)
	}
	return qs
}

func TestNewController_InitialState(t *testing.T) {
	c := NewController(testQuestions(t, 5))

	if c.Index() != 0 {
		t.Errorf("Index = %d, want 0", c.Index())
	}
	if c.Number() != 1 {
		t.Errorf("Number = %d, want 1", c.Number())
	}
	if c.Complete() {
		t.Error("new controller should not be complete")
	}
	if len(c.YesIndices()) != 0 {
		t.Errorf("YesIndices = %v, want empty", c.YesIndices())
	}
	if c.SessionID() == "" {
		t.Error("expected a session ID")
	}
}

func TestController_CompletesExactlyAfterNthAnswer(t *testing.T) {
	for n := 1; n <= 6; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			c := NewController(testQuestions(t, n))
			for i := 0; i < n; i++ {
				if c.Complete() {
					t.Fatalf("complete before answer %d", i+1)
				}
				if i%2 == 0 {
					c.AnswerYes()
				} else {
					c.AnswerNo()
				}
			}
			if !c.Complete() {
				t.Fatal("expected complete after N answers")
			}
			if c.Index() != n-1 {
				t.Errorf("Index = %d, want %d", c.Index(), n-1)
			}
		})
	}
}

func TestController_RecordsOnlyYes(t *testing.T) {
	c := NewController(testQuestions(t, 5))
	answers := []bool{true, false, true, true, false}
	for _, yes := range answers {
		if yes {
			c.AnswerYes()
		} else {
			c.AnswerNo()
		}
	}

	got := c.YesIndices()
	want := []int{0, 2, 3}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("YesIndices = %v, want %v", got, want)
	}

	accepted := c.Accepted()
	wantAccepted := []string{"Question 1?", "Question 3?", "Question 4?"}
	if fmt.Sprint(accepted) != fmt.Sprint(wantAccepted) {
		t.Errorf("Accepted = %v, want %v", accepted, wantAccepted)
	}
}

func TestController_AnswersAfterCompleteAreIgnored(t *testing.T) {
	c := NewController(testQuestions(t, 1))
	c.AnswerYes()
	c.AnswerYes()
	c.AnswerNo()

	if got := len(c.YesIndices()); got != 1 {
		t.Errorf("len(YesIndices) = %d, want 1", got)
	}
	if c.Index() != 0 {
		t.Errorf("Index = %d, want 0", c.Index())
	}
}

func TestController_Restart(t *testing.T) {
	c := NewController(testQuestions(t, 3))
	first := c.SessionID()
	c.AnswerYes()
	c.AnswerYes()
	c.AnswerNo()

	c.Restart()

	if c.Index() != 0 || c.Complete() || len(c.YesIndices()) != 0 {
		t.Errorf("after restart: index=%d complete=%v yes=%v", c.Index(), c.Complete(), c.YesIndices())
	}
	if c.SessionID() == first {
		t.Error("restart should issue a new session ID")
	}
	if c.Current() != "Question 1?" {
		t.Errorf("Current = %q, want first question", c.Current())
	}
}

func TestController_YesIndicesIsCopy(t *testing.T) {
	c := NewController(testQuestions(t, 2))
	c.AnswerYes()

	got := c.YesIndices()
	got[0] = 99

	if c.YesIndices()[0] != 0 {
		t.Error("YesIndices should not expose internal state")
	}
}
