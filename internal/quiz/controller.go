package quiz

import (
	"log"

	"github.com/google/uuid"
)

// Controller holds the session state for one pass through a QuestionSet.
//
// A session starts at index 0 with no recorded answers. AnswerYes and
// AnswerNo advance the index until the last question has been answered,
// at which point Complete reports true. Restart returns to the initial
// state with a fresh session ID.
type Controller struct {
	questions  QuestionSet
	current    int
	yesIndices []int
	complete   bool
	sessionID  string
}

// NewController creates a Controller positioned at the first question.
func NewController(questions QuestionSet) *Controller {
	c := &Controller{questions: questions}
	c.reset()
	return c
}

func (c *Controller) reset() {
	c.current = 0
	c.yesIndices = nil
	c.complete = false
	c.sessionID = uuid.New().String()
}

// AnswerYes records the current index and advances.
func (c *Controller) AnswerYes() {
	if c.complete {
		return
	}
	c.yesIndices = append(c.yesIndices, c.current)
	log.Printf("session=%s question=%d answer=yes", c.sessionID, c.current)
	c.advance()
}

// AnswerNo advances without recording.
func (c *Controller) AnswerNo() {
	if c.complete {
		return
	}
	log.Printf("session=%s question=%d answer=no", c.sessionID, c.current)
	c.advance()
}

func (c *Controller) advance() {
	if c.current < c.questions.Len()-1 {
		c.current++
		return
	}
	c.complete = true
	log.Printf("session=%s complete yes=%d/%d", c.sessionID, len(c.yesIndices), c.questions.Len())
}

// Restart discards all progress.
func (c *Controller) Restart() {
	prev := c.sessionID
	c.reset()
	log.Printf("session=%s restarted as session=%s", prev, c.sessionID)
}

// Current returns the text of the question being asked.
func (c *Controller) Current() string {
	return c.questions.At(c.current)
}

// Index returns the 0-based index of the current question.
func (c *Controller) Index() int {
	return c.current
}

// Number returns the 1-based number of the current question.
func (c *Controller) Number() int {
	return c.current + 1
}

// Total returns the number of questions in the session.
func (c *Controller) Total() int {
	return c.questions.Len()
}

// Complete reports whether every question has been answered.
func (c *Controller) Complete() bool {
	return c.complete
}

// YesIndices returns the recorded indices in the order they were answered.
func (c *Controller) YesIndices() []int {
	out := make([]int, len(c.yesIndices))
	copy(out, c.yesIndices)
	return out
}

// Accepted returns the prompts answered "yes", in recording order.
func (c *Controller) Accepted() []string {
	out := make([]string, 0, len(c.yesIndices))
	for _, i := range c.yesIndices {
		out = append(out, c.questions.At(i))
	}
	return out
}

// SessionID identifies the current pass; it changes on Restart.
func (c *Controller) SessionID() string {
	return c.sessionID
}
