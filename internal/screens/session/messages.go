package session

// answerMsg carries one answer from the question view to the controller.
type answerMsg struct {
	yes bool
}

// restartMsg is sent by the results view's Try Again action.
type restartMsg struct{}
