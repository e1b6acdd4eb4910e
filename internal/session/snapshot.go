package session

// Snapshot is a read-only copy of the session state for collaborators to
// render. Nothing in it aliases engine-owned memory.
type Snapshot struct {
	Phase         Phase    `json:"phase"`
	PromptIndex   int      `json:"prompt_index"`
	PromptCount   int      `json:"prompt_count"`
	Prompt        string   `json:"prompt"`
	TimeRemaining int      `json:"time_remaining"`
	Records       []Record `json:"records"`
}

func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	s := Snapshot{
		Phase:         e.phase,
		PromptIndex:   e.promptIndex,
		PromptCount:   len(e.prompts),
		TimeRemaining: e.timeRemaining,
		Records:       copyRecords(e.records),
	}
	if e.phase != PhaseSetup && e.phase != PhaseReady && e.promptIndex < len(e.prompts) {
		s.Prompt = e.prompts[e.promptIndex]
	}
	return s
}

// CurrentAnswers returns the texts answered so far for the current prompt,
// oldest first. Empty before Start and after completion.
func (e *Engine) CurrentAnswers() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.records) == 0 || e.phase == PhaseCompleted {
		return nil
	}
	out := make([]string, 0, len(e.records[e.promptIndex].Answers))
	for _, a := range e.records[e.promptIndex].Answers {
		out = append(out, a.Text)
	}
	return out
}
