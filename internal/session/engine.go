// Package session holds the per-session state machine: the ordered prompt
// list, per-prompt answer history, countdown state, and the transitions that
// move a respondent from one prompt to the next.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
)

type Phase string

const (
	PhaseSetup          Phase = "setup"
	PhaseReady          Phase = "ready"
	PhaseAwaitingAnswer Phase = "awaiting_answer"
	PhaseScoring        Phase = "scoring"
	PhaseCompleted      Phase = "completed"
)

const (
	DefaultCoherenceThreshold = 15
	DefaultNoveltyThreshold   = 0.15
	DefaultTimeLimit          = 180 // seconds per attempt
)

var (
	ErrNoPrompts   = errors.New("session needs at least one prompt")
	ErrNotReady    = errors.New("session has not been marked ready")
	ErrNotAwaiting = errors.New("session is not awaiting an answer")
	ErrEmptyAnswer = errors.New("answer is empty")
)

// Answer is one scored submission. Immutable once appended.
type Answer struct {
	Text        string    `json:"text"`
	Coherence   int       `json:"coherence"`
	Novelty     float64   `json:"novelty"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Record is the full answer history for one prompt, in attempt order.
// Answers are appended only, never removed or reordered.
type Record struct {
	Prompt  string   `json:"prompt"`
	Answers []Answer `json:"answers"`
}

// CoherenceScorer judges one (prompt, answer) pair on the 0-100 rubric.
type CoherenceScorer interface {
	Score(ctx context.Context, prompt, answer string) (int, error)
}

// NoveltyScorer scores one answer against the prior answers to its prompt.
type NoveltyScorer interface {
	Score(ctx context.Context, answer string, prior []string) (float64, error)
}

type Config struct {
	CoherenceThreshold int
	NoveltyThreshold   float64
	TimeLimit          int
}

func DefaultConfig() Config {
	return Config{
		CoherenceThreshold: DefaultCoherenceThreshold,
		NoveltyThreshold:   DefaultNoveltyThreshold,
		TimeLimit:          DefaultTimeLimit,
	}
}

// Outcome reports what one transition did.
type Outcome struct {
	Recorded  bool   // an Answer was appended
	Answer    Answer // the appended Answer, when Recorded
	Advanced  bool   // the session moved past the current prompt
	Completed bool   // the session reached the final state
}

// Engine owns SessionState exclusively; all mutation goes through its
// transition methods. One respondent, one session, sequential prompts.
type Engine struct {
	mu      sync.Mutex
	cfg     Config
	judge   CoherenceScorer
	novelty NoveltyScorer
	clock   func() time.Time

	phase         Phase
	prompts       []string
	promptIndex   int
	records       []Record
	timeRemaining int
}

func NewEngine(prompts []string, judge CoherenceScorer, novelty NoveltyScorer, cfg Config) (*Engine, error) {
	if len(prompts) == 0 {
		return nil, ErrNoPrompts
	}
	if cfg.TimeLimit <= 0 {
		cfg.TimeLimit = DefaultTimeLimit
	}
	return &Engine{
		cfg:     cfg,
		judge:   judge,
		novelty: novelty,
		clock:   time.Now,
		phase:   PhaseSetup,
		prompts: append([]string(nil), prompts...),
	}, nil
}

// MarkReady moves Setup → Ready once credential intake has succeeded.
func (e *Engine) MarkReady() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.phase == PhaseSetup {
		e.phase = PhaseReady
	}
}

// Start begins the scored loop: first prompt, full timer.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.phase != PhaseReady {
		return ErrNotReady
	}
	e.phase = PhaseAwaitingAnswer
	e.promptIndex = 0
	e.records = []Record{{Prompt: e.prompts[0]}}
	e.timeRemaining = e.cfg.TimeLimit
	return nil
}

// Submit scores one answer against the current prompt. Coherence judgment and
// novelty computation run concurrently; no state is committed until both
// finish. On any scoring failure nothing is appended and the session returns
// to AwaitingAnswer with the timer value preserved, so the respondent can
// re-submit the same text.
func (e *Engine) Submit(ctx context.Context, text string) (Outcome, error) {
	e.mu.Lock()
	if e.phase != PhaseAwaitingAnswer {
		e.mu.Unlock()
		return Outcome{}, ErrNotAwaiting
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		e.mu.Unlock()
		return Outcome{}, ErrEmptyAnswer
	}
	e.phase = PhaseScoring
	prompt := e.records[e.promptIndex].Prompt
	prior := make([]string, 0, len(e.records[e.promptIndex].Answers))
	for _, a := range e.records[e.promptIndex].Answers {
		prior = append(prior, a.Text)
	}
	e.mu.Unlock()

	var (
		wg        sync.WaitGroup
		coherence int
		nov       float64
		cohErr    error
		novErr    error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		coherence, cohErr = e.judge.Score(ctx, prompt, trimmed)
	}()
	go func() {
		defer wg.Done()
		nov, novErr = e.novelty.Score(ctx, trimmed, prior)
	}()
	wg.Wait()

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := ctx.Err(); err != nil {
		e.phase = PhaseAwaitingAnswer
		return Outcome{}, err
	}
	if cohErr != nil {
		e.phase = PhaseAwaitingAnswer
		return Outcome{}, cohErr
	}
	if novErr != nil {
		e.phase = PhaseAwaitingAnswer
		return Outcome{}, novErr
	}

	answer := Answer{
		Text:        trimmed,
		Coherence:   coherence,
		Novelty:     nov,
		SubmittedAt: e.clock(),
	}
	e.records[e.promptIndex].Answers = append(e.records[e.promptIndex].Answers, answer)

	// Either failure mode alone ends the prompt: coherent-but-repetitive and
	// novel-but-incoherent both advance.
	if coherence <= e.cfg.CoherenceThreshold || nov <= e.cfg.NoveltyThreshold {
		out := e.advanceLocked()
		out.Recorded = true
		out.Answer = answer
		return out, nil
	}

	e.phase = PhaseAwaitingAnswer
	e.timeRemaining = e.cfg.TimeLimit
	return Outcome{Recorded: true, Answer: answer}, nil
}

// Tick consumes one elapsed second. The collaborator driving the session owns
// tick generation and passes the current unsubmitted draft along. Ticks are
// ignored outside AwaitingAnswer, which is what suspends the countdown while
// scoring is in flight: a time-up can never race a Submit. On the tick that
// reaches zero, a non-empty draft is submitted implicitly; an empty one
// advances with no answer recorded. The time-up fires only on that 1→0 edge:
// if the implicit submit fails, the countdown stays expired and later ticks
// are no-ops, so the same draft is never retried without the respondent
// acting.
func (e *Engine) Tick(ctx context.Context, draft string) (Outcome, error) {
	e.mu.Lock()
	if e.phase != PhaseAwaitingAnswer || e.timeRemaining == 0 {
		e.mu.Unlock()
		return Outcome{}, nil
	}
	e.timeRemaining--
	if e.timeRemaining > 0 {
		e.mu.Unlock()
		return Outcome{}, nil
	}
	if strings.TrimSpace(draft) == "" {
		out := e.advanceLocked()
		e.mu.Unlock()
		return out, nil
	}
	e.mu.Unlock()
	return e.Submit(ctx, draft)
}

// advanceLocked moves to the next prompt or completes the session. Caller
// holds the mutex.
func (e *Engine) advanceLocked() Outcome {
	if e.promptIndex+1 < len(e.prompts) {
		e.promptIndex++
		e.records = append(e.records, Record{Prompt: e.prompts[e.promptIndex]})
		e.timeRemaining = e.cfg.TimeLimit
		e.phase = PhaseAwaitingAnswer
		return Outcome{Advanced: true}
	}
	e.phase = PhaseCompleted
	return Outcome{Advanced: true, Completed: true}
}

// Records returns a deep copy of the per-prompt histories, for export.
func (e *Engine) Records() []Record {
	e.mu.Lock()
	defer e.mu.Unlock()
	return copyRecords(e.records)
}

func copyRecords(records []Record) []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		out[i] = Record{
			Prompt:  r.Prompt,
			Answers: append([]Answer(nil), r.Answers...),
		}
	}
	return out
}
