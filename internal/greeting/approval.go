package greeting

import (
	"fmt"

	"github.com/wellwish/wellwish/internal/core"
	"github.com/wellwish/wellwish/internal/logging"
)

// DefaultMaxAttempts bounds how many drafts the loop composes before
// giving up on a contact.
const DefaultMaxAttempts = 5

// Prompter is the blocking human-feedback collaborator. YesNo shows a
// draft under a context label and waits indefinitely for a decision;
// there is deliberately no timeout.
type Prompter interface {
	YesNo(question, label string) (bool, error)
}

// Recorder persists an accepted greeting. Satisfied by storage.GreetingStore.
type Recorder interface {
	Create(contactID, text string, status core.GreetingStatus) (*core.Greeting, error)
}

// ApprovalResult reports how an approval run ended. Exhausting the attempt
// budget is a normal outcome, not an error: Accepted is false and Text is
// empty.
type ApprovalResult struct {
	Accepted bool
	Text     string
	Attempts int
}

// ApprovalLoop drives the composer against human feedback until a draft
// is accepted or the attempt budget runs out. Accepted drafts are
// persisted with status approved; rejected drafts never reach storage.
type ApprovalLoop struct {
	analyzer    Analyzer
	composer    *Composer
	prompter    Prompter
	recorder    Recorder
	maxAttempts int
}

// Analyzer produces the analysis a composition is seeded with. Satisfied
// by analysis.Analyzer.
type Analyzer interface {
	Analyze(messages []core.ChatMessage) core.AnalysisResult
}

// NewApprovalLoop wires the loop's collaborators. maxAttempts <= 0 selects
// the default budget.
func NewApprovalLoop(analyzer Analyzer, composer *Composer, prompter Prompter, recorder Recorder, maxAttempts int) *ApprovalLoop {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &ApprovalLoop{
		analyzer:    analyzer,
		composer:    composer,
		prompter:    prompter,
		recorder:    recorder,
		maxAttempts: maxAttempts,
	}
}

// Run composes drafts for the contact until one is accepted or attempts
// are exhausted. Each attempt is a fresh template draw, so the same
// contact can see different drafts. The analysis is computed once; it is
// deterministic for a fixed message batch and clock.
func (l *ApprovalLoop) Run(contact *core.Contact, messages []core.ChatMessage) (ApprovalResult, error) {
	result := ApprovalResult{}
	a := l.analyzer.Analyze(messages)

	for result.Attempts < l.maxAttempts {
		text, err := l.composer.Compose(contact, a)
		if err != nil {
			return result, fmt.Errorf("compose greeting for %s: %w", contact.Name, err)
		}
		result.Attempts++

		accepted, err := l.prompter.YesNo(text, contact.Name)
		if err != nil {
			return result, fmt.Errorf("read approval decision: %w", err)
		}

		if accepted {
			if _, err := l.recorder.Create(contact.ID, text, core.GreetingApproved); err != nil {
				return result, fmt.Errorf("save approved greeting: %w", err)
			}
			result.Accepted = true
			result.Text = text
			logging.Debug("greeting accepted for %s after %d attempt(s)", contact.Name, result.Attempts)
			return result, nil
		}
	}

	logging.Debug("greeting attempts exhausted for %s", contact.Name)
	return result, nil
}
