package testutil

import (
	"time"

	"github.com/wellwish/wellwish/internal/core"
)

// ScriptedPrompter answers YesNo from a fixed decision script and records
// every draft it was shown. Running past the script answers no.
type ScriptedPrompter struct {
	Script []bool
	Shown  []string
	Labels []string
}

// YesNo pops the next scripted decision.
func (p *ScriptedPrompter) YesNo(text, label string) (bool, error) {
	p.Shown = append(p.Shown, text)
	p.Labels = append(p.Labels, label)

	if len(p.Shown) > len(p.Script) {
		return false, nil
	}
	return p.Script[len(p.Shown)-1], nil
}

// RecorderSpy captures greetings handed to the persistence collaborator.
type RecorderSpy struct {
	Saved []core.Greeting
	Err   error
}

// Create records the call and returns the configured error, if any.
func (r *RecorderSpy) Create(contactID, text string, status core.GreetingStatus) (*core.Greeting, error) {
	if r.Err != nil {
		return nil, r.Err
	}

	g := core.Greeting{
		ID:        "greeting-" + RandomID(),
		ContactID: contactID,
		Text:      text,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}
	r.Saved = append(r.Saved, g)
	return &g, nil
}

// FixedClock returns a clock function pinned to t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
