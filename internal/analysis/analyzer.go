// Package analysis extracts conversation signals from chat history.
//
// The analyzer is deterministic given a fixed clock: regex keyword
// extraction, urgency-marker flagging, and a rolling recency window.
// Nothing here is persisted; results are recomputed per invocation.
package analysis

import (
	"regexp"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/wellwish/wellwish/internal/core"
)

// DefaultRecencyWindow is how far back a message still counts as recent.
const DefaultRecencyWindow = 30 * 24 * time.Hour

// keywordPatterns maps topic regexes to a category label. Every literal
// match is collected; the category only groups the table for readability.
var keywordPatterns = []struct {
	pattern  *regexp.Regexp
	category string
}{
	{regexp.MustCompile("(工作|项目|任务|work|project)"), "work"},
	{regexp.MustCompile("(健康|身体|生病|health|sick)"), "health"},
	{regexp.MustCompile("(家庭|孩子|父母|family|kids)"), "family"},
	{regexp.MustCompile("(学习|考试|毕业|study|exam)"), "study"},
	{regexp.MustCompile("(生日|节日|庆祝|birthday|festival)"), "festival"},
	{regexp.MustCompile("(帮助|支持|感谢|help|thanks)"), "emotion"},
	{regexp.MustCompile("(计划|目标|未来|plan|goal)"), "planning"},
}

// urgencyMarkers flag a message as an important matter.
var urgencyMarkers = []string{"重要", "记得", "务必", "important", "remember", "must"}

// Analyzer extracts keywords, important matters, and recent activity from
// a batch of chat messages.
type Analyzer struct {
	now    func() time.Time
	window time.Duration
}

// Option configures an Analyzer
type Option func(*Analyzer)

// WithClock overrides the wall clock, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) { a.now = now }
}

// WithRecencyWindow overrides the recent-activity window.
func WithRecencyWindow(d time.Duration) Option {
	return func(a *Analyzer) { a.window = d }
}

// New creates an analyzer with the default clock and 30-day window
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		now:    time.Now,
		window: DefaultRecencyWindow,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze scans messages for topic keywords, urgent matters, and recent
// activity. Empty input yields an empty result, not an error. A single
// message may contribute to all three collections.
func (a *Analyzer) Analyze(messages []core.ChatMessage) core.AnalysisResult {
	result := core.AnalysisResult{}
	if len(messages) == 0 {
		return result
	}

	cutoff := a.now().Add(-a.window)

	var keywords []string
	for _, msg := range messages {
		for _, entry := range keywordPatterns {
			keywords = append(keywords, entry.pattern.FindAllString(msg.Content, -1)...)
		}

		if containsAny(msg.Content, urgencyMarkers) {
			result.ImportantMatters = append(result.ImportantMatters, msg.Content)
		}

		if msg.Timestamp.After(cutoff) {
			result.RecentActivities = append(result.RecentActivities, msg.Content)
		}
	}

	// Dedupe by exact matched substring, first occurrence wins
	result.Keywords = lo.Uniq(keywords)

	return result
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
