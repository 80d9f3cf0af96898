// Package dispatcher routes free-text questions about a repository to the
// file-system tools and turns the outcome into an Answer.
//
// Routing is an ordered rule table (list, then read, then search, then a
// fixed help message); see Classify. Answer never returns an error and never
// panics: every failure, expected or not, becomes a failed Answer whose text
// explains what went wrong.
package dispatcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/harrison/repoqa/internal/models"
	"github.com/harrison/repoqa/internal/tools"
)

// Logger receives dispatch events. Implementations must be safe for
// concurrent use when one Dispatcher serves concurrent callers.
type Logger interface {
	LogDebug(message string)
	LogAnswer(answer models.Answer)
}

type nopLogger struct{}

func (nopLogger) LogDebug(string)         {}
func (nopLogger) LogAnswer(models.Answer) {}

// Dispatcher answers questions. It holds configuration only, so one value can
// serve concurrent callers.
type Dispatcher struct {
	logger  Logger
	search  tools.SearchOptions
	timeout time.Duration
	newID   func() string
}

// Option configures a Dispatcher
type Option func(*Dispatcher)

// WithLogger sets the event logger. A nil logger discards events.
func WithLogger(logger Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithSearchOptions narrows the files search questions visit
func WithSearchOptions(opts tools.SearchOptions) Option {
	return func(d *Dispatcher) {
		d.search = opts
	}
}

// WithTimeout bounds each Answer call (0 = no deadline)
func WithTimeout(timeout time.Duration) Option {
	return func(d *Dispatcher) {
		d.timeout = timeout
	}
}

// New creates a Dispatcher
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		logger: nopLogger{},
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

var defaultDispatcher = New()

// Answer answers question about the repository at repoPath with default
// settings and returns the response text.
func Answer(repoPath, question string) string {
	return defaultDispatcher.Answer(context.Background(), repoPath, question).Text
}

// Answer classifies question and runs the matching tool against repoPath
func (d *Dispatcher) Answer(ctx context.Context, repoPath, question string) (answer models.Answer) {
	start := time.Now()
	req := Classify(question)
	answer = models.Answer{Intent: req.Intent, Argument: req.Argument}

	defer func() {
		if r := recover(); r != nil {
			answer = failProcessing(answer, fmt.Errorf("%v", r))
		}
		answer.Duration = time.Since(start)
		d.logger.LogAnswer(answer)
	}()

	answer.RequestID = d.newID()

	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	d.logger.LogDebug(fmt.Sprintf("request %s: %q classified as %s (repo %q)", answer.RequestID, question, req.Intent, repoPath))

	switch req.Intent {
	case models.IntentList:
		answer = d.answerList(answer, repoPath)
	case models.IntentRead:
		answer = d.answerRead(answer, repoPath)
	case models.IntentSearch:
		answer = d.answerSearch(ctx, answer, repoPath)
	default:
		answer = withText(answer, models.StatusAnswered, HelpMessage)
	}

	return answer
}

func (d *Dispatcher) answerList(answer models.Answer, repoPath string) models.Answer {
	names, err := tools.List(repoPath)
	if err != nil {
		return failTool(answer, err)
	}

	status := models.StatusAnswered
	if len(names) == 0 {
		status = models.StatusEmpty
	}
	return withBody(answer, status, listHeading, strings.Join(names, "\n"))
}

func (d *Dispatcher) answerRead(answer models.Answer, repoPath string) models.Answer {
	filename := answer.Argument
	if filename == "" {
		return withText(answer, models.StatusPrompt, FilenamePrompt)
	}

	path := resolvePath(repoPath, filename)
	d.logger.LogDebug(fmt.Sprintf("request %s: reading %s", answer.RequestID, path))

	contents := tools.Read([]string{path})
	if len(contents) == 0 {
		return withText(answer, models.StatusEmpty, fmt.Sprintf(emptyFileFmt, filename))
	}

	content := contents[0]
	if content.Err != nil {
		return failTool(answer, content.Err)
	}

	status := models.StatusAnswered
	if content.Content == "" {
		status = models.StatusEmpty
	}
	return withBody(answer, status, fmt.Sprintf(contentHeadingFmt, filename), content.Content)
}

func (d *Dispatcher) answerSearch(ctx context.Context, answer models.Answer, repoPath string) models.Answer {
	term := answer.Argument
	if term == "" {
		return withText(answer, models.StatusPrompt, SearchTermPrompt)
	}

	result, err := tools.Search(ctx, term, repoPath, d.search)
	if err != nil {
		return failTool(answer, err)
	}
	if len(result.Skipped) > 0 {
		d.logger.LogDebug(fmt.Sprintf("request %s: skipped %d unreadable entries", answer.RequestID, len(result.Skipped)))
	}

	if len(result.Matches) == 0 {
		return withText(answer, models.StatusEmpty, fmt.Sprintf(noResultsFmt, term))
	}
	return withBody(answer, models.StatusAnswered, fmt.Sprintf(searchHeadingFmt, term), result.String())
}

// resolvePath reads relative filenames from inside the repository
func resolvePath(repoPath, filename string) string {
	if filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(repoPath, filename)
}

func withText(answer models.Answer, status, text string) models.Answer {
	answer.Status = status
	answer.Heading = text
	answer.Body = ""
	answer.Text = text
	answer.Err = nil
	return answer
}

func withBody(answer models.Answer, status, heading, body string) models.Answer {
	answer.Status = status
	answer.Heading = heading
	answer.Body = body
	answer.Text = heading + "\n" + body
	answer.Err = nil
	return answer
}

// failTool surfaces expected tool failures verbatim; anything else is an
// unexpected processing failure.
func failTool(answer models.Answer, err error) models.Answer {
	kind := tools.KindOf(err)
	switch kind {
	case models.ErrorKindPath, models.ErrorKindNotFound, models.ErrorKindRead, models.ErrorKindTimeout:
		answer = withText(answer, models.StatusFailed, err.Error())
		answer.Err = &models.AnswerError{Kind: kind, Message: err.Error()}
		return answer
	}

	answer = failProcessing(answer, err)
	answer.Err.Kind = kind
	return answer
}

func failProcessing(answer models.Answer, err error) models.Answer {
	msg := fmt.Sprintf(processingFailedFmt, processingKind(answer.Intent), err)
	answer = withText(answer, models.StatusFailed, msg)
	answer.Err = &models.AnswerError{Kind: models.ErrorKindInternal, Message: msg}
	return answer
}
