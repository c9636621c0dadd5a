package skeeball

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// MinPlays is the smallest play count a session accepts. Zero is allowed
	// and produces an empty session.
	MinPlays = 0
	// MaxPlays is the largest play count a session accepts.
	MaxPlays = 10
)

// Message keys double as the American English text.
const (
	MessagePlayLanded  = "Rolling ball #%d. Landed in %d"
	MessageReportTotal = "Total: %d"
)

const tracerName = "github.com/louisbranch/skeeball/internal/core/skeeball"

var (
	// ErrInvalidPlayCount indicates a play count outside [MinPlays, MaxPlays].
	ErrInvalidPlayCount = errors.New("play count must be between 0 and 10")
	// ErrMissingRandomSource indicates a session was started without a random source.
	ErrMissingRandomSource = errors.New("random source is required")
	// ErrMissingOutput indicates a session or report has nowhere to write.
	ErrMissingOutput = errors.New("output is required")
)

// Play is the outcome of one ball.
type Play struct {
	Number int
	Draw   int
	Zone   Zone
	Score  int
}

// Session is the ordered list of plays from one run.
type Session struct {
	Plays []Play
}

// Scores returns the score of every play in play order.
func (s Session) Scores() []int {
	scores := make([]int, len(s.Plays))
	for i, play := range s.Plays {
		scores[i] = play.Score
	}
	return scores
}

// Total returns the sum of all play scores.
func (s Session) Total() int {
	total := 0
	for _, play := range s.Plays {
		total += play.Score
	}
	return total
}

// ValidPlayCount reports whether plays is an accepted session length.
func ValidPlayCount(plays int) bool {
	return plays >= MinPlays && plays <= MaxPlays
}

// Runner plays sessions and reports their results.
type Runner struct {
	// Rand is shared by every play of every session the runner starts.
	Rand *rand.Rand
	// Out receives the per-play lines and the report.
	Out io.Writer
	// Printer formats console messages. Nil uses American English.
	Printer *message.Printer
}

// RunSession plays a session of the given length on rng, announcing each
// play on out as soon as it lands.
func RunSession(ctx context.Context, rng *rand.Rand, plays int, out io.Writer) (Session, error) {
	return Runner{Rand: rng, Out: out}.Run(ctx, plays)
}

// Run plays a session of the given length.
//
// Plays are drawn independently in order; play k is written as
// "Rolling ball #k. Landed in <score>" before play k+1 is drawn. Run stops
// early if ctx is cancelled between plays.
func (r Runner) Run(ctx context.Context, plays int) (Session, error) {
	if !ValidPlayCount(plays) {
		return Session{}, ErrInvalidPlayCount
	}
	if r.Rand == nil {
		return Session{}, ErrMissingRandomSource
	}
	if r.Out == nil {
		return Session{}, ErrMissingOutput
	}
	if ctx == nil {
		ctx = context.Background()
	}

	ctx, span := otel.Tracer(tracerName).Start(
		ctx, "skeeball.session",
		trace.WithAttributes(attribute.Int("plays", plays)),
	)
	defer span.End()

	printer := r.printer()
	session := Session{Plays: make([]Play, 0, plays)}
	for i := 1; i <= plays; i++ {
		if err := ctx.Err(); err != nil {
			span.SetStatus(codes.Error, "session cancelled")
			return session, err
		}

		play, err := playBall(r.Rand, i)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "play failed")
			return session, err
		}
		session.Plays = append(session.Plays, play)
		span.AddEvent("play", trace.WithAttributes(
			attribute.Int("number", play.Number),
			attribute.Int("draw", play.Draw),
			attribute.Int("zone", int(play.Zone)),
			attribute.Int("score", play.Score),
		))

		if _, err := fmt.Fprintln(r.Out, printer.Sprintf(MessagePlayLanded, play.Number, play.Score)); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "write play")
			return session, fmt.Errorf("write play %d: %w", play.Number, err)
		}
	}

	span.SetAttributes(attribute.Int("total", session.Total()))
	return session, nil
}

func (r Runner) printer() *message.Printer {
	if r.Printer != nil {
		return r.Printer
	}
	return message.NewPrinter(language.AmericanEnglish)
}

// playBall draws once and resolves the zone and score for play number n.
func playBall(rng *rand.Rand, n int) (Play, error) {
	draw := Draw(rng)
	zone, err := SelectZone(draw)
	if err != nil {
		return Play{}, fmt.Errorf("select zone for play %d: %w", n, err)
	}
	return Play{
		Number: n,
		Draw:   draw,
		Zone:   zone,
		Score:  zone.Score(),
	}, nil
}
