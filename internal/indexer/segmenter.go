package indexer

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"transcript-search/internal/storage"
)

// timestampLayout matches "HH:MM:SS" with an optional fractional part.
const timestampLayout = "15:04:05"

var (
	// ErrNoSubtitles is returned when a video has no subtitle lines.
	ErrNoSubtitles = errors.New("no subtitles found")
	// ErrTooShort is returned when a video ends before the first interval does.
	ErrTooShort = errors.New("video too short to split with the given interval")
	// ErrInvalidTimestamp is returned when a subtitle timestamp cannot be parsed.
	ErrInvalidTimestamp = errors.New("invalid subtitle timestamp")
	// ErrInvalidInterval is returned when the interval is not positive.
	ErrInvalidInterval = errors.New("interval must be greater than 0")
)

// Segmenter groups subtitle lines into fixed-width time buckets.
type Segmenter struct {
	interval int // seconds
}

// NewSegmenter creates a segmenter with the given interval in seconds.
func NewSegmenter(interval int) *Segmenter {
	return &Segmenter{interval: interval}
}

// Interval returns the bucket width in seconds.
func (s *Segmenter) Interval() int {
	return s.interval
}

type timedLine struct {
	start   string
	seconds float64
	text    string
}

// Split buckets lines by floor(start/interval)*interval and returns one
// segment per bucket in ascending bucket order. A segment's StartTime is the
// original timestamp of the first line in its bucket. Segments with empty
// text are kept; callers decide whether to drop them.
func (s *Segmenter) Split(lines []storage.SubtitleLine) ([]Segment, error) {
	if s.interval <= 0 {
		return nil, ErrInvalidInterval
	}
	if len(lines) == 0 {
		return nil, ErrNoSubtitles
	}

	total, err := ParseTimestamp(lines[len(lines)-1].Stop)
	if err != nil {
		return nil, err
	}
	if total < float64(s.interval) {
		return nil, ErrTooShort
	}

	timed := make([]timedLine, len(lines))
	for i, line := range lines {
		secs, err := ParseTimestamp(line.Start)
		if err != nil {
			return nil, err
		}
		timed[i] = timedLine{start: line.Start, seconds: secs, text: line.Text}
	}

	// Input should already be ordered by start time; the stable sort keeps
	// first-seen order for equal starts and makes bucket order explicit.
	slices.SortStableFunc(timed, func(a, b timedLine) int {
		return cmp.Compare(a.seconds, b.seconds)
	})

	var segments []Segment
	var texts []string
	currentKey := -1
	currentStart := ""

	flush := func() {
		if currentKey < 0 {
			return
		}
		segments = append(segments, Segment{
			StartTime: currentStart,
			Text:      strings.TrimSpace(strings.Join(texts, " ")),
		})
	}

	for _, line := range timed {
		key := s.bucketKey(line.seconds)
		if key != currentKey {
			flush()
			currentKey = key
			currentStart = line.start
			texts = texts[:0]
		}
		texts = append(texts, line.text)
	}
	flush()

	return segments, nil
}

// bucketKey returns the start second of the bucket containing secs.
func (s *Segmenter) bucketKey(secs float64) int {
	return int(math.Floor(secs/float64(s.interval))) * s.interval
}

// ParseTimestamp converts "HH:MM:SS[.ffffff]" to seconds since midnight,
// keeping the fractional part.
func ParseTimestamp(ts string) (float64, error) {
	t, err := time.Parse(timestampLayout, strings.TrimSpace(ts))
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrInvalidTimestamp, ts, err)
	}

	return float64(t.Hour()*3600+t.Minute()*60+t.Second()) +
		float64(t.Nanosecond())/float64(time.Second), nil
}
