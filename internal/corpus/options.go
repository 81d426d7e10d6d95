package corpus

import (
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/hupe1980/rangeintern"
)

// Split selects how an input is cut into tokens.
type Split int

const (
	// SplitLines makes every line one token.
	SplitLines Split = iota
	// SplitWords makes every whitespace-separated word one token.
	SplitWords
)

func (s Split) String() string {
	if s == SplitWords {
		return "words"
	}
	return "lines"
}

// ParseSplit parses "lines" or "words".
func ParseSplit(s string) (Split, error) {
	switch s {
	case "lines":
		return SplitLines, nil
	case "words":
		return SplitWords, nil
	default:
		return 0, fmt.Errorf("corpus: unknown split %q (want lines or words)", s)
	}
}

// Normalization selects the Unicode normal form applied before tokenizing.
type Normalization int

const (
	NormNone Normalization = iota
	NormNFC
	NormNFKC
)

func (n Normalization) String() string {
	switch n {
	case NormNFC:
		return "nfc"
	case NormNFKC:
		return "nfkc"
	default:
		return "none"
	}
}

// ParseNormalization parses "none", "nfc" or "nfkc".
func ParseNormalization(s string) (Normalization, error) {
	switch s {
	case "none", "":
		return NormNone, nil
	case "nfc":
		return NormNFC, nil
	case "nfkc":
		return NormNFKC, nil
	default:
		return 0, fmt.Errorf("corpus: unknown normalization %q (want none, nfc or nfkc)", s)
	}
}

func (n Normalization) form() (norm.Form, bool) {
	switch n {
	case NormNFC:
		return norm.NFC, true
	case NormNFKC:
		return norm.NFKC, true
	default:
		return 0, false
	}
}

const defaultMaxLine = 16 << 20

type options struct {
	split         Split
	normalization Normalization
	sequences     bool
	maxLine       int
	logger        *rangeintern.Logger
	internOpts    []rangeintern.Option
}

// Option configures a Builder.
type Option func(*options)

// WithSplit sets the tokenization. Default SplitLines.
func WithSplit(s Split) Option {
	return func(o *options) { o.split = s }
}

// WithNormalization sets the Unicode normal form. Default NormNone.
func WithNormalization(n Normalization) Option {
	return func(o *options) { o.normalization = n }
}

// WithSequences enables interning each line's token sequence. It only has an
// effect with SplitWords, where a line holds more than one token.
func WithSequences(enabled bool) Option {
	return func(o *options) { o.sequences = enabled }
}

// WithMaxLine sets the longest accepted line in bytes. Non-positive values
// are ignored.
func WithMaxLine(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxLine = n
		}
	}
}

// WithLogger sets the logger for per-input events. It is also handed to the
// underlying arenas.
func WithLogger(l *rangeintern.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithInternOptions passes options through to both arenas.
func WithInternOptions(opts ...rangeintern.Option) Option {
	return func(o *options) { o.internOpts = append(o.internOpts, opts...) }
}
