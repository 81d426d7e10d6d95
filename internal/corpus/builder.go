package corpus

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/hupe1980/rangeintern"
)

// InputStats describes one input added to a Builder.
type InputStats struct {
	Name      string `json:"name"`
	Bytes     int64  `json:"bytes"`
	Lines     int    `json:"lines"`
	Tokens    int    `json:"tokens"`
	NewTokens int    `json:"new_tokens"`
}

// Builder interns the tokens of successive inputs into one arena.
type Builder struct {
	opts   options
	tokens *rangeintern.StrInterner
	seqs   *rangeintern.Interner[uint32]
	inputs []InputStats

	tokenCount int
	tokenBytes int64
	lineCount  int
	seqCount   int
}

// NewBuilder returns an empty Builder.
func NewBuilder(opts ...Option) *Builder {
	o := options{maxLine: defaultMaxLine}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = rangeintern.NoopLogger()
	}

	internOpts := append([]rangeintern.Option{rangeintern.WithLogger(o.logger)}, o.internOpts...)
	b := &Builder{
		opts:   o,
		tokens: rangeintern.NewStrInterner(internOpts...),
	}
	if o.sequences && o.split == SplitWords {
		b.seqs = rangeintern.NewInterner[uint32](internOpts...)
	}
	return b
}

// Add reads r to the end and interns its tokens. name labels the input in
// the report. On error the tokens read so far stay interned, and the input
// is not recorded.
func (b *Builder) Add(ctx context.Context, name string, r io.Reader) (InputStats, error) {
	st, err := b.add(ctx, name, r)
	b.opts.logger.LogInput(ctx, name, st.Tokens, err)
	if err != nil {
		return st, err
	}
	b.inputs = append(b.inputs, st)
	return st, nil
}

func (b *Builder) add(ctx context.Context, name string, r io.Reader) (InputStats, error) {
	st := InputStats{Name: name}
	cr := &countingReader{r: r}

	sc := bufio.NewScanner(cr)
	sc.Buffer(make([]byte, 0, min(64*1024, b.opts.maxLine)), b.opts.maxLine)

	form, normalize := b.opts.normalization.form()
	var seq []uint32

	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return st, err
		}

		line := strings.TrimSuffix(sc.Text(), "\r")
		if normalize {
			line = form.String(line)
		}
		st.Lines++

		if b.opts.split == SplitLines {
			b.intern(&st, line)
			continue
		}

		seq = seq[:0]
		for _, word := range strings.Fields(line) {
			r := b.intern(&st, word)
			seq = append(seq, r.Start())
		}
		if b.seqs != nil {
			b.seqs.Intern(seq)
			b.seqCount++
		}
	}
	st.Bytes = cr.n
	if err := sc.Err(); err != nil {
		return st, fmt.Errorf("corpus: read %s: %w", name, err)
	}

	b.lineCount += st.Lines
	return st, nil
}

func (b *Builder) intern(st *InputStats, tok string) rangeintern.StrRange {
	before := b.tokens.Len()
	r := b.tokens.Intern(tok)
	if b.tokens.Len() > before {
		st.NewTokens++
	}
	st.Tokens++
	b.tokenCount++
	b.tokenBytes += int64(len(tok))
	return r
}

// Tokens returns the token arena.
func (b *Builder) Tokens() *rangeintern.StrInterner { return b.tokens }

// Unique yields every distinct token once, in first-seen order.
func (b *Builder) Unique() iter.Seq[string] {
	return func(yield func(string) bool) {
		for r := range b.tokens.Ranges() {
			if !yield(b.tokens.Lookup(r)) {
				return
			}
		}
	}
}

// LogStats logs the token arena's statistics.
func (b *Builder) LogStats(ctx context.Context) {
	b.opts.logger.WithName("tokens").LogStats(ctx, b.tokens.Stats())
	if b.seqs != nil {
		b.opts.logger.WithName("sequences").LogStats(ctx, b.seqs.Stats())
	}
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
