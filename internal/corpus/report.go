package corpus

import (
	"fmt"
	"io"
	"slices"
	"text/tabwriter"
)

// Report summarizes everything added to a Builder.
type Report struct {
	Split         string       `json:"split"`
	Normalization string       `json:"normalization"`
	Inputs        []InputStats `json:"inputs"`

	Lines      int     `json:"lines"`
	Tokens     int     `json:"tokens"`
	Distinct   int     `json:"distinct"`
	TokenBytes int64   `json:"token_bytes"`
	ArenaBytes int     `json:"arena_bytes"`
	DedupRatio float64 `json:"dedup_ratio"`
	Collisions uint64  `json:"collisions"`
	Checksum   string  `json:"checksum"`

	Sequences *SequenceReport `json:"sequences,omitempty"`
	Unique    []string        `json:"unique,omitempty"`
}

// SequenceReport summarizes the interned line sequences.
type SequenceReport struct {
	Lines         int `json:"lines"`
	Distinct      int `json:"distinct"`
	ArenaElements int `json:"arena_elements"`
}

// Report returns a snapshot of the counts. With unique set the distinct
// tokens are included in first-seen order.
func (b *Builder) Report(unique bool) Report {
	st := b.tokens.Stats()
	r := Report{
		Split:         b.opts.split.String(),
		Normalization: b.opts.normalization.String(),
		Inputs:        slices.Clone(b.inputs),
		Lines:         b.lineCount,
		Tokens:        b.tokenCount,
		Distinct:      st.Entries,
		TokenBytes:    b.tokenBytes,
		ArenaBytes:    st.Size,
		DedupRatio:    dedupRatio(b.tokenBytes, st.Size),
		Collisions:    st.Collisions,
		Checksum:      fmt.Sprintf("%08x", b.tokens.Checksum()),
	}
	if b.seqs != nil {
		r.Sequences = &SequenceReport{
			Lines:         b.seqCount,
			Distinct:      b.seqs.Len(),
			ArenaElements: b.seqs.Size(),
		}
	}
	if unique {
		r.Unique = slices.Collect(b.Unique())
	}
	return r
}

// dedupRatio is the fraction of token bytes the arena did not have to store.
func dedupRatio(tokenBytes int64, arenaBytes int) float64 {
	if tokenBytes == 0 {
		return 0
	}
	return 1 - float64(arenaBytes)/float64(tokenBytes)
}

// WriteText renders r as an aligned plain-text table.
func (r Report) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "INPUT\tBYTES\tLINES\tTOKENS\tNEW\n")
	for _, in := range r.Inputs {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\n", in.Name, in.Bytes, in.Lines, in.Tokens, in.NewTokens)
	}
	fmt.Fprintf(tw, "\n")
	fmt.Fprintf(tw, "split\t%s\n", r.Split)
	fmt.Fprintf(tw, "normalization\t%s\n", r.Normalization)
	fmt.Fprintf(tw, "tokens\t%d\n", r.Tokens)
	fmt.Fprintf(tw, "distinct\t%d\n", r.Distinct)
	fmt.Fprintf(tw, "token bytes\t%d\n", r.TokenBytes)
	fmt.Fprintf(tw, "arena bytes\t%d\n", r.ArenaBytes)
	fmt.Fprintf(tw, "dedup ratio\t%.4f\n", r.DedupRatio)
	fmt.Fprintf(tw, "collisions\t%d\n", r.Collisions)
	fmt.Fprintf(tw, "checksum\t%s\n", r.Checksum)
	if s := r.Sequences; s != nil {
		fmt.Fprintf(tw, "sequences\t%d (%d distinct, %d arena elements)\n", s.Lines, s.Distinct, s.ArenaElements)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(r.Unique) > 0 {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		for _, tok := range r.Unique {
			if _, err := fmt.Fprintln(w, tok); err != nil {
				return err
			}
		}
	}
	return nil
}
