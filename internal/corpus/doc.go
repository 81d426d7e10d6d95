// Package corpus tokenizes text inputs and interns the tokens into a shared
// rangeintern.StrInterner, producing deduplication reports.
//
// A Builder is fed inputs one at a time with Add. Tokens are lines or
// whitespace-separated words, optionally Unicode-normalized first. With
// sequences enabled each line's word sequence is interned as well, as the
// arena offsets of its tokens, so repeated lines are counted once.
//
// A Builder is not safe for concurrent use.
package corpus
