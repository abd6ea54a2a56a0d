// Package combinator provides backtracking parser combinators over a slice of DOT tokens.
//
// A [Parser] either matches a prefix of its input and returns the result together with the
// remaining tokens, or it does not match. Not matching is not an error. It is the signal that
// lets [Alt] try the next alternative and lets [Optional] and [Many] stop. A parser that does not
// match never consumes input, so callers can always retry on the same slice.
package combinator

import (
	"github.com/teleivo/dotparse/token"
)

// Parser parses a prefix of in. It returns the parsed value, the tokens following the prefix and
// true on a match. On no match it returns false and the remaining tokens are meaningless.
type Parser[T any] func(in []token.Token) (T, []token.Token, bool)

// Maybe holds the result of an [Optional] parser.
type Maybe[T any] struct {
	Value T
	Valid bool // Valid is true if the optional parser matched.
}

// Pair holds the results of [Seq2].
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple holds the results of [Seq3].
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Token matches a single token of one of the given kinds.
func Token(kinds token.Kind) Parser[token.Token] {
	return func(in []token.Token) (token.Token, []token.Token, bool) {
		if len(in) == 0 || in[0].Kind&kinds == 0 {
			return token.Token{}, in, false
		}
		return in[0], in[1:], true
	}
}

// Map transforms the result of p using fn.
func Map[T, U any](p Parser[T], fn func(T) U) Parser[U] {
	return func(in []token.Token) (U, []token.Token, bool) {
		v, rest, ok := p(in)
		if !ok {
			var zero U
			return zero, in, false
		}
		return fn(v), rest, true
	}
}

// MapOK transforms the result of p using fn. The combined parser does not match if fn rejects
// the result by returning false.
func MapOK[T, U any](p Parser[T], fn func(T) (U, bool)) Parser[U] {
	return func(in []token.Token) (U, []token.Token, bool) {
		var zero U
		v, rest, ok := p(in)
		if !ok {
			return zero, in, false
		}
		u, ok := fn(v)
		if !ok {
			return zero, in, false
		}
		return u, rest, true
	}
}

// Seq2 matches a followed by b. Both must match.
func Seq2[A, B any](a Parser[A], b Parser[B]) Parser[Pair[A, B]] {
	return func(in []token.Token) (Pair[A, B], []token.Token, bool) {
		var result Pair[A, B]
		var ok bool
		rest := in
		if result.First, rest, ok = a(rest); !ok {
			return Pair[A, B]{}, in, false
		}
		if result.Second, rest, ok = b(rest); !ok {
			return Pair[A, B]{}, in, false
		}
		return result, rest, true
	}
}

// Seq3 matches a, b and c in order. All must match.
func Seq3[A, B, C any](a Parser[A], b Parser[B], c Parser[C]) Parser[Triple[A, B, C]] {
	return func(in []token.Token) (Triple[A, B, C], []token.Token, bool) {
		var result Triple[A, B, C]
		var ok bool
		rest := in
		if result.First, rest, ok = a(rest); !ok {
			return Triple[A, B, C]{}, in, false
		}
		if result.Second, rest, ok = b(rest); !ok {
			return Triple[A, B, C]{}, in, false
		}
		if result.Third, rest, ok = c(rest); !ok {
			return Triple[A, B, C]{}, in, false
		}
		return result, rest, true
	}
}

// Preceded matches prefix followed by p and keeps the result of p.
func Preceded[P, T any](prefix Parser[P], p Parser[T]) Parser[T] {
	return Map(Seq2(prefix, p), func(r Pair[P, T]) T { return r.Second })
}

// Terminated matches p followed by suffix and keeps the result of p.
func Terminated[T, S any](p Parser[T], suffix Parser[S]) Parser[T] {
	return Map(Seq2(p, suffix), func(r Pair[T, S]) T { return r.First })
}

// Delimited matches open, p and closing and keeps the result of p.
func Delimited[O, T, C any](open Parser[O], p Parser[T], closing Parser[C]) Parser[T] {
	return Map(Seq3(open, p, closing), func(r Triple[O, T, C]) T { return r.Second })
}

// Optional matches p zero or one time. It always matches.
func Optional[T any](p Parser[T]) Parser[Maybe[T]] {
	return func(in []token.Token) (Maybe[T], []token.Token, bool) {
		v, rest, ok := p(in)
		if !ok {
			return Maybe[T]{}, in, true
		}
		return Maybe[T]{Value: v, Valid: true}, rest, true
	}
}

// Many matches p zero or more times. It always matches. Repetition stops as soon as p does not
// match or matches without consuming any token.
func Many[T any](p Parser[T]) Parser[[]T] {
	return func(in []token.Token) ([]T, []token.Token, bool) {
		var result []T
		rest := in
		for {
			v, next, ok := p(rest)
			if !ok || len(next) == len(rest) {
				return result, rest, true
			}
			result = append(result, v)
			rest = next
		}
	}
}

// Many1 matches p one or more times.
func Many1[T any](p Parser[T]) Parser[[]T] {
	many := Many(p)
	return func(in []token.Token) ([]T, []token.Token, bool) {
		result, rest, _ := many(in)
		if len(result) == 0 {
			return nil, in, false
		}
		return result, rest, true
	}
}

// SepBy matches zero or more items. Every item may be followed by a separator, which is consumed
// and dropped. The absence of a separator does not end the repetition if another item follows.
func SepBy[T, S any](item Parser[T], sep Parser[S]) Parser[[]T] {
	return Many(Terminated(item, Optional(sep)))
}

// Alt tries the parsers in order and returns the result of the first one that matches. The order
// thus defines the priority of ambiguous alternatives.
func Alt[T any](ps ...Parser[T]) Parser[T] {
	return func(in []token.Token) (T, []token.Token, bool) {
		for _, p := range ps {
			if v, rest, ok := p(in); ok {
				return v, rest, true
			}
		}
		var zero T
		return zero, in, false
	}
}

// NotFollowedBy matches p only if p is not directly followed by a match of next. The tokens
// matched by next are not consumed.
func NotFollowedBy[T, N any](p Parser[T], next Parser[N]) Parser[T] {
	return func(in []token.Token) (T, []token.Token, bool) {
		v, rest, ok := p(in)
		if !ok {
			return v, in, false
		}
		if _, _, ok := next(rest); ok {
			var zero T
			return zero, in, false
		}
		return v, rest, true
	}
}

// Lazy defers the construction of a parser to its first use. It allows recursive productions to
// refer to parsers that are not yet constructed.
func Lazy[T any](fn func() Parser[T]) Parser[T] {
	return func(in []token.Token) (T, []token.Token, bool) {
		return fn()(in)
	}
}

type memoKey struct {
	first *token.Token
	n     int
}

type memoEntry[T any] struct {
	v    T
	rest []token.Token
	ok   bool
}

// Memo caches the outcome of p per input position. Inputs are identified by their first token
// and length, so all inputs must be subslices of the same token slice. Alternatives that retry a
// large production at the same position then parse it only once. The returned parser is not safe
// for concurrent use.
func Memo[T any](p Parser[T]) Parser[T] {
	cache := make(map[memoKey]memoEntry[T])
	return func(in []token.Token) (T, []token.Token, bool) {
		var key memoKey
		if len(in) > 0 {
			key = memoKey{first: &in[0], n: len(in)}
		}
		if e, ok := cache[key]; ok {
			return e.v, e.rest, e.ok
		}
		v, rest, ok := p(in)
		cache[key] = memoEntry[T]{v: v, rest: rest, ok: ok}
		return v, rest, ok
	}
}
