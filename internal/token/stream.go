package token

// Stream is a lazy, finite, single-pass token source. Next advances the
// stream; Peek inspects the upcoming token without consuming it. Once the
// underlying source is exhausted the stream returns EOF tokens forever.
// A Stream is not restartable; re-lex the input to read it again.
type Stream struct {
	next   func() (Token, bool)
	peeked *Token
	eof    Token
	done   bool
}

// NewStream wraps a producer function. The producer returns false once no
// further tokens exist.
func NewStream(next func() (Token, bool)) *Stream {
	return &Stream{next: next, eof: Token{Kind: EOF}}
}

// Next consumes and returns the next token.
func (s *Stream) Next() Token {
	if s.peeked != nil {
		t := *s.peeked
		s.peeked = nil
		return t
	}
	return s.pull()
}

// Peek returns the upcoming token without consuming it.
func (s *Stream) Peek() Token {
	if s.peeked == nil {
		t := s.pull()
		s.peeked = &t
	}
	return *s.peeked
}

func (s *Stream) pull() Token {
	if s.done {
		return s.eof
	}
	t, ok := s.next()
	if !ok {
		s.done = true
		s.eof = t
		if s.eof.Kind != EOF {
			s.eof = Token{Kind: EOF, Pos: t.Pos}
		}
		return s.eof
	}
	return t
}

// Collect drains the stream into a slice, excluding the EOF sentinel.
// Intended for tests and debugging output.
func (s *Stream) Collect() []Token {
	var out []Token
	for {
		t := s.Next()
		if t.Kind == EOF {
			return out
		}
		out = append(out, t)
	}
}
