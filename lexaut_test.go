package lexaut

import "testing"

func TestSpan(t *testing.T) {
	s := Span{3, 7}
	if s.From() != 3 || s.To() != 7 || s.Len() != 4 {
		t.Errorf("unexpected span accessors for %v", s)
	}
	if s.IsNull() || !(Span{}).IsNull() {
		t.Errorf("expected only the zero span to be null")
	}
	if e := s.Extend(Span{1, 5}); e != (Span{1, 7}) {
		t.Errorf("expected extended span to be (1…7), is %v", e)
	}
	if s.String() != "(3…7)" {
		t.Errorf("expected string (3…7), is %s", s.String())
	}
}
