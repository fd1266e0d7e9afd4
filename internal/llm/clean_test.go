package llm

import "testing"

func TestStripReasoning_SingleSpan(t *testing.T) {
	got := StripReasoning("<think>working it out</think>All vitals look fine.")
	if got != "All vitals look fine." {
		t.Fatalf("got=%q", got)
	}
}

func TestStripReasoning_MultilineSpan(t *testing.T) {
	got := StripReasoning("<think>line one\nline two\n</think>answer")
	if got != "answer" {
		t.Fatalf("got=%q", got)
	}
}

func TestStripReasoning_MultipleSpans(t *testing.T) {
	got := StripReasoning("a<think>x</think>b<think>y</think>c")
	if got != "abc" {
		t.Fatalf("got=%q", got)
	}
}

func TestStripReasoning_Idempotent(t *testing.T) {
	once := StripReasoning("a<think>x\ny</think>b")
	if StripReasoning(once) != once {
		t.Fatalf("once=%q twice=%q", once, StripReasoning(once))
	}
}

func TestStripReasoning_UnmatchedOpenLeft(t *testing.T) {
	in := "visible <think>never closed"
	if got := StripReasoning(in); got != in {
		t.Fatalf("got=%q", got)
	}
}

func TestStripReasoning_NoMarkers(t *testing.T) {
	in := "plain text with no markers"
	if got := StripReasoning(in); got != in {
		t.Fatalf("got=%q", got)
	}
}

func TestStripEmphasis_Pairs(t *testing.T) {
	got := StripEmphasis("**hello** world **there**")
	if got != "hello world there" {
		t.Fatalf("got=%q", got)
	}
}

func TestStripEmphasis_LoneMarker(t *testing.T) {
	if got := StripEmphasis("**"); got != "" {
		t.Fatalf("got=%q", got)
	}
	if got := StripEmphasis("a ** b"); got != "a  b" {
		t.Fatalf("got=%q", got)
	}
}

func TestStripEmphasis_NoMarkers(t *testing.T) {
	in := "no markers here"
	if got := StripEmphasis(in); got != in {
		t.Fatalf("got=%q", got)
	}
}
