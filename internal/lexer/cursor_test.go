package lexer

import "testing"

func tok(k Kind) Token { return New(k, "", 0, 0) }

func TestCursorPeekPop(t *testing.T) {
	c := NewCursor([]Token{tok(Func), tok(Symbol), tok(EOF)})

	if _, ok := c.PeekAt(2); !ok {
		t.Fatal("PeekAt(2) should see the EOF token")
	}
	if _, ok := c.PeekAt(3); ok {
		t.Fatal("PeekAt(3) should be past the end")
	}

	got, ok := c.Peek()
	if !ok || got.Kind != Func {
		t.Fatalf("Peek() = %v, %v; want Func, true", got, ok)
	}

	got, ok = c.Pop()
	if !ok || got.Kind != Func {
		t.Fatalf("Pop() = %v, %v; want Func, true", got, ok)
	}

	got, ok = c.Peek()
	if !ok || got.Kind != Symbol {
		t.Fatalf("Peek() after one Pop = %v, %v; want Symbol, true", got, ok)
	}
}

func TestCursorSnapshotRollback(t *testing.T) {
	c := NewCursor([]Token{tok(Func), tok(Symbol), tok(Assign), tok(EOF)})

	c.Pop()
	snap := c.Snapshot()
	c.Pop()
	c.Pop()

	got, _ := c.Peek()
	if got.Kind != EOF {
		t.Fatalf("before rollback, Peek() = %v, want EOF", got)
	}

	c.Rollback(snap)
	got, _ = c.Peek()
	if got.Kind != Symbol {
		t.Fatalf("after rollback, Peek() = %v, want Symbol", got)
	}
}

func TestCursorCloneIsIndependent(t *testing.T) {
	c := NewCursor([]Token{tok(Func), tok(Symbol), tok(EOF)})
	c.Pop()

	clone := c.Clone()
	clone.Pop()

	got, _ := c.Peek()
	if got.Kind != Symbol {
		t.Fatalf("original cursor advanced by clone's Pop: Peek() = %v, want Symbol", got)
	}
	got, _ = clone.Peek()
	if got.Kind != EOF {
		t.Fatalf("clone cursor = %v, want EOF", got)
	}
}

func TestCursorHasNext(t *testing.T) {
	c := NewCursor([]Token{tok(EOF)})
	if !c.HasNext() {
		t.Fatal("HasNext() should be true before the sole token is popped")
	}
	c.Pop()
	if c.HasNext() {
		t.Fatal("HasNext() should be false once the buffer is exhausted")
	}
}
