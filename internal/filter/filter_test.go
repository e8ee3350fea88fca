package filter

import "testing"

func resolverFor(header ...string) *ColumnIndexResolver {
	return NewColumnIndexResolver(header)
}

func TestParseNumericCondition(t *testing.T) {
	r := resolverFor("id", "age")
	f, err := Parse("age > 30", r)
	if err != nil {
		t.Fatal(err)
	}
	if f == nil {
		t.Fatal("expected non-nil filter")
	}
	if !f.Matches([]string{"1", "31"}) {
		t.Fatal("expected match")
	}
	if f.Matches([]string{"1", "29"}) {
		t.Fatal("expected no match")
	}
}

func TestParseStringCondition(t *testing.T) {
	r := resolverFor("id", "name")
	f, err := Parse(`name="bob"`, r)
	if err != nil {
		t.Fatal(err)
	}
	if !f.Matches([]string{"1", "bob"}) {
		t.Fatal("expected match")
	}
	if f.Matches([]string{"1", "alice"}) {
		t.Fatal("expected no match")
	}
}

func TestParseAndOrPrecedence(t *testing.T) {
	// AND binds tighter than OR: "a=1 AND b=2 OR c=3" == (a=1 AND b=2) OR c=3
	r := resolverFor("a", "b", "c")
	f, err := Parse("a=1 AND b=2 OR c=3", r)
	if err != nil {
		t.Fatal(err)
	}
	if !f.Matches([]string{"1", "2", "9"}) {
		t.Fatal("expected match via AND branch")
	}
	if !f.Matches([]string{"9", "9", "3"}) {
		t.Fatal("expected match via OR branch")
	}
	if f.Matches([]string{"1", "9", "9"}) {
		t.Fatal("expected no match")
	}
}

func TestParseEmptyExpression(t *testing.T) {
	r := resolverFor("a")
	f, err := Parse("", r)
	if err != nil {
		t.Fatal(err)
	}
	if f != nil {
		t.Fatal("expected nil (absent) filter")
	}
}

func TestParseUnknownColumnDropped(t *testing.T) {
	r := resolverFor("a", "b")
	f, err := Parse("zzz=1", r)
	if err != nil {
		t.Fatal(err)
	}
	if f != nil {
		t.Fatal("expected nil filter when the only condition references an unknown column")
	}
}

func TestConditionOutOfBoundsIsFalse(t *testing.T) {
	c := &condition{columnIndex: 5, op: "=", literal: "1", numeric: true}
	if c.Matches([]string{"1"}) {
		t.Fatal("expected false for out-of-bounds column")
	}
}

func TestAndEmptyIsVacuouslyTrue(t *testing.T) {
	f := &andFilter{}
	if !f.Matches([]string{"x"}) {
		t.Fatal("expected empty AND to match")
	}
}

func TestOrEmptyIsFalse(t *testing.T) {
	f := &orFilter{}
	if f.Matches([]string{"x"}) {
		t.Fatal("expected empty OR to not match")
	}
}

func TestLooksNumericQuotedNeverNumeric(t *testing.T) {
	if looksNumeric(`"42"`) {
		t.Fatal("quoted values must never be numeric")
	}
	if !looksNumeric("42") {
		t.Fatal("expected 42 to be numeric")
	}
	if looksNumeric("abc") {
		t.Fatal("expected abc to not be numeric")
	}
}
