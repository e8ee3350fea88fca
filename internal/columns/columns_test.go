package columns

import (
	"reflect"
	"testing"
)

func TestParseSelectionWildcard(t *testing.T) {
	got, err := ParseSelection("*", 4)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []int{0, 1, 2, 3}) {
		t.Fatalf("got %v", got)
	}
}

func TestParseSelectionEmpty(t *testing.T) {
	got, err := ParseSelection("  ", 3)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []int{0, 1, 2}) {
		t.Fatalf("got %v", got)
	}
}

func TestParseSelectionList(t *testing.T) {
	got, err := ParseSelection("1, 3", 4)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []int{0, 2}) {
		t.Fatalf("got %v", got)
	}
}

func TestParseSelectionOutOfRange(t *testing.T) {
	if _, err := ParseSelection("5", 4); err == nil {
		t.Fatal("expected error")
	}
}

func TestParseSelectionNotNumeric(t *testing.T) {
	if _, err := ParseSelection("abc", 4); err == nil {
		t.Fatal("expected error")
	}
}
