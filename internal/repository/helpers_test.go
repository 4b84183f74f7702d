package repository

import (
	"reflect"
	"testing"
)

func TestListRoundTrip(t *testing.T) {
	roles := []string{"Developer", "Designer"}
	if got := splitList(joinList(roles)); !reflect.DeepEqual(got, roles) {
		t.Fatalf("round trip: %v", got)
	}
}

func TestSplitListEmpty(t *testing.T) {
	got := splitList("")
	if got == nil {
		t.Fatal("empty column must yield a non-nil slice")
	}
	if len(got) != 0 {
		t.Fatalf("want empty slice, got %v", got)
	}
}

func TestNullableID(t *testing.T) {
	if v := nullableID(0); v != nil {
		t.Errorf("zero id should store NULL, got %v", v)
	}
	if v := nullableID(5); v != uint64(5) {
		t.Errorf("non-zero id: %v", v)
	}
}
