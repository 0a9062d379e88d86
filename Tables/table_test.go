package Tables

import (
	"errors"
	"testing"
)

func TestHome(t *testing.T) {
	cases := []struct{ hash, capacity, want int }{
		{0, 5, 0},
		{7, 5, 2},
		{-7, 5, 2},
		{-5, 5, 0},
		{15, 5, 0},
		{3, 1, 0},
	}
	for _, c := range cases {
		if got := Home(c.hash, c.capacity); got != c.want {
			t.Errorf("Home(%d, %d) = %d, want %d", c.hash, c.capacity, got, c.want)
		}
	}
}

func TestOverloaded(t *testing.T) {
	if Overloaded(3, 4) {
		t.Error("0.75 is overloaded")
	}
	if !Overloaded(4, 5) {
		t.Error("0.8 isn't overloaded")
	}
	if !Overloaded(1, 1) {
		t.Error("1 isn't overloaded")
	}
}

func TestEntry_String(t *testing.T) {
	e := MakeEntry("x", 1)
	if e.Key() != "x" || e.Value() != 1 {
		t.Errorf("wrong fields %v", e)
	}
	if s := e.String(); s != "x:1" {
		t.Errorf("String() = %q, want %q", s, "x:1")
	}
}

func TestCheckCapacity(t *testing.T) {
	defer func() {
		var ce *CapacityError
		if err, _ := recover().(error); !errors.As(err, &ce) || ce.Capacity != 0 {
			t.Errorf("recovered %v, want *CapacityError", err)
		}
	}()
	CheckCapacity(1)
	CheckCapacity(0)
	t.Error("no panic")
}
