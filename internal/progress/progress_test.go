package progress

import "testing"

func TestPercent(t *testing.T) {
	type item struct{ done bool }
	isDone := func(i item) bool { return i.done }

	cases := []struct {
		name  string
		items []item
		want  int
	}{
		{"empty", nil, 0},
		{"none done", []item{{false}, {false}}, 0},
		{"half", []item{{true}, {false}}, 50},
		{"all done", []item{{true}, {true}, {true}}, 100},
		{"one of three rounds", []item{{true}, {false}, {false}}, 33},
		{"two of three rounds", []item{{true}, {true}, {false}}, 67},
	}
	for _, c := range cases {
		if got := Percent(c.items, isDone); got != c.want {
			t.Errorf("%s: Percent = %d, want %d", c.name, got, c.want)
		}
	}
}
