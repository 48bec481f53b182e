package visibility

import (
	"reflect"
	"testing"
)

type item struct {
	id        string
	owner     string
	published bool
}

func (i item) OwnerID() string { return i.owner }
func (i item) Published() bool { return i.published }

func ids(items []item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.id)
	}
	return out
}

func TestVisible(t *testing.T) {
	all := []item{
		{"a", "u1", true},
		{"b", "u2", true},
		{"c", "u1", false},
		{"d", "u3", true},
		{"e", "u2", false},
	}

	tests := []struct {
		name               string
		hidden             map[string]bool
		includeUnpublished bool
		want               []string
	}{
		{"published only, nothing hidden", nil, false, []string{"a", "b", "d"}},
		{"hidden owner dropped", map[string]bool{"u2": true}, false, []string{"a", "d"}},
		{"include unpublished", nil, true, []string{"a", "b", "c", "d", "e"}},
		{"hidden wins over published", map[string]bool{"u1": true, "u3": true}, true, []string{"b", "e"}},
		{"all hidden", map[string]bool{"u1": true, "u2": true, "u3": true}, false, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Visible(all, tt.hidden, tt.includeUnpublished)
			if !reflect.DeepEqual(ids(got), tt.want) {
				t.Errorf("Visible() = %v, want %v", ids(got), tt.want)
			}
		})
	}
}

func TestVisibleIdempotent(t *testing.T) {
	all := []item{
		{"a", "u1", true},
		{"b", "u2", true},
		{"c", "u3", true},
	}
	hidden := map[string]bool{"u2": true}

	once := Visible(all, hidden, false)
	twice := Visible(once, hidden, false)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("re-filtering changed the result: %v vs %v", once, twice)
	}
}

func TestVisibleEmptyInput(t *testing.T) {
	got := Visible([]item{}, map[string]bool{"u1": true}, false)
	if len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}
