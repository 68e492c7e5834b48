package helpers

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func pageNumbers(p Pager) []int {
	out := make([]int, 0, len(p.Links))
	for _, link := range p.Links {
		out = append(out, link.Number)
	}
	return out
}

func TestPaginateSinglePage(t *testing.T) {
	for _, cfg := range []PaginationConfig{
		{Start: 0, PerPage: 10, Total: 10},
		{Start: 0, PerPage: 10, Total: 0},
		{Start: 0, PerPage: 0, Total: 100},
	} {
		if got := Paginate(cfg); got.Pages != 0 || got.Links != nil {
			t.Fatalf("expected zero pager for %+v, got %+v", cfg, got)
		}
	}
}

func TestPaginateWindow(t *testing.T) {
	cases := []struct {
		name    string
		start   int
		total   int
		want    []int
		current int
		prev    bool
		next    bool
	}{
		{"first page", 0, 100, []int{1, 2, 3, 4, 5}, 1, false, true},
		{"centered", 50, 100, []int{4, 5, 6, 7, 8}, 6, true, true},
		{"last page", 95, 100, []int{6, 7, 8, 9, 10}, 10, true, false},
		{"few pages", 10, 25, []int{1, 2, 3}, 2, true, true},
		{"start past end", 500, 30, []int{1, 2, 3}, 3, true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pager := Paginate(PaginationConfig{
				Start:   tc.start,
				PerPage: 10,
				Total:   tc.total,
				URL:     func(start int) string { return "?start=" + strconv.Itoa(start) },
			})
			if diff := cmp.Diff(tc.want, pageNumbers(pager)); diff != "" {
				t.Fatalf("links mismatch (-want +got):\n%s", diff)
			}
			for _, link := range pager.Links {
				if link.Current != (link.Number == tc.current) {
					t.Fatalf("page %d current=%v, want current page %d", link.Number, link.Current, tc.current)
				}
				if link.URL != "?start="+strconv.Itoa(link.Start) {
					t.Fatalf("unexpected url %q for start %d", link.URL, link.Start)
				}
			}
			if (pager.Prev != nil) != tc.prev || (pager.Next != nil) != tc.next {
				t.Fatalf("prev/next = %v/%v, want %v/%v", pager.Prev != nil, pager.Next != nil, tc.prev, tc.next)
			}
		})
	}
}

func TestOptionsFromMapOrdersByLabel(t *testing.T) {
	got := OptionsFromMap(map[string]string{"b": "Beta", "a": "Alpha", "c": "Alpha"})
	want := []Option{{Value: "a", Label: "Alpha"}, {Value: "c", Label: "Alpha"}, {Value: "b", Label: "Beta"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}
