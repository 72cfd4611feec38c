package quotation

import "testing"

// INR is a helper for test to create rupees from const.
func INR(v float64) Money { return M(v, "INR") }

// mustAdd adds a draft and fails the test on error.
func mustAdd(t *testing.T, l *Ledger, d Draft) LineItem {
	t.Helper()
	it, err := l.Add(d)
	if err != nil {
		t.Fatalf("Add(%+v) unexpected error: %v", d, err)
	}
	return it
}

// ids lists the item ids in ledger order.
func ids(l *Ledger) []ID {
	var res []ID
	for _, it := range l.Items() {
		res = append(res, it.ID())
	}
	return res
}

// describe returns the String of each item, for diffs.
func describe(items []LineItem) []string {
	res := make([]string, 0, len(items))
	for _, it := range items {
		res = append(res, it.String())
	}
	return res
}

var (
	tileA = Draft{Name: "Tile A", Size: "2x2", Boxes: "10", Area: "100", Rate: "50"}
	tileB = Draft{Name: "Tile B", Size: "1x1", Boxes: "5", Rate: "20"}
)
