package earley

import "github.com/emirpasic/gods/lists/arraylist"

// transientSet parks items whose dot is immediately before a terminal, until
// the next input symbol arrives. Order never matters here (nothing re-reads
// a transient once scanning has consumed it), so an arraylist is enough. The
// point of reaching for gods here rather than a bare []Item is consistency
// with the rest of the chart's collection choices, not any ordering
// requirement.
type transientSet struct {
	list *arraylist.List
}

func newTransientSet() *transientSet {
	return &transientSet{list: arraylist.New()}
}

func (t *transientSet) add(it Item) {
	t.list.Add(it)
}

func (t *transientSet) items() []Item {
	values := t.list.Values()
	out := make([]Item, len(values))
	for i, v := range values {
		out[i] = v.(Item)
	}
	return out
}

func (t *transientSet) reset() {
	t.list.Clear()
}
