package engine

import (
	"sort"

	"github.com/piwi3910/cutstock/internal/model"
)

// stockEntry1D pairs a stock type with its remaining usable count.
type stockEntry1D struct {
	stock     model.Stock1D
	remaining int
}

// stockManager1D tracks per-stock-type remaining count for one run and
// selects the next stock under an ordering policy fixed at construction.
type stockManager1D struct {
	entries []stockEntry1D
}

// newStockManager1D builds a manager from the stock list, filtering out
// zero-availability entries and sorting once: DESC by length for FFD,
// ASC for BFD (selecting the smallest bar that still fits).
func newStockManager1D(stocks []model.Stock1D, desc bool) *stockManager1D {
	entries := make([]stockEntry1D, 0, len(stocks))
	for _, s := range stocks {
		if s.Available > 0 {
			entries = append(entries, stockEntry1D{stock: s, remaining: s.Available})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if desc {
			return entries[i].stock.Length > entries[j].stock.Length
		}
		return entries[i].stock.Length < entries[j].stock.Length
	})
	return &stockManager1D{entries: entries}
}

// findAvailableStock returns the first stock (in sorted order) whose
// remaining count is positive and whose length can contain required.
func (m *stockManager1D) findAvailableStock(required float64) (model.Stock1D, bool) {
	for i := range m.entries {
		if m.entries[i].remaining > 0 && m.entries[i].stock.Length >= required {
			return m.entries[i].stock, true
		}
	}
	return model.Stock1D{}, false
}

// consume decrements the remaining count for a stock id.
func (m *stockManager1D) consume(stockID string) {
	for i := range m.entries {
		if m.entries[i].stock.ID == stockID && m.entries[i].remaining > 0 {
			m.entries[i].remaining--
			return
		}
	}
}

// stockEntry2D pairs a stock sheet type with its remaining usable count.
type stockEntry2D struct {
	stock     model.Stock2D
	remaining int
}

// stockManager2D is the 2D analogue of stockManager1D: sorted once by
// area DESC at construction.
type stockManager2D struct {
	entries []stockEntry2D
}

func newStockManager2D(stocks []model.Stock2D) *stockManager2D {
	entries := make([]stockEntry2D, 0, len(stocks))
	for _, s := range stocks {
		if s.Available > 0 {
			entries = append(entries, stockEntry2D{stock: s, remaining: s.Available})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].stock.Area() > entries[j].stock.Area()
	})
	return &stockManager2D{entries: entries}
}

// findAvailableStock returns the first stock able to contain a
// requiredW x requiredH rectangle in either orientation (stocks are
// treated as orientable).
func (m *stockManager2D) findAvailableStock(requiredW, requiredH float64) (model.Stock2D, bool) {
	for i := range m.entries {
		e := &m.entries[i]
		if e.remaining <= 0 {
			continue
		}
		fitsNormal := e.stock.Width >= requiredW && e.stock.Height >= requiredH
		fitsRotated := e.stock.Width >= requiredH && e.stock.Height >= requiredW
		if fitsNormal || fitsRotated {
			return e.stock, true
		}
	}
	return model.Stock2D{}, false
}

func (m *stockManager2D) consume(stockID string) {
	for i := range m.entries {
		if m.entries[i].stock.ID == stockID && m.entries[i].remaining > 0 {
			m.entries[i].remaining--
			return
		}
	}
}
