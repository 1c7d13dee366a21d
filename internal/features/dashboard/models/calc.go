package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Total sums item values.
func Total(items []Item) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Value)
	}
	return sum
}

// OfKind returns the items of kind k, keeping their order.
func OfKind(items []Item, k Kind) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.Kind == k {
			out = append(out, it)
		}
	}
	return out
}

// GroupByCategory groups items by category in order of first appearance.
func GroupByCategory(items []Item) []CategoryGroup {
	groups := []CategoryGroup{}
	index := map[string]int{}
	for _, it := range items {
		i, ok := index[it.Category]
		if !ok {
			i = len(groups)
			index[it.Category] = i
			groups = append(groups, CategoryGroup{Category: it.Category, Total: decimal.Zero})
		}
		groups[i].Items = append(groups[i].Items, it)
		groups[i].Total = groups[i].Total.Add(it.Value)
	}
	return groups
}

// Largest returns the item with the highest value; the first one wins ties.
func Largest(items []Item) *Highlight {
	if len(items) == 0 {
		return nil
	}
	best := items[0]
	for _, it := range items[1:] {
		if it.Value.GreaterThan(best.Value) {
			best = it
		}
	}
	return &Highlight{Name: best.Name, Value: best.Value}
}

// NewBreakdown splits items by kind and groups each side.
func NewBreakdown(items []Item) Breakdown {
	assets := OfKind(items, KindAsset)
	liabilities := OfKind(items, KindLiability)
	return Breakdown{
		Assets:           GroupByCategory(assets),
		Liabilities:      GroupByCategory(liabilities),
		TotalAssets:      Total(assets),
		TotalLiabilities: Total(liabilities),
	}
}

// NetWorth is assets minus liabilities.
func NetWorth(items []Item) decimal.Decimal {
	return Total(OfKind(items, KindAsset)).Sub(Total(OfKind(items, KindLiability)))
}

// NewGrowth computes the change from previous to current. The percentage is
// rounded to one decimal and is zero when previous is zero.
func NewGrowth(current, previous decimal.Decimal) Growth {
	amount := current.Sub(previous)
	pct := decimal.Zero
	if !previous.IsZero() {
		pct = amount.Div(previous.Abs()).Mul(hundred).Round(1)
	}
	return Growth{
		Amount:     amount,
		Percentage: pct,
		IsPositive: !amount.IsNegative(),
	}
}

// Aggregate reduces a monthly history to r, keeping the last value of each
// quarter or year.
func Aggregate(h History, r Range) (labels []string, values []decimal.Decimal, err error) {
	labels = []string{}
	values = []decimal.Decimal{}

	key := func(p Point) (string, error) { return p.Label, nil }
	switch r {
	case RangeMonthly:
	case RangeQuarterly:
		key = func(p Point) (string, error) {
			y, m, err := parsePeriod(p.Period)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Q%d %d", (m-1)/3+1, y), nil
		}
	case RangeYearly:
		key = func(p Point) (string, error) {
			y, _, err := parsePeriod(p.Period)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%d", y), nil
		}
	default:
		return nil, nil, ErrInvalidRange
	}

	for i, p := range h.Points {
		k, err := key(p)
		if err != nil {
			return nil, nil, err
		}
		// monthly keeps every point, even repeated labels
		if r != RangeMonthly && i > 0 && labels[len(labels)-1] == k {
			values[len(values)-1] = p.Value
			continue
		}
		labels = append(labels, k)
		values = append(values, p.Value)
	}
	return labels, values, nil
}

func parsePeriod(period string) (year, month int, err error) {
	if _, err := fmt.Sscanf(period, "%4d-%2d", &year, &month); err != nil {
		return 0, 0, fmt.Errorf("invalid period %q: %w", period, err)
	}
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("invalid period %q: month out of range", period)
	}
	return year, month, nil
}
