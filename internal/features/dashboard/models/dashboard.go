package models

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind tells assets from liabilities.
type Kind string

const (
	KindAsset     Kind = "asset"
	KindLiability Kind = "liability"
)

func (k Kind) Valid() bool { return k == KindAsset || k == KindLiability }

var (
	AssetCategories     = []string{"Cash", "Investments", "Real Estate", "Other"}
	LiabilityCategories = []string{"Loans", "Credit", "Other"}
)

// Categories returns the categories allowed for k.
func (k Kind) Categories() []string {
	switch k {
	case KindAsset:
		return AssetCategories
	case KindLiability:
		return LiabilityCategories
	}
	return nil
}

var (
	ErrItemNotFound = errors.New("dashboard: item not found")
	ErrInvalidRange = errors.New("dashboard: invalid chart range")
)

// Item is one line of the assets/liabilities breakdown.
// @Description Asset or liability line
type Item struct {
	ID       string          `json:"id" example:"6f1c2a9e-2f0b-4a53-9a57-0a4c8e1f6a10"`
	Name     string          `json:"name" example:"Checking Account"`
	Value    decimal.Decimal `json:"value" swaggertype:"string" example:"5000"`
	Category string          `json:"category" example:"Cash"`
	Kind     Kind            `json:"kind" example:"asset" enums:"asset,liability"`
}

// ItemInput is the editable part of an Item.
// @Description Asset or liability input
type ItemInput struct {
	Name     string          `json:"name" example:"Checking Account"`
	Value    decimal.Decimal `json:"value" swaggertype:"string" example:"5000"`
	Category string          `json:"category" example:"Cash"`
	Kind     Kind            `json:"kind" example:"asset" enums:"asset,liability"`
}

// CategoryGroup is the items of one category with their sum.
type CategoryGroup struct {
	Category string          `json:"category" example:"Cash"`
	Items    []Item          `json:"items"`
	Total    decimal.Decimal `json:"total" swaggertype:"string" example:"20000"`
}

// Breakdown is the grouped assets and liabilities.
// @Description Assets and liabilities grouped by category
type Breakdown struct {
	Assets           []CategoryGroup `json:"assets"`
	Liabilities      []CategoryGroup `json:"liabilities"`
	TotalAssets      decimal.Decimal `json:"totalAssets" swaggertype:"string" example:"415000"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities" swaggertype:"string" example:"313000"`
}

// Highlight names the largest item of a kind.
type Highlight struct {
	Name  string          `json:"name" example:"Home Value"`
	Value decimal.Decimal `json:"value" swaggertype:"string" example:"350000"`
}

// Growth is the change between two net worth values.
type Growth struct {
	Amount     decimal.Decimal `json:"amount" swaggertype:"string" example:"7000"`
	Percentage decimal.Decimal `json:"percentage" swaggertype:"string" example:"6.1"`
	IsPositive bool            `json:"isPositive" example:"true"`
}

// Statistics is the summary panel.
// @Description Summary statistics
type Statistics struct {
	NetWorth         decimal.Decimal `json:"netWorth" swaggertype:"string" example:"102000"`
	PreviousNetWorth decimal.Decimal `json:"previousNetWorth" swaggertype:"string" example:"98000"`
	Growth           Growth          `json:"growth"`
	LargestAsset     *Highlight      `json:"largestAsset,omitempty"`
	LargestLiability *Highlight      `json:"largestLiability,omitempty"`
}

// Range selects the chart granularity.
type Range string

const (
	RangeMonthly   Range = "monthly"
	RangeQuarterly Range = "quarterly"
	RangeYearly    Range = "yearly"
)

// ParseRange maps "" to monthly and rejects unknown values.
func ParseRange(s string) (Range, error) {
	switch Range(s) {
	case "", RangeMonthly:
		return RangeMonthly, nil
	case RangeQuarterly, RangeYearly:
		return Range(s), nil
	}
	return "", ErrInvalidRange
}

// Point is one month of net worth history. Period is "YYYY-MM".
type Point struct {
	Period string          `json:"period" example:"2024-12"`
	Label  string          `json:"label" example:"Dec"`
	Value  decimal.Decimal `json:"value" swaggertype:"string" example:"98000"`
}

// History is the monthly net worth series, ordered by period.
type History struct {
	Name   string  `json:"name" example:"Net Worth"`
	Points []Point `json:"points"`
}

// Series is one named line of the chart.
type Series struct {
	Name   string            `json:"name" example:"Net Worth"`
	Values []decimal.Decimal `json:"values" swaggertype:"array,string"`
}

// ChartData is what the trend chart renders: ordered labels, one or more
// series of the same length, and the currency symbol for the axis.
// @Description Trend chart data
type ChartData struct {
	Range  Range    `json:"range" example:"monthly" enums:"monthly,quarterly,yearly"`
	Labels []string `json:"labels"`
	Series []Series `json:"series"`
	Symbol string   `json:"symbol" example:"$"`
}

// Overview is everything the dashboard page shows.
// @Description Dashboard overview
type Overview struct {
	Currency   string     `json:"currency" example:"CAD"`
	Symbol     string     `json:"symbol" example:"$"`
	Statistics Statistics `json:"statistics"`
	Chart      ChartData  `json:"chart"`
	Breakdown  Breakdown  `json:"breakdown"`
	// Display strings for the summary values, keyed by statistic name.
	Formatted map[string]string `json:"formatted"`
}

// Item fields.
const (
	FieldItemName     = "name"
	FieldItemValue    = "value"
	FieldItemCategory = "category"
	FieldItemKind     = "kind"
)

// ItemValidationError lists every rejected field of an ItemInput.
type ItemValidationError struct {
	Fields map[string]string
}

func (e *ItemValidationError) Error() string {
	return fmt.Sprintf("dashboard: invalid item (%d fields)", len(e.Fields))
}
