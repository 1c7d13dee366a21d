// Package seed holds the demo portfolio a fresh installation starts with.
package seed

import (
	_ "embed"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"networth-tracker/internal/features/dashboard/models"
)

//go:embed demo.yaml
var demoYAML []byte

type rawItem struct {
	Name     string `yaml:"name"`
	Value    string `yaml:"value"`
	Category string `yaml:"category"`
	Kind     string `yaml:"kind"`
}

type rawPoint struct {
	Period string `yaml:"period"`
	Label  string `yaml:"label"`
	Value  string `yaml:"value"`
}

type rawSeed struct {
	Items   []rawItem `yaml:"items"`
	History struct {
		Name   string     `yaml:"name"`
		Points []rawPoint `yaml:"points"`
	} `yaml:"history"`
}

// Data is a decoded seed.
type Data struct {
	Items   []models.Item
	History models.History
}

// Demo decodes the embedded demo portfolio. Every call assigns fresh item IDs.
func Demo() (Data, error) {
	return Parse(demoYAML)
}

// Parse decodes a seed document.
func Parse(doc []byte) (Data, error) {
	var raw rawSeed
	if err := yaml.Unmarshal(doc, &raw); err != nil {
		return Data{}, fmt.Errorf("failed to decode seed: %w", err)
	}

	out := Data{
		Items:   make([]models.Item, 0, len(raw.Items)),
		History: models.History{Name: raw.History.Name, Points: make([]models.Point, 0, len(raw.History.Points))},
	}

	for _, it := range raw.Items {
		v, err := decimal.NewFromString(it.Value)
		if err != nil {
			return Data{}, fmt.Errorf("item %q: %w", it.Name, err)
		}
		kind := models.Kind(it.Kind)
		if !kind.Valid() {
			return Data{}, fmt.Errorf("item %q: unknown kind %q", it.Name, it.Kind)
		}
		out.Items = append(out.Items, models.Item{
			ID:       uuid.NewString(),
			Name:     it.Name,
			Value:    v,
			Category: it.Category,
			Kind:     kind,
		})
	}

	for _, p := range raw.History.Points {
		v, err := decimal.NewFromString(p.Value)
		if err != nil {
			return Data{}, fmt.Errorf("history point %s: %w", p.Period, err)
		}
		out.History.Points = append(out.History.Points, models.Point{Period: p.Period, Label: p.Label, Value: v})
	}

	return out, nil
}
