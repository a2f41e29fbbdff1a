// Package coupon serves the fixed list of promotional offers. The offers
// are static data and have no relation to stored subscriptions.
package coupon

import (
	_ "embed"
	"fmt"

	"subsage/internal/model"

	"gopkg.in/yaml.v3"
)

//go:embed coupons.yaml
var catalogYAML []byte

var catalog = mustParse(catalogYAML)

func parse(data []byte) ([]model.Coupon, error) {
	var coupons []model.Coupon
	if err := yaml.Unmarshal(data, &coupons); err != nil {
		return nil, fmt.Errorf("parsing coupon catalog: %w", err)
	}
	return coupons, nil
}

func mustParse(data []byte) []model.Coupon {
	coupons, err := parse(data)
	if err != nil {
		panic(err)
	}
	return coupons
}

// All returns a copy of the catalog so callers cannot alter it.
func All() []model.Coupon {
	out := make([]model.Coupon, len(catalog))
	copy(out, catalog)
	return out
}
