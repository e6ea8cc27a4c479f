package stats

import (
	"sort"

	"github.com/housekit/housekit"
	"github.com/pkg/errors"
)

// Group is the Summary of one category's values.
type Group struct {
	Key     string
	Summary Summary
}

// GroupBy splits the named numeric column of f by the values of a string key
// column and describes each category. Groups come back in sorted key order.
func GroupBy(f *housekit.Frame, keyCol, valCol string) ([]Group, error) {
	keys, err := f.Strings(keyCol)
	if err != nil {
		return nil, errors.Wrap(err, "getting key column")
	}
	vals, err := f.Floats(valCol)
	if err != nil {
		return nil, errors.Wrap(err, "getting value column")
	}

	byKey := make(map[string][]float64)
	for i, k := range keys {
		byKey[k] = append(byKey[k], vals[i])
	}
	names := make([]string, 0, len(byKey))
	for k := range byKey {
		names = append(names, k)
	}
	sort.Strings(names)

	groups := make([]Group, len(names))
	for i, k := range names {
		sum, err := Describe(byKey[k])
		if err != nil {
			return nil, errors.Wrapf(err, "describing group %q", k)
		}
		groups[i] = Group{Key: k, Summary: sum}
	}
	return groups, nil
}
