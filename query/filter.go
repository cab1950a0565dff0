package query

import (
	"fmt"

	"github.com/relcat-io/relcat/table"
)

// config collects the tunable evaluation behaviors.
type config struct {
	signedNumbers bool
}

// Option modifies the filter's default behavior.
type Option func(*config)

// SignedNumbers allows numeric literals with a leading minus sign.
//
// The default literal rules accept only unsigned digit runs, so "balance >
// -10" fails literal resolution unless this option is set.
func SignedNumbers() Option {
	return func(c *config) {
		c.signedNumbers = true
	}
}

// Filter evaluates a query against the base table and returns a new table
// holding the rows that satisfy it.
//
// The pipeline: parse the query, evaluate each comparison into a boolean
// mask (traversing declared relations for foreign fields), reduce the masks
// through the grouping structure, and select the matching rows. The base
// table is never modified; the filtered view keeps its name and relation
// declarations. Any failure aborts the whole call with no partial result.
func Filter(base *table.Table, input string, opts ...Option) (*table.Table, error) {
	if base == nil {
		return nil, fmt.Errorf("filter: base table is nil")
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	group, err := Parse(input)
	if err != nil {
		return nil, err
	}

	evaluated, err := evalGroup(base, group, cfg)
	if err != nil {
		return nil, err
	}

	mask, err := combine(evaluated)
	if err != nil {
		return nil, err
	}

	return base.Select(mask)
}
