package query

import (
	"fmt"

	"github.com/relcat-io/relcat/table"
)

// combine reduces an evaluated group to a single mask.
//
// Nested groups reduce first (post-order), so the innermost parenthesized
// expressions resolve before their parents. This is what gives parentheses
// their precedence: within one layer the connectives fold strictly
// left-to-right with equal binding power.
func combine(group *maskGroup) (table.Mask, error) {
	if len(group.terms) == 0 {
		return nil, fmt.Errorf("%w: empty group", ErrSyntax)
	}
	if len(group.ops) != len(group.terms)-1 {
		return nil, fmt.Errorf("%w: %d connectives for %d terms", ErrSyntax, len(group.ops), len(group.terms))
	}

	masks := make([]table.Mask, len(group.terms))
	for i, term := range group.terms {
		switch node := term.(type) {
		case maskLeaf:
			masks[i] = node.mask
		case *maskGroup:
			reduced, err := combine(node)
			if err != nil {
				return nil, err
			}
			masks[i] = reduced
		}
	}

	result := masks[0]
	for i, op := range group.ops {
		var err error
		switch op {
		case And:
			result, err = result.And(masks[i+1])
		case Or:
			result, err = result.Or(masks[i+1])
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownConnective, op)
		}
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}
