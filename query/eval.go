package query

import (
	"fmt"
	"strings"

	"github.com/relcat-io/relcat/table"
)

// maskNode is a term of an evaluated group: either a leaf mask produced
// from a comparison, or a nested evaluated group. The parsed tree is never
// mutated; evaluation builds this parallel structure instead.
type maskNode interface {
	maskNode()
}

type maskLeaf struct {
	mask table.Mask
}

func (maskLeaf) maskNode() {}

type maskGroup struct {
	terms []maskNode
	ops   []Connective
}

func (*maskGroup) maskNode() {}

// evalGroup walks a parsed group and evaluates every comparison leaf into a
// boolean mask over the base table's rows, preserving the grouping
// structure for the combine step.
func evalGroup(base *table.Table, group *Group, cfg config) (*maskGroup, error) {
	out := &maskGroup{
		terms: make([]maskNode, 0, len(group.Terms)),
		ops:   group.Ops,
	}

	for _, term := range group.Terms {
		switch node := term.(type) {
		case *Comparison:
			mask, err := evalComparison(base, node, cfg)
			if err != nil {
				return nil, err
			}
			out.terms = append(out.terms, maskLeaf{mask: mask})
		case *Group:
			nested, err := evalGroup(base, node, cfg)
			if err != nil {
				return nil, err
			}
			out.terms = append(out.terms, nested)
		default:
			return nil, fmt.Errorf("%w: unexpected node type %T", ErrSyntax, term)
		}
	}

	return out, nil
}

// evalComparison evaluates a single comparison into a mask aligned with the
// base table's rows. Field, operator, and value resolve in that order, so
// the caller sees the leftmost problem in a broken comparison.
func evalComparison(base *table.Table, cmp *Comparison, cfg config) (table.Mask, error) {
	ref, err := resolveColumn(base, strings.TrimSpace(cmp.Field))
	if err != nil {
		return nil, err
	}

	op, err := resolveOperator(strings.TrimSpace(cmp.Operator))
	if err != nil {
		return nil, err
	}

	lit, err := resolveLiteral(strings.TrimSpace(cmp.Value), cfg.signedNumbers)
	if err != nil {
		return nil, err
	}

	pred := func(cell any) (bool, error) {
		return compare(cell, op, lit)
	}

	switch r := ref.(type) {
	case localRef:
		return r.column.EachMask(pred)
	case foreignRef:
		return evalForeign(base, r, pred)
	default:
		return nil, fmt.Errorf("unexpected column reference type %T", ref)
	}
}

// evalForeign evaluates a comparison on a related table's column and maps
// the result back onto the base table as a value-membership semi-join: a
// base row qualifies when its key appears among the distinct keys of
// matching target rows. Rows never duplicate, whatever the match count.
func evalForeign(base *table.Table, ref foreignRef, pred func(any) (bool, error)) (table.Mask, error) {
	target := ref.relation.Target

	col, ok := target.Column(ref.field)
	if !ok {
		return nil, fmt.Errorf("%w: %q on table %q", ErrUnknownColumn, ref.field, target.Name())
	}
	targetMask, err := col.EachMask(pred)
	if err != nil {
		return nil, err
	}

	keyCol, ok := target.Column(ref.relation.OtherColumn)
	if !ok {
		return nil, fmt.Errorf("%w: relation key %q on table %q", ErrUnknownColumn, ref.relation.OtherColumn, target.Name())
	}
	keys, err := keyCol.DistinctWhere(targetMask)
	if err != nil {
		return nil, err
	}

	ownCol, ok := base.Column(ref.relation.OwnColumn)
	if !ok {
		return nil, fmt.Errorf("%w: relation key %q on table %q", ErrUnknownColumn, ref.relation.OwnColumn, base.Name())
	}
	return ownCol.In(keys), nil
}
