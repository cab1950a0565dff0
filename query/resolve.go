package query

import (
	"fmt"
	"strings"

	"github.com/relcat-io/relcat/table"
)

// columnRef is the resolved target of a field reference: either a column of
// the base table or a column reached through one declared relation.
type columnRef interface {
	columnRef()
}

// localRef points at a column of the base table itself.
type localRef struct {
	column *table.Column
}

func (localRef) columnRef() {}

// foreignRef points at a column of a related table, reached through the
// named relation. Evaluation turns it into a one-hop semi-join.
type foreignRef struct {
	relation table.Relation
	field    string
}

func (foreignRef) columnRef() {}

// resolveColumn maps a field reference to a concrete column.
//
// A qualified reference (containing a dot) resolves its qualifier first:
// "self" and the base table's own name address the base table directly; any
// other qualifier must name a declared relation. An unqualified reference
// prefers the base table's columns, then searches all related tables and
// requires the name to be unique among them.
func resolveColumn(base *table.Table, field string) (columnRef, error) {
	if qualifier, name, ok := strings.Cut(field, "."); ok {
		if qualifier == "self" {
			return resolveLocal(base, name)
		}
		if rel, found := base.Relations()[qualifier]; found {
			if !rel.Target.HasColumn(name) {
				return nil, fmt.Errorf("%w: %q on related table %q", ErrUnknownColumn, name, qualifier)
			}
			return foreignRef{relation: rel, field: name}, nil
		}
		if qualifier == base.Name() {
			return resolveLocal(base, name)
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownRelation, qualifier)
	}

	if col, ok := base.Column(field); ok {
		return localRef{column: col}, nil
	}
	return searchRelations(base, field)
}

// resolveLocal looks up a column on the base table.
func resolveLocal(base *table.Table, name string) (columnRef, error) {
	col, ok := base.Column(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q on table %q", ErrUnknownColumn, name, base.Name())
	}
	return localRef{column: col}, nil
}

// searchRelations scans all declared relations for exactly one whose target
// table has a column with the given name.
func searchRelations(base *table.Table, name string) (columnRef, error) {
	var (
		found     table.Relation
		foundName string
		matches   int
	)
	for relName, rel := range base.Relations() {
		if rel.Target.HasColumn(name) {
			matches++
			if matches > 1 {
				return nil, fmt.Errorf("%w: %q found on related tables %q and %q; qualify with the relation name",
					ErrAmbiguousColumn, name, foundName, relName)
			}
			found = rel
			foundName = relName
		}
	}

	if matches == 0 {
		return nil, fmt.Errorf("%w: %q not found on table %q or any related table",
			ErrUnknownColumn, name, base.Name())
	}
	return foreignRef{relation: found, field: name}, nil
}
