package storegen

import (
	"fmt"
	"strings"

	"github.com/mompack/mompack/pkg/model"
)

// System table DDL, fixed for every generated store.
const (
	createPrimaryKey = `CREATE TABLE Z_PRIMARYKEY (
    Z_ENT INTEGER PRIMARY KEY,
    Z_NAME VARCHAR,
    Z_SUPER INTEGER,
    Z_MAX INTEGER
);`

	createMetadata = `CREATE TABLE Z_METADATA (
    Z_VERSION INTEGER PRIMARY KEY,
    Z_UUID VARCHAR(255),
    Z_PLIST BLOB
);`
)

// column is one column of a generated table.
type column struct {
	name    string
	sqlType string
}

// table is one generated entity or join table.
type table struct {
	name    string
	columns []column
}

// primaryKeyRow seeds one Z_PRIMARYKEY entry.
type primaryKeyRow struct {
	ent   int    // 1-based entity ordinal in declaration order
	name  string // entity name, unsanitized
	super int    // parent's ordinal, 0 for roots
}

// storePlan is the full layout derived from one model. Duplicate names in
// the source model are legal; the plan folds whatever would collide into
// the first occurrence so the DDL always executes.
type storePlan struct {
	tables  []table // one per root entity, in declaration order
	joins   []table // one per many-to-many pair
	indexes []string
}

// identifier strips a name down to SQL-safe uppercase letters, digits,
// and underscores.
func identifier(name string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(name) {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		}
	}
	return b.String()
}

func tableName(entityName string) string {
	return "Z" + identifier(entityName)
}

func columnName(memberName string) string {
	return "Z" + identifier(memberName)
}

// columnType maps an attribute type to its store column type.
func columnType(attributeType string) string {
	switch attributeType {
	case model.AttributeTypeInteger16, model.AttributeTypeInteger32,
		model.AttributeTypeInteger64, model.AttributeTypeBoolean:
		return "INTEGER"
	case model.AttributeTypeDouble, model.AttributeTypeFloat, model.AttributeTypeDecimal:
		return "FLOAT"
	case model.AttributeTypeString, model.AttributeTypeURI, model.AttributeTypeUUID:
		return "VARCHAR"
	case model.AttributeTypeDate:
		return "TIMESTAMP"
	default:
		// Binary Data, Transformable, and unrecognized types store as blobs.
		return "BLOB"
	}
}

// rootOf follows the parentEntity chain to the topmost resolvable entity.
// A dangling parent name ends the walk there; a cycle makes the starting
// entity its own root.
func rootOf(m *model.Model, e *model.Entity) *model.Entity {
	seen := map[string]bool{e.Name: true}
	cur := e
	for cur.ParentEntity != "" {
		parent := m.EntityNamed(cur.ParentEntity)
		if parent == nil {
			return cur
		}
		if seen[parent.Name] {
			return e
		}
		seen[parent.Name] = true
		cur = parent
	}
	return cur
}

// ordinals assigns every entity name its 1-based Z_ENT number in
// declaration order; a duplicated name keeps its first ordinal.
func ordinals(m *model.Model) map[string]int {
	ord := make(map[string]int, len(m.Entities))
	for i, e := range m.Entities {
		if _, ok := ord[e.Name]; !ok {
			ord[e.Name] = i + 1
		}
	}
	return ord
}

// primaryKeyRows seeds one Z_PRIMARYKEY entry per entity.
func primaryKeyRows(m *model.Model) []primaryKeyRow {
	ord := ordinals(m)
	rows := make([]primaryKeyRow, 0, len(m.Entities))
	for i, e := range m.Entities {
		super := 0
		if parent := m.EntityNamed(e.ParentEntity); parent != nil && parent != e {
			super = ord[parent.Name]
		}
		rows = append(rows, primaryKeyRow{ent: i + 1, name: e.Name, super: super})
	}
	return rows
}

// planStore derives the complete table layout for the model.
func planStore(m *model.Model) *storePlan {
	plan := &storePlan{}

	// Group entities under their root, keeping declaration order for both
	// the roots and each root's members.
	var roots []*model.Entity
	members := map[string][]*model.Entity{}
	for _, e := range m.Entities {
		root := rootOf(m, e)
		if _, ok := members[root.Name]; !ok {
			roots = append(roots, root)
		}
		members[root.Name] = append(members[root.Name], e)
	}

	indexNames := map[string]bool{}
	for _, root := range roots {
		plan.tables = append(plan.tables, buildTable(root, members[root.Name]))
		plan.indexes = append(plan.indexes, buildIndexes(root, members[root.Name], indexNames)...)
	}

	plan.joins = buildJoins(m)
	return plan
}

// buildTable lays out the Z-table for one root: the bookkeeping columns,
// then the column union of every hierarchy member's persistent attributes
// and to-one relationships.
func buildTable(root *model.Entity, members []*model.Entity) table {
	t := table{
		name: tableName(root.Name),
		columns: []column{
			{"Z_PK", "INTEGER PRIMARY KEY"},
			{"Z_ENT", "INTEGER"},
			{"Z_OPT", "INTEGER"},
		},
	}
	seen := map[string]bool{"Z_PK": true, "Z_ENT": true, "Z_OPT": true}
	add := func(name, sqlType string) {
		if name == "Z" || seen[name] {
			return
		}
		seen[name] = true
		t.columns = append(t.columns, column{name, sqlType})
	}

	for _, e := range members {
		for _, a := range e.Attributes {
			if a.IsTransient {
				continue
			}
			add(columnName(a.Name), columnType(a.Type))
		}
		for _, r := range e.Relationships {
			if r.IsTransient || r.IsToMany {
				continue
			}
			add(columnName(r.Name), "INTEGER")
		}
	}
	return t
}

// buildIndexes renders the UNIQUE indexes for uniqueness-constraint
// groups and plain indexes for compound-index groups and isIndexed
// attributes, all against the root's table. A name already taken is
// skipped rather than re-created.
func buildIndexes(root *model.Entity, members []*model.Entity, taken map[string]bool) []string {
	var stmts []string
	tbl := tableName(root.Name)
	claim := func(name string) bool {
		if taken[name] {
			return false
		}
		taken[name] = true
		return true
	}

	for _, e := range members {
		ent := identifier(e.Name)
		for i, group := range e.UniquenessConstraints {
			cols := indexColumns(e, group)
			name := fmt.Sprintf("Z_%s_UNIQUE_%d", ent, i+1)
			if len(cols) == 0 || !claim(name) {
				continue
			}
			stmts = append(stmts, fmt.Sprintf(
				"CREATE UNIQUE INDEX %s ON %s (%s);", name, tbl, strings.Join(cols, ", ")))
		}
		for i, group := range e.CompoundIndexes {
			cols := indexColumns(e, group)
			name := fmt.Sprintf("Z_%s_INDEX_%d", ent, i+1)
			if len(cols) == 0 || !claim(name) {
				continue
			}
			stmts = append(stmts, fmt.Sprintf(
				"CREATE INDEX %s ON %s (%s);", name, tbl, strings.Join(cols, ", ")))
		}
		for _, a := range e.Attributes {
			if !a.IsIndexed || a.IsTransient {
				continue
			}
			col := columnName(a.Name)
			name := fmt.Sprintf("Z_%s_%s_INDEX", ent, col)
			if !claim(name) {
				continue
			}
			stmts = append(stmts, fmt.Sprintf("CREATE INDEX %s ON %s (%s);", name, tbl, col))
		}
	}
	return stmts
}

// indexColumns resolves a group of attribute names against the entity,
// dropping names that match no persistent attribute.
func indexColumns(e *model.Entity, group []string) []string {
	var cols []string
	for _, name := range group {
		a := e.AttributeNamed(name)
		if a == nil || a.IsTransient {
			continue
		}
		cols = append(cols, columnName(a.Name))
	}
	return cols
}

// joinEnd identifies one side of a many-to-many pair.
type joinEnd struct {
	entity string
	rel    string
}

// buildJoins emits one join table per many-to-many pair: a to-many
// relationship whose declared inverse on the destination is also to-many.
// Both ends are marked done so the pair renders exactly once.
func buildJoins(m *model.Model) []table {
	ord := ordinals(m)
	var joins []table
	done := map[joinEnd]bool{}
	names := map[string]bool{}

	for _, e := range m.Entities {
		for _, r := range e.Relationships {
			if r.IsTransient || !r.IsToMany {
				continue
			}
			dest := m.EntityNamed(r.DestinationEntity)
			if dest == nil || r.InverseRelationship == "" {
				continue
			}
			inv := dest.RelationshipNamed(r.InverseRelationship)
			if inv == nil || inv.IsTransient || !inv.IsToMany {
				continue
			}
			here := joinEnd{e.Name, r.Name}
			there := joinEnd{dest.Name, inv.Name}
			if done[here] || done[there] {
				continue
			}
			done[here] = true
			done[there] = true

			// The lexicographically first end names the table.
			src, dst := here, there
			srcRel, dstRel := r, inv
			if !lessEnd(src, dst) {
				src, dst = dst, src
				srcRel, dstRel = inv, r
			}
			name := fmt.Sprintf("Z_%d%s", ord[src.entity], identifier(srcRel.Name))
			if names[name] {
				continue
			}
			names[name] = true
			srcCol := name
			dstCol := fmt.Sprintf("Z_%d%s", ord[dst.entity], identifier(dstRel.Name))
			if dstCol == srcCol {
				dstCol += "_1"
			}
			joins = append(joins, table{
				name: name,
				columns: []column{
					{srcCol, "INTEGER"},
					{dstCol, "INTEGER"},
				},
			})
		}
	}
	return joins
}

func lessEnd(a, b joinEnd) bool {
	if a.entity != b.entity {
		return a.entity < b.entity
	}
	return a.rel < b.rel
}

// renderCreate renders one CREATE TABLE statement in the store's layout.
func renderCreate(t table) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE %s (\n", t.name)
	for i, c := range t.columns {
		sep := ","
		if i == len(t.columns)-1 {
			sep = ""
		}
		fmt.Fprintf(&b, "    %s %s%s\n", c.name, c.sqlType, sep)
	}
	b.WriteString(");")
	return b.String()
}

// statements returns every DDL statement of the plan in execution order:
// system tables, entity tables, join tables, then indexes.
func (p *storePlan) statements() []string {
	stmts := []string{createPrimaryKey, createMetadata}
	for _, t := range p.tables {
		stmts = append(stmts, renderCreate(t))
	}
	for _, t := range p.joins {
		stmts = append(stmts, renderCreate(t))
	}
	stmts = append(stmts, p.indexes...)
	return stmts
}
