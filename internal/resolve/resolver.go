// Package resolve binds logical sensor roles to the columns of a dataset by
// case-insensitive substring matching over a keyword priority table.
package resolve

import (
	"strings"

	"github.com/Veraticus/sprout/internal/model"
)

// StatusColumn is the exact header preferred for the status role.
const StatusColumn = "Status"

// KeywordTable lists, per role, lower-case keywords from most to least
// specific.
type KeywordTable map[model.Role][]string

// DefaultTable returns the keyword table for common sensor exports, including
// the Indonesian headers used by the village dataset.
func DefaultTable() KeywordTable {
	return KeywordTable{
		model.RoleMoisture:    {"soil moisture", "moisture", "kelembaban tanah"},
		model.RoleTemperature: {"temperature", "temp", "suhu"},
		model.RoleHumidity:    {"humidity", "kelembaban udara"},
		model.RoleYield:       {"yield", "hasil panen"},
		model.RoleStatus:      {"status", "condition", "kondisi"},
		model.RoleIrrigation:  {"irrigation_needed", "irrigation needed", "irrigation", "irigasi"},
		model.RoleHeatStress:  {"heat_stress", "heat stress", "stres panas"},
	}
}

// Merge returns a copy of t with the roles in overrides replaced. Override
// keywords are lower-cased and trimmed; blanks are dropped.
func (t KeywordTable) Merge(overrides map[model.Role][]string) KeywordTable {
	out := make(KeywordTable, len(t))
	for role, keywords := range t {
		out[role] = append([]string(nil), keywords...)
	}
	for role, keywords := range overrides {
		out[role] = normalizeKeywords(keywords)
	}
	return out
}

// Keywords returns the keywords for role.
func (t KeywordTable) Keywords(role model.Role) []string {
	return append([]string(nil), t[role]...)
}

// Resolver computes role bindings.
type Resolver struct {
	table KeywordTable
}

// NewResolver creates a resolver over table. A nil table uses DefaultTable.
func NewResolver(table KeywordTable) *Resolver {
	if table == nil {
		table = DefaultTable()
	}
	normalized := make(KeywordTable, len(table))
	for role, keywords := range table {
		normalized[role] = normalizeKeywords(keywords)
	}
	return &Resolver{table: normalized}
}

// Resolve binds every role with the default table.
func Resolve(ds *model.Dataset) model.RoleBinding {
	return NewResolver(nil).Resolve(ds)
}

type column struct {
	original   string
	normalized string
}

// Resolve binds each role independently. For every keyword in priority order
// the columns are scanned in file order and the first containing the keyword
// wins. The status role takes a column named exactly "Status" before any
// substring match. Roles may share a column.
func (r *Resolver) Resolve(ds *model.Dataset) model.RoleBinding {
	if ds == nil {
		return model.NewRoleBinding(nil)
	}

	names := ds.Columns()
	cols := make([]column, len(names))
	for i, name := range names {
		cols[i] = column{original: name, normalized: strings.ToLower(strings.TrimSpace(name))}
	}

	bound := make(map[model.Role]string)
	for _, role := range model.Roles() {
		if role == model.RoleStatus && ds.Has(StatusColumn) {
			bound[role] = StatusColumn
			continue
		}
		if name, ok := match(cols, r.table[role]); ok {
			bound[role] = name
		}
	}
	return model.NewRoleBinding(bound)
}

func match(cols []column, keywords []string) (string, bool) {
	for _, keyword := range keywords {
		for _, c := range cols {
			if strings.Contains(c.normalized, keyword) {
				return c.original, true
			}
		}
	}
	return "", false
}

func normalizeKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			out = append(out, k)
		}
	}
	return out
}
