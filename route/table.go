// Package route matches raw hash addresses against an ordered route table
// and formats addresses back from route names. It implements the resolver
// side of the navigation pipeline; it knows nothing about guards.
package route

type tableRoute struct {
	name string
	pat  Pattern
}

// Table is an ordered route table: the first pattern that matches an address
// wins, in registration order.
type Table struct {
	routes []tableRoute
}

func NewTable() *Table {
	return &Table{}
}

// Add registers a named pattern at the end of the table.
func (t *Table) Add(name, pattern string) error {
	p, err := Compile(pattern)
	if err != nil {
		return err
	}
	t.routes = append(t.routes, tableRoute{name: name, pat: p})
	return nil
}

// Names returns the registered route names in table order.
func (t *Table) Names() []string {
	out := make([]string, len(t.routes))
	for i, r := range t.routes {
		out[i] = r.name
	}
	return out
}

// Resolve matches a raw address. Query pairs parse into args; a path param
// with the same name wins over a query pair.
func (t *Table) Resolve(address string) (string, map[string]string, bool) {
	path := trimAddress(address)
	query := parseQuery(address)
	for _, r := range t.routes {
		args, ok := r.pat.Match(path)
		if !ok {
			continue
		}
		for k, v := range query {
			if _, taken := args[k]; !taken {
				if args == nil {
					args = map[string]string{}
				}
				args[k] = v
			}
		}
		return r.name, args, true
	}
	return "", nil, false
}

// Format builds an address for a route name. An unknown name formats as a
// bare "/name" path so redirects to unregistered routes still land somewhere
// visible.
func (t *Table) Format(name string, args map[string]string) string {
	for _, r := range t.routes {
		if r.name == name {
			return r.pat.Format(args)
		}
	}
	return "/" + name
}
