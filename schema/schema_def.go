package schema

// Schema holds the root operation types, the map of all reachable named
// types, and the directive definitions. It is immutable after New and safe
// for concurrent use.
type Schema struct {
	query        *Object
	mutation     *Object
	subscription *Object
	typeMap      map[string]Type
	directives   []*Directive
	impls        map[string][]*Object
}

// Config configures New. Query is required. Types lists named types not
// reachable from the roots (e.g. targets of interface type conditions).
// When Directives is nil the built-in @include and @skip apply.
type Config struct {
	Query        *Object
	Mutation     *Object
	Subscription *Object
	Types        []Named
	Directives   []*Directive
}

// New builds a schema, collecting every named type reachable from the root
// types and recording which objects implement each interface.
func New(config Config) *Schema {
	if config.Query == nil {
		panic("schema: must provide a query root type")
	}
	directives := config.Directives
	if directives == nil {
		directives = []*Directive{IncludeDirective, SkipDirective}
	}
	s := &Schema{
		query:        config.Query,
		mutation:     config.Mutation,
		subscription: config.Subscription,
		typeMap:      make(map[string]Type),
		directives:   directives,
		impls:        make(map[string][]*Object),
	}
	s.collect(config.Query)
	if config.Mutation != nil {
		s.collect(config.Mutation)
	}
	if config.Subscription != nil {
		s.collect(config.Subscription)
	}
	for _, t := range config.Types {
		s.collect(t)
	}
	for _, t := range s.typeMap {
		if obj, ok := t.(*Object); ok {
			for _, iface := range obj.Interfaces {
				s.impls[iface.Name] = append(s.impls[iface.Name], obj)
			}
		}
	}
	return s
}

// collect walks a type graph, registering every named type once.
func (s *Schema) collect(t Type) {
	switch tt := t.(type) {
	case *List:
		s.collect(tt.OfType)
		return
	case *NonNull:
		s.collect(tt.OfType)
		return
	}
	named, ok := t.(Named)
	if !ok {
		return
	}
	if _, seen := s.typeMap[named.TypeName()]; seen {
		return
	}
	s.typeMap[named.TypeName()] = named

	switch tt := named.(type) {
	case *Object:
		for _, iface := range tt.Interfaces {
			s.collect(iface)
		}
		for _, field := range tt.Fields() {
			s.collect(field.Type)
			for _, arg := range field.Args {
				s.collect(arg.Type)
			}
		}
	case *Interface:
		for _, field := range tt.Fields() {
			s.collect(field.Type)
			for _, arg := range field.Args {
				s.collect(arg.Type)
			}
		}
	case *Union:
		for _, obj := range tt.Types {
			s.collect(obj)
		}
	case *InputObject:
		for _, field := range tt.Fields {
			s.collect(field.Type)
		}
	}
}

// QueryType returns the query root type.
func (s *Schema) QueryType() *Object { return s.query }

// MutationType returns the mutation root type, or nil.
func (s *Schema) MutationType() *Object { return s.mutation }

// SubscriptionType returns the subscription root type, or nil.
func (s *Schema) SubscriptionType() *Object { return s.subscription }

// Type returns the named type registered under name, or nil.
func (s *Schema) Type(name string) Type {
	if t, ok := s.typeMap[name]; ok {
		return t
	}
	return nil
}

// Directives returns the schema's directive definitions.
func (s *Schema) Directives() []*Directive { return s.directives }

// Directive returns the directive definition named name, or nil.
func (s *Schema) Directive(name string) *Directive {
	for _, d := range s.directives {
		if d.Name == name {
			return d
		}
	}
	return nil
}

// PossibleTypes returns the concrete object types an abstract type may
// resolve to.
func (s *Schema) PossibleTypes(abstract Type) []*Object {
	switch t := abstract.(type) {
	case *Union:
		return t.Types
	case *Interface:
		return s.impls[t.Name]
	}
	return nil
}
