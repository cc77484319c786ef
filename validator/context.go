package validator

import (
	"github.com/lumengraph/graphql/ast"
	"github.com/lumengraph/graphql/schema"
	"github.com/lumengraph/graphql/typeinfo"
)

// Context is the read-only state shared by every rule of one Validate
// call: the schema, the document, a lazily built fragment-name index, and
// delegating views of the traversal's TypeInfo.
type Context struct {
	schema   *schema.Schema
	document *ast.Document
	typeInfo *typeinfo.TypeInfo

	fragments      map[string]*ast.FragmentDefinition
	fragmentsBuilt bool
	fragmentScans  int
}

// NewContext creates the shared context for one validation run.
func NewContext(s *schema.Schema, document *ast.Document, ti *typeinfo.TypeInfo) *Context {
	return &Context{schema: s, document: document, typeInfo: ti}
}

// Schema returns the schema under validation.
func (c *Context) Schema() *schema.Schema { return c.schema }

// Document returns the document under validation.
func (c *Context) Document() *ast.Document { return c.document }

// Fragment returns the fragment definition named name, or nil. The
// name→definition index is built by scanning the document's top-level
// definitions exactly once per context; the document is immutable for the
// duration of the validation call, so the index never changes after that.
func (c *Context) Fragment(name string) *ast.FragmentDefinition {
	if !c.fragmentsBuilt {
		c.fragments = make(map[string]*ast.FragmentDefinition)
		for _, def := range c.document.Definitions {
			if frag, ok := def.(*ast.FragmentDefinition); ok {
				c.fragments[frag.Name.Value] = frag
			}
		}
		c.fragmentsBuilt = true
		c.fragmentScans++
	}
	return c.fragments[name]
}

// FragmentScans reports how many times the fragment index has been built;
// it never exceeds one.
func (c *Context) FragmentScans() int { return c.fragmentScans }

// Type returns the output type at the current traversal position.
func (c *Context) Type() schema.Type { return c.typeInfo.Type() }

// ParentType returns the enclosing composite type at the current position.
func (c *Context) ParentType() schema.Type { return c.typeInfo.ParentType() }

// InputType returns the input type at the current position.
func (c *Context) InputType() schema.Type { return c.typeInfo.InputType() }

// FieldDef returns the field definition at the current position.
func (c *Context) FieldDef() *schema.FieldDef { return c.typeInfo.FieldDef() }

// Directive returns the directive definition at the current position.
func (c *Context) Directive() *schema.Directive { return c.typeInfo.Directive() }

// Argument returns the argument definition at the current position.
func (c *Context) Argument() *schema.InputValue { return c.typeInfo.Argument() }
