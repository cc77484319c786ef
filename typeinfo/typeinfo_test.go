package typeinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumengraph/graphql/ast"
	"github.com/lumengraph/graphql/parser"
	"github.com/lumengraph/graphql/schema"
	"github.com/lumengraph/graphql/source"
	"github.com/lumengraph/graphql/visitor"
)

func testSchema() *schema.Schema {
	pet := schema.NewInterface("Pet", map[string]*schema.FieldDef{
		"name": {Name: "name", Type: schema.StringType},
	})
	dog := schema.NewObject("Dog", map[string]*schema.FieldDef{
		"name": {Name: "name", Type: schema.StringType},
		"barkVolume": {
			Name: "barkVolume",
			Type: schema.IntType,
		},
	}, pet)
	query := schema.NewObject("Query", map[string]*schema.FieldDef{
		"pet": {Name: "pet", Type: pet},
		"dog": {Name: "dog", Type: dog},
		"petsByNames": {
			Name: "petsByNames",
			Type: &schema.List{OfType: pet},
			Args: []*schema.InputValue{
				{Name: "names", Type: &schema.List{OfType: schema.StringType}},
			},
		},
	})
	return schema.New(schema.Config{Query: query, Types: []schema.Named{dog}})
}

// syncVisitor drives a TypeInfo the way the validator does and records
// observations per field name.
type syncVisitor struct {
	ti       *TypeInfo
	onField  func(f *ast.Field, ti *TypeInfo)
	maxDepth int
}

func (v *syncVisitor) Enter(node ast.Node, key string, parent ast.Node, path []string, ancestors []ast.Node) bool {
	v.ti.Enter(node)
	if d := v.ti.Depth(); d > v.maxDepth {
		v.maxDepth = d
	}
	if f, ok := node.(*ast.Field); ok && v.onField != nil {
		v.onField(f, v.ti)
	}
	return true
}

func (v *syncVisitor) Leave(node ast.Node, key string, parent ast.Node, path []string, ancestors []ast.Node) {
	v.ti.Leave(node)
}

func TestTypeInfo_BalancedWalkLeavesStacksEmpty(t *testing.T) {
	doc, err := parser.Parse(source.New(`
		query Q($names: [String]) {
			pet { name }
			... on Dog { barkVolume }
			petsByNames(names: ["Rex"]) { __typename }
		}
	`))
	require.NoError(t, err)

	ti := New(testSchema())
	v := &syncVisitor{ti: ti}
	visitor.Visit(doc, v)

	assert.Equal(t, 0, ti.Depth())
	assert.Positive(t, v.maxDepth)
}

func TestTypeInfo_TracksFieldDefsAndTypes(t *testing.T) {
	doc, err := parser.Parse(source.New("{ dog { name barkVolume unknown } }"))
	require.NoError(t, err)

	got := map[string]string{}
	parents := map[string]string{}
	ti := New(testSchema())
	visitor.Visit(doc, &syncVisitor{ti: ti, onField: func(f *ast.Field, ti *TypeInfo) {
		if fd := ti.FieldDef(); fd != nil {
			got[f.Name.Value] = fd.Type.String()
		} else {
			got[f.Name.Value] = "<nil>"
		}
		if pt := ti.ParentType(); pt != nil {
			parents[f.Name.Value] = pt.String()
		}
	}})

	assert.Equal(t, map[string]string{
		"dog":        "Dog",
		"name":       "String",
		"barkVolume": "Int",
		"unknown":    "<nil>",
	}, got)
	assert.Equal(t, "Query", parents["dog"])
	assert.Equal(t, "Dog", parents["name"])
}

func TestTypeInfo_TypenameMetaField(t *testing.T) {
	doc, err := parser.Parse(source.New("{ pet { __typename } }"))
	require.NoError(t, err)

	var typenameType string
	ti := New(testSchema())
	visitor.Visit(doc, &syncVisitor{ti: ti, onField: func(f *ast.Field, ti *TypeInfo) {
		if f.Name.Value == "__typename" && ti.FieldDef() != nil {
			typenameType = ti.FieldDef().Type.String()
		}
	}})
	assert.Equal(t, "String!", typenameType)
}

func TestTypeInfo_InputTypes(t *testing.T) {
	doc, err := parser.Parse(source.New(`{ petsByNames(names: ["Rex", "Fido"]) { name } }`))
	require.NoError(t, err)

	var argType, elemType string
	ti := New(testSchema())
	rec := &inputRecorder{ti: ti, argType: &argType, elemType: &elemType}
	visitor.Visit(doc, rec)

	assert.Equal(t, "[String]", argType)
	assert.Equal(t, "String", elemType)
	assert.Equal(t, 0, ti.Depth())
}

type inputRecorder struct {
	ti                *TypeInfo
	argType, elemType *string
}

func (r *inputRecorder) Enter(node ast.Node, key string, parent ast.Node, path []string, ancestors []ast.Node) bool {
	r.ti.Enter(node)
	switch node.(type) {
	case *ast.Argument:
		if it := r.ti.InputType(); it != nil {
			*r.argType = it.String()
		}
	case *ast.StringValue:
		if it := r.ti.InputType(); it != nil {
			*r.elemType = it.String()
		}
	}
	return true
}

func (r *inputRecorder) Leave(node ast.Node, key string, parent ast.Node, path []string, ancestors []ast.Node) {
	r.ti.Leave(node)
}

func TestTypeInfo_DirectiveAndArgument(t *testing.T) {
	doc, err := parser.Parse(source.New("{ dog @include(if: true) { name } }"))
	require.NoError(t, err)

	var directiveName, argName string
	ti := New(testSchema())
	rec := &directiveRecorder{ti: ti, directiveName: &directiveName, argName: &argName}
	visitor.Visit(doc, rec)

	assert.Equal(t, "include", directiveName)
	assert.Equal(t, "if", argName)
	assert.Nil(t, ti.Directive())
	assert.Nil(t, ti.Argument())
}

type directiveRecorder struct {
	ti                     *TypeInfo
	directiveName, argName *string
}

func (r *directiveRecorder) Enter(node ast.Node, key string, parent ast.Node, path []string, ancestors []ast.Node) bool {
	r.ti.Enter(node)
	if _, ok := node.(*ast.Argument); ok {
		if d := r.ti.Directive(); d != nil {
			*r.directiveName = d.Name
		}
		if a := r.ti.Argument(); a != nil {
			*r.argName = a.Name
		}
	}
	return true
}

func (r *directiveRecorder) Leave(node ast.Node, key string, parent ast.Node, path []string, ancestors []ast.Node) {
	r.ti.Leave(node)
}
