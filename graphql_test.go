package graphql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumengraph/graphql/schema"
)

func starWarsSchema() *Schema {
	episode := &schema.Enum{Name: "Episode", Values: []string{"NEWHOPE", "EMPIRE", "JEDI"}}

	character := schema.NewInterface("Character", map[string]*FieldDef{
		"id":   {Name: "id", Type: &schema.NonNull{OfType: schema.StringType}},
		"name": {Name: "name", Type: schema.StringType},
	})
	human := schema.NewObject("Human", map[string]*FieldDef{
		"id":         {Name: "id", Type: &schema.NonNull{OfType: schema.StringType}},
		"name":       {Name: "name", Type: schema.StringType},
		"homePlanet": {Name: "homePlanet", Type: schema.StringType},
	}, character)
	droid := schema.NewObject("Droid", map[string]*FieldDef{
		"id":              {Name: "id", Type: &schema.NonNull{OfType: schema.StringType}},
		"name":            {Name: "name", Type: schema.StringType},
		"primaryFunction": {Name: "primaryFunction", Type: schema.StringType},
	}, character)

	query := schema.NewObject("Query", map[string]*FieldDef{
		"hero": {
			Name: "hero",
			Type: character,
			Args: []*InputValue{{Name: "episode", Type: episode}},
		},
		"human": {
			Name: "human",
			Type: human,
			Args: []*InputValue{{Name: "id", Type: &schema.NonNull{OfType: schema.StringType}}},
		},
		"droid": {
			Name: "droid",
			Type: droid,
			Args: []*InputValue{{Name: "id", Type: &schema.NonNull{OfType: schema.StringType}}},
		},
	})
	return NewSchema(SchemaConfig{Query: query})
}

func TestParseAndValidate(t *testing.T) {
	s := starWarsSchema()
	doc, err := Parse(`
		query HeroNameAndFriends($episode: Episode) {
			hero(episode: $episode) {
				name
				... on Droid { primaryFunction }
				...humanFields
			}
		}
		fragment humanFields on Human { homePlanet }
	`)
	require.NoError(t, err)
	assert.Empty(t, Validate(s, doc))
}

func TestParse_SyntaxErrorPosition(t *testing.T) {
	_, err := Parse("{ hero { name }")
	require.Error(t, err)
	gqlErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, "Syntax Error GraphQL (1:16) Expected Name, found EOF", gqlErr.Error())
}

func TestValidate_ReportsAcrossRules(t *testing.T) {
	s := starWarsSchema()
	doc, err := Parse(`
		query Q($id: String) {
			hero { homePlanet }
			human(id: $id) { name }
			...undef
		}
	`)
	require.NoError(t, err)

	errs := Validate(s, doc)
	require.NotEmpty(t, errs)

	var msgs []string
	for _, e := range errs {
		msgs = append(msgs, e.Message)
	}
	assert.Contains(t, msgs, `Cannot query field "homePlanet" on type "Character".`)
	assert.Contains(t, msgs, `Unknown fragment "undef".`)
	assert.Contains(t, msgs, `Variable "$id" of type "String" used in position expecting type "String!".`)
}

func TestLexer_RoundTripThroughFacade(t *testing.T) {
	lex := NewLexer(NewSource("query { hero }"))

	var kinds []TokenKind
	for {
		tok, err := lex.NextToken()
		require.NoError(t, err)
		kinds = append(kinds, tok.Kind)
		if tok.Kind == EOF {
			break
		}
	}
	assert.Equal(t, []TokenKind{NAME, BRACE_L, NAME, BRACE_R, EOF}, kinds)
}
