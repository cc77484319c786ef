package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ruleCase runs a single rule over a document and compares the reported
// messages. An empty want means the document passes the rule.
type ruleCase struct {
	name  string
	query string
	want  []string
}

func runRule(t *testing.T, factory RuleFactory, cases []ruleCase) {
	t.Helper()
	s := testSchema()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := Validate(s, parseDoc(t, tc.query), []RuleFactory{factory})
			assert.Equal(t, tc.want, messages(errs))
		})
	}
}

func TestUniqueOperationNames(t *testing.T) {
	runRule(t, NewUniqueOperationNames, []ruleCase{
		{
			name:  "distinct names",
			query: `query A { dog { name } } query B { cat { meows } }`,
		},
		{
			name:  "duplicate name",
			query: `query A { dog { name } } query A { cat { meows } }`,
			want:  []string{`There can only be one operation named "A".`},
		},
	})
}

func TestLoneAnonymousOperation(t *testing.T) {
	runRule(t, NewLoneAnonymousOperation, []ruleCase{
		{
			name:  "single anonymous operation",
			query: `{ dog { name } }`,
		},
		{
			name:  "anonymous beside named",
			query: `{ dog { name } } query B { cat { meows } }`,
			want:  []string{`This anonymous operation must be the only defined operation.`},
		},
	})
}

func TestKnownTypeNames(t *testing.T) {
	runRule(t, NewKnownTypeNames, []ruleCase{
		{
			name:  "known types",
			query: `query Q($c: DogCommand) { pet { ... on Dog { name } } }`,
		},
		{
			name:  "unknown type condition",
			query: `{ pet { ... on Beast { name } } }`,
			want:  []string{`Unknown type "Beast".`},
		},
		{
			name:  "unknown variable type",
			query: `query Q($c: Peanut) { dog { name } }`,
			want:  []string{`Unknown type "Peanut".`},
		},
	})
}

func TestFragmentsOnCompositeTypes(t *testing.T) {
	runRule(t, NewFragmentsOnCompositeTypes, []ruleCase{
		{
			name:  "composite condition",
			query: `fragment f on Pet { name } { pet { ...f } }`,
		},
		{
			name:  "scalar condition on definition",
			query: `fragment f on Boolean { name } { dog { ...f } }`,
			want:  []string{`Fragment "f" cannot condition on non composite type "Boolean".`},
		},
		{
			name:  "scalar condition on inline fragment",
			query: `{ dog { ... on Boolean { name } } }`,
			want:  []string{`Fragment cannot condition on non composite type "Boolean".`},
		},
	})
}

func TestVariablesAreInputTypes(t *testing.T) {
	runRule(t, NewVariablesAreInputTypes, []ruleCase{
		{
			name:  "scalar, enum and input object variables",
			query: `query Q($a: Boolean, $b: DogCommand, $c: ComplexInput) { dog { name } }`,
		},
		{
			name:  "object variable",
			query: `query Q($d: Dog) { dog { name } }`,
			want:  []string{`Variable "$d" cannot be non-input type "Dog".`},
		},
		{
			name:  "wrapped object variable",
			query: `query Q($d: [Dog!]!) { dog { name } }`,
			want:  []string{`Variable "$d" cannot be non-input type "[Dog!]!".`},
		},
	})
}

func TestScalarLeafs(t *testing.T) {
	runRule(t, NewScalarLeafs, []ruleCase{
		{
			name:  "scalar without and composite with sub selection",
			query: `{ dog { name } }`,
		},
		{
			name:  "composite without sub selection",
			query: `{ dog }`,
			want:  []string{`Field "dog" of type "Dog" must have a sub selection.`},
		},
		{
			name:  "scalar with sub selection",
			query: `{ dog { name { surname } } }`,
			want:  []string{`Field "name" of type "String" must not have a sub selection.`},
		},
	})
}

func TestFieldsOnCorrectType(t *testing.T) {
	runRule(t, NewFieldsOnCorrectType, []ruleCase{
		{
			name:  "defined fields and __typename",
			query: `{ dog { name __typename } }`,
		},
		{
			name:  "undefined field",
			query: `{ dog { meowVolume } }`,
			want:  []string{`Cannot query field "meowVolume" on type "Dog".`},
		},
		{
			name:  "field directly on union",
			query: `{ catOrDog { name } }`,
			want:  []string{`Cannot query field "name" on type "CatOrDog".`},
		},
	})
}

func TestUniqueFragmentNames(t *testing.T) {
	runRule(t, NewUniqueFragmentNames, []ruleCase{
		{
			name:  "distinct names",
			query: `fragment a on Dog { name } fragment b on Dog { barks } { dog { ...a ...b } }`,
		},
		{
			name:  "duplicate name",
			query: `fragment a on Dog { name } fragment a on Cat { meows } { dog { ...a } }`,
			want:  []string{`There can only be one fragment named "a".`},
		},
	})
}

func TestKnownFragmentNames(t *testing.T) {
	runRule(t, NewKnownFragmentNames, []ruleCase{
		{
			name:  "defined fragment",
			query: `{ dog { ...dogFields } } fragment dogFields on Dog { name }`,
		},
		{
			name:  "undefined fragment",
			query: `{ dog { ...undef } }`,
			want:  []string{`Unknown fragment "undef".`},
		},
	})
}

func TestNoUnusedFragments(t *testing.T) {
	runRule(t, NewNoUnusedFragments, []ruleCase{
		{
			name: "fragment reached through another fragment",
			query: `
				{ dog { ...outer } }
				fragment outer on Dog { ...inner }
				fragment inner on Dog { name }
			`,
		},
		{
			name:  "unused fragment",
			query: `{ dog { name } } fragment unused on Dog { name }`,
			want:  []string{`Fragment "unused" is never used.`},
		},
	})
}

func TestPossibleFragmentSpreads(t *testing.T) {
	runRule(t, NewPossibleFragmentSpreads, []ruleCase{
		{
			name:  "object spread into implemented interface",
			query: `{ pet { ... on Dog { barks } } }`,
		},
		{
			name:  "interface fragment spread into non-implementing object",
			query: `{ human { ...petFields } } fragment petFields on Pet { name }`,
			want: []string{
				`Fragment "petFields" cannot be spread here as objects of type "Human" can never be of type "Pet".`,
			},
		},
		{
			name:  "inline fragment on disjoint object",
			query: `{ dog { ... on Cat { meows } } }`,
			want: []string{
				`Fragment cannot be spread here as objects of type "Dog" can never be of type "Cat".`,
			},
		},
	})
}

func TestNoFragmentCycles(t *testing.T) {
	runRule(t, NewNoFragmentCycles, []ruleCase{
		{
			name:  "acyclic spreads",
			query: `fragment a on Dog { ...b } fragment b on Dog { name } { dog { ...a } }`,
		},
		{
			name:  "direct cycle",
			query: `fragment f on Dog { name ...f } { dog { ...f } }`,
			want:  []string{`Cannot spread fragment "f" within itself.`},
		},
	})
}

func TestNoUndefinedVariables(t *testing.T) {
	runRule(t, NewNoUndefinedVariables, []ruleCase{
		{
			name:  "all variables defined",
			query: `query Q($cmd: DogCommand!) { dog { doesKnowCommand(dogCommand: $cmd) } }`,
		},
		{
			name:  "undefined variable in named operation",
			query: `query Q($cmd: DogCommand!) { dog { doesKnowCommand(dogCommand: $other) } }`,
			want:  []string{`Variable "$other" is not defined by operation "Q".`},
		},
		{
			name:  "undefined variable in anonymous operation",
			query: `{ dog { doesKnowCommand(dogCommand: $cmd) } }`,
			want:  []string{`Variable "$cmd" is not defined.`},
		},
		{
			name: "undefined variable used inside spread fragment",
			query: `
				query Q { dog { ...needsCmd } }
				fragment needsCmd on Dog { doesKnowCommand(dogCommand: $cmd) }
			`,
			want: []string{`Variable "$cmd" is not defined by operation "Q".`},
		},
	})
}

func TestNoUnusedVariables(t *testing.T) {
	runRule(t, NewNoUnusedVariables, []ruleCase{
		{
			name: "variable used inside spread fragment",
			query: `
				query Q($cmd: DogCommand!) { dog { ...needsCmd } }
				fragment needsCmd on Dog { doesKnowCommand(dogCommand: $cmd) }
			`,
		},
		{
			name:  "unused variable",
			query: `query Q($cmd: DogCommand!) { dog { name } }`,
			want:  []string{`Variable "$cmd" is never used.`},
		},
	})
}

func TestKnownDirectives(t *testing.T) {
	runRule(t, NewKnownDirectives, []ruleCase{
		{
			name:  "built-in directives in allowed locations",
			query: `{ dog @include(if: true) { name ...f @skip(if: false) } } fragment f on Dog { barks }`,
		},
		{
			name:  "unknown directive",
			query: `{ dog @nope { name } }`,
			want:  []string{`Unknown directive "nope".`},
		},
		{
			name:  "directive in disallowed location",
			query: `query Q @include(if: true) { dog { name } }`,
			want:  []string{`Directive "include" may not be used on "operation".`},
		},
	})
}

func TestKnownArgumentNames(t *testing.T) {
	runRule(t, NewKnownArgumentNames, []ruleCase{
		{
			name:  "known field and directive arguments",
			query: `{ dog { doesKnowCommand(dogCommand: SIT) name @include(if: true) } }`,
		},
		{
			name:  "unknown field argument",
			query: `{ dog { doesKnowCommand(command: SIT) } }`,
			want:  []string{`Unknown argument "command" on field "doesKnowCommand" of type "Dog".`},
		},
		{
			name:  "unknown directive argument",
			query: `{ dog @include(unless: false) { name } }`,
			want:  []string{`Unknown argument "unless" on directive "@include".`},
		},
	})
}

func TestUniqueArgumentNames(t *testing.T) {
	runRule(t, NewUniqueArgumentNames, []ruleCase{
		{
			name:  "same argument name on sibling fields",
			query: `{ a: dog { doesKnowCommand(dogCommand: SIT) } b: dog { doesKnowCommand(dogCommand: SIT) } }`,
		},
		{
			name:  "repeated argument on one field",
			query: `{ dog { doesKnowCommand(dogCommand: SIT, dogCommand: HEEL) } }`,
			want:  []string{`There can be only one argument named "dogCommand".`},
		},
	})
}

func TestArgumentsOfCorrectType(t *testing.T) {
	runRule(t, NewArgumentsOfCorrectType, []ruleCase{
		{
			name: "valid literals",
			query: `{
				dog { doesKnowCommand(dogCommand: SIT) }
				complexArgField(complexArg: { requiredField: true, intField: 3 })
				booleanList(booleanListArg: [true, false])
			}`,
		},
		{
			name:  "int where enum expected",
			query: `{ dog { doesKnowCommand(dogCommand: 5) } }`,
			want:  []string{`Argument "dogCommand" expected type "DogCommand!" but got: 5.`},
		},
		{
			name:  "input object missing required field",
			query: `{ complexArgField(complexArg: { intField: 3 }) }`,
			want:  []string{`Argument "complexArg" expected type "ComplexInput" but got: {intField: 3}.`},
		},
		{
			name:  "list with wrong element type",
			query: `{ booleanList(booleanListArg: [true, "no"]) }`,
			want:  []string{`Argument "booleanListArg" expected type "[Boolean!]" but got: [true, "no"].`},
		},
	})
}

func TestProvidedNonNullArguments(t *testing.T) {
	runRule(t, NewProvidedNonNullArguments, []ruleCase{
		{
			name:  "required arguments provided",
			query: `{ dog { doesKnowCommand(dogCommand: SIT) name @include(if: true) } }`,
		},
		{
			name:  "missing required field argument",
			query: `{ dog { doesKnowCommand } }`,
			want: []string{
				`Field "doesKnowCommand" argument "dogCommand" of type "DogCommand!" is required but not provided.`,
			},
		},
		{
			name:  "missing required directive argument",
			query: `{ dog @include { name } }`,
			want: []string{
				`Directive "@include" argument "if" of type "Boolean!" is required but not provided.`,
			},
		},
	})
}

func TestDefaultValuesOfCorrectType(t *testing.T) {
	runRule(t, NewDefaultValuesOfCorrectType, []ruleCase{
		{
			name:  "valid defaults",
			query: `query Q($a: DogCommand = SIT, $b: [Boolean!] = [true]) { dog { name } }`,
		},
		{
			name:  "default on required variable",
			query: `query Q($a: Boolean! = true) { dog { name } }`,
			want: []string{
				`Variable "$a" of type "Boolean!" is required and will never use the default value. Perhaps you meant to use type "Boolean".`,
			},
		},
		{
			name:  "mistyped default",
			query: `query Q($a: Int = "str") { dog { name } }`,
			want:  []string{`Variable "$a" of type "Int" has invalid default value: "str".`},
		},
	})
}

func TestVariablesInAllowedPosition(t *testing.T) {
	runRule(t, NewVariablesInAllowedPosition, []ruleCase{
		{
			name:  "non-null variable in non-null position",
			query: `query Q($b: Boolean!) { dog @include(if: $b) { name } }`,
		},
		{
			name:  "nullable variable in non-null position",
			query: `query Q($b: Boolean) { dog @include(if: $b) { name } }`,
			want: []string{
				`Variable "$b" of type "Boolean" used in position expecting type "Boolean!".`,
			},
		},
		{
			name: "misplaced variable inside spread fragment",
			query: `
				query Q($b: Boolean) { dog { ...f } }
				fragment f on Dog { name @include(if: $b) }
			`,
			want: []string{
				`Variable "$b" of type "Boolean" used in position expecting type "Boolean!".`,
			},
		},
	})
}

func TestOverlappingFieldsCanBeMerged(t *testing.T) {
	runRule(t, NewOverlappingFieldsCanBeMerged, []ruleCase{
		{
			name:  "identical fields across type conditions",
			query: `{ catOrDog { ... on Cat { name } ... on Dog { name } } }`,
		},
		{
			name:  "alias hiding a different field",
			query: `{ dog { name: nickname name } }`,
			want: []string{
				`Fields "name" conflict because "nickname" and "name" are different fields.`,
			},
		},
		{
			name:  "same field with differing arguments",
			query: `{ dog { doesKnowCommand(dogCommand: SIT) doesKnowCommand(dogCommand: HEEL) } }`,
			want: []string{
				`Fields "doesKnowCommand" conflict because they have differing arguments.`,
			},
		},
		{
			name:  "same name with differing return types",
			query: `{ catOrDog { ... on Dog { nickname } ... on Cat { nickname } } }`,
			want: []string{
				`Fields "nickname" conflict because they return differing types "String" and "Int".`,
			},
		},
		{
			name: "conflict through a fragment spread",
			query: `
				{ dog { name: nickname ...nameFrag } }
				fragment nameFrag on Dog { name }
			`,
			want: []string{
				`Fields "name" conflict because "nickname" and "name" are different fields.`,
			},
		},
	})
}
