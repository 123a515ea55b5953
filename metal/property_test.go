package metal

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/gogpu/wgslc/wgsl"
)

// TestMappingProperties verifies that the fixed emission tables hold for
// all inputs, not just the enumerated cases.
func TestMappingProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("location indexes are emitted verbatim for all non-negative values", prop.ForAll(
		func(n int) bool {
			var sb strings.Builder
			w := newWriter(&sb, nil)
			w.writeAttribute(&wgsl.LocationAttribute{Index: n})
			return sb.String() == fmt.Sprintf("[[attribute(%d)]]", n)
		},
		gen.IntRange(0, 1<<31-1),
	))

	properties.Property("type names outside the scalar set pass through unchanged", prop.ForAll(
		func(name string) bool {
			renames := map[string]string{"i32": "int", "f32": "float", "u32": "unsigned"}
			want, ok := renames[name]
			if !ok {
				want = name
			}
			return scalarTypeName(name) == want
		},
		gen.Identifier(),
	))

	properties.Property("integer literals emit their base-10 text", prop.ForAll(
		func(v int64) bool {
			var sb strings.Builder
			w := newWriter(&sb, nil)
			w.writeExpression(&wgsl.IntLiteral{Value: v})
			return sb.String() == strconv.FormatInt(v, 10)
		},
		gen.Int64(),
	))

	properties.Property("float literals stay recognizably floating point", prop.ForAll(
		func(v float64) bool {
			var sb strings.Builder
			w := newWriter(&sb, nil)
			w.writeExpression(&wgsl.FloatLiteral{Value: v})
			return strings.ContainsAny(sb.String(), ".e")
		},
		gen.Float64Range(-1e12, 1e12),
	))

	properties.TestingRun(t)
}

// TestOrderProperties verifies that sibling order survives emission for
// arbitrary list lengths.
func TestOrderProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("struct members keep their declaration order", prop.ForAll(
		func(count int) bool {
			members := make([]*wgsl.StructMember, count)
			for i := range members {
				members[i] = &wgsl.StructMember{
					Name: fmt.Sprintf("m%d", i),
					Type: namedType("f32"),
				}
			}
			result, _, err := Compile(&wgsl.ShaderModule{
				Declarations: []wgsl.Decl{&wgsl.StructDecl{Name: "S", Members: members}},
			})
			if err != nil {
				return false
			}

			prev := -1
			for i := range members {
				pos := strings.Index(result, fmt.Sprintf("float m%d;", i))
				if pos < 0 || pos <= prev {
					return false
				}
				prev = pos
			}
			return true
		},
		gen.IntRange(1, 8),
	))

	properties.Property("call arguments keep their order", prop.ForAll(
		func(count int) bool {
			args := make([]wgsl.Expr, count)
			names := make([]string, count)
			for i := range args {
				names[i] = fmt.Sprintf("a%d", i)
				args[i] = ident(names[i])
			}

			var sb strings.Builder
			w := newWriter(&sb, nil)
			w.writeExpression(&wgsl.CallExpr{Target: namedType("foo"), Args: args})
			return sb.String() == fmt.Sprintf("foo(%s)", strings.Join(names, ", "))
		},
		gen.IntRange(1, 8),
	))

	properties.TestingRun(t)
}
