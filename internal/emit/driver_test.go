package emit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"golang.org/x/tools/txtar"

	"github.com/dtsgen/dtsgen/internal/diagnostic"
	"github.com/dtsgen/dtsgen/internal/format"
	"github.com/dtsgen/dtsgen/internal/resolve"
	"github.com/dtsgen/dtsgen/internal/schema"
)

// fakeFormatter records the requested options and passes the source
// through untouched.
type fakeFormatter struct {
	opts  format.Options
	calls int
}

func (f *fakeFormatter) Format(src string, opts format.Options) (string, error) {
	f.opts = opts
	f.calls++
	return src, nil
}

func declOrder(output string) []string {
	var order []string
	for _, line := range strings.Split(output, "\n") {
		trimmed := strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(trimmed, "export interface "); ok {
			name, _, _ := strings.Cut(rest, " ")
			order = append(order, name)
		}
	}
	return order
}

func objectOf(fields map[string]*schema.Node) *schema.Node {
	return &schema.Node{Type: "object", Properties: fields}
}

func TestGenerate_SeedOrderDrainsAsStack(t *testing.T) {
	doc := &schema.Document{Definitions: map[string]*schema.Node{
		"A": objectOf(map[string]*schema.Node{"x": {Type: "string"}}),
		"B": objectOf(map[string]*schema.Node{"x": {Type: "string"}}),
		"C": objectOf(map[string]*schema.Node{"x": {Type: "string"}}),
	}}

	res, err := Generate(doc, Config{}, &fakeFormatter{}, nil)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	got := declOrder(res.Output)
	want := []string{"C", "B", "A"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("declaration order = %v, want %v", got, want)
	}
}

func TestGenerate_NestedDrainsBeforeOlderSeeds(t *testing.T) {
	doc := &schema.Document{Definitions: map[string]*schema.Node{
		"Alpha": objectOf(map[string]*schema.Node{"x": {Type: "string"}}),
		"Beta": objectOf(map[string]*schema.Node{
			"x": {Properties: map[string]*schema.Node{"y": {Type: "string"}}},
		}),
	}}

	res, err := Generate(doc, Config{}, &fakeFormatter{}, nil)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	got := declOrder(res.Output)
	want := []string{"Beta", "BetaX", "Alpha"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("declaration order = %v, want %v", got, want)
	}
}

func TestGenerate_ContainerLines(t *testing.T) {
	doc := &schema.Document{Definitions: map[string]*schema.Node{
		"A": objectOf(map[string]*schema.Node{"x": {Type: "string"}}),
	}}

	res, err := Generate(doc, Config{}, &fakeFormatter{}, nil)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(res.Output, "\n"), "\n")
	if lines[0] != DefaultContainerName {
		t.Errorf("first line = %q, want %q", lines[0], DefaultContainerName)
	}
	if lines[len(lines)-1] != "}" {
		t.Errorf("last line = %q, want }", lines[len(lines)-1])
	}

	res, err = Generate(doc, Config{ContainerName: "declare namespace API {"}, &fakeFormatter{}, nil)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if !strings.HasPrefix(res.Output, "declare namespace API {") {
		t.Errorf("container override not honored: %q", res.Output)
	}
}

func TestGenerate_FormatterContract(t *testing.T) {
	doc := &schema.Document{Definitions: map[string]*schema.Node{
		"A": objectOf(nil),
	}}

	fake := &fakeFormatter{}
	if _, err := Generate(doc, Config{}, fake, nil); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if fake.calls != 1 {
		t.Fatalf("formatter called %d times, want 1", fake.calls)
	}
	if fake.opts.Dialect != format.DialectTypeScript {
		t.Errorf("dialect = %q, want typescript", fake.opts.Dialect)
	}
	if fake.opts.Quote != format.QuoteDouble {
		t.Errorf("quote = %q, want double", fake.opts.Quote)
	}
}

func TestGenerate_RootNonObjectIgnored(t *testing.T) {
	doc := &schema.Document{Definitions: map[string]*schema.Node{
		"Money": {Type: "string"},
		"List":  {Type: "array", Items: &schema.Node{Type: "string"}},
		"Real":  objectOf(map[string]*schema.Node{"x": {Type: "string"}}),
	}}

	res, err := Generate(doc, Config{}, &fakeFormatter{}, nil)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	got := declOrder(res.Output)
	if len(got) != 1 || got[0] != "Real" {
		t.Errorf("declarations = %v, want [Real]", got)
	}

	ignored := 0
	for _, d := range res.Diagnostics {
		if d.Category == diagnostic.CategoryRootIgnored {
			ignored++
		}
	}
	if ignored != 2 {
		t.Errorf("root-ignored diagnostics = %d, want 2", ignored)
	}
}

func TestGenerate_NameCollisionFails(t *testing.T) {
	doc := &schema.Document{Definitions: map[string]*schema.Node{
		"Order.Item": objectOf(nil),
		"OrderItem":  objectOf(nil),
	}}

	res, err := Generate(doc, Config{}, &fakeFormatter{}, nil)
	if err == nil {
		t.Fatal("expected collision error")
	}
	if !errors.Is(err, resolve.ErrNameCollision) {
		t.Errorf("error should be marked ErrNameCollision, got %v", err)
	}
	if res != nil {
		t.Error("no partial output on failure")
	}
}

func TestGenerate_UnresolvedReferenceFails(t *testing.T) {
	doc := &schema.Document{Definitions: map[string]*schema.Node{
		"A": objectOf(map[string]*schema.Node{"x": {Ref: "#/definitions/Ghost"}}),
	}}

	res, err := Generate(doc, Config{}, &fakeFormatter{}, nil)
	if err == nil {
		t.Fatal("expected unresolved reference error")
	}
	if !errors.Is(err, resolve.ErrUnresolvedReference) {
		t.Errorf("error should be marked ErrUnresolvedReference, got %v", err)
	}
	if res != nil {
		t.Error("no partial output on failure")
	}
}

func TestGenerate_Rerun(t *testing.T) {
	doc := &schema.Document{Definitions: map[string]*schema.Node{
		"A": objectOf(map[string]*schema.Node{"x": {Type: "string"}, "y": {Type: "integer"}}),
		"B": objectOf(map[string]*schema.Node{"z": {Type: "boolean"}}),
	}}

	first, err := Generate(doc, Config{}, &fakeFormatter{}, nil)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	second, err := Generate(doc, Config{}, &fakeFormatter{}, nil)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if first.Output != second.Output {
		t.Error("re-running over the same document must produce identical output")
	}
}

func TestGenerate_Golden(t *testing.T) {
	archives, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	if err != nil {
		t.Fatal(err)
	}
	if len(archives) == 0 {
		t.Fatal("no golden archives in testdata")
	}

	for _, path := range archives {
		t.Run(filepath.Base(path), func(t *testing.T) {
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			arc := txtar.Parse(data)

			var docData, expected []byte
			for _, f := range arc.Files {
				switch f.Name {
				case "schema.json":
					docData = f.Data
				case "expected.d.ts":
					expected = f.Data
				}
			}
			if docData == nil || expected == nil {
				t.Fatalf("%s must contain schema.json and expected.d.ts", path)
			}

			doc, err := schema.ParseJSON(docData)
			if err != nil {
				t.Fatalf("parsing archive document: %v", err)
			}
			res, err := Generate(doc, Config{}, format.Normalizer{}, nil)
			if err != nil {
				t.Fatalf("Generate() error: %v", err)
			}
			if res.Output != string(expected) {
				t.Errorf("golden mismatch:\n--- got ---\n%s\n--- want ---\n%s", res.Output, expected)
			}
		})
	}
}
