// Package emit turns a parsed schema document into an ordered set of named
// TypeScript declarations: it resolves references, merges composition,
// synthesizes nested anonymous shapes via a LIFO worklist, and hands the
// assembled text to the formatting collaborator.
package emit

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/dtsgen/dtsgen/internal/diagnostic"
	"github.com/dtsgen/dtsgen/internal/format"
	"github.com/dtsgen/dtsgen/internal/ident"
	"github.com/dtsgen/dtsgen/internal/resolve"
	"github.com/dtsgen/dtsgen/internal/schema"
)

// DefaultContainerName opens the enclosing declaration container when the
// configuration does not override it.
const DefaultContainerName = "declare namespace Definitions {"

// Config controls one resolution pass.
type Config struct {
	// CamelCase converts every emitted identifier and field key from
	// separator-delimited form to camelCase.
	CamelCase bool

	// ContainerName is the text used to open the enclosing declaration
	// container. Empty selects DefaultContainerName.
	ContainerName string
}

// Result is the outcome of a successful pass.
type Result struct {
	// Output is the formatted declaration text.
	Output string

	// Diagnostics are the non-fatal findings collected during the pass.
	Diagnostics []diagnostic.Diagnostic
}

// entry is one (identifier, schema node) pair awaiting synthesis.
type entry struct {
	id   string
	node *schema.Node
}

// pass carries the mutable state of one resolution pass. It is created
// fresh per Generate call and never shared.
type pass struct {
	table resolve.Table
	cfg   Config
	log   *zap.Logger
	diags *diagnostic.Collector

	// work is a stack: entries are pushed and popped at the tail. The
	// traversal order this produces is observable in the output and must
	// not be replaced with a FIFO queue.
	work []entry

	// seen guards each identifier against being processed twice and
	// detects candidate collisions.
	seen map[string]bool

	out []string
}

// Generate runs a full resolution pass over doc and formats the result
// through svc. The pass is fail-fast: the first unresolved reference or
// name collision aborts with no partial output.
func Generate(doc *schema.Document, cfg Config, svc format.Service, log *zap.Logger) (*Result, error) {
	if log == nil {
		log = zap.NewNop()
	}

	table, err := resolve.NewTable(doc.Definitions)
	if err != nil {
		return nil, err
	}

	p := &pass{
		table: table,
		cfg:   cfg,
		log:   log,
		diags: diagnostic.NewCollector(false),
		seen:  make(map[string]bool),
	}

	// Seed with the object-shaped top-level definitions, ascending by
	// identifier. Root-level sequence and primitive aliases have no
	// representation as root declarations and are dropped.
	var seed []entry
	for id, node := range table {
		if node == nil || node.Type != "object" {
			kind := "<none>"
			if node != nil && node.Type != "" {
				kind = node.Type
			}
			p.diags.Warn(diagnostic.CategoryRootIgnored, id,
				"top-level definition of kind "+kind+" is not representable as a root declaration")
			continue
		}
		seed = append(seed, entry{id: id, node: node})
	}
	sort.Slice(seed, func(i, j int) bool { return seed[i].id < seed[j].id })
	for _, e := range seed {
		p.seen[e.id] = true
	}
	p.work = seed
	log.Debug("seeded worklist", zap.Int("definitions", len(table)), zap.Int("seeded", len(seed)))

	containerName := cfg.ContainerName
	if containerName == "" {
		containerName = DefaultContainerName
	}
	p.emit(containerName)

	// Drain from the stack end: the lexicographically last seed entry is
	// processed first, and nested entries discovered along the way drain
	// before the builder returns to older seed entries.
	for len(p.work) > 0 {
		e := p.work[len(p.work)-1]
		p.work = p.work[:len(p.work)-1]
		if err := p.buildDecl(e.id, e.node); err != nil {
			return nil, err
		}
	}

	p.emit("}")

	src := strings.Join(p.out, "\n") + "\n"
	formatted, err := svc.Format(src, format.Options{
		Dialect: format.DialectTypeScript,
		Quote:   format.QuoteDouble,
	})
	if err != nil {
		return nil, errors.Wrap(err, "formatting declarations")
	}
	return &Result{Output: formatted, Diagnostics: p.diags.Diagnostics()}, nil
}

// push registers a nested shape for later synthesis under id. A candidate
// identifier colliding with anything already processed or pending is a
// hard error; silently interleaving two declarations under one name would
// corrupt the output.
func (p *pass) push(id string, node *schema.Node) error {
	if p.seen[id] {
		return errors.Mark(
			errors.Newf("synthesized identifier %q collides with an existing declaration", id),
			resolve.ErrNameCollision)
	}
	p.seen[id] = true
	p.work = append(p.work, entry{id: id, node: node})
	p.log.Debug("registered nested shape", zap.String("identifier", id))
	return nil
}

func (p *pass) emit(line string) {
	p.out = append(p.out, line)
}

// displayIdent applies the camelCase conversion when configured. The
// conversion is idempotent, so identifiers derived from already-converted
// parts survive a second application unchanged.
func (p *pass) displayIdent(s string) string {
	if p.cfg.CamelCase {
		return ident.CamelCase(s)
	}
	return s
}
