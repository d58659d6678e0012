package snapshot

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cuejson "cuelang.org/go/encoding/json"

	"github.com/fiscolab/fisco/internal/dataset"
)

// Source file names. Overriding directories must use the same names the
// original snapshot capture used.
const (
	SourceEvolution = "dados_evolucao_divida.json"
	SourceHolders   = "dados_detentores_divida.json"
	SourceSpending  = "dados_gastos_comparativo.json"
)

// SourceNames lists all snapshot sources in load order.
var SourceNames = []string{SourceEvolution, SourceHolders, SourceSpending}

//go:embed schema.cue
var schemaCUE string

//go:embed data
var embeddedData embed.FS

// FailureKind categorizes load failures.
type FailureKind string

const (
	// FailureNotFound indicates a source file is missing.
	FailureNotFound FailureKind = "NOT_FOUND"

	// FailureMalformed indicates a source exists but its shape does not
	// match the expected schema (missing field, wrong type, out-of-range
	// value, duplicate key).
	FailureMalformed FailureKind = "MALFORMED"
)

// LoadFailure reports why a snapshot source could not be loaded.
// A failed source fails the whole load; there is no partial table set.
type LoadFailure struct {
	Kind   FailureKind
	Source string
	Err    error
}

// Error implements the error interface.
func (e *LoadFailure) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Source, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Source)
}

func (e *LoadFailure) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a LoadFailure for a missing source.
func IsNotFound(err error) bool {
	var lf *LoadFailure
	return errors.As(err, &lf) && lf.Kind == FailureNotFound
}

// IsMalformed reports whether err is a LoadFailure for a malformed source.
func IsMalformed(err error) bool {
	var lf *LoadFailure
	return errors.As(err, &lf) && lf.Kind == FailureMalformed
}

// Wire formats, field names as captured from the official portals.
type evolutionRow struct {
	Ano           int     `json:"ano"`
	ValorTrilhoes float64 `json:"valor_trilhoes"`
}

type holderRow struct {
	Credor      string  `json:"credor"`
	Porcentagem float64 `json:"porcentagem"`
}

type spendingRow struct {
	Funcao  string  `json:"funcao"`
	Ano     int     `json:"ano"`
	ValorBi float64 `json:"valor_bi"`
}

// DefaultFS returns the snapshot sources embedded in the binary.
func DefaultFS() fs.FS {
	sub, err := fs.Sub(embeddedData, "data")
	if err != nil {
		// The embed directive guarantees the directory exists.
		panic(err)
	}
	return sub
}

// Load reads, validates and decodes all three snapshot sources from fsys.
// If any source fails the whole load fails with a *LoadFailure for the
// first failing source.
func Load(fsys fs.FS) (*dataset.Tables, error) {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compiling snapshot schema: %w", err)
	}

	var evolution []evolutionRow
	if err := loadSource(fsys, schema, SourceEvolution, "#Evolucao", &evolution); err != nil {
		return nil, err
	}
	var holders []holderRow
	if err := loadSource(fsys, schema, SourceHolders, "#Detentores", &holders); err != nil {
		return nil, err
	}
	var spending []spendingRow
	if err := loadSource(fsys, schema, SourceSpending, "#Gastos", &spending); err != nil {
		return nil, err
	}

	// Key uniqueness is part of the expected shape but is easier to state
	// here than in CUE.
	if err := checkUnique(evolution, holders, spending); err != nil {
		return nil, err
	}

	evolutionRecs := make([]dataset.EvolutionRecord, len(evolution))
	for i, r := range evolution {
		evolutionRecs[i] = dataset.EvolutionRecord{Year: r.Ano, StockTrillions: r.ValorTrilhoes}
	}
	holderRecs := make([]dataset.HolderRecord, len(holders))
	for i, r := range holders {
		holderRecs[i] = dataset.HolderRecord{Creditor: r.Credor, SharePercent: r.Porcentagem}
	}
	spendingRecs := make([]dataset.SpendingRecord, len(spending))
	for i, r := range spending {
		spendingRecs[i] = dataset.SpendingRecord{Function: r.Funcao, Year: r.Ano, ValueBillions: r.ValorBi}
	}

	return dataset.New(evolutionRecs, holderRecs, spendingRecs), nil
}

// LoadDir loads the snapshot sources from dir, or from the embedded
// defaults when dir is empty.
func LoadDir(dir string) (*dataset.Tables, error) {
	if dir == "" {
		return Load(DefaultFS())
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, &LoadFailure{Kind: FailureNotFound, Source: dir, Err: fmt.Errorf("snapshot directory not found")}
	}
	return Load(os.DirFS(dir))
}

// loadSource reads one source file, validates it against the named schema
// definition and decodes it into out.
func loadSource(fsys fs.FS, schema cue.Value, source, definition string, out any) error {
	data, err := fs.ReadFile(fsys, source)
	if err != nil {
		return &LoadFailure{Kind: FailureNotFound, Source: source, Err: err}
	}

	expr, err := cuejson.Extract(source, data)
	if err != nil {
		return &LoadFailure{Kind: FailureMalformed, Source: source, Err: err}
	}
	value := schema.Context().BuildExpr(expr)
	if err := value.Err(); err != nil {
		return &LoadFailure{Kind: FailureMalformed, Source: source, Err: err}
	}

	def := schema.LookupPath(cue.ParsePath(definition))
	if err := def.Err(); err != nil {
		return fmt.Errorf("schema definition %s: %w", definition, err)
	}
	unified := def.Unify(value)
	if err := unified.Validate(cue.Concrete(true), cue.Final()); err != nil {
		return &LoadFailure{Kind: FailureMalformed, Source: source, Err: err}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &LoadFailure{Kind: FailureMalformed, Source: source, Err: err}
	}
	return nil
}

// checkUnique enforces the per-table key constraints: unique year in the
// evolution table, unique creditor in the holder table, unique
// (function, year) in the spending table.
func checkUnique(evolution []evolutionRow, holders []holderRow, spending []spendingRow) error {
	years := make(map[int]bool)
	for _, r := range evolution {
		if years[r.Ano] {
			return &LoadFailure{
				Kind:   FailureMalformed,
				Source: SourceEvolution,
				Err:    fmt.Errorf("duplicate year %d", r.Ano),
			}
		}
		years[r.Ano] = true
	}

	creditors := make(map[string]bool)
	for _, r := range holders {
		if creditors[r.Credor] {
			return &LoadFailure{
				Kind:   FailureMalformed,
				Source: SourceHolders,
				Err:    fmt.Errorf("duplicate creditor %q", r.Credor),
			}
		}
		creditors[r.Credor] = true
	}

	type key struct {
		funcao string
		ano    int
	}
	pairs := make(map[key]bool)
	for _, r := range spending {
		k := key{r.Funcao, r.Ano}
		if pairs[k] {
			return &LoadFailure{
				Kind:   FailureMalformed,
				Source: SourceSpending,
				Err:    fmt.Errorf("duplicate record for %q in %d", r.Funcao, r.Ano),
			}
		}
		pairs[k] = true
	}
	return nil
}

// SourceStatus is the validation outcome for one snapshot source.
type SourceStatus struct {
	Source string `json:"source"`
	OK     bool   `json:"ok"`
	Error  string `json:"error,omitempty"`
}

// Verify checks every source independently and reports all failures,
// unlike Load which stops at the first. Used by the validate command.
func Verify(fsys fs.FS) []SourceStatus {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))

	definitions := map[string]string{
		SourceEvolution: "#Evolucao",
		SourceHolders:   "#Detentores",
		SourceSpending:  "#Gastos",
	}

	statuses := make([]SourceStatus, 0, len(SourceNames))
	for _, source := range SourceNames {
		status := SourceStatus{Source: source, OK: true}
		var out []map[string]any
		if err := loadSource(fsys, schema, source, definitions[source], &out); err != nil {
			status.OK = false
			status.Error = err.Error()
		}
		statuses = append(statuses, status)
	}
	return statuses
}
