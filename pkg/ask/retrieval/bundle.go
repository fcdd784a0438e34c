package retrieval

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"testdesk-be/pkg/ask/intent"
)

// Row is one typed fact produced by a retrieval query. Sentence renders the
// row as one plain-English statement for fallback answers.
type Row interface {
	Sentence() string
}

type ScenarioRow struct {
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

func (r ScenarioRow) Sentence() string {
	return fmt.Sprintf("Scenario %q was created on %s.", r.Title, r.CreatedAt.Format("2006-01-02"))
}

type DefectCountRow struct {
	Scenario    string `json:"scenario"`
	DefectCount int64  `json:"defect_count"`
}

func (r DefectCountRow) Sentence() string {
	return fmt.Sprintf("Scenario %q has the most defects with %d recorded.", r.Scenario, r.DefectCount)
}

type OpenDefectRow struct {
	Scenario     string    `json:"scenario"`
	StepPosition int       `json:"step_position"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
}

func (r OpenDefectRow) Sentence() string {
	return fmt.Sprintf("Open defect %q on step %d of scenario %q.", r.Description, r.StepPosition, r.Scenario)
}

type FailedStepRow struct {
	Scenario    string `json:"scenario"`
	Position    int    `json:"position"`
	Description string `json:"description"`
}

func (r FailedStepRow) Sentence() string {
	return fmt.Sprintf("Step %d of scenario %q failed: %s.", r.Position, r.Scenario, r.Description)
}

type UnprovenStepRow struct {
	Scenario    string `json:"scenario"`
	Position    int    `json:"position"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

func (r UnprovenStepRow) Sentence() string {
	return fmt.Sprintf("Step %d of scenario %q (%s) has no proof file.", r.Position, r.Scenario, r.Description)
}

// Bundle is the ordered, finite result of one retrieval query.
type Bundle struct {
	Kind intent.Kind `json:"intent"`
	Rows []Row       `json:"rows"`
}

func EmptyBundle(kind intent.Kind) *Bundle {
	return &Bundle{Kind: kind, Rows: []Row{}}
}

func (b *Bundle) Len() int {
	return len(b.Rows)
}

func (b *Bundle) IsEmpty() bool {
	return len(b.Rows) == 0
}

// Serialize renders the bundle as deterministic JSON. Identical bundles
// always serialize identically, so the rendering doubles as cache-key input.
func (b *Bundle) Serialize() string {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		// Rows are plain structs; this only trips on a programming error.
		return fmt.Sprintf(`{"intent":%q,"rows":"unserializable"}`, b.Kind)
	}
	return string(data)
}

// Hash returns the SHA-256 of the serialized bundle.
func (b *Bundle) Hash() string {
	sum := sha256.Sum256([]byte(b.Serialize()))
	return hex.EncodeToString(sum[:])
}
