package types

// Source identifies which pipeline tier produced the structural data.
type Source string

// Pipeline tiers, in preference order.
const (
	// SourceRemote means the hosted completion service structured the text.
	SourceRemote Source = "remote"
	// SourceHeuristic means the local deterministic parser structured the text.
	SourceHeuristic Source = "heuristic"
	// SourceDefault means the static safe-default template was used.
	SourceDefault Source = "default"
)

// Provenance tags a ResumeData with the tier that produced it, so the
// consumer can surface a reduced-fidelity notice when appropriate.
type Provenance struct {
	Source Source `json:"source"`
}
