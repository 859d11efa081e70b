package db

// Course is one catalog entry with its parsed prerequisite trees.
// HardTree and CoreqTree hold the JSON encodings of the boolean trees.
type Course struct {
	CourseIndex string
	Name        *string
	Description *string
	RawText     *string
	HardTree    []byte
	CoreqTree   []byte
	Flags       []string
	Notes       []string
}

type EdgeKind string

const (
	EdgeKindHard  EdgeKind = "hard"
	EdgeKindCoreq EdgeKind = "coreq"
)

type Edge struct {
	SourceIndex string
	TargetIndex string
	Kind        EdgeKind
}
