package step

// Kind classifies a lesson step by what the student must do to pass it.
type Kind int

const (
	// KindObservation is a read-and-continue step ([NEXT]).
	KindObservation Kind = iota
	// KindQuestion is a free-text question ([TEXT]).
	KindQuestion
	// KindCodeTask is a coding task validated against the editor buffer ([CODE]).
	KindCodeTask
	// KindChoice is a multiple-choice quiz step ([CHOICE]).
	KindChoice
	// KindUntagged is a coding task stored with no tag at all. Behaves like
	// KindCodeTask but serializes back to the bare body.
	KindUntagged
)

// String returns the kind name for display and logging.
func (k Kind) String() string {
	switch k {
	case KindObservation:
		return "observation"
	case KindQuestion:
		return "question"
	case KindCodeTask:
		return "code"
	case KindChoice:
		return "choice"
	case KindUntagged:
		return "untagged-code"
	}
	return "unknown"
}

// RequiresInput reports whether the step kind refuses advancement on an
// empty input field.
func (k Kind) RequiresInput() bool {
	return k == KindQuestion || k == KindChoice
}

// Step is one parsed lesson instruction.
type Step struct {
	Kind Kind
	// Body is the instruction text with the tag stripped and whitespace
	// trimmed. For KindChoice this is the full pipe-delimited body;
	// the structured payload is in Choice.
	Body string
	// Choice holds the parsed multiple-choice payload. Nil unless
	// Kind == KindChoice.
	Choice *Choice
}

// Option is one selectable answer in a choice step.
type Option struct {
	Letter string
	Text   string
}

// Choice is the structured payload of a [CHOICE] step.
type Choice struct {
	Question string
	Options  []Option
	// Answer is the correct option's letter. Compared with exact string
	// equality, no normalization.
	Answer string
}
