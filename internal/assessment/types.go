package assessment

import "fmt"

// Modality describes how a question is answered
type Modality int

const (
	ModalityScale Modality = iota
	ModalitySingleChoice
	ModalityMultiChoice
)

var modalityNames = map[Modality]string{
	ModalityScale:        "scale",
	ModalitySingleChoice: "single_choice",
	ModalityMultiChoice:  "multi_choice",
}

func (m Modality) String() string {
	if name, ok := modalityNames[m]; ok {
		return name
	}
	return fmt.Sprintf("modality(%d)", int(m))
}

func (m Modality) MarshalText() ([]byte, error) {
	name, ok := modalityNames[m]
	if !ok {
		return nil, fmt.Errorf("unknown modality %d", int(m))
	}
	return []byte(name), nil
}

func (m *Modality) UnmarshalText(text []byte) error {
	for k, name := range modalityNames {
		if name == string(text) {
			*m = k
			return nil
		}
	}
	return fmt.Errorf("unknown modality %q", string(text))
}

// Question is one immutable item of a questionnaire.
// Values maps the literal option text of a choice question to the integer it
// contributes to its categories. Scale questions contribute the rating itself.
type Question struct {
	ID       string         `json:"id"`
	Prompt   string         `json:"prompt"`
	Modality Modality       `json:"modality"`
	Options  []string       `json:"options,omitempty"`
	Values   map[string]int `json:"-"`
}

// CategoryID names a scored dimension. Every questionnaire declares its closed
// set of ids as constants.
type CategoryID string

type Category struct {
	ID    CategoryID `json:"id"`
	Label string     `json:"label"`
}

// Tier is the discrete match classification of a category score
type Tier int

const (
	TierNone Tier = iota
	TierSecondary
	TierPrimary
)

func (t Tier) String() string {
	switch t {
	case TierPrimary:
		return "primary"
	case TierSecondary:
		return "secondary"
	default:
		return "none"
	}
}

func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Tier) UnmarshalText(text []byte) error {
	switch string(text) {
	case "primary":
		*t = TierPrimary
	case "secondary":
		*t = TierSecondary
	case "none", "tertiary":
		*t = TierNone
	default:
		return fmt.Errorf("unknown tier %q", string(text))
	}
	return nil
}

// IssueKind classifies a recovered data-integrity problem in an answer set
type IssueKind string

const (
	IssueUnknownQuestion IssueKind = "unknown_question"
	IssueUnknownOption   IssueKind = "unknown_option"
	IssueOutOfRange      IssueKind = "out_of_range"
	IssueWrongType       IssueKind = "wrong_type"
)

// Issue records an answer the engine could not use as given. Issues never
// abort a computation; the affected answer contributes the neutral value or is
// ignored.
type Issue struct {
	Kind       IssueKind `json:"kind"`
	QuestionID string    `json:"question_id"`
	Detail     string    `json:"detail"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s (%s)", i.QuestionID, i.Detail, i.Kind)
}
