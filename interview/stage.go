package interview

import (
	"regexp"
	"strings"

	"github.com/talentscout/screener/extract"
)

// Stage is one step in the fixed interview sequence. Stages only move
// forward, except for the forced jump to StageClosing on a termination
// keyword.
type Stage int

const (
	StageGreeting Stage = iota
	StageName
	StageEmail
	StagePhone
	StageExperience
	StagePosition
	StageLocation
	StageTechStack
	StageTechQuestions
	StageClosing
)

var stageNames = map[Stage]string{
	StageGreeting:      "greeting",
	StageName:          "name",
	StageEmail:         "email",
	StagePhone:         "phone",
	StageExperience:    "experience",
	StagePosition:      "position",
	StageLocation:      "location",
	StageTechStack:     "tech_stack",
	StageTechQuestions: "tech_questions",
	StageClosing:       "closing",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "unknown"
}

// Field returns the profile field a collecting stage expects.
func (s Stage) Field() (extract.Field, bool) {
	switch s {
	case StageName:
		return extract.FieldName, true
	case StageEmail:
		return extract.FieldEmail, true
	case StagePhone:
		return extract.FieldPhone, true
	case StageExperience:
		return extract.FieldExperience, true
	case StagePosition:
		return extract.FieldPosition, true
	case StageLocation:
		return extract.FieldLocation, true
	case StageTechStack:
		return extract.FieldTechStack, true
	default:
		return "", false
	}
}

func (s Stage) next() Stage {
	if s >= StageClosing {
		return StageClosing
	}
	return s + 1
}

// Prompt is the deterministic question for the stage's pending field,
// used verbatim when no generation call is warranted or the
// collaborator is unavailable.
func (s Stage) Prompt() string {
	switch s {
	case StageName:
		return "Could you tell me your full name?"
	case StageEmail:
		return "What email address can we reach you at?"
	case StagePhone:
		return "What's the best phone number to reach you on?"
	case StageExperience:
		return "How many years of professional experience do you have?"
	case StagePosition:
		return "What position or positions are you interested in?"
	case StageLocation:
		return "Where are you currently located?"
	case StageTechStack:
		return "Please list your tech stack: languages, frameworks, databases and tools, separated by commas."
	default:
		return ""
	}
}

// Fixed assistant strings. The external generator phrases everything
// else; these are the deterministic exceptions.
const (
	OpeningMessage = "Hello! I'm the TalentScout screening assistant. I'll ask a few questions about your background and technical skills to get your application started. Let's begin with something simple - could you tell me your full name?"

	FarewellComplete = "Thank you for your time! We have recorded your information and our recruitment team will contact you within 3-5 business days regarding the next steps. Best of luck with your application!"

	FarewellIncomplete = "Thank you for your time! Feel free to return anytime to complete your application. Have a great day!"

	ClosingAcknowledgment = "This interview has concluded. Thank you again for your time!"
)

// terminationPattern matches the global conversation-ending keywords
// as whole words, so "Quito" never triggers "quit".
var terminationPattern = regexp.MustCompile(`\b(bye|goodbye|exit|quit|end)\b`)

// IsTermination reports whether the utterance requests ending the
// interview, from any stage.
func IsTermination(text string) bool {
	return terminationPattern.MatchString(strings.ToLower(text))
}
