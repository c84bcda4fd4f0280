// Package proctoring scores interview monitoring frames with independent,
// composable rules. Each rule evaluates one concern; the evaluator
// averages their scores and collects violations.
package proctoring

// Frame is one observation captured from the candidate's camera,
// pre-processed client-side or by the document-verification service.
type Frame struct {
	FaceCount      int     `json:"face_count"`
	FaceMatchScore float64 `json:"face_match_score"` // 0-1 similarity vs reference selfie
	MotionScore    float64 `json:"motion_score"`     // 0-1, low values suggest a static image
	GazeOnScreen   bool    `json:"gaze_on_screen"`
}

// RuleResult is one rule's verdict for a frame
type RuleResult struct {
	Rule      string  `json:"rule"`
	Score     float64 `json:"score"` // 0-1, 1 is fully compliant
	Violation bool    `json:"violation"`
	Detail    string  `json:"detail,omitempty"`
}

// Rule scores a single concern on a frame
type Rule interface {
	Name() string
	Evaluate(frame Frame) RuleResult
}

// Report is the evaluator's aggregate for one frame
type Report struct {
	Score      float64      `json:"score"` // mean of rule scores
	Passed     bool         `json:"passed"`
	Violations []RuleResult `json:"violations,omitempty"`
	Results    []RuleResult `json:"results"`
}

// Evaluator runs a fixed rule set over frames
type Evaluator struct {
	rules     []Rule
	threshold float64 // minimum aggregate score to pass
}

// NewEvaluator composes the given rules; passing no rules yields an
// evaluator that accepts every frame.
func NewEvaluator(threshold float64, rules ...Rule) *Evaluator {
	return &Evaluator{rules: rules, threshold: threshold}
}

// DefaultEvaluator returns the standard interview monitoring rule set
func DefaultEvaluator() *Evaluator {
	return NewEvaluator(0.7,
		FacePresenceRule{},
		SingleFaceRule{},
		FaceMatchRule{Threshold: 0.8},
		LivenessRule{MinMotion: 0.1},
	)
}

// Evaluate scores one frame against all rules
func (e *Evaluator) Evaluate(frame Frame) Report {
	report := Report{Passed: true}
	if len(e.rules) == 0 {
		report.Score = 1
		return report
	}

	var sum float64
	for _, rule := range e.rules {
		res := rule.Evaluate(frame)
		report.Results = append(report.Results, res)
		sum += res.Score
		if res.Violation {
			report.Violations = append(report.Violations, res)
		}
	}
	report.Score = sum / float64(len(e.rules))
	report.Passed = report.Score >= e.threshold && len(report.Violations) == 0
	return report
}
