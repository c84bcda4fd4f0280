package proctoring

import "fmt"

// FacePresenceRule requires at least one face in frame
type FacePresenceRule struct{}

func (FacePresenceRule) Name() string { return "face_presence" }

func (r FacePresenceRule) Evaluate(frame Frame) RuleResult {
	res := RuleResult{Rule: r.Name(), Score: 1}
	if frame.FaceCount == 0 {
		res.Score = 0
		res.Violation = true
		res.Detail = "no face detected"
	}
	return res
}

// SingleFaceRule flags frames with more than one person visible
type SingleFaceRule struct{}

func (SingleFaceRule) Name() string { return "single_face" }

func (r SingleFaceRule) Evaluate(frame Frame) RuleResult {
	res := RuleResult{Rule: r.Name(), Score: 1}
	if frame.FaceCount > 1 {
		res.Score = 0
		res.Violation = true
		res.Detail = fmt.Sprintf("%d faces detected", frame.FaceCount)
	}
	return res
}

// FaceMatchRule compares the frame's similarity score against the
// candidate's reference selfie
type FaceMatchRule struct {
	Threshold float64
}

func (FaceMatchRule) Name() string { return "face_match" }

func (r FaceMatchRule) Evaluate(frame Frame) RuleResult {
	res := RuleResult{Rule: r.Name(), Score: frame.FaceMatchScore}
	if frame.FaceCount == 0 {
		// presence rule reports the violation; no match score to judge
		res.Score = 0
		return res
	}
	if frame.FaceMatchScore < r.Threshold {
		res.Violation = true
		res.Detail = fmt.Sprintf("similarity %.2f below threshold %.2f", frame.FaceMatchScore, r.Threshold)
	}
	return res
}

// LivenessRule rejects static images by requiring minimal inter-frame motion
type LivenessRule struct {
	MinMotion float64
}

func (LivenessRule) Name() string { return "liveness" }

func (r LivenessRule) Evaluate(frame Frame) RuleResult {
	res := RuleResult{Rule: r.Name(), Score: 1}
	if frame.FaceCount == 0 {
		res.Score = 0
		return res
	}
	if frame.MotionScore < r.MinMotion {
		res.Score = frame.MotionScore / r.MinMotion
		res.Violation = true
		res.Detail = "insufficient motion, possible static image"
	}
	return res
}
