// Package progress derives per-track completion and percentages from the
// raw state of a user's purchased verification tracks. Everything here is
// pure; correctness depends only on the inputs.
package progress

import (
	"math"

	"simplehire-backend/internal/domain"
)

// stepsPerTrack is the fixed milestone count for every track
const stepsPerTrack = 4

// Input bundles the raw state the calculator reads. Tracks the user has
// not purchased are ignored entirely, whatever their state.
type Input struct {
	PurchasedProducts []string
	Interview         *domain.InterviewProgress
	IDStatus          string
	References        []domain.Reference
}

// Compute derives per-track and overall progress. An empty product set
// yields zero percent and no tracks; unpurchased tracks contribute to
// neither numerator nor denominator.
func Compute(in Input) domain.VerificationProgress {
	tracks := domain.ExpandProducts(in.PurchasedProducts)
	if len(tracks) == 0 {
		return domain.VerificationProgress{Tracks: []domain.TrackProgress{}, Percent: 0}
	}

	var result domain.VerificationProgress
	totalSteps := 0
	for _, track := range tracks {
		var tp domain.TrackProgress
		switch track {
		case domain.ProductSkill:
			tp = SkillTrack(in.Interview)
		case domain.ProductIDVisa:
			tp = IDVisaTrack(in.IDStatus)
		case domain.ProductReference:
			tp = ReferenceTrack(in.References)
		}
		totalSteps += tp.Steps
		result.Tracks = append(result.Tracks, tp)
	}

	result.Percent = int(math.Round(100 * float64(totalSteps) / float64(stepsPerTrack*len(tracks))))
	return result
}

// SkillTrack scores the interview milestones. The four equally-weighted
// steps are voice interview, MCQ test, coding challenge and "certificate
// ready", which is true iff the prior three are. documentsUploaded is a
// prerequisite for the flow but does not score.
func SkillTrack(p *domain.InterviewProgress) domain.TrackProgress {
	tp := domain.TrackProgress{Track: domain.ProductSkill}
	if p == nil {
		return tp
	}
	if p.VoiceInterview {
		tp.Steps++
	}
	if p.MCQTest {
		tp.Steps++
	}
	if p.CodingChallenge {
		tp.Steps++
	}
	certificateReady := p.VoiceInterview && p.MCQTest && p.CodingChallenge
	if certificateReady {
		tp.Steps++
	}
	tp.Completed = certificateReady
	tp.Percent = tp.Steps * 100 / stepsPerTrack
	return tp
}

// IDVisaTrack maps the four-state status enum onto milestone counts.
// "pending" is worth three steps because submission covers upload,
// checks and review intake at once. "failed" has reached the same three
// steps but can never be complete.
func IDVisaTrack(status string) domain.TrackProgress {
	tp := domain.TrackProgress{Track: domain.ProductIDVisa}
	switch status {
	case domain.IDStatusInProgress:
		tp.Steps = 1
	case domain.IDStatusPending, domain.IDStatusFailed:
		tp.Steps = 3
	case domain.IDStatusVerified:
		tp.Steps = 4
		tp.Completed = true
	}
	tp.Percent = tp.Steps * 100 / stepsPerTrack
	return tp
}

// ReferenceTrack derives milestones from the actual reference list:
// at least one referee added, any outreach email sent, any response
// received, and all references verified. An empty list is never complete.
func ReferenceTrack(refs []domain.Reference) domain.TrackProgress {
	tp := domain.TrackProgress{Track: domain.ProductReference}
	if len(refs) == 0 {
		return tp
	}
	tp.Steps = 1 // at least one referee

	anySent := false
	anyResponded := false
	allVerified := true
	for _, r := range refs {
		switch r.Status {
		case domain.RefStatusEmailSent:
			anySent = true
		case domain.RefStatusResponseReceived, domain.RefStatusVerified:
			anySent = true
			anyResponded = true
		}
		if r.Status != domain.RefStatusVerified {
			allVerified = false
		}
	}

	if anySent {
		tp.Steps++
	}
	if anyResponded {
		tp.Steps++
	}
	if allVerified {
		tp.Steps++
		tp.Completed = true
	}
	tp.Percent = tp.Steps * 100 / stepsPerTrack
	return tp
}
