package match

import (
	"context"
	"fmt"
	"sort"

	"kincrm/backend/internal/store"
	"kincrm/backend/pkg/logger"
	"go.uber.org/zap"
)

// phoneBoost is added to the name similarity when the phone corroborates,
// pushing the score above any possible name-only score.
const phoneBoost = 1.5

// phoneNameFloor is the minimum name similarity required for the phone
// boost to apply at all.
const phoneNameFloor = 0.3

// autoMergeScore is the score at or above which a top candidate is merged
// without disambiguation.
const autoMergeScore = 0.95

// DuplicateResolver finds existing persons that an extracted mention likely
// refers to. Candidates are recomputed per lookup against the full person
// collection; O(existing persons) per call, which is acceptable at CRM
// scale but would need phonetic blocking beyond that.
type DuplicateResolver struct {
	persons   store.PersonStore
	threshold float64
	logger    *zap.Logger
}

// NewDuplicateResolver creates a resolver over the given person store.
// threshold is the minimum name similarity for name-only candidates.
func NewDuplicateResolver(persons store.PersonStore, threshold float64) *DuplicateResolver {
	if threshold <= 0 {
		threshold = 0.70
	}
	return &DuplicateResolver{
		persons:   persons,
		threshold: threshold,
		logger:    logger.Get(),
	}
}

// FindDuplicates returns match candidates for the given name (and optional
// phone), ranked by score descending. Archived persons are skipped.
func (r *DuplicateResolver) FindDuplicates(ctx context.Context, name, phone string) ([]Candidate, error) {
	normalizedPhone := NormalizePhone(phone)

	all, err := r.persons.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load persons: %w", err)
	}

	var candidates []Candidate
	for _, person := range all {
		if person.IsArchived {
			continue
		}

		nameSim := Similarity(name, person.FullName)

		phoneMatch := false
		if normalizedPhone != "" && person.Phone != "" {
			phoneMatch = PhonesMatch(normalizedPhone, NormalizePhone(person.Phone))
		}

		var c Candidate
		switch {
		case phoneMatch && nameSim >= phoneNameFloor:
			c = Candidate{
				Score:      phoneBoost + nameSim,
				Confidence: ConfidenceVeryHigh,
				Reason:     fmt.Sprintf("Phone match + name similarity (%.2f)", nameSim),
			}
		case nameSim >= r.threshold:
			c = Candidate{
				Score:      nameSim,
				Confidence: confidenceForScore(nameSim),
				Reason:     fmt.Sprintf("Name similarity (%.2f)", nameSim),
			}
		default:
			continue
		}

		c.PersonID = person.ID
		c.FullName = person.FullName
		c.Phone = person.Phone
		c.Email = person.Email
		c.City = person.City
		candidates = append(candidates, c)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	return candidates, nil
}

// FindPerson searches for a person with a full reasoning trail, marking the
// result for disambiguation when multiple strong candidates compete.
func (r *DuplicateResolver) FindPerson(ctx context.Context, query, phoneHint string) (*Result, error) {
	result := &Result{Query: query}

	normalized := NormalizeName(query)
	result.Reasoning = append(result.Reasoning,
		fmt.Sprintf("Normalized query %q to %q", query, normalized))

	if phoneHint != "" {
		result.Reasoning = append(result.Reasoning,
			fmt.Sprintf("Using phone number %s to boost matching confidence", phoneHint))
	} else {
		result.Reasoning = append(result.Reasoning, "Using name-only matching (no phone number provided)")
	}

	candidates, err := r.FindDuplicates(ctx, query, phoneHint)
	if err != nil {
		return nil, err
	}
	result.Reasoning = append(result.Reasoning,
		fmt.Sprintf("Found %d potential matches above threshold %.2f", len(candidates), r.threshold))

	if len(candidates) == 0 {
		result.Reasoning = append(result.Reasoning, "No similar names found")
		return result, nil
	}

	best := candidates[0]
	result.BestMatch = &best
	if len(candidates) > 5 {
		result.AllMatches = candidates[:5]
	} else {
		result.AllMatches = candidates
	}

	switch {
	case len(candidates) == 1:
		result.Reasoning = append(result.Reasoning,
			fmt.Sprintf("Single clear match: %q with %s confidence", best.FullName, best.Confidence))
	case best.Confidence == ConfidenceVeryHigh:
		result.Reasoning = append(result.Reasoning,
			fmt.Sprintf("Best match: %q with very high confidence (phone + name match)", best.FullName))
	case candidates[1].Score >= 0.8:
		result.NeedsDisambiguation = true
		result.Reasoning = append(result.Reasoning, "Multiple strong matches found - disambiguation needed")
		for i, c := range result.AllMatches {
			if i >= 3 {
				break
			}
			result.Reasoning = append(result.Reasoning,
				fmt.Sprintf("  %d. %s - %s confidence (%.2f)", i+1, c.FullName, c.Confidence, c.Score))
		}
	default:
		result.Reasoning = append(result.Reasoning,
			fmt.Sprintf("Best match: %q with %s confidence", best.FullName, best.Confidence))
	}

	r.logger.Debug("Person lookup completed",
		zap.String("query", query),
		zap.Int("candidates", len(candidates)),
		zap.Bool("needs_disambiguation", result.NeedsDisambiguation),
	)

	return result, nil
}

// Decide applies the merge-vs-create policy to a ranked candidate list.
// The policy is conservative: false negatives (a duplicate record) are
// preferred over false positives (a wrong merge).
func Decide(candidates []Candidate) Decision {
	if len(candidates) == 0 {
		return Decision{Action: ActionCreateNew, Reason: "no duplicates found"}
	}

	phoneMatched := false
	for _, c := range candidates {
		if c.Score >= phoneBoost {
			phoneMatched = true
			break
		}
	}

	top := candidates[0]
	if phoneMatched || (len(candidates) == 1 && top.Score > autoMergeScore) {
		reason := "name similarity"
		if phoneMatched {
			reason = "phone + name match"
		}
		return Decision{Action: ActionAutoMerge, Candidate: &top, Reason: reason}
	}

	// Multiple candidates: the highest score wins outright when near-perfect,
	// even with close runners-up.
	if top.Score >= autoMergeScore {
		return Decision{
			Action:    ActionAutoMerge,
			Candidate: &top,
			Reason:    fmt.Sprintf("top match from %d candidates", len(candidates)),
		}
	}

	return Decision{
		Action:    ActionNeedsClarification,
		Candidate: &top,
		Reason:    fmt.Sprintf("%d candidates below auto-merge confidence", len(candidates)),
	}
}

func confidenceForScore(score float64) Confidence {
	switch {
	case score >= 0.9:
		return ConfidenceHigh
	case score >= 0.8:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
