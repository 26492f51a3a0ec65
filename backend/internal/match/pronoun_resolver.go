package match

import (
	"context"
	"fmt"

	"kincrm/backend/internal/store"
	kerrors "kincrm/backend/pkg/errors"
	"kincrm/backend/pkg/logger"
	"go.uber.org/zap"
)

// PronounResolver resolves "he"/"she"/"they" to a person using an explicit
// context person and/or recently mentioned names, gated by gender agreement.
// It never guesses: without a gender-agreeing candidate it fails explicitly.
type PronounResolver struct {
	persons  store.PersonStore
	resolver *DuplicateResolver
	logger   *zap.Logger
}

// NewPronounResolver creates a pronoun resolver sharing the duplicate
// resolver's person store.
func NewPronounResolver(persons store.PersonStore, resolver *DuplicateResolver) *PronounResolver {
	return &PronounResolver{
		persons:  persons,
		resolver: resolver,
		logger:   logger.Get(),
	}
}

// Resolve maps a pronoun to a person. contextPersonID, when set, names the
// person currently being edited or discussed; recentNames is ordered
// most-recent-first. Returns an ErrInsufficientContext error when no
// gender-agreeing candidate exists.
func (p *PronounResolver) Resolve(ctx context.Context, pronoun, contextPersonID string, recentNames []string) (*Result, error) {
	result := &Result{Query: pronoun}

	expectedGender := ExpectedGender(pronoun)
	switch expectedGender {
	case "M":
		result.Reasoning = append(result.Reasoning, fmt.Sprintf("Pronoun %q indicates male gender", pronoun))
	case "F":
		result.Reasoning = append(result.Reasoning, fmt.Sprintf("Pronoun %q indicates female gender", pronoun))
	default:
		result.Reasoning = append(result.Reasoning, fmt.Sprintf("Pronoun %q is gender-neutral", pronoun))
	}

	// Strategy 1: the context person, if its gender agrees.
	if contextPersonID != "" {
		person, err := p.persons.GetByID(ctx, contextPersonID)
		if err == nil && person != nil && !person.IsArchived {
			if expectedGender == "" || person.Gender == expectedGender {
				result.Reasoning = append(result.Reasoning,
					fmt.Sprintf("Resolved to context person %q (gender matches)", person.FullName))
				result.BestMatch = &Candidate{
					PersonID:   person.ID,
					FullName:   person.FullName,
					Phone:      person.Phone,
					Email:      person.Email,
					City:       person.City,
					Score:      2.0,
					Confidence: ConfidenceVeryHigh,
					Reason:     fmt.Sprintf("Context person with matching gender (%s)", expectedGender),
				}
				return result, nil
			}
			result.Reasoning = append(result.Reasoning,
				fmt.Sprintf("Context person %q does not match expected gender", person.FullName))
		}
	}

	// Strategy 2: recently mentioned names, most recent first.
	for _, name := range recentNames {
		lookup, err := p.resolver.FindPerson(ctx, name, "")
		if err != nil || lookup.BestMatch == nil {
			continue
		}
		person, err := p.persons.GetByID(ctx, lookup.BestMatch.PersonID)
		if err != nil || person == nil || person.IsArchived {
			continue
		}
		if expectedGender != "" && person.Gender != expectedGender {
			continue
		}
		result.Reasoning = append(result.Reasoning,
			fmt.Sprintf("Resolved to recently mentioned %q (gender matches)", person.FullName))
		result.BestMatch = lookup.BestMatch
		return result, nil
	}

	p.logger.Debug("Pronoun resolution failed",
		zap.String("pronoun", pronoun),
		zap.Bool("had_context", contextPersonID != "" || len(recentNames) > 0),
	)
	result.Reasoning = append(result.Reasoning,
		fmt.Sprintf("Could not resolve pronoun %q - need more context", pronoun))
	return result, kerrors.NewInsufficientContext(pronoun)
}

// ExpectedGender maps a pronoun to the gender it implies, or "" when the
// pronoun is gender-neutral.
func ExpectedGender(pronoun string) string {
	switch normalizeToken(pronoun) {
	case "he", "him", "his":
		return "M"
	case "she", "her", "hers":
		return "F"
	default:
		return ""
	}
}
