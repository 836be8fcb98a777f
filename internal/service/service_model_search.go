package service

import (
	"context"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/MKhiriev/go-room-design/internal/logger"
	"github.com/MKhiriev/go-room-design/models"
)

// fuzzyRatioThreshold is the lowest sequence ratio that still counts as a
// match when the token is not a substring of the name.
const fuzzyRatioThreshold = 0.6

type scoredModel struct {
	id    string
	score float64
}

// SearchByToken ranks models by the similarity of their names to token.
//
// Candidates are the models whose name contains token case-insensitively,
// or the first fallbackLimit models when there are none. Candidates scoring
// below the threshold are dropped; the rest are ordered by score, ties keeping
// candidate order. The threshold is minSimilarity when given, including zero,
// and the configured default otherwise.
func (s *modelService) SearchByToken(ctx context.Context, token string, minSimilarity *float64) ([]models.Model, error) {
	log := logger.FromContext(ctx)

	token = strings.TrimSpace(token)
	if utf8.RuneCountInString(token) < 2 {
		return nil, validationError(msgSearchTokenTooShort)
	}
	threshold := s.minSimilarity
	if minSimilarity != nil {
		threshold = *minSimilarity
	}

	candidates, err := s.modelRepository.FindModelsByNameContaining(ctx, token)
	if err != nil {
		log.Err(err).Str("func", "*modelService.SearchByToken").Msg("error finding candidates")
		return nil, unexpectedError(msgInternalError, err)
	}
	if len(candidates) == 0 {
		candidates, err = s.modelRepository.FirstModels(ctx, s.fallbackLimit)
		if err != nil {
			log.Err(err).Str("func", "*modelService.SearchByToken").Msg("error loading fallback candidates")
			return nil, unexpectedError(msgInternalError, err)
		}
	}

	matched := make([]scoredModel, 0, len(candidates))
	for _, candidate := range candidates {
		if score := similarityScore(candidate.Name, token); score >= threshold {
			matched = append(matched, scoredModel{id: candidate.ID, score: score})
		}
	}
	if len(matched) == 0 {
		return nil, notFoundError(msgSearchNoMatches)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].score > matched[j].score
	})

	ids := make([]string, len(matched))
	for i, m := range matched {
		ids[i] = m.id
	}

	// the bulk fetch does not preserve order
	fetched, err := s.modelRepository.GetModelsByIDs(ctx, ids)
	if err != nil {
		log.Err(err).Str("func", "*modelService.SearchByToken").Msg("error fetching matched models")
		return nil, unexpectedError(msgInternalError, err)
	}
	byID := make(map[string]models.Model, len(fetched))
	for _, model := range fetched {
		byID[model.ID] = model
	}

	result := make([]models.Model, 0, len(ids))
	for _, id := range ids {
		if model, ok := byID[id]; ok {
			result = append(result, model)
		}
	}
	log.Debug().Str("func", "*modelService.SearchByToken").Int("matches", len(result)).Msg("search finished")

	return result, nil
}

// similarityScore returns a score in [0,1]:
//   - 1 for an exact match after lower-casing and trimming;
//   - 0.8 + 0.2*len(token)/len(name) when token is a substring of name;
//   - otherwise the Ratcliff/Obershelp ratio when it reaches 0.6, else 0.
func similarityScore(name, token string) float64 {
	name = strings.ToLower(strings.TrimSpace(name))
	token = strings.ToLower(strings.TrimSpace(token))

	if name == token {
		return 1.0
	}

	if token != "" && strings.Contains(name, token) {
		return 0.8 + float64(utf8.RuneCountInString(token))/float64(utf8.RuneCountInString(name))*0.2
	}

	ratio := difflib.NewMatcher(splitRunes(name), splitRunes(token)).Ratio()
	if ratio >= fuzzyRatioThreshold {
		return ratio
	}
	return 0
}

func splitRunes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
