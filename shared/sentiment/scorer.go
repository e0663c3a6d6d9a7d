// Package sentiment turns free-text mood descriptions into a sentiment
// score and a mood classification. Two scorer variants exist: the lexicon
// scorer built from the embedded valence table, and a small heuristic
// scorer used when the table cannot be loaded. The variant is chosen once
// at startup; callers only ever see the Scorer interface.
package sentiment

import (
	"bufio"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"moodtunes/internal/models"
	"moodtunes/shared/apperrors"

	_ "embed"
)

//go:embed lexicon.txt
var lexiconData string

// Scorer produces a SentimentResult from mood text. Implementations must
// reject empty or whitespace-only input with a VALIDATION error.
type Scorer interface {
	Score(text string) (*models.SentimentResult, error)
	Name() string
}

// New probes the embedded lexicon and returns the richer scorer when it
// loads, falling back to the heuristic word lists otherwise. Called once at
// process start.
func New() Scorer {
	scorer, err := newLexiconScorer()
	if err != nil {
		slog.Warn("lexicon unavailable, using heuristic scorer", "error", err)
		return newHeuristicScorer()
	}
	return scorer
}

// tokenize lowercases the text and splits it on whitespace. Both scorer
// variants share it so results stay comparable.
func tokenize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

func checkInput(text string) error {
	if strings.TrimSpace(text) == "" {
		return apperrors.Validation("Mood text must not be empty.")
	}
	return nil
}

// comparative normalizes a score by token count, defined as 0 for zero
// tokens. Unreachable in normal operation since input is length-validated
// upstream, but kept as an invariant.
func comparative(score, tokenCount int) float64 {
	if tokenCount == 0 {
		return 0
	}
	return float64(score) / float64(tokenCount)
}

// lexiconScorer sums signed valence weights from the embedded table.
type lexiconScorer struct {
	valence map[string]int
}

func newLexiconScorer() (*lexiconScorer, error) {
	valence := make(map[string]int)

	scanner := bufio.NewScanner(strings.NewReader(lexiconData))
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		word, value, ok := strings.Cut(text, "\t")
		if !ok {
			return nil, fmt.Errorf("lexicon line %d: missing tab separator", line)
		}
		weight, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("lexicon line %d: bad weight %q: %w", line, value, err)
		}
		valence[strings.ToLower(strings.TrimSpace(word))] = weight
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}
	if len(valence) == 0 {
		return nil, fmt.Errorf("lexicon is empty")
	}

	return &lexiconScorer{valence: valence}, nil
}

func (s *lexiconScorer) Name() string { return "lexicon" }

func (s *lexiconScorer) Score(text string) (*models.SentimentResult, error) {
	if err := checkInput(text); err != nil {
		return nil, err
	}

	tokens := tokenize(text)
	result := &models.SentimentResult{Tokens: tokens}

	for _, token := range tokens {
		weight, ok := s.valence[token]
		if !ok {
			continue
		}
		result.Score += weight
		if weight > 0 {
			result.PositiveHits = append(result.PositiveHits, token)
		} else if weight < 0 {
			result.NegativeHits = append(result.NegativeHits, token)
		}
	}

	result.Comparative = comparative(result.Score, len(tokens))
	return result, nil
}

// Heuristic fallback word lists. Deliberately small; the heuristic scorer
// counts matches instead of weighing them.
var (
	heuristicPositive = []string{
		"happy", "glad", "joy", "joyful", "great", "good", "love", "excited",
		"cheerful", "wonderful", "amazing", "fun", "senang", "bahagia",
		"gembira", "ceria", "semangat", "bangga", "tenang", "nyaman",
	}
	heuristicNegative = []string{
		"sad", "unhappy", "angry", "tired", "cry", "lonely", "hate", "upset",
		"depressed", "terrible", "worried", "bored", "sedih", "marah",
		"kecewa", "lelah", "galau", "takut", "bosan", "kesal",
	}
)

// heuristicScorer counts matches against two fixed word lists:
// score = positive matches - negative matches.
type heuristicScorer struct {
	positive map[string]struct{}
	negative map[string]struct{}
}

func newHeuristicScorer() *heuristicScorer {
	s := &heuristicScorer{
		positive: make(map[string]struct{}, len(heuristicPositive)),
		negative: make(map[string]struct{}, len(heuristicNegative)),
	}
	for _, w := range heuristicPositive {
		s.positive[w] = struct{}{}
	}
	for _, w := range heuristicNegative {
		s.negative[w] = struct{}{}
	}
	return s
}

func (s *heuristicScorer) Name() string { return "heuristic" }

func (s *heuristicScorer) Score(text string) (*models.SentimentResult, error) {
	if err := checkInput(text); err != nil {
		return nil, err
	}

	tokens := tokenize(text)
	result := &models.SentimentResult{Tokens: tokens}

	for _, token := range tokens {
		if _, ok := s.positive[token]; ok {
			result.Score++
			result.PositiveHits = append(result.PositiveHits, token)
			continue
		}
		if _, ok := s.negative[token]; ok {
			result.Score--
			result.NegativeHits = append(result.NegativeHits, token)
		}
	}

	result.Comparative = comparative(result.Score, len(tokens))
	return result, nil
}
