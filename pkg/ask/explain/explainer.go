package explain

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"testdesk-be/internal/pkg/logger"
	"testdesk-be/pkg/ask/intent"
	"testdesk-be/pkg/ask/retrieval"
	"testdesk-be/pkg/llm"

	"golang.org/x/sync/singleflight"
)

// Source tells callers which path produced an answer.
type Source string

const (
	SourceGenerated     Source = "generated"
	SourceFallback      Source = "fallback"
	SourceUnknownIntent Source = "unknown_intent"
)

// Answer is the user-visible result. Text is never empty.
type Answer struct {
	Text   string
	Source Source
}

type Config struct {
	CacheTTL          time.Duration
	CacheCapacity     int
	GenerationTimeout time.Duration
}

// Explainer turns a fact bundle into natural language through the external
// generation service, with a bounded in-memory answer cache. Concurrent
// identical misses collapse into a single in-flight call; everyone waiting on
// the flight gets the same result. On any generation failure the explainer
// degrades to a deterministic template instead of failing the request.
type Explainer struct {
	provider   llm.LLMProvider
	cache      *answerCache
	flight     singleflight.Group
	genTimeout time.Duration
	log        logger.ILogger
}

func NewExplainer(provider llm.LLMProvider, cfg Config, log logger.ILogger) *Explainer {
	return &Explainer{
		provider:   provider,
		cache:      newAnswerCache(cfg.CacheTTL, cfg.CacheCapacity),
		genTimeout: cfg.GenerationTimeout,
		log:        log,
	}
}

// Explain answers the question from the bundle. The question argument is the
// user's original phrasing (fed to the prompt); normalized is the canonical
// form used for cache keying.
func (e *Explainer) Explain(ctx context.Context, question, normalized string, bundle *retrieval.Bundle) Answer {
	if bundle.Kind == intent.KindUnknown {
		return Answer{Text: UnknownAnswer, Source: SourceUnknownIntent}
	}

	if bundle.IsEmpty() {
		// Nothing to explain; the canned reply is already the best answer.
		return Answer{Text: fallbackText(bundle), Source: SourceFallback}
	}

	key := cacheKey(bundle.Kind, normalized, bundle)
	if text, found := e.cache.Get(key); found {
		return Answer{Text: text, Source: SourceGenerated}
	}

	result, err, _ := e.flight.Do(key, func() (interface{}, error) {
		genCtx, cancel := context.WithTimeout(ctx, e.genTimeout)
		defer cancel()

		prompt := buildPrompt(question, bundle)
		text, genErr := e.provider.Generate(genCtx, prompt, llm.WithTemperature(0.0))
		if genErr != nil {
			return nil, genErr
		}
		text = strings.TrimSpace(text)
		if text == "" {
			return nil, errors.New("generation returned an empty response")
		}
		e.cache.Set(key, text)
		return text, nil
	})
	if err != nil {
		e.log.Warn("explainer", "generation unavailable, answering from template", map[string]interface{}{
			"intent": string(bundle.Kind),
			"rows":   bundle.Len(),
			"error":  err.Error(),
		})
		return Answer{Text: fallbackText(bundle), Source: SourceFallback}
	}

	return Answer{Text: result.(string), Source: SourceGenerated}
}

func cacheKey(kind intent.Kind, normalized string, bundle *retrieval.Bundle) string {
	questionHash := sha256.Sum256([]byte(normalized))
	return fmt.Sprintf("%s|%s|%s", kind, hex.EncodeToString(questionHash[:]), bundle.Hash())
}
