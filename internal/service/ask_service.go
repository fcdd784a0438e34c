package service

import (
	"context"

	"testdesk-be/internal/dto"
	"testdesk-be/internal/pkg/logger"
	"testdesk-be/pkg/ask/explain"
	"testdesk-be/pkg/ask/intent"
	"testdesk-be/pkg/ask/normalizer"
	"testdesk-be/pkg/ask/retrieval"
)

// IAskService defines the question-answering service interface
type IAskService interface {
	Answer(ctx context.Context, request *dto.AskRequest) (*dto.AskResponse, error)
	ListIntents(ctx context.Context) ([]*dto.IntentInfoResponse, error)
}

// askService runs the pipeline: normalize -> detect -> retrieve -> explain.
// Only a record-store failure propagates as an error; every other condition
// degrades to a best-effort answer.
type askService struct {
	retriever *retrieval.Retriever
	explainer *explain.Explainer
	log       logger.ILogger
}

func NewAskService(retriever *retrieval.Retriever, explainer *explain.Explainer, log logger.ILogger) IAskService {
	return &askService{
		retriever: retriever,
		explainer: explainer,
		log:       log,
	}
}

func (s *askService) Answer(ctx context.Context, request *dto.AskRequest) (*dto.AskResponse, error) {
	normalized := normalizer.Normalize(request.Question)
	detection := intent.Detect(normalized)

	var bundle *retrieval.Bundle
	if detection.Intent.Kind == intent.KindUnknown {
		// Out-of-vocabulary question; never touch the store for these.
		bundle = retrieval.EmptyBundle(intent.KindUnknown)
	} else {
		var err error
		bundle, err = s.retriever.Retrieve(ctx, detection.Intent.Kind)
		if err != nil {
			s.log.Error("ask", "retrieval failed", map[string]interface{}{
				"intent": string(detection.Intent.Kind),
				"error":  err.Error(),
			})
			return nil, err
		}
	}

	answer := s.explainer.Explain(ctx, request.Question, normalized, bundle)

	s.log.Info("ask", "question answered", map[string]interface{}{
		"intent": string(detection.Intent.Kind),
		"score":  detection.Score,
		"source": string(answer.Source),
		"rows":   bundle.Len(),
	})

	return &dto.AskResponse{
		Answer:   answer.Text,
		Intent:   string(detection.Intent.Kind),
		Score:    detection.Score,
		Source:   string(answer.Source),
		RowCount: bundle.Len(),
	}, nil
}

func (s *askService) ListIntents(ctx context.Context) ([]*dto.IntentInfoResponse, error) {
	var out []*dto.IntentInfoResponse
	for _, in := range intent.Catalog() {
		if in.Kind == intent.KindUnknown {
			continue
		}
		out = append(out, &dto.IntentInfoResponse{
			Name:        string(in.Kind),
			Description: in.Description,
		})
	}
	return out, nil
}
