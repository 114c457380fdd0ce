package service

import (
	"errors"

	"github.com/arefinkhan/examine/config"
	"github.com/arefinkhan/examine/internal/dto"
	"github.com/arefinkhan/examine/internal/ingest"
	"github.com/arefinkhan/examine/internal/model"
	"github.com/rs/zerolog/log"
)

var ErrNoQuestions = errors.New("content produced no valid questions")

// ContentService turns an upload into persistable questions, applying the
// site-wide rejection policy on top of the row-tolerant normalizer.
type ContentService interface {
	BuildQuestions(req dto.ContentRequest, file []byte) ([]model.Question, error)
}

type contentService struct {
	cfg *config.Config
}

func NewContentService(cfg *config.Config) ContentService {
	return &contentService{cfg: cfg}
}

// inputFormats maps the API's input_type values onto normalizer formats.
var inputFormats = map[string]ingest.Format{
	"csv":    ingest.FormatDelimited,
	"xlsx":   ingest.FormatSpreadsheet,
	"text":   ingest.FormatFreeform,
	"json":   ingest.FormatStructured,
	"manual": ingest.FormatManual,
}

func (s *contentService) BuildQuestions(req dto.ContentRequest, file []byte) ([]model.Question, error) {
	format, ok := inputFormats[req.InputType]
	if !ok {
		return nil, &ContentError{Rows: []string{"unknown input type " + req.InputType}}
	}

	src := ingest.Source{Format: format, Text: req.Text, File: file}
	for _, m := range req.Manual {
		src.Manual = append(src.Manual, ingest.ManualQuestion{
			Text:    m.Question,
			OptionA: m.OptionA,
			OptionB: m.OptionB,
			OptionC: m.OptionC,
			OptionD: m.OptionD,
			Answer:  m.Answer,
		})
	}

	result := ingest.Normalize(src)

	if len(result.Errors) > 0 && s.cfg.Ingest.RejectOnRowError {
		bounded := ingest.BoundErrors(result.Errors, s.cfg.Ingest.MaxErrorsShown)
		log.Warn().Int("rows_rejected", len(result.Errors)).Msg("Content upload rejected")
		return nil, &ContentError{
			Rows:      bounded,
			Truncated: len(bounded) < len(result.Errors),
		}
	}
	if len(result.Questions) == 0 {
		return nil, ErrNoQuestions
	}

	questions := make([]model.Question, 0, len(result.Questions))
	for i, q := range result.Questions {
		questions = append(questions, model.Question{
			Position:     i + 1,
			Text:         q.Text,
			Options:      q.Options,
			CorrectIndex: q.CorrectIndex,
			Hint:         q.Hint,
		})
	}
	return questions, nil
}
