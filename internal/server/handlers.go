package server

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/cv-matcher/internal/catalog"
	"github.com/jonathan/cv-matcher/internal/db"
	"github.com/jonathan/cv-matcher/internal/ingestion"
	"github.com/jonathan/cv-matcher/internal/ranking"
	"github.com/jonathan/cv-matcher/internal/schemas"
	"github.com/jonathan/cv-matcher/internal/types"
)

// AnalyzeRequest is the body of POST /analyze
type AnalyzeRequest struct {
	PositionID string        `json:"position_id" validate:"required"`
	FileName   string        `json:"file_name,omitempty" validate:"max=255"`
	CV         types.CVInput `json:"cv"`
}

// DocumentInput is an extracted CV document. HTML is converted to text; extracted info
// is derived from the text when absent.
type DocumentInput struct {
	FileName      string               `json:"file_name,omitempty" validate:"max=255"`
	Text          string               `json:"text,omitempty"`
	HTML          string               `json:"html,omitempty"`
	ExtractedInfo *types.ExtractedInfo `json:"extracted_info,omitempty"`
}

// DocumentRequest is the body of POST /analyze/document
type DocumentRequest struct {
	PositionID string `json:"position_id" validate:"required"`
	DocumentInput
}

// BatchCandidate is one CV of a batch request
type BatchCandidate struct {
	ID string `json:"id,omitempty"`
	DocumentInput
}

// BatchRequest is the body of POST /analyze/batch
type BatchRequest struct {
	PositionID string           `json:"position_id" validate:"required"`
	Candidates []BatchCandidate `json:"candidates" validate:"required,min=1,max=200,dive"`
}

// AnalysisResponse wraps a single result with its stored id, when persisted
type AnalysisResponse struct {
	AnalysisID string               `json:"analysis_id,omitempty"`
	Result     types.AnalysisResult `json:"result"`
}

// RankedResponse is one ranked candidate of a batch response
type RankedResponse struct {
	ranking.RankedCandidate
	AnalysisID string `json:"analysis_id,omitempty"`
}

// BatchResponse is the response of POST /analyze/batch
type BatchResponse struct {
	PositionID string           `json:"position_id"`
	Summary    ranking.Summary  `json:"summary"`
	Ranked     []RankedResponse `json:"ranked"`
}

// toDocument builds the engine document and the hash of its cleaned text
func (d DocumentInput) toDocument() (types.CVDocument, string, error) {
	text, format := d.Text, ingestion.FormatText
	if d.HTML != "" {
		converted, err := ingestion.HTMLToText(d.HTML)
		if err != nil {
			return types.CVDocument{}, "", &ErrValidation{Field: "html", Message: err.Error()}
		}
		text, format = converted, ingestion.FormatHTML
	}

	doc := ingestion.NewDocument(ingestion.CleanText(text))
	if d.ExtractedInfo != nil {
		doc.ExtractedInfo = *d.ExtractedInfo
	}
	meta := ingestion.NewMetadata(doc.Text, d.FileName, format)
	return doc, meta.Hash, nil
}

// -----------------------------------------------------------------------------
// Catalog handlers
// -----------------------------------------------------------------------------

func (s *Server) handleListCategories(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"categories": catalog.Categories()})
}

func (s *Server) handleListPositions(w http.ResponseWriter, r *http.Request) {
	positions := catalog.All()
	if c := r.URL.Query().Get("category"); c != "" {
		category := types.Category(c)
		if !category.Valid() {
			s.writeError(w, &types.InvalidCategoryError{Category: category})
			return
		}
		positions = catalog.ByCategory(category)
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"positions": positions,
		"total":     len(positions),
	})
}

func (s *Server) handleGetPosition(w http.ResponseWriter, r *http.Request) {
	position, err := catalog.Get(r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, position)
}

// -----------------------------------------------------------------------------
// Analysis handlers
// -----------------------------------------------------------------------------

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	res, err := s.engine.AnalyzeByID(req.PositionID, req.CV)
	if err != nil {
		s.writeError(w, err)
		return
	}

	id, err := s.persist(r.Context(), req.FileName, "", res)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, AnalysisResponse{AnalysisID: id, Result: res})
}

func (s *Server) handleAnalyzeDocument(w http.ResponseWriter, r *http.Request) {
	var req DocumentRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	position, err := catalog.Get(req.PositionID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	doc, hash, err := req.toDocument()
	if err != nil {
		s.writeError(w, err)
		return
	}

	res := s.engine.AnalyzeDocument(doc, *position)
	id, err := s.persist(r.Context(), req.FileName, hash, res)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, AnalysisResponse{AnalysisID: id, Result: res})
}

func (s *Server) handleAnalyzeBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	position, err := catalog.Get(req.PositionID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	candidates := make([]ranking.Candidate, 0, len(req.Candidates))
	hashes := make(map[string]string, len(req.Candidates))
	for _, c := range req.Candidates {
		doc, hash, err := c.toDocument()
		if err != nil {
			s.writeError(w, err)
			return
		}
		id := c.ID
		if id == "" {
			id = uuid.NewString()
		}
		if _, dup := hashes[id]; dup {
			s.writeError(w, &ErrValidation{Field: "candidates", Message: "duplicate candidate id " + id})
			return
		}
		hashes[id] = hash
		candidates = append(candidates, ranking.Candidate{ID: id, FileName: c.FileName, Document: doc})
	}

	ranked, err := ranking.RankCandidates(r.Context(), s.engine, *position, candidates, s.workers)
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := BatchResponse{
		PositionID: position.ID,
		Summary:    ranking.Summarize(ranked),
		Ranked:     make([]RankedResponse, 0, len(ranked)),
	}
	for _, rc := range ranked {
		id, err := s.persist(r.Context(), rc.FileName, hashes[rc.CandidateID], rc.Result)
		if err != nil {
			s.writeError(w, err)
			return
		}
		resp.Ranked = append(resp.Ranked, RankedResponse{RankedCandidate: rc, AnalysisID: id})
	}

	s.logger.Info("batch ranked",
		zap.String("position", position.ID),
		zap.Int("candidates", resp.Summary.Total),
		zap.Int("average", resp.Summary.AverageScore))
	s.jsonResponse(w, http.StatusOK, resp)
}

// persist checks the result against its JSON schema and stores it. Without a store it
// returns an empty id.
func (s *Server) persist(ctx context.Context, fileName, hash string, res types.AnalysisResult) (string, error) {
	if s.store == nil {
		return "", nil
	}
	if err := schemas.Validate(schemas.AnalysisResult, res); err != nil {
		return "", err
	}

	saved, err := s.store.SaveAnalysis(ctx, &db.AnalysisInput{FileName: fileName, ContentHash: hash, Result: res})
	if err != nil {
		return "", err
	}
	return saved.ID.String(), nil
}

// -----------------------------------------------------------------------------
// Stored analysis handlers
// -----------------------------------------------------------------------------

func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.writeError(w, &ErrValidation{Field: "id", Message: "invalid analysis ID format"})
		return
	}

	analysis, err := s.store.GetAnalysis(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if analysis == nil {
		s.writeError(w, &ErrAnalysisNotFound{ID: id})
		return
	}
	s.jsonResponse(w, http.StatusOK, analysis)
}

func (s *Server) handleListPositionAnalyses(w http.ResponseWriter, r *http.Request) {
	position, err := catalog.Get(r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	var opts db.ListAnalysesOptions
	q := r.URL.Query()
	for name, dst := range map[string]*int{"min_score": &opts.MinScore, "limit": &opts.Limit, "offset": &opts.Offset} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			s.writeError(w, &ErrValidation{Field: name, Message: "must be an integer"})
			return
		}
		*dst = v
	}

	analyses, total, err := s.store.ListAnalysesByPosition(r.Context(), position.ID, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"position_id": position.ID,
		"analyses":    analyses,
		"total":       total,
	})
}
