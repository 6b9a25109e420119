package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hyperjump/zaiko/internal/models"
	"github.com/hyperjump/zaiko/internal/storage"
)

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var query models.SearchQuery
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.logger.Debug("search request", zap.String("query", query.Query), zap.Int("limit", query.Limit))
	response, err := s.engine.Search(r.Context(), &query)
	if err != nil {
		if err.Error() == "query cannot be empty" {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("search failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, response)
}

func (s *Server) handleListComponents(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", s.config.Search.DefaultLimit)
	if limit > s.config.Search.MaxLimit {
		limit = s.config.Search.MaxLimit
	}
	offset := queryInt(r, "offset", 0)

	components, err := s.store.ListComponents(r.Context(), offset, limit)
	if err != nil {
		s.logger.Error("list components failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	total, err := s.store.CountComponents(r.Context())
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if components == nil {
		components = []*models.Component{}
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"components": components,
		"total":      total,
	})
}

func (s *Server) handleCreateComponent(w http.ResponseWriter, r *http.Request) {
	var input models.ComponentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if input.Name == "" || input.Category == "" {
		s.respondError(w, http.StatusBadRequest, "name and category are required")
		return
	}
	c := componentFromInput(&input)
	s.logger.Debug("create component request", zap.String("id", c.ID), zap.String("name", c.Name))
	if err := s.engine.CreateComponent(r.Context(), c); err != nil {
		s.logger.Error("create component failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusCreated, c)
}

func (s *Server) handleGetComponent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	c, err := s.store.GetComponent(r.Context(), id)
	if err != nil {
		s.respondError(w, http.StatusNotFound, "component not found")
		return
	}
	s.respondJSON(w, http.StatusOK, c)
}

func (s *Server) handleUpdateComponent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	existing, err := s.store.GetComponent(r.Context(), id)
	if err != nil {
		s.respondError(w, http.StatusNotFound, "component not found")
		return
	}

	var input models.ComponentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	input.ID = id
	c := componentFromInput(&input)
	c.CreatedAt = existing.CreatedAt
	c.LastUsedAt = existing.LastUsedAt
	if c.Quantity < existing.Quantity {
		// Stock went down: record the withdrawal time.
		now := time.Now()
		c.LastUsedAt = &now
	}

	s.logger.Debug("update component request", zap.String("id", id))
	if err := s.engine.UpdateComponent(r.Context(), c); err != nil {
		s.logger.Error("update component failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, c)
}

func (s *Server) handleDeleteComponent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.logger.Debug("delete component request", zap.String("id", id))
	if err := s.engine.DeleteComponent(r.Context(), id); err != nil {
		s.logger.Error("delete component failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	s.logger.Debug("import request", zap.String("filename", header.Filename))
	report, err := s.importer.Import(r.Context(), file)
	if err != nil {
		s.logger.Error("import failed", zap.Error(err))
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, report)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.store.ListCategories(r.Context())
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if categories == nil {
		categories = []string{}
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"categories": categories})
}

func (s *Server) handleLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := s.store.ListLocations(r.Context())
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if locations == nil {
		locations = []string{}
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"locations": locations})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	status, err := s.engine.Status(r.Context())
	if err != nil {
		s.logger.Error("status failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	resp := map[string]interface{}{
		"components": status.Components,
		"low_stock":  status.LowStock,
		"indexed":    status.Indexed,
		"config": map[string]interface{}{
			"database_path":    s.config.Storage.DatabasePath,
			"bleve_index_path": s.config.Storage.BleveIndexPath,
		},
	}
	diskBytes, err := storage.DiskUsageBytes(
		s.config.Storage.DatabasePath,
		s.config.Storage.BleveIndexPath,
	)
	if err == nil {
		resp["disk_usage_bytes"] = diskBytes
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func componentFromInput(input *models.ComponentInput) *models.Component {
	id := input.ID
	if id == "" {
		id = uuid.NewString()
	}
	return &models.Component{
		ID:           id,
		Name:         input.Name,
		Description:  input.Description,
		Category:     input.Category,
		Manufacturer: input.Manufacturer,
		PartNumber:   input.PartNumber,
		Package:      input.Package,
		Location:     input.Location,
		Quantity:     input.Quantity,
		MinQuantity:  input.MinQuantity,
		UnitPrice:    input.UnitPrice,
		Resistance:   input.Resistance,
		Capacitance:  input.Capacitance,
		Voltage:      input.Voltage,
		Inductance:   input.Inductance,
		Current:      input.Current,
		Frequency:    input.Frequency,
	}
}

func queryInt(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
