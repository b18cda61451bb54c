// Package stubserver is an in-memory implementation of the scheduling
// service's REST API. It exists so the CLI can run locally without a real
// backend and so gateway tests exercise real HTTP.
package stubserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/shiftdeck/shiftdeck/pkg/core/model"
)

// Server serves the employees/shifts/assignments API from an in-memory store.
type Server struct {
	store    *store
	validate *validator.Validate
	logger   *zap.Logger

	Mux *chi.Mux
}

// NewServer creates a stub server with an empty store and its routes
// registered.
func NewServer(logger *zap.Logger) *Server {
	s := &Server{
		store:    newStore(),
		validate: validator.New(),
		logger:   logger,
		Mux:      chi.NewRouter(),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.Mux.Use(s.requestLogger)
	// The service's other consumer is a browser app, so the stub answers
	// preflight requests like the real one would.
	s.Mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "Authorization"},
	}))

	s.Mux.Route("/employees", func(r chi.Router) {
		r.Get("/", s.listEmployees)
		r.Post("/", s.createEmployee)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.getEmployee)
			r.Put("/", s.updateEmployee)
			r.Delete("/", s.deleteEmployee)
		})
	})

	s.Mux.Route("/shifts", func(r chi.Router) {
		r.Get("/", s.listShifts)
		r.Post("/", s.createShift)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.getShift)
			r.Put("/", s.updateShift)
			r.Delete("/", s.deleteShift)
		})
	})

	s.Mux.Route("/assignments", func(r chi.Router) {
		r.Get("/", s.listAssignments)
		r.Post("/", s.createAssignment)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.getAssignment)
			r.Put("/", s.updateAssignment)
			r.Delete("/", s.deleteAssignment)
		})
	})
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request handled",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)))
	})
}

func (s *Server) readJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

type errorResponse struct {
	Message string `json:"message"`
}

func (s *Server) badRequest(w http.ResponseWriter, message string) {
	s.writeJSON(w, http.StatusBadRequest, errorResponse{Message: message})
}

func (s *Server) notFound(w http.ResponseWriter) {
	s.writeJSON(w, http.StatusNotFound, errorResponse{Message: "not found"})
}

// Employees

func (s *Server) listEmployees(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.store.listEmployees())
}

func (s *Server) getEmployee(w http.ResponseWriter, r *http.Request) {
	employee, ok := s.store.getEmployee(chi.URLParam(r, "id"))
	if !ok {
		s.notFound(w)
		return
	}
	s.writeJSON(w, http.StatusOK, employee)
}

func (s *Server) createEmployee(w http.ResponseWriter, r *http.Request) {
	var payload model.EmployeePayload
	if err := s.readJSON(r, &payload); err != nil {
		s.badRequest(w, "invalid request body")
		return
	}
	if err := s.validate.Struct(payload); err != nil {
		s.badRequest(w, err.Error())
		return
	}
	s.writeJSON(w, http.StatusCreated, s.store.createEmployee(payload))
}

func (s *Server) updateEmployee(w http.ResponseWriter, r *http.Request) {
	var payload model.EmployeePayload
	if err := s.readJSON(r, &payload); err != nil {
		s.badRequest(w, "invalid request body")
		return
	}
	if err := s.validate.Struct(payload); err != nil {
		s.badRequest(w, err.Error())
		return
	}
	employee, ok := s.store.updateEmployee(chi.URLParam(r, "id"), payload)
	if !ok {
		s.notFound(w)
		return
	}
	s.writeJSON(w, http.StatusOK, employee)
}

func (s *Server) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	if !s.store.deleteEmployee(chi.URLParam(r, "id")) {
		s.notFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Shift templates

func (s *Server) listShifts(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.store.listShifts())
}

func (s *Server) getShift(w http.ResponseWriter, r *http.Request) {
	shift, ok := s.store.getShift(chi.URLParam(r, "id"))
	if !ok {
		s.notFound(w)
		return
	}
	s.writeJSON(w, http.StatusOK, shift)
}

func (s *Server) createShift(w http.ResponseWriter, r *http.Request) {
	var payload model.ShiftPayload
	if err := s.readJSON(r, &payload); err != nil {
		s.badRequest(w, "invalid request body")
		return
	}
	if err := s.validate.Struct(payload); err != nil {
		s.badRequest(w, err.Error())
		return
	}
	s.writeJSON(w, http.StatusCreated, s.store.createShift(payload))
}

func (s *Server) updateShift(w http.ResponseWriter, r *http.Request) {
	var payload model.ShiftPayload
	if err := s.readJSON(r, &payload); err != nil {
		s.badRequest(w, "invalid request body")
		return
	}
	if err := s.validate.Struct(payload); err != nil {
		s.badRequest(w, err.Error())
		return
	}
	shift, ok := s.store.updateShift(chi.URLParam(r, "id"), payload)
	if !ok {
		s.notFound(w)
		return
	}
	s.writeJSON(w, http.StatusOK, shift)
}

func (s *Server) deleteShift(w http.ResponseWriter, r *http.Request) {
	if !s.store.deleteShift(chi.URLParam(r, "id")) {
		s.notFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Assignments

func (s *Server) listAssignments(w http.ResponseWriter, r *http.Request) {
	query, err := parseAssignmentQuery(r)
	if err != nil {
		s.badRequest(w, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, s.store.listAssignments(query))
}

func parseAssignmentQuery(r *http.Request) (assignmentQuery, error) {
	var q assignmentQuery
	var err error

	if raw := r.URL.Query().Get("startDate"); raw != "" {
		if q.startDate, err = model.ParseDate(raw); err != nil {
			return q, err
		}
	}
	if raw := r.URL.Query().Get("endDate"); raw != "" {
		if q.endDate, err = model.ParseDate(raw); err != nil {
			return q, err
		}
	}
	q.employeeID = r.URL.Query().Get("employeeId")
	q.shiftID = r.URL.Query().Get("shiftId")
	return q, nil
}

func (s *Server) getAssignment(w http.ResponseWriter, r *http.Request) {
	assignment, ok := s.store.getAssignment(chi.URLParam(r, "id"))
	if !ok {
		s.notFound(w)
		return
	}
	s.writeJSON(w, http.StatusOK, assignment)
}

// checkAssignmentRefs enforces referential integrity on assignment writes:
// an unknown employee or shift id is a validation failure, not a 500.
func (s *Server) checkAssignmentRefs(payload model.AssignmentPayload) string {
	if !s.store.hasEmployee(payload.EmployeeID) {
		return "employeeId does not reference an existing employee"
	}
	if !s.store.hasShift(payload.ShiftID) {
		return "shiftId does not reference an existing shift"
	}
	return ""
}

func (s *Server) createAssignment(w http.ResponseWriter, r *http.Request) {
	var payload model.AssignmentPayload
	if err := s.readJSON(r, &payload); err != nil {
		s.badRequest(w, "invalid request body")
		return
	}
	if err := s.validate.Struct(payload); err != nil {
		s.badRequest(w, err.Error())
		return
	}
	if msg := s.checkAssignmentRefs(payload); msg != "" {
		s.badRequest(w, msg)
		return
	}
	s.writeJSON(w, http.StatusCreated, s.store.createAssignment(payload))
}

func (s *Server) updateAssignment(w http.ResponseWriter, r *http.Request) {
	var payload model.AssignmentPayload
	if err := s.readJSON(r, &payload); err != nil {
		s.badRequest(w, "invalid request body")
		return
	}
	if err := s.validate.Struct(payload); err != nil {
		s.badRequest(w, err.Error())
		return
	}
	if msg := s.checkAssignmentRefs(payload); msg != "" {
		s.badRequest(w, msg)
		return
	}
	assignment, ok := s.store.updateAssignment(chi.URLParam(r, "id"), payload)
	if !ok {
		s.notFound(w)
		return
	}
	s.writeJSON(w, http.StatusOK, assignment)
}

func (s *Server) deleteAssignment(w http.ResponseWriter, r *http.Request) {
	if !s.store.deleteAssignment(chi.URLParam(r, "id")) {
		s.notFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
