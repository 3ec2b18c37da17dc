package messages

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-lost-and-found/internal/apperror"
	"pet-lost-and-found/internal/middleware"
	"pet-lost-and-found/internal/platform/logger"
	"pet-lost-and-found/internal/respond"
	"pet-lost-and-found/internal/validate"
)

func RegisterRoutes(r chi.Router, svc *Service, requireAuth func(http.Handler) http.Handler, log logger.Logger) {
	r.Route("/api/messages", func(mr chi.Router) {
		mr.Get("/", listHandler(svc, log))
		mr.Get("/{id}", getHandler(svc, log))
		mr.Get("/user/{id}", listByUserHandler(svc, log))
		mr.Get("/missing-pet/{id}", listByMissingPetHandler(svc, log))

		mr.Group(func(pr chi.Router) {
			pr.Use(requireAuth)
			pr.Post("/", createHandler(svc, log))
			pr.Put("/{id}", updateHandler(svc, log))
			pr.Delete("/{id}", deleteHandler(svc, log))
		})
	})
}

type messageResponse struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"userId"`
	MissingPetID int64     `json:"missingPetId"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func listHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respond.Error(w, log, err)
			return
		}
		respond.Data(w, http.StatusOK, toResponses(items))
	}
}

func getHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := requireIDParam(r)
		if err != nil {
			respond.Error(w, log, err)
			return
		}

		m, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				respond.Error(w, log, apperror.NewNotFound("Message not found"))
				return
			}
			respond.Error(w, log, err)
			return
		}
		respond.Data(w, http.StatusOK, toResponse(m))
	}
}

func listByUserHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := requireIDParam(r)
		if err != nil {
			respond.Error(w, log, err)
			return
		}

		items, err := svc.ListByUser(r.Context(), id)
		if err != nil {
			respond.Error(w, log, err)
			return
		}
		respond.Data(w, http.StatusOK, toResponses(items))
	}
}

func listByMissingPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := requireIDParam(r)
		if err != nil {
			respond.Error(w, log, err)
			return
		}

		items, err := svc.ListByMissingPet(r.Context(), id)
		if err != nil {
			respond.Error(w, log, err)
			return
		}
		respond.Data(w, http.StatusOK, toResponses(items))
	}
}

func createHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.GetUserID(r.Context())
		if !ok {
			respond.Error(w, log, apperror.NewAuth("Access denied"))
			return
		}

		values, err := validate.FromJSON(r.Body)
		if err != nil {
			respond.Error(w, log, apperror.NewBadRequest("Invalid JSON"))
			return
		}

		if err := validate.Apply(r.Context(), values, createRules()); err != nil {
			respond.Error(w, log, err)
			return
		}

		missingPetID, _ := strconv.ParseInt(values.Get("missingPetId"), 10, 64)
		m, err := svc.Create(r.Context(), userID, CreateInput{
			MissingPetID: missingPetID,
			Comment:      values.Get("comment"),
		})
		if err != nil {
			respond.Error(w, log, err)
			return
		}
		respond.Data(w, http.StatusOK, toResponse(m))
	}
}

func updateHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values, err := validate.FromJSON(r.Body)
		if err != nil {
			respond.Error(w, log, apperror.NewBadRequest("Invalid JSON"))
			return
		}
		values.Set("id", chi.URLParam(r, "id"))

		if err := validate.Apply(r.Context(), values, updateRules()); err != nil {
			respond.Error(w, log, err)
			return
		}

		var missingPetID *int64
		if values.Has("missingPetId") {
			v, _ := strconv.ParseInt(values.Get("missingPetId"), 10, 64)
			missingPetID = &v
		}

		id, _ := strconv.ParseInt(values.Get("id"), 10, 64)
		n, err := svc.Update(r.Context(), id, UpdateInput{
			MissingPetID: missingPetID,
			Comment:      strPtr(values, "comment"),
		})
		if err != nil {
			respond.Error(w, log, err)
			return
		}
		if n == 0 {
			respond.Error(w, log, apperror.NewNotFound("Message not found"))
			return
		}
		respond.Data(w, http.StatusOK, n)
	}
}

func deleteHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := requireIDParam(r)
		if err != nil {
			respond.Error(w, log, err)
			return
		}

		n, err := svc.Delete(r.Context(), id)
		if err != nil {
			respond.Error(w, log, err)
			return
		}
		if n == 0 {
			respond.Error(w, log, apperror.NewNotFound("Message not found"))
			return
		}
		respond.Data(w, http.StatusOK, n)
	}
}

func toResponse(m Message) messageResponse {
	return messageResponse{
		ID:           m.ID,
		UserID:       m.UserID,
		MissingPetID: m.MissingPetID,
		Comment:      m.Comment,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toResponses(items []Message) []messageResponse {
	out := make([]messageResponse, 0, len(items))
	for _, m := range items {
		out = append(out, toResponse(m))
	}
	return out
}

func requireIDParam(r *http.Request) (int64, error) {
	values := validate.Values{}
	values.Set("id", chi.URLParam(r, "id"))
	if err := validate.Apply(r.Context(), values, idParamRules()); err != nil {
		return 0, err
	}
	return strconv.ParseInt(values.Get("id"), 10, 64)
}

func strPtr(v validate.Values, field string) *string {
	if !v.Has(field) {
		return nil
	}
	s := v.Get(field)
	return &s
}
