package foundpets

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-lost-and-found/internal/apperror"
	"pet-lost-and-found/internal/middleware"
	"pet-lost-and-found/internal/platform/logger"
	"pet-lost-and-found/internal/respond"
	"pet-lost-and-found/internal/uploads"
	"pet-lost-and-found/internal/validate"
)

const maxUploadBytes = 10 << 20

func RegisterRoutes(r chi.Router, svc *Service, photos uploads.Store, requireAuth func(http.Handler) http.Handler, log logger.Logger) {
	r.Route("/api/found-pets", func(fr chi.Router) {
		fr.Get("/", listHandler(svc, log))
		fr.Get("/{id}", getHandler(svc, log))
		fr.Get("/user/{id}", listByUserHandler(svc, log))
		fr.Get("/type/{type}", listByTypeHandler(svc, log))
		fr.Get("/status/{status}", listByStatusHandler(svc, log))
		fr.Get("/location/{location}", listByLocationHandler(svc, log))

		fr.Group(func(pr chi.Router) {
			pr.Use(requireAuth)
			pr.Post("/", createHandler(svc, photos, log))
			pr.Put("/{id}", updateHandler(svc, photos, log))
			pr.Delete("/{id}", deleteHandler(svc, log))
		})
	})
}

type foundPetResponse struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"userId"`
	Type          PetType   `json:"type"`
	Colour        string    `json:"colour"`
	FoundDate     string    `json:"foundDate"`
	FoundLocation string    `json:"foundLocation"`
	Photo         string    `json:"photo,omitempty"`
	Comment       string    `json:"comment"`
	Status        Status    `json:"status"`
	ClaimedDate   *string   `json:"claimedDate"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
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

		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				respond.Error(w, log, apperror.NewNotFound("Data not found"))
				return
			}
			respond.Error(w, log, err)
			return
		}
		respond.Data(w, http.StatusOK, toResponse(p))
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

func listByTypeHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByType(r.Context(), chi.URLParam(r, "type"))
		if err != nil {
			respond.Error(w, log, err)
			return
		}
		respond.Data(w, http.StatusOK, toResponses(items))
	}
}

func listByStatusHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByStatus(r.Context(), chi.URLParam(r, "status"))
		if err != nil {
			respond.Error(w, log, err)
			return
		}
		respond.Data(w, http.StatusOK, toResponses(items))
	}
}

func listByLocationHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByLocation(r.Context(), chi.URLParam(r, "location"))
		if err != nil {
			respond.Error(w, log, err)
			return
		}
		respond.Data(w, http.StatusOK, toResponses(items))
	}
}

func createHandler(svc *Service, photos uploads.Store, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.GetUserID(r.Context())
		if !ok {
			respond.Error(w, log, apperror.NewAuth("Access denied"))
			return
		}

		values, fh, err := formOrJSON(r)
		if err != nil {
			respond.Error(w, log, apperror.NewBadRequest("Invalid JSON"))
			return
		}

		if err := validate.Apply(r.Context(), values, createRules()); err != nil {
			respond.Error(w, log, err)
			return
		}

		photo := ""
		if fh != nil {
			photo, err = photos.Save(fh)
			if err != nil {
				respond.Error(w, log, err)
				return
			}
		}

		foundDate, _ := time.Parse("2006-01-02", values.Get("foundDate"))
		p, err := svc.Create(r.Context(), userID, CreateInput{
			Type:          values.Get("type"),
			Colour:        values.Get("colour"),
			FoundDate:     foundDate,
			FoundLocation: values.Get("foundLocation"),
			Photo:         photo,
			Comment:       values.Get("comment"),
			Status:        values.Get("status"),
			ClaimedDate:   datePtr(values, "claimedDate"),
		})
		if err != nil {
			respond.Error(w, log, err)
			return
		}
		respond.Data(w, http.StatusOK, toResponse(p))
	}
}

func updateHandler(svc *Service, photos uploads.Store, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values, fh, err := formOrJSON(r)
		if err != nil {
			respond.Error(w, log, apperror.NewBadRequest("Invalid JSON"))
			return
		}
		values.Set("id", chi.URLParam(r, "id"))

		if err := validate.Apply(r.Context(), values, updateRules()); err != nil {
			respond.Error(w, log, err)
			return
		}

		var photo *string
		if fh != nil {
			stored, err := photos.Save(fh)
			if err != nil {
				respond.Error(w, log, err)
				return
			}
			photo = &stored
		}

		id, _ := strconv.ParseInt(values.Get("id"), 10, 64)
		n, err := svc.Update(r.Context(), id, UpdateInput{
			Type:          strPtr(values, "type"),
			Colour:        strPtr(values, "colour"),
			FoundDate:     datePtr(values, "foundDate"),
			FoundLocation: strPtr(values, "foundLocation"),
			Photo:         photo,
			Comment:       strPtr(values, "comment"),
			Status:        strPtr(values, "status"),
			ClaimedDate:   datePtr(values, "claimedDate"),
		})
		if err != nil {
			respond.Error(w, log, err)
			return
		}
		if n == 0 {
			respond.Error(w, log, apperror.NewNotFound("Data not found"))
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
			respond.Error(w, log, apperror.NewNotFound("Data not found"))
			return
		}
		respond.Data(w, http.StatusOK, n)
	}
}

func toResponse(p FoundPet) foundPetResponse {
	var claimedDate *string
	if p.ClaimedDate != nil {
		s := p.ClaimedDate.Format("2006-01-02")
		claimedDate = &s
	}
	return foundPetResponse{
		ID:            p.ID,
		UserID:        p.UserID,
		Type:          p.Type,
		Colour:        p.Colour,
		FoundDate:     p.FoundDate.Format("2006-01-02"),
		FoundLocation: p.FoundLocation,
		Photo:         p.Photo,
		Comment:       p.Comment,
		Status:        p.Status,
		ClaimedDate:   claimedDate,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toResponses(items []FoundPet) []foundPetResponse {
	out := make([]foundPetResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toResponse(p))
	}
	return out
}

// formOrJSON está duplicado a propósito entre missingpets y foundpets;
// si aparece un tercer módulo con fotos, recién ahí conviene extraerlo.
func formOrJSON(r *http.Request) (validate.Values, *multipart.FileHeader, error) {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return nil, nil, err
		}
		values := validate.FromForm(r)
		if r.MultipartForm != nil {
			if fhs := r.MultipartForm.File["photo"]; len(fhs) > 0 {
				values.Set("photo", fhs[0].Filename)
				return values, fhs[0], nil
			}
		}
		return values, nil, nil
	}

	values, err := validate.FromJSON(r.Body)
	return values, nil, err
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

func datePtr(v validate.Values, field string) *time.Time {
	if !v.Has(field) || strings.TrimSpace(v.Get(field)) == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", strings.TrimSpace(v.Get(field)))
	if err != nil {
		return nil
	}
	return &t
}
