package missingpets

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
	r.Route("/api/missing-pets", func(mr chi.Router) {
		// Lectura pública: cualquiera puede buscar avisos sin cuenta.
		mr.Get("/", listHandler(svc, log))
		mr.Get("/{id}", getHandler(svc, log))
		mr.Get("/user/{id}", listByUserHandler(svc, log))
		mr.Get("/type/{type}", listByTypeHandler(svc, log))
		mr.Get("/status/{status}", listByStatusHandler(svc, log))
		mr.Get("/location/{location}", listByLocationHandler(svc, log))

		mr.Group(func(pr chi.Router) {
			pr.Use(requireAuth)
			pr.Post("/", createHandler(svc, photos, log))
			pr.Put("/{id}", updateHandler(svc, photos, log))
			pr.Delete("/{id}", deleteHandler(svc, log))
		})
	})
}

type missingPetResponse struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"userId"`
	Name             string    `json:"name"`
	Type             PetType   `json:"type"`
	Colour           string    `json:"colour"`
	LostDate         string    `json:"lostDate"`
	LastSeenLocation string    `json:"lastSeenLocation"`
	Photo            string    `json:"photo,omitempty"`
	Comment          string    `json:"comment"`
	Status           Status    `json:"status"`
	FoundDate        *string   `json:"foundDate"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
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

		// La foto se guarda recién después de validar; el registro solo
		// persiste la referencia.
		photo := ""
		if fh != nil {
			photo, err = photos.Save(fh)
			if err != nil {
				respond.Error(w, log, err)
				return
			}
		}

		lostDate, _ := time.Parse("2006-01-02", values.Get("lostDate"))
		p, err := svc.Create(r.Context(), userID, CreateInput{
			Name:             values.Get("name"),
			Type:             values.Get("type"),
			Colour:           values.Get("colour"),
			LostDate:         lostDate,
			LastSeenLocation: values.Get("lastSeenLocation"),
			Photo:            photo,
			Comment:          values.Get("comment"),
			Status:           values.Get("status"),
			FoundDate:        datePtr(values, "foundDate"),
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
			Name:             strPtr(values, "name"),
			Type:             strPtr(values, "type"),
			Colour:           strPtr(values, "colour"),
			LostDate:         datePtr(values, "lostDate"),
			LastSeenLocation: strPtr(values, "lastSeenLocation"),
			Photo:            photo,
			Comment:          strPtr(values, "comment"),
			Status:           strPtr(values, "status"),
			FoundDate:        datePtr(values, "foundDate"),
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

func toResponse(p MissingPet) missingPetResponse {
	var foundDate *string
	if p.FoundDate != nil {
		s := p.FoundDate.Format("2006-01-02")
		foundDate = &s
	}
	return missingPetResponse{
		ID:               p.ID,
		UserID:           p.UserID,
		Name:             p.Name,
		Type:             p.Type,
		Colour:           p.Colour,
		LostDate:         p.LostDate.Format("2006-01-02"),
		LastSeenLocation: p.LastSeenLocation,
		Photo:            p.Photo,
		Comment:          p.Comment,
		Status:           p.Status,
		FoundDate:        foundDate,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func toResponses(items []MissingPet) []missingPetResponse {
	out := make([]missingPetResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toResponse(p))
	}
	return out
}

// formOrJSON acepta multipart/form-data (create/update con foto) o JSON.
// Si viene archivo en "photo", el filename original entra a Values para
// que la regla de extensión lo valide.
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
