package users

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-lost-and-found/internal/apperror"
	"pet-lost-and-found/internal/auth"
	"pet-lost-and-found/internal/platform/logger"
	"pet-lost-and-found/internal/respond"
	"pet-lost-and-found/internal/validate"
)

func RegisterRoutes(r chi.Router, svc *Service, tokens *auth.Tokens, requireAuth func(http.Handler) http.Handler, log logger.Logger) {
	r.Route("/api/users", func(ur chi.Router) {
		ur.Get("/", listUsersHandler(svc, log))
		ur.Get("/{id}", getUserHandler(svc, log))

		// Registro y login quedan públicos; sin ellos nadie obtiene token.
		ur.Post("/", createUserHandler(svc, log))
		ur.Post("/login", loginHandler(svc, tokens, log))

		ur.Group(func(pr chi.Router) {
			pr.Use(requireAuth)
			pr.Put("/{id}", updateUserHandler(svc, log))
			pr.Delete("/{id}", deleteUserHandler(svc, log))
		})
	})
}

// userResponse nunca incluye el password, ni siquiera hasheado.
type userResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

func listUsersHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respond.Error(w, log, err)
			return
		}

		out := make([]userResponse, 0, len(items))
		for _, u := range items {
			out = append(out, toUserResponse(u))
		}
		respond.Data(w, http.StatusOK, out)
	}
}

func getUserHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := requireIDParam(r)
		if err != nil {
			respond.Error(w, log, err)
			return
		}

		u, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				respond.Error(w, log, apperror.NewNotFound("User not found"))
				return
			}
			respond.Error(w, log, err)
			return
		}
		respond.Data(w, http.StatusOK, toUserResponse(u))
	}
}

func createUserHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values, err := validate.FromJSON(r.Body)
		if err != nil {
			respond.Error(w, log, apperror.NewBadRequest("Invalid JSON"))
			return
		}

		lookup := func(ctx context.Context, email string) (bool, error) {
			return svc.EmailTaken(ctx, email, 0)
		}
		if err := validate.Apply(r.Context(), values, createRules(lookup)); err != nil {
			respond.Error(w, log, err)
			return
		}

		u, err := svc.Create(r.Context(), CreateInput{
			Name:     values.Get("name"),
			Email:    values.Get("email"),
			Password: values.Get("password"),
		})
		if err != nil {
			respond.Error(w, log, err)
			return
		}
		respond.Data(w, http.StatusOK, toUserResponse(u))
	}
}

func loginHandler(svc *Service, tokens *auth.Tokens, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values, err := validate.FromJSON(r.Body)
		if err != nil {
			respond.Error(w, log, apperror.NewBadRequest("Invalid JSON"))
			return
		}

		u, err := svc.Authenticate(r.Context(), values.Get("email"), values.Get("password"))
		if err != nil {
			if errors.Is(err, ErrInvalidCredentials) {
				respond.Error(w, log, apperror.NewAuth("Invalid credentials"))
				return
			}
			respond.Error(w, log, err)
			return
		}

		token, err := tokens.Issue(u.ID)
		if err != nil {
			respond.Error(w, log, err)
			return
		}
		respond.Data(w, http.StatusOK, loginResponse{Token: token, User: toUserResponse(u)})
	}
}

func updateUserHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values, err := validate.FromJSON(r.Body)
		if err != nil {
			respond.Error(w, log, apperror.NewBadRequest("Invalid JSON"))
			return
		}
		values.Set("id", chi.URLParam(r, "id"))

		// El chequeo de unicidad excluye al propio registro.
		excludeID, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		lookup := func(ctx context.Context, email string) (bool, error) {
			return svc.EmailTaken(ctx, email, excludeID)
		}
		if err := validate.Apply(r.Context(), values, updateRules(lookup)); err != nil {
			respond.Error(w, log, err)
			return
		}

		n, err := svc.Update(r.Context(), excludeID, UpdateInput{
			Name:     strPtr(values, "name"),
			Email:    strPtr(values, "email"),
			Password: strPtr(values, "password"),
		})
		if err != nil {
			respond.Error(w, log, err)
			return
		}
		if n == 0 {
			respond.Error(w, log, apperror.NewNotFound("User not found"))
			return
		}
		respond.Data(w, http.StatusOK, n)
	}
}

func deleteUserHandler(svc *Service, log logger.Logger) http.HandlerFunc {
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
			respond.Error(w, log, apperror.NewNotFound("User not found"))
			return
		}
		respond.Data(w, http.StatusOK, n)
	}
}

func toUserResponse(u User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// requireIDParam valida el path param y lo devuelve parseado.
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
