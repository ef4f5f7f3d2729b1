package dogs

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"doggohub/internal/domain/owners"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/dogs", func(dr chi.Router) {
		dr.Get("/", getDogsHandler(svc))
		dr.Post("/", createDogHandler(svc))
		dr.Patch("/", updateDogHandler(svc))
		dr.Delete("/", deleteDogHandler(svc))
	})
}

type createDogRequest struct {
	Name     string `json:"name"`
	BirthDay string `json:"birthDay"` // YYYY-MM-DD
	Breed    string `json:"breed"`
	Color    string `json:"color"`
	Gender   string `json:"gender"`
	Weight   *int   `json:"weight"`
	OwnerID  int64  `json:"ownerId"`
}

type updateDogRequest struct {
	Name   *string `json:"name"`
	Weight *int    `json:"weight"`
}

func createDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createDogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var bd time.Time
		if strings.TrimSpace(req.BirthDay) != "" {
			t, err := time.Parse(dateLayout, req.BirthDay)
			if err != nil {
				http.Error(w, "birthDay must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			bd = t
		}

		d, owner, err := svc.Create(r.Context(), CreateInput{
			Name:     req.Name,
			BirthDay: bd,
			Breed:    Breed(req.Breed),
			Color:    Color(req.Color),
			Gender:   Gender(req.Gender),
			Weight:   req.Weight,
			OwnerID:  req.OwnerID,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, ToResponse(d, owner))
	}
}

// getDogsHandler atiende ?id= (un perro) o ?ownerId= (todos los del owner).
func getDogsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		if raw := q.Get("id"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				http.Error(w, "invalid id format", http.StatusBadRequest)
				return
			}
			d, owner, err := svc.GetByID(r.Context(), id)
			if err != nil {
				writeError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, ToResponse(d, owner))
			return
		}

		if raw := q.Get("ownerId"); raw != "" {
			ownerID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				http.Error(w, "invalid ownerId format", http.StatusBadRequest)
				return
			}
			list, owner, err := svc.ListByOwner(r.Context(), ownerID)
			if err != nil {
				writeError(w, err)
				return
			}
			out := make([]Response, 0, len(list))
			for _, d := range list {
				out = append(out, ToResponse(d, owner))
			}
			writeJSON(w, http.StatusOK, out)
			return
		}

		http.Error(w, "missing id or ownerId parameter", http.StatusBadRequest)
	}
}

func updateDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r)
		if !ok {
			return
		}

		var req updateDogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d, owner, err := svc.Update(r.Context(), id, UpdateInput{
			Name:   req.Name,
			Weight: req.Weight,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ToResponse(d, owner))
	}
}

func deleteDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func idParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.URL.Query().Get("id")
	if raw == "" {
		http.Error(w, "missing id parameter", http.StatusBadRequest)
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		http.Error(w, "invalid id format", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, owners.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound), errors.Is(err, owners.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, "internal error: "+err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
