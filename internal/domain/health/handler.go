package health

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"doggohub/internal/domain/dogs"

	"github.com/go-chi/chi/v5"
)

const dateLayout = "2006-01-02"

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/health-records", func(hr chi.Router) {
		hr.Get("/", getRecordsHandler(svc))
		hr.Post("/", createRecordHandler(svc))
		hr.Delete("/", deleteRecordHandler(svc))
	})
}

type createRecordRequest struct {
	DogID int64  `json:"dogId"`
	Text  string `json:"text"`
}

type recordResponse struct {
	ID    int64  `json:"id"`
	DogID int64  `json:"dogId"`
	Text  string `json:"text"`
	Visit string `json:"visit"`
}

func toRecordResponse(rec Record) recordResponse {
	return recordResponse{
		ID:    rec.ID,
		DogID: rec.DogID,
		Text:  rec.Text,
		Visit: rec.Visit.Format(dateLayout),
	}
}

func createRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		rec, err := svc.Create(r.Context(), CreateInput{
			DogID: req.DogID,
			Text:  req.Text,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toRecordResponse(rec))
	}
}

// getRecordsHandler atiende ?id= (un registro) o ?dogId= (los del perro).
func getRecordsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		if raw := q.Get("id"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				http.Error(w, "invalid id format", http.StatusBadRequest)
				return
			}
			rec, err := svc.GetByID(r.Context(), id)
			if err != nil {
				writeError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, toRecordResponse(rec))
			return
		}

		if raw := q.Get("dogId"); raw != "" {
			dogID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				http.Error(w, "invalid dogId format", http.StatusBadRequest)
				return
			}
			list, err := svc.ListByDog(r.Context(), dogID)
			if err != nil {
				writeError(w, err)
				return
			}
			out := make([]recordResponse, 0, len(list))
			for _, rec := range list {
				out = append(out, toRecordResponse(rec))
			}
			writeJSON(w, http.StatusOK, out)
			return
		}

		http.Error(w, "missing id or dogId parameter", http.StatusBadRequest)
	}
}

func deleteRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get("id")
		if raw == "" {
			http.Error(w, "missing id parameter", http.StatusBadRequest)
			return
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			http.Error(w, "invalid id format", http.StatusBadRequest)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, dogs.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound), errors.Is(err, dogs.ErrNotFound):
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
