package importcsv

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hmdang/bluemoon/internal/importer"
	"github.com/hmdang/bluemoon/internal/resident"
)

type Handler struct {
	importSvc   *importer.Service
	residentSvc *resident.Service
}

func NewHandler(importSvc *importer.Service, residentSvc *resident.Service) *Handler {
	return &Handler{
		importSvc:   importSvc,
		residentSvc: residentSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importRoster)
	r.Post("/confirm", h.confirmImport)
}

type residentResponse struct {
	ID          uuid.UUID `json:"id"`
	FullName    string    `json:"full_name"`
	NationalID  string    `json:"national_id"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Gender      string    `json:"gender,omitempty"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type importSuccessResponse struct {
	Imported  int                `json:"imported"`
	Residents []residentResponse `json:"residents"`
}

type createParamsDTO struct {
	FullName    string    `json:"full_name"`
	NationalID  string    `json:"national_id"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Gender      string    `json:"gender,omitempty"`
	PhoneNumber string    `json:"phone_number,omitempty"`
}

type conflictDTO struct {
	Incoming createParamsDTO  `json:"incoming"`
	Existing residentResponse `json:"existing"`
}

type importConflictResponse struct {
	New       []createParamsDTO `json:"new"`
	Conflicts []conflictDTO     `json:"conflicts"`
}

type confirmRequest struct {
	Params []createParamsDTO `json:"params"`
}

func (h *Handler) importRoster(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	format := importer.Format(r.FormValue("format"))
	if format == "" {
		format = importer.FormatCSV
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	params, err := h.importSvc.Import(format, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.residentSvc.ImportBatch(r.Context(), params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if len(result.Conflicts) > 0 {
		resp := importConflictResponse{
			New:       make([]createParamsDTO, 0, len(result.New)),
			Conflicts: make([]conflictDTO, 0, len(result.Conflicts)),
		}

		for _, p := range result.New {
			resp.New = append(resp.New, toParamsDTO(p))
		}

		for _, c := range result.Conflicts {
			resp.Conflicts = append(resp.Conflicts, conflictDTO{
				Incoming: toParamsDTO(c.Incoming),
				Existing: toResponse(c.Existing),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			slog.Error("failed to encode response", "error", err)
		}

		return
	}

	writeImported(w, result.Imported)
}

func (h *Handler) confirmImport(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := make([]resident.CreateParams, len(req.Params))
	for i, p := range req.Params {
		params[i] = resident.CreateParams{
			FullName:    p.FullName,
			NationalID:  p.NationalID,
			DateOfBirth: p.DateOfBirth,
			Gender:      p.Gender,
			PhoneNumber: p.PhoneNumber,
		}
	}

	residents, err := h.residentSvc.CreateBatch(r.Context(), params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeImported(w, residents)
}

func writeImported(w http.ResponseWriter, residents []*resident.Resident) {
	resp := importSuccessResponse{
		Imported:  len(residents),
		Residents: make([]residentResponse, 0, len(residents)),
	}

	for _, res := range residents {
		resp.Residents = append(resp.Residents, toResponse(res))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func toResponse(res *resident.Resident) residentResponse {
	return residentResponse{
		ID:          res.ID,
		FullName:    res.FullName,
		NationalID:  res.NationalID,
		DateOfBirth: res.DateOfBirth,
		Gender:      res.Gender,
		PhoneNumber: res.PhoneNumber,
		CreatedAt:   res.CreatedAt,
	}
}

func toParamsDTO(p resident.CreateParams) createParamsDTO {
	return createParamsDTO{
		FullName:    p.FullName,
		NationalID:  p.NationalID,
		DateOfBirth: p.DateOfBirth,
		Gender:      p.Gender,
		PhoneNumber: p.PhoneNumber,
	}
}
