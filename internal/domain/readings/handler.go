package readings

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"soulbuddy/internal/domain/zodiac"
)

const maxFormMemory = 1 << 20

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/astrology", astrologyHandler(svc))
	r.Post("/compatibility", compatibilityHandler(svc))

	r.Route("/readings", func(rr chi.Router) {
		rr.Get("/", listReadingsHandler(svc))
		rr.Get("/{readingID}", getReadingHandler(svc))
	})
}

// astrologyResponse es el sobre de respuesta de /astrology.
type astrologyResponse struct {
	Success    bool   `json:"success"`
	ID         string `json:"id"`
	Response   string `json:"response"`
	ZodiacSign string `json:"zodiac_sign"`
	Format     Format `json:"format"`
}

// compatibilityResponse es el sobre de respuesta de /compatibility.
type compatibilityResponse struct {
	Success  bool   `json:"success"`
	ID       string `json:"id"`
	Response string `json:"response"`
	Format   Format `json:"format"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// readingResponse representa una lectura guardada.
type readingResponse struct {
	ID         string    `json:"id"`
	Kind       Kind      `json:"kind"`
	Subject    string    `json:"subject"`
	ZodiacSign string    `json:"zodiac_sign,omitempty"`
	Response   string    `json:"response"`
	Model      string    `json:"model"`
	CreatedAt  time.Time `json:"created_at"`
}

// astrologyHandler godoc
// @Summary Lectura astrológica personal
// @Description Calcula el signo a partir de date_of_birth (DD-MM-YYYY), genera la lectura con el modelo y devuelve HTML normalizado (<strong> => **x**, <em> => _x_). Acepta form-urlencoded, multipart o JSON.
// @Tags readings
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param name formData string true "Nombre"
// @Param date_of_birth formData string true "Fecha de nacimiento DD-MM-YYYY"
// @Param time_of_birth formData string true "Hora de nacimiento"
// @Param gender formData string true "Género"
// @Param state formData string true "Estado"
// @Param city formData string true "Ciudad"
// @Param format query string false "html (default) o markdown"
// @Success 200 {object} astrologyResponse
// @Failure 400 {object} errorResponse "campo faltante / fecha inválida"
// @Failure 502 {object} errorResponse "falla del backend generativo"
// @Router /astrology [post]
func astrologyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		format, ok := parseFormat(r.URL.Query().Get("format"))
		if !ok {
			writeError(w, http.StatusBadRequest, "format must be html or markdown")
			return
		}

		vals, err := inputValues(w, r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		reading, err := svc.Astrology(r.Context(), BirthDetails{
			Name:        vals["name"],
			DateOfBirth: vals["date_of_birth"],
			TimeOfBirth: vals["time_of_birth"],
			Gender:      vals["gender"],
			State:       vals["state"],
			City:        vals["city"],
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		body, err := svc.Render(reading, format)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, astrologyResponse{
			Success:    true,
			ID:         reading.ID,
			Response:   body,
			ZodiacSign: string(reading.ZodiacSign),
			Format:     format,
		})
	}
}

// compatibilityHandler godoc
// @Summary Lectura de compatibilidad
// @Description Genera un análisis de compatibilidad entre dos personas y sus signos. Las lecturas se cachean por nombres y signos.
// @Tags readings
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param your_name formData string true "Tu nombre"
// @Param your_sign formData string true "Tu signo"
// @Param partner_name formData string true "Nombre de la pareja"
// @Param partner_sign formData string true "Signo de la pareja"
// @Param format query string false "html (default) o markdown"
// @Success 200 {object} compatibilityResponse
// @Failure 400 {object} errorResponse "campo faltante / signo desconocido"
// @Failure 502 {object} errorResponse "falla del backend generativo"
// @Router /compatibility [post]
func compatibilityHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		format, ok := parseFormat(r.URL.Query().Get("format"))
		if !ok {
			writeError(w, http.StatusBadRequest, "format must be html or markdown")
			return
		}

		vals, err := inputValues(w, r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		reading, err := svc.Compatibility(r.Context(), CompatibilityInput{
			YourName:    vals["your_name"],
			YourSign:    vals["your_sign"],
			PartnerName: vals["partner_name"],
			PartnerSign: vals["partner_sign"],
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		body, err := svc.Render(reading, format)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, compatibilityResponse{
			Success:  true,
			ID:       reading.ID,
			Response: body,
			Format:   format,
		})
	}
}

// listReadingsHandler godoc
// @Summary Lecturas recientes
// @Tags readings
// @Produce json
// @Param limit query int false "Máximo de lecturas (default 20, máx 100)"
// @Success 200 {array} readingResponse
// @Router /readings [get]
func listReadingsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if v := strings.TrimSpace(r.URL.Query().Get("limit")); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				writeError(w, http.StatusBadRequest, "limit must be a positive integer")
				return
			}
			limit = n
		}

		items, err := svc.Recent(r.Context(), limit)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		out := make([]readingResponse, 0, len(items))
		for _, it := range items {
			out = append(out, toReadingResponse(it))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getReadingHandler godoc
// @Summary Obtener lectura
// @Tags readings
// @Produce json
// @Param readingID path string true "ID de la lectura"
// @Success 200 {object} readingResponse
// @Failure 404 {object} errorResponse
// @Router /readings/{readingID} [get]
func getReadingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reading, err := svc.Get(r.Context(), chi.URLParam(r, "readingID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toReadingResponse(reading))
	}
}

// inputValues lee el body como JSON (objeto de strings) o como form.
// Cualquiera de los dos se corta en maxFormMemory.
func inputValues(w http.ResponseWriter, r *http.Request) (map[string]string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormMemory)
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if ct == "application/json" {
		var m map[string]string
		if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
			return nil, err
		}
		return m, nil
	}

	if ct == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxFormMemory); err != nil {
			return nil, err
		}
	} else if err := r.ParseForm(); err != nil {
		return nil, err
	}

	out := make(map[string]string, len(r.PostForm))
	for k := range r.PostForm {
		out[k] = r.PostForm.Get(k)
	}
	return out, nil
}

func writeServiceError(w http.ResponseWriter, err error) {
	var mf *MissingFieldError
	var ide *zodiac.InvalidDateError

	switch {
	case errors.As(err, &mf):
		writeError(w, http.StatusBadRequest, mf.Error())
	case errors.As(err, &ide):
		writeError(w, http.StatusBadRequest, ide.Error())
	case errors.Is(err, ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, "reading not found")
	case errors.Is(err, ErrGeneration):
		writeError(w, http.StatusBadGateway, "generation backend error")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func parseFormat(s string) (Format, bool) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatHTML:
		return FormatHTML, true
	case FormatMarkdown:
		return FormatMarkdown, true
	default:
		return "", false
	}
}

func toReadingResponse(r Reading) readingResponse {
	return readingResponse{
		ID:         r.ID,
		Kind:       r.Kind,
		Subject:    r.Subject,
		ZodiacSign: string(r.ZodiacSign),
		Response:   r.HTML,
		Model:      r.Model,
		CreatedAt:  r.CreatedAt,
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Success: false, Error: msg})
}

// writeJSON está duplicado en handlers de distintos módulos (readings/zodiac)
// para no crear un paquete de helpers todavía.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
