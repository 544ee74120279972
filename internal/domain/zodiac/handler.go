package zodiac

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"soulbuddy/internal/ports/signinfo"
)

func RegisterRoutes(r chi.Router, lookup signinfo.Lookup) {
	r.Route("/signs", func(sr chi.Router) {
		sr.Get("/", listSignsHandler(lookup))
		sr.Get("/classify", classifyHandler())
		sr.Get("/{sign}", getSignHandler(lookup))
	})
}

// signResponse describe un signo con su rango y datos del dataset.
type signResponse struct {
	Sign         Sign   `json:"sign"`
	Start        string `json:"start"`
	End          string `json:"end"`
	Element      string `json:"element,omitempty"`
	RulingPlanet string `json:"ruling_planet,omitempty"`
	Description  string `json:"description"`
}

type classifyResponse struct {
	Date string `json:"date"`
	Sign Sign   `json:"zodiac_sign"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// listSignsHandler godoc
// @Summary Listar signos
// @Description Los doce signos en orden de evaluación con su rango de fechas y descripción.
// @Tags signs
// @Produce json
// @Success 200 {array} signResponse
// @Router /signs [get]
func listSignsHandler(lookup signinfo.Lookup) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		out := make([]signResponse, 0, len(ranges))
		for _, rg := range Ranges() {
			out = append(out, toSignResponse(rg, lookup))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getSignHandler godoc
// @Summary Descripción de un signo
// @Description Para nombres desconocidos devuelve 404 con el texto de fallback como description.
// @Tags signs
// @Produce json
// @Param sign path string true "Nombre del signo (sin distinguir mayúsculas)"
// @Success 200 {object} signResponse
// @Failure 404 {object} signResponse
// @Router /signs/{sign} [get]
func getSignHandler(lookup signinfo.Lookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "sign")
		s, err := ParseSign(name)
		if err != nil {
			writeJSON(w, http.StatusNotFound, signResponse{
				Sign:        Sign(name),
				Description: lookup.Description(name),
			})
			return
		}

		rg, _ := RangeOf(s)
		writeJSON(w, http.StatusOK, toSignResponse(rg, lookup))
	}
}

// classifyHandler godoc
// @Summary Clasificar fecha
// @Description Devuelve el signo de una fecha DD-MM-YYYY (separadores - / . o espacio).
// @Tags signs
// @Produce json
// @Param date query string true "Fecha DD-MM-YYYY"
// @Success 200 {object} classifyResponse
// @Failure 400 {object} errorResponse "fecha inválida"
// @Router /signs/classify [get]
func classifyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := r.URL.Query().Get("date")
		s, err := ClassifySign(date)
		if err != nil {
			var ide *InvalidDateError
			if errors.As(err, &ide) {
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: ide.Error()})
				return
			}
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			return
		}
		writeJSON(w, http.StatusOK, classifyResponse{Date: date, Sign: s})
	}
}

func toSignResponse(rg Range, lookup signinfo.Lookup) signResponse {
	resp := signResponse{
		Sign:        rg.Sign,
		Start:       rg.Start.String(),
		End:         rg.End.String(),
		Description: lookup.Description(string(rg.Sign)),
	}
	if e, ok := lookup.Entry(string(rg.Sign)); ok {
		resp.Element = e.Element
		resp.RulingPlanet = e.RulingPlanet
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
