package api

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/framefit/pkg/canvas"
	"github.com/matzehuels/framefit/pkg/errors"
	"github.com/matzehuels/framefit/pkg/geometry"
	"github.com/matzehuels/framefit/pkg/logos"
	"github.com/matzehuels/framefit/pkg/observability"
	"github.com/matzehuels/framefit/pkg/pipeline"
	"github.com/matzehuels/framefit/pkg/render"
	"github.com/matzehuels/framefit/pkg/safezone"
	"github.com/matzehuels/framefit/pkg/store"
	"github.com/matzehuels/framefit/pkg/validate"
)

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// errorBody is the JSON error envelope: a stable machine code plus a
// human-readable message.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondError(w http.ResponseWriter, r *http.Request, err error) {
	observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)
	respondJSON(w, statusFor(err), map[string]errorBody{"error": {
		Code:    string(errors.GetCode(err)),
		Message: errors.UserMessage(err),
	}})
}

func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound, errors.ErrCodePlanNotFound:
		return http.StatusNotFound
	case errors.ErrCodeInternal:
		return http.StatusInternalServerError
	case errors.ErrCodeUnsupported:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

func decodeOptions(r *http.Request) (*pipeline.Options, error) {
	var opts pipeline.Options
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body")
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	return &opts, nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// layoutResponse wraps a computed layout with its stored plan identity.
type layoutResponse struct {
	ID        string           `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Result    *pipeline.Result `json:"result"`
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	opts, err := decodeOptions(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	result, err := s.runner.Execute(r.Context(), *opts)
	if err != nil {
		respondError(w, r, err)
		return
	}

	optsJSON, err := json.Marshal(opts)
	if err != nil {
		respondError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "failed to encode options"))
		return
	}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		respondError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "failed to encode result"))
		return
	}

	plan := store.NewPlan(optsJSON, resultJSON, opts.OptionsHash())
	if err := s.store.Put(r.Context(), plan); err != nil {
		s.logger.Warn("failed to persist plan", "error", err)
	}

	if r.URL.Query().Get("debug") == "svg" {
		svg, err := render.OverlaySVG(opts, result, render.WithLegend())
		if err != nil {
			respondError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "failed to render overlay"))
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Header().Set("X-Plan-Id", plan.ID)
		w.WriteHeader(http.StatusOK)
		w.Write(svg)
		return
	}

	respondJSON(w, http.StatusOK, layoutResponse{
		ID:        plan.ID,
		CreatedAt: plan.CreatedAt,
		Result:    result,
	})
}

// validateRequest re-checks a previously computed layout, for example after
// editing a stored plan by hand.
type validateRequest struct {
	Options *pipeline.Options `json:"options"`
	Result  *pipeline.Result  `json:"result"`
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body"))
		return
	}
	if req.Options == nil || req.Result == nil {
		respondError(w, r, errors.New(errors.ErrCodeInvalidInput, "options and result are required"))
		return
	}
	if err := req.Options.ValidateAndSetDefaults(); err != nil {
		respondError(w, r, err)
		return
	}

	t := req.Result.Text
	textBounds := geometry.ResolveBounds(
		geometry.Point{X: t.X, Y: t.Y},
		geometry.Anchor(t.Anchor),
		geometry.Size{Width: t.Width, Height: t.Height},
	)
	elements := []validate.Element{
		{Name: "headline", Type: validate.TypeText, Bounds: textBounds},
	}
	for _, lp := range req.Result.Logos {
		elements = append(elements, validate.Element{
			Name:   lp.Name,
			Type:   validate.TypeLogo,
			Bounds: lp.Bounds(),
		})
	}

	var subject *geometry.Rect
	if req.Options.Subject != nil {
		rect := req.Options.Subject.Rect()
		subject = &rect
	}

	res := validate.Placement(elements, subject, &textBounds, req.Options.Canvas(), validate.Options{
		Class: req.Options.DeviceClass(),
	})
	respondJSON(w, http.StatusOK, res)
}

func (s *Server) handleLogos(w http.ResponseWriter, r *http.Request) {
	opts, err := decodeOptions(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if len(opts.Logos) == 0 {
		respondError(w, r, errors.New(errors.ErrCodeInvalidInput, "at least one logo is required"))
		return
	}

	slot, _ := logos.SlotByKey(opts.Slot)
	placed := logos.AlignToGrid(opts.LogoItems(), slot, opts.Canvas(), logos.AlignOptions{})
	plans := make([]pipeline.LogoPlan, len(placed))
	for i, p := range placed {
		plans[i] = pipeline.LogoPlan{
			Name:   p.Name,
			X:      p.Bounds.X,
			Y:      p.Bounds.Y,
			Width:  p.Bounds.Width,
			Height: p.Bounds.Height,
			Anchor: string(p.Anchor),
			Slot:   p.SlotKey,
		}
	}
	respondJSON(w, http.StatusOK, map[string]any{"logos": plans})
}

// zonesResponse describes the safe area for a device class on a canvas.
type zonesResponse struct {
	Class       string     `json:"class"`
	Margins     marginsDTO `json:"margins"`
	SafeArea    rectDTO    `json:"safe_area"`
	DangerZones []zoneDTO  `json:"danger_zones"`
}

type marginsDTO struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type rectDTO struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type zoneDTO struct {
	Label string  `json:"label"`
	Rect  rectDTO `json:"rect"`
}

func toRectDTO(r geometry.Rect) rectDTO {
	return rectDTO{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

func (s *Server) handleZones(w http.ResponseWriter, r *http.Request) {
	class := safezone.DeviceClass(chi.URLParam(r, "class"))
	if class != safezone.Desktop && class != safezone.Mobile {
		respondError(w, r, errors.New(errors.ErrCodeInvalidInput, "unknown device class: %q", class))
		return
	}

	c := canvas.Default()
	if wq := r.URL.Query().Get("width"); wq != "" {
		if v, err := strconv.ParseFloat(wq, 64); err == nil {
			c.Width = v
		}
	}
	if hq := r.URL.Query().Get("height"); hq != "" {
		if v, err := strconv.ParseFloat(hq, 64); err == nil {
			c.Height = v
		}
	}
	if !c.Valid() {
		respondError(w, r, errors.New(errors.ErrCodeInvalidCanvas, "canvas %.0fx%.0f is not usable", c.Width, c.Height))
		return
	}

	zones := safezone.Defaults()
	m := zones.MarginsFor(class, c)
	resp := zonesResponse{
		Class:    string(class),
		Margins:  marginsDTO{X: m.X, Y: m.Y},
		SafeArea: toRectDTO(zones.SafeArea(class, c)),
	}
	for _, z := range zones.DangerZones(c) {
		resp.DangerZones = append(resp.DangerZones, zoneDTO{Label: z.Label, Rect: toRectDTO(z.Rect)})
	}
	respondJSON(w, http.StatusOK, resp)
}

// slotResponse describes one logo slot preset.
type slotResponse struct {
	Key         string `json:"key"`
	Kind        string `json:"kind"`
	Anchor      string `json:"anchor"`
	Discouraged bool   `json:"discouraged,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

func (s *Server) handleSlots(w http.ResponseWriter, r *http.Request) {
	keys := logos.SlotKeys()
	sort.Strings(keys)

	out := make([]slotResponse, 0, len(keys))
	for _, k := range keys {
		slot, _ := logos.SlotByKey(k)
		out = append(out, slotResponse{
			Key:         slot.Key,
			Kind:        string(slot.Kind),
			Anchor:      string(slot.Anchor),
			Discouraged: slot.Discouraged,
			Reason:      slot.Reason,
		})
	}
	respondJSON(w, http.StatusOK, map[string]any{"slots": out})
}

func (s *Server) handleListPlans(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if lq := r.URL.Query().Get("limit"); lq != "" {
		v, err := strconv.Atoi(lq)
		if err != nil || v < 0 {
			respondError(w, r, errors.New(errors.ErrCodeInvalidInput, "invalid limit: %q", lq))
			return
		}
		limit = v
	}

	plans, err := s.store.List(r.Context(), limit)
	if err != nil {
		respondError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "failed to list plans"))
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"plans": plans})
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := errors.ValidatePlanID(id); err != nil {
		respondError(w, r, err)
		return
	}

	plan, err := s.store.Get(r.Context(), id)
	if err == store.ErrNotFound {
		respondError(w, r, errors.New(errors.ErrCodePlanNotFound, "plan %s not found", id))
		return
	}
	if err != nil {
		respondError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "failed to load plan"))
		return
	}
	respondJSON(w, http.StatusOK, plan)
}

func (s *Server) handleDeletePlan(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := errors.ValidatePlanID(id); err != nil {
		respondError(w, r, err)
		return
	}

	if err := s.store.Delete(r.Context(), id); err != nil {
		respondError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "failed to delete plan"))
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
