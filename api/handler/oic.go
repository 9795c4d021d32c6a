package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/oicpanel/backend/api/transport"
	"github.com/oicpanel/backend/domain"
	"github.com/oicpanel/backend/pkg/httpcontext"
	"github.com/oicpanel/backend/repository"
	oicUC "github.com/oicpanel/backend/usecase/oic"
)

type OICHandler struct {
	baseHandler
	uc *oicUC.UseCase
}

func NewOICHandler(uc *oicUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *OICHandler {
	return &OICHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List OICs
// @Tags oics
// @Router /api/v1/oics [get]
func (h *OICHandler) List(ctx *fasthttp.RequestCtx) {
	filter := repository.OICFilter{
		EnteID:     string(ctx.QueryArgs().Peek("ente_id")),
		ActiveOnly: ctx.QueryArgs().GetBool("activos"),
		Limit:      parseInt(string(ctx.QueryArgs().Peek("limit")), 50),
		Offset:     parseInt(string(ctx.QueryArgs().Peek("offset")), 0),
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	oics, err := h.uc.List(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, oics)
}

// @Summary Get one OIC
// @Tags oics
// @Router /api/v1/oics/{id} [get]
func (h *OICHandler) Get(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing oic id", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	oic, err := h.uc.Get(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, oic)
}

// @Summary Register an OIC
// @Tags oics
// @Router /api/v1/oics [post]
func (h *OICHandler) Create(ctx *fasthttp.RequestCtx) {
	oic, ok := h.parseOIC(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.Create(stdCtx, oic)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Update an OIC
// @Tags oics
// @Router /api/v1/oics/{id} [put]
func (h *OICHandler) Update(ctx *fasthttp.RequestCtx) {
	oic, ok := h.parseOIC(ctx)
	if !ok {
		return
	}
	if oic.ID == "" {
		if id, ok := ctx.UserValue("id").(string); ok {
			oic.ID = id
		}
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.Update(stdCtx, oic)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Delete an OIC
// @Tags oics
// @Router /api/v1/oics/{id} [delete]
func (h *OICHandler) Delete(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing oic id", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Delete(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

func (h *OICHandler) parseOIC(ctx *fasthttp.RequestCtx) (*domain.OIC, bool) {
	var req transport.OICRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return nil, false
	}

	activo := true
	if req.Activo != nil {
		activo = *req.Activo
	}

	return &domain.OIC{
		ID:            req.ID,
		EnteID:        req.EnteID,
		Nombre:        req.Nombre,
		TitularNombre: req.TitularNombre,
		Puesto:        req.Puesto,
		Email:         req.Email,
		Telefono:      req.Telefono,
		Activo:        activo,
	}, true
}
