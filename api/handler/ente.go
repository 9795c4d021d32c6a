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
	enteUC "github.com/oicpanel/backend/usecase/ente"
)

type EnteHandler struct {
	baseHandler
	uc *enteUC.UseCase
}

func NewEnteHandler(uc *enteUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *EnteHandler {
	return &EnteHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List entes públicos
// @Tags entes
// @Router /api/v1/entes [get]
func (h *EnteHandler) List(ctx *fasthttp.RequestCtx) {
	filter := repository.EnteFilter{
		Ambito:     string(ctx.QueryArgs().Peek("ambito")),
		Poder:      string(ctx.QueryArgs().Peek("poder")),
		ActiveOnly: ctx.QueryArgs().GetBool("activos"),
		Limit:      parseInt(string(ctx.QueryArgs().Peek("limit")), 50),
		Offset:     parseInt(string(ctx.QueryArgs().Peek("offset")), 0),
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	entes, err := h.uc.List(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, entes)
}

// @Summary Get one ente
// @Tags entes
// @Router /api/v1/entes/{id} [get]
func (h *EnteHandler) Get(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing ente id", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	ente, err := h.uc.Get(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, ente)
}

// @Summary Register an ente
// @Tags entes
// @Router /api/v1/entes [post]
func (h *EnteHandler) Create(ctx *fasthttp.RequestCtx) {
	ente, ok := h.parseEnte(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.Create(stdCtx, ente)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Update an ente
// @Tags entes
// @Router /api/v1/entes/{id} [put]
func (h *EnteHandler) Update(ctx *fasthttp.RequestCtx) {
	ente, ok := h.parseEnte(ctx)
	if !ok {
		return
	}
	if ente.ID == "" {
		if id, ok := ctx.UserValue("id").(string); ok {
			ente.ID = id
		}
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.Update(stdCtx, ente)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Delete an ente
// @Tags entes
// @Router /api/v1/entes/{id} [delete]
func (h *EnteHandler) Delete(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing ente id", nil))
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

func (h *EnteHandler) parseEnte(ctx *fasthttp.RequestCtx) (*domain.Ente, bool) {
	var req transport.EnteRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return nil, false
	}

	activo := true
	if req.Activo != nil {
		activo = *req.Activo
	}

	return &domain.Ente{
		ID:            req.ID,
		Nombre:        req.Nombre,
		Siglas:        req.Siglas,
		Ambito:        req.Ambito,
		Poder:         req.Poder,
		TitularNombre: req.TitularNombre,
		TitularCargo:  req.TitularCargo,
		Activo:        activo,
	}, true
}
