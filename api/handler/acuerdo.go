package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/oicpanel/backend/api/transport"
	"github.com/oicpanel/backend/domain"
	"github.com/oicpanel/backend/pkg/httpcontext"
	"github.com/oicpanel/backend/repository"
	acuerdoUC "github.com/oicpanel/backend/usecase/acuerdo"
)

type AcuerdoHandler struct {
	baseHandler
	uc *acuerdoUC.UseCase
}

func NewAcuerdoHandler(uc *acuerdoUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *AcuerdoHandler {
	return &AcuerdoHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List acuerdos
// @Tags acuerdos
// @Router /api/v1/acuerdos [get]
func (h *AcuerdoHandler) List(ctx *fasthttp.RequestCtx) {
	filter := repository.AcuerdoFilter{
		EnteID: string(ctx.QueryArgs().Peek("ente_id")),
		Estado: string(ctx.QueryArgs().Peek("estado")),
		Limit:  parseInt(string(ctx.QueryArgs().Peek("limit")), 50),
		Offset: parseInt(string(ctx.QueryArgs().Peek("offset")), 0),
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	acuerdos, err := h.uc.List(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, acuerdos)
}

// @Summary Get one acuerdo
// @Tags acuerdos
// @Router /api/v1/acuerdos/{id} [get]
func (h *AcuerdoHandler) Get(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing acuerdo id", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	acuerdo, err := h.uc.Get(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, acuerdo)
}

// @Summary Register an acuerdo
// @Tags acuerdos
// @Router /api/v1/acuerdos [post]
func (h *AcuerdoHandler) Create(ctx *fasthttp.RequestCtx) {
	acuerdo, ok := h.parseAcuerdo(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.Create(stdCtx, acuerdo)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Update an acuerdo
// @Tags acuerdos
// @Router /api/v1/acuerdos/{id} [put]
func (h *AcuerdoHandler) Update(ctx *fasthttp.RequestCtx) {
	acuerdo, ok := h.parseAcuerdo(ctx)
	if !ok {
		return
	}
	if acuerdo.ID == "" {
		if id, ok := ctx.UserValue("id").(string); ok {
			acuerdo.ID = id
		}
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.Update(stdCtx, acuerdo)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Delete an acuerdo
// @Tags acuerdos
// @Router /api/v1/acuerdos/{id} [delete]
func (h *AcuerdoHandler) Delete(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing acuerdo id", nil))
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

// @Summary List seguimientos of an acuerdo
// @Tags acuerdos
// @Router /api/v1/acuerdos/{id}/seguimientos [get]
func (h *AcuerdoHandler) ListSeguimientos(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing acuerdo id", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	seguimientos, err := h.uc.ListSeguimientos(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, seguimientos)
}

// @Summary Add a seguimiento to an acuerdo
// @Tags acuerdos
// @Router /api/v1/acuerdos/{id}/seguimientos [post]
func (h *AcuerdoHandler) AddSeguimiento(ctx *fasthttp.RequestCtx) {
	autorID := h.userID(ctx)
	if autorID == "" {
		return
	}

	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing acuerdo id", nil))
		return
	}

	var req transport.SeguimientoRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || req.Comentario == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	seguimiento := &domain.Seguimiento{
		AcuerdoID:  id,
		AutorID:    autorID,
		Comentario: req.Comentario,
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.AddSeguimiento(stdCtx, seguimiento)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

func (h *AcuerdoHandler) parseAcuerdo(ctx *fasthttp.RequestCtx) (*domain.Acuerdo, bool) {
	var req transport.AcuerdoRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return nil, false
	}

	var fecha *time.Time
	if req.FechaCompromiso != "" {
		if parsed, err := time.Parse(time.RFC3339, req.FechaCompromiso); err == nil {
			fecha = &parsed
		}
	}

	return &domain.Acuerdo{
		ID:              req.ID,
		EnteID:          req.EnteID,
		Descripcion:     req.Descripcion,
		FechaCompromiso: fecha,
		Estado:          req.Estado,
	}, true
}
