package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	helper "github.com/lintang-b-s/rankmatch/pkg/http/router/routerhelper"
	"github.com/lintang-b-s/rankmatch/pkg/http/usecases"
	"go.uber.org/zap"
)

const MAX_REQUEST_BODY_BYTES = 8 << 20

type matchingAPI struct {
	matchingService MatchingService
	log             *zap.Logger
}

func New(matchingService MatchingService, log *zap.Logger) *matchingAPI {
	return &matchingAPI{
		matchingService: matchingService,
		log:             log,
	}
}

func (api *matchingAPI) Routes(group *helper.RouteGroup) {
	group.POST("/matching", api.findMatching)
	group.POST("/matching/batch", api.findMatchingBatch)
}

//	@Summary		minimum rank perfect matching
//	@Description	finds the smallest K and a perfect matching where every pair ranked each other within their top K
//	@Tags			matching
//	@Accept			json
//	@Produce		json
//	@Param			body	body		matchingRequest	true	"preference lists of both partitions"
//	@Success		200		{object}	matchingResponse
//	@Failure		400		{object}	errorResponse
//	@Router			/matching [post]
func (api *matchingAPI) findMatching(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request matchingRequest
	if err := api.decodeJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	if err := validateStruct(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	m, err := api.matchingService.FindMatching(r.Context(), request.toInstance())
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewMatchingResponse(m)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

//	@Summary		batch minimum rank perfect matching
//	@Description	solves every instance independently, a failing instance does not fail the batch
//	@Tags			matching
//	@Accept			json
//	@Produce		json
//	@Param			body	body		batchMatchingRequest	true	"matching instances"
//	@Success		200		{object}	[]batchItemResponse
//	@Failure		400		{object}	errorResponse
//	@Router			/matching/batch [post]
func (api *matchingAPI) findMatchingBatch(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request batchMatchingRequest
	if err := api.decodeJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	if err := validateStruct(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	instances := make([]usecases.MatchingInstance, 0, len(request.Instances))
	for _, req := range request.Instances {
		instances = append(instances, req.toInstance())
	}

	results := api.matchingService.FindMatchingBatch(r.Context(), instances)

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewBatchResponse(results)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *matchingAPI) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MAX_REQUEST_BODY_BYTES)
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
