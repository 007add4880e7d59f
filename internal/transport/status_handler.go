// Package transport exposes gRPC/HTTP handlers.
package transport

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/headeroracle/internal/headers/model"
	"github.com/goodnatureofminers/headeroracle/internal/headers/oracle"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type positionResponse struct {
	Height int64  `json:"height"`
	Hash   string `json:"hash"`
}

type bestResponse struct {
	Coin    string           `json:"coin"`
	Network string           `json:"network"`
	Tip     positionResponse `json:"tip"`
}

type checkpointResponse struct {
	Checkpoint *positionResponse `json:"checkpoint"`
}

type headerResponse struct {
	Hash       string `json:"hash"`
	ParentHash string `json:"parent_hash"`
	Height     *int64 `json:"height"`
	Work       string `json:"work"`
	InBest     bool   `json:"in_best_chain"`
}

type reorgResponse struct {
	Tip   positionResponse   `json:"tip"`
	Added []positionResponse `json:"added"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// StatusHandler serves read-only views of the oracle state as JSON.
type StatusHandler struct {
	oracle HeaderOracle
	logger *zap.Logger
	mux    *http.ServeMux
}

// NewStatusHandler returns a StatusHandler instance.
func NewStatusHandler(o HeaderOracle, logger *zap.Logger) (*StatusHandler, error) {
	if o == nil {
		return nil, errors.New("header oracle is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	h := &StatusHandler{
		oracle: o,
		logger: logger.Named("status_handler"),
		mux:    http.NewServeMux(),
	}
	h.mux.HandleFunc("GET /v1/best", h.best)
	h.mux.HandleFunc("GET /v1/checkpoint", h.checkpoint)
	h.mux.HandleFunc("GET /v1/headers/{hash}", h.header)
	h.mux.HandleFunc("GET /v1/reorg/{height}/{hash}", h.reorg)
	return h, nil
}

func (h *StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *StatusHandler) best(w http.ResponseWriter, _ *http.Request) {
	chainType := h.oracle.Chain()
	h.write(w, http.StatusOK, bestResponse{
		Coin:    string(chainType.Coin),
		Network: string(chainType.Network),
		Tip:     toPosition(h.oracle.BestChain()),
	})
}

func (h *StatusHandler) checkpoint(w http.ResponseWriter, _ *http.Request) {
	var resp checkpointResponse
	if cp, ok := h.oracle.GetCheckpoint(); ok {
		pos := toPosition(cp.Position())
		resp.Checkpoint = &pos
	}
	h.write(w, http.StatusOK, resp)
}

func (h *StatusHandler) header(w http.ResponseWriter, r *http.Request) {
	hash, err := chainhash.NewHashFromStr(r.PathValue("hash"))
	if err != nil {
		h.fail(w, http.StatusBadRequest, err)
		return
	}

	header, err := h.oracle.LoadHeader(r.Context(), *hash)
	if err != nil {
		h.fail(w, http.StatusInternalServerError, err)
		return
	}
	if header == nil {
		h.fail(w, http.StatusNotFound, oracle.ErrUnknownHeader)
		return
	}

	resp := headerResponse{
		Hash:       header.Hash.String(),
		ParentHash: header.ParentHash.String(),
		Work:       header.Work.String(),
	}
	if header.Height != model.UnknownHeight {
		height := header.Height
		resp.Height = &height
		if resp.InBest, err = h.oracle.IsInBestChain(r.Context(), header.Position()); err != nil {
			h.fail(w, http.StatusInternalServerError, err)
			return
		}
	}
	h.write(w, http.StatusOK, resp)
}

func (h *StatusHandler) reorg(w http.ResponseWriter, r *http.Request) {
	height, err := strconv.ParseInt(r.PathValue("height"), 10, 64)
	if err != nil || height < 0 {
		h.fail(w, http.StatusBadRequest, errors.New("height must be a non-negative integer"))
		return
	}
	hash, err := chainhash.NewHashFromStr(r.PathValue("hash"))
	if err != nil {
		h.fail(w, http.StatusBadRequest, err)
		return
	}

	tip := model.NewPosition(height, *hash)
	added, err := h.oracle.CalculateReorg(r.Context(), tip)
	if err != nil {
		h.fail(w, statusOf(err), err)
		return
	}

	resp := reorgResponse{Tip: toPosition(tip), Added: make([]positionResponse, 0, len(added))}
	for _, pos := range added {
		resp.Added = append(resp.Added, toPosition(pos))
	}
	h.write(w, http.StatusOK, resp)
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, oracle.ErrUnknownHeader):
		return http.StatusNotFound
	case errors.Is(err, oracle.ErrNotConnected), errors.Is(err, oracle.ErrHeightMismatch):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func toPosition(p model.Position) positionResponse {
	return positionResponse{Height: p.Height, Hash: p.Hash.String()}
}

func (h *StatusHandler) fail(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		h.logger.Error("status request failed", zap.Error(err))
	}
	h.write(w, status, errorResponse{Error: err.Error()})
}

func (h *StatusHandler) write(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Warn("response not written", zap.Error(err))
	}
}
