package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
	"auction-engine/services/auction/helpers"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	PlaceBid(ctx context.Context, lotID, bidderID string, amount int64) (model.BidResult, error)
	CreateLot(sellerID, title, description string, startingPrice int64) (model.Lot, error)
	SubmitLot(lotID string) (model.Lot, error)
	ActivateLot(lotID string, startTime, endTime time.Time) (model.Lot, error)
	CancelLot(lotID string) (model.Lot, error)
	FinalizeLot(ctx context.Context, lotID string) (model.Lot, model.SettleOutcome, error)
	GetLot(lotID string) (model.Lot, error)
	GetBidsForLot(lotID string) ([]model.Bid, error)
	GetWinningBid(lotID string) (model.Bid, error)
	SetProxySetting(setting model.ProxySetting) error
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

func bidResponse(bid model.Bid) helpers.BidResponse {
	return helpers.BidResponse{
		BidID:     bid.BidID,
		LotID:     bid.LotID,
		BidderID:  bid.BidderID,
		Amount:    bid.Amount,
		IsProxy:   bid.IsProxy,
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// PlaceBidHandler handles POST /bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	result, err := h.service.PlaceBid(c.Request.Context(), req.LotID, req.BidderID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler":   "PlaceBidHandler",
			"lot_id":    req.LotID,
			"bidder_id": req.BidderID,
			"error":     err.Error(),
		})
		return
	}

	resp := helpers.PlaceBidResponse{
		Bid:       bidResponse(result.Bid),
		NewPrice:  result.NewPrice,
		NewLeader: result.NewLeader,
		Extended:  result.Extended,
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":     result.Bid.BidID,
		"lot_id":     req.LotID,
		"bidder_id":  req.BidderID,
		"amount":     req.Amount,
		"new_price":  result.NewPrice,
		"new_leader": result.NewLeader,
		"extended":   result.Extended,
	})
}

// CreateLotHandler handles POST /lots
func (h *AuctionHandler) CreateLotHandler(c *gin.Context) {
	var req helpers.CreateLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateLotHandler", err)
		return
	}

	lot, err := h.service.CreateLot(req.SellerID, req.Title, req.Description, req.StartingPrice)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CreateLotHandler: failed to create lot", map[string]any{"seller_id": req.SellerID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, lot, "lot created successfully")
	helpers.LogSuccess("CreateLotHandler", "lot created successfully", map[string]any{
		"lot_id":    lot.LotID,
		"seller_id": lot.SellerID,
	})
}

// SubmitLotHandler handles POST /lots/:lot_id/submit
func (h *AuctionHandler) SubmitLotHandler(c *gin.Context) {
	h.transition(c, "SubmitLotHandler", func(lotID string) (model.Lot, error) {
		return h.service.SubmitLot(lotID)
	})
}

// ActivateLotHandler handles POST /lots/:lot_id/activate
func (h *AuctionHandler) ActivateLotHandler(c *gin.Context) {
	var req helpers.ActivateLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ActivateLotHandler", err)
		return
	}

	start, err := parseOptionalTime(req.StartTime)
	if err != nil {
		helpers.HandleBindError(c, "ActivateLotHandler", err)
		return
	}
	end, err := parseOptionalTime(req.EndTime)
	if err != nil {
		helpers.HandleBindError(c, "ActivateLotHandler", err)
		return
	}

	h.transition(c, "ActivateLotHandler", func(lotID string) (model.Lot, error) {
		return h.service.ActivateLot(lotID, start, end)
	})
}

// CancelLotHandler handles POST /lots/:lot_id/cancel
func (h *AuctionHandler) CancelLotHandler(c *gin.Context) {
	h.transition(c, "CancelLotHandler", func(lotID string) (model.Lot, error) {
		return h.service.CancelLot(lotID)
	})
}

func (h *AuctionHandler) transition(c *gin.Context, handlerName string, fn func(lotID string) (model.Lot, error)) {
	lotID := c.Param("lot_id")
	lot, err := fn(lotID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn(handlerName+": transition failed", map[string]any{"lot_id": lotID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, lot, "lot updated successfully")
	helpers.LogSuccess(handlerName, "lot updated successfully", map[string]any{
		"lot_id": lot.LotID,
		"status": string(lot.Status),
	})
}

// FinalizeLotHandler handles POST /lots/:lot_id/finalize; invoked by the
// settlement scheduler once the deadline has passed.
func (h *AuctionHandler) FinalizeLotHandler(c *gin.Context) {
	lotID := c.Param("lot_id")
	lot, outcome, err := h.service.FinalizeLot(c.Request.Context(), lotID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("FinalizeLotHandler: finalize failed", map[string]any{"lot_id": lotID, "error": err.Error()})
		return
	}

	resp := helpers.FinalizeResponse{
		LotID:    lot.LotID,
		Status:   string(lot.Status),
		Sold:     outcome.Sold,
		WinnerID: outcome.WinnerID,
		Amount:   outcome.Amount,
	}

	utils.JSONResponse(c, http.StatusOK, resp, "lot finalized successfully")
	helpers.LogSuccess("FinalizeLotHandler", "lot finalized successfully", map[string]any{
		"lot_id":  lot.LotID,
		"status":  string(lot.Status),
		"sold":    outcome.Sold,
		"winner":  outcome.WinnerID,
		"amount":  outcome.Amount,
	})
}

// GetLotHandler handles GET /lots/:lot_id
func (h *AuctionHandler) GetLotHandler(c *gin.Context) {
	lotID := c.Param("lot_id")
	lot, err := h.service.GetLot(lotID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetLotHandler: error retrieving lot", map[string]any{"lot_id": lotID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, lot, "lot retrieved successfully")
}

// GetBidsByLotHandler handles GET /lots/:lot_id/bids
func (h *AuctionHandler) GetBidsByLotHandler(c *gin.Context) {
	lotID := c.Param("lot_id")
	bids, err := h.service.GetBidsForLot(lotID)
	if err != nil && !errors.Is(err, auctionerrors.ErrNoBids) {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidsByLotHandler: error retrieving bids", map[string]any{"lot_id": lotID, "error": err.Error()})
		return
	}

	resp := make([]helpers.BidResponse, 0, len(bids))
	for _, b := range bids {
		resp = append(resp, bidResponse(b))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByLotHandler", "bids retrieved successfully", map[string]any{
		"lot_id": lotID,
		"count":  len(resp),
	})
}

// GetWinningBidHandler handles GET /lots/:lot_id/winning
func (h *AuctionHandler) GetWinningBidHandler(c *gin.Context) {
	lotID := c.Param("lot_id")
	bid, err := h.service.GetWinningBid(lotID)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrNoBids) {
			utils.JSONError(c, http.StatusNotFound, err, "no winning bid found")
			utils.Info("GetWinningBidHandler: no winning bid found", map[string]any{"lot_id": lotID})
			return
		}
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetWinningBidHandler: winning bid error", map[string]any{"lot_id": lotID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, bidResponse(bid), "winning bid retrieved successfully")
}

// SetProxySettingHandler handles PUT /bidders/:bidder_id/proxy. This is the
// account-settings surface; the engine reads these values as snapshots only.
func (h *AuctionHandler) SetProxySettingHandler(c *gin.Context) {
	var req helpers.ProxySettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SetProxySettingHandler", err)
		return
	}

	setting := model.ProxySetting{
		BidderID:       c.Param("bidder_id"),
		AutoBidEnabled: req.AutoBidEnabled,
		MaxAmount:      req.MaxAmount,
	}
	if err := h.service.SetProxySetting(setting); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("SetProxySettingHandler: failed to store setting", map[string]any{"bidder_id": setting.BidderID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, setting, "proxy setting stored successfully")
	helpers.LogSuccess("SetProxySettingHandler", "proxy setting stored successfully", map[string]any{
		"bidder_id": setting.BidderID,
		"enabled":   setting.AutoBidEnabled,
	})
}

func parseOptionalTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid RFC3339 timestamp %q: %w", raw, err)
	}
	return t.UTC(), nil
}
