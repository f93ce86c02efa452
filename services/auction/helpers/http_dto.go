package helpers

// Request/Response DTOs
type PlaceBidRequest struct {
	LotID    string `json:"lot_id" binding:"required"`
	BidderID string `json:"bidder_id" binding:"required"`
	Amount   int64  `json:"amount" binding:"required,gt=0"`
}

type BidResponse struct {
	BidID     string `json:"bid_id"`
	LotID     string `json:"lot_id"`
	BidderID  string `json:"bidder_id"`
	Amount    int64  `json:"amount"`
	IsProxy   bool   `json:"is_proxy"`
	CreatedAt string `json:"created_at"`
}

type PlaceBidResponse struct {
	Bid       BidResponse `json:"bid"`
	NewPrice  int64       `json:"new_price"`
	NewLeader string      `json:"new_leader"`
	Extended  bool        `json:"extended"`
}

type CreateLotRequest struct {
	SellerID      string `json:"seller_id" binding:"required"`
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description"`
	StartingPrice int64  `json:"starting_price" binding:"gte=0"`
}

type ActivateLotRequest struct {
	StartTime string `json:"start_time"` // RFC3339, optional
	EndTime   string `json:"end_time"`   // RFC3339, optional
}

type ProxySettingRequest struct {
	AutoBidEnabled bool  `json:"auto_bid_enabled"`
	MaxAmount      int64 `json:"max_amount" binding:"gte=0"`
}

type FinalizeResponse struct {
	LotID    string `json:"lot_id"`
	Status   string `json:"status"`
	Sold     bool   `json:"sold"`
	WinnerID string `json:"winner_id,omitempty"`
	Amount   int64  `json:"amount,omitempty"`
}
