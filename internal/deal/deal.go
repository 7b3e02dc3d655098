package deal

import "strings"

// QualificationTier classifies the customer for plan pricing purposes.
type QualificationTier string

const (
	TierStandard       QualificationTier = "standard"
	TierMilitary       QualificationTier = "military"
	TierFirstResponder QualificationTier = "first_responder"
	Tier55Plus         QualificationTier = "55_plus"
	TierBusiness       QualificationTier = "business"
)

// NoTrade is the current-phone sentinel meaning the customer keeps or discards
// their device instead of trading it in.
const NoTrade = "no_trade"

// Device describes one line's phone choice.
type Device struct {
	CurrentPhone string `json:"currentPhone"`
	NewPhone     string `json:"newPhone" validate:"required"`
	Storage      string `json:"storage" validate:"required"`
	Insurance    bool   `json:"insurance"`
}

// HasTradeIn reports whether the device carries a trade-in candidate.
func (d Device) HasTradeIn() bool {
	current := strings.TrimSpace(d.CurrentPhone)
	return current != "" && !strings.EqualFold(current, NoTrade)
}

// TabletSelection picks a tablet line with a data tier.
type TabletSelection struct {
	DataTier string `json:"dataTier" validate:"required,oneof=basic unlimited"`
}

// AccessorySelections groups non-voice line add-ons.
type AccessorySelections struct {
	Watches      int               `json:"watches" validate:"min=0"`
	Tablets      []TabletSelection `json:"tablets" validate:"dive"`
	HomeInternet bool              `json:"homeInternet"`
}

// CustomerConfiguration is the immutable input snapshot for one optimization
// run. Validation happens once at the engine boundary; the engine itself only
// normalizes, it never rejects.
type CustomerConfiguration struct {
	Lines           int                 `json:"lines" validate:"required,min=1"`
	Devices         []Device            `json:"devices" validate:"required,min=1,dive"`
	PlanID          string              `json:"planId" validate:"required"`
	Tier            QualificationTier   `json:"tier" validate:"omitempty,oneof=standard military first_responder 55_plus business"`
	Accessories     AccessorySelections `json:"accessories"`
	Autopay         bool                `json:"autopay"`
	NewCustomer     bool                `json:"newCustomer"`
	SwitcherCarrier string              `json:"switcherCarrier"`
	LoyaltyYears    int                 `json:"loyaltyYears" validate:"min=0"`
}

// Normalize returns a copy with obviously inconsistent values clamped. The
// wizard is expected to have validated the configuration already, so the
// engine is defensive rather than strict here: a non-positive line count
// becomes 1 and a missing tier falls back to standard.
func (c CustomerConfiguration) Normalize() CustomerConfiguration {
	out := c
	if out.Lines < 1 {
		out.Lines = 1
	}
	if strings.TrimSpace(string(out.Tier)) == "" {
		out.Tier = TierStandard
	}
	if out.Accessories.Watches < 0 {
		out.Accessories.Watches = 0
	}
	if out.LoyaltyYears < 0 {
		out.LoyaltyYears = 0
	}
	return out
}

// TradeInCount returns how many devices carry a trade-in candidate.
func (c CustomerConfiguration) TradeInCount() int {
	count := 0
	for _, d := range c.Devices {
		if d.HasTradeIn() {
			count++
		}
	}
	return count
}
