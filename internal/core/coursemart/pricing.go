package coursemart

import (
	"context"
	"errors"
	"fmt"

	"github.com/playmixer/coursemart/internal/adapters/store/errstore"
)

const (
	// promoDiscount is the flat price cut for a purchase made with a promo code.
	promoDiscount = 500
	// promoReward is credited to the promo code owner on first use.
	promoReward = 500
)

// finalPrice applies the promo discount and then the bonus balance, never
// dropping below zero. Returns the charge and the bonus amount actually used.
func finalPrice(basePrice int, promoPresent bool, bonuses int) (int, int) {
	discount := 0
	if promoPresent {
		discount = promoDiscount
	}

	remaining := basePrice - discount
	if remaining < 0 {
		remaining = 0
	}

	if bonuses < 0 {
		bonuses = 0
	}
	if bonuses > remaining {
		bonuses = remaining
	}

	return remaining - bonuses, bonuses
}

// modulePrice resolves the catalog price, falling back to the configured
// default for modules the catalog does not know.
func (c *Coursemart) modulePrice(ctx context.Context, module string) (int, error) {
	content, err := c.store.GetContentByModule(ctx, module)
	if err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			return c.cfg.DefaultPrice, nil
		}
		return 0, fmt.Errorf("failed get module price: %w", err)
	}

	return content.Price, nil
}
