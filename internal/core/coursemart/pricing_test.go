package coursemart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFinalPrice(t *testing.T) {
	tests := []struct {
		name         string
		basePrice    int
		promoPresent bool
		bonuses      int
		wantAmount   int
		wantBonuses  int
	}{
		{
			name:       "no promo no bonuses",
			basePrice:  3000,
			wantAmount: 3000,
		},
		{
			name:         "promo only",
			basePrice:    3000,
			promoPresent: true,
			wantAmount:   2500,
		},
		{
			name:        "bonuses below remaining",
			basePrice:   3000,
			bonuses:     1000,
			wantAmount:  2000,
			wantBonuses: 1000,
		},
		{
			name:         "promo and bonuses capped at remaining",
			basePrice:    3000,
			promoPresent: true,
			bonuses:      1000,
			wantAmount:   1500,
			wantBonuses:  1000,
		},
		{
			name:         "bonuses exceed remaining",
			basePrice:    3000,
			promoPresent: true,
			bonuses:      5000,
			wantAmount:   0,
			wantBonuses:  2500,
		},
		{
			name:         "promo exceeds price",
			basePrice:    300,
			promoPresent: true,
			bonuses:      100,
			wantAmount:   0,
			wantBonuses:  0,
		},
		{
			name:        "negative bonuses treated as zero",
			basePrice:   3000,
			bonuses:     -100,
			wantAmount:  3000,
			wantBonuses: 0,
		},
		{
			name:       "zero price",
			basePrice:  0,
			wantAmount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, bonuses := finalPrice(tt.basePrice, tt.promoPresent, tt.bonuses)
			assert.Equal(t, tt.wantAmount, amount)
			assert.Equal(t, tt.wantBonuses, bonuses)
			assert.GreaterOrEqual(t, amount, 0)
		})
	}
}
