package commands

import (
	"context"
	"log/slog"

	"webshopper/internal/domain/order"
	reqdto "webshopper/internal/handler/dto/request"
	"webshopper/internal/infra"
	"webshopper/internal/infra/kroger"
	"webshopper/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCartSubmission = errs.New("cart submission failed")

// OrderLine is one submitted cart line.
type OrderLine struct {
	ProductID   string `json:"product_id"`
	Description string `json:"description"`
	Quantity    int64  `json:"quantity"`
}

// RoundedUpLine reports a product whose count was bumped to a whole extra
// container.
type RoundedUpLine struct {
	ProductID     string  `json:"product_id"`
	Description   string  `json:"description"`
	RawContainers float64 `json:"raw_containers"`
	Containers    int64   `json:"containers"`
}

// OrderReceipt is what the user gets back after a submission: the lines that
// went into the cart and which of them were rounded up.
type OrderReceipt struct {
	Lines     []OrderLine     `json:"lines"`
	RoundedUp []RoundedUpLine `json:"rounded_up"`
}

type OrderCommands interface {
	// Submit aggregates the selected recipes into container counts and pushes
	// the result into the user's retailer cart. Any failure aborts the whole
	// order; nothing is ever partially submitted.
	Submit(ctx context.Context, userID uuid.UUID, req reqdto.SubmitOrderRequest) (*OrderReceipt, error)
}

type orderCommandsImpl struct {
	recipes     RecipeRepo
	products    ProductRepo
	credentials CredentialPort
	cart        CartSubmitter
}

func NewOrderCommands(recipes RecipeRepo, products ProductRepo, credentials CredentialPort, cart CartSubmitter) OrderCommands {
	return &orderCommandsImpl{
		recipes:     recipes,
		products:    products,
		credentials: credentials,
		cart:        cart,
	}
}

func (c *orderCommandsImpl) Submit(ctx context.Context, userID uuid.UUID, req reqdto.SubmitOrderRequest) (*OrderReceipt, error) {
	recipes, err := c.recipes.FindByIDs(ctx, userID, req.RecipeIDs)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrRecipeNotFound)
		}
		return nil, err
	}

	tally, err := order.Normalize(recipes)
	if err != nil {
		return nil, err
	}

	products, err := c.products.GetMany(ctx, userID, tally.ProductIDs())
	if err != nil {
		return nil, err
	}

	final, err := order.ToContainers(tally, products)
	if err != nil {
		return nil, err
	}

	lines := order.BuildLines(final)
	receipt := &OrderReceipt{
		Lines:     make([]OrderLine, 0, len(lines)),
		RoundedUp: make([]RoundedUpLine, 0, len(final.RoundedUp)),
	}
	for _, rl := range final.RoundedUp {
		receipt.RoundedUp = append(receipt.RoundedUp, RoundedUpLine{
			ProductID:     rl.ProductID,
			Description:   rl.Description,
			RawContainers: rl.RawContainers,
			Containers:    rl.Containers,
		})
	}
	for _, line := range lines {
		receipt.Lines = append(receipt.Lines, OrderLine{
			ProductID:   line.ProductID,
			Description: products[line.ProductID].Description(),
			Quantity:    line.Quantity,
		})
	}

	if len(lines) == 0 {
		// Everything already covered; nothing to put in the cart.
		return receipt, nil
	}

	pair, err := c.credentials.EnsureFresh(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]kroger.CartItem, 0, len(lines))
	for _, line := range lines {
		upc := products[line.ProductID].UPC()
		if upc == "" {
			// Older catalog entries predate the UPC column.
			upc = line.ProductID
		}
		items = append(items, kroger.CartItem{UPC: upc, Quantity: line.Quantity})
	}

	if err := c.cart.AddToCart(ctx, pair.AccessToken, items); err != nil {
		slog.Warn("cart submission failed", "user_id", userID, "lines", len(items), "error", err.Error())
		return nil, errs.Mark(err, ErrCartSubmission)
	}

	return receipt, nil
}
