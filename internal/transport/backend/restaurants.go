package backend

import (
	"context"

	"github.com/kailas-cloud/cardex/internal/domain/card"
	"github.com/kailas-cloud/cardex/internal/domain/restaurant"
)

// RestaurantClient calls the restaurant review search service.
type RestaurantClient struct {
	caller   caller
	endpoint string
}

// NewRestaurantClient creates a restaurant search client.
func NewRestaurantClient(endpoint string, opts Options) *RestaurantClient {
	return &RestaurantClient{caller: newCaller(opts), endpoint: endpoint}
}

// SearchRestaurants returns one card per hit in backend order.
func (c *RestaurantClient) SearchRestaurants(
	ctx context.Context, query string, numResults int, locations []string,
) ([]*card.Card[restaurant.Restaurant], error) {
	if locations == nil {
		locations = []string{}
	}

	var resp restaurantResponse
	req := restaurantRequest{Query: query, NumResults: numResults, LocationList: locations}
	if err := c.caller.postJSON(ctx, NameRestaurants, c.endpoint, req, &resp); err != nil {
		return nil, err
	}

	cards := make([]*card.Card[restaurant.Restaurant], len(resp.Result))
	for i, h := range resp.Result {
		cards[i] = card.New(query, h.Score, h.toRestaurant())
	}
	return cards, nil
}

func (h restaurantHit) toRestaurant() restaurant.Restaurant {
	name := h.Info.Name
	if name == "" {
		name, _ = h.Meta["name"].(string)
	}
	return restaurant.Restaurant{
		Name:       name,
		URL:        h.Info.URL,
		Rating:     h.Info.Rating,
		Price:      rawText(h.Info.Price),
		City:       h.Info.City,
		NumReviews: h.Info.NumReviews,
		Categories: h.Info.Categories,
		Review:     h.Context,
		Meta:       h.Meta,
	}
}
