package request

// ConnectCallbackRequest carries the provider's redirect query parameters.
type ConnectCallbackRequest struct {
	Code  string `form:"code" binding:"required"`
	State string `form:"state" binding:"required"`
}

// SearchLocationsRequest requires a plain five-digit US zipcode.
type SearchLocationsRequest struct {
	Zipcode string `form:"zipcode" binding:"required,len=5,numeric"`
}

type SearchProductsRequest struct {
	Term string `form:"term" binding:"required,min=3"`
}
