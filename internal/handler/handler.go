// Package handler is the first layer after the router.
//
// It binds and validates requests using the validation package,
// calls the appropriate service, and writes the response. It is
// the interface between HTTP and the service layer.
package handler
