// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and repositories
// (defined in internal/store) to fulfill application features: registering a
// user together with its first address, and the two user lookup variants.
//
// Services receive dependencies through constructor injection and apply
// transactional boundaries when operations span multiple repositories. They
// translate store-level errors into application-level error kinds that the
// API layer maps to HTTP status codes.
package service
