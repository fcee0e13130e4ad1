// Package domain contains the core domain entities and types used by the
// application. These types represent the business concepts (decomposed URLs,
// risk factors, registration data and verdicts) and are intentionally free of
// infrastructure concerns so they can be shared across packages.
package domain
