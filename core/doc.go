// Package core contains the canonical contact model, adapter contracts, error
// taxonomy, and configuration. Vendor- and transport-specific packages depend
// on this package; core must not depend on them.
package core
