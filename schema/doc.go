// Package schema defines the typed request and response models of the CIRIS
// v1 agent-management API, together with the response envelope and the error
// shape every endpoint shares.
//
// All successful v1 responses arrive wrapped in a SuccessResponse envelope;
// the client unwraps the data field before decoding into these types, so the
// models here describe the payloads only.
package schema
