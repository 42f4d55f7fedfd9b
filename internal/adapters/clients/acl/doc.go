// Package acl is the anti-corruption layer in front of a remote journal
// server. The remote speaks the journal's own JSON API; this package keeps
// those wire shapes private, validates them and hands out domain types and
// domain errors only.
//
// Error translation:
//   - 404 → domain.ErrNotFound
//   - 400/422 → domain.ErrValidation, with the first field detail if any
//   - 409 → domain.ErrConflict
//   - 401/403, 429, 5xx and transport failures → domain.ErrUnavailable
//
// [clients.ErrCircuitOpen] and [clients.ErrMaxRetriesExceeded] also become
// domain.ErrUnavailable.
package acl
